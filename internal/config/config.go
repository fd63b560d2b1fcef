package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/feral-file/ff-partner-ledger/internal/domain"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
	// MetricsAddr serves /metrics for processes without an HTTP server; empty disables it
	MetricsAddr string `mapstructure:"metrics_addr"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
}

// NATSConfig holds NATS JetStream configuration
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	SubjectPrefix  string        `mapstructure:"subject_prefix"`
	ConsumerName   string        `mapstructure:"consumer_name"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
	AckWait        time.Duration `mapstructure:"ack_wait"`
	MaxDeliver     int           `mapstructure:"max_deliver"`
	NakDelay       time.Duration `mapstructure:"nak_delay"`
	Concurrency    int           `mapstructure:"concurrency"`
	PublishTimeout time.Duration `mapstructure:"publish_timeout"`
}

// TemporalConfig holds Temporal configuration
type TemporalConfig struct {
	HostPort                           string        `mapstructure:"host_port"`
	Namespace                          string        `mapstructure:"namespace"`
	TaskQueue                          string        `mapstructure:"task_queue"`
	WorkflowRunTimeout                 time.Duration `mapstructure:"workflow_run_timeout"`
	MaxConcurrentActivityExecutionSize int           `mapstructure:"max_concurrent_activity_execution_size"`
	WorkerActivitiesPerSecond          float64       `mapstructure:"worker_activities_per_second"`
	MaxConcurrentActivityTaskPollers   int           `mapstructure:"max_concurrent_activity_task_pollers"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds

	// AllowedOrigins restricts CORS; empty allows every origin
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string   `mapstructure:"jwt_public_key"`
	APIKeys      []string `mapstructure:"api_keys"`
}

// RateLimitConfig holds the API write rate limit
type RateLimitConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	RedisAddr         string `mapstructure:"redis_addr"`
	RedisPassword     string `mapstructure:"redis_password"`
	RedisDB           int    `mapstructure:"redis_db"`
	KeyPrefix         string `mapstructure:"key_prefix"`
	RequestsPerSecond int    `mapstructure:"requests_per_second"`
	Burst             int    `mapstructure:"burst"`

	// EnableLocalFallback limits per process when redis is unreachable instead of failing open
	EnableLocalFallback bool `mapstructure:"enable_local_fallback"`
}

// CommissionConfig holds the commission rules
type CommissionConfig struct {
	// Tiers overrides the default 20/10/5 tier table
	Tiers []domain.TierRate `mapstructure:"tiers"`
	// Eligibility is all_statuses or active_only
	Eligibility string `mapstructure:"eligibility"`
	// Accounts maps an event kind to the credited account kind
	Accounts map[string]string `mapstructure:"accounts"`
	// SignupAmounts is the qualifying amount of a referral_signup reward per enrollment tier
	SignupAmounts map[int]int64 `mapstructure:"signup_amounts"`
	// AutoActivate creates enrolled partners as active instead of pending
	AutoActivate bool `mapstructure:"auto_activate"`
}

// BonusPoolConfig holds the bonus pool rules
type BonusPoolConfig struct {
	CycleLength    time.Duration `mapstructure:"cycle_length"`
	SalesToPoolBps int64         `mapstructure:"sales_to_pool_bps"`
	CarryRemainder bool          `mapstructure:"carry_remainder"`
	PackageTokens  map[int]int64 `mapstructure:"package_tokens"`
	AmountPerToken int64         `mapstructure:"amount_per_token"`
}

// WorkerConfig holds worker pool configuration
type WorkerConfig struct {
	WorkerPoolSize  int `mapstructure:"pool_size"`
	WorkerQueueSize int `mapstructure:"queue_size"`
}

// SchedulerSweepsConfig holds the cadence of the scheduler's sweepers
type SchedulerSweepsConfig struct {
	SettlementInterval time.Duration `mapstructure:"settlement_interval"`
	ReconcileInterval  time.Duration `mapstructure:"reconcile_interval"`
	BatchSize          int           `mapstructure:"batch_size"`
	FreezeOnDrift      bool          `mapstructure:"freeze_on_drift"`
	Worker             WorkerConfig  `mapstructure:"worker"`
}

// EventBridgeConfig holds configuration for event-bridge
type EventBridgeConfig struct {
	BaseConfig `mapstructure:",squash"`
	NATS       NATSConfig     `mapstructure:"nats"`
	Temporal   TemporalConfig `mapstructure:"temporal"`
}

// WorkerCoreConfig holds configuration for worker-core
type WorkerCoreConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Temporal   TemporalConfig   `mapstructure:"temporal"`
	Commission CommissionConfig `mapstructure:"commission"`
	BonusPool  BonusPoolConfig  `mapstructure:"bonus_pool"`
}

// APIConfig holds configuration for API server
type APIConfig struct {
	BaseConfig `mapstructure:",squash"`
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Temporal   TemporalConfig   `mapstructure:"temporal"`
	NATS       NATSConfig       `mapstructure:"nats"`
	Auth       AuthConfig       `mapstructure:"auth"`
	RateLimit  RateLimitConfig  `mapstructure:"rate_limit"`
	Commission CommissionConfig `mapstructure:"commission"`
	BonusPool  BonusPoolConfig  `mapstructure:"bonus_pool"`
}

// SchedulerConfig holds configuration for the scheduler program
type SchedulerConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig        `mapstructure:"database"`
	BonusPool  BonusPoolConfig       `mapstructure:"bonus_pool"`
	Scheduler  SchedulerSweepsConfig `mapstructure:"scheduler"`
}

func setDatabaseDefaults(v *viper.Viper) {
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 20)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "1h")
	v.SetDefault("database.conn_max_idle_time", "10m")
}

func setNATSDefaults(v *viper.Viper) {
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.stream_name", "PARTNER_EVENTS")
	v.SetDefault("nats.subject_prefix", "partner.events")
}

func setTemporalDefaults(v *viper.Viper) {
	v.SetDefault("temporal.host_port", "localhost:7233")
	v.SetDefault("temporal.namespace", "default")
	v.SetDefault("temporal.task_queue", "partner-ledger")
}

func setRulesDefaults(v *viper.Viper) {
	v.SetDefault("commission.eligibility", "all_statuses")
	v.SetDefault("commission.auto_activate", false)
	v.SetDefault("bonus_pool.cycle_length", domain.DefaultCycleLength.String())
	v.SetDefault("bonus_pool.sales_to_pool_bps", domain.DefaultSalesToPoolBps)
	v.SetDefault("bonus_pool.carry_remainder", false)
	v.SetDefault("bonus_pool.amount_per_token", 1000)
}

// readConfig reads the config file; a missing file falls back to environment variables
func readConfig(v *viper.Viper, out interface{}) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := v.Unmarshal(out); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return nil
}

// LoadEventBridgeConfig loads configuration for event-bridge
func LoadEventBridgeConfig(configFile string, envPath string) (*EventBridgeConfig, error) {
	v := configureViper("event-bridge", configFile, envPath)

	setNATSDefaults(v)
	setTemporalDefaults(v)
	v.SetDefault("nats.consumer_name", "ledger-event-bridge")
	v.SetDefault("nats.connection_name", "ledger-event-bridge")
	v.SetDefault("nats.ack_wait", "30s")
	v.SetDefault("nats.max_deliver", 10)
	v.SetDefault("nats.nak_delay", "5s")
	v.SetDefault("nats.concurrency", 16)
	v.SetDefault("temporal.workflow_run_timeout", "1h")

	var config EventBridgeConfig
	if err := readConfig(v, &config); err != nil {
		return nil, err
	}

	return &config, nil
}

// LoadWorkerCoreConfig loads configuration for worker-core
func LoadWorkerCoreConfig(configFile string, envPath string) (*WorkerCoreConfig, error) {
	v := configureViper("worker-core", configFile, envPath)

	setDatabaseDefaults(v)
	setTemporalDefaults(v)
	setRulesDefaults(v)
	v.SetDefault("temporal.max_concurrent_activity_execution_size", 50)
	v.SetDefault("temporal.worker_activities_per_second", 100)
	v.SetDefault("temporal.max_concurrent_activity_task_pollers", 10)

	var config WorkerCoreConfig
	if err := readConfig(v, &config); err != nil {
		return nil, err
	}

	return &config, nil
}

// LoadAPIConfig loads configuration for API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	setDatabaseDefaults(v)
	setNATSDefaults(v)
	setTemporalDefaults(v)
	setRulesDefaults(v)
	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("nats.connection_name", "ledger-api")
	v.SetDefault("nats.publish_timeout", "10s")
	v.SetDefault("rate_limit.enabled", false)
	v.SetDefault("rate_limit.key_prefix", "ff:partner-ledger:limiter:")
	v.SetDefault("rate_limit.requests_per_second", 20)
	v.SetDefault("rate_limit.burst", 40)
	v.SetDefault("rate_limit.enable_local_fallback", true)

	var config APIConfig
	if err := readConfig(v, &config); err != nil {
		return nil, err
	}

	return &config, nil
}

// LoadSchedulerConfig loads configuration for the scheduler program
func LoadSchedulerConfig(configFile string, envPath string) (*SchedulerConfig, error) {
	v := configureViper("scheduler", configFile, envPath)

	setDatabaseDefaults(v)
	setRulesDefaults(v)
	v.SetDefault("database.max_open_conns", 5)
	v.SetDefault("database.max_idle_conns", 2)
	v.SetDefault("scheduler.settlement_interval", "1m")
	v.SetDefault("scheduler.reconcile_interval", "10m")
	v.SetDefault("scheduler.batch_size", 500)
	v.SetDefault("scheduler.freeze_on_drift", true)
	v.SetDefault("scheduler.worker.pool_size", 4)
	v.SetDefault("scheduler.worker.queue_size", 500)

	var cfg SchedulerConfig
	if err := readConfig(v, &cfg); err != nil {
		return nil, err
	}

	if cfg.Database.Host == "" {
		return nil, errors.New("database.host is required")
	}
	if cfg.Database.DBName == "" {
		return nil, errors.New("database.dbname is required")
	}

	return &cfg, nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	loadEnv(envPath, service)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		v.AddConfigPath("config/")
	}

	v.SetEnvPrefix("FF_PARTNER_LEDGER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	commonKeys := []string{
		"debug",
		"sentry_dsn",
		"metrics_addr",
		// Database
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// NATS
		"nats.url",
		"nats.stream_name",
		"nats.subject_prefix",
		"nats.consumer_name",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		"nats.ack_wait",
		"nats.max_deliver",
		"nats.nak_delay",
		"nats.concurrency",
		"nats.publish_timeout",
		// Temporal
		"temporal.host_port",
		"temporal.namespace",
		"temporal.task_queue",
		"temporal.workflow_run_timeout",
		"temporal.max_concurrent_activity_execution_size",
		"temporal.worker_activities_per_second",
		"temporal.max_concurrent_activity_task_pollers",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		"server.allowed_origins",
		// Auth
		"auth.jwt_public_key",
		"auth.api_keys",
		// Rate limit
		"rate_limit.enabled",
		"rate_limit.redis_addr",
		"rate_limit.redis_password",
		"rate_limit.redis_db",
		"rate_limit.key_prefix",
		"rate_limit.requests_per_second",
		"rate_limit.burst",
		"rate_limit.enable_local_fallback",
		// Rules
		"commission.eligibility",
		"commission.auto_activate",
		"bonus_pool.cycle_length",
		"bonus_pool.sales_to_pool_bps",
		"bonus_pool.carry_remainder",
		"bonus_pool.amount_per_token",
		// Scheduler
		"scheduler.settlement_interval",
		"scheduler.reconcile_interval",
		"scheduler.batch_size",
		"scheduler.freeze_on_drift",
		"scheduler.worker.pool_size",
		"scheduler.worker.queue_size",
	}

	for _, key := range commonKeys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// Addr returns the HTTP listen address
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
