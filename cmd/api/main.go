package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.temporal.io/sdk/client"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/feral-file/ff-partner-ledger/internal/adapter"
	"github.com/feral-file/ff-partner-ledger/internal/api/middleware"
	"github.com/feral-file/ff-partner-ledger/internal/api/server"
	"github.com/feral-file/ff-partner-ledger/internal/api/shared/executor"
	"github.com/feral-file/ff-partner-ledger/internal/bonuspool"
	"github.com/feral-file/ff-partner-ledger/internal/config"
	"github.com/feral-file/ff-partner-ledger/internal/logger"
	"github.com/feral-file/ff-partner-ledger/internal/metrics"
	"github.com/feral-file/ff-partner-ledger/internal/providers/jetstream"
	temporal "github.com/feral-file/ff-partner-ledger/internal/providers/temporal"
	"github.com/feral-file/ff-partner-ledger/internal/ratelimit"
	"github.com/feral-file/ff-partner-ledger/internal/referral"
	"github.com/feral-file/ff-partner-ledger/internal/store"
	"github.com/feral-file/ff-partner-ledger/internal/withdrawal"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "api-server",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Feral File Partner Ledger API")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	// Initialize store
	dataStore := store.NewPGStore(db)

	// Initialize adapters
	jsonAdapter := adapter.NewJSON()
	clockAdapter := adapter.NewClock()
	hasher := adapter.NewPayloadHasher(jsonAdapter, adapter.NewJCS())
	ledgerMetrics := metrics.Default()

	// Connect to Temporal with logger integration
	temporalClient, err := temporal.Dial(temporal.Config{
		HostPort:  cfg.Temporal.HostPort,
		Namespace: cfg.Temporal.Namespace,
		TaskQueue: cfg.Temporal.TaskQueue,
	}, func(o *client.Options) {
		o.Logger = temporal.NewZapLoggerAdapter(logger.Default())
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to Temporal", zap.Error(err))
	}
	defer temporalClient.Close()
	logger.InfoCtx(ctx, "Connected to Temporal", zap.String("host_port", cfg.Temporal.HostPort))

	// Connect the event publisher
	publisher, err := jetstream.NewPublisher(jetstream.Config{
		URL:            cfg.NATS.URL,
		StreamName:     cfg.NATS.StreamName,
		SubjectPrefix:  cfg.NATS.SubjectPrefix,
		MaxReconnects:  cfg.NATS.MaxReconnects,
		ReconnectWait:  cfg.NATS.ReconnectWait,
		ConnectionName: cfg.NATS.ConnectionName,
		PublishTimeout: cfg.NATS.PublishTimeout,
	}, adapter.NewNatsJetStream(), jsonAdapter)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect event publisher", zap.Error(err), zap.String("url", cfg.NATS.URL))
	}
	defer publisher.Close()
	logger.InfoCtx(ctx, "Connected to NATS", zap.String("stream", cfg.NATS.StreamName))

	// Domain services
	graph := referral.NewGraph(dataStore)
	pool := bonuspool.NewManager(bonuspool.Config{
		CycleLength:    cfg.BonusPool.CycleLength,
		SalesToPoolBps: cfg.BonusPool.SalesToPoolBps,
		CarryRemainder: cfg.BonusPool.CarryRemainder,
		PackageTokens:  cfg.BonusPool.PackageTokens,
		AmountPerToken: cfg.BonusPool.AmountPerToken,
	}, dataStore, dataStore, hasher, clockAdapter, ledgerMetrics)
	withdrawals := withdrawal.NewService(dataStore, ledgerMetrics)

	exec := executor.NewExecutor(executor.Config{
		TaskQueue: cfg.Temporal.TaskQueue,
	}, dataStore, graph, pool, withdrawals, publisher, temporalClient, ledgerMetrics)

	// Rate limiter is optional
	var limiter ratelimit.Limiter
	if cfg.RateLimit.Enabled {
		limiter, err = ratelimit.NewLimiter(ratelimit.Config{
			KeyPrefix:           cfg.RateLimit.KeyPrefix,
			RequestsPerSecond:   cfg.RateLimit.RequestsPerSecond,
			Burst:               cfg.RateLimit.Burst,
			EnableLocalFallback: cfg.RateLimit.EnableLocalFallback,
		}, adapter.NewRedisClient(cfg.RateLimit.RedisAddr, cfg.RateLimit.RedisPassword, cfg.RateLimit.RedisDB), clockAdapter)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to create rate limiter", zap.Error(err))
		}
		logger.InfoCtx(ctx, "Rate limiting enabled",
			zap.String("redis_addr", cfg.RateLimit.RedisAddr),
			zap.Int("requests_per_second", cfg.RateLimit.RequestsPerSecond),
		)
	} else {
		logger.WarnCtx(ctx, "Rate limiting disabled")
	}

	serverConfig := server.Config{
		Debug:          cfg.Debug,
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		ReadTimeout:    time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:    time.Duration(cfg.Server.IdleTimeout) * time.Second,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
		},
	}

	srv := server.New(serverConfig, exec, ledgerMetrics, limiter)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// The original ctx is canceled by now
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	logger.Info("API server stopped")
}
