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
	"go.temporal.io/sdk/interceptor"
	"go.temporal.io/sdk/worker"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/feral-file/ff-partner-ledger/internal/adapter"
	"github.com/feral-file/ff-partner-ledger/internal/bonuspool"
	"github.com/feral-file/ff-partner-ledger/internal/commission"
	"github.com/feral-file/ff-partner-ledger/internal/config"
	"github.com/feral-file/ff-partner-ledger/internal/domain"
	"github.com/feral-file/ff-partner-ledger/internal/logger"
	"github.com/feral-file/ff-partner-ledger/internal/metrics"
	temporal "github.com/feral-file/ff-partner-ledger/internal/providers/temporal"
	"github.com/feral-file/ff-partner-ledger/internal/referral"
	"github.com/feral-file/ff-partner-ledger/internal/store"
	"github.com/feral-file/ff-partner-ledger/internal/workflows"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadWorkerCoreConfig(*configFile, *envPath)
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
			"service": "worker-core",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Worker Core")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}

	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database")

	// Initialize store
	dataStore := store.NewPGStore(db)

	// Initialize adapters
	jsonAdapter := adapter.NewJSON()
	clockAdapter := adapter.NewClock()
	hasher := adapter.NewPayloadHasher(jsonAdapter, adapter.NewJCS())
	ledgerMetrics := metrics.Default()

	metricsServer := metrics.Serve(cfg.MetricsAddr)
	if metricsServer != nil {
		defer func() { _ = metricsServer.Close() }()
		logger.InfoCtx(ctx, "Serving metrics", zap.String("addr", cfg.MetricsAddr))
	}

	// Commission rules
	eligibility, err := commission.PolicyByName(cfg.Commission.Eligibility)
	if err != nil {
		logger.FatalCtx(ctx, "Invalid eligibility policy", zap.Error(err))
	}
	accounts := make(map[domain.EventKind]domain.AccountKind, len(cfg.Commission.Accounts))
	for kind, account := range cfg.Commission.Accounts {
		accounts[domain.EventKind(kind)] = domain.AccountKind(account)
	}

	graph := referral.NewGraph(dataStore)
	distributor, err := commission.NewDistributor(commission.Config{
		Tiers:       domain.TierTable(cfg.Commission.Tiers),
		Eligibility: eligibility,
		Accounts:    accounts,
	}, graph, dataStore, hasher, ledgerMetrics)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create commission distributor", zap.Error(err))
	}

	pool := bonuspool.NewManager(bonuspool.Config{
		CycleLength:    cfg.BonusPool.CycleLength,
		SalesToPoolBps: cfg.BonusPool.SalesToPoolBps,
		CarryRemainder: cfg.BonusPool.CarryRemainder,
		PackageTokens:  cfg.BonusPool.PackageTokens,
		AmountPerToken: cfg.BonusPool.AmountPerToken,
	}, dataStore, dataStore, hasher, clockAdapter, ledgerMetrics)

	// Initialize executor for activities
	executor := workflows.NewExecutor(workflows.ExecutorConfig{
		AutoActivate: cfg.Commission.AutoActivate,
	}, dataStore, graph, distributor, pool, hasher)

	// Connect to Temporal with logger integration
	temporalClient, err := temporal.Dial(temporal.Config{
		HostPort:  cfg.Temporal.HostPort,
		Namespace: cfg.Temporal.Namespace,
		TaskQueue: cfg.Temporal.TaskQueue,
	}, func(o *client.Options) {
		o.Logger = temporal.NewZapLoggerAdapter(logger.Default())
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to Temporal", zap.Error(err), zap.String("host_port", cfg.Temporal.HostPort))
	}
	defer temporalClient.Close()
	logger.InfoCtx(ctx, "Connected to Temporal", zap.String("namespace", cfg.Temporal.Namespace))

	temporalWorker := worker.New(
		temporalClient,
		cfg.Temporal.TaskQueue,
		worker.Options{
			MaxConcurrentActivityExecutionSize: cfg.Temporal.MaxConcurrentActivityExecutionSize,
			WorkerActivitiesPerSecond:          cfg.Temporal.WorkerActivitiesPerSecond,
			MaxConcurrentActivityTaskPollers:   cfg.Temporal.MaxConcurrentActivityTaskPollers,
			Interceptors: []interceptor.WorkerInterceptor{
				temporal.NewSentryActivityInterceptor(),
			},
		})
	logger.InfoCtx(ctx, "Created Temporal worker", zap.String("taskQueue", cfg.Temporal.TaskQueue))

	workerCore := workflows.NewWorkerCore(executor, workflows.WorkerCoreConfig{
		SignupAmounts: cfg.Commission.SignupAmounts,
	})

	// Register workflows
	temporalWorker.RegisterWorkflow(workerCore.OrderPaid)
	temporalWorker.RegisterWorkflow(workerCore.PartnerJoined)
	temporalWorker.RegisterWorkflow(workerCore.Milestone)
	temporalWorker.RegisterWorkflow(workerCore.SettleCycle)
	logger.InfoCtx(ctx, "Registered workflows")

	// Register activities
	temporalWorker.RegisterActivity(executor.EnrollPartner)
	temporalWorker.RegisterActivity(executor.DistributeCommission)
	temporalWorker.RegisterActivity(executor.AccumulatePoolSales)
	temporalWorker.RegisterActivity(executor.IssueTokens)
	temporalWorker.RegisterActivity(executor.SettlePoolCycle)
	logger.InfoCtx(ctx, "Registered activities")

	if err := temporalWorker.Start(); err != nil {
		logger.FatalCtx(ctx, "Failed to start worker", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Worker started and listening for tasks")

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))

	cancel()
	temporalWorker.Stop()
	logger.Info("Worker stopped")
}
