package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/feral-file/ff-partner-ledger/internal/adapter"
	"github.com/feral-file/ff-partner-ledger/internal/bonuspool"
	"github.com/feral-file/ff-partner-ledger/internal/config"
	"github.com/feral-file/ff-partner-ledger/internal/logger"
	"github.com/feral-file/ff-partner-ledger/internal/metrics"
	"github.com/feral-file/ff-partner-ledger/internal/store"
	"github.com/feral-file/ff-partner-ledger/internal/sweeper"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadSchedulerConfig(*configFile, *envPath)
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
			"service": "scheduler",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Scheduler")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}

	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	dataStore := store.NewPGStore(db)
	clock := adapter.NewClock()
	hasher := adapter.NewPayloadHasher(adapter.NewJSON(), adapter.NewJCS())
	ledgerMetrics := metrics.Default()

	metricsServer := metrics.Serve(cfg.MetricsAddr)
	if metricsServer != nil {
		defer func() { _ = metricsServer.Close() }()
		logger.InfoCtx(ctx, "Serving metrics", zap.String("addr", cfg.MetricsAddr))
	}

	pool := bonuspool.NewManager(bonuspool.Config{
		CycleLength:    cfg.BonusPool.CycleLength,
		SalesToPoolBps: cfg.BonusPool.SalesToPoolBps,
		CarryRemainder: cfg.BonusPool.CarryRemainder,
		PackageTokens:  cfg.BonusPool.PackageTokens,
		AmountPerToken: cfg.BonusPool.AmountPerToken,
	}, dataStore, dataStore, hasher, clock, ledgerMetrics)

	sweepers := []sweeper.Sweeper{
		sweeper.NewCycleSettlementSweeper(sweeper.CycleSettlementSweeperConfig{
			Interval: cfg.Scheduler.SettlementInterval,
		}, pool, clock),
		sweeper.NewBalanceReconciler(sweeper.BalanceReconcilerConfig{
			Interval:       cfg.Scheduler.ReconcileInterval,
			BatchSize:      cfg.Scheduler.BatchSize,
			WorkerPoolSize: cfg.Scheduler.Worker.WorkerPoolSize,
			FreezeOnDrift:  cfg.Scheduler.FreezeOnDrift,
		}, dataStore, clock, ledgerMetrics),
	}

	logger.InfoCtx(ctx, "Initialized sweepers",
		zap.Duration("settlement_interval", cfg.Scheduler.SettlementInterval),
		zap.Duration("reconcile_interval", cfg.Scheduler.ReconcileInterval),
		zap.Int("batch_size", cfg.Scheduler.BatchSize),
	)

	// Each sweeper blocks in Start until ctx is canceled
	errChan := make(chan error, len(sweepers))
	for _, s := range sweepers {
		go func() {
			if err := s.Start(ctx); err != nil {
				errChan <- fmt.Errorf("%s: %w", s.Name(), err)
			}
		}()
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errChan:
		logger.ErrorCtx(ctx, err)
	}

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	for _, s := range sweepers {
		if err := s.Stop(shutdownCtx); err != nil {
			logger.ErrorCtx(shutdownCtx, err, zap.String("sweeper", s.Name()))
		}
	}

	logger.InfoCtx(shutdownCtx, "Scheduler stopped")
}
