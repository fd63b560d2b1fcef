package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.temporal.io/sdk/client"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/feral-file/ff-partner-ledger/internal/adapter"
	"github.com/feral-file/ff-partner-ledger/internal/bridge"
	"github.com/feral-file/ff-partner-ledger/internal/config"
	"github.com/feral-file/ff-partner-ledger/internal/logger"
	"github.com/feral-file/ff-partner-ledger/internal/metrics"
	temporal "github.com/feral-file/ff-partner-ledger/internal/providers/temporal"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadEventBridgeConfig(*configFile, *envPath)
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
			"service": "event-bridge",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Event Bridge")

	metricsServer := metrics.Serve(cfg.MetricsAddr)
	if metricsServer != nil {
		defer func() { _ = metricsServer.Close() }()
		logger.InfoCtx(ctx, "Serving metrics", zap.String("addr", cfg.MetricsAddr))
	}

	// Connect to Temporal for starting workflows remotely
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

	eventBridge, err := bridge.NewBridge(
		bridge.Config{
			URL:                cfg.NATS.URL,
			StreamName:         cfg.NATS.StreamName,
			SubjectPrefix:      cfg.NATS.SubjectPrefix,
			ConsumerName:       cfg.NATS.ConsumerName,
			MaxReconnects:      cfg.NATS.MaxReconnects,
			ReconnectWait:      cfg.NATS.ReconnectWait,
			ConnectionName:     cfg.NATS.ConnectionName,
			AckWaitTimeout:     cfg.NATS.AckWait,
			MaxDeliver:         cfg.NATS.MaxDeliver,
			NakDelay:           cfg.NATS.NakDelay,
			Concurrency:        cfg.NATS.Concurrency,
			TemporalTaskQueue:  cfg.Temporal.TaskQueue,
			WorkflowRunTimeout: cfg.Temporal.WorkflowRunTimeout,
		},
		adapter.NewNatsJetStream(),
		temporalClient,
		adapter.NewJSON(),
		metrics.Default(),
	)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create event bridge", zap.Error(err))
	}
	defer eventBridge.Close()
	logger.InfoCtx(ctx, "Event bridge created", zap.String("stream", cfg.NATS.StreamName), zap.String("consumer", cfg.NATS.ConsumerName))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	// Run returns after draining its worker pool
	done := make(chan error, 1)
	go func() {
		done <- eventBridge.Run(ctx)
	}()

	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
		if err := <-done; err != nil && !errors.Is(err, context.Canceled) {
			logger.Error(err, zap.String("component", "bridge"))
		}
	case err := <-done:
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Error(err, zap.String("component", "bridge"))
		}
		cancel()
	}

	logger.Info("Event Bridge stopped")
}
