package temporal

import (
	"context"
	"fmt"

	"go.temporal.io/sdk/client"
)

// TemporalOrchestrator starts ledger workflows; client.Client satisfies it
//
//go:generate mockgen -source=orchestrator.go -destination=../../mocks/temporal_orchestrator.go -package=mocks -mock_names=TemporalOrchestrator=MockTemporalOrchestrator
type TemporalOrchestrator interface {
	ExecuteWorkflow(ctx context.Context, options client.StartWorkflowOptions, workflow interface{}, args ...interface{}) (client.WorkflowRun, error)
}

// Config holds the Temporal connection settings shared by every binary
type Config struct {
	HostPort  string
	Namespace string
	TaskQueue string
}

// Dial connects to Temporal with the zap backed logger
func Dial(cfg Config, opts ...func(*client.Options)) (client.Client, error) {
	options := client.Options{
		HostPort:  cfg.HostPort,
		Namespace: cfg.Namespace,
		Logger:    NewZapLoggerAdapter(nil),
	}
	for _, opt := range opts {
		opt(&options)
	}

	c, err := client.Dial(options)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to temporal at %s: %w", cfg.HostPort, err)
	}
	return c, nil
}

// RunAndWait starts a workflow and blocks until it returns its result into valuePtr
func RunAndWait(ctx context.Context, o TemporalOrchestrator, options client.StartWorkflowOptions, valuePtr interface{}, workflow interface{}, args ...interface{}) error {
	run, err := o.ExecuteWorkflow(ctx, options, workflow, args...)
	if err != nil {
		return fmt.Errorf("failed to start workflow %s: %w", options.ID, err)
	}
	if run == nil {
		return fmt.Errorf("workflow %s returned no run", options.ID)
	}

	if err := run.Get(ctx, valuePtr); err != nil {
		return fmt.Errorf("workflow %s failed: %w", options.ID, err)
	}
	return nil
}
