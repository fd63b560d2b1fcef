package logger

import (
	"go.temporal.io/sdk/workflow"
	"go.uber.org/zap"
)

// WorkflowInfo identifies the workflow execution a log line belongs to
type WorkflowInfo struct {
	WorkflowType string
	WorkflowID   string
	RunID        string
	Namespace    string
	TaskQueue    string
}

// Fields returns the workflow info as zap fields
func (w WorkflowInfo) Fields() []zap.Field {
	return []zap.Field{
		zap.String("workflow_type", w.WorkflowType),
		zap.String("workflow_id", w.WorkflowID),
		zap.String("run_id", w.RunID),
		zap.String("namespace", w.Namespace),
		zap.String("task_queue", w.TaskQueue),
	}
}

// GetWorkflowInfo extracts workflow information from workflow.Context.
// Returns nil if workflow info is not available
func GetWorkflowInfo(ctx workflow.Context) *WorkflowInfo {
	info := workflow.GetInfo(ctx)
	if info == nil {
		return nil
	}

	workflowTypeName := info.WorkflowType.Name
	if workflowTypeName == "" {
		workflowTypeName = "unknown"
	}

	return &WorkflowInfo{
		WorkflowType: workflowTypeName,
		WorkflowID:   info.WorkflowExecution.ID,
		RunID:        info.WorkflowExecution.RunID,
		Namespace:    info.Namespace,
		TaskQueue:    info.TaskQueueName,
	}
}

// WithWorkflowInfo returns the global logger tagged with the workflow execution
func WithWorkflowInfo(info WorkflowInfo) *zap.Logger {
	return log.With(info.Fields()...)
}

// FromWorkflow returns a logger tagged with the workflow execution of ctx.
// Log calls made through it are not replay-safe; use the *Wf helpers inside workflow code.
func FromWorkflow(ctx workflow.Context) *zap.Logger {
	info := GetWorkflowInfo(ctx)
	if info == nil {
		return log
	}
	return WithWorkflowInfo(*info)
}

// InfoWf logs an info message with workflow context, skipping replays
func InfoWf(ctx workflow.Context, msg string, fields ...zap.Field) {
	if workflow.IsReplaying(ctx) {
		return
	}
	FromWorkflow(ctx).Info(msg, fields...)
}

// ErrorWf logs an error with workflow context, skipping replays
func ErrorWf(ctx workflow.Context, err error, fields ...zap.Field) {
	if workflow.IsReplaying(ctx) {
		return
	}
	if err == nil {
		FromWorkflow(ctx).Error("error occurred", fields...)
		return
	}
	FromWorkflow(ctx).Error(err.Error(), fields...)
}

// WarnWf logs a warning message with workflow context, skipping replays
func WarnWf(ctx workflow.Context, msg string, fields ...zap.Field) {
	if workflow.IsReplaying(ctx) {
		return
	}
	FromWorkflow(ctx).Warn(msg, fields...)
}

// DebugWf logs a debug message with workflow context, skipping replays
func DebugWf(ctx workflow.Context, msg string, fields ...zap.Field) {
	if workflow.IsReplaying(ctx) {
		return
	}
	FromWorkflow(ctx).Debug(msg, fields...)
}
