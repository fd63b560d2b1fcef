package workflows

import (
	"fmt"

	"go.temporal.io/sdk/workflow"

	"github.com/feral-file/ff-partner-ledger/internal/domain"
)

// WorkerCore defines the partner ledger workflows
//
//go:generate mockgen -source=worker.go -destination=../mocks/worker_core.go -package=mocks -mock_names=WorkerCore=MockCoreWorker
type WorkerCore interface {
	// OrderPaid distributes commission for a paid order, adds it to the bonus pool and issues network tokens
	OrderPaid(ctx workflow.Context, event domain.OrderPaidEvent) error

	// PartnerJoined enrolls a partner, issues its package tokens and rewards its referral chain
	PartnerJoined(ctx workflow.Context, event domain.PartnerJoinedEvent) error

	// Milestone distributes a milestone commission and issues milestone tokens
	Milestone(ctx workflow.Context, event domain.MilestoneEvent) error

	// SettleCycle settles the bonus pool cycle named by req
	SettleCycle(ctx workflow.Context, req SettleCycleRequest) (*SettlementSummary, error)
}

type WorkerCoreConfig struct {
	// SignupAmounts is the qualifying amount of a referral_signup reward per enrollment tier
	SignupAmounts map[int]int64
}

// workerCore is the concrete implementation of WorkerCore
type workerCore struct {
	config   WorkerCoreConfig
	executor Executor
}

// NewWorkerCore creates a new worker core instance
func NewWorkerCore(executor Executor, config WorkerCoreConfig) WorkerCore {
	return &workerCore{
		executor: executor,
		config:   config,
	}
}

// WorkflowID returns the workflow id of a business event; Temporal rejects a second start with the same id
func WorkflowID(subject domain.EventSubject, eventID string) string {
	return fmt.Sprintf("%s-%s", subject, eventID)
}

// SettlementWorkflowID returns the workflow id of the settlement of a cycle
func SettlementWorkflowID(cycleNumber int64) string {
	return fmt.Sprintf("settle-cycle-%d", cycleNumber)
}
