package executor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"go.temporal.io/sdk/client"
	"go.uber.org/zap"

	"github.com/feral-file/ff-partner-ledger/internal/api/shared/constants"
	"github.com/feral-file/ff-partner-ledger/internal/api/shared/dto"
	apierrors "github.com/feral-file/ff-partner-ledger/internal/api/shared/errors"
	"github.com/feral-file/ff-partner-ledger/internal/bonuspool"
	"github.com/feral-file/ff-partner-ledger/internal/domain"
	"github.com/feral-file/ff-partner-ledger/internal/logger"
	"github.com/feral-file/ff-partner-ledger/internal/messaging"
	"github.com/feral-file/ff-partner-ledger/internal/metrics"
	"github.com/feral-file/ff-partner-ledger/internal/providers/temporal"
	"github.com/feral-file/ff-partner-ledger/internal/referral"
	"github.com/feral-file/ff-partner-ledger/internal/store"
	"github.com/feral-file/ff-partner-ledger/internal/store/schema"
	"github.com/feral-file/ff-partner-ledger/internal/withdrawal"
	"github.com/feral-file/ff-partner-ledger/internal/workflows"
)

// Executor is the interface for the API executor
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// GetPartner returns a partner with its balances, nil when it does not exist
	GetPartner(ctx context.Context, partnerID uuid.UUID) (*dto.PartnerResponse, error)

	// GetLedger returns a page of one account's history, newest first
	GetLedger(ctx context.Context, partnerID uuid.UUID, kind domain.AccountKind, limit, offset int) (*dto.LedgerListResponse, error)

	// GetReferralSummary counts a partner's downline per level
	GetReferralSummary(ctx context.Context, partnerID uuid.UUID, depth int) (*dto.ReferralSummaryResponse, error)

	// ListWithdrawals returns a page of a partner's withdrawal requests
	ListWithdrawals(ctx context.Context, partnerID uuid.UUID, status *domain.WithdrawalStatus, limit, offset int) (*dto.WithdrawalListResponse, error)

	// RequestWithdrawal reserves cash for a new pending withdrawal
	RequestWithdrawal(ctx context.Context, partnerID uuid.UUID, amount int64) (*dto.WithdrawalResponse, error)

	// TransitionWithdrawal approves, rejects or completes a withdrawal
	TransitionWithdrawal(ctx context.Context, id uuid.UUID, to domain.WithdrawalStatus, reason string) (*dto.WithdrawalResponse, error)

	// UpdatePartnerStatus activates, suspends or expires a partner
	UpdatePartnerStatus(ctx context.Context, partnerID uuid.UUID, status domain.PartnerStatus) (*dto.PartnerResponse, error)

	// PostAdjustment appends an admin adjustment entry
	PostAdjustment(ctx context.Context, partnerID uuid.UUID, req dto.AdjustmentRequest) (*dto.AdjustmentResponse, error)

	// SetAccountFrozen freezes or unfreezes an account
	SetAccountFrozen(ctx context.Context, partnerID uuid.UUID, kind domain.AccountKind, frozen bool, reason string) (*dto.PartnerResponse, error)

	// GetActiveCycle returns the active cycle, with the partner's stake when partnerID is given
	GetActiveCycle(ctx context.Context, partnerID *uuid.UUID) (*dto.ActiveCycleResponse, error)

	// GetCycle returns a cycle by number
	GetCycle(ctx context.Context, number int64) (*dto.CycleResponse, error)

	// SettleCycle settles the active cycle through the settlement workflow and waits for the result
	SettleCycle(ctx context.Context) (*dto.SettlementResponse, error)

	// PublishEvent publishes a business event to the broker, generating its id when empty
	PublishEvent(ctx context.Context, subject domain.EventSubject, req interface{}) (*dto.IngestResponse, error)
}

// Config holds the executor configuration
type Config struct {
	TaskQueue         string
	SettlementTimeout time.Duration
}

type executor struct {
	config       Config
	store        store.Store
	graph        referral.Graph
	pool         bonuspool.Manager
	withdrawals  withdrawal.Service
	publisher    messaging.Publisher
	orchestrator temporal.TemporalOrchestrator
	metrics      *metrics.Ledger
}

// NewExecutor creates the API executor
func NewExecutor(
	cfg Config,
	st store.Store,
	graph referral.Graph,
	pool bonuspool.Manager,
	withdrawals withdrawal.Service,
	publisher messaging.Publisher,
	orchestrator temporal.TemporalOrchestrator,
	m *metrics.Ledger,
) Executor {
	if cfg.SettlementTimeout <= 0 {
		cfg.SettlementTimeout = 5 * time.Minute
	}
	return &executor{
		config:       cfg,
		store:        st,
		graph:        graph,
		pool:         pool,
		withdrawals:  withdrawals,
		publisher:    publisher,
		orchestrator: orchestrator,
		metrics:      m,
	}
}

func (e *executor) GetPartner(ctx context.Context, partnerID uuid.UUID) (*dto.PartnerResponse, error) {
	partner, err := e.store.GetPartner(ctx, partnerID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get partner: %v", err))
	}
	if partner == nil {
		return nil, nil
	}

	available, err := e.store.GetAvailableCash(ctx, partnerID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get available cash: %v", err))
	}

	return dto.MapPartnerToDTO(partner, available), nil
}

func (e *executor) GetLedger(ctx context.Context, partnerID uuid.UUID, kind domain.AccountKind, limit, offset int) (*dto.LedgerListResponse, error) {
	if !kind.Valid() {
		return nil, apierrors.NewBadRequestError("Invalid account kind", string(kind))
	}

	entries, total, err := e.store.ListLedgerEntries(ctx, store.LedgerEntryFilter{
		PartnerID:   partnerID,
		AccountKind: kind,
		Limit:       limit,
		Offset:      offset,
	})
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list ledger entries: %v", err))
	}

	return dto.MapLedgerEntriesToDTO(entries, total, limit, offset), nil
}

func (e *executor) GetReferralSummary(ctx context.Context, partnerID uuid.UUID, depth int) (*dto.ReferralSummaryResponse, error) {
	if depth <= 0 || depth > domain.MaxReferralDepth {
		depth = constants.DEFAULT_REFERRAL_DEPTH
	}

	summary, err := e.graph.Summary(ctx, partnerID, depth)
	if err != nil {
		return nil, apierrors.FromError(err, "Failed to summarize referrals")
	}

	return dto.MapReferralSummaryToDTO(summary, depth), nil
}

func (e *executor) ListWithdrawals(ctx context.Context, partnerID uuid.UUID, status *domain.WithdrawalStatus, limit, offset int) (*dto.WithdrawalListResponse, error) {
	ws, total, err := e.withdrawals.ListByPartner(ctx, store.WithdrawalFilter{
		PartnerID: partnerID,
		Status:    status,
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list withdrawals: %v", err))
	}

	return dto.MapWithdrawalsToDTO(ws, total, limit, offset), nil
}

func (e *executor) RequestWithdrawal(ctx context.Context, partnerID uuid.UUID, amount int64) (*dto.WithdrawalResponse, error) {
	w, err := e.withdrawals.Request(ctx, partnerID, amount)
	if err != nil {
		return nil, apierrors.FromError(err, "Failed to request withdrawal")
	}

	resp := dto.MapWithdrawalToDTO(*w)
	return &resp, nil
}

func (e *executor) TransitionWithdrawal(ctx context.Context, id uuid.UUID, to domain.WithdrawalStatus, reason string) (*dto.WithdrawalResponse, error) {
	var (
		w   *schema.WithdrawalRequest
		err error
	)

	switch to {
	case domain.WithdrawalStatusApproved:
		w, err = e.withdrawals.Approve(ctx, id)
	case domain.WithdrawalStatusRejected:
		w, err = e.withdrawals.Reject(ctx, id, reason)
	case domain.WithdrawalStatusCompleted:
		w, err = e.withdrawals.Complete(ctx, id)
	default:
		return nil, apierrors.NewBadRequestError("Unsupported withdrawal status", string(to))
	}
	if err != nil {
		return nil, apierrors.FromError(err, "Failed to update withdrawal")
	}

	resp := dto.MapWithdrawalToDTO(*w)
	return &resp, nil
}

func (e *executor) UpdatePartnerStatus(ctx context.Context, partnerID uuid.UUID, status domain.PartnerStatus) (*dto.PartnerResponse, error) {
	partner, err := e.store.UpdatePartnerStatus(ctx, partnerID, status)
	if err != nil {
		return nil, apierrors.FromError(err, "Failed to update partner status")
	}

	logger.InfoCtx(ctx, "Partner status updated", logger.Partner(partnerID), zap.String("status", string(status)))

	available, err := e.store.GetAvailableCash(ctx, partnerID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get available cash: %v", err))
	}

	return dto.MapPartnerToDTO(partner, available), nil
}

func (e *executor) PostAdjustment(ctx context.Context, partnerID uuid.UUID, req dto.AdjustmentRequest) (*dto.AdjustmentResponse, error) {
	reference := req.ReferenceID
	if reference == "" {
		reference = constants.ADJUSTMENT_REFERENCE_PREFIX + ulid.Make().String()
	}

	var metadata map[string]interface{}
	if req.Note != "" {
		metadata = map[string]interface{}{"note": req.Note}
	}

	entry, err := e.store.AppendEntry(ctx, store.AppendEntryInput{
		PartnerID:   partnerID,
		AccountKind: req.AccountKind,
		Delta:       req.Delta,
		Reason:      domain.ReasonAdminAdjustment,
		ReferenceID: reference,
		Metadata:    metadata,
	})
	duplicate := errors.Is(err, domain.ErrDuplicateEvent)
	if err != nil && !duplicate {
		return nil, apierrors.FromError(err, "Failed to post adjustment")
	}

	if !duplicate {
		e.metrics.ObserveCredit(string(domain.ReasonAdminAdjustment), string(req.AccountKind), req.Delta)
		logger.InfoCtx(ctx, "Admin adjustment posted",
			logger.Partner(partnerID),
			logger.Account(string(req.AccountKind)),
			zap.Int64("delta", req.Delta),
			zap.String("referenceID", reference),
		)
	}

	resp := &dto.AdjustmentResponse{Duplicate: duplicate}
	if entry != nil {
		resp.Entry = dto.MapLedgerEntryToDTO(*entry)
	}
	return resp, nil
}

func (e *executor) SetAccountFrozen(ctx context.Context, partnerID uuid.UUID, kind domain.AccountKind, frozen bool, reason string) (*dto.PartnerResponse, error) {
	if !kind.Valid() {
		return nil, apierrors.NewBadRequestError("Invalid account kind", string(kind))
	}

	var err error
	if frozen {
		err = e.store.FreezeAccount(ctx, partnerID, kind, reason)
	} else {
		err = e.store.UnfreezeAccount(ctx, partnerID, kind)
	}
	if err != nil {
		return nil, apierrors.FromError(err, "Failed to update account")
	}

	logger.InfoCtx(ctx, "Account freeze updated",
		logger.Partner(partnerID),
		logger.Account(string(kind)),
		zap.Bool("frozen", frozen),
	)

	partner, err := e.GetPartner(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	if partner == nil {
		return nil, apierrors.NewNotFoundError("Partner not found")
	}
	return partner, nil
}

func (e *executor) GetActiveCycle(ctx context.Context, partnerID *uuid.UUID) (*dto.ActiveCycleResponse, error) {
	summary, err := e.pool.Summary(ctx, partnerID)
	if err != nil {
		return nil, apierrors.FromError(err, "Failed to get active cycle")
	}

	return dto.MapCycleSummaryToDTO(summary), nil
}

func (e *executor) GetCycle(ctx context.Context, number int64) (*dto.CycleResponse, error) {
	cycle, err := e.pool.GetCycle(ctx, number)
	if err != nil {
		return nil, apierrors.FromError(err, "Failed to get cycle")
	}

	return dto.MapCycleToDTO(cycle), nil
}

func (e *executor) SettleCycle(ctx context.Context) (*dto.SettlementResponse, error) {
	active, err := e.store.GetActiveCycle(ctx)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get active cycle: %v", err))
	}
	if active == nil {
		return nil, apierrors.FromError(domain.ErrNoActiveCycle, "Failed to settle cycle")
	}

	// A concurrent request for the same cycle joins the running workflow
	workflowID := workflows.SettlementWorkflowID(active.CycleNumber)
	options := client.StartWorkflowOptions{
		ID:                       workflowID,
		TaskQueue:                e.config.TaskQueue,
		WorkflowExecutionTimeout: e.config.SettlementTimeout,
	}

	ctx, cancel := context.WithTimeout(ctx, e.config.SettlementTimeout)
	defer cancel()

	w := workflows.NewWorkerCore(nil, workflows.WorkerCoreConfig{})
	var summary workflows.SettlementSummary
	req := workflows.SettleCycleRequest{CycleID: active.ID, CycleNumber: active.CycleNumber}
	if err := temporal.RunAndWait(ctx, e.orchestrator, options, &summary, w.SettleCycle, req); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("workflowID", workflowID))
		return nil, apierrors.NewServiceError("Failed to settle cycle", err.Error())
	}

	return &dto.SettlementResponse{
		Settled:        summary.Settled,
		AlreadySettled: summary.AlreadySettled,
		CycleNumber:    summary.CycleNumber,
		PerTokenValue:  summary.PerTokenValue,
		Participants:   summary.Participants,
		TotalPaid:      summary.TotalPaid,
		Remainder:      summary.Remainder,
		NextCycle:      summary.NextCycle,
		WorkflowID:     workflowID,
	}, nil
}

func (e *executor) PublishEvent(ctx context.Context, subject domain.EventSubject, req interface{}) (*dto.IngestResponse, error) {
	var (
		eventID string
		event   interface{}
	)

	switch r := req.(type) {
	case dto.OrderPaidRequest:
		eventID = r.EventID
		if eventID == "" {
			eventID = domain.OrderEventID(r.OrderID)
		}
		paidAt := time.Now().UTC()
		if r.PaidAt != nil {
			paidAt = *r.PaidAt
		}
		event = domain.OrderPaidEvent{
			EventID:   eventID,
			OrderID:   r.OrderID,
			PartnerID: r.PartnerID,
			Amount:    r.Amount,
			Kind:      r.Kind,
			PaidAt:    paidAt,
		}
	case dto.PartnerJoinedRequest:
		eventID = orNewID(r.EventID)
		event = domain.PartnerJoinedEvent{
			EventID:      eventID,
			PartnerID:    r.PartnerID,
			ReferrerID:   r.ReferrerID,
			ReferrerCode: r.ReferrerCode,
			ReferralCode: r.ReferralCode,
			Tier:         r.Tier,
			JoinedAt:     time.Now().UTC(),
		}
	case dto.MilestoneRequest:
		eventID = orNewID(r.EventID)
		event = domain.MilestoneEvent{
			EventID:   eventID,
			PartnerID: r.PartnerID,
			Amount:    r.Amount,
			Tokens:    r.Tokens,
		}
	default:
		return nil, apierrors.NewBadRequestError("Unsupported event", fmt.Sprintf("%T", req))
	}

	if err := e.publisher.PublishEvent(ctx, subject, eventID, event); err != nil {
		return nil, apierrors.NewServiceError("Failed to publish event", err.Error())
	}

	return &dto.IngestResponse{EventID: eventID, Subject: subject}, nil
}

// orNewID returns id, or a new ULID when id is empty
func orNewID(id string) string {
	if id != "" {
		return id
	}
	return ulid.Make().String()
}
