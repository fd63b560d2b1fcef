package workflows

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.temporal.io/sdk/temporal"
	"go.uber.org/zap"

	"github.com/feral-file/ff-partner-ledger/internal/adapter"
	"github.com/feral-file/ff-partner-ledger/internal/bonuspool"
	"github.com/feral-file/ff-partner-ledger/internal/commission"
	"github.com/feral-file/ff-partner-ledger/internal/domain"
	"github.com/feral-file/ff-partner-ledger/internal/logger"
	"github.com/feral-file/ff-partner-ledger/internal/referral"
	"github.com/feral-file/ff-partner-ledger/internal/store"
)

// Executor defines the activities run by the partner ledger workflows
//
//go:generate mockgen -source=executor.go -destination=../mocks/executor.go -package=mocks -mock_names=Executor=MockExecutor
type Executor interface {
	// EnrollPartner creates the partner of a partner_joined event along with its referral edge
	EnrollPartner(ctx context.Context, event domain.PartnerJoinedEvent) (*EnrollmentResult, error)

	// DistributeCommission credits the referral chain of the acting partner once per event id
	DistributeCommission(ctx context.Context, event domain.QualifyingEvent) (*DistributionResult, error)

	// AccumulatePoolSales adds the pool share of a paid order to the active cycle
	AccumulatePoolSales(ctx context.Context, orderID string, amount int64) error

	// IssueTokens credits rwa tokens for a grant and returns the number issued
	IssueTokens(ctx context.Context, grant TokenGrant) (int64, error)

	// SettlePoolCycle settles the cycle named by the request; a cycle settled by an earlier attempt is reported, never re-run
	SettlePoolCycle(ctx context.Context, req SettleCycleRequest) (*SettlementSummary, error)
}

// EnrollmentResult is the outcome of EnrollPartner
type EnrollmentResult struct {
	PartnerID  uuid.UUID  `json:"partner_id"`
	ReferrerID *uuid.UUID `json:"referrer_id,omitempty"`
	Tier       int        `json:"tier"`
	Duplicate  bool       `json:"duplicate"`
}

// DistributionResult is the outcome of DistributeCommission
type DistributionResult struct {
	Entries   int   `json:"entries"`
	Total     int64 `json:"total"`
	Duplicate bool  `json:"duplicate"`
}

// TokenGrant describes an rwa issuance; the count is derived from the source
type TokenGrant struct {
	PartnerID   uuid.UUID          `json:"partner_id"`
	Source      domain.TokenSource `json:"source"`
	ReferenceID string             `json:"reference_id"`
	// Tier sizes package grants
	Tier int `json:"tier,omitempty"`
	// Amount sizes network_order grants
	Amount int64 `json:"amount,omitempty"`
	// Count is used as is for milestone and referral grants
	Count int64 `json:"count,omitempty"`
}

// SettlementSummary is the outcome of SettlePoolCycle
type SettlementSummary struct {
	Settled       bool  `json:"settled"`
	CycleNumber   int64 `json:"cycle_number"`
	PerTokenValue int64 `json:"per_token_value"`
	Participants  int64 `json:"participants"`
	TotalPaid     int64 `json:"total_paid"`
	Remainder     int64 `json:"remainder"`
	NextCycle     int64 `json:"next_cycle"`

	// AlreadySettled is set when the cycle was settled before this call; TotalPaid is then unknown
	AlreadySettled bool `json:"already_settled"`
}

// SettleCycleRequest pins a settlement to one cycle
type SettleCycleRequest struct {
	CycleID     int64 `json:"cycle_id"`
	CycleNumber int64 `json:"cycle_number"`
}

// ExecutorConfig holds enrollment rules
type ExecutorConfig struct {
	// AutoActivate enrolls partners as active instead of pending
	AutoActivate bool
}

// executor is the concrete implementation of Executor
type executor struct {
	config      ExecutorConfig
	store       store.Store
	graph       referral.Graph
	distributor commission.Distributor
	pool        bonuspool.Manager
	hasher      adapter.PayloadHasher
}

// NewExecutor creates a new executor instance
func NewExecutor(
	config ExecutorConfig,
	store store.Store,
	graph referral.Graph,
	distributor commission.Distributor,
	pool bonuspool.Manager,
	hasher adapter.PayloadHasher,
) Executor {
	return &executor{
		config:      config,
		store:       store,
		graph:       graph,
		distributor: distributor,
		pool:        pool,
		hasher:      hasher,
	}
}

// nonRetryable lists the failures a retry cannot fix, by application error type
var nonRetryable = []struct {
	err      error
	typeName string
}{
	{domain.ErrInvalidAmount, "InvalidAmount"},
	{domain.ErrCyclicReferral, "CyclicReferral"},
	{domain.ErrReferrerAlreadySet, "ReferrerAlreadySet"},
	{domain.ErrEventPayloadMismatch, "EventPayloadMismatch"},
	{domain.ErrPartnerNotFound, "PartnerNotFound"},
	{domain.ErrPartnerAlreadyExists, "PartnerAlreadyExists"},
	{domain.ErrInsufficientBalance, "InsufficientBalance"},
	{domain.ErrAccountFrozen, "AccountFrozen"},
	{domain.ErrInvalidAccountKind, "InvalidAccountKind"},
}

// activityError turns structural domain failures into non-retryable application errors
func activityError(err error) error {
	if err == nil {
		return nil
	}
	for _, n := range nonRetryable {
		if errors.Is(err, n.err) {
			return temporal.NewNonRetryableApplicationError(err.Error(), n.typeName, err)
		}
	}
	return err
}

// EnrollPartner creates the partner of a partner_joined event
func (e *executor) EnrollPartner(ctx context.Context, event domain.PartnerJoinedEvent) (*EnrollmentResult, error) {
	if event.EventID == "" || event.PartnerID == uuid.Nil {
		return nil, temporal.NewNonRetryableApplicationError("invalid partner_joined event", "InvalidEvent", nil)
	}

	referrerID, err := e.graph.ResolveReferrer(ctx, event.ReferrerID, event.ReferrerCode)
	if err != nil {
		return nil, activityError(fmt.Errorf("failed to resolve referrer: %w", err))
	}

	hash, err := e.hasher.Hash(event)
	if err != nil {
		return nil, fmt.Errorf("failed to hash event: %w", err)
	}

	status := domain.PartnerStatusPending
	if e.config.AutoActivate {
		status = domain.PartnerStatusActive
	}

	partner, err := e.store.CreatePartner(ctx, store.CreatePartnerInput{
		ID:           event.PartnerID,
		ReferrerID:   referrerID,
		Tier:         event.Tier,
		Status:       status,
		ReferralCode: event.ReferralCode,
		EventID:      event.EventID,
		PayloadHash:  hash,
	})
	duplicate := errors.Is(err, domain.ErrDuplicateEvent)
	if err != nil && !duplicate {
		return nil, activityError(fmt.Errorf("failed to enroll partner: %w", err))
	}
	if partner == nil {
		return nil, fmt.Errorf("enrolled partner %s not found", event.PartnerID)
	}

	if duplicate {
		logger.InfoCtx(ctx, "Partner already enrolled", logger.Event(event.EventID), logger.Partner(event.PartnerID))
	} else {
		logger.InfoCtx(ctx, "Partner enrolled",
			logger.Event(event.EventID),
			logger.Partner(partner.ID),
			zap.Int("tier", partner.Tier),
			zap.String("status", string(partner.Status)),
		)
	}

	return &EnrollmentResult{
		PartnerID:  partner.ID,
		ReferrerID: partner.ReferrerID,
		Tier:       partner.Tier,
		Duplicate:  duplicate,
	}, nil
}

// DistributeCommission credits the referral chain of the acting partner
func (e *executor) DistributeCommission(ctx context.Context, event domain.QualifyingEvent) (*DistributionResult, error) {
	entries, err := e.distributor.Distribute(ctx, event)
	duplicate := errors.Is(err, domain.ErrDuplicateEvent)
	if err != nil && !duplicate {
		return nil, activityError(err)
	}

	result := &DistributionResult{Entries: len(entries), Duplicate: duplicate}
	for _, entry := range entries {
		result.Total += entry.Delta
	}

	return result, nil
}

// AccumulatePoolSales adds the pool share of a paid order to the active cycle
func (e *executor) AccumulatePoolSales(ctx context.Context, orderID string, amount int64) error {
	_, err := e.pool.AccumulateSales(ctx, orderID, amount)
	if errors.Is(err, domain.ErrDuplicateEvent) {
		logger.InfoCtx(ctx, "Order already counted toward the pool", zap.String("orderID", orderID))
		return nil
	}

	return activityError(err)
}

// IssueTokens credits rwa tokens for a grant
func (e *executor) IssueTokens(ctx context.Context, grant TokenGrant) (int64, error) {
	var count int64
	switch grant.Source {
	case domain.TokenSourcePackage:
		count = e.pool.PackageTokens(grant.Tier)
	case domain.TokenSourceNetworkOrder:
		count = e.pool.TokensForAmount(grant.Amount)
	case domain.TokenSourceMilestone, domain.TokenSourceReferral:
		count = grant.Count
	default:
		return 0, temporal.NewNonRetryableApplicationError(
			fmt.Sprintf("unknown token source %q", grant.Source), "InvalidTokenSource", nil)
	}
	if count <= 0 {
		return 0, nil
	}

	_, err := e.pool.IssueTokens(ctx, store.IssueTokensInput{
		PartnerID:   grant.PartnerID,
		Count:       count,
		Source:      grant.Source,
		ReferenceID: grant.ReferenceID,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEvent) {
			return count, nil
		}
		return 0, activityError(err)
	}

	return count, nil
}

// SettlePoolCycle settles exactly the requested cycle.
// A retry after a committed attempt gets ErrCycleAlreadySettled and reports the frozen figures.
func (e *executor) SettlePoolCycle(ctx context.Context, req SettleCycleRequest) (*SettlementSummary, error) {
	if req.CycleID <= 0 {
		return nil, temporal.NewNonRetryableApplicationError("missing cycle id", "InvalidSettlement", nil)
	}

	result, err := e.pool.Settle(ctx, req.CycleID)
	if errors.Is(err, domain.ErrCycleAlreadySettled) {
		return e.settledSummary(ctx, req)
	}
	if err != nil {
		// ErrSettlementInProgress stays retryable; the other settler commits and the retry reports it
		return nil, activityError(err)
	}

	return &SettlementSummary{
		Settled:       true,
		CycleNumber:   result.Settled.CycleNumber,
		PerTokenValue: result.PerTokenValue,
		Participants:  result.Participants,
		TotalPaid:     result.TotalPaid,
		Remainder:     result.Remainder,
		NextCycle:     result.Next.CycleNumber,
	}, nil
}

// settledSummary reads back the figures frozen on an already settled cycle
func (e *executor) settledSummary(ctx context.Context, req SettleCycleRequest) (*SettlementSummary, error) {
	cycle, err := e.pool.GetCycle(ctx, req.CycleNumber)
	if err != nil {
		return nil, activityError(fmt.Errorf("failed to read settled cycle %d: %w", req.CycleNumber, err))
	}

	logger.InfoCtx(ctx, "Cycle already settled", logger.Cycle(cycle.CycleNumber))

	summary := &SettlementSummary{
		AlreadySettled: true,
		CycleNumber:    cycle.CycleNumber,
		NextCycle:      cycle.CycleNumber + 1,
	}
	if cycle.PerTokenValue != nil {
		summary.PerTokenValue = *cycle.PerTokenValue
	}
	if cycle.ParticipatingPartners != nil {
		summary.Participants = *cycle.ParticipatingPartners
	}
	if cycle.Remainder != nil {
		summary.Remainder = *cycle.Remainder
	}

	return summary, nil
}
