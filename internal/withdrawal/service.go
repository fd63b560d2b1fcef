package withdrawal

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/feral-file/ff-partner-ledger/internal/domain"
	"github.com/feral-file/ff-partner-ledger/internal/logger"
	"github.com/feral-file/ff-partner-ledger/internal/metrics"
	"github.com/feral-file/ff-partner-ledger/internal/store"
	"github.com/feral-file/ff-partner-ledger/internal/store/schema"
)

// Service manages withdrawal requests: pending -> approved -> completed, or pending -> rejected
//
//go:generate mockgen -source=service.go -destination=../mocks/withdrawal.go -package=mocks -mock_names=Service=MockWithdrawalService
type Service interface {
	// Request reserves cash for a new pending withdrawal
	Request(ctx context.Context, partnerID uuid.UUID, amount int64) (*schema.WithdrawalRequest, error)
	Approve(ctx context.Context, id uuid.UUID) (*schema.WithdrawalRequest, error)
	Reject(ctx context.Context, id uuid.UUID, reason string) (*schema.WithdrawalRequest, error)
	// Complete debits the partner's cash account
	Complete(ctx context.Context, id uuid.UUID) (*schema.WithdrawalRequest, error)
	Get(ctx context.Context, id uuid.UUID) (*schema.WithdrawalRequest, error)
	ListByPartner(ctx context.Context, filter store.WithdrawalFilter) ([]schema.WithdrawalRequest, int64, error)
}

type service struct {
	store   store.WithdrawalStore
	metrics *metrics.Ledger
}

// NewService creates a withdrawal service
func NewService(st store.WithdrawalStore, m *metrics.Ledger) Service {
	return &service{store: st, metrics: m}
}

func (s *service) Request(ctx context.Context, partnerID uuid.UUID, amount int64) (*schema.WithdrawalRequest, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidAmount, amount)
	}

	w, err := s.store.CreateWithdrawal(ctx, store.CreateWithdrawalInput{
		ID:        uuid.New(),
		PartnerID: partnerID,
		Amount:    amount,
	})
	if err != nil {
		s.metrics.ObserveWithdrawal("refused")
		return nil, err
	}

	s.metrics.ObserveWithdrawal(string(w.Status))
	logger.InfoCtx(ctx, "Withdrawal requested",
		logger.Partner(partnerID),
		zap.Stringer("withdrawalID", w.ID),
		zap.Int64("amount", amount),
	)

	return w, nil
}

func (s *service) Approve(ctx context.Context, id uuid.UUID) (*schema.WithdrawalRequest, error) {
	return s.transition(ctx, id, domain.WithdrawalStatusApproved, nil)
}

func (s *service) Reject(ctx context.Context, id uuid.UUID, reason string) (*schema.WithdrawalRequest, error) {
	reason = strings.TrimSpace(reason)
	var r *string
	if reason != "" {
		r = &reason
	}
	return s.transition(ctx, id, domain.WithdrawalStatusRejected, r)
}

func (s *service) Complete(ctx context.Context, id uuid.UUID) (*schema.WithdrawalRequest, error) {
	return s.transition(ctx, id, domain.WithdrawalStatusCompleted, nil)
}

func (s *service) transition(ctx context.Context, id uuid.UUID, to domain.WithdrawalStatus, reason *string) (*schema.WithdrawalRequest, error) {
	w, err := s.store.TransitionWithdrawal(ctx, store.TransitionWithdrawalInput{
		ID:     id,
		To:     to,
		Reason: reason,
	})
	if err != nil {
		return nil, err
	}

	s.metrics.ObserveWithdrawal(string(w.Status))
	logger.InfoCtx(ctx, "Withdrawal transitioned",
		logger.Partner(w.PartnerID),
		zap.Stringer("withdrawalID", w.ID),
		zap.String("status", string(w.Status)),
	)

	return w, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*schema.WithdrawalRequest, error) {
	w, err := s.store.GetWithdrawal(ctx, id)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrWithdrawalNotFound, id)
	}
	return w, nil
}

func (s *service) ListByPartner(ctx context.Context, filter store.WithdrawalFilter) ([]schema.WithdrawalRequest, int64, error) {
	return s.store.ListWithdrawals(ctx, filter)
}
