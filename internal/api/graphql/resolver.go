package graphql

import (
	"context"

	"github.com/google/uuid"

	"github.com/feral-file/ff-partner-ledger/internal/api/middleware"
	"github.com/feral-file/ff-partner-ledger/internal/api/shared/constants"
	"github.com/feral-file/ff-partner-ledger/internal/api/shared/dto"
	apierrors "github.com/feral-file/ff-partner-ledger/internal/api/shared/errors"
	"github.com/feral-file/ff-partner-ledger/internal/api/shared/executor"
	"github.com/feral-file/ff-partner-ledger/internal/domain"
)

// Resolver is the root resolver that holds executor
type Resolver struct {
	executor executor.Executor
}

// NewResolver creates a new root resolver with executor
func NewResolver(exec executor.Executor) *Resolver {
	return &Resolver{
		executor: exec,
	}
}

// Partner resolves Query.partner
func (r *Resolver) Partner(ctx context.Context, id uuid.UUID) (*dto.PartnerResponse, error) {
	if err := authorizePartner(ctx, id); err != nil {
		return nil, err
	}
	return r.executor.GetPartner(ctx, id)
}

// Ledger resolves Query.ledger
func (r *Resolver) Ledger(ctx context.Context, partnerID uuid.UUID, kind domain.AccountKind, limit, offset int) (*dto.LedgerListResponse, error) {
	if err := authorizePartner(ctx, partnerID); err != nil {
		return nil, err
	}
	if limit < 0 || offset < 0 {
		return nil, apierrors.NewBadRequestError("limit and offset must not be negative")
	}
	if limit == 0 {
		limit = constants.DEFAULT_LEDGER_LIMIT
	}
	if limit > constants.MAX_PAGE_SIZE {
		limit = constants.MAX_PAGE_SIZE
	}
	return r.executor.GetLedger(ctx, partnerID, kind, limit, offset)
}

// ReferralTree resolves Query.referral_tree
func (r *Resolver) ReferralTree(ctx context.Context, partnerID uuid.UUID, depth int) (*referralTree, error) {
	if err := authorizePartner(ctx, partnerID); err != nil {
		return nil, err
	}
	summary, err := r.executor.GetReferralSummary(ctx, partnerID, depth)
	if err != nil {
		return nil, err
	}
	return mapReferralTree(summary), nil
}

// ActiveCycle resolves Query.active_cycle. A partner without partner_id gets its own stake.
func (r *Resolver) ActiveCycle(ctx context.Context, partnerID *uuid.UUID) (*dto.ActiveCycleResponse, error) {
	if partnerID == nil {
		if gc := ginContextFromContext(ctx); gc != nil && !middleware.IsOperator(gc) {
			if subject := middleware.AuthSubject(gc); subject != "" {
				id, err := uuid.Parse(subject)
				if err != nil {
					return nil, apierrors.NewBadRequestError("Invalid partner subject", subject)
				}
				partnerID = &id
			}
		}
	}
	if partnerID != nil {
		if err := authorizePartner(ctx, *partnerID); err != nil {
			return nil, err
		}
	}
	return r.executor.GetActiveCycle(ctx, partnerID)
}

// Cycle resolves Query.cycle
func (r *Resolver) Cycle(ctx context.Context, number int64) (*dto.CycleResponse, error) {
	if number <= 0 {
		return nil, apierrors.NewBadRequestError("Invalid cycle number")
	}
	return r.executor.GetCycle(ctx, number)
}
