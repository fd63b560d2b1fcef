package referral

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/feral-file/ff-partner-ledger/internal/domain"
	"github.com/feral-file/ff-partner-ledger/internal/logger"
	"github.com/feral-file/ff-partner-ledger/internal/store"
)

// Graph is the referral forest
//
//go:generate mockgen -source=graph.go -destination=../mocks/referral_graph.go -package=mocks -mock_names=Graph=MockReferralGraph
type Graph interface {
	// AncestorsOf returns the referral chain of partnerID from depth 1, at most maxDepth entries
	AncestorsOf(ctx context.Context, partnerID uuid.UUID, maxDepth int) ([]domain.Ancestor, error)
	// DescendantsOf returns the downline of partnerID, at most maxDepth levels deep
	DescendantsOf(ctx context.Context, partnerID uuid.UUID, maxDepth int) ([]domain.Descendant, error)
	// AssignReferrer creates the edge partnerID -> referrerID; it fails with ErrCyclicReferral when
	// referrerID is partnerID or one of its descendants
	AssignReferrer(ctx context.Context, partnerID, referrerID uuid.UUID) error
	// Summary counts the downline per level
	Summary(ctx context.Context, partnerID uuid.UUID, maxDepth int) (*domain.ReferralSummary, error)
	// ResolveReferrer turns a referrer id or referral code into a partner id, nil when neither is given
	ResolveReferrer(ctx context.Context, referrerID *uuid.UUID, referrerCode string) (*uuid.UUID, error)
}

type graph struct {
	store store.PartnerStore
}

// NewGraph creates a referral graph over the partner store
func NewGraph(st store.PartnerStore) Graph {
	return &graph{store: st}
}

// clampDepth bounds a requested traversal depth to 0..MaxReferralDepth
func clampDepth(depth int) int {
	return max(0, min(depth, domain.MaxReferralDepth))
}

func (g *graph) AncestorsOf(ctx context.Context, partnerID uuid.UUID, maxDepth int) ([]domain.Ancestor, error) {
	return g.store.GetAncestors(ctx, partnerID, clampDepth(maxDepth))
}

func (g *graph) DescendantsOf(ctx context.Context, partnerID uuid.UUID, maxDepth int) ([]domain.Descendant, error) {
	return g.store.GetDescendants(ctx, partnerID, clampDepth(maxDepth))
}

func (g *graph) AssignReferrer(ctx context.Context, partnerID, referrerID uuid.UUID) error {
	if err := g.store.AssignReferrer(ctx, partnerID, referrerID); err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Referrer assigned", logger.Partner(partnerID), zap.Stringer("referrerID", referrerID))
	return nil
}

func (g *graph) Summary(ctx context.Context, partnerID uuid.UUID, maxDepth int) (*domain.ReferralSummary, error) {
	return g.store.GetReferralSummary(ctx, partnerID, clampDepth(maxDepth))
}

func (g *graph) ResolveReferrer(ctx context.Context, referrerID *uuid.UUID, referrerCode string) (*uuid.UUID, error) {
	if referrerID != nil {
		return referrerID, nil
	}
	if referrerCode == "" {
		return nil, nil
	}

	partner, err := g.store.GetPartnerByReferralCode(ctx, referrerCode)
	if err != nil {
		return nil, err
	}
	if partner == nil {
		return nil, fmt.Errorf("%w: referral code %q", domain.ErrPartnerNotFound, referrerCode)
	}

	return &partner.ID, nil
}
