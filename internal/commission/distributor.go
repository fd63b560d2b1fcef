package commission

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/feral-file/ff-partner-ledger/internal/adapter"
	"github.com/feral-file/ff-partner-ledger/internal/domain"
	"github.com/feral-file/ff-partner-ledger/internal/logger"
	"github.com/feral-file/ff-partner-ledger/internal/metrics"
	"github.com/feral-file/ff-partner-ledger/internal/referral"
	"github.com/feral-file/ff-partner-ledger/internal/store"
	"github.com/feral-file/ff-partner-ledger/internal/store/schema"
)

// Config holds the commission rules
type Config struct {
	Tiers       domain.TierTable
	Eligibility EligibilityPolicy
	// Accounts selects the account credited per event kind
	Accounts map[domain.EventKind]domain.AccountKind
}

// Distributor turns qualifying events into tiered ledger credits up the referral chain
//
//go:generate mockgen -source=distributor.go -destination=../mocks/distributor.go -package=mocks -mock_names=Distributor=MockDistributor
type Distributor interface {
	// Distribute credits the ancestors of the acting partner exactly once per event id.
	// A replay returns the originally written entries together with domain.ErrDuplicateEvent.
	Distribute(ctx context.Context, event domain.QualifyingEvent) ([]schema.LedgerEntry, error)
	// Plan computes the credits of an event without writing them
	Plan(ctx context.Context, event domain.QualifyingEvent) ([]store.AppendEntryInput, error)
}

type distributor struct {
	config  Config
	graph   referral.Graph
	ledger  store.LedgerStore
	hasher  adapter.PayloadHasher
	metrics *metrics.Ledger
}

// NewDistributor creates a distributor; zero config fields fall back to the default tier table,
// CreditAllStatuses and DefaultAccounts
func NewDistributor(
	cfg Config,
	graph referral.Graph,
	ledger store.LedgerStore,
	hasher adapter.PayloadHasher,
	m *metrics.Ledger,
) (Distributor, error) {
	if len(cfg.Tiers) == 0 {
		cfg.Tiers = domain.DefaultTierTable
	}
	if err := cfg.Tiers.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tier table: %w", err)
	}
	if cfg.Eligibility == nil {
		cfg.Eligibility = CreditAllStatuses
	}

	accounts := DefaultAccounts()
	for kind, account := range cfg.Accounts {
		if !kind.Valid() || !account.Valid() {
			return nil, fmt.Errorf("invalid account mapping %s -> %s", kind, account)
		}
		accounts[kind] = account
	}
	cfg.Accounts = accounts

	return &distributor{
		config:  cfg,
		graph:   graph,
		ledger:  ledger,
		hasher:  hasher,
		metrics: m,
	}, nil
}

func validateEvent(event domain.QualifyingEvent) error {
	if event.ID == "" {
		return errors.New("event id is required")
	}
	if !event.Kind.Valid() {
		return fmt.Errorf("unknown event kind %q", event.Kind)
	}
	if event.Amount <= 0 {
		return fmt.Errorf("%w: %d", domain.ErrInvalidAmount, event.Amount)
	}
	return nil
}

func (d *distributor) Plan(ctx context.Context, event domain.QualifyingEvent) ([]store.AppendEntryInput, error) {
	if err := validateEvent(event); err != nil {
		return nil, err
	}

	ancestors, err := d.graph.AncestorsOf(ctx, event.PartnerID, d.config.Tiers.MaxDepth())
	if err != nil {
		return nil, fmt.Errorf("failed to resolve ancestors: %w", err)
	}

	account := d.config.Accounts[event.Kind]
	entries := make([]store.AppendEntryInput, 0, len(ancestors))
	for _, a := range ancestors {
		if !d.config.Eligibility(a) {
			continue
		}

		bps, ok := d.config.Tiers.RateAt(a.Depth)
		if !ok {
			continue
		}

		amount, err := domain.ApplyRate(event.Amount, bps)
		if err != nil {
			return nil, err
		}
		if amount == 0 {
			continue
		}

		entries = append(entries, store.AppendEntryInput{
			PartnerID:   a.PartnerID,
			AccountKind: account,
			Delta:       amount,
			Reason:      reasonFor(event.Kind, a.Depth),
			ReferenceID: event.ID,
			Metadata: map[string]interface{}{
				"depth":             a.Depth,
				"rate_bps":          bps,
				"event_kind":        string(event.Kind),
				"source_partner_id": event.PartnerID.String(),
				"qualifying_amount": event.Amount,
			},
		})
	}

	return entries, nil
}

func (d *distributor) Distribute(ctx context.Context, event domain.QualifyingEvent) ([]schema.LedgerEntry, error) {
	entries, err := d.Plan(ctx, event)
	if err != nil {
		d.metrics.ObserveDistribution(string(event.Kind), "rejected")
		return nil, err
	}

	hash, err := d.hasher.Hash(event)
	if err != nil {
		return nil, fmt.Errorf("failed to hash event: %w", err)
	}

	written, err := d.ledger.ApplyDistribution(ctx, store.ApplyDistributionInput{
		EventID:     event.ID,
		Scope:       domain.EventScopeDistribution,
		PayloadHash: hash,
		Entries:     entries,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEvent) {
			d.metrics.ObserveDistribution(string(event.Kind), "duplicate")
			logger.InfoCtx(ctx, "Event already distributed", logger.Event(event.ID))
			return written, err
		}
		d.metrics.ObserveDistribution(string(event.Kind), "failed")
		return nil, fmt.Errorf("failed to apply distribution: %w", err)
	}

	var total int64
	for _, e := range written {
		d.metrics.ObserveCredit(string(e.Reason), string(e.AccountKind), e.Delta)
		total += e.Delta
	}
	d.metrics.ObserveDistribution(string(event.Kind), "applied")

	logger.InfoCtx(ctx, "Commission distributed",
		logger.Event(event.ID),
		logger.Partner(event.PartnerID),
		zap.String("kind", string(event.Kind)),
		zap.Int("credits", len(written)),
		zap.Int64("total", total),
	)

	return written, nil
}
