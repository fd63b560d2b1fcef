package bonuspool

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/feral-file/ff-partner-ledger/internal/adapter"
	"github.com/feral-file/ff-partner-ledger/internal/domain"
	"github.com/feral-file/ff-partner-ledger/internal/logger"
	"github.com/feral-file/ff-partner-ledger/internal/metrics"
	"github.com/feral-file/ff-partner-ledger/internal/store"
	"github.com/feral-file/ff-partner-ledger/internal/store/schema"
)

// Config holds the bonus pool rules
type Config struct {
	CycleLength    time.Duration
	SalesToPoolBps int64
	// CarryRemainder seeds the next cycle's pool with the undistributed remainder
	CarryRemainder bool
	// PackageTokens is the number of rwa tokens issued per enrollment tier
	PackageTokens map[int]int64
	// AmountPerToken is the order amount, in minor units, that earns one network_order token
	AmountPerToken int64
}

// CycleSummary is the active cycle projection shown to partners
type CycleSummary struct {
	CycleNumber   int64      `json:"cycle_number"`
	PoolAmount    int64      `json:"pool_amount"`
	TotalTokens   int64      `json:"total_tokens"`
	SalesTotal    int64      `json:"sales_total"`
	CarriedIn     int64      `json:"carried_in"`
	StartsAt      time.Time  `json:"starts_at"`
	EndsAt        time.Time  `json:"ends_at"`
	DaysRemaining int64      `json:"days_remaining"`
	PartnerID     *uuid.UUID `json:"partner_id,omitempty"`
	PartnerTokens int64      `json:"partner_tokens"`
	ShareBps      int64      `json:"share_bps"`
}

// Manager drives the bonus pool cycle state machine
//
//go:generate mockgen -source=manager.go -destination=../mocks/bonuspool.go -package=mocks -mock_names=Manager=MockBonusPoolManager
type Manager interface {
	// EnsureActiveCycle returns the active cycle, bootstrapping cycle 1 when none exists
	EnsureActiveCycle(ctx context.Context) (*schema.BonusPoolCycle, error)
	// AccumulateSales adds the pool share of a paid order to the active cycle, once per order id
	AccumulateSales(ctx context.Context, orderID string, amount int64) (*schema.BonusPoolCycle, error)
	// IssueTokens credits rwa tokens and counts them toward the active cycle
	IssueTokens(ctx context.Context, input store.IssueTokensInput) (*schema.LedgerEntry, error)
	// Settle pays the dividends of a cycle and opens the next one
	Settle(ctx context.Context, cycleID int64) (*store.SettlementResult, error)
	// CheckAndSettle settles the active cycle when it is due; it returns nil when nothing was settled
	CheckAndSettle(ctx context.Context) (*store.SettlementResult, error)
	// Summary describes the active cycle, and the partner's stake in it when partnerID is given
	Summary(ctx context.Context, partnerID *uuid.UUID) (*CycleSummary, error)
	// GetCycle returns a cycle by number
	GetCycle(ctx context.Context, number int64) (*schema.BonusPoolCycle, error)
	// PackageTokens returns the tokens issued for an enrollment tier
	PackageTokens(tier int) int64
	// TokensForAmount returns the network_order tokens earned by an order amount
	TokensForAmount(amount int64) int64
}

type manager struct {
	config  Config
	cycles  store.CycleStore
	ledger  store.LedgerStore
	hasher  adapter.PayloadHasher
	clock   adapter.Clock
	metrics *metrics.Ledger
}

// NewManager creates a bonus pool manager
func NewManager(
	cfg Config,
	cycles store.CycleStore,
	ledger store.LedgerStore,
	hasher adapter.PayloadHasher,
	clock adapter.Clock,
	m *metrics.Ledger,
) Manager {
	if cfg.CycleLength <= 0 {
		cfg.CycleLength = domain.DefaultCycleLength
	}
	if cfg.SalesToPoolBps <= 0 {
		cfg.SalesToPoolBps = domain.DefaultSalesToPoolBps
	}

	return &manager{
		config:  cfg,
		cycles:  cycles,
		ledger:  ledger,
		hasher:  hasher,
		clock:   clock,
		metrics: m,
	}
}

func (m *manager) EnsureActiveCycle(ctx context.Context) (*schema.BonusPoolCycle, error) {
	return m.cycles.EnsureActiveCycle(ctx, m.clock.Now(), m.config.CycleLength)
}

// salesPayload is the hashed form of a pool accumulation
type salesPayload struct {
	OrderID string `json:"order_id"`
	Amount  int64  `json:"amount"`
}

func (m *manager) AccumulateSales(ctx context.Context, orderID string, amount int64) (*schema.BonusPoolCycle, error) {
	if orderID == "" {
		return nil, errors.New("order id is required")
	}

	if amount <= 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidAmount, amount)
	}
	contribution, err := domain.PoolContribution(amount, m.config.SalesToPoolBps)
	if err != nil {
		return nil, err
	}

	hash, err := m.hasher.Hash(salesPayload{OrderID: orderID, Amount: amount})
	if err != nil {
		return nil, fmt.Errorf("failed to hash sales payload: %w", err)
	}

	if _, err := m.EnsureActiveCycle(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure active cycle: %w", err)
	}

	cycle, err := m.cycles.AccumulateSales(ctx, store.AccumulateSalesInput{
		OrderID:      orderID,
		Amount:       amount,
		Contribution: contribution,
		PayloadHash:  hash,
	})
	if err != nil {
		return nil, err
	}

	logger.DebugCtx(ctx, "Sales accumulated",
		logger.Cycle(cycle.CycleNumber),
		zap.String("orderID", orderID),
		zap.Int64("contribution", contribution),
		zap.Int64("pool", cycle.PoolAmount),
	)

	return cycle, nil
}

func (m *manager) IssueTokens(ctx context.Context, input store.IssueTokensInput) (*schema.LedgerEntry, error) {
	if _, err := m.EnsureActiveCycle(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure active cycle: %w", err)
	}

	entry, err := m.cycles.IssueTokens(ctx, input)
	if err != nil {
		return entry, err
	}

	m.metrics.ObserveCredit(string(entry.Reason), string(entry.AccountKind), entry.Delta)
	return entry, nil
}

func (m *manager) Settle(ctx context.Context, cycleID int64) (*store.SettlementResult, error) {
	result, err := m.cycles.SettleCycle(ctx, store.SettleCycleInput{
		CycleID:        cycleID,
		SettledAt:      m.clock.Now(),
		NextLength:     m.config.CycleLength,
		CarryRemainder: m.config.CarryRemainder,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCycleAlreadySettled):
			m.metrics.ObserveSettlement("already_settled")
		case errors.Is(err, domain.ErrSettlementInProgress):
			m.metrics.ObserveSettlement("in_progress")
		default:
			m.metrics.ObserveSettlement("failed")
		}
		return nil, err
	}

	m.metrics.ObserveSettlement("settled")
	m.metrics.SetSettledCycle(result.Settled.CycleNumber, result.PerTokenValue, result.Remainder)
	logger.InfoCtx(ctx, "Cycle settled",
		logger.Cycle(result.Settled.CycleNumber),
		zap.Int64("pool", result.Settled.PoolAmount),
		zap.Int64("perTokenValue", result.PerTokenValue),
		zap.Int64("participants", result.Participants),
		zap.Int64("totalPaid", result.TotalPaid),
		zap.Int64("remainder", result.Remainder),
		zap.Int64("nextCycle", result.Next.CycleNumber),
	)

	return result, nil
}

func (m *manager) CheckAndSettle(ctx context.Context) (*store.SettlementResult, error) {
	active, err := m.EnsureActiveCycle(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure active cycle: %w", err)
	}

	now := m.clock.Now()
	if now.Before(active.EndsAt) {
		return nil, nil
	}

	result, err := m.Settle(ctx, active.ID)
	if err != nil {
		if errors.Is(err, domain.ErrCycleAlreadySettled) || errors.Is(err, domain.ErrSettlementInProgress) {
			logger.InfoCtx(ctx, "Cycle settled elsewhere", logger.Cycle(active.CycleNumber), zap.Error(err))
			return nil, nil
		}
		return nil, err
	}

	return result, nil
}

func (m *manager) Summary(ctx context.Context, partnerID *uuid.UUID) (*CycleSummary, error) {
	cycle, err := m.EnsureActiveCycle(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure active cycle: %w", err)
	}

	summary := &CycleSummary{
		CycleNumber:   cycle.CycleNumber,
		PoolAmount:    cycle.PoolAmount,
		TotalTokens:   cycle.TotalTokens,
		SalesTotal:    cycle.SalesTotal,
		CarriedIn:     cycle.CarriedIn,
		StartsAt:      cycle.StartsAt,
		EndsAt:        cycle.EndsAt,
		DaysRemaining: domain.DaysRemaining(m.clock.Now(), cycle.EndsAt),
	}

	if partnerID != nil {
		tokens, err := m.ledger.GetBalance(ctx, *partnerID, domain.AccountRWA)
		if err != nil {
			return nil, err
		}
		summary.PartnerID = partnerID
		summary.PartnerTokens = tokens
		summary.ShareBps = domain.TokenShareBps(tokens, cycle.TotalTokens)
	}

	return summary, nil
}

func (m *manager) GetCycle(ctx context.Context, number int64) (*schema.BonusPoolCycle, error) {
	cycle, err := m.cycles.GetCycleByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	if cycle == nil {
		return nil, fmt.Errorf("%w: %d", domain.ErrCycleNotFound, number)
	}
	return cycle, nil
}

func (m *manager) PackageTokens(tier int) int64 {
	return m.config.PackageTokens[tier]
}

func (m *manager) TokensForAmount(amount int64) int64 {
	if m.config.AmountPerToken <= 0 || amount <= 0 {
		return 0
	}
	return amount / m.config.AmountPerToken
}
