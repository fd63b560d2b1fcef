package sweeper

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/feral-file/ff-partner-ledger/internal/adapter"
	"github.com/feral-file/ff-partner-ledger/internal/domain"
	"github.com/feral-file/ff-partner-ledger/internal/logger"
	"github.com/feral-file/ff-partner-ledger/internal/metrics"
	"github.com/feral-file/ff-partner-ledger/internal/store"
)

const reconcilerCursor = "balance_reconciler"

// BalanceReconcilerConfig holds configuration for the balance reconciler
type BalanceReconcilerConfig struct {
	// Interval is the pause after a full pass over all partners
	Interval time.Duration
	// BatchSize is the number of partners scanned per query
	BatchSize int
	// WorkerPoolSize is the number of accounts re-checked concurrently
	WorkerPoolSize int
	// FreezeOnDrift soft-freezes drifted accounts
	FreezeOnDrift bool
}

// ReconcileReport summarizes one reconciliation batch
type ReconcileReport struct {
	Checked   int
	Suspected int
	Confirmed int
	Frozen    int
	// Wrapped is true when the batch reached the end of the partner table
	Wrapped bool
}

type balanceReconciler struct {
	*loop
	config  BalanceReconcilerConfig
	store   store.Store
	metrics *metrics.Ledger
	pool    pond.Pool
}

// BalanceReconciler re-derives every cached balance from the ledger and freezes accounts that drifted
type BalanceReconciler interface {
	Sweeper
	// ReconcileBatch checks the next batch of partners after the stored cursor
	ReconcileBatch(ctx context.Context) (*ReconcileReport, error)
}

// NewBalanceReconciler creates a new balance reconciler
func NewBalanceReconciler(config BalanceReconcilerConfig, st store.Store, clock adapter.Clock, m *metrics.Ledger) BalanceReconciler {
	if config.Interval <= 0 {
		config.Interval = 10 * time.Minute
	}
	if config.BatchSize <= 0 {
		config.BatchSize = 500
	}
	if config.WorkerPoolSize <= 0 {
		config.WorkerPoolSize = 4
	}

	return &balanceReconciler{
		loop:    newLoop("balance-reconciler", clock),
		config:  config,
		store:   st,
		metrics: m,
		pool:    pond.NewPool(config.WorkerPoolSize),
	}
}

func (r *balanceReconciler) Start(ctx context.Context) error {
	return r.run(ctx, r.runSweepCycle, r.pool.StopAndWait)
}

func (r *balanceReconciler) runSweepCycle(ctx context.Context) time.Duration {
	report, err := r.ReconcileBatch(ctx)
	if err != nil {
		logger.ErrorCtx(ctx, err)
		return r.config.Interval
	}
	if report.Wrapped {
		return r.config.Interval
	}
	return 0
}

// ReconcileBatch scans one batch of partners.
// Suspected drifts are re-checked under the account lock so in-flight appends are not reported.
func (r *balanceReconciler) ReconcileBatch(ctx context.Context) (*ReconcileReport, error) {
	startTime := r.clock.Now()

	after := uuid.Nil
	cursor, err := r.store.GetCursor(ctx, reconcilerCursor)
	if err != nil {
		return nil, fmt.Errorf("failed to get reconciler cursor: %w", err)
	}
	if cursor != "" {
		after, err = uuid.Parse(cursor)
		if err != nil {
			logger.WarnCtx(ctx, "Invalid reconciler cursor, restarting from the beginning", zap.String("cursor", cursor))
			after = uuid.Nil
		}
	}

	batch, err := r.store.FindBalanceDrift(ctx, after, r.config.BatchSize)
	if err != nil {
		return nil, fmt.Errorf("failed to scan balances: %w", err)
	}

	var confirmed, frozen atomic.Int32
	group := r.pool.NewGroup()
	for _, drift := range batch.Drifts {
		group.Submit(func() {
			if persisted := r.checkAccount(ctx, drift); persisted != nil {
				confirmed.Add(1)
				if r.config.FreezeOnDrift && r.freeze(ctx, *persisted) {
					frozen.Add(1)
				}
			}
		})
	}
	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("failed to re-check drifted accounts: %w", err)
	}

	report := &ReconcileReport{
		Checked:   batch.Checked,
		Suspected: len(batch.Drifts),
		Confirmed: int(confirmed.Load()),
		Frozen:    int(frozen.Load()),
		Wrapped:   batch.Checked < r.config.BatchSize,
	}

	next := batch.LastPartnerID.String()
	if report.Wrapped {
		next = ""
	}
	if err := r.store.SetCursor(ctx, reconcilerCursor, next); err != nil {
		return nil, fmt.Errorf("failed to set reconciler cursor: %w", err)
	}

	logger.InfoCtx(ctx, "Reconciliation batch completed",
		zap.Duration("duration", r.clock.Since(startTime)),
		zap.Int("checked", report.Checked),
		zap.Int("suspected", report.Suspected),
		zap.Int("confirmed", report.Confirmed),
		zap.Int("frozen", report.Frozen),
		zap.Bool("wrapped", report.Wrapped))

	return report, nil
}

// checkAccount returns the drift if it persists under the account lock
func (r *balanceReconciler) checkAccount(ctx context.Context, suspect domain.BalanceDrift) *domain.BalanceDrift {
	drift, err := r.store.CheckAccountBalance(ctx, suspect.PartnerID, suspect.AccountKind)
	if err != nil {
		logger.ErrorCtx(ctx, err, logger.Partner(suspect.PartnerID), logger.Account(string(suspect.AccountKind)))
		return nil
	}
	if drift == nil {
		logger.DebugCtx(ctx, "Drift resolved on re-check", logger.Partner(suspect.PartnerID), logger.Account(string(suspect.AccountKind)))
		return nil
	}

	logger.ErrorCtx(ctx, fmt.Errorf("%w: cached %d, ledger %d", domain.ErrBalanceInvariantViolation, drift.CachedBalance, drift.LedgerSum),
		logger.Partner(drift.PartnerID),
		logger.Account(string(drift.AccountKind)),
		zap.Int64("cached", drift.CachedBalance),
		zap.Int64("ledgerSum", drift.LedgerSum))
	r.metrics.ObserveInvariantViolation(string(drift.AccountKind))

	return drift
}

func (r *balanceReconciler) freeze(ctx context.Context, drift domain.BalanceDrift) bool {
	reason := fmt.Sprintf("balance drift: cached %d, ledger %d", drift.CachedBalance, drift.LedgerSum)
	if err := r.store.FreezeAccount(ctx, drift.PartnerID, drift.AccountKind, reason); err != nil {
		logger.ErrorCtx(ctx, err, logger.Partner(drift.PartnerID), logger.Account(string(drift.AccountKind)))
		return false
	}
	logger.WarnCtx(ctx, "Account frozen", logger.Partner(drift.PartnerID), logger.Account(string(drift.AccountKind)))
	return true
}
