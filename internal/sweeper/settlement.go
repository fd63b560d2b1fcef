package sweeper

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/feral-file/ff-partner-ledger/internal/adapter"
	"github.com/feral-file/ff-partner-ledger/internal/bonuspool"
	"github.com/feral-file/ff-partner-ledger/internal/logger"
)

// CycleSettlementSweeperConfig holds configuration for the settlement sweeper
type CycleSettlementSweeperConfig struct {
	// Interval between due checks
	Interval time.Duration
	// RetryMaxElapsed bounds the retries of one failed check
	RetryMaxElapsed time.Duration
}

type cycleSettlementSweeper struct {
	*loop
	config  CycleSettlementSweeperConfig
	manager bonuspool.Manager
}

// NewCycleSettlementSweeper creates a sweeper that settles the active cycle once it has ended.
// Several instances may run; the cycle status CAS lets exactly one of them settle.
func NewCycleSettlementSweeper(config CycleSettlementSweeperConfig, manager bonuspool.Manager, clock adapter.Clock) Sweeper {
	if config.Interval <= 0 {
		config.Interval = time.Minute
	}
	if config.RetryMaxElapsed <= 0 {
		config.RetryMaxElapsed = config.Interval / 2
	}

	return &cycleSettlementSweeper{
		loop:    newLoop("cycle-settlement-sweeper", clock),
		config:  config,
		manager: manager,
	}
}

func (s *cycleSettlementSweeper) Start(ctx context.Context) error {
	return s.run(ctx, s.runSweepCycle, nil)
}

func (s *cycleSettlementSweeper) runSweepCycle(ctx context.Context) time.Duration {
	if err := s.checkWithRetry(ctx); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("settlement check failed after retries: %w", err))
	}
	return s.config.Interval
}

func (s *cycleSettlementSweeper) checkWithRetry(ctx context.Context) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = time.Second
	b.MaxInterval = 30 * time.Second
	b.MaxElapsedTime = s.config.RetryMaxElapsed

	operation := func() error {
		result, err := s.manager.CheckAndSettle(ctx)
		if err != nil {
			return err
		}
		if result != nil {
			logger.InfoCtx(ctx, "Cycle settled by sweeper",
				logger.Cycle(result.Settled.CycleNumber),
				zap.Int64("perTokenValue", result.PerTokenValue),
				zap.Int64("participants", result.Participants),
				zap.Int64("remainder", result.Remainder))
		}
		return nil
	}

	var attempt int
	notify := func(err error, d time.Duration) {
		attempt++
		logger.WarnCtx(ctx, "Settlement check failed, retrying",
			zap.Error(err),
			zap.Int("attempt", attempt),
			zap.Duration("next_retry_in", d))
	}

	return backoff.RetryNotify(operation, backoff.WithContext(b, ctx), notify)
}
