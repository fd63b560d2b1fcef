package sweeper

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/feral-file/ff-partner-ledger/internal/adapter"
	"github.com/feral-file/ff-partner-ledger/internal/logger"
)

// Sweeper defines the interface for sweeper implementations
// Sweepers are long-running background tasks that perform periodic maintenance
//
//go:generate mockgen -source=sweeper.go -destination=../mocks/sweeper.go -package=mocks -mock_names=Sweeper=MockSweeper
type Sweeper interface {
	// Start begins the sweeper's main loop
	// This is a blocking call that runs until the context is canceled
	Start(ctx context.Context) error

	// Stop gracefully stops the sweeper
	// This should wait for any in-progress work to complete
	Stop(ctx context.Context) error

	// Name returns the sweeper's name for logging and identification
	Name() string
}

// sweepFunc runs one cycle and returns how long to wait before the next one
type sweepFunc func(ctx context.Context) time.Duration

// loop is the start/stop machinery shared by the ledger sweepers
type loop struct {
	name      string
	clock     adapter.Clock
	running   atomic.Bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

func newLoop(name string, clock adapter.Clock) *loop {
	return &loop{
		name:      name,
		clock:     clock,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

func (l *loop) Name() string {
	return l.name
}

// run calls sweep until ctx is canceled or Stop is called
func (l *loop) run(ctx context.Context, sweep sweepFunc, cleanup func()) error {
	if !l.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper already running")
	}
	defer func() {
		if cleanup != nil {
			cleanup()
		}
		l.running.Store(false)
		close(l.stoppedCh)
	}()

	logger.InfoCtx(ctx, "Starting sweeper", zap.String("sweeper", l.name))

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Sweeper stopping due to context cancellation", zap.String("sweeper", l.name))
			return nil
		case <-l.stopChan:
			logger.InfoCtx(ctx, "Sweeper stop requested", zap.String("sweeper", l.name))
			return nil
		default:
		}

		wait := sweep(ctx)
		if wait > 0 && !l.sleep(ctx, wait) {
			continue
		}
	}
}

// Stop signals the loop and waits for it to exit
func (l *loop) Stop(ctx context.Context) error {
	if !l.running.CompareAndSwap(true, false) {
		return nil
	}

	logger.InfoCtx(ctx, "Stopping sweeper", zap.String("sweeper", l.name))
	close(l.stopChan)

	select {
	case <-l.stoppedCh:
		logger.InfoCtx(ctx, "Sweeper stopped gracefully", zap.String("sweeper", l.name))
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Sweeper stop interrupted by context timeout", zap.String("sweeper", l.name))
		return ctx.Err()
	}
}

// sleep returns false when interrupted by ctx or Stop
func (l *loop) sleep(ctx context.Context, d time.Duration) bool {
	select {
	case <-l.clock.After(d):
		return true
	case <-ctx.Done():
		return false
	case <-l.stopChan:
		return false
	}
}
