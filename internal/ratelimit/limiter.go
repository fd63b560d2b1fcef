package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/feral-file/ff-partner-ledger/internal/adapter"
	"github.com/feral-file/ff-partner-ledger/internal/logger"
)

// ErrUnavailable is returned when redis is down and local fallback is disabled
var ErrUnavailable = errors.New("rate limiter unavailable")

const healthCheckInterval = 10 * time.Second

// Config holds the limiter configuration
type Config struct {
	KeyPrefix           string
	RequestsPerSecond   int
	Burst               int
	EnableLocalFallback bool
}

// Decision is the outcome of a single Allow call
type Decision struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

// Limiter limits requests per caller key
//
//go:generate mockgen -source=limiter.go -destination=../mocks/ratelimit.go -package=mocks -mock_names=Limiter=MockLimiter
type Limiter interface {
	// Allow takes one request token for key
	Allow(ctx context.Context, key string) (Decision, error)

	// Close stops the health monitor and closes redis
	Close() error
}

type limiter struct {
	config         Config
	limit          redis_rate.Limit
	redis          adapter.RedisClient
	distributed    adapter.RedisRateLimiter
	clock          adapter.Clock
	redisAvailable atomic.Bool

	mu    sync.Mutex
	local map[string]*rate.Limiter

	stopChan  chan struct{}
	closeOnce sync.Once
}

// NewLimiter creates a limiter backed by redis, with a per-process fallback
func NewLimiter(cfg Config, rc adapter.RedisClient, clock adapter.Clock) (Limiter, error) {
	if cfg.RequestsPerSecond <= 0 {
		return nil, fmt.Errorf("requests_per_second must be positive")
	}
	if cfg.Burst <= 0 {
		cfg.Burst = cfg.RequestsPerSecond
	}
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = "ff:partner-ledger:limiter:"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	redisAvailable := true
	if err := rc.Ping(ctx).Err(); err != nil {
		redisAvailable = false
		if !cfg.EnableLocalFallback {
			return nil, fmt.Errorf("redis unavailable and fallback disabled: %w", err)
		}
		logger.Warn("Redis unavailable, will use local fallback", zap.Error(err))
	}

	l := &limiter{
		config: cfg,
		limit: redis_rate.Limit{
			Rate:   cfg.RequestsPerSecond,
			Burst:  cfg.Burst,
			Period: time.Second,
		},
		redis:       rc,
		distributed: rc.NewRateLimiter(),
		clock:       clock,
		local:       make(map[string]*rate.Limiter),
		stopChan:    make(chan struct{}),
	}
	l.redisAvailable.Store(redisAvailable)

	go l.monitorRedisHealth()

	logger.Info("Rate limiter initialized",
		zap.Int("requests_per_second", cfg.RequestsPerSecond),
		zap.Int("burst", cfg.Burst),
		zap.Bool("redis_available", redisAvailable),
		zap.Bool("local_fallback", cfg.EnableLocalFallback),
	)

	return l, nil
}

// Allow takes one request token for key
func (l *limiter) Allow(ctx context.Context, key string) (Decision, error) {
	if l.redisAvailable.Load() {
		res, err := l.distributed.Allow(ctx, l.config.KeyPrefix+key, l.limit)
		if err == nil {
			return Decision{
				Allowed:    res.Allowed > 0,
				Remaining:  res.Remaining,
				RetryAfter: max(res.RetryAfter, 0),
			}, nil
		}
		if ctx.Err() != nil {
			return Decision{}, ctx.Err()
		}

		l.redisAvailable.Store(false)
		logger.Warn("Redis rate limiter error, falling back to local", zap.String("key", key), zap.Error(err))
	}

	if !l.config.EnableLocalFallback {
		return Decision{}, ErrUnavailable
	}

	return l.allowLocal(key), nil
}

// allowLocal applies the limit within this process only
func (l *limiter) allowLocal(key string) Decision {
	l.mu.Lock()
	lim, ok := l.local[key]
	if !ok {
		lim = rate.NewLimiter(rate.Limit(l.config.RequestsPerSecond), l.config.Burst)
		l.local[key] = lim
	}
	l.mu.Unlock()

	now := l.clock.Now()
	r := lim.ReserveN(now, 1)
	if !r.OK() {
		return Decision{}
	}
	if delay := r.DelayFrom(now); delay > 0 {
		r.CancelAt(now)
		return Decision{RetryAfter: delay}
	}

	return Decision{Allowed: true, Remaining: int(lim.TokensAt(now))}
}

// monitorRedisHealth restores the distributed limiter once redis answers again
func (l *limiter) monitorRedisHealth() {
	for {
		select {
		case <-l.stopChan:
			return
		case <-l.clock.After(healthCheckInterval):
		}

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		err := l.redis.Ping(ctx).Err()
		cancel()

		available := err == nil
		if available && !l.redisAvailable.Load() {
			logger.Info("Redis connection restored")
		}
		l.redisAvailable.Store(available)
	}
}

// Close stops the health monitor and closes redis
func (l *limiter) Close() error {
	var err error
	l.closeOnce.Do(func() {
		close(l.stopChan)
		if closeErr := l.redis.Close(); closeErr != nil {
			logger.Warn("Error closing Redis connection", zap.Error(closeErr))
			err = closeErr
		}
	})
	return err
}
