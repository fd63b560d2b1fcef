package ratelimit_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/golang/mock/gomock"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-partner-ledger/internal/mocks"
	"github.com/feral-file/ff-partner-ledger/internal/ratelimit"
)

// testLimiterMocks contains all the mocks needed for testing the limiter
type testLimiterMocks struct {
	ctrl             *gomock.Controller
	redisClient      *mocks.MockRedisClient
	redisRateLimiter *mocks.MockRedisRateLimiter
	clock            *mocks.MockClock
	now              time.Time
}

func setupTestLimiter(t *testing.T) *testLimiterMocks {
	ctrl := gomock.NewController(t)
	tm := &testLimiterMocks{
		ctrl:             ctrl,
		redisClient:      mocks.NewMockRedisClient(ctrl),
		redisRateLimiter: mocks.NewMockRedisRateLimiter(ctrl),
		clock:            mocks.NewMockClock(ctrl),
		now:              time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	tm.clock.EXPECT().Now().Return(tm.now).AnyTimes()
	return tm
}

func statusCmd(err error) *redis.StatusCmd {
	cmd := redis.NewStatusCmd(context.Background())
	if err != nil {
		cmd.SetErr(err)
	} else {
		cmd.SetVal("PONG")
	}
	return cmd
}

// newLimiter builds a limiter whose health monitor never fires
func newLimiter(t *testing.T, tm *testLimiterMocks, cfg ratelimit.Config, pingErr error) ratelimit.Limiter {
	tm.redisClient.EXPECT().Ping(gomock.Any()).Return(statusCmd(pingErr))
	tm.redisClient.EXPECT().NewRateLimiter().Return(tm.redisRateLimiter)
	tm.clock.EXPECT().After(gomock.Any()).Return(make(chan time.Time)).AnyTimes()

	l, err := ratelimit.NewLimiter(cfg, tm.redisClient, tm.clock)
	require.NoError(t, err)

	t.Cleanup(func() {
		tm.redisClient.EXPECT().Close().Return(nil).MaxTimes(1)
		_ = l.Close()
	})
	return l
}

func TestNewLimiter_Errors(t *testing.T) {
	tests := []struct {
		name       string
		cfg        ratelimit.Config
		setupMocks func(*testLimiterMocks)
	}{
		{
			name: "non positive rate",
			cfg:  ratelimit.Config{RequestsPerSecond: 0},
		},
		{
			name: "redis down without fallback",
			cfg:  ratelimit.Config{RequestsPerSecond: 5},
			setupMocks: func(tm *testLimiterMocks) {
				tm.redisClient.EXPECT().Ping(gomock.Any()).Return(statusCmd(errors.New("connection refused")))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := setupTestLimiter(t)
			if tt.setupMocks != nil {
				tt.setupMocks(tm)
			}

			l, err := ratelimit.NewLimiter(tt.cfg, tm.redisClient, tm.clock)
			assert.Error(t, err)
			assert.Nil(t, l)
		})
	}
}

func TestLimiter_Distributed(t *testing.T) {
	tests := []struct {
		name     string
		result   *redis_rate.Result
		expected ratelimit.Decision
	}{
		{
			name:     "allowed",
			result:   &redis_rate.Result{Allowed: 1, Remaining: 4, RetryAfter: -1},
			expected: ratelimit.Decision{Allowed: true, Remaining: 4},
		},
		{
			name:     "denied",
			result:   &redis_rate.Result{Allowed: 0, Remaining: 0, RetryAfter: 200 * time.Millisecond},
			expected: ratelimit.Decision{RetryAfter: 200 * time.Millisecond},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := setupTestLimiter(t)
			l := newLimiter(t, tm, ratelimit.Config{KeyPrefix: "test:", RequestsPerSecond: 5, Burst: 5}, nil)

			tm.redisRateLimiter.EXPECT().
				Allow(gomock.Any(), "test:partner-1", redis_rate.Limit{Rate: 5, Burst: 5, Period: time.Second}).
				Return(tt.result, nil)

			decision, err := l.Allow(context.Background(), "partner-1")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, decision)
		})
	}
}

func TestLimiter_FallsBackToLocal(t *testing.T) {
	tm := setupTestLimiter(t)
	l := newLimiter(t, tm, ratelimit.Config{RequestsPerSecond: 1, Burst: 2, EnableLocalFallback: true}, nil)

	// Only the first call reaches redis; the limiter stays local until the monitor sees redis again
	tm.redisRateLimiter.EXPECT().
		Allow(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("i/o timeout")).
		Times(1)

	for i := 0; i < 2; i++ {
		decision, err := l.Allow(context.Background(), "partner-1")
		require.NoError(t, err)
		assert.True(t, decision.Allowed, "request %d", i)
	}

	decision, err := l.Allow(context.Background(), "partner-1")
	require.NoError(t, err)
	assert.False(t, decision.Allowed)
	assert.Equal(t, time.Second, decision.RetryAfter)

	// Keys are limited independently
	decision, err = l.Allow(context.Background(), "partner-2")
	require.NoError(t, err)
	assert.True(t, decision.Allowed)
}

func TestLimiter_NoFallback(t *testing.T) {
	tm := setupTestLimiter(t)
	l := newLimiter(t, tm, ratelimit.Config{RequestsPerSecond: 1}, nil)

	tm.redisRateLimiter.EXPECT().
		Allow(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("i/o timeout"))

	_, err := l.Allow(context.Background(), "partner-1")
	assert.ErrorIs(t, err, ratelimit.ErrUnavailable)
}

func TestLimiter_ContextCanceled(t *testing.T) {
	tm := setupTestLimiter(t)
	l := newLimiter(t, tm, ratelimit.Config{RequestsPerSecond: 1, EnableLocalFallback: true}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tm.redisRateLimiter.EXPECT().
		Allow(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, context.Canceled)

	_, err := l.Allow(ctx, "partner-1")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLimiter_StartsLocalWhenRedisIsDown(t *testing.T) {
	tm := setupTestLimiter(t)
	l := newLimiter(t, tm, ratelimit.Config{RequestsPerSecond: 10, EnableLocalFallback: true}, errors.New("connection refused"))

	decision, err := l.Allow(context.Background(), "partner-1")
	require.NoError(t, err)
	assert.True(t, decision.Allowed)
}

func TestLimiter_RedisRestored(t *testing.T) {
	tm := setupTestLimiter(t)

	tick := make(chan time.Time, 1)
	checked := make(chan struct{})
	calls := 0
	tm.redisClient.EXPECT().Ping(gomock.Any()).Return(statusCmd(errors.New("connection refused")))
	tm.redisClient.EXPECT().NewRateLimiter().Return(tm.redisRateLimiter)
	tm.redisClient.EXPECT().Ping(gomock.Any()).Return(statusCmd(nil))
	tm.clock.EXPECT().After(gomock.Any()).DoAndReturn(func(time.Duration) <-chan time.Time {
		calls++
		switch calls {
		case 1:
			return tick
		case 2:
			close(checked)
		}
		return make(chan time.Time)
	}).AnyTimes()

	l, err := ratelimit.NewLimiter(ratelimit.Config{RequestsPerSecond: 10, EnableLocalFallback: true}, tm.redisClient, tm.clock)
	require.NoError(t, err)
	defer func() {
		tm.redisClient.EXPECT().Close().Return(nil)
		assert.NoError(t, l.Close())
		assert.NoError(t, l.Close())
	}()

	tick <- time.Now()
	select {
	case <-checked:
	case <-time.After(time.Second):
		t.Fatal("health check did not run")
	}

	tm.redisRateLimiter.EXPECT().
		Allow(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&redis_rate.Result{Allowed: 1, Remaining: 9}, nil)

	decision, err := l.Allow(context.Background(), "partner-1")
	require.NoError(t, err)
	assert.Equal(t, ratelimit.Decision{Allowed: true, Remaining: 9}, decision)
}
