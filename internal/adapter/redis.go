package adapter

import (
	"context"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/redis/go-redis/v9"
)

// RedisClient is the slice of redis the API rate limiter needs
//
//go:generate mockgen -source=redis.go -destination=../mocks/redis.go -package=mocks -mock_names=RedisClient=MockRedisClient,RedisRateLimiter=MockRedisRateLimiter
type RedisClient interface {
	// Ping checks if Redis is reachable
	Ping(ctx context.Context) *redis.StatusCmd

	// NewRateLimiter creates a GCRA limiter backed by this client
	NewRateLimiter() RedisRateLimiter

	// Close closes the Redis connection
	Close() error
}

type realRedisClient struct {
	client *redis.Client
}

// NewRedisClient creates a new Redis client
func NewRedisClient(addr, password string, db int) RedisClient {
	return &realRedisClient{
		client: redis.NewClient(&redis.Options{
			Addr:         addr,
			Password:     password,
			DB:           db,
			DialTimeout:  2 * time.Second,
			ReadTimeout:  500 * time.Millisecond,
			WriteTimeout: 500 * time.Millisecond,
		}),
	}
}

func (r *realRedisClient) Ping(ctx context.Context) *redis.StatusCmd {
	return r.client.Ping(ctx)
}

func (r *realRedisClient) NewRateLimiter() RedisRateLimiter {
	return &realRateLimiter{limiter: redis_rate.NewLimiter(r.client)}
}

func (r *realRedisClient) Close() error {
	return r.client.Close()
}

// RedisRateLimiter is a distributed limiter shared by every API replica
type RedisRateLimiter interface {
	// Allow takes one token for key and reports the remaining allowance and retry delay
	Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error)
}

type realRateLimiter struct {
	limiter *redis_rate.Limiter
}

func (r *realRateLimiter) Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error) {
	return r.limiter.Allow(ctx, key, limit)
}
