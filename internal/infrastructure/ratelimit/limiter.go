// Package ratelimit provides distributed request rate limiting backed by
// Redis. Counters use a fixed window per key; when Redis is unreachable the
// limiter fails open so an infrastructure outage does not take the API down
// with it.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tagpoint/rfid-admin/pkg/logger"
)

// Result reports the outcome of one rate-limit check.
type Result struct {
	Allowed   bool
	Limit     int
	Remaining int
	// ResetAt is when the current window expires.
	ResetAt time.Time
}

// Limiter answers whether a request identified by key may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) (Result, error)
}

// RedisLimiter implements a fixed-window counter in Redis. The first hit in
// a window creates the counter with a TTL; subsequent hits increment it.
type RedisLimiter struct {
	client redis.UniversalClient
	logger logger.Logger
	limit  int
	window time.Duration
	prefix string
}

// NewRedisLimiter creates a limiter allowing limit requests per window.
func NewRedisLimiter(client redis.UniversalClient, limit int, window time.Duration, log logger.Logger) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		logger: log.With(logger.String("component", "rate_limiter")),
		limit:  limit,
		window: window,
		prefix: "ratelimit",
	}
}

// Allow increments the counter for key and reports whether the request fits
// in the current window. Redis failures are logged and allowed through.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (Result, error) {
	redisKey := fmt.Sprintf("%s:%s", l.prefix, key)

	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		l.logger.Warn(ctx, "rate limit check failed, allowing request",
			logger.String("key", key),
			logger.Err(err),
		)
		return Result{Allowed: true, Limit: l.limit, Remaining: l.limit}, nil
	}
	// The first hit in a window owns the TTL; later hits leave it alone.
	if count == 1 {
		if err := l.client.Expire(ctx, redisKey, l.window).Err(); err != nil {
			l.logger.Warn(ctx, "failed to set rate limit window", logger.Err(err))
		}
	}

	remaining := l.limit - int(count)
	if remaining < 0 {
		remaining = 0
	}
	resetAt := time.Now().Add(l.window)
	if d, err := l.client.TTL(ctx, redisKey).Result(); err == nil && d > 0 {
		resetAt = time.Now().Add(d)
	}

	return Result{
		Allowed:   count <= int64(l.limit),
		Limit:     l.limit,
		Remaining: remaining,
		ResetAt:   resetAt,
	}, nil
}

type noopLimiter struct{}

// NewNopLimiter returns a limiter that allows everything. Used when rate
// limiting is disabled.
func NewNopLimiter() Limiter {
	return noopLimiter{}
}

func (noopLimiter) Allow(ctx context.Context, key string) (Result, error) {
	return Result{Allowed: true}, nil
}
