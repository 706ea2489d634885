package service

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// Redis key prefix for rate limit windows
	RedisRateLimitKeyPrefix = "ratelimit:"

	defaultRateLimitRequests = 60
	defaultRateLimitWindow   = time.Minute
)

// fixedWindowScript counts a hit and starts the window expiry on the first hit.
// Runs atomically inside Redis, so concurrent instances share one counter.
var fixedWindowScript = redis.NewScript(`
	local current = redis.call('INCR', KEYS[1])
	if current == 1 then
		redis.call('PEXPIRE', KEYS[1], ARGV[1])
	end
	return current
`)

// =============================================================================
// Types
// =============================================================================

// RateLimiter decides whether a client may make another request.
type RateLimiter interface {
	Allow(ctx context.Context, clientKey string) (bool, error)
}

// RedisRateLimiter is a fixed-window limiter shared across service instances.
type RedisRateLimiter struct {
	redisClient *redis.Client
	log         *logrus.Logger
	limit       int
	window      time.Duration
}

// =============================================================================
// Constructor
// =============================================================================

func NewRedisRateLimiter(redisClient *redis.Client, log *logrus.Logger, limit int, window time.Duration) *RedisRateLimiter {
	if limit <= 0 {
		limit = defaultRateLimitRequests
	}
	if window <= 0 {
		window = defaultRateLimitWindow
	}
	return &RedisRateLimiter{
		redisClient: redisClient,
		log:         log,
		limit:       limit,
		window:      window,
	}
}

// =============================================================================
// Public Methods
// =============================================================================

// Allow records a hit for clientKey and reports whether it is within the limit.
func (l *RedisRateLimiter) Allow(ctx context.Context, clientKey string) (bool, error) {
	key := RedisRateLimitKeyPrefix + clientKey

	count, err := fixedWindowScript.Run(ctx, l.redisClient, []string{key}, l.window.Milliseconds()).Int64()
	if err != nil {
		l.log.Warnf("Failed rate limit script for %s: %+v", clientKey, err)
		return false, fmt.Errorf("rate limit for %s: %w", clientKey, err)
	}

	if count > int64(l.limit) {
		l.log.Debugf("Rate limit exceeded for %s: count=%d limit=%d", clientKey, count, l.limit)
		return false, nil
	}
	return true, nil
}
