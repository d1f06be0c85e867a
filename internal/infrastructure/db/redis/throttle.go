package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	throttleWindow     = 15 * time.Minute
	defaultMaxFailures = 10
)

// LoginThrottle counts failed login attempts per username within a sliding
// window, backed by Redis. It is advisory: a Redis outage never blocks a
// login, callers treat errors as "not throttled".
// Key format: login_failures:<username>
type LoginThrottle struct {
	client      *redis.Client
	maxFailures int64
}

// NewLoginThrottle creates a LoginThrottle wrapping the given Redis client.
// If maxFailures <= 0, a default of 10 per window is used.
func NewLoginThrottle(client *redis.Client, maxFailures int64) *LoginThrottle {
	if maxFailures <= 0 {
		maxFailures = defaultMaxFailures
	}
	return &LoginThrottle{client: client, maxFailures: maxFailures}
}

// IsBlocked reports whether username has exhausted its failure budget for
// the current window.
func (t *LoginThrottle) IsBlocked(ctx context.Context, username string) (bool, error) {
	n, err := t.client.Get(ctx, t.key(username)).Int64()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("throttle check: %w", err)
	}
	return n >= t.maxFailures, nil
}

// RecordFailure increments the failure counter for username; the first
// failure of a window starts the expiry clock.
func (t *LoginThrottle) RecordFailure(ctx context.Context, username string) error {
	key := t.key(username)
	pipe := t.client.TxPipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, throttleWindow)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("throttle record: %w", err)
	}
	return nil
}

// Reset clears the failure counter after a successful login.
func (t *LoginThrottle) Reset(ctx context.Context, username string) error {
	return t.client.Del(ctx, t.key(username)).Err()
}

func (t *LoginThrottle) key(username string) string {
	return "login_failures:" + username
}
