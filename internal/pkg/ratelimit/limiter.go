package ratelimit

import (
	"context"
	"fmt"
	"time"
)

type WindowStore interface {
	IncrementWindow(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error)
}

// Limiter allows limit hits per key in each fixed window.
type Limiter struct {
	store  WindowStore
	prefix string
	limit  int
	window time.Duration
}

func NewLimiter(store WindowStore, prefix string, limit int, window time.Duration) *Limiter {
	if limit < 0 {
		limit = 0
	}
	return &Limiter{
		store:  store,
		prefix: prefix,
		limit:  limit,
		window: window,
	}
}

// Allow counts one hit. When blocked, retryAfter is the time left in the window, in whole seconds.
func (l *Limiter) Allow(ctx context.Context, key string) (retryAfter int64, allowed bool, err error) {
	if key == "" {
		return 0, false, fmt.Errorf("rate limit key is required")
	}
	if l.store == nil {
		return 0, false, fmt.Errorf("rate limiter store is nil")
	}
	if l.limit == 0 {
		return 0, true, nil
	}

	count, ttl, err := l.store.IncrementWindow(ctx, l.prefix+":"+key, l.window)
	if err != nil {
		return 0, false, err
	}
	if count > int64(l.limit) {
		return ceilSeconds(ttl), false, nil
	}
	return 0, true, nil
}

func ceilSeconds(d time.Duration) int64 {
	if d <= 0 {
		return 1
	}
	sec := int64(d / time.Second)
	if d%time.Second != 0 {
		sec++
	}
	return sec
}
