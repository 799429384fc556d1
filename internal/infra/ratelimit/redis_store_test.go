//go:build unit

package ratelimit_test

import (
	"context"
	"testing"
	"time"

	"course-marketplace/internal/infra/ratelimit"
	limiter "course-marketplace/internal/pkg/ratelimit"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) (*miniredis.Miniredis, *ratelimit.RedisWindowStore) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, ratelimit.NewRedisWindowStore(client)
}

func TestRedisWindowStore(t *testing.T) {
	ctx := context.Background()

	t.Run("first hit sets the window ttl", func(t *testing.T) {
		mr, store := newStore(t)

		count, ttl, err := store.IncrementWindow(ctx, "cert:1.2.3.4", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
		assert.Equal(t, time.Minute, ttl)
		assert.Equal(t, time.Minute, mr.TTL("cert:1.2.3.4"))
	})

	t.Run("later hits keep the original ttl", func(t *testing.T) {
		mr, store := newStore(t)

		_, _, err := store.IncrementWindow(ctx, "k", time.Minute)
		require.NoError(t, err)
		mr.FastForward(20 * time.Second)

		count, ttl, err := store.IncrementWindow(ctx, "k", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
		assert.Equal(t, 40*time.Second, ttl)
	})

	t.Run("counter resets after the window", func(t *testing.T) {
		mr, store := newStore(t)

		for range 3 {
			_, _, err := store.IncrementWindow(ctx, "k", time.Minute)
			require.NoError(t, err)
		}
		mr.FastForward(time.Minute + time.Second)

		count, _, err := store.IncrementWindow(ctx, "k", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("invalid input", func(t *testing.T) {
		_, store := newStore(t)

		_, _, err := store.IncrementWindow(ctx, "", time.Minute)
		assert.Error(t, err)
		_, _, err = store.IncrementWindow(ctx, "k", 0)
		assert.Error(t, err)
	})

	t.Run("redis down", func(t *testing.T) {
		mr, store := newStore(t)
		mr.Close()

		_, _, err := store.IncrementWindow(ctx, "k", time.Minute)
		assert.ErrorContains(t, err, "increment rate key")
	})
}

func TestLimiterWithRedis(t *testing.T) {
	ctx := context.Background()
	mr, store := newStore(t)
	l := limiter.NewLimiter(store, "certificate_validate", 2, time.Minute)

	for i := range 2 {
		_, allowed, err := l.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, allowed, "hit %d", i+1)
	}

	retryAfter, allowed, err := l.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Equal(t, int64(60), retryAfter)

	// other clients have their own window
	_, allowed, err = l.Allow(ctx, "10.0.0.2")
	require.NoError(t, err)
	assert.True(t, allowed)

	assert.True(t, mr.Exists("certificate_validate:10.0.0.1"))
}
