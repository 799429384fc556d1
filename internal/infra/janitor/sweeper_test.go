//go:build unit

package janitor_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"course-marketplace/internal/infra/janitor"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingStore struct {
	calls atomic.Int32
	n     int64
	err   error
}

func (s *countingStore) DeleteExpired(context.Context) (int64, error) {
	s.calls.Add(1)
	return s.n, s.err
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestSweepOnce(t *testing.T) {
	n, err := janitor.NewSweeper(&countingStore{n: 3}, time.Hour, discard).SweepOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	boom := errors.New("db down")
	_, err = janitor.NewSweeper(&countingStore{err: boom}, time.Hour, discard).SweepOnce(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestSweeperStartStop(t *testing.T) {
	store := &countingStore{}
	s := janitor.NewSweeper(store, 5*time.Millisecond, discard)

	s.Start()
	require.Eventually(t, func() bool { return store.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))
}
