package commands

import (
	"context"
	"log/slog"
	"time"

	"course-marketplace/internal/pkg/errs"

	"github.com/avast/retry-go"
)

const conflictRetryDelay = 5 * time.Millisecond

// retryOnConflict runs fn once more when it fails with ErrPersistenceConflict.
func retryOnConflict(ctx context.Context, op string, fn func() error) error {
	return retry.Do(
		fn,
		retry.Context(ctx),
		retry.Attempts(2),
		retry.Delay(conflictRetryDelay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return errs.Is(err, errs.ErrPersistenceConflict)
		}),
		retry.OnRetry(func(n uint, err error) {
			slog.Warn("retrying after persistence conflict", "op", op, "attempt", n+1, "error", err.Error())
		}),
	)
}
