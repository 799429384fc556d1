package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"course-marketplace/internal/domain/catalog"
	"course-marketplace/internal/domain/certificate"
	"course-marketplace/internal/domain/coupon"
	"course-marketplace/internal/domain/payout"
	"course-marketplace/internal/domain/progress"
	"course-marketplace/internal/domain/transaction"
	"course-marketplace/internal/domain/user"
	"course-marketplace/internal/infra/readstore"
	"course-marketplace/internal/infra/repository"
	sqlc "course-marketplace/internal/infra/sqlc/generated"
	"course-marketplace/internal/pkg/errs"
	"course-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *sqlc.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(errs.Mark(err, errMaxRetriesExceeded), errs.ErrPersistenceConflict)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	transactionRepo  shared.TransactionRepository
	couponRepo       shared.CouponRepository
	userRepo         shared.UserRepository
	progressRepo     shared.ProgressRepository
	certificateRepo  shared.CertificateRepository
	payoutRepo       shared.PayoutRepository
	idempotencyRepo  shared.IdempotencyRepository
	notificationRepo shared.NotificationRepository
	commandReads     shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Transactions() shared.TransactionRepository {
	if t.transactionRepo == nil {
		t.transactionRepo = repository.NewTransactionRepository(t.uow.q, t.dbtx)
	}
	return t.transactionRepo
}

func (t *pgTx) Coupons() shared.CouponRepository {
	if t.couponRepo == nil {
		t.couponRepo = repository.NewCouponRepository(t.uow.q, t.dbtx)
	}
	return t.couponRepo
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository(t.uow.q, t.dbtx)
	}
	return t.userRepo
}

func (t *pgTx) Progress() shared.ProgressRepository {
	if t.progressRepo == nil {
		t.progressRepo = repository.NewProgressRepository(t.uow.q, t.dbtx)
	}
	return t.progressRepo
}

func (t *pgTx) Certificates() shared.CertificateRepository {
	if t.certificateRepo == nil {
		t.certificateRepo = repository.NewCertificateRepository(t.uow.q, t.dbtx)
	}
	return t.certificateRepo
}

func (t *pgTx) Payouts() shared.PayoutRepository {
	if t.payoutRepo == nil {
		t.payoutRepo = repository.NewPayoutRepository(t.uow.q, t.dbtx)
	}
	return t.payoutRepo
}

func (t *pgTx) Idempotency() shared.IdempotencyRepository {
	if t.idempotencyRepo == nil {
		t.idempotencyRepo = repository.NewIdempotencyRepository(t.uow.q, t.dbtx)
	}
	return t.idempotencyRepo
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notificationRepo == nil {
		t.notificationRepo = repository.NewNotificationRepository(t.uow.q, t.dbtx)
	}
	return t.notificationRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX

	// Lazy-initialized readstores
	catalogStore     *readstore.CatalogReadStore
	userStore        *readstore.UserReadStore
	couponStore      *readstore.CouponReadStore
	transactionStore *readstore.TransactionReadStore
	progressStore    *readstore.ProgressReadStore
	certificateStore *readstore.CertificateReadStore
	payoutStore      *readstore.PayoutReadStore
	idempotencyStore *readstore.IdempotencyReadStore
}

func (r *commandReads) catalog() *readstore.CatalogReadStore {
	if r.catalogStore == nil {
		r.catalogStore = readstore.NewCatalogReadStore(r.uow.q, r.dbtx)
	}
	return r.catalogStore
}

func (r *commandReads) payouts() *readstore.PayoutReadStore {
	if r.payoutStore == nil {
		r.payoutStore = readstore.NewPayoutReadStore(r.uow.q, r.dbtx)
	}
	return r.payoutStore
}

func (r *commandReads) CourseByID(ctx context.Context, id uuid.UUID) (*catalog.Course, error) {
	return r.catalog().CourseByID(ctx, id)
}

func (r *commandReads) TrackByID(ctx context.Context, id uuid.UUID) (*catalog.Track, error) {
	return r.catalog().TrackByID(ctx, id)
}

func (r *commandReads) UserByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	if r.userStore == nil {
		r.userStore = readstore.NewUserReadStore(r.uow.q, r.dbtx)
	}
	return r.userStore.FindByID(ctx, id)
}

func (r *commandReads) CouponByCode(ctx context.Context, code string) (*coupon.Coupon, error) {
	if r.couponStore == nil {
		r.couponStore = readstore.NewCouponReadStore(r.uow.q, r.dbtx)
	}
	return r.couponStore.FindByCode(ctx, code)
}

func (r *commandReads) TransactionByID(ctx context.Context, id uuid.UUID) (*transaction.Transaction, error) {
	if r.transactionStore == nil {
		r.transactionStore = readstore.NewTransactionReadStore(r.uow.q, r.dbtx)
	}
	return r.transactionStore.FindByID(ctx, id)
}

func (r *commandReads) ProgressFor(ctx context.Context, userID, courseID uuid.UUID) (*progress.Progress, error) {
	if r.progressStore == nil {
		r.progressStore = readstore.NewProgressReadStore(r.uow.q, r.dbtx)
	}
	return r.progressStore.Find(ctx, userID, courseID)
}

func (r *commandReads) CertificateFor(ctx context.Context, userID, courseID uuid.UUID) (*certificate.Certificate, error) {
	if r.certificateStore == nil {
		r.certificateStore = readstore.NewCertificateReadStore(r.uow.q, r.dbtx)
	}
	return r.certificateStore.FindByUserCourse(ctx, userID, courseID)
}

func (r *commandReads) PayoutByID(ctx context.Context, id uuid.UUID) (*payout.Payout, error) {
	return r.payouts().FindByID(ctx, id)
}

func (r *commandReads) BalanceFor(ctx context.Context, recipientID uuid.UUID) (payout.Balance, error) {
	return r.payouts().Balance(ctx, recipientID)
}

func (r *commandReads) IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	if r.idempotencyStore == nil {
		r.idempotencyStore = readstore.NewIdempotencyReadStore(r.uow.q)
	}
	return r.idempotencyStore.Get(ctx, r.dbtx, key, userID)
}
