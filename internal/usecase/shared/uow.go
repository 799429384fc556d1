package shared

import (
	"context"
	"time"

	"course-marketplace/internal/domain/catalog"
	"course-marketplace/internal/domain/certificate"
	"course-marketplace/internal/domain/coupon"
	"course-marketplace/internal/domain/payout"
	"course-marketplace/internal/domain/progress"
	"course-marketplace/internal/domain/transaction"
	"course-marketplace/internal/domain/user"
	sqlc "course-marketplace/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Transactions() TransactionRepository
	Coupons() CouponRepository
	Users() UserRepository
	Progress() ProgressRepository
	Certificates() CertificateRepository
	Payouts() PayoutRepository
	Idempotency() IdempotencyRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

// CommandReads load aggregates for decisions. Missing rows surface as infra.KindNotFound.
type CommandReads interface {
	CourseByID(ctx context.Context, id uuid.UUID) (*catalog.Course, error)
	TrackByID(ctx context.Context, id uuid.UUID) (*catalog.Track, error)
	UserByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	CouponByCode(ctx context.Context, code string) (*coupon.Coupon, error)
	TransactionByID(ctx context.Context, id uuid.UUID) (*transaction.Transaction, error)
	ProgressFor(ctx context.Context, userID, courseID uuid.UUID) (*progress.Progress, error)
	CertificateFor(ctx context.Context, userID, courseID uuid.UUID) (*certificate.Certificate, error)
	PayoutByID(ctx context.Context, id uuid.UUID) (*payout.Payout, error)
	BalanceFor(ctx context.Context, recipientID uuid.UUID) (payout.Balance, error)
	IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
}

type TransactionRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, t *transaction.Transaction) error
	// MarkApproved and MarkRejected only touch rows still PENDING_APPROVAL; false means another decision won.
	MarkApproved(ctx context.Context, tx sqlc.DBTX, t *transaction.Transaction) (bool, error)
	MarkRejected(ctx context.Context, tx sqlc.DBTX, t *transaction.Transaction) (bool, error)
}

type CouponRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, c *coupon.Coupon) error
	UpdateTerms(ctx context.Context, tx sqlc.DBTX, c *coupon.Coupon, now time.Time) error
	// Redeem re-checks every limit in the same statement that records the use.
	Redeem(ctx context.Context, tx sqlc.DBTX, code coupon.Code, userID uuid.UUID, now time.Time) (bool, error)
}

type UserRepository interface {
	LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (user.Role, error)
	GrantCourses(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, courseIDs []uuid.UUID) ([]uuid.UUID, error)
}

type ProgressRepository interface {
	RecordLesson(ctx context.Context, tx sqlc.DBTX, userID, courseID uuid.UUID, key progress.LessonKey, now time.Time) (*progress.Progress, error)
	RecordQuiz(ctx context.Context, tx sqlc.DBTX, userID, courseID uuid.UUID, quizKey string, result progress.QuizResult, markCompleted bool, now time.Time) (*progress.Progress, error)
}

type CertificateRepository interface {
	// InsertIfAbsent reports false when the (user, course) pair already holds a certificate.
	InsertIfAbsent(ctx context.Context, tx sqlc.DBTX, c *certificate.Certificate) (bool, error)
}

type PayoutRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, p *payout.Payout) error
	Transition(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, from payout.Status, p *payout.Payout) (bool, error)
}

type IdempotencyRepository interface {
	TryInsert(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	UpdateStatusCompleted(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, resultHash string, transactionID uuid.UUID) error
	ClaimExpiredIdempotencyKey(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, requestHash string, expiresAt, now time.Time) (int64, error)
	Release(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}
