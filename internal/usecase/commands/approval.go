package commands

import (
	"context"
	"log/slog"

	"course-marketplace/internal/domain/entitlement"
	"course-marketplace/internal/domain/transaction"
	"course-marketplace/internal/domain/user"
	"course-marketplace/internal/infra"
	"course-marketplace/internal/pkg/clock"
	"course-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DecisionResult struct {
	Transaction *transaction.Transaction
	// Decided is false when the transaction already held the requested status.
	Decided bool
}

type ApprovalCommands interface {
	Approve(ctx context.Context, transactionID uuid.UUID, actor user.Principal) (*DecisionResult, error)
	Reject(ctx context.Context, transactionID uuid.UUID, actor user.Principal) (*DecisionResult, error)
}

type approvalUseCaseImpl struct {
	uow     shared.UnitOfWork
	clock   clock.Clock
	metrics MetricsRecorder
}

func NewApprovalUseCase(uow shared.UnitOfWork, clock clock.Clock, metrics MetricsRecorder) ApprovalCommands {
	return &approvalUseCaseImpl{
		uow:     uow,
		clock:   clock,
		metrics: metrics,
	}
}

type transactionEventData struct {
	TransactionID uuid.UUID       `json:"transaction_id"`
	BuyerID       uuid.UUID       `json:"buyer_id"`
	SellerID      *uuid.UUID      `json:"seller_id,omitempty"`
	SubjectType   string          `json:"subject_type"`
	SubjectID     uuid.UUID       `json:"subject_id"`
	Amount        decimal.Decimal `json:"amount"`
	PlatformFee   decimal.Decimal `json:"platform_fee"`
	SellerNet     decimal.Decimal `json:"seller_net"`
	Status        string          `json:"status"`
	CouponCode    *string         `json:"coupon_code,omitempty"`
}

func transactionEvent(t *transaction.Transaction) transactionEventData {
	return transactionEventData{
		TransactionID: t.ID(),
		BuyerID:       t.BuyerID(),
		SellerID:      t.SellerID(),
		SubjectType:   string(t.Subject().Kind()),
		SubjectID:     t.Subject().ID(),
		Amount:        t.Amount(),
		PlatformFee:   t.PlatformFee(),
		SellerNet:     t.SellerNet(),
		Status:        t.Status().String(),
		CouponCode:    t.CouponCode(),
	}
}

// Approve splits the fee, grants the subject's courses and enqueues transaction.approved
// in one database transaction. Approving an APPROVED transaction is a no-op.
func (a *approvalUseCaseImpl) Approve(ctx context.Context, transactionID uuid.UUID, actor user.Principal) (*DecisionResult, error) {
	if !actor.IsAdmin() {
		return nil, ErrAdminOnly
	}

	var result *DecisionResult
	err := retryOnConflict(ctx, "approve_transaction", func() error {
		return a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			r, err := a.approveInTx(ctx, tx, transactionID, actor.ID)
			if err != nil {
				return err
			}
			result = r
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	if result.Decided {
		a.metrics.TransactionDecided(transaction.StatusApproved.String())
	}
	return result, nil
}

func (a *approvalUseCaseImpl) approveInTx(ctx context.Context, tx shared.Tx, transactionID, actorID uuid.UUID) (*DecisionResult, error) {
	t, err := loadTransaction(ctx, tx.Reads(), transactionID)
	if err != nil {
		return nil, err
	}
	if t.Status() == transaction.StatusApproved {
		return &DecisionResult{Transaction: t}, nil
	}

	now := a.clock.Now()
	if err := t.Approve(actorID, now); err != nil {
		return nil, err
	}
	updated, err := tx.Transactions().MarkApproved(ctx, tx.DB(), t)
	if err != nil {
		return nil, err
	}
	if !updated {
		// Another decision committed first; report against the winner's state.
		return decisionLost(ctx, tx, transactionID, transaction.StatusApproved)
	}

	courseIDs, err := a.entitledCourses(ctx, tx, t)
	if err != nil {
		return nil, err
	}
	if err := a.grant(ctx, tx, t.BuyerID(), courseIDs); err != nil {
		return nil, err
	}

	if err := enqueueEvent(ctx, tx, TopicTransactionApproved, transactionEvent(t), now); err != nil {
		return nil, err
	}
	return &DecisionResult{Transaction: t, Decided: true}, nil
}

// Reject closes a pending transaction without fee, grant or coupon refund.
func (a *approvalUseCaseImpl) Reject(ctx context.Context, transactionID uuid.UUID, actor user.Principal) (*DecisionResult, error) {
	if !actor.IsAdmin() {
		return nil, ErrAdminOnly
	}

	var result *DecisionResult
	err := retryOnConflict(ctx, "reject_transaction", func() error {
		return a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			r, err := a.rejectInTx(ctx, tx, transactionID, actor.ID)
			if err != nil {
				return err
			}
			result = r
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	if result.Decided {
		a.metrics.TransactionDecided(transaction.StatusRejected.String())
	}
	return result, nil
}

func (a *approvalUseCaseImpl) rejectInTx(ctx context.Context, tx shared.Tx, transactionID, actorID uuid.UUID) (*DecisionResult, error) {
	t, err := loadTransaction(ctx, tx.Reads(), transactionID)
	if err != nil {
		return nil, err
	}
	if t.Status() == transaction.StatusRejected {
		return &DecisionResult{Transaction: t}, nil
	}

	now := a.clock.Now()
	if err := t.Reject(actorID, now); err != nil {
		return nil, err
	}
	updated, err := tx.Transactions().MarkRejected(ctx, tx.DB(), t)
	if err != nil {
		return nil, err
	}
	if !updated {
		return decisionLost(ctx, tx, transactionID, transaction.StatusRejected)
	}

	if err := enqueueEvent(ctx, tx, TopicTransactionRejected, transactionEvent(t), now); err != nil {
		return nil, err
	}
	return &DecisionResult{Transaction: t, Decided: true}, nil
}

// entitledCourses expands a track into its course list at approval time.
func (a *approvalUseCaseImpl) entitledCourses(ctx context.Context, tx shared.Tx, t *transaction.Transaction) ([]uuid.UUID, error) {
	subject := t.Subject()
	if subject.IsCourse() {
		return []uuid.UUID{subject.ID()}, nil
	}
	track, err := tx.Reads().TrackByID(ctx, subject.ID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTrackNotFound
		}
		return nil, err
	}
	return entitlement.Dedupe(track.CourseIDs()), nil
}

// grant appends the courses to the buyer's owned set. A missing buyer is logged and skipped.
func (a *approvalUseCaseImpl) grant(ctx context.Context, tx shared.Tx, buyerID uuid.UUID, courseIDs []uuid.UUID) error {
	if len(courseIDs) == 0 {
		return nil
	}
	_, err := tx.Users().GrantCourses(ctx, tx.DB(), buyerID, courseIDs)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			slog.Warn("entitlement grant skipped: buyer not found", "buyer_id", buyerID, "course_ids", courseIDs)
			return nil
		}
		return err
	}
	return nil
}

func loadTransaction(ctx context.Context, reads shared.CommandReads, id uuid.UUID) (*transaction.Transaction, error) {
	t, err := reads.TransactionByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}
	return t, nil
}

// decisionLost re-reads a transaction whose conditional update matched no row.
// Losing to the same decision is an idempotent success.
func decisionLost(ctx context.Context, tx shared.Tx, id uuid.UUID, wanted transaction.Status) (*DecisionResult, error) {
	winner, err := loadTransaction(ctx, tx.Reads(), id)
	if err != nil {
		return nil, err
	}
	if winner.Status() == wanted {
		return &DecisionResult{Transaction: winner}, nil
	}
	switch winner.Status() {
	case transaction.StatusApproved:
		return nil, transaction.ErrAlreadyApproved
	case transaction.StatusRejected:
		return nil, transaction.ErrAlreadyRejected
	default:
		return nil, ErrDecisionLost
	}
}
