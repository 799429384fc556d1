package repository

import (
	"context"

	"course-marketplace/internal/domain/transaction"
	"course-marketplace/internal/infra"
	sqlc "course-marketplace/internal/infra/sqlc/generated"
	"course-marketplace/internal/pkg/pgconv"
)

type TransactionWriteQueries interface {
	CreateTransaction(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateTransactionParams) error
	ApproveTransaction(ctx context.Context, db sqlc.DBTX, arg sqlc.ApproveTransactionParams) (int64, error)
	RejectTransaction(ctx context.Context, db sqlc.DBTX, arg sqlc.RejectTransactionParams) (int64, error)
}

type TransactionRepository struct {
	queries TransactionWriteQueries
	db      sqlc.DBTX
}

func NewTransactionRepository(queries TransactionWriteQueries, db sqlc.DBTX) *TransactionRepository {
	return &TransactionRepository{
		queries: queries,
		db:      db,
	}
}

func (r *TransactionRepository) Create(ctx context.Context, tx sqlc.DBTX, t *transaction.Transaction) error {
	params := sqlc.CreateTransactionParams{
		ID:                 t.ID(),
		BuyerID:            t.BuyerID(),
		SellerID:           pgconv.UUIDPtrToPgtype(t.SellerID()),
		SubjectKind:        string(t.Subject().Kind()),
		SubjectID:          t.Subject().ID(),
		Amount:             t.Amount(),
		ExternalPaymentRef: t.PaymentRef(),
		AppliedCouponCode:  pgconv.StringPtrToPgtype(t.CouponCode()),
		DiscountAmount:     t.DiscountAmount(),
		CreatedAt:          pgconv.TimeToPgtype(t.CreatedAt()),
	}

	if err := r.queries.CreateTransaction(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create transaction", err)
	}
	return nil
}

func (r *TransactionRepository) MarkApproved(ctx context.Context, tx sqlc.DBTX, t *transaction.Transaction) (bool, error) {
	params := sqlc.ApproveTransactionParams{
		ID:          t.ID(),
		PlatformFee: t.PlatformFee(),
		SellerNet:   t.SellerNet(),
		DecidedBy:   pgconv.UUIDPtrToPgtype(t.DecidedBy()),
		DecidedAt:   pgconv.TimePtrToPgtype(t.DecidedAt()),
	}

	n, err := r.queries.ApproveTransaction(ctx, tx, params)
	if err != nil {
		return false, infra.WrapRepoErr("failed to approve transaction", err)
	}
	return n == 1, nil
}

func (r *TransactionRepository) MarkRejected(ctx context.Context, tx sqlc.DBTX, t *transaction.Transaction) (bool, error) {
	params := sqlc.RejectTransactionParams{
		ID:        t.ID(),
		DecidedBy: pgconv.UUIDPtrToPgtype(t.DecidedBy()),
		DecidedAt: pgconv.TimePtrToPgtype(t.DecidedAt()),
	}

	n, err := r.queries.RejectTransaction(ctx, tx, params)
	if err != nil {
		return false, infra.WrapRepoErr("failed to reject transaction", err)
	}
	return n == 1, nil
}
