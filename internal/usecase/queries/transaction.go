package queries

import (
	"context"
	"time"

	"course-marketplace/internal/domain/transaction"
	"course-marketplace/internal/domain/user"
	"course-marketplace/internal/infra"

	"github.com/google/uuid"
)

type TransactionReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*transaction.Transaction, error)
	FindByBuyerFirstPage(ctx context.Context, buyerID uuid.UUID, limit int32) ([]*transaction.Transaction, error)
	FindByBuyerKeyset(ctx context.Context, buyerID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*transaction.Transaction, error)
	FindByStatus(ctx context.Context, status transaction.Status, limit, offset int32) ([]*transaction.Transaction, error)
}

type TransactionQueries interface {
	GetByID(ctx context.Context, actor user.Principal, id uuid.UUID) (*transaction.Transaction, error)
	ListMine(ctx context.Context, buyerID uuid.UUID, cursor *Cursor, limit int) ([]*transaction.Transaction, *Cursor, error)
	ListByStatus(ctx context.Context, actor user.Principal, status string, limit, offset int) ([]*transaction.Transaction, error)
}

type transactionQueriesImpl struct {
	repo TransactionReadStore
}

func NewTransactionQueries(repo TransactionReadStore) TransactionQueries {
	return &transactionQueriesImpl{repo: repo}
}

// GetByID is visible to the buyer and to admins.
func (q *transactionQueriesImpl) GetByID(ctx context.Context, actor user.Principal, id uuid.UUID) (*transaction.Transaction, error) {
	t, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}
	if !actor.IsAdmin() && t.BuyerID() != actor.ID {
		return nil, ErrTransactionAccess
	}
	return t, nil
}

func (q *transactionQueriesImpl) ListMine(ctx context.Context, buyerID uuid.UUID, cursor *Cursor, limit int) ([]*transaction.Transaction, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*transaction.Transaction
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.repo.FindByBuyerFirstPage(ctx, buyerID, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.repo.FindByBuyerKeyset(ctx, buyerID, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}
	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt(), last.ID())}
		rows = rows[:limit]
	}
	return rows, next, nil
}

// ListByStatus is the admin review queue, oldest first.
func (q *transactionQueriesImpl) ListByStatus(ctx context.Context, actor user.Principal, status string, limit, offset int) ([]*transaction.Transaction, error) {
	if !actor.IsAdmin() {
		return nil, ErrAdminOnly
	}
	if status == "" {
		status = transaction.StatusPendingApproval.String()
	}
	st, err := transaction.NewStatus(status)
	if err != nil {
		return nil, ErrInvalidStatusFilter
	}
	if offset < 0 {
		offset = 0
	}
	return q.repo.FindByStatus(ctx, st, int32(ValidateLimit(limit)), int32(offset))
}
