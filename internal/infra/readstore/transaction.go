package readstore

import (
	"context"
	"time"

	"course-marketplace/internal/domain/transaction"
	"course-marketplace/internal/infra"
	"course-marketplace/internal/infra/repository/converter"
	sqlc "course-marketplace/internal/infra/sqlc/generated"
	"course-marketplace/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type TransactionReadQueries interface {
	GetTransactionByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Transactions, error)
	ListTransactionsByBuyer(ctx context.Context, db sqlc.DBTX, arg sqlc.ListTransactionsByBuyerParams) ([]sqlc.Transactions, error)
	ListTransactionsByBuyerKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListTransactionsByBuyerKeysetParams) ([]sqlc.Transactions, error)
	ListTransactionsByStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.ListTransactionsByStatusParams) ([]sqlc.Transactions, error)
}

type TransactionReadStore struct {
	queries TransactionReadQueries
	db      sqlc.DBTX
}

func NewTransactionReadStore(queries TransactionReadQueries, db sqlc.DBTX) *TransactionReadStore {
	return &TransactionReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *TransactionReadStore) FindByID(ctx context.Context, id uuid.UUID) (*transaction.Transaction, error) {
	row, err := s.queries.GetTransactionByID(ctx, s.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("transaction not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get transaction by id", err)
	}
	t, err := converter.TransactionFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert transaction row", err)
	}
	return t, nil
}

func (s *TransactionReadStore) FindByBuyerFirstPage(ctx context.Context, buyerID uuid.UUID, limit int32) ([]*transaction.Transaction, error) {
	params := sqlc.ListTransactionsByBuyerParams{BuyerID: buyerID, Limit: limit}
	rows, err := s.queries.ListTransactionsByBuyer(ctx, s.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list transactions by buyer", err)
	}
	return mapTransactionRows(rows)
}

func (s *TransactionReadStore) FindByBuyerKeyset(ctx context.Context, buyerID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*transaction.Transaction, error) {
	params := sqlc.ListTransactionsByBuyerKeysetParams{
		BuyerID:   buyerID,
		CreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		ID:        lastID,
		Limit:     limit,
	}
	rows, err := s.queries.ListTransactionsByBuyerKeyset(ctx, s.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list transactions keyset by buyer", err)
	}
	return mapTransactionRows(rows)
}

func (s *TransactionReadStore) FindByStatus(ctx context.Context, status transaction.Status, limit, offset int32) ([]*transaction.Transaction, error) {
	params := sqlc.ListTransactionsByStatusParams{
		Status: status.String(),
		Limit:  limit,
		Offset: offset,
	}
	rows, err := s.queries.ListTransactionsByStatus(ctx, s.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list transactions by status", err)
	}
	return mapTransactionRows(rows)
}

func mapTransactionRows(rows []sqlc.Transactions) ([]*transaction.Transaction, error) {
	out := make([]*transaction.Transaction, 0, len(rows))
	for _, row := range rows {
		t, err := converter.TransactionFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert transaction row", err)
		}
		out = append(out, t)
	}
	return out, nil
}
