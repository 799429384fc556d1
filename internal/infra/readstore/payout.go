package readstore

import (
	"context"

	"course-marketplace/internal/domain/payout"
	"course-marketplace/internal/infra"
	"course-marketplace/internal/infra/repository/converter"
	sqlc "course-marketplace/internal/infra/sqlc/generated"
	"course-marketplace/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type PayoutReadQueries interface {
	GetPayoutByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Payouts, error)
	GetSellerAccrued(ctx context.Context, db sqlc.DBTX, sellerID pgtype.UUID) (decimal.Decimal, error)
	GetPayoutTotals(ctx context.Context, db sqlc.DBTX, recipientID uuid.UUID) (sqlc.GetPayoutTotalsRow, error)
	ListPayoutsByRecipient(ctx context.Context, db sqlc.DBTX, arg sqlc.ListPayoutsByRecipientParams) ([]sqlc.Payouts, error)
	ListPayoutsByStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.ListPayoutsByStatusParams) ([]sqlc.Payouts, error)
}

type PayoutReadStore struct {
	queries PayoutReadQueries
	db      sqlc.DBTX
}

func NewPayoutReadStore(queries PayoutReadQueries, db sqlc.DBTX) *PayoutReadStore {
	return &PayoutReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *PayoutReadStore) FindByID(ctx context.Context, id uuid.UUID) (*payout.Payout, error) {
	row, err := s.queries.GetPayoutByID(ctx, s.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payout not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get payout by id", err)
	}
	p, err := converter.PayoutFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert payout row", err)
	}
	return p, nil
}

// Balance sums approved seller_net against completed and in-flight payouts.
func (s *PayoutReadStore) Balance(ctx context.Context, recipientID uuid.UUID) (payout.Balance, error) {
	accrued, err := s.queries.GetSellerAccrued(ctx, s.db, pgconv.UUIDToPgtype(recipientID))
	if err != nil {
		return payout.Balance{}, infra.WrapRepoErr("failed to sum seller revenue", err)
	}
	totals, err := s.queries.GetPayoutTotals(ctx, s.db, recipientID)
	if err != nil {
		return payout.Balance{}, infra.WrapRepoErr("failed to sum payouts", err)
	}
	return payout.Balance{
		Accrued:  accrued,
		PaidOut:  totals.PaidOut,
		Reserved: totals.Reserved,
	}, nil
}

func (s *PayoutReadStore) FindByRecipient(ctx context.Context, recipientID uuid.UUID, limit int32) ([]*payout.Payout, error) {
	params := sqlc.ListPayoutsByRecipientParams{RecipientID: recipientID, Limit: limit}
	rows, err := s.queries.ListPayoutsByRecipient(ctx, s.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payouts by recipient", err)
	}
	return mapPayoutRows(rows)
}

func (s *PayoutReadStore) FindByStatus(ctx context.Context, status payout.Status, limit, offset int32) ([]*payout.Payout, error) {
	params := sqlc.ListPayoutsByStatusParams{Status: string(status), Limit: limit, Offset: offset}
	rows, err := s.queries.ListPayoutsByStatus(ctx, s.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payouts by status", err)
	}
	return mapPayoutRows(rows)
}

func mapPayoutRows(rows []sqlc.Payouts) ([]*payout.Payout, error) {
	out := make([]*payout.Payout, 0, len(rows))
	for _, row := range rows {
		p, err := converter.PayoutFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert payout row", err)
		}
		out = append(out, p)
	}
	return out, nil
}
