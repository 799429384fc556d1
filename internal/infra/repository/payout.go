package repository

import (
	"context"
	"encoding/json"

	"course-marketplace/internal/domain/payout"
	"course-marketplace/internal/infra"
	sqlc "course-marketplace/internal/infra/sqlc/generated"
	"course-marketplace/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type PayoutWriteQueries interface {
	CreatePayout(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePayoutParams) error
	TransitionPayout(ctx context.Context, db sqlc.DBTX, arg sqlc.TransitionPayoutParams) (int64, error)
}

type PayoutRepository struct {
	queries PayoutWriteQueries
	db      sqlc.DBTX
}

func NewPayoutRepository(queries PayoutWriteQueries, db sqlc.DBTX) *PayoutRepository {
	return &PayoutRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PayoutRepository) Create(ctx context.Context, tx sqlc.DBTX, p *payout.Payout) error {
	details, err := json.Marshal(p.Details())
	if err != nil {
		return infra.WrapRepoErr("failed to encode bank details", err)
	}

	params := sqlc.CreatePayoutParams{
		ID:          p.ID(),
		RecipientID: p.RecipientID(),
		Amount:      p.Amount(),
		BankDetails: details,
		RequestedAt: pgconv.TimeToPgtype(p.RequestedAt()),
	}

	if err := r.queries.CreatePayout(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create payout", err)
	}
	return nil
}

// Transition writes p's status only if the row is still in from.
func (r *PayoutRepository) Transition(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, from payout.Status, p *payout.Payout) (bool, error) {
	params := sqlc.TransitionPayoutParams{
		NextStatus:    string(p.Status()),
		ProcessedAt:   pgconv.TimePtrToPgtype(p.ProcessedAt()),
		ID:            id,
		CurrentStatus: string(from),
	}

	n, err := r.queries.TransitionPayout(ctx, tx, params)
	if err != nil {
		return false, infra.WrapRepoErr("failed to transition payout", err)
	}
	return n == 1, nil
}
