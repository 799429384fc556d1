package queries

import (
	"context"

	"course-marketplace/internal/domain/payout"
	"course-marketplace/internal/domain/user"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BalanceView struct {
	RecipientID uuid.UUID       `json:"recipient_id"`
	Accrued     decimal.Decimal `json:"accrued"`
	PaidOut     decimal.Decimal `json:"paid_out"`
	Reserved    decimal.Decimal `json:"reserved"`
	Owed        decimal.Decimal `json:"owed"`
	Available   decimal.Decimal `json:"available"`
}

type PayoutReadStore interface {
	Balance(ctx context.Context, recipientID uuid.UUID) (payout.Balance, error)
	FindByRecipient(ctx context.Context, recipientID uuid.UUID, limit int32) ([]*payout.Payout, error)
	FindByStatus(ctx context.Context, status payout.Status, limit, offset int32) ([]*payout.Payout, error)
}

type PayoutQueries interface {
	Balance(ctx context.Context, actor user.Principal) (*BalanceView, error)
	ListMine(ctx context.Context, actor user.Principal, limit int) ([]*payout.Payout, error)
	ListByStatus(ctx context.Context, actor user.Principal, status string, limit, offset int) ([]*payout.Payout, error)
}

type payoutQueriesImpl struct {
	repo PayoutReadStore
}

func NewPayoutQueries(repo PayoutReadStore) PayoutQueries {
	return &payoutQueriesImpl{repo: repo}
}

func (q *payoutQueriesImpl) Balance(ctx context.Context, actor user.Principal) (*BalanceView, error) {
	if !actor.Role.CanReceivePayouts() {
		return nil, ErrPayoutAccess
	}
	b, err := q.repo.Balance(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	return &BalanceView{
		RecipientID: actor.ID,
		Accrued:     b.Accrued,
		PaidOut:     b.PaidOut,
		Reserved:    b.Reserved,
		Owed:        b.Owed(),
		Available:   b.Available(),
	}, nil
}

func (q *payoutQueriesImpl) ListMine(ctx context.Context, actor user.Principal, limit int) ([]*payout.Payout, error) {
	if !actor.Role.CanReceivePayouts() {
		return nil, ErrPayoutAccess
	}
	return q.repo.FindByRecipient(ctx, actor.ID, int32(ValidateLimit(limit)))
}

func (q *payoutQueriesImpl) ListByStatus(ctx context.Context, actor user.Principal, status string, limit, offset int) ([]*payout.Payout, error) {
	if !actor.IsAdmin() {
		return nil, ErrAdminOnly
	}
	st, err := payout.NewStatus(status)
	if err != nil {
		return nil, ErrInvalidStatusFilter
	}
	if offset < 0 {
		offset = 0
	}
	return q.repo.FindByStatus(ctx, st, int32(ValidateLimit(limit)), int32(offset))
}
