package commands

import (
	"context"
	"time"

	"course-marketplace/internal/domain/payout"
	"course-marketplace/internal/domain/user"
	reqdto "course-marketplace/internal/handler/dto/request"
	"course-marketplace/internal/infra"
	"course-marketplace/internal/pkg/clock"
	"course-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PayoutCommands interface {
	RequestPayout(ctx context.Context, req reqdto.RequestPayoutRequest, actor user.Principal) (*payout.Payout, error)
	UpdateStatus(ctx context.Context, payoutID uuid.UUID, req reqdto.UpdatePayoutStatusRequest, actor user.Principal) (*payout.Payout, error)
}

type payoutUseCaseImpl struct {
	uow     shared.UnitOfWork
	clock   clock.Clock
	metrics MetricsRecorder
}

func NewPayoutUseCase(uow shared.UnitOfWork, clock clock.Clock, metrics MetricsRecorder) PayoutCommands {
	return &payoutUseCaseImpl{
		uow:     uow,
		clock:   clock,
		metrics: metrics,
	}
}

type payoutEventData struct {
	PayoutID    uuid.UUID       `json:"payout_id"`
	RecipientID uuid.UUID       `json:"recipient_id"`
	Amount      decimal.Decimal `json:"amount"`
	Status      string          `json:"status"`
	ProcessedAt *time.Time      `json:"processed_at,omitempty"`
}

func payoutEvent(p *payout.Payout) payoutEventData {
	return payoutEventData{
		PayoutID:    p.ID(),
		RecipientID: p.RecipientID(),
		Amount:      p.Amount(),
		Status:      string(p.Status()),
		ProcessedAt: p.ProcessedAt(),
	}
}

// RequestPayout reserves part of the available balance. The recipient row stays locked
// until commit so concurrent requests see each other's reservations.
func (u *payoutUseCaseImpl) RequestPayout(ctx context.Context, req reqdto.RequestPayoutRequest, actor user.Principal) (*payout.Payout, error) {
	if !actor.Role.CanReceivePayouts() {
		return nil, ErrPayoutRoleRequired
	}

	p, err := payout.NewPayout(actor.ID, req.Amount, req.BankDetails.ToDomain(), u.clock.Now())
	if err != nil {
		return nil, invalid(err)
	}

	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		role, err := tx.Users().LockByID(ctx, tx.DB(), actor.ID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		if !role.CanReceivePayouts() {
			return ErrPayoutRoleRequired
		}

		balance, err := tx.Reads().BalanceFor(ctx, actor.ID)
		if err != nil {
			return err
		}
		if err := balance.CanWithdraw(p.Amount()); err != nil {
			return err
		}

		if err := tx.Payouts().Create(ctx, tx.DB(), p); err != nil {
			return err
		}
		return enqueueEvent(ctx, tx, TopicPayoutRequested, payoutEvent(p), p.RequestedAt())
	})
	if err != nil {
		return nil, err
	}

	u.metrics.PayoutRequested()
	return p, nil
}

func (u *payoutUseCaseImpl) UpdateStatus(ctx context.Context, payoutID uuid.UUID, req reqdto.UpdatePayoutStatusRequest, actor user.Principal) (*payout.Payout, error) {
	if !actor.IsAdmin() {
		return nil, ErrAdminOnly
	}
	next, err := payout.NewStatus(req.Status)
	if err != nil {
		return nil, invalid(err)
	}

	var updated *payout.Payout
	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Reads().PayoutByID(ctx, payoutID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrPayoutNotFound
			}
			return err
		}

		from := p.Status()
		now := u.clock.Now()
		if err := p.TransitionTo(next, now); err != nil {
			return err
		}
		ok, err := tx.Payouts().Transition(ctx, tx.DB(), p.ID(), from, p)
		if err != nil {
			return err
		}
		if !ok {
			return ErrPayoutConcurrentUpdate
		}

		updated = p
		return enqueueEvent(ctx, tx, TopicPayoutStatusChanged, payoutEvent(p), now)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
