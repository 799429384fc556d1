package commands

import (
	"context"

	"course-marketplace/internal/domain/coupon"
	"course-marketplace/internal/domain/user"
	reqdto "course-marketplace/internal/handler/dto/request"
	"course-marketplace/internal/infra"
	"course-marketplace/internal/pkg/clock"
	"course-marketplace/internal/pkg/patch"
	"course-marketplace/internal/usecase/shared"
)

type CouponCommands interface {
	Create(ctx context.Context, req reqdto.CreateCouponRequest, actor user.Principal) (*coupon.Coupon, error)
	Update(ctx context.Context, code string, req reqdto.UpdateCouponRequest, actor user.Principal) (*coupon.Coupon, error)
}

type couponUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCouponUseCase(uow shared.UnitOfWork, clock clock.Clock) CouponCommands {
	return &couponUseCaseImpl{uow: uow, clock: clock}
}

func (c *couponUseCaseImpl) Create(ctx context.Context, req reqdto.CreateCouponRequest, actor user.Principal) (*coupon.Coupon, error) {
	if !actor.IsAdmin() {
		return nil, ErrAdminOnly
	}

	cp, err := coupon.NewCoupon(
		req.Code,
		req.DiscountPercentage,
		req.ValidUntil,
		req.MaxUses,
		req.MaxUsesPerUser,
		req.UnlimitedPerUser,
		c.clock.Now(),
	)
	if err != nil {
		return nil, invalid(err)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Coupons().Create(ctx, tx.DB(), cp)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrCouponCodeTaken
		}
		return nil, err
	}
	return cp, nil
}

// Update patches the coupon's terms. Usage history is left untouched.
func (c *couponUseCaseImpl) Update(ctx context.Context, code string, req reqdto.UpdateCouponRequest, actor user.Principal) (*coupon.Coupon, error) {
	if !actor.IsAdmin() {
		return nil, ErrAdminOnly
	}

	var updated *coupon.Coupon
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		cp, err := tx.Reads().CouponByCode(ctx, code)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrCouponNotFound
			}
			return err
		}

		err = cp.Update(
			patch.Coalesce(req.DiscountPercentage, cp.Percentage().Int()),
			req.ValidUntil.Apply(cp.ValidUntil()),
			req.MaxUses.Apply(cp.MaxUses()),
			req.MaxUsesPerUser.Apply(cp.MaxUsesPerUser()),
		)
		if err != nil {
			return invalid(err)
		}

		if err := tx.Coupons().UpdateTerms(ctx, tx.DB(), cp, c.clock.Now()); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrCouponNotFound
			}
			return err
		}
		updated = cp
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
