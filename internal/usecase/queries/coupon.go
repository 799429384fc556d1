package queries

import (
	"context"

	"course-marketplace/internal/domain/coupon"
	"course-marketplace/internal/infra"
	"course-marketplace/internal/pkg/clock"

	"github.com/google/uuid"
)

type CouponValidation struct {
	Valid              bool   `json:"valid"`
	Code               string `json:"code"`
	DiscountPercentage int    `json:"discount_percentage"`
}

type CouponReadStore interface {
	FindByCode(ctx context.Context, code string) (*coupon.Coupon, error)
}

type CouponQueries interface {
	Validate(ctx context.Context, code string, userID uuid.UUID) (*CouponValidation, error)
}

type couponQueriesImpl struct {
	repo  CouponReadStore
	clock clock.Clock
}

func NewCouponQueries(repo CouponReadStore, clock clock.Clock) CouponQueries {
	return &couponQueriesImpl{repo: repo, clock: clock}
}

// Validate reports the first failing check as a *coupon.RejectionError:
// not_found, expired, exhausted, user_exhausted.
func (q *couponQueriesImpl) Validate(ctx context.Context, code string, userID uuid.UUID) (*CouponValidation, error) {
	cp, err := q.repo.FindByCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, coupon.NewRejection(coupon.KindNotFound, coupon.NormalizeCode(code))
		}
		return nil, err
	}
	if err := cp.Validate(userID, q.clock.Now()); err != nil {
		return nil, err
	}
	return &CouponValidation{
		Valid:              true,
		Code:               cp.Code().String(),
		DiscountPercentage: cp.Percentage().Int(),
	}, nil
}
