package repository

import (
	"context"
	"time"

	"course-marketplace/internal/domain/coupon"
	"course-marketplace/internal/infra"
	sqlc "course-marketplace/internal/infra/sqlc/generated"
	"course-marketplace/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type CouponWriteQueries interface {
	CreateCoupon(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCouponParams) error
	UpdateCouponTerms(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateCouponTermsParams) (int64, error)
	RedeemCoupon(ctx context.Context, db sqlc.DBTX, arg sqlc.RedeemCouponParams) (sqlc.RedeemCouponRow, error)
}

type CouponRepository struct {
	queries CouponWriteQueries
	db      sqlc.DBTX
}

func NewCouponRepository(queries CouponWriteQueries, db sqlc.DBTX) *CouponRepository {
	return &CouponRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CouponRepository) Create(ctx context.Context, tx sqlc.DBTX, c *coupon.Coupon) error {
	params := sqlc.CreateCouponParams{
		Code:               c.Code().String(),
		DiscountPercentage: int32(c.Percentage().Int()), // #nosec G115 -- 1..100
		ValidUntil:         pgconv.TimePtrToPgtype(c.ValidUntil()),
		MaxUses:            pgconv.Int32PtrToPgtype(c.MaxUses()),
		MaxUsesPerUser:     pgconv.Int32PtrToPgtype(c.MaxUsesPerUser()),
		CreatedAt:          pgconv.TimeToPgtype(c.CreatedAt()),
	}

	if err := r.queries.CreateCoupon(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create coupon", err)
	}
	return nil
}

func (r *CouponRepository) UpdateTerms(ctx context.Context, tx sqlc.DBTX, c *coupon.Coupon, now time.Time) error {
	params := sqlc.UpdateCouponTermsParams{
		Code:               c.Code().String(),
		DiscountPercentage: int32(c.Percentage().Int()), // #nosec G115 -- 1..100
		ValidUntil:         pgconv.TimePtrToPgtype(c.ValidUntil()),
		MaxUses:            pgconv.Int32PtrToPgtype(c.MaxUses()),
		MaxUsesPerUser:     pgconv.Int32PtrToPgtype(c.MaxUsesPerUser()),
		UpdatedAt:          pgconv.TimeToPgtype(now),
	}

	n, err := r.queries.UpdateCouponTerms(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update coupon", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CouponRepository) Redeem(ctx context.Context, tx sqlc.DBTX, code coupon.Code, userID uuid.UUID, now time.Time) (bool, error) {
	params := sqlc.RedeemCouponParams{
		UserID: userID,
		Now:    pgconv.TimeToPgtype(now),
		Code:   code.String(),
	}

	_, err := r.queries.RedeemCoupon(ctx, tx, params)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to redeem coupon", err)
	}
	return true, nil
}
