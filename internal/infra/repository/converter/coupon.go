package converter

import (
	"course-marketplace/internal/domain/coupon"
	sqlc "course-marketplace/internal/infra/sqlc/generated"
	"course-marketplace/internal/pkg/pgconv"
)

func CouponFromRow(row sqlc.GetCouponByCodeRow) *coupon.Coupon {
	return coupon.ReconstructCoupon(
		row.Code,
		int(row.DiscountPercentage),
		pgconv.TimePtrFromPgtype(row.ValidUntil),
		pgconv.Int32PtrFromPgtype(row.MaxUses),
		pgconv.Int32PtrFromPgtype(row.MaxUsesPerUser),
		row.UsedBy,
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}
