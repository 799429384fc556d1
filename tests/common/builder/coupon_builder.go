//go:build unit || e2e

package builder

import (
	"time"

	"course-marketplace/internal/domain/coupon"
	reqdto "course-marketplace/internal/handler/dto/request"
	sqlc "course-marketplace/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CouponBuilder struct {
	Code           string
	Percentage     int
	ValidUntil     *time.Time
	MaxUses        *int32
	MaxUsesPerUser *int32
	UsedBy         []uuid.UUID
	CreatedAt      time.Time
}

func NewCouponBuilder() *CouponBuilder {
	perUser := coupon.DefaultMaxUsesPerUser
	return &CouponBuilder{
		Code:           "INSTA10",
		Percentage:     10,
		MaxUsesPerUser: &perUser,
		CreatedAt:      time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (b *CouponBuilder) With(mutate func(*CouponBuilder)) *CouponBuilder {
	mutate(b)
	return b
}

// BuildDomain reconstructs a coupon with the builder's usage history.
func (b *CouponBuilder) BuildDomain() *coupon.Coupon {
	return coupon.ReconstructCoupon(b.Code, b.Percentage, b.ValidUntil, b.MaxUses, b.MaxUsesPerUser, b.UsedBy, b.CreatedAt)
}

func (b *CouponBuilder) BuildInfra() sqlc.Coupons {
	row := sqlc.Coupons{
		Code:               b.Code,
		DiscountPercentage: int32(b.Percentage),
		UsedCount:          int32(len(b.UsedBy)),
		UsedBy:             b.UsedBy,
		CreatedAt:          pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:          pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
	if b.ValidUntil != nil {
		row.ValidUntil = pgtype.Timestamptz{Time: *b.ValidUntil, Valid: true}
	}
	if b.MaxUses != nil {
		row.MaxUses = pgtype.Int4{Int32: *b.MaxUses, Valid: true}
	}
	if b.MaxUsesPerUser != nil {
		row.MaxUsesPerUser = pgtype.Int4{Int32: *b.MaxUsesPerUser, Valid: true}
	}
	return row
}

func (b *CouponBuilder) BuildCreateRequestDTO() reqdto.CreateCouponRequest {
	return reqdto.CreateCouponRequest{
		Code:               b.Code,
		DiscountPercentage: b.Percentage,
		ValidUntil:         b.ValidUntil,
		MaxUses:            b.MaxUses,
		MaxUsesPerUser:     b.MaxUsesPerUser,
	}
}

// Fluent builder methods
func (b *CouponBuilder) WithCode(code string) *CouponBuilder {
	b.Code = code
	return b
}

func (b *CouponBuilder) WithPercentage(p int) *CouponBuilder {
	b.Percentage = p
	return b
}

func (b *CouponBuilder) WithValidUntil(t time.Time) *CouponBuilder {
	b.ValidUntil = &t
	return b
}

func (b *CouponBuilder) WithMaxUses(n int32) *CouponBuilder {
	b.MaxUses = &n
	return b
}

func (b *CouponBuilder) WithMaxUsesPerUser(n int32) *CouponBuilder {
	b.MaxUsesPerUser = &n
	return b
}

func (b *CouponBuilder) WithUnlimitedPerUser() *CouponBuilder {
	b.MaxUsesPerUser = nil
	return b
}

func (b *CouponBuilder) WithUsedBy(ids ...uuid.UUID) *CouponBuilder {
	b.UsedBy = append(b.UsedBy, ids...)
	return b
}
