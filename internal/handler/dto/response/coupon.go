package response

import (
	"time"

	"course-marketplace/internal/domain/coupon"
)

type CouponResponse struct {
	Code               string     `json:"code"`
	DiscountPercentage int        `json:"discount_percentage"`
	ValidUntil         *time.Time `json:"valid_until,omitempty"`
	MaxUses            *int32     `json:"max_uses,omitempty"`
	MaxUsesPerUser     *int32     `json:"max_uses_per_user,omitempty"`
	UsedCount          int32      `json:"used_count"`
	CreatedAt          time.Time  `json:"created_at"`
}

func FromCoupon(c *coupon.Coupon) (*CouponResponse, error) {
	res := &CouponResponse{}
	if err := copyInto(res, c); err != nil {
		return nil, err
	}
	res.DiscountPercentage = c.Percentage().Int()
	return res, nil
}
