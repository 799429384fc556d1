package request

import (
	"time"

	"course-marketplace/internal/pkg/patch"
)

type ValidateCouponRequest struct {
	Code string `json:"code" binding:"required,max=32"`
}

type CreateCouponRequest struct {
	Code               string     `json:"code" binding:"required,min=3,max=32"`
	DiscountPercentage int        `json:"discount_percentage" binding:"required,min=1,max=100"`
	ValidUntil         *time.Time `json:"valid_until,omitempty"`
	MaxUses            *int32     `json:"max_uses,omitempty" binding:"omitempty,min=1"`
	MaxUsesPerUser     *int32     `json:"max_uses_per_user,omitempty" binding:"omitempty,min=1"`
	UnlimitedPerUser   bool       `json:"unlimited_per_user"`
}

// UpdateCouponRequest is a PATCH body: omitted fields keep their value, null clears a limit.
type UpdateCouponRequest struct {
	DiscountPercentage *int                      `json:"discount_percentage,omitempty" binding:"omitempty,min=1,max=100"`
	ValidUntil         patch.Nullable[time.Time] `json:"valid_until" swaggertype:"string"`
	MaxUses            patch.Nullable[int32]     `json:"max_uses" swaggertype:"integer"`
	MaxUsesPerUser     patch.Nullable[int32]     `json:"max_uses_per_user" swaggertype:"integer"`
}
