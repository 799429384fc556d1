package request

import (
	"strings"

	"course-marketplace/internal/domain/catalog"

	"github.com/google/uuid"
)

type CheckoutRequest struct {
	SubjectType string    `json:"subject_type" binding:"required,oneof=course track"`
	SubjectID   uuid.UUID `json:"subject_id" binding:"required"`
	CouponCode  *string   `json:"coupon_code,omitempty"`
	PaymentRef  *string   `json:"payment_ref,omitempty" binding:"omitempty,max=64"`
}

func (r CheckoutRequest) GetCouponCode() *string {
	if r.CouponCode == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.CouponCode)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func (r CheckoutRequest) GetPaymentRef() string {
	if r.PaymentRef == nil {
		return ""
	}
	return strings.TrimSpace(*r.PaymentRef)
}

func (r CheckoutRequest) ToSubject() (catalog.Subject, error) {
	return catalog.NewSubject(r.SubjectType, r.SubjectID)
}
