package coupon

import (
	"errors"

	"course-marketplace/internal/pkg/errs"
)

type RejectionKind string

const (
	KindNotFound      RejectionKind = "not_found"
	KindExpired       RejectionKind = "expired"
	KindExhausted     RejectionKind = "exhausted"
	KindUserExhausted RejectionKind = "user_exhausted"
)

// RejectionError explains why a coupon cannot be redeemed. It matches errs.ErrInvalidCoupon.
type RejectionError struct {
	Kind RejectionKind
	Code string
}

func NewRejection(kind RejectionKind, code string) *RejectionError {
	return &RejectionError{Kind: kind, Code: code}
}

func (e *RejectionError) Error() string {
	return "coupon " + e.Code + " rejected: " + string(e.Kind)
}

func (e *RejectionError) Unwrap() error {
	return errs.ErrInvalidCoupon
}

func KindOf(err error) (RejectionKind, bool) {
	var rej *RejectionError
	if errors.As(err, &rej) {
		return rej.Kind, true
	}
	return "", false
}
