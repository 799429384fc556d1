package commands

import (
	"course-marketplace/internal/pkg/errs"
)

var (
	ErrAdminOnly          = errs.Mark(errs.New("admin role required"), errs.ErrPermissionDenied)
	ErrPayoutRoleRequired = errs.Mark(errs.New("only professors and admins receive payouts"), errs.ErrPermissionDenied)
	ErrCourseNotOwned     = errs.Mark(errs.New("course not owned by user"), errs.ErrPermissionDenied)

	ErrTransactionNotFound = errs.Mark(errs.New("transaction not found"), errs.ErrNotFound)
	ErrCourseNotFound      = errs.Mark(errs.New("course not found"), errs.ErrNotFound)
	ErrTrackNotFound       = errs.Mark(errs.New("track not found"), errs.ErrNotFound)
	ErrUserNotFound        = errs.Mark(errs.New("user not found"), errs.ErrNotFound)
	ErrCouponNotFound      = errs.Mark(errs.New("coupon not found"), errs.ErrNotFound)
	ErrPayoutNotFound      = errs.Mark(errs.New("payout not found"), errs.ErrNotFound)

	ErrAlreadyOwned     = errs.Mark(errs.New("subject already owned"), errs.ErrConflict)
	ErrCouponCodeTaken  = errs.Mark(errs.New("coupon code already exists"), errs.ErrConflict)
	ErrIdempotencyReuse = errs.Mark(errs.New("idempotency key reused with a different request"), errs.ErrConflict)

	ErrRedeemConflict          = errs.Mark(errs.New("coupon changed during redemption"), errs.ErrPersistenceConflict)
	ErrCertificateCodeConflict = errs.Mark(errs.New("certificate code collision"), errs.ErrPersistenceConflict)
	ErrPayoutConcurrentUpdate  = errs.Mark(errs.New("payout changed concurrently"), errs.ErrPersistenceConflict)
	ErrDecisionLost            = errs.Mark(errs.New("transaction decided concurrently"), errs.ErrInvalidState)
)

func invalid(err error) error {
	return errs.Mark(err, errs.ErrValidation)
}
