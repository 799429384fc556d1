package queries

import (
	"course-marketplace/internal/pkg/errs"
)

var (
	ErrInvalidCursor       = errs.Mark(errs.New("invalid cursor"), errs.ErrValidation)
	ErrInvalidStatusFilter = errs.Mark(errs.New("invalid status filter"), errs.ErrValidation)
	ErrTransactionNotFound = errs.Mark(errs.New("transaction not found"), errs.ErrNotFound)
	ErrTransactionAccess   = errs.Mark(errs.New("transaction access denied"), errs.ErrPermissionDenied)
	ErrCourseNotFound      = errs.Mark(errs.New("course not found"), errs.ErrNotFound)
	ErrUserNotFound        = errs.Mark(errs.New("user not found"), errs.ErrNotFound)
	ErrCourseNotOwned      = errs.Mark(errs.New("course not owned by user"), errs.ErrPermissionDenied)
	ErrAdminOnly           = errs.Mark(errs.New("admin role required"), errs.ErrPermissionDenied)
	ErrPayoutAccess        = errs.Mark(errs.New("only professors and admins have a payout balance"), errs.ErrPermissionDenied)
)
