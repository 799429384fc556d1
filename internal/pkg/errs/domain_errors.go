package errs

import "errors"

// Error classes shared by the usecase layers. Concrete errors are marked with
// one of these so the handler can map them to a status code.
var (
	ErrNotFound            = errors.New("not found")
	ErrInvalidState        = errors.New("invalid state")
	ErrInvalidCoupon       = errors.New("invalid coupon")
	ErrPermissionDenied    = errors.New("permission denied")
	ErrPersistenceConflict = errors.New("persistence conflict")
	ErrValidation          = errors.New("validation error")
	ErrConflict            = errors.New("conflict")

	// Idempotency errors
	ErrIdempotencyKeyRequired = errors.New("idempotency key required")
	ErrIdempotencyInProgress  = errors.New("idempotency in progress")
)
