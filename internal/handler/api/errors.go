package api

import (
	"net/http"

	"course-marketplace/internal/domain/coupon"
	"course-marketplace/internal/handler/httperr"
	"course-marketplace/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// abortWithUseCaseError maps the error class of a usecase failure to a status code.
func abortWithUseCaseError(c *gin.Context, err error) {
	if kind, ok := coupon.KindOf(err); ok {
		httperr.AbortWithRejection(c, http.StatusBadRequest, err, string(kind))
		return
	}
	status, msg := classify(err)
	httperr.AbortWithError(c, status, err, msg, nil)
}

func classify(err error) (int, string) {
	switch {
	case errs.Is(err, errs.ErrNotFound):
		return http.StatusNotFound, err.Error()
	case errs.Is(err, errs.ErrPermissionDenied):
		return http.StatusForbidden, err.Error()
	case errs.Is(err, errs.ErrInvalidState),
		errs.Is(err, errs.ErrInvalidCoupon),
		errs.Is(err, errs.ErrValidation),
		errs.Is(err, errs.ErrIdempotencyKeyRequired):
		return http.StatusBadRequest, err.Error()
	case errs.Is(err, errs.ErrIdempotencyInProgress):
		return http.StatusConflict, "Request with this idempotency key is still being processed"
	case errs.Is(err, errs.ErrPersistenceConflict),
		errs.Is(err, errs.ErrConflict):
		return http.StatusConflict, err.Error()
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

func abortUnauthorized(c *gin.Context) {
	httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
}

func abortBadRequest(c *gin.Context, err error, msg string) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
}

var errUnauthenticated = errs.New("request is not authenticated")
