package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the body of every non-2xx reply.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// RejectionDetail names the check that refused a coupon.
type RejectionDetail struct {
	Reason string `json:"reason" example:"expired"`
}

// AbortWithError records err on the context for the error middleware and writes resp.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithRejection answers 400 with the rejection reason in detail.
func AbortWithRejection(c *gin.Context, status int, err error, reason string) {
	AbortWithError(c, status, err, err.Error(), RejectionDetail{Reason: reason})
}
