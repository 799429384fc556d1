package api

import (
	"errors"
	"net/http"

	reqdto "course-marketplace/internal/handler/dto/request"
	resdto "course-marketplace/internal/handler/dto/response"
	"course-marketplace/internal/handler/middleware"
	"course-marketplace/internal/pkg/errs"
	"course-marketplace/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	idempotencyKeyHeader = "Idempotency-Key"
	replayedHeader       = "Idempotent-Replayed"
)

var errInvalidIdempotencyKey = errs.Mark(errors.New("idempotency key must be a UUID"), errs.ErrValidation)

type CheckoutHandler struct {
	cmds commands.CheckoutCommands
}

func NewCheckoutHandler(cmds commands.CheckoutCommands) *CheckoutHandler {
	return &CheckoutHandler{cmds: cmds}
}

// @Summary Quote checkout
// @Description Price a course or track with an optional coupon. The coupon is not consumed.
// @Tags checkout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CheckoutRequest true "Checkout request"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /checkout/quote [post]
func (h *CheckoutHandler) Quote(c *gin.Context) {
	buyerID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	var req reqdto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request format")
		return
	}

	quote, err := h.cmds.Quote(c.Request.Context(), req, buyerID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuote(quote))
}

// @Summary Submit manual payment
// @Description Redeem the coupon and create a transaction pending admin approval
// @Tags checkout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string true "Idempotency key for duplicate prevention"
// @Param request body reqdto.CheckoutRequest true "Checkout request"
// @Success 201 {object} resdto.TransactionResponse
// @Success 200 {object} resdto.TransactionResponse "Replayed response"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /checkout/manual [post]
func (h *CheckoutHandler) SubmitManualPayment(c *gin.Context) {
	buyerID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthorized(c)
		return
	}

	idempotencyKey, err := getIdempotencyKey(c)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	var req reqdto.CheckoutRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		abortBadRequest(c, bindErr, "Invalid request format")
		return
	}

	result, err := h.cmds.SubmitManualPayment(c.Request.Context(), req, buyerID, idempotencyKey)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	response, err := resdto.FromTransaction(result.Transaction)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	if result.IsReplayed {
		c.Header(replayedHeader, "true")
		c.JSON(http.StatusOK, response)
		return
	}
	c.JSON(http.StatusCreated, response)
}

func getIdempotencyKey(c *gin.Context) (uuid.UUID, error) {
	keyStr := c.GetHeader(idempotencyKeyHeader)
	if keyStr == "" {
		return uuid.Nil, errs.ErrIdempotencyKeyRequired
	}

	key, err := uuid.Parse(keyStr)
	if err != nil {
		return uuid.Nil, errInvalidIdempotencyKey
	}

	return key, nil
}
