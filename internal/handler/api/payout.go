package api

import (
	"net/http"

	"course-marketplace/internal/domain/payout"
	reqdto "course-marketplace/internal/handler/dto/request"
	resdto "course-marketplace/internal/handler/dto/response"
	"course-marketplace/internal/handler/middleware"
	"course-marketplace/internal/usecase/commands"
	"course-marketplace/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PayoutHandler struct {
	cmds commands.PayoutCommands
	q    queries.PayoutQueries
}

func NewPayoutHandler(cmds commands.PayoutCommands, q queries.PayoutQueries) *PayoutHandler {
	return &PayoutHandler{cmds: cmds, q: q}
}

// @Summary Get balance
// @Description Earnings owed to the caller and the part still available for withdrawal
// @Tags payouts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.BalanceResponse
// @Failure 403 {object} httperr.Response
// @Router /payouts/balance [get]
func (h *PayoutHandler) Balance(c *gin.Context) {
	actor, ok := middleware.GetPrincipal(c)
	if !ok {
		abortUnauthorized(c)
		return
	}

	view, err := h.q.Balance(c.Request.Context(), actor)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromBalance(view)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary List my payouts
// @Tags payouts
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 20)"
// @Success 200 {array} resdto.PayoutResponse
// @Failure 403 {object} httperr.Response
// @Router /payouts [get]
func (h *PayoutHandler) ListMine(c *gin.Context) {
	actor, ok := middleware.GetPrincipal(c)
	if !ok {
		abortUnauthorized(c)
		return
	}

	items, err := h.q.ListMine(c.Request.Context(), actor, queryInt(c, "limit", queries.DefaultLimit))
	h.respondList(c, items, err)
}

// @Summary Request payout
// @Description Reserve part of the available balance for a PIX transfer
// @Tags payouts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RequestPayoutRequest true "Payout request"
// @Success 201 {object} resdto.PayoutResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /payouts [post]
func (h *PayoutHandler) Request(c *gin.Context) {
	actor, ok := middleware.GetPrincipal(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	var req reqdto.RequestPayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request format")
		return
	}

	p, err := h.cmds.RequestPayout(c.Request.Context(), req, actor)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromPayout(p)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// @Summary List payouts by status
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string true "PENDING, PROCESSING, COMPLETED or FAILED"
// @Param limit query int false "Max items (default 20)"
// @Param offset query int false "Offset"
// @Success 200 {array} resdto.PayoutResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /admin/payouts [get]
func (h *PayoutHandler) ListByStatus(c *gin.Context) {
	actor, ok := middleware.GetPrincipal(c)
	if !ok {
		abortUnauthorized(c)
		return
	}

	items, err := h.q.ListByStatus(
		c.Request.Context(),
		actor,
		c.Query("status"),
		queryInt(c, "limit", queries.DefaultLimit),
		queryInt(c, "offset", 0),
	)
	h.respondList(c, items, err)
}

// @Summary Update payout status
// @Description PENDING to PROCESSING or FAILED, PROCESSING to COMPLETED or FAILED
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Payout ID"
// @Param request body reqdto.UpdatePayoutStatusRequest true "New status"
// @Success 200 {object} resdto.PayoutResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/payouts/{id} [patch]
func (h *PayoutHandler) UpdateStatus(c *gin.Context) {
	actor, ok := middleware.GetPrincipal(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortBadRequest(c, err, "Invalid payout ID format")
		return
	}
	var req reqdto.UpdatePayoutStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		abortBadRequest(c, bindErr, "Invalid request format")
		return
	}

	p, err := h.cmds.UpdateStatus(c.Request.Context(), id, req, actor)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromPayout(p)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *PayoutHandler) respondList(c *gin.Context, items []*payout.Payout, err error) {
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromPayouts(items)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
