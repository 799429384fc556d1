package api

import (
	"context"
	"net/http"
	"strconv"

	"course-marketplace/internal/domain/user"
	resdto "course-marketplace/internal/handler/dto/response"
	"course-marketplace/internal/handler/middleware"
	"course-marketplace/internal/usecase/commands"
	"course-marketplace/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TransactionHandler struct {
	cmds commands.ApprovalCommands
	q    queries.TransactionQueries
}

func NewTransactionHandler(cmds commands.ApprovalCommands, q queries.TransactionQueries) *TransactionHandler {
	return &TransactionHandler{cmds: cmds, q: q}
}

// @Summary List my transactions
// @Description List the caller's purchases, newest first, with keyset pagination
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.TransactionListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /transactions [get]
func (h *TransactionHandler) ListMine(c *gin.Context) {
	buyerID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	limit := queryInt(c, "limit", queries.DefaultLimit)
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}

	items, next, err := h.q.ListMine(c.Request.Context(), buyerID, cursor, limit)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromTransactions(items)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	out := resdto.TransactionListResponse{Items: res}
	if next != nil {
		out.NextCursor = &next.After
	}
	c.JSON(http.StatusOK, out)
}

// @Summary Get transaction
// @Description Get one transaction. Buyers see their own; admins see any.
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Success 200 {object} resdto.TransactionResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /transactions/{id} [get]
func (h *TransactionHandler) Get(c *gin.Context) {
	actor, ok := middleware.GetPrincipal(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortBadRequest(c, err, "Invalid transaction ID format")
		return
	}

	t, err := h.q.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromTransaction(t)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary List transactions by status
// @Description Admin review queue. Status defaults to PENDING_APPROVAL.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "PENDING_APPROVAL, APPROVED or REJECTED"
// @Param limit query int false "Max items (default 20)"
// @Param offset query int false "Offset"
// @Success 200 {array} resdto.TransactionResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /admin/transactions [get]
func (h *TransactionHandler) ListByStatus(c *gin.Context) {
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
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromTransactions(items)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Approve transaction
// @Description Split the platform fee and grant the purchased courses. Approving twice is a no-op.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Success 200 {object} resdto.DecisionResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/transactions/{id}/approve [post]
func (h *TransactionHandler) Approve(c *gin.Context) {
	h.decide(c, h.cmds.Approve)
}

// @Summary Reject transaction
// @Description Close a pending transaction. The coupon use is not refunded.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Success 200 {object} resdto.DecisionResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/transactions/{id}/reject [post]
func (h *TransactionHandler) Reject(c *gin.Context) {
	h.decide(c, h.cmds.Reject)
}

type decisionFunc func(ctx context.Context, id uuid.UUID, actor user.Principal) (*commands.DecisionResult, error)

func (h *TransactionHandler) decide(c *gin.Context, fn decisionFunc) {
	actor, ok := middleware.GetPrincipal(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortBadRequest(c, err, "Invalid transaction ID format")
		return
	}

	result, err := fn(c.Request.Context(), id, actor)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromDecision(result)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// queryInt falls back to def when the parameter is missing or malformed.
func queryInt(c *gin.Context, name string, def int) int {
	v := c.Query(name)
	if v == "" {
		return def
	}
	iv, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return iv
}
