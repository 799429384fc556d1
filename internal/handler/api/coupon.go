package api

import (
	"net/http"

	reqdto "course-marketplace/internal/handler/dto/request"
	resdto "course-marketplace/internal/handler/dto/response"
	"course-marketplace/internal/handler/middleware"
	"course-marketplace/internal/usecase/commands"
	"course-marketplace/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CouponHandler struct {
	cmds commands.CouponCommands
	q    queries.CouponQueries
}

func NewCouponHandler(cmds commands.CouponCommands, q queries.CouponQueries) *CouponHandler {
	return &CouponHandler{cmds: cmds, q: q}
}

// @Summary Validate coupon
// @Description Check whether the caller can redeem a coupon. Rejections carry a reason.
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ValidateCouponRequest true "Coupon code"
// @Success 200 {object} queries.CouponValidation
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /coupons/validate [post]
func (h *CouponHandler) Validate(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	var req reqdto.ValidateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request format")
		return
	}

	v, err := h.q.Validate(c.Request.Context(), req.Code, userID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// @Summary Create coupon
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCouponRequest true "Coupon"
// @Success 201 {object} resdto.CouponResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/coupons [post]
func (h *CouponHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetPrincipal(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	var req reqdto.CreateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request format")
		return
	}

	cp, err := h.cmds.Create(c.Request.Context(), req, actor)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromCoupon(cp)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// @Summary Update coupon
// @Description Patch coupon terms. Explicit null clears a limit or expiry.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param code path string true "Coupon code"
// @Param request body reqdto.UpdateCouponRequest true "Coupon patch"
// @Success 200 {object} resdto.CouponResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/coupons/{code} [patch]
func (h *CouponHandler) Update(c *gin.Context) {
	actor, ok := middleware.GetPrincipal(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	var req reqdto.UpdateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request format")
		return
	}

	cp, err := h.cmds.Update(c.Request.Context(), c.Param("code"), req, actor)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromCoupon(cp)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
