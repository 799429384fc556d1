package api

import (
	"net/http"
	"net/url"
	"strings"

	resdto "course-marketplace/internal/handler/dto/response"
	"course-marketplace/internal/handler/httperr"
	"course-marketplace/internal/handler/middleware"
	"course-marketplace/internal/pkg/config"
	"course-marketplace/internal/pkg/errs"
	"course-marketplace/internal/pkg/qr"
	"course-marketplace/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errCertificateUnknown = errs.Mark(errs.New("certificate not found"), errs.ErrNotFound)

type CertificateHandler struct {
	q       queries.CertificateQueries
	baseURL string
}

func NewCertificateHandler(q queries.CertificateQueries, cfg config.Config) *CertificateHandler {
	return &CertificateHandler{
		q:       q,
		baseURL: strings.TrimRight(cfg.Certificate.PublicBaseURL, "/"),
	}
}

// @Summary Validate certificate
// @Description Public lookup of a certificate code. Unknown codes return valid=false.
// @Tags certificates
// @Produce json
// @Param code path string true "Certificate code"
// @Success 200 {object} queries.CertificateValidation
// @Failure 429 {object} httperr.Response
// @Router /certificates/validate/{code} [get]
func (h *CertificateHandler) Validate(c *gin.Context) {
	v, err := h.q.Validate(c.Request.Context(), c.Param("code"))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// @Summary Certificate QR code
// @Description PNG QR code pointing at the public verification page
// @Tags certificates
// @Produce png
// @Param code path string true "Certificate code"
// @Param size query int false "Image size in pixels (128-1024)"
// @Success 200 {file} binary
// @Failure 404 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /certificates/validate/{code}/qr [get]
func (h *CertificateHandler) QRCode(c *gin.Context) {
	v, err := h.q.Validate(c.Request.Context(), c.Param("code"))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	if !v.Valid {
		httperr.AbortWithError(c, http.StatusNotFound, errCertificateUnknown, "Certificate not found", nil)
		return
	}

	png, err := qr.PNG(h.verificationURL(v.Code), queryInt(c, "size", qr.DefaultSize))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Header("Cache-Control", "public, max-age=86400")
	c.Data(http.StatusOK, "image/png", png)
}

// @Summary List my certificates
// @Tags certificates
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.CertificateResponse
// @Failure 401 {object} httperr.Response
// @Router /certificates [get]
func (h *CertificateHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthorized(c)
		return
	}

	items, err := h.q.ListMine(c.Request.Context(), userID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res := make([]*resdto.CertificateResponse, len(items))
	for i, item := range items {
		res[i] = &resdto.CertificateResponse{
			Code:        item.Code,
			CourseID:    item.CourseID,
			CourseTitle: item.CourseTitle,
			IssuedAt:    item.IssuedAt,
		}
	}
	c.JSON(http.StatusOK, res)
}

func (h *CertificateHandler) verificationURL(code string) string {
	return h.baseURL + "/" + url.PathEscape(code)
}
