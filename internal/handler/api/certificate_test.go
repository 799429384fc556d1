//go:build unit

package api_test

import (
	"bytes"
	"errors"
	"image/png"
	"net/http"
	"testing"
	"time"

	"course-marketplace/internal/domain/user"
	"course-marketplace/internal/handler/api"
	resdto "course-marketplace/internal/handler/dto/response"
	"course-marketplace/internal/pkg/config"
	"course-marketplace/internal/pkg/qr"
	"course-marketplace/internal/usecase/queries"
	"course-marketplace/tests/common/httptest"
	queriesmock "course-marketplace/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const certCode = "CERT-A1B2C3-0F9E8D-7K2"

type CertificateHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockCertificateQueries
	student     user.Principal
}

func (s *CertificateHandlerTestSuite) SetupTest() {
	s.router = newTestRouter()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockCertificateQueries(s.mockCtrl)
	s.student = newPrincipal(user.RoleStudent)

	cfg := config.Config{Certificate: config.CertificateConfig{PublicBaseURL: "https://example.com/verify/"}}
	h := api.NewCertificateHandler(s.mockQueries, cfg)
	s.router.GET("/certificates/validate/:code", h.Validate)
	s.router.GET("/certificates/:code/qrcode", h.QRCode)
	s.router.GET("/certificates", fakeAuth(s.student), h.ListMine)
}

func (s *CertificateHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCertificateHandlerSuite(t *testing.T) {
	suite.Run(t, new(CertificateHandlerTestSuite))
}

func (s *CertificateHandlerTestSuite) TestValidate() {
	issuedAt := time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)

	s.Run("valid certificate, no auth required", func() {
		s.mockQueries.EXPECT().Validate(gomock.Any(), certCode).Return(&queries.CertificateValidation{
			Valid:       true,
			Code:        certCode,
			StudentName: "Ana Souza",
			CourseTitle: "Go for Backend Engineers",
			IssuedAt:    &issuedAt,
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/certificates/validate/"+certCode, nil, "")

		var body queries.CertificateValidation
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Valid)
		s.Equal("Ana Souza", body.StudentName)
		s.Require().NotNil(body.IssuedAt)
		s.True(issuedAt.Equal(*body.IssuedAt))
	})

	s.Run("unknown code is still 200", func() {
		s.mockQueries.EXPECT().Validate(gomock.Any(), "nope").Return(&queries.CertificateValidation{Valid: false, Code: "NOPE"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/certificates/validate/nope", nil, "")

		var body queries.CertificateValidation
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.Valid)
	})

	s.Run("store failure is 500", func() {
		s.mockQueries.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/certificates/validate/"+certCode, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *CertificateHandlerTestSuite) TestQRCode() {
	valid := &queries.CertificateValidation{Valid: true, Code: certCode}

	s.Run("renders a cacheable png", func() {
		s.mockQueries.EXPECT().Validate(gomock.Any(), certCode).Return(valid, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/certificates/"+certCode+"/qrcode", nil, "")

		s.Equal(http.StatusOK, rec.Code)
		httptest.AssertHeaders(s.T(), rec, map[string]string{
			"Content-Type":  "image/png",
			"Cache-Control": "public, max-age=86400",
		})
		img, err := png.Decode(bytes.NewReader(rec.Body.Bytes()))
		s.Require().NoError(err)
		s.Equal(qr.DefaultSize, img.Bounds().Dx())
	})

	s.Run("size is clamped", func() {
		s.mockQueries.EXPECT().Validate(gomock.Any(), certCode).Return(valid, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/certificates/"+certCode+"/qrcode?size=10", nil, "")

		s.Equal(http.StatusOK, rec.Code)
		img, err := png.Decode(bytes.NewReader(rec.Body.Bytes()))
		s.Require().NoError(err)
		s.Equal(qr.MinSize, img.Bounds().Dx())
	})

	s.Run("unknown certificate is 404", func() {
		s.mockQueries.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(&queries.CertificateValidation{Valid: false}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/certificates/CERT-000000-000000-000/qrcode", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Certificate not found")
	})
}

func (s *CertificateHandlerTestSuite) TestListMine() {
	s.Run("success", func() {
		courseID := uuid.New()
		issuedAt := time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)
		s.mockQueries.EXPECT().ListMine(gomock.Any(), s.student.ID).Return([]*queries.CertificateListItem{
			{Code: certCode, CourseID: courseID, CourseTitle: "Go", IssuedAt: issuedAt},
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/certificates", nil, bearer)

		var body []resdto.CertificateResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal(certCode, body[0].Code)
		s.Equal(courseID, body[0].CourseID)
	})

	s.Run("requires auth", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/certificates", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}
