//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"course-marketplace/internal/domain/coupon"
	"course-marketplace/internal/domain/user"
	"course-marketplace/internal/handler/api"
	reqdto "course-marketplace/internal/handler/dto/request"
	resdto "course-marketplace/internal/handler/dto/response"
	"course-marketplace/internal/pkg/errs"
	"course-marketplace/internal/usecase/commands"
	"course-marketplace/internal/usecase/queries"
	"course-marketplace/tests/common/builder"
	"course-marketplace/tests/common/httptest"
	"course-marketplace/tests/common/testutil"
	commandsmock "course-marketplace/tests/mock/commands"
	queriesmock "course-marketplace/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CouponHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCouponCommands
	mockQueries  *queriesmock.MockCouponQueries
	student      user.Principal
	admin        user.Principal
}

func (s *CouponHandlerTestSuite) SetupTest() {
	s.router = newTestRouter()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCouponCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCouponQueries(s.mockCtrl)
	s.student = newPrincipal(user.RoleStudent)
	s.admin = newPrincipal(user.RoleAdmin)

	h := api.NewCouponHandler(s.mockCommands, s.mockQueries)
	s.router.POST("/coupons/validate", fakeAuth(s.student), h.Validate)
	s.router.POST("/admin/coupons", fakeAuth(s.admin), h.Create)
	s.router.PATCH("/admin/coupons/:code", fakeAuth(s.admin), h.Update)
}

func (s *CouponHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCouponHandlerSuite(t *testing.T) {
	suite.Run(t, new(CouponHandlerTestSuite))
}

func (s *CouponHandlerTestSuite) TestValidate() {
	url := "/coupons/validate"

	s.Run("success", func() {
		s.mockQueries.EXPECT().Validate(gomock.Any(), "insta10", s.student.ID).
			Return(&queries.CouponValidation{Valid: true, Code: "INSTA10", DiscountPercentage: 10}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.ValidateCouponRequest{Code: "insta10"}, bearer)

		var body queries.CouponValidation
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Valid)
		s.Equal("INSTA10", body.Code)
		s.Equal(10, body.DiscountPercentage)
	})

	s.Run("rejections return 400 with the reason", func() {
		for _, kind := range []coupon.RejectionKind{coupon.KindNotFound, coupon.KindExpired, coupon.KindExhausted, coupon.KindUserExhausted} {
			s.Run(string(kind), func() {
				s.mockQueries.EXPECT().Validate(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, coupon.NewRejection(kind, "INSTA10"))

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.ValidateCouponRequest{Code: "INSTA10"}, bearer)
				httptest.AssertRejection(s.T(), rec, string(kind))
			})
		}
	})

	s.Run("error: empty code", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *CouponHandlerTestSuite) TestCreate() {
	url := "/admin/coupons"
	cb := builder.NewCouponBuilder().WithCode("BLACK50").WithPercentage(50).WithMaxUses(100)
	reqBody := cb.BuildCreateRequestDTO()

	s.Run("success: 201", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody, s.admin).Return(cb.BuildDomain(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, bearer)

		var body resdto.CouponResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("BLACK50", body.Code)
		s.Equal(50, body.DiscountPercentage)
		s.Require().NotNil(body.MaxUses)
		s.Equal(int32(100), *body.MaxUses)
		s.Equal(int32(0), body.UsedCount)
	})

	s.Run("error: 400 on invalid body", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "percentage 0", mutate: testutil.Field("discount_percentage", 0)},
			{name: "percentage 101", mutate: testutil.Field("discount_percentage", 101)},
			{name: "code too short", mutate: testutil.Field("code", "AB")},
			{name: "max_uses 0", mutate: testutil.Field("max_uses", 0)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), bearer)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: 409 on duplicate code", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, commands.ErrCouponCodeTaken)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})

	s.Run("error: 403 for non-admins", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, commands.ErrAdminOnly)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})
}

func (s *CouponHandlerTestSuite) TestUpdate() {
	url := "/admin/coupons/BLACK50"

	s.Run("explicit null clears, omitted keeps", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), "BLACK50", gomock.Any(), s.admin).
			DoAndReturn(func(_ context.Context, _ string, req reqdto.UpdateCouponRequest, _ user.Principal) (*coupon.Coupon, error) {
				s.True(req.ValidUntil.Set)
				s.Nil(req.ValidUntil.Value)
				s.False(req.MaxUses.Set)
				s.Require().NotNil(req.DiscountPercentage)
				s.Equal(30, *req.DiscountPercentage)
				return builder.NewCouponBuilder().WithCode("BLACK50").WithPercentage(30).BuildDomain(), nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			testutil.DtoMap(s.T(), map[string]any{"discount_percentage": 30}, testutil.Null("valid_until")), bearer)

		var body resdto.CouponResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(30, body.DiscountPercentage)
		s.Nil(body.ValidUntil)
	})

	s.Run("error: 400 when the limit drops below usage", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(coupon.ErrLimitBelowUsage, errs.ErrValidation))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"max_uses": 1}, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 404 for unknown coupon", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, commands.ErrCouponNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{}, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}
