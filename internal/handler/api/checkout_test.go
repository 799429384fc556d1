//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"course-marketplace/internal/domain/catalog"
	"course-marketplace/internal/domain/coupon"
	"course-marketplace/internal/domain/user"
	"course-marketplace/internal/handler/api"
	resdto "course-marketplace/internal/handler/dto/response"
	"course-marketplace/internal/pkg/errs"
	"course-marketplace/internal/usecase/commands"
	"course-marketplace/tests/common/builder"
	"course-marketplace/tests/common/httptest"
	"course-marketplace/tests/common/testutil"
	commandsmock "course-marketplace/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CheckoutHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCheckoutCommands
	buyer        user.Principal
}

func (s *CheckoutHandlerTestSuite) SetupTest() {
	s.router = newTestRouter()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCheckoutCommands(s.mockCtrl)
	s.buyer = newPrincipal(user.RoleStudent)

	h := api.NewCheckoutHandler(s.mockCommands)
	s.router.POST("/checkout/quote", fakeAuth(s.buyer), h.Quote)
	s.router.POST("/checkout/manual", fakeAuth(s.buyer), h.SubmitManualPayment)
}

func (s *CheckoutHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCheckoutHandlerSuite(t *testing.T) {
	suite.Run(t, new(CheckoutHandlerTestSuite))
}

// ================================================================================
// TestQuote
// ================================================================================

func (s *CheckoutHandlerTestSuite) TestQuote() {
	url := "/checkout/quote"
	courseID := uuid.New()
	reqBody := builder.NewTransactionBuilder().WithCourse(courseID).WithCoupon("INSTA10").BuildCheckoutRequestDTO()
	code := "INSTA10"

	s.Run("success: returns prices as fixed strings", func() {
		s.mockCommands.EXPECT().Quote(gomock.Any(), reqBody, s.buyer.ID).Return(&commands.Quote{
			Subject:        catalog.CourseSubject(courseID),
			Title:          "Go for Backend Engineers",
			BasePrice:      decimal.RequireFromString("150"),
			DiscountAmount: decimal.RequireFromString("15"),
			FinalAmount:    decimal.RequireFromString("135"),
			CouponCode:     &code,
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, bearer)

		var body resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("course", body.SubjectType)
		s.Equal(courseID, body.SubjectID)
		s.Equal("150.00", body.BasePrice)
		s.Equal("15.00", body.DiscountAmount)
		s.Equal("135.00", body.FinalAmount)
		s.Equal(&code, body.CouponCode)
	})

	s.Run("error: 400 on invalid body", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing subject_type", mutate: testutil.Field("subject_type", nil)},
			{name: "unknown subject_type", mutate: testutil.Field("subject_type", "bundle")},
			{name: "missing subject_id", mutate: testutil.Field("subject_id", nil)},
			{name: "payment_ref too long", mutate: testutil.Field("payment_ref", strings.Repeat("x", 65))},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), bearer)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: coupon rejection carries the reason", func() {
		s.mockCommands.EXPECT().Quote(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, coupon.NewRejection(coupon.KindExpired, "INSTA10"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, bearer)
		httptest.AssertRejection(s.T(), rec, "expired")
	})

	s.Run("error: 401 when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestSubmitManualPayment
// ================================================================================

func (s *CheckoutHandlerTestSuite) TestSubmitManualPayment() {
	url := "/checkout/manual"
	tb := builder.NewTransactionBuilder().WithBuyerID(s.buyer.ID)
	reqBody := tb.BuildCheckoutRequestDTO()
	tx := tb.BuildDomain()
	key := uuid.New()
	headers := map[string]string{"Idempotency-Key": key.String()}

	s.Run("success: 201 for a new transaction", func() {
		s.mockCommands.EXPECT().SubmitManualPayment(gomock.Any(), reqBody, s.buyer.ID, key).
			Return(&commands.SubmitResult{Transaction: tx}, nil)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, headers, bearer)

		var body resdto.TransactionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(tx.ID(), body.ID)
		s.Equal("PENDING_APPROVAL", body.Status)
		s.Equal("100.00", body.Amount)
		s.Equal("0.00", body.PlatformFee)
		s.Empty(rec.Header().Get("Idempotent-Replayed"))
	})

	s.Run("success: 200 with replay header", func() {
		s.mockCommands.EXPECT().SubmitManualPayment(gomock.Any(), reqBody, s.buyer.ID, key).
			Return(&commands.SubmitResult{Transaction: tx, IsReplayed: true}, nil)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, headers, bearer)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Idempotent-Replayed": "true"})
	})

	s.Run("error: 400 without idempotency key", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 400 on malformed idempotency key", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody,
			map[string]string{"Idempotency-Key": "not-a-uuid"}, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "UUID")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "key in progress", err: errs.ErrIdempotencyInProgress, expectedStatus: http.StatusConflict, expectedMsg: "still being processed"},
			{name: "key reused", err: commands.ErrIdempotencyReuse, expectedStatus: http.StatusConflict},
			{name: "already owned", err: commands.ErrAlreadyOwned, expectedStatus: http.StatusConflict},
			{name: "redemption race", err: commands.ErrRedeemConflict, expectedStatus: http.StatusConflict},
			{name: "unknown course", err: commands.ErrCourseNotFound, expectedStatus: http.StatusNotFound},
			{name: "coupon used up", err: coupon.NewRejection(coupon.KindUserExhausted, "INSTA10"), expectedStatus: http.StatusBadRequest},
			{name: "unexpected", err: errors.New("db down"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().SubmitManualPayment(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.err)

				rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, headers, bearer)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
