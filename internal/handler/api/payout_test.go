//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"course-marketplace/internal/domain/payout"
	"course-marketplace/internal/domain/user"
	"course-marketplace/internal/handler/api"
	reqdto "course-marketplace/internal/handler/dto/request"
	resdto "course-marketplace/internal/handler/dto/response"
	"course-marketplace/internal/usecase/commands"
	"course-marketplace/internal/usecase/queries"
	"course-marketplace/tests/common/builder"
	"course-marketplace/tests/common/httptest"
	"course-marketplace/tests/common/testutil"
	commandsmock "course-marketplace/tests/mock/commands"
	queriesmock "course-marketplace/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PayoutHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPayoutCommands
	mockQueries  *queriesmock.MockPayoutQueries
	professor    user.Principal
	admin        user.Principal
}

func (s *PayoutHandlerTestSuite) SetupTest() {
	s.router = newTestRouter()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPayoutCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockPayoutQueries(s.mockCtrl)
	s.professor = newPrincipal(user.RoleProfessor)
	s.admin = newPrincipal(user.RoleAdmin)

	h := api.NewPayoutHandler(s.mockCommands, s.mockQueries)
	s.router.GET("/payouts/balance", fakeAuth(s.professor), h.Balance)
	s.router.GET("/payouts", fakeAuth(s.professor), h.ListMine)
	s.router.POST("/payouts", fakeAuth(s.professor), h.Request)
	s.router.GET("/admin/payouts", fakeAuth(s.admin), h.ListByStatus)
	s.router.PATCH("/admin/payouts/:id/status", fakeAuth(s.admin), h.UpdateStatus)
}

func (s *PayoutHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPayoutHandlerSuite(t *testing.T) {
	suite.Run(t, new(PayoutHandlerTestSuite))
}

// ================================================================================
// Recipient endpoints
// ================================================================================

func (s *PayoutHandlerTestSuite) TestBalance() {
	s.Run("money is rendered with two decimals", func() {
		s.mockQueries.EXPECT().Balance(gomock.Any(), s.professor).Return(&queries.BalanceView{
			RecipientID: s.professor.ID,
			Accrued:     decimal.RequireFromString("900"),
			PaidOut:     decimal.RequireFromString("300"),
			Reserved:    decimal.RequireFromString("150.5"),
			Owed:        decimal.RequireFromString("600"),
			Available:   decimal.RequireFromString("449.5"),
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/payouts/balance", nil, bearer)

		var body resdto.BalanceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(s.professor.ID, body.RecipientID)
		s.Equal("900.00", body.Accrued)
		s.Equal("150.50", body.Reserved)
		s.Equal("600.00", body.Owed)
		s.Equal("449.50", body.Available)
	})

	s.Run("students are forbidden", func() {
		s.mockQueries.EXPECT().Balance(gomock.Any(), gomock.Any()).Return(nil, queries.ErrPayoutAccess)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/payouts/balance", nil, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "payout balance")
	})
}

func (s *PayoutHandlerTestSuite) TestListMine() {
	rows := []*payout.Payout{builder.NewPayoutBuilder().WithRecipientID(s.professor.ID).BuildDomain()}
	s.mockQueries.EXPECT().ListMine(gomock.Any(), s.professor, 5).Return(rows, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/payouts?limit=5", nil, bearer)

	var body []resdto.PayoutResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Require().Len(body, 1)
	s.Equal("150.00", body[0].Amount)
	s.Equal("PENDING", body[0].Status)
	s.Equal("prof@example.com", body[0].BankDetails.PixKey)
}

func (s *PayoutHandlerTestSuite) TestRequest() {
	pb := builder.NewPayoutBuilder().WithRecipientID(s.professor.ID).WithAmount("60.00")
	reqBody := pb.BuildRequestDTO()

	s.Run("success: 201", func() {
		s.mockCommands.EXPECT().RequestPayout(gomock.Any(), gomock.Any(), s.professor).
			DoAndReturn(func(_ context.Context, req reqdto.RequestPayoutRequest, _ user.Principal) (*payout.Payout, error) {
				s.True(decimal.RequireFromString("60").Equal(req.Amount))
				s.Equal("prof@example.com", req.BankDetails.PixKey)
				return pb.BuildDomain(), nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/payouts", reqBody, bearer)

		var body resdto.PayoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("60.00", body.Amount)
		s.Equal("Prof. Lima", body.BankDetails.HolderName)
		s.Nil(body.ProcessedAt)
	})

	s.Run("error: 400 without a pix key", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("bank_details", map[string]any{"holder_name": "x"}))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/payouts", body, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 400 over the available balance", func() {
		s.mockCommands.EXPECT().RequestPayout(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, payout.ErrInsufficientBalance)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/payouts", reqBody, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "available balance")
	})

	s.Run("error: 403 for students", func() {
		s.mockCommands.EXPECT().RequestPayout(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, commands.ErrPayoutRoleRequired)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/payouts", reqBody, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})
}

// ================================================================================
// Admin endpoints
// ================================================================================

func (s *PayoutHandlerTestSuite) TestListByStatus() {
	s.mockQueries.EXPECT().ListByStatus(gomock.Any(), s.admin, "PENDING", queries.DefaultLimit, 0).Return(nil, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/payouts?status=PENDING", nil, bearer)

	var body []resdto.PayoutResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Empty(body)
}

func (s *PayoutHandlerTestSuite) TestUpdateStatus() {
	id := uuid.New()
	url := "/admin/payouts/" + id.String() + "/status"

	s.Run("success", func() {
		completed := builder.NewPayoutBuilder().WithStatus(payout.StatusCompleted)
		completed.ID = id
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), id, reqdto.UpdatePayoutStatusRequest{Status: "COMPLETED"}, s.admin).
			Return(completed.BuildDomain(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqdto.UpdatePayoutStatusRequest{Status: "COMPLETED"}, bearer)

		var body resdto.PayoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(id, body.ID)
		s.Equal("COMPLETED", body.Status)
		s.NotNil(body.ProcessedAt)
	})

	s.Run("error: unknown status value", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "PAID"}, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: terminal payout", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), id, gomock.Any(), gomock.Any()).Return(nil, payout.ErrTransition)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqdto.UpdatePayoutStatusRequest{Status: "FAILED"}, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "transition")
	})

	s.Run("error: unknown payout", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), id, gomock.Any(), gomock.Any()).Return(nil, commands.ErrPayoutNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqdto.UpdatePayoutStatusRequest{Status: "PROCESSING"}, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "payout not found")
	})

	s.Run("error: malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/admin/payouts/abc/status",
			reqdto.UpdatePayoutStatusRequest{Status: "PROCESSING"}, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid payout ID format")
	})
}
