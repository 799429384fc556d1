//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"course-marketplace/internal/domain/transaction"
	"course-marketplace/internal/domain/user"
	"course-marketplace/internal/handler/api"
	resdto "course-marketplace/internal/handler/dto/response"
	"course-marketplace/internal/usecase/commands"
	"course-marketplace/internal/usecase/queries"
	"course-marketplace/tests/common/builder"
	"course-marketplace/tests/common/httptest"
	commandsmock "course-marketplace/tests/mock/commands"
	queriesmock "course-marketplace/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TransactionHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockApprovalCommands
	mockQueries  *queriesmock.MockTransactionQueries
	admin        user.Principal
	buyer        user.Principal
}

func (s *TransactionHandlerTestSuite) SetupTest() {
	s.router = newTestRouter()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockApprovalCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockTransactionQueries(s.mockCtrl)
	s.admin = newPrincipal(user.RoleAdmin)
	s.buyer = newPrincipal(user.RoleStudent)

	h := api.NewTransactionHandler(s.mockCommands, s.mockQueries)
	s.router.GET("/transactions", fakeAuth(s.buyer), h.ListMine)
	s.router.GET("/transactions/:id", fakeAuth(s.buyer), h.Get)
	s.router.GET("/admin/transactions", fakeAuth(s.admin), h.ListByStatus)
	s.router.POST("/admin/transactions/:id/approve", fakeAuth(s.admin), h.Approve)
	s.router.POST("/admin/transactions/:id/reject", fakeAuth(s.admin), h.Reject)
}

func (s *TransactionHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTransactionHandlerSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}

// ================================================================================
// TestListMine / TestGet
// ================================================================================

func (s *TransactionHandlerTestSuite) TestListMine() {
	s.Run("success: passes cursor and limit, returns next cursor", func() {
		rows := []*transaction.Transaction{builder.NewTransactionBuilder().WithBuyerID(s.buyer.ID).BuildDomain()}
		next := &queries.Cursor{After: "next-page"}
		s.mockQueries.EXPECT().ListMine(gomock.Any(), s.buyer.ID, &queries.Cursor{After: "abc"}, 5).Return(rows, next, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/transactions?after=abc&limit=5", nil, bearer)

		var body resdto.TransactionListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Items, 1)
		s.Require().NotNil(body.NextCursor)
		s.Equal("next-page", *body.NextCursor)
	})

	s.Run("success: first page uses the default limit", func() {
		s.mockQueries.EXPECT().ListMine(gomock.Any(), s.buyer.ID, (*queries.Cursor)(nil), queries.DefaultLimit).Return(nil, nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/transactions?limit=abc", nil, bearer)

		var body resdto.TransactionListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body.Items)
		s.Nil(body.NextCursor)
	})

	s.Run("error: invalid cursor", func() {
		s.mockQueries.EXPECT().ListMine(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil, queries.ErrInvalidCursor)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/transactions?after=zzz", nil, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid cursor")
	})
}

func (s *TransactionHandlerTestSuite) TestGet() {
	t := builder.NewTransactionBuilder().WithBuyerID(s.buyer.ID).BuildDomain()

	s.Run("success", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.buyer, t.ID()).Return(t, nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/transactions/"+t.ID().String(), nil, bearer)

		var body resdto.TransactionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(t.ID(), body.ID)
		s.Equal("course", body.SubjectType)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/transactions/nope", nil, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid transaction ID format")
	})

	s.Run("error: 403 for someone else's transaction", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, queries.ErrTransactionAccess)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/transactions/"+uuid.NewString(), nil, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})

	s.Run("error: 404", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, queries.ErrTransactionNotFound)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/transactions/"+uuid.NewString(), nil, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "transaction not found")
	})
}

// ================================================================================
// Admin review queue
// ================================================================================

func (s *TransactionHandlerTestSuite) TestListByStatus() {
	s.Run("success: forwards filter and paging", func() {
		s.mockQueries.EXPECT().ListByStatus(gomock.Any(), s.admin, "APPROVED", 10, 20).Return(nil, nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/transactions?status=APPROVED&limit=10&offset=20", nil, bearer)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: invalid status", func() {
		s.mockQueries.EXPECT().ListByStatus(gomock.Any(), s.admin, "BOGUS", queries.DefaultLimit, 0).Return(nil, queries.ErrInvalidStatusFilter)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/transactions?status=BOGUS", nil, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid status filter")
	})
}

func (s *TransactionHandlerTestSuite) TestDecide() {
	pending := builder.NewTransactionBuilder()
	approved := pending.WithStatus(transaction.StatusApproved).BuildDomain()

	s.Run("approve: returns the transaction and whether it changed", func() {
		s.mockCommands.EXPECT().Approve(gomock.Any(), approved.ID(), s.admin).
			Return(&commands.DecisionResult{Transaction: approved, Decided: true}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/transactions/"+approved.ID().String()+"/approve", nil, bearer)

		var body resdto.DecisionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Changed)
		s.Equal("APPROVED", body.Transaction.Status)
		s.Equal("10.00", body.Transaction.PlatformFee)
		s.Equal("90.00", body.Transaction.SellerNet)
	})

	s.Run("approve again: 200 with changed=false", func() {
		s.mockCommands.EXPECT().Approve(gomock.Any(), approved.ID(), s.admin).
			Return(&commands.DecisionResult{Transaction: approved, Decided: false}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/transactions/"+approved.ID().String()+"/approve", nil, bearer)

		var body resdto.DecisionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.Changed)
	})

	s.Run("reject an approved transaction: 400", func() {
		s.mockCommands.EXPECT().Reject(gomock.Any(), approved.ID(), s.admin).Return(nil, transaction.ErrAlreadyApproved)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/transactions/"+approved.ID().String()+"/reject", nil, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("unknown transaction: 404", func() {
		s.mockCommands.EXPECT().Reject(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, commands.ErrTransactionNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/transactions/"+uuid.NewString()+"/reject", nil, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})

	s.Run("malformed id: 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/transactions/123/approve", nil, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid transaction ID format")
	})
}
