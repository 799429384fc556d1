//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"course-marketplace/internal/domain/payout"
	"course-marketplace/internal/domain/transaction"
	"course-marketplace/internal/domain/user"
	reqdto "course-marketplace/internal/handler/dto/request"
	"course-marketplace/internal/pkg/clock"
	"course-marketplace/internal/pkg/errs"
	"course-marketplace/internal/usecase/commands"
	"course-marketplace/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type PayoutTestSuite struct {
	suite.Suite
	store   *memStore
	clock   *clock.MockClock
	metrics *countingMetrics
	uc      commands.PayoutCommands

	professor user.Principal
	admin     user.Principal
}

func (s *PayoutTestSuite) SetupTest() {
	s.store = newMemStore()
	s.clock = clock.NewMockClock(testNow)
	s.metrics = newCountingMetrics()
	s.uc = commands.NewPayoutUseCase(s.store, s.clock, s.metrics)

	prof := builder.NewUserBuilder().AsProfessor()
	s.store.addUser(prof.BuildDomain())
	s.professor = prof.BuildPrincipal()
	s.admin = builder.NewUserBuilder().AsAdmin().BuildPrincipal()

	// one approved 100.00 sale: 90.00 owed to the professor
	s.store.addTransaction(builder.NewTransactionBuilder().With(func(b *builder.TransactionBuilder) {
		b.SellerID = &s.professor.ID
	}).WithStatus(transaction.StatusApproved).BuildDomain())
}

func TestPayoutSuite(t *testing.T) {
	suite.Run(t, new(PayoutTestSuite))
}

func (s *PayoutTestSuite) request(amount string) reqdto.RequestPayoutRequest {
	return builder.NewPayoutBuilder().WithAmount(amount).BuildRequestDTO()
}

// ================================================================================
// RequestPayout
// ================================================================================

func (s *PayoutTestSuite) TestRequestPayout() {
	ctx := context.Background()

	s.Run("reserves part of the balance", func() {
		s.SetupTest()
		p, err := s.uc.RequestPayout(ctx, s.request("60.00"), s.professor)
		s.Require().NoError(err)

		s.Equal(payout.StatusPending, p.Status())
		s.Equal(s.professor.ID, p.RecipientID())
		s.Equal(testNow, p.RequestedAt())
		s.Contains(s.store.payouts, p.ID())
		s.Equal([]string{commands.TopicPayoutRequested}, s.store.eventTopics())
		s.Equal(1, s.metrics.payouts)

		balance, err := s.store.CommandReads().BalanceFor(ctx, s.professor.ID)
		s.Require().NoError(err)
		s.True(balance.Available().Equal(decimal.RequireFromString("30.00")))
	})

	s.Run("pending payouts count against the next request", func() {
		s.SetupTest()
		_, err := s.uc.RequestPayout(ctx, s.request("60.00"), s.professor)
		s.Require().NoError(err)

		_, err = s.uc.RequestPayout(ctx, s.request("40.00"), s.professor)
		s.ErrorIs(err, payout.ErrInsufficientBalance)
		s.Len(s.store.payouts, 1)
		s.Equal(1, s.metrics.payouts)
	})

	s.Run("whole balance can be withdrawn", func() {
		s.SetupTest()
		_, err := s.uc.RequestPayout(ctx, s.request("90.00"), s.professor)
		s.NoError(err)
	})

	s.Run("failed payouts release the reservation", func() {
		s.SetupTest()
		s.store.addPayout(builder.NewPayoutBuilder().WithRecipientID(s.professor.ID).WithAmount("90.00").WithStatus(payout.StatusFailed).BuildDomain())

		_, err := s.uc.RequestPayout(ctx, s.request("90.00"), s.professor)
		s.NoError(err)
	})

	s.Run("students cannot request payouts", func() {
		s.SetupTest()
		student := builder.NewUserBuilder().AsStudent().BuildPrincipal()
		_, err := s.uc.RequestPayout(ctx, s.request("10.00"), student)
		s.ErrorIs(err, commands.ErrPayoutRoleRequired)
		s.True(errs.Is(err, errs.ErrPermissionDenied))
	})

	s.Run("stored role wins over the token", func() {
		s.SetupTest()
		demoted := builder.NewUserBuilder().AsStudent()
		s.store.addUser(demoted.BuildDomain())
		claims := demoted.BuildPrincipal()
		claims.Role = user.RoleProfessor

		_, err := s.uc.RequestPayout(ctx, s.request("10.00"), claims)
		s.ErrorIs(err, commands.ErrPayoutRoleRequired)
		s.Empty(s.store.payouts)
	})

	s.Run("non-positive amount", func() {
		s.SetupTest()
		_, err := s.uc.RequestPayout(ctx, s.request("0"), s.professor)
		s.ErrorIs(err, payout.ErrNonPositiveAmount)
		s.True(errs.Is(err, errs.ErrValidation))
	})

	s.Run("missing pix key", func() {
		s.SetupTest()
		req := builder.NewPayoutBuilder().WithPixKey("  ").BuildRequestDTO()
		_, err := s.uc.RequestPayout(ctx, req, s.professor)
		s.ErrorIs(err, payout.ErrMissingPixKey)
	})
}

// ================================================================================
// UpdateStatus
// ================================================================================

func (s *PayoutTestSuite) TestUpdateStatus() {
	ctx := context.Background()

	seed := func(status payout.Status) *payout.Payout {
		p := builder.NewPayoutBuilder().WithRecipientID(s.professor.ID).WithAmount("50.00").WithStatus(status).BuildDomain()
		s.store.addPayout(p)
		return p
	}

	s.Run("pending to processing to completed", func() {
		s.SetupTest()
		p := seed(payout.StatusPending)

		updated, err := s.uc.UpdateStatus(ctx, p.ID(), reqdto.UpdatePayoutStatusRequest{Status: "PROCESSING"}, s.admin)
		s.Require().NoError(err)
		s.Equal(payout.StatusProcessing, updated.Status())
		s.Nil(updated.ProcessedAt())

		s.clock.Add(time.Hour)
		updated, err = s.uc.UpdateStatus(ctx, p.ID(), reqdto.UpdatePayoutStatusRequest{Status: "completed"}, s.admin)
		s.Require().NoError(err)
		s.Equal(payout.StatusCompleted, updated.Status())
		s.Require().NotNil(updated.ProcessedAt())
		s.Equal(testNow.Add(time.Hour), *updated.ProcessedAt())

		s.Equal(payout.StatusCompleted, s.store.payouts[p.ID()].Status())
		s.Equal([]string{commands.TopicPayoutStatusChanged, commands.TopicPayoutStatusChanged}, s.store.eventTopics())

		balance, err := s.store.CommandReads().BalanceFor(ctx, s.professor.ID)
		s.Require().NoError(err)
		s.True(balance.Owed().Equal(decimal.RequireFromString("40.00")))
	})

	s.Run("terminal status cannot move", func() {
		s.SetupTest()
		p := seed(payout.StatusCompleted)

		_, err := s.uc.UpdateStatus(ctx, p.ID(), reqdto.UpdatePayoutStatusRequest{Status: "FAILED"}, s.admin)
		s.ErrorIs(err, payout.ErrTransition)
		s.True(errs.Is(err, errs.ErrInvalidState))
		s.Empty(s.store.events)
	})

	s.Run("pending cannot skip to completed", func() {
		s.SetupTest()
		p := seed(payout.StatusPending)

		_, err := s.uc.UpdateStatus(ctx, p.ID(), reqdto.UpdatePayoutStatusRequest{Status: "COMPLETED"}, s.admin)
		s.ErrorIs(err, payout.ErrTransition)
		s.Equal(payout.StatusPending, s.store.payouts[p.ID()].Status())
	})

	s.Run("unknown status", func() {
		s.SetupTest()
		p := seed(payout.StatusPending)

		_, err := s.uc.UpdateStatus(ctx, p.ID(), reqdto.UpdatePayoutStatusRequest{Status: "PAID"}, s.admin)
		s.True(errs.Is(err, errs.ErrValidation))
	})

	s.Run("unknown payout", func() {
		s.SetupTest()
		_, err := s.uc.UpdateStatus(ctx, uuid.New(), reqdto.UpdatePayoutStatusRequest{Status: "FAILED"}, s.admin)
		s.ErrorIs(err, commands.ErrPayoutNotFound)
	})

	s.Run("admins only", func() {
		s.SetupTest()
		p := seed(payout.StatusPending)

		_, err := s.uc.UpdateStatus(ctx, p.ID(), reqdto.UpdatePayoutStatusRequest{Status: "FAILED"}, s.professor)
		s.ErrorIs(err, commands.ErrAdminOnly)
	})
}
