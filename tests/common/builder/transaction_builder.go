//go:build unit || e2e

package builder

import (
	"time"

	"course-marketplace/internal/domain/catalog"
	"course-marketplace/internal/domain/transaction"
	reqdto "course-marketplace/internal/handler/dto/request"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionBuilder struct {
	ID             uuid.UUID
	BuyerID        uuid.UUID
	SellerID       *uuid.UUID
	Subject        catalog.Subject
	Amount         decimal.Decimal
	PaymentRef     string
	Status         transaction.Status
	CouponCode     *string
	DiscountAmount decimal.Decimal
	CreatedAt      time.Time
}

func NewTransactionBuilder() *TransactionBuilder {
	seller := uuid.New()
	return &TransactionBuilder{
		ID:             uuid.New(),
		BuyerID:        uuid.New(),
		SellerID:       &seller,
		Subject:        catalog.CourseSubject(uuid.New()),
		Amount:         decimal.RequireFromString("100.00"),
		PaymentRef:     "PIX-123456",
		Status:         transaction.StatusPendingApproval,
		DiscountAmount: decimal.Zero,
		CreatedAt:      time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *TransactionBuilder) With(mutate func(*TransactionBuilder)) *TransactionBuilder {
	mutate(b)
	return b
}

// BuildDomain reconstructs a transaction in the builder's status. Fee and net are
// only filled for APPROVED, matching what the store can hold.
func (b *TransactionBuilder) BuildDomain() *transaction.Transaction {
	snap := transaction.Snapshot{
		ID:             b.ID,
		BuyerID:        b.BuyerID,
		SellerID:       b.SellerID,
		Subject:        b.Subject,
		Amount:         b.Amount,
		PlatformFee:    decimal.Zero,
		SellerNet:      decimal.Zero,
		PaymentRef:     b.PaymentRef,
		Status:         b.Status,
		CouponCode:     b.CouponCode,
		DiscountAmount: b.DiscountAmount,
		CreatedAt:      b.CreatedAt,
	}
	if b.Status == transaction.StatusApproved {
		snap.PlatformFee = b.Amount.Mul(decimal.RequireFromString("0.10")).Round(2)
		snap.SellerNet = b.Amount.Mul(decimal.RequireFromString("0.90")).Round(2)
	}
	if b.Status.IsTerminal() {
		admin := uuid.New()
		decidedAt := b.CreatedAt.Add(time.Hour)
		snap.DecidedBy = &admin
		snap.DecidedAt = &decidedAt
	}
	return transaction.Reconstruct(snap)
}

func (b *TransactionBuilder) BuildCheckoutRequestDTO() reqdto.CheckoutRequest {
	ref := b.PaymentRef
	return reqdto.CheckoutRequest{
		SubjectType: string(b.Subject.Kind()),
		SubjectID:   b.Subject.ID(),
		CouponCode:  b.CouponCode,
		PaymentRef:  &ref,
	}
}

// Fluent builder methods
func (b *TransactionBuilder) WithBuyerID(id uuid.UUID) *TransactionBuilder {
	b.BuyerID = id
	return b
}

func (b *TransactionBuilder) WithCourse(id uuid.UUID) *TransactionBuilder {
	b.Subject = catalog.CourseSubject(id)
	return b
}

func (b *TransactionBuilder) WithTrack(id uuid.UUID) *TransactionBuilder {
	b.Subject = catalog.TrackSubject(id)
	return b
}

func (b *TransactionBuilder) WithAmount(amount string) *TransactionBuilder {
	b.Amount = decimal.RequireFromString(amount)
	return b
}

func (b *TransactionBuilder) WithCoupon(code string) *TransactionBuilder {
	b.CouponCode = &code
	return b
}

func (b *TransactionBuilder) WithStatus(status transaction.Status) *TransactionBuilder {
	b.Status = status
	return b
}

func (b *TransactionBuilder) WithCreatedAt(t time.Time) *TransactionBuilder {
	b.CreatedAt = t
	return b
}
