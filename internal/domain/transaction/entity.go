package transaction

import (
	"errors"
	"strings"
	"time"

	"course-marketplace/internal/domain/catalog"
	"course-marketplace/internal/domain/coupon"
	"course-marketplace/internal/domain/fee"
	"course-marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNegativeAmount    = errors.New("transaction amount cannot be negative")
	ErrInvalidPaymentRef = errors.New("payment reference must be 1-64 printable characters")
	ErrNotPending        = errs.Mark(errs.New("transaction is not pending approval"), errs.ErrInvalidState)
	ErrAlreadyRejected   = errs.Mark(errs.New("transaction was rejected"), errs.ErrInvalidState)
	ErrAlreadyApproved   = errs.Mark(errs.New("transaction was approved"), errs.ErrInvalidState)
	ErrMissingDecisionBy = errors.New("decision requires an actor")
)

const maxPaymentRefLen = 64

// Transaction is one manual purchase awaiting, or past, admin review.
// Status only moves PENDING_APPROVAL -> APPROVED or PENDING_APPROVAL -> REJECTED.
type Transaction struct {
	id             uuid.UUID
	buyerID        uuid.UUID
	sellerID       *uuid.UUID
	subject        catalog.Subject
	amount         decimal.Decimal
	platformFee    decimal.Decimal
	sellerNet      decimal.Decimal
	paymentRef     string
	status         Status
	couponCode     *string
	discountAmount decimal.Decimal
	decidedBy      *uuid.UUID
	decidedAt      *time.Time
	createdAt      time.Time
}

// NewPending builds a submission from a priced offer. The coupon application may be nil.
func NewPending(buyerID uuid.UUID, offer catalog.Offer, applied *coupon.Application, paymentRef string, now time.Time) (*Transaction, error) {
	id := uuid.New()

	amount := offer.Price
	discount := decimal.Zero
	var code *string
	if applied != nil {
		amount = applied.FinalAmount
		discount = applied.DiscountAmount
		c := applied.Code.String()
		code = &c
	}
	if amount.IsNegative() {
		return nil, ErrNegativeAmount
	}

	ref := strings.TrimSpace(paymentRef)
	if ref == "" {
		ref = GeneratePaymentRef(id)
	}
	if len(ref) > maxPaymentRefLen {
		return nil, ErrInvalidPaymentRef
	}

	return &Transaction{
		id:             id,
		buyerID:        buyerID,
		sellerID:       offer.SellerID,
		subject:        offer.Subject,
		amount:         amount,
		platformFee:    decimal.Zero,
		sellerNet:      decimal.Zero,
		paymentRef:     ref,
		status:         StatusPendingApproval,
		couponCode:     code,
		discountAmount: discount,
		createdAt:      now,
	}, nil
}

// GeneratePaymentRef derives a reconciliation reference from the transaction id.
func GeneratePaymentRef(id uuid.UUID) string {
	hex := strings.ToUpper(strings.ReplaceAll(id.String(), "-", ""))
	return "MKT-" + hex[:12]
}

type Snapshot struct {
	ID             uuid.UUID
	BuyerID        uuid.UUID
	SellerID       *uuid.UUID
	Subject        catalog.Subject
	Amount         decimal.Decimal
	PlatformFee    decimal.Decimal
	SellerNet      decimal.Decimal
	PaymentRef     string
	Status         Status
	CouponCode     *string
	DiscountAmount decimal.Decimal
	DecidedBy      *uuid.UUID
	DecidedAt      *time.Time
	CreatedAt      time.Time
}

func Reconstruct(s Snapshot) *Transaction {
	return &Transaction{
		id:             s.ID,
		buyerID:        s.BuyerID,
		sellerID:       s.SellerID,
		subject:        s.Subject,
		amount:         s.Amount,
		platformFee:    s.PlatformFee,
		sellerNet:      s.SellerNet,
		paymentRef:     s.PaymentRef,
		status:         s.Status,
		couponCode:     s.CouponCode,
		discountAmount: s.DiscountAmount,
		decidedBy:      s.DecidedBy,
		decidedAt:      s.DecidedAt,
		createdAt:      s.CreatedAt,
	}
}

// Approve fixes the fee split. It is the only place fee and net are assigned.
func (t *Transaction) Approve(actorID uuid.UUID, now time.Time) error {
	if err := t.checkDecidable(); err != nil {
		return err
	}
	if actorID == uuid.Nil {
		return ErrMissingDecisionBy
	}
	split, err := fee.Compute(t.amount)
	if err != nil {
		return err
	}
	t.platformFee = split.PlatformFee
	t.sellerNet = split.SellerNet
	t.status = StatusApproved
	t.decide(actorID, now)
	return nil
}

// Reject leaves fee and net at zero.
func (t *Transaction) Reject(actorID uuid.UUID, now time.Time) error {
	if err := t.checkDecidable(); err != nil {
		return err
	}
	if actorID == uuid.Nil {
		return ErrMissingDecisionBy
	}
	t.status = StatusRejected
	t.decide(actorID, now)
	return nil
}

func (t *Transaction) checkDecidable() error {
	switch t.status {
	case StatusPendingApproval:
		return nil
	case StatusApproved:
		return ErrAlreadyApproved
	case StatusRejected:
		return ErrAlreadyRejected
	default:
		return ErrNotPending
	}
}

func (t *Transaction) decide(actorID uuid.UUID, now time.Time) {
	t.decidedBy = &actorID
	t.decidedAt = &now
}

func (t *Transaction) ID() uuid.UUID                   { return t.id }
func (t *Transaction) BuyerID() uuid.UUID              { return t.buyerID }
func (t *Transaction) SellerID() *uuid.UUID            { return t.sellerID }
func (t *Transaction) Subject() catalog.Subject        { return t.subject }
func (t *Transaction) Amount() decimal.Decimal         { return t.amount }
func (t *Transaction) PlatformFee() decimal.Decimal    { return t.platformFee }
func (t *Transaction) SellerNet() decimal.Decimal      { return t.sellerNet }
func (t *Transaction) PaymentRef() string              { return t.paymentRef }
func (t *Transaction) Status() Status                  { return t.status }
func (t *Transaction) CouponCode() *string             { return t.couponCode }
func (t *Transaction) DiscountAmount() decimal.Decimal { return t.discountAmount }
func (t *Transaction) DecidedBy() *uuid.UUID           { return t.decidedBy }
func (t *Transaction) DecidedAt() *time.Time           { return t.decidedAt }
func (t *Transaction) CreatedAt() time.Time            { return t.createdAt }
