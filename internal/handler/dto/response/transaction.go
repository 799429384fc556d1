package response

import (
	"time"

	"course-marketplace/internal/domain/transaction"
	"course-marketplace/internal/usecase/commands"

	"github.com/google/uuid"
)

type TransactionResponse struct {
	ID             uuid.UUID  `json:"id"`
	BuyerID        uuid.UUID  `json:"buyer_id"`
	SellerID       *uuid.UUID `json:"seller_id,omitempty"`
	SubjectType    string     `json:"subject_type"`
	SubjectID      uuid.UUID  `json:"subject_id"`
	Amount         string     `json:"amount" example:"135.00"`
	PlatformFee    string     `json:"platform_fee" example:"0.00"`
	SellerNet      string     `json:"seller_net" example:"0.00"`
	DiscountAmount string     `json:"discount_amount" example:"15.00"`
	CouponCode     *string    `json:"coupon_code,omitempty"`
	PaymentRef     string     `json:"payment_ref"`
	Status         string     `json:"status"`
	DecidedBy      *uuid.UUID `json:"decided_by,omitempty"`
	DecidedAt      *time.Time `json:"decided_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

type TransactionListResponse struct {
	Items      []*TransactionResponse `json:"items"`
	NextCursor *string                `json:"next_cursor,omitempty"`
}

type DecisionResponse struct {
	Transaction *TransactionResponse `json:"transaction"`
	// false when the transaction already had the requested status
	Changed bool `json:"changed"`
}

type QuoteResponse struct {
	SubjectType    string    `json:"subject_type"`
	SubjectID      uuid.UUID `json:"subject_id"`
	Title          string    `json:"title"`
	BasePrice      string    `json:"base_price" example:"150.00"`
	DiscountAmount string    `json:"discount_amount" example:"15.00"`
	FinalAmount    string    `json:"final_amount" example:"135.00"`
	CouponCode     *string   `json:"coupon_code,omitempty"`
}

func FromTransaction(t *transaction.Transaction) (*TransactionResponse, error) {
	res := &TransactionResponse{}
	if err := copyInto(res, t); err != nil {
		return nil, err
	}
	res.SubjectType = string(t.Subject().Kind())
	res.SubjectID = t.Subject().ID()
	return res, nil
}

func FromTransactions(ts []*transaction.Transaction) ([]*TransactionResponse, error) {
	items := make([]*TransactionResponse, 0, len(ts))
	for _, t := range ts {
		res, err := FromTransaction(t)
		if err != nil {
			return nil, err
		}
		items = append(items, res)
	}
	return items, nil
}

func FromDecision(r *commands.DecisionResult) (*DecisionResponse, error) {
	t, err := FromTransaction(r.Transaction)
	if err != nil {
		return nil, err
	}
	return &DecisionResponse{Transaction: t, Changed: r.Decided}, nil
}

func FromQuote(q *commands.Quote) *QuoteResponse {
	return &QuoteResponse{
		SubjectType:    string(q.Subject.Kind()),
		SubjectID:      q.Subject.ID(),
		Title:          q.Title,
		BasePrice:      money(q.BasePrice),
		DiscountAmount: money(q.DiscountAmount),
		FinalAmount:    money(q.FinalAmount),
		CouponCode:     q.CouponCode,
	}
}
