package response

import (
	"time"

	"course-marketplace/internal/domain/payout"
	"course-marketplace/internal/usecase/queries"

	"github.com/google/uuid"
)

type BankDetailsResponse struct {
	PixKey     string `json:"pix_key"`
	HolderName string `json:"holder_name,omitempty"`
	BankName   string `json:"bank_name,omitempty"`
}

type PayoutResponse struct {
	ID          uuid.UUID           `json:"id"`
	RecipientID uuid.UUID           `json:"recipient_id"`
	Amount      string              `json:"amount" example:"100.00"`
	BankDetails BankDetailsResponse `json:"bank_details"`
	Status      string              `json:"status"`
	RequestedAt time.Time           `json:"requested_at"`
	ProcessedAt *time.Time          `json:"processed_at,omitempty"`
}

type BalanceResponse struct {
	RecipientID uuid.UUID `json:"recipient_id"`
	Accrued     string    `json:"accrued"`
	PaidOut     string    `json:"paid_out"`
	Reserved    string    `json:"reserved"`
	Owed        string    `json:"owed"`
	Available   string    `json:"available"`
}

func FromPayout(p *payout.Payout) (*PayoutResponse, error) {
	res := &PayoutResponse{}
	if err := copyInto(res, p); err != nil {
		return nil, err
	}
	if err := copyInto(&res.BankDetails, p.Details()); err != nil {
		return nil, err
	}
	return res, nil
}

func FromPayouts(ps []*payout.Payout) ([]*PayoutResponse, error) {
	items := make([]*PayoutResponse, 0, len(ps))
	for _, p := range ps {
		res, err := FromPayout(p)
		if err != nil {
			return nil, err
		}
		items = append(items, res)
	}
	return items, nil
}

func FromBalance(v *queries.BalanceView) (*BalanceResponse, error) {
	res := &BalanceResponse{}
	if err := copyInto(res, v); err != nil {
		return nil, err
	}
	return res, nil
}
