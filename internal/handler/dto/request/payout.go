package request

import (
	"course-marketplace/internal/domain/payout"

	"github.com/shopspring/decimal"
)

type BankDetailsRequest struct {
	PixKey     string `json:"pix_key" binding:"required,max=140"`
	HolderName string `json:"holder_name,omitempty" binding:"omitempty,max=200"`
	BankName   string `json:"bank_name,omitempty" binding:"omitempty,max=100"`
}

type RequestPayoutRequest struct {
	Amount      decimal.Decimal    `json:"amount" swaggertype:"string" example:"150.00"`
	BankDetails BankDetailsRequest `json:"bank_details"`
}

type UpdatePayoutStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=PROCESSING COMPLETED FAILED"`
}

func (r BankDetailsRequest) ToDomain() payout.BankDetails {
	return payout.BankDetails{
		PixKey:     r.PixKey,
		HolderName: r.HolderName,
		BankName:   r.BankName,
	}
}
