//go:build unit || e2e

package builder

import (
	"time"

	"course-marketplace/internal/domain/payout"
	reqdto "course-marketplace/internal/handler/dto/request"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PayoutBuilder struct {
	ID          uuid.UUID
	RecipientID uuid.UUID
	Amount      decimal.Decimal
	Details     payout.BankDetails
	Status      payout.Status
	RequestedAt time.Time
}

func NewPayoutBuilder() *PayoutBuilder {
	return &PayoutBuilder{
		ID:          uuid.New(),
		RecipientID: uuid.New(),
		Amount:      decimal.RequireFromString("150.00"),
		Details:     payout.BankDetails{PixKey: "prof@example.com", HolderName: "Prof. Lima"},
		Status:      payout.StatusPending,
		RequestedAt: time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *PayoutBuilder) BuildDomain() *payout.Payout {
	var processedAt *time.Time
	if b.Status.IsTerminal() {
		t := b.RequestedAt.Add(24 * time.Hour)
		processedAt = &t
	}
	return payout.ReconstructPayout(b.ID, b.RecipientID, b.Amount, b.Details, b.Status, b.RequestedAt, processedAt)
}

func (b *PayoutBuilder) BuildRequestDTO() reqdto.RequestPayoutRequest {
	return reqdto.RequestPayoutRequest{
		Amount: b.Amount,
		BankDetails: reqdto.BankDetailsRequest{
			PixKey:     b.Details.PixKey,
			HolderName: b.Details.HolderName,
			BankName:   b.Details.BankName,
		},
	}
}

func (b *PayoutBuilder) WithRecipientID(id uuid.UUID) *PayoutBuilder {
	b.RecipientID = id
	return b
}

func (b *PayoutBuilder) WithAmount(amount string) *PayoutBuilder {
	b.Amount = decimal.RequireFromString(amount)
	return b
}

func (b *PayoutBuilder) WithStatus(status payout.Status) *PayoutBuilder {
	b.Status = status
	return b
}

func (b *PayoutBuilder) WithPixKey(key string) *PayoutBuilder {
	b.Details.PixKey = key
	return b
}
