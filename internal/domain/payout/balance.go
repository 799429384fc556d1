package payout

import (
	"course-marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrInsufficientBalance = errs.Mark(errs.New("payout exceeds available balance"), errs.ErrValidation)

// Balance is derived, never stored.
type Balance struct {
	Accrued  decimal.Decimal // approved seller net
	PaidOut  decimal.Decimal // completed payouts
	Reserved decimal.Decimal // pending and processing payouts
}

func (b Balance) Owed() decimal.Decimal {
	return b.Accrued.Sub(b.PaidOut)
}

func (b Balance) Available() decimal.Decimal {
	avail := b.Owed().Sub(b.Reserved)
	if avail.IsNegative() {
		return decimal.Zero
	}
	return avail
}

func (b Balance) CanWithdraw(amount decimal.Decimal) error {
	if amount.GreaterThan(b.Available()) {
		return ErrInsufficientBalance
	}
	return nil
}
