// Package fee computes how an approved amount is divided between platform and seller.
package fee

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrNegativeAmount = errors.New("amount cannot be negative")

var (
	PlatformRate = decimal.RequireFromString("0.10")
	SellerRate   = decimal.RequireFromString("0.90")
	// Independent rounding of both sides may leave at most one cent unaccounted.
	MaxResidual = decimal.RequireFromString("0.01")
)

type Split struct {
	PlatformFee decimal.Decimal
	SellerNet   decimal.Decimal
}

// Compute rounds each side half-up to two decimal places.
func Compute(amount decimal.Decimal) (Split, error) {
	if amount.IsNegative() {
		return Split{}, ErrNegativeAmount
	}
	return Split{
		PlatformFee: Round(amount.Mul(PlatformRate)),
		SellerNet:   Round(amount.Mul(SellerRate)),
	}, nil
}

// Round is half-up for the non-negative amounts handled here.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

func (s Split) Total() decimal.Decimal {
	return s.PlatformFee.Add(s.SellerNet)
}

func (s Split) Residual(amount decimal.Decimal) decimal.Decimal {
	return amount.Sub(s.Total()).Abs()
}
