//go:build unit

package fee_test

import (
	"testing"

	"course-marketplace/internal/domain/fee"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestCompute(t *testing.T) {
	tests := []struct {
		name        string
		amount      string
		platformFee string
		sellerNet   string
	}{
		{name: "round amount", amount: "100.00", platformFee: "10.00", sellerNet: "90.00"},
		{name: "zero amount", amount: "0", platformFee: "0", sellerNet: "0"},
		{name: "sides round independently", amount: "33.33", platformFee: "3.33", sellerNet: "30.00"},
		{name: "half cent rounds up", amount: "0.05", platformFee: "0.01", sellerNet: "0.05"},
		{name: "discounted price", amount: "89.99", platformFee: "9.00", sellerNet: "80.99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			split, err := fee.Compute(d(tt.amount))
			require.NoError(t, err)

			assert.True(t, d(tt.platformFee).Equal(split.PlatformFee), "platform fee: got %s", split.PlatformFee)
			assert.True(t, d(tt.sellerNet).Equal(split.SellerNet), "seller net: got %s", split.SellerNet)
			assert.True(t, split.Residual(d(tt.amount)).LessThanOrEqual(fee.MaxResidual))
		})
	}

	t.Run("negative amount", func(t *testing.T) {
		_, err := fee.Compute(d("-1"))
		assert.ErrorIs(t, err, fee.ErrNegativeAmount)
	})
}

func TestResidualBound(t *testing.T) {
	// every cent value up to 10.00
	for cents := int64(0); cents <= 1000; cents++ {
		amount := decimal.New(cents, -2)
		split, err := fee.Compute(amount)
		require.NoError(t, err)
		require.True(t, split.Residual(amount).LessThanOrEqual(fee.MaxResidual), "amount %s", amount)
	}
}
