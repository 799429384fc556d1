package coupon

import (
	"errors"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidCouponCode      = errors.New("invalid coupon code format")
	ErrInvalidDiscountPercent = errors.New("discount percentage must be between 1 and 100")
	ErrInvalidUsageLimit      = errors.New("usage limit must be positive")
	ErrNegativeBaseAmount     = errors.New("base amount cannot be negative")
	ErrLimitBelowUsage        = errors.New("max uses cannot be lower than current usage")
)

var couponCodeRegex = regexp.MustCompile(`^[A-Z0-9_-]{3,32}$`)

type Code string

func NewCouponCode(code string) (Code, error) {
	code = NormalizeCode(code)
	if !couponCodeRegex.MatchString(code) {
		return Code(""), ErrInvalidCouponCode
	}
	return Code(code), nil
}

// NormalizeCode is used for lookups too, so "insta10" and "INSTA10" hit the same coupon.
func NormalizeCode(code string) string {
	return strings.TrimSpace(strings.ToUpper(code))
}

func (c Code) String() string {
	return string(c)
}

type Percentage struct {
	value int
}

func NewPercentage(v int) (Percentage, error) {
	if v < 1 || v > 100 {
		return Percentage{}, ErrInvalidDiscountPercent
	}
	return Percentage{value: v}, nil
}

func (p Percentage) Int() int {
	return p.value
}

// DiscountOn rounds half-up to cents.
func (p Percentage) DiscountOn(base decimal.Decimal) decimal.Decimal {
	return base.Mul(decimal.NewFromInt(int64(p.value))).Div(decimal.NewFromInt(100)).Round(2)
}

// Application is the outcome of applying a coupon to a base amount.
type Application struct {
	Code           Code
	BaseAmount     decimal.Decimal
	DiscountAmount decimal.Decimal
	FinalAmount    decimal.Decimal
}

func Apply(code Code, pct Percentage, base decimal.Decimal) (Application, error) {
	if base.IsNegative() {
		return Application{}, ErrNegativeBaseAmount
	}
	discount := pct.DiscountOn(base)
	final := base.Sub(discount)
	if final.IsNegative() {
		final = decimal.Zero
	}
	return Application{
		Code:           code,
		BaseAmount:     base,
		DiscountAmount: discount,
		FinalAmount:    final,
	}, nil
}
