package coupon

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const DefaultMaxUsesPerUser int32 = 1

type Coupon struct {
	code           Code
	percentage     Percentage
	validUntil     *time.Time
	maxUses        *int32
	maxUsesPerUser *int32
	usedCount      int32
	usedBy         []uuid.UUID
	createdAt      time.Time
}

// NewCoupon creates an unused coupon. maxUsesPerUser nil means DefaultMaxUsesPerUser;
// pass unlimitedPerUser to lift the per-user cap.
func NewCoupon(code string, percentage int, validUntil *time.Time, maxUses, maxUsesPerUser *int32, unlimitedPerUser bool, now time.Time) (*Coupon, error) {
	c, err := NewCouponCode(code)
	if err != nil {
		return nil, err
	}
	pct, err := NewPercentage(percentage)
	if err != nil {
		return nil, err
	}
	if err := validateLimit(maxUses); err != nil {
		return nil, err
	}
	perUser := maxUsesPerUser
	if unlimitedPerUser {
		perUser = nil
	} else if perUser == nil {
		def := DefaultMaxUsesPerUser
		perUser = &def
	}
	if err := validateLimit(perUser); err != nil {
		return nil, err
	}

	return &Coupon{
		code:           c,
		percentage:     pct,
		validUntil:     validUntil,
		maxUses:        maxUses,
		maxUsesPerUser: perUser,
		createdAt:      now,
	}, nil
}

func ReconstructCoupon(code string, percentage int, validUntil *time.Time, maxUses, maxUsesPerUser *int32, usedBy []uuid.UUID, createdAt time.Time) *Coupon {
	return &Coupon{
		code:           Code(NormalizeCode(code)),
		percentage:     Percentage{value: percentage},
		validUntil:     validUntil,
		maxUses:        maxUses,
		maxUsesPerUser: maxUsesPerUser,
		usedCount:      int32(len(usedBy)), // #nosec G115 -- bounded by max_uses
		usedBy:         usedBy,
		createdAt:      createdAt,
	}
}

// Validate checks, in order: expiry, global exhaustion, per-user exhaustion.
// NotFound is decided by the caller, which is the only one that knows the lookup failed.
func (c *Coupon) Validate(userID uuid.UUID, now time.Time) error {
	if c.validUntil != nil && now.After(*c.validUntil) {
		return NewRejection(KindExpired, c.code.String())
	}
	if c.maxUses != nil && c.usedCount >= *c.maxUses {
		return NewRejection(KindExhausted, c.code.String())
	}
	if c.maxUsesPerUser != nil && c.UsesBy(userID) >= int(*c.maxUsesPerUser) {
		return NewRejection(KindUserExhausted, c.code.String())
	}
	return nil
}

func (c *Coupon) UsesBy(userID uuid.UUID) int {
	n := 0
	for _, id := range c.usedBy {
		if id == userID {
			n++
		}
	}
	return n
}

func (c *Coupon) Apply(base decimal.Decimal) (Application, error) {
	return Apply(c.code, c.percentage, base)
}

// Update replaces the mutable terms. Usage history is never touched.
func (c *Coupon) Update(percentage int, validUntil *time.Time, maxUses, maxUsesPerUser *int32) error {
	pct, err := NewPercentage(percentage)
	if err != nil {
		return err
	}
	if err := validateLimit(maxUses); err != nil {
		return err
	}
	if maxUses != nil && *maxUses < c.usedCount {
		return ErrLimitBelowUsage
	}
	if err := validateLimit(maxUsesPerUser); err != nil {
		return err
	}
	c.percentage = pct
	c.validUntil = validUntil
	c.maxUses = maxUses
	c.maxUsesPerUser = maxUsesPerUser
	return nil
}

func validateLimit(v *int32) error {
	if v != nil && *v < 1 {
		return ErrInvalidUsageLimit
	}
	return nil
}

func (c *Coupon) Code() Code             { return c.code }
func (c *Coupon) Percentage() Percentage { return c.percentage }
func (c *Coupon) ValidUntil() *time.Time { return c.validUntil }
func (c *Coupon) MaxUses() *int32        { return c.maxUses }
func (c *Coupon) MaxUsesPerUser() *int32 { return c.maxUsesPerUser }
func (c *Coupon) UsedCount() int32       { return c.usedCount }
func (c *Coupon) CreatedAt() time.Time   { return c.createdAt }
func (c *Coupon) UsedBy() []uuid.UUID {
	out := make([]uuid.UUID, len(c.usedBy))
	copy(out, c.usedBy)
	return out
}
