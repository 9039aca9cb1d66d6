package coupon

import (
	"errors"
	"time"
)

// Rejection reasons surfaced to the buyer.
var (
	ErrCouponInactive   = errors.New("coupon is not active")
	ErrCouponExpired    = errors.New("coupon has expired")
	ErrMinOrderNotMet   = errors.New("order amount is below the coupon minimum")
	ErrUsageExhausted   = errors.New("coupon usage limit reached")
	ErrCouponWrongCourt = errors.New("coupon does not apply to this court")
)

type Coupon struct {
	id             int64
	code           Code
	name           string
	discount       Discount
	minOrderAmount int64
	expiresAt      time.Time
	maxUsage       *int32
	usageCount     int32
	active         bool
	courtID        int64
}

func ReconstructCoupon(
	id int64,
	code Code,
	name string,
	discount Discount,
	minOrderAmount int64,
	expiresAt time.Time,
	maxUsage *int32,
	usageCount int32,
	active bool,
	courtID int64,
) (*Coupon, error) {
	// usage above the limit is kept as stored; Validate reports it as exhausted
	return &Coupon{
		id:             id,
		code:           code,
		name:           name,
		discount:       discount,
		minOrderAmount: minOrderAmount,
		expiresAt:      expiresAt,
		maxUsage:       maxUsage,
		usageCount:     usageCount,
		active:         active,
		courtID:        courtID,
	}, nil
}

// Quote is an approved price for one order.
type Quote struct {
	Original int64
	Discount int64
	Final    int64
}

func NoDiscount(amount int64) Quote {
	return Quote{Original: amount, Final: amount}
}

// Validate checks every applicability rule; the first failing rule wins.
func (c *Coupon) Validate(amount int64, courtID int64, now time.Time) error {
	switch {
	case !c.active:
		return ErrCouponInactive
	case !now.Before(c.expiresAt):
		return ErrCouponExpired
	case amount < c.minOrderAmount:
		return ErrMinOrderNotMet
	case c.maxUsage != nil && c.usageCount >= *c.maxUsage:
		return ErrUsageExhausted
	case c.courtID != courtID:
		return ErrCouponWrongCourt
	}
	return nil
}

// Apply validates and prices amount. The payable amount is floored at
// minPayable unless the order itself is cheaper than that.
func (c *Coupon) Apply(amount int64, courtID int64, now time.Time, minPayable int64) (Quote, error) {
	if err := c.Validate(amount, courtID, now); err != nil {
		return Quote{}, err
	}
	final := amount - c.discount.AmountFor(amount)
	if final < minPayable {
		final = min(amount, minPayable)
	}
	return Quote{Original: amount, Discount: amount - final, Final: final}, nil
}

func (c *Coupon) ID() int64             { return c.id }
func (c *Coupon) Code() Code            { return c.code }
func (c *Coupon) Name() string          { return c.name }
func (c *Coupon) Discount() Discount    { return c.discount }
func (c *Coupon) MinOrderAmount() int64 { return c.minOrderAmount }
func (c *Coupon) ExpiresAt() time.Time  { return c.expiresAt }
func (c *Coupon) MaxUsage() *int32      { return c.maxUsage }
func (c *Coupon) UsageCount() int32     { return c.usageCount }
func (c *Coupon) IsActive() bool        { return c.active }
func (c *Coupon) CourtID() int64        { return c.courtID }
