package coupon

import (
	"errors"
	"math"
	"regexp"
	"strings"
)

var (
	ErrInvalidCouponCode      = errors.New("invalid coupon code format")
	ErrInvalidDiscountType    = errors.New("discount type must be fixed or percentage")
	ErrInvalidDiscountAmount  = errors.New("discount amount must be positive")
	ErrInvalidDiscountPercent = errors.New("percentage discount must be between 0 and 100")
)

var couponCodeRegex = regexp.MustCompile(`^[A-Z0-9_-]{3,32}$`)

type Code string

// NewCouponCode normalizes to upper case; codes are matched case-insensitively.
func NewCouponCode(code string) (Code, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if !couponCodeRegex.MatchString(code) {
		return Code(""), ErrInvalidCouponCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

type DiscountType string

const (
	DiscountFixed      DiscountType = "fixed"
	DiscountPercentage DiscountType = "percentage"
)

type Discount struct {
	kind        DiscountType
	value       int64
	maxDiscount *int64
}

func NewDiscount(kind string, value int64, maxDiscount *int64) (Discount, error) {
	switch DiscountType(kind) {
	case DiscountFixed:
		if value <= 0 {
			return Discount{}, ErrInvalidDiscountAmount
		}
	case DiscountPercentage:
		if value <= 0 || value > 100 {
			return Discount{}, ErrInvalidDiscountPercent
		}
	default:
		return Discount{}, ErrInvalidDiscountType
	}
	if maxDiscount != nil && *maxDiscount < 0 {
		return Discount{}, ErrInvalidDiscountAmount
	}
	return Discount{kind: DiscountType(kind), value: value, maxDiscount: maxDiscount}, nil
}

func (d Discount) Type() DiscountType  { return d.kind }
func (d Discount) Value() int64        { return d.value }
func (d Discount) MaxDiscount() *int64 { return d.maxDiscount }
func (d Discount) IsPercentage() bool  { return d.kind == DiscountPercentage }

// AmountFor returns the discount on amount. Percentages round half away from
// zero and are capped by maxDiscount; fixed discounts never exceed amount.
func (d Discount) AmountFor(amount int64) int64 {
	if amount <= 0 {
		return 0
	}
	if d.IsPercentage() {
		off := int64(math.Round(float64(amount) * float64(d.value) / 100.0))
		if d.maxDiscount != nil && off > *d.maxDiscount {
			off = *d.maxDiscount
		}
		return min(off, amount)
	}
	return min(d.value, amount)
}
