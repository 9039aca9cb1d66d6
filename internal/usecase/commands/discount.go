package commands

import (
	"context"

	"court-booking/internal/domain/coupon"
	"court-booking/internal/infra"
	"court-booking/internal/pkg/clock"
	"court-booking/internal/pkg/config"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/shared"
)

type DiscountRequest struct {
	CouponID   *int64
	CouponCode *string
	Amount     int64
	CourtID    int64
}

type DiscountResult struct {
	Quote    coupon.Quote
	CouponID *int64
}

// DiscountPolicy prices an order inside the staging transaction. The coupon row stays
// locked until that transaction ends.
type DiscountPolicy interface {
	Quote(ctx context.Context, tx shared.Tx, req DiscountRequest) (*DiscountResult, error)
}

type couponDiscountPolicy struct {
	clock      clock.Clock
	minPayable int64
}

func NewCouponDiscountPolicy(clk clock.Clock, cfg config.ReservationConfig) DiscountPolicy {
	return &couponDiscountPolicy{clock: clk, minPayable: cfg.MinPayableAmount}
}

func (p *couponDiscountPolicy) Quote(ctx context.Context, tx shared.Tx, req DiscountRequest) (*DiscountResult, error) {
	if req.CouponID == nil && (req.CouponCode == nil || *req.CouponCode == "") {
		return &DiscountResult{Quote: coupon.NoDiscount(req.Amount)}, nil
	}

	c, err := p.load(ctx, tx, req)
	if err != nil {
		return nil, err
	}

	quote, err := c.Apply(req.Amount, req.CourtID, p.clock.Now(), p.minPayable)
	if err != nil {
		return nil, errs.Mark(err, ErrCouponRejected)
	}

	id := c.ID()
	return &DiscountResult{Quote: quote, CouponID: &id}, nil
}

func (p *couponDiscountPolicy) load(ctx context.Context, tx shared.Tx, req DiscountRequest) (*coupon.Coupon, error) {
	var (
		c   *coupon.Coupon
		err error
	)
	if req.CouponID != nil {
		c, err = tx.Coupons().FindByIDForUpdate(ctx, tx.DB(), *req.CouponID)
	} else {
		code, cerr := coupon.NewCouponCode(*req.CouponCode)
		if cerr != nil {
			return nil, errs.Mark(cerr, ErrCouponNotFound)
		}
		c, err = tx.Coupons().FindByCodeForUpdate(ctx, tx.DB(), code)
	}
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, err
	}
	return c, nil
}
