//go:build unit

package commands_test

import (
	"context"
	"testing"

	"court-booking/internal/domain/coupon"
	"court-booking/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newCoupon(t *testing.T, id int64, kind string, value, minOrder int64) *coupon.Coupon {
	t.Helper()
	code, err := coupon.NewCouponCode("SUMMER10")
	require.NoError(t, err)
	d, err := coupon.NewDiscount(kind, value, nil)
	require.NoError(t, err)
	c, err := coupon.ReconstructCoupon(id, code, "Summer", d, minOrder, now.AddDate(0, 1, 0), nil, 0, true, testField.CourtID)
	require.NoError(t, err)
	return c
}

func TestCouponDiscountPolicy_Quote(t *testing.T) {
	ctx := context.Background()

	t.Run("no coupon pays full price", func(t *testing.T) {
		h := newHarness(t)
		policy := commands.NewCouponDiscountPolicy(h.clock, h.cfg)

		res, err := policy.Quote(ctx, h.tx, commands.DiscountRequest{Amount: 300000, CourtID: 3})

		require.NoError(t, err)
		assert.Equal(t, coupon.NoDiscount(300000), res.Quote)
		assert.Nil(t, res.CouponID)
	})

	t.Run("coupon by id", func(t *testing.T) {
		h := newHarness(t)
		policy := commands.NewCouponDiscountPolicy(h.clock, h.cfg)

		id := int64(5)
		h.coupons.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), id).
			Return(newCoupon(t, id, "percentage", 10, 0), nil)

		res, err := policy.Quote(ctx, h.tx, commands.DiscountRequest{CouponID: &id, Amount: 300000, CourtID: 3})

		require.NoError(t, err)
		assert.Equal(t, coupon.Quote{Original: 300000, Discount: 30000, Final: 270000}, res.Quote)
		assert.Equal(t, &id, res.CouponID)
	})

	t.Run("coupon code is matched case-insensitively", func(t *testing.T) {
		h := newHarness(t)
		policy := commands.NewCouponDiscountPolicy(h.clock, h.cfg)

		h.coupons.EXPECT().FindByCodeForUpdate(gomock.Any(), gomock.Any(), coupon.Code("SUMMER10")).
			Return(newCoupon(t, 5, "fixed", 50000, 0), nil)

		code := " summer10 "
		res, err := policy.Quote(ctx, h.tx, commands.DiscountRequest{CouponCode: &code, Amount: 300000, CourtID: 3})

		require.NoError(t, err)
		assert.Equal(t, int64(250000), res.Quote.Final)
	})

	t.Run("payable amount never drops below the floor", func(t *testing.T) {
		h := newHarness(t)
		policy := commands.NewCouponDiscountPolicy(h.clock, h.cfg)

		id := int64(5)
		h.coupons.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), id).
			Return(newCoupon(t, id, "fixed", 500000, 0), nil)

		res, err := policy.Quote(ctx, h.tx, commands.DiscountRequest{CouponID: &id, Amount: 300000, CourtID: 3})

		require.NoError(t, err)
		assert.Equal(t, h.cfg.MinPayableAmount, res.Quote.Final)
		assert.Equal(t, 300000-h.cfg.MinPayableAmount, res.Quote.Discount)
	})

	t.Run("unknown or malformed coupons are not found", func(t *testing.T) {
		h := newHarness(t)
		policy := commands.NewCouponDiscountPolicy(h.clock, h.cfg)

		id := int64(404)
		h.coupons.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), id).Return(nil, notFound("coupon"))

		_, err := policy.Quote(ctx, h.tx, commands.DiscountRequest{CouponID: &id, Amount: 300000, CourtID: 3})
		assertMarked(t, err, commands.ErrCouponNotFound)

		bad := "no!"
		_, err = policy.Quote(ctx, h.tx, commands.DiscountRequest{CouponCode: &bad, Amount: 300000, CourtID: 3})
		assertMarked(t, err, commands.ErrCouponNotFound)
	})

	t.Run("inapplicable coupon is rejected with its reason", func(t *testing.T) {
		testCases := []struct {
			name    string
			minimum int64
			courtID int64
			reason  error
		}{
			{name: "below minimum", minimum: 500000, courtID: 3, reason: coupon.ErrMinOrderNotMet},
			{name: "other court", minimum: 0, courtID: 9, reason: coupon.ErrCouponWrongCourt},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				h := newHarness(t)
				policy := commands.NewCouponDiscountPolicy(h.clock, h.cfg)

				id := int64(5)
				h.coupons.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), id).
					Return(newCoupon(t, id, "fixed", 10000, tc.minimum), nil)

				_, err := policy.Quote(ctx, h.tx, commands.DiscountRequest{CouponID: &id, Amount: 300000, CourtID: tc.courtID})

				assertMarked(t, err, commands.ErrCouponRejected)
				assert.ErrorIs(t, err, tc.reason)
			})
		}
	})
}
