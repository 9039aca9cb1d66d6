package converter

import (
	"court-booking/internal/domain/coupon"
	sqlc "court-booking/internal/infra/sqlc/generated"
	"court-booking/internal/pkg/pgconv"
)

func CouponFromRow(row sqlc.Coupons) (*coupon.Coupon, error) {
	code, err := coupon.NewCouponCode(row.Code)
	if err != nil {
		return nil, err
	}
	discount, err := coupon.NewDiscount(row.DiscountType, row.DiscountValue, pgconv.Int8PtrFromPgtype(row.MaxDiscount))
	if err != nil {
		return nil, err
	}

	return coupon.ReconstructCoupon(
		row.ID,
		code,
		row.Name,
		discount,
		row.MinOrderAmount,
		pgconv.TimeFromPgtype(row.ExpiresAt),
		pgconv.Int32PtrFromPgtype(row.MaxUsageCount),
		row.UsageCount,
		row.IsActive,
		row.CourtID,
	)
}
