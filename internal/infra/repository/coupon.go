package repository

import (
	"context"

	"court-booking/internal/domain/coupon"
	"court-booking/internal/infra"
	"court-booking/internal/infra/repository/converter"
	sqlc "court-booking/internal/infra/sqlc/generated"
	"court-booking/internal/pkg/pgconv"
)

type CouponWriteQueries interface {
	GetCouponByIDForUpdate(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Coupons, error)
	GetCouponByCodeForUpdate(ctx context.Context, db sqlc.DBTX, code string) (sqlc.Coupons, error)
	IncrementCouponUsage(ctx context.Context, db sqlc.DBTX, id int64) (int64, error)
}

type CouponRepository struct {
	queries CouponWriteQueries
	db      sqlc.DBTX
}

func NewCouponRepository(queries CouponWriteQueries, db sqlc.DBTX) *CouponRepository {
	return &CouponRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CouponRepository) FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id int64) (*coupon.Coupon, error) {
	row, err := r.queries.GetCouponByIDForUpdate(ctx, tx, id)
	return toCoupon(row, err)
}

func (r *CouponRepository) FindByCodeForUpdate(ctx context.Context, tx sqlc.DBTX, code coupon.Code) (*coupon.Coupon, error) {
	row, err := r.queries.GetCouponByCodeForUpdate(ctx, tx, code.String())
	return toCoupon(row, err)
}

func (r *CouponRepository) IncrementUsage(ctx context.Context, tx sqlc.DBTX, id int64) error {
	n, err := r.queries.IncrementCouponUsage(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to increment coupon usage", err)
	}
	// coupons are never deleted, so no row means the budget is spent
	if n == 0 {
		return infra.WrapRepoErr("coupon usage limit reached", coupon.ErrUsageExhausted, infra.KindConflict)
	}
	return nil
}

func toCoupon(row sqlc.Coupons, err error) (*coupon.Coupon, error) {
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon", err)
	}

	c, err := converter.CouponFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert coupon row", err)
	}
	return c, nil
}
