package readstore

import (
	"context"

	"court-booking/internal/domain/order"
	"court-booking/internal/infra"
	"court-booking/internal/infra/repository/converter"
	sqlc "court-booking/internal/infra/sqlc/generated"
	"court-booking/internal/pkg/pgconv"
	"court-booking/internal/usecase/queries"
)

type OrderReadQueries interface {
	GetStagedOrder(ctx context.Context, db sqlc.DBTX, orderCode int64) (sqlc.StagedOrders, error)
}

type OrderReadStore struct {
	queries OrderReadQueries
	db      sqlc.DBTX
}

func NewOrderReadStore(queries OrderReadQueries, db sqlc.DBTX) *OrderReadStore {
	return &OrderReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *OrderReadStore) FindByCode(ctx context.Context, code int64) (*queries.StagedOrderView, error) {
	row, err := r.get(ctx, code)
	if err != nil {
		return nil, err
	}

	return &queries.StagedOrderView{
		OrderCode:      row.OrderCode,
		UserID:         row.UserID,
		CourtFieldID:   row.CourtFieldID,
		SlotIDs:        row.SlotIds,
		FullName:       row.FullName,
		Phone:          row.Phone,
		Note:           row.Note,
		OriginalAmount: row.OriginalAmount,
		DiscountAmount: row.DiscountAmount,
		FinalAmount:    row.FinalAmount,
		CouponID:       pgconv.Int8PtrFromPgtype(row.CouponID),
		ExpiresAt:      pgconv.TimeFromPgtype(row.ExpiresAt),
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}

// FindDomain serves the write side through CommandReads.
func (r *OrderReadStore) FindDomain(ctx context.Context, code order.Code) (*order.StagedOrder, error) {
	row, err := r.get(ctx, code.Int64())
	if err != nil {
		return nil, err
	}
	o, err := converter.StagedOrderFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert staged order row", err)
	}
	return o, nil
}

func (r *OrderReadStore) get(ctx context.Context, code int64) (sqlc.StagedOrders, error) {
	row, err := r.queries.GetStagedOrder(ctx, r.db, code)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return row, infra.WrapRepoErr("staged order not found", err, infra.KindNotFound)
		}
		return row, infra.WrapRepoErr("failed to get staged order", err)
	}
	return row, nil
}
