package repository

import (
	"context"
	"time"

	"court-booking/internal/domain/order"
	"court-booking/internal/infra"
	"court-booking/internal/infra/repository/converter"
	sqlc "court-booking/internal/infra/sqlc/generated"
	"court-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

type OrderWriteQueries interface {
	CreateStagedOrder(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateStagedOrderParams) error
	GetStagedOrderForUpdate(ctx context.Context, db sqlc.DBTX, orderCode int64) (sqlc.StagedOrders, error)
	DeleteStagedOrder(ctx context.Context, db sqlc.DBTX, orderCode int64) (int64, error)
	DeleteExpiredStagedOrders(ctx context.Context, db sqlc.DBTX, expiresAt pgtype.Timestamptz) (int64, error)
}

type OrderRepository struct {
	queries OrderWriteQueries
	db      sqlc.DBTX
}

func NewOrderRepository(queries OrderWriteQueries, db sqlc.DBTX) *OrderRepository {
	return &OrderRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OrderRepository) Create(ctx context.Context, tx sqlc.DBTX, o *order.StagedOrder) error {
	if err := r.queries.CreateStagedOrder(ctx, tx, converter.StagedOrderToInfra(o)); err != nil {
		return infra.WrapRepoErr("failed to create staged order", err)
	}
	return nil
}

func (r *OrderRepository) GetForUpdate(ctx context.Context, tx sqlc.DBTX, code order.Code) (*order.StagedOrder, error) {
	row, err := r.queries.GetStagedOrderForUpdate(ctx, tx, code.Int64())
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("staged order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get staged order", err)
	}

	o, err := converter.StagedOrderFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert staged order row", err)
	}
	return o, nil
}

func (r *OrderRepository) Delete(ctx context.Context, tx sqlc.DBTX, code order.Code) error {
	n, err := r.queries.DeleteStagedOrder(ctx, tx, code.Int64())
	if err != nil {
		return infra.WrapRepoErr("failed to delete staged order", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("staged order not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *OrderRepository) DeleteExpired(ctx context.Context, tx sqlc.DBTX, now time.Time) (int64, error) {
	n, err := r.queries.DeleteExpiredStagedOrders(ctx, tx, pgconv.TimeToPgtype(now))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired staged orders", err)
	}
	return n, nil
}
