package repository

import (
	"context"

	"court-booking/internal/infra"
	sqlc "court-booking/internal/infra/sqlc/generated"
	"court-booking/internal/pkg/pgconv"
	"court-booking/internal/usecase/shared"
)

type PaymentWriteQueries interface {
	UpsertPaymentConfirmation(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertPaymentConfirmationParams) error
}

type PaymentRepository struct {
	queries PaymentWriteQueries
	db      sqlc.DBTX
}

func NewPaymentRepository(queries PaymentWriteQueries, db sqlc.DBTX) *PaymentRepository {
	return &PaymentRepository{
		queries: queries,
		db:      db,
	}
}

// Record stores a provider confirmation. A paid record is never downgraded.
func (r *PaymentRepository) Record(ctx context.Context, tx sqlc.DBTX, p shared.PaymentConfirmation) error {
	params := sqlc.UpsertPaymentConfirmationParams{
		OrderCode:   p.OrderCode.Int64(),
		ProviderRef: p.ProviderRef,
		Amount:      p.Amount,
		Status:      p.Status,
		ReceivedAt:  pgconv.TimeToPgtype(p.ReceivedAt),
	}

	if err := r.queries.UpsertPaymentConfirmation(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to record payment confirmation", err)
	}
	return nil
}
