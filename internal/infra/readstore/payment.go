package readstore

import (
	"context"

	"court-booking/internal/domain/order"
	"court-booking/internal/infra"
	sqlc "court-booking/internal/infra/sqlc/generated"
	"court-booking/internal/pkg/pgconv"
	"court-booking/internal/usecase/shared"
)

type PaymentReadQueries interface {
	GetPaymentConfirmation(ctx context.Context, db sqlc.DBTX, orderCode int64) (sqlc.PaymentConfirmations, error)
}

// PaymentLedger answers whether the payment relay confirmed an order.
type PaymentLedger struct {
	queries PaymentReadQueries
	db      sqlc.DBTX
}

func NewPaymentLedger(queries PaymentReadQueries, db sqlc.DBTX) *PaymentLedger {
	return &PaymentLedger{
		queries: queries,
		db:      db,
	}
}

// Verify reports true only for a paid confirmation covering at least amount.
func (l *PaymentLedger) Verify(ctx context.Context, code order.Code, amount int64) (bool, error) {
	row, err := l.queries.GetPaymentConfirmation(ctx, l.db, code.Int64())
	if err != nil {
		if pgconv.IsNoRows(err) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to get payment confirmation", err)
	}

	return row.Status == shared.PaymentPaid && row.Amount >= amount, nil
}
