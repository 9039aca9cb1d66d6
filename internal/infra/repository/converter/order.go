package converter

import (
	"court-booking/internal/domain/order"
	sqlc "court-booking/internal/infra/sqlc/generated"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/pkg/pgconv"
)

func StagedOrderToInfra(o *order.StagedOrder) sqlc.CreateStagedOrderParams {
	amounts := o.Amounts()
	return sqlc.CreateStagedOrderParams{
		OrderCode:      o.Code().Int64(),
		UserID:         o.UserID(),
		CourtFieldID:   o.CourtFieldID(),
		SlotIds:        o.SlotIDs(),
		FullName:       o.Contact().FullName(),
		Phone:          o.Contact().Phone(),
		Note:           o.Note().String(),
		OriginalAmount: amounts.Original,
		DiscountAmount: amounts.Discount,
		FinalAmount:    amounts.Final,
		CouponID:       pgconv.Int8PtrToPgtype(o.CouponID()),
		ExpiresAt:      pgconv.TimeToPgtype(o.ExpiresAt()),
		CreatedAt:      pgconv.TimeToPgtype(o.CreatedAt()),
	}
}

func StagedOrderFromRow(row sqlc.StagedOrders) (*order.StagedOrder, error) {
	code, err := order.ParseCode(row.OrderCode)
	if err != nil {
		return nil, err
	}
	contact, err := order.NewContact(row.FullName, row.Phone)
	if err != nil {
		return nil, errs.Wrapf(err, "order %d contact", row.OrderCode)
	}
	note, err := order.NewNote(row.Note)
	if err != nil {
		return nil, errs.Wrapf(err, "order %d note", row.OrderCode)
	}

	return order.ReconstructStagedOrder(
		code,
		row.UserID,
		row.CourtFieldID,
		row.SlotIds,
		contact,
		note,
		order.Amounts{
			Original: row.OriginalAmount,
			Discount: row.DiscountAmount,
			Final:    row.FinalAmount,
		},
		pgconv.Int8PtrFromPgtype(row.CouponID),
		pgconv.TimeFromPgtype(row.ExpiresAt),
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}
