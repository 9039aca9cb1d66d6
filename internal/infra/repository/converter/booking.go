package converter

import (
	"court-booking/internal/domain/booking"
	sqlc "court-booking/internal/infra/sqlc/generated"
	"court-booking/internal/pkg/pgconv"
)

func BookingToInfra(b *booking.Booking) sqlc.CreateBookingParams {
	return sqlc.CreateBookingParams{
		UserID:       b.UserID(),
		CourtFieldID: b.CourtFieldID(),
		SlotID:       b.SlotID(),
		Day:          pgconv.DateToPgtype(b.Day()),
		TimeRange:    b.TimeRange(),
		Note:         b.Note(),
		Price:        b.Price(),
		Status:       b.Status().String(),
		OrderCode:    pgconv.Int8PtrToPgtype(b.OrderCode()),
		CreatedAt:    pgconv.TimeToPgtype(b.CreatedAt()),
	}
}
