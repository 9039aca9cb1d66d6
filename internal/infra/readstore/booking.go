package readstore

import (
	"context"
	"time"

	"court-booking/internal/infra"
	sqlc "court-booking/internal/infra/sqlc/generated"
	"court-booking/internal/pkg/pgconv"
	"court-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingReadQueries interface {
	ListBookingsByUser(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByUserParams) ([]sqlc.Bookings, error)
	ListBookingsByUserKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByUserKeysetParams) ([]sqlc.Bookings, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	rows, err := r.queries.ListBookingsByUser(ctx, r.db, sqlc.ListBookingsByUserParams{
		UserID: userID,
		Limit:  limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	return toBookingItems(rows), nil
}

func (r *BookingReadStore) FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID int64, limit int32) ([]*queries.BookingListItem, error) {
	rows, err := r.queries.ListBookingsByUserKeyset(ctx, r.db, sqlc.ListBookingsByUserKeysetParams{
		UserID:        userID,
		Limit:         limit,
		LastCreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		LastID:        lastID,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	return toBookingItems(rows), nil
}

func toBookingItems(rows []sqlc.Bookings) []*queries.BookingListItem {
	items := make([]*queries.BookingListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, &queries.BookingListItem{
			ID:           row.ID,
			CourtFieldID: row.CourtFieldID,
			SlotID:       row.SlotID,
			Day:          pgconv.DateFromPgtype(row.Day),
			TimeRange:    row.TimeRange,
			Note:         row.Note,
			Price:        row.Price,
			Status:       row.Status,
			OrderCode:    pgconv.Int8PtrFromPgtype(row.OrderCode),
			CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return items
}
