//go:build unit || e2e

package builder

import (
	"time"

	"court-booking/internal/domain/slot"
	sqlc "court-booking/internal/infra/sqlc/generated"
	"court-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type SlotBuilder struct {
	ID           int64
	CourtFieldID int64
	Day          time.Time
	StartHour    int
	Price        int64
	State        slot.State
	LockedBy     *uuid.UUID
	LockedAt     *time.Time
}

func NewSlotBuilder() *SlotBuilder {
	return &SlotBuilder{
		ID:           42,
		CourtFieldID: 7,
		Day:          time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		StartHour:    17,
		Price:        150000,
		State:        slot.StateAvailable,
	}
}

func (b *SlotBuilder) With(mutate func(*SlotBuilder)) *SlotBuilder {
	mutate(b)
	return b
}

func (b *SlotBuilder) WithID(id int64) *SlotBuilder {
	b.ID = id
	return b
}

// marks the slot pending under the given holder
func (b *SlotBuilder) LockedByUser(userID uuid.UUID, at time.Time) *SlotBuilder {
	b.State = slot.StatePending
	b.LockedBy = &userID
	b.LockedAt = &at
	return b
}

func (b *SlotBuilder) Booked() *SlotBuilder {
	b.State = slot.StateBooked
	b.LockedBy = nil
	b.LockedAt = nil
	return b
}

func (b *SlotBuilder) start() slot.TimeOfDay { return slot.MustTimeOfDay(b.StartHour, 0) }
func (b *SlotBuilder) end() slot.TimeOfDay   { return slot.MustTimeOfDay(b.StartHour+1, 0) }

func (b *SlotBuilder) BuildDomain() (*slot.Slot, error) {
	return slot.ReconstructSlot(b.ID, b.CourtFieldID, b.Day, b.start(), b.end(), b.Price, b.State, b.LockedBy, b.LockedAt)
}

func (b *SlotBuilder) BuildView() *queries.SlotView {
	return &queries.SlotView{
		ID:           b.ID,
		CourtFieldID: b.CourtFieldID,
		Day:          b.Day,
		StartTime:    b.start().String(),
		EndTime:      b.end().String(),
		TimeRange:    b.start().String() + " - " + b.end().String(),
		Price:        b.Price,
		State:        b.State.String(),
		LockedBy:     b.LockedBy,
		LockedAt:     b.LockedAt,
	}
}

func (b *SlotBuilder) BuildInfra() sqlc.Slots {
	row := sqlc.Slots{
		ID:           b.ID,
		CourtFieldID: b.CourtFieldID,
		Day:          pgtype.Date{Time: b.Day, Valid: true},
		StartTime:    pgtype.Time{Microseconds: int64(b.StartHour) * int64(time.Hour/time.Microsecond), Valid: true},
		EndTime:      pgtype.Time{Microseconds: int64(b.StartHour+1) * int64(time.Hour/time.Microsecond), Valid: true},
		Price:        b.Price,
		State:        b.State.String(),
		UpdatedAt:    pgtype.Timestamptz{Time: b.Day, Valid: true},
	}
	if b.LockedBy != nil {
		row.LockedBy = pgtype.UUID{Bytes: *b.LockedBy, Valid: true}
	}
	if b.LockedAt != nil {
		row.LockedAt = pgtype.Timestamptz{Time: *b.LockedAt, Valid: true}
	}
	return row
}
