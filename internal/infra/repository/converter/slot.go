package converter

import (
	"court-booking/internal/domain/slot"
	sqlc "court-booking/internal/infra/sqlc/generated"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/pkg/pgconv"
)

func SlotFromRow(row sqlc.Slots) (*slot.Slot, error) {
	start, err := slot.TimeOfDayFromMinutes(pgconv.MinutesFromPgTime(row.StartTime))
	if err != nil {
		return nil, errs.Wrapf(err, "slot %d start time", row.ID)
	}
	end, err := slot.TimeOfDayFromMinutes(pgconv.MinutesFromPgTime(row.EndTime))
	if err != nil {
		return nil, errs.Wrapf(err, "slot %d end time", row.ID)
	}

	return slot.ReconstructSlot(
		row.ID,
		row.CourtFieldID,
		pgconv.DateFromPgtype(row.Day),
		start,
		end,
		row.Price,
		slot.State(row.State),
		pgconv.UUIDPtrFromPgtype(row.LockedBy),
		pgconv.TimePtrFromPgtype(row.LockedAt),
	)
}

func SlotsFromRows(rows []sqlc.Slots) ([]*slot.Slot, error) {
	out := make([]*slot.Slot, 0, len(rows))
	for _, row := range rows {
		s, err := SlotFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func SlotToInsertParams(s *slot.Slot) sqlc.InsertSlotParams {
	return sqlc.InsertSlotParams{
		CourtFieldID: s.CourtFieldID(),
		Day:          pgconv.DateToPgtype(s.Day()),
		StartTime:    pgconv.MinutesToPgTime(s.Start().Minutes()),
		EndTime:      pgconv.MinutesToPgTime(s.End().Minutes()),
		Price:        s.Price(),
	}
}

func PricingFromCourtField(row sqlc.CourtFields) slot.PeriodPricing {
	return slot.PeriodPricing{
		Morning: row.MorningPrice,
		Lunch:   row.LunchPrice,
		Evening: row.EveningPrice,
	}
}
