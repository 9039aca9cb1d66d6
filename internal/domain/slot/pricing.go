package slot

import (
	"time"
)

var (
	morningStart = MustTimeOfDay(5, 0)
	lunchStart   = MustTimeOfDay(12, 0)
	eveningStart = MustTimeOfDay(18, 0)
)

// Seeded grid: hourly slots from 05:00, last one ending at 22:00.
var (
	SeedOpen     = MustTimeOfDay(5, 0)
	SeedClose    = MustTimeOfDay(22, 0)
	SeedSlotSize = time.Hour
)

// PeriodPricing is the per-field hourly price table.
type PeriodPricing struct {
	Morning int64
	Lunch   int64
	Evening int64
}

// PriceAt maps a start time to its period: morning 05-12, lunch 12-18,
// evening otherwise.
func (p PeriodPricing) PriceAt(start TimeOfDay) int64 {
	switch {
	case !start.Before(morningStart) && start.Before(lunchStart):
		return p.Morning
	case !start.Before(lunchStart) && start.Before(eveningStart):
		return p.Lunch
	default:
		return p.Evening
	}
}

// GenerateDays builds the seed grid for a field over [from, from+days).
func GenerateDays(courtFieldID int64, from time.Time, days int, pricing PeriodPricing) ([]*Slot, error) {
	var out []*Slot
	first := Day(from)
	for d := range days {
		day := first.AddDate(0, 0, d)
		for start := SeedOpen; start.Before(SeedClose); start = start.Add(SeedSlotSize) {
			end := start.Add(SeedSlotSize)
			s, err := NewSlot(courtFieldID, day, start, end, pricing.PriceAt(start))
			if err != nil {
				return nil, err
			}
			out = append(out, s)
		}
	}
	return out, nil
}
