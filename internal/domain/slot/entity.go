package slot

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrLockFieldsMismatch = errors.New("lock fields must be set iff slot is pending")
	ErrNotAvailable       = errors.New("slot is not available")
	ErrNotHeldByUser      = errors.New("slot is not held by user")
	ErrAlreadyBooked      = errors.New("slot is already booked")
)

type Slot struct {
	id           int64
	courtFieldID int64
	day          time.Time
	start        TimeOfDay
	end          TimeOfDay
	price        int64
	state        State
	lockedBy     *uuid.UUID
	lockedAt     *time.Time
}

// NewSlot creates an unsaved available slot, as produced by seeding.
func NewSlot(courtFieldID int64, day time.Time, start, end TimeOfDay, price int64) (*Slot, error) {
	if !start.Before(end) {
		return nil, ErrInvalidTimeRange
	}
	if price < 0 {
		return nil, ErrNegativePrice
	}
	return &Slot{
		courtFieldID: courtFieldID,
		day:          Day(day),
		start:        start,
		end:          end,
		price:        price,
		state:        StateAvailable,
	}, nil
}

func ReconstructSlot(
	id, courtFieldID int64,
	day time.Time,
	start, end TimeOfDay,
	price int64,
	state State,
	lockedBy *uuid.UUID,
	lockedAt *time.Time,
) (*Slot, error) {
	if !state.IsValid() {
		return nil, ErrInvalidState
	}
	locked := lockedBy != nil && lockedAt != nil
	unlocked := lockedBy == nil && lockedAt == nil
	if (state == StatePending && !locked) || (state != StatePending && !unlocked) {
		return nil, ErrLockFieldsMismatch
	}
	return &Slot{
		id:           id,
		courtFieldID: courtFieldID,
		day:          Day(day),
		start:        start,
		end:          end,
		price:        price,
		state:        state,
		lockedBy:     lockedBy,
		lockedAt:     lockedAt,
	}, nil
}

// CanBeLockedBy mirrors the predicate of the conditional lock update.
func (s *Slot) CanBeLockedBy(userID uuid.UUID) bool {
	return s.state == StateAvailable || s.IsHeldBy(userID)
}

func (s *Slot) IsHeldBy(userID uuid.UUID) bool {
	return s.state == StatePending && s.lockedBy != nil && *s.lockedBy == userID
}

func (s *Slot) IsLockExpired(now time.Time, ttl time.Duration) bool {
	return s.state == StatePending && s.lockedAt != nil && s.lockedAt.Before(now.Add(-ttl))
}

func (s *Slot) Lock(userID uuid.UUID, now time.Time) error {
	if !s.CanBeLockedBy(userID) {
		if s.state == StateBooked {
			return ErrAlreadyBooked
		}
		return ErrNotAvailable
	}
	s.state = StatePending
	s.lockedBy = &userID
	s.lockedAt = &now
	return nil
}

func (s *Slot) Unlock(userID uuid.UUID) error {
	if !s.IsHeldBy(userID) {
		return ErrNotHeldByUser
	}
	s.release()
	return nil
}

// Expire releases a lock older than ttl; it reports whether the slot changed.
func (s *Slot) Expire(now time.Time, ttl time.Duration) bool {
	if !s.IsLockExpired(now, ttl) {
		return false
	}
	s.release()
	return true
}

// Book finalizes the slot. holder nil means the direct path, which accepts
// available slots only.
func (s *Slot) Book(holder *uuid.UUID) error {
	switch {
	case s.state == StateAvailable:
	case holder != nil && s.IsHeldBy(*holder):
	case s.state == StateBooked:
		return ErrAlreadyBooked
	default:
		return ErrNotAvailable
	}
	s.state = StateBooked
	s.lockedBy = nil
	s.lockedAt = nil
	return nil
}

func (s *Slot) release() {
	s.state = StateAvailable
	s.lockedBy = nil
	s.lockedAt = nil
}

// EffectivePrice falls back to the period price when the slot has none.
func (s *Slot) EffectivePrice(pricing PeriodPricing) int64 {
	if s.price > 0 {
		return s.price
	}
	return pricing.PriceAt(s.start)
}

func (s *Slot) Ref() Ref {
	return Ref{ID: s.id, CourtFieldID: s.courtFieldID}
}

func (s *Slot) TimeRange() string {
	return TimeRange(s.start, s.end)
}

func (s *Slot) ID() int64            { return s.id }
func (s *Slot) CourtFieldID() int64  { return s.courtFieldID }
func (s *Slot) Day() time.Time       { return s.day }
func (s *Slot) Start() TimeOfDay     { return s.start }
func (s *Slot) End() TimeOfDay       { return s.end }
func (s *Slot) Price() int64         { return s.price }
func (s *Slot) State() State         { return s.state }
func (s *Slot) LockedBy() *uuid.UUID { return s.lockedBy }
func (s *Slot) LockedAt() *time.Time { return s.lockedAt }

func Refs(slots []*Slot) []Ref {
	refs := make([]Ref, len(slots))
	for i, s := range slots {
		refs[i] = s.Ref()
	}
	return refs
}

func Total(slots []*Slot, pricing PeriodPricing) int64 {
	var total int64
	for _, s := range slots {
		total += s.EffectivePrice(pricing)
	}
	return total
}
