package slot

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidState     = errors.New("invalid slot state")
	ErrInvalidTimeOfDay = errors.New("invalid time of day")
	ErrInvalidTimeRange = errors.New("slot end must be after start")
	ErrNegativePrice    = errors.New("price cannot be negative")
)

type State string

const (
	StateAvailable State = "available"
	StatePending   State = "pending"
	StateBooked    State = "booked"
)

func NewState(s string) (State, error) {
	st := State(s)
	if !st.IsValid() {
		return "", ErrInvalidState
	}
	return st, nil
}

func (s State) String() string {
	return string(s)
}

func (s State) IsValid() bool {
	switch s {
	case StateAvailable, StatePending, StateBooked:
		return true
	default:
		return false
	}
}

// TimeOfDay is a wall-clock time within one day with minute precision.
type TimeOfDay struct {
	minutes int
}

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 24 || minute < 0 || minute > 59 || (hour == 24 && minute != 0) {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{minutes: hour*60 + minute}, nil
}

func MustTimeOfDay(hour, minute int) TimeOfDay {
	t, err := NewTimeOfDay(hour, minute)
	if err != nil {
		panic(err)
	}
	return t
}

func TimeOfDayFromMinutes(minutes int) (TimeOfDay, error) {
	return NewTimeOfDay(minutes/60, minutes%60)
}

func (t TimeOfDay) Hour() int    { return t.minutes / 60 }
func (t TimeOfDay) Minute() int  { return t.minutes % 60 }
func (t TimeOfDay) Minutes() int { return t.minutes }

func (t TimeOfDay) Before(o TimeOfDay) bool {
	return t.minutes < o.minutes
}

func (t TimeOfDay) Add(d time.Duration) TimeOfDay {
	return TimeOfDay{minutes: t.minutes + int(d/time.Minute)}
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// TimeRange renders "HH:MM - HH:MM", the format stored on bookings.
func TimeRange(start, end TimeOfDay) string {
	return start.String() + " - " + end.String()
}

// Day returns t's calendar date as midnight UTC, the form DATE columns round-trip.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type Ref struct {
	ID           int64
	CourtFieldID int64
}
