package booking

import (
	"errors"
	"time"

	"court-booking/internal/domain/slot"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus = errors.New("invalid booking status")
	ErrSlotNotBooked = errors.New("booking requires a booked slot")
)

type Status string

const (
	StatusSuccess   Status = "SUCCESS"
	StatusCancelled Status = "CANCELLED"
)

func NewStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusSuccess, StatusCancelled:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s Status) String() string {
	return string(s)
}

// Booking is the permanent record of one confirmed slot.
type Booking struct {
	id           int64
	userID       uuid.UUID
	courtFieldID int64
	slotID       int64
	day          time.Time
	timeRange    string
	note         string
	price        int64
	status       Status
	orderCode    *int64
	createdAt    time.Time
}

// NewFromSlot records a slot the caller has just transitioned to booked.
// price is the amount charged for this slot.
func NewFromSlot(userID uuid.UUID, s *slot.Slot, note string, price int64, orderCode *int64, now time.Time) (*Booking, error) {
	if s.State() != slot.StateBooked {
		return nil, ErrSlotNotBooked
	}
	return &Booking{
		userID:       userID,
		courtFieldID: s.CourtFieldID(),
		slotID:       s.ID(),
		day:          s.Day(),
		timeRange:    s.TimeRange(),
		note:         note,
		price:        price,
		status:       StatusSuccess,
		orderCode:    orderCode,
		createdAt:    now,
	}, nil
}

func ReconstructBooking(
	id int64,
	userID uuid.UUID,
	courtFieldID, slotID int64,
	day time.Time,
	timeRange, note string,
	price int64,
	status Status,
	orderCode *int64,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:           id,
		userID:       userID,
		courtFieldID: courtFieldID,
		slotID:       slotID,
		day:          day,
		timeRange:    timeRange,
		note:         note,
		price:        price,
		status:       status,
		orderCode:    orderCode,
		createdAt:    createdAt,
	}
}

func (b *Booking) ID() int64            { return b.id }
func (b *Booking) UserID() uuid.UUID    { return b.userID }
func (b *Booking) CourtFieldID() int64  { return b.courtFieldID }
func (b *Booking) SlotID() int64        { return b.slotID }
func (b *Booking) Day() time.Time       { return b.day }
func (b *Booking) TimeRange() string    { return b.timeRange }
func (b *Booking) Note() string         { return b.note }
func (b *Booking) Price() int64         { return b.price }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) OrderCode() *int64    { return b.orderCode }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
