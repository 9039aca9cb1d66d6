package queries

import (
	"time"

	"court-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrCourtFieldNotFound = errs.New("court field not found")
	ErrOrderNotFound      = errs.New("staged order not found")
	ErrInvalidQuery       = errs.New("invalid query")
)

type CourtFieldView struct {
	ID           int64  `json:"id"`
	CourtID      int64  `json:"court_id"`
	Name         string `json:"name"`
	MorningPrice int64  `json:"morning_price"`
	LunchPrice   int64  `json:"lunch_price"`
	EveningPrice int64  `json:"evening_price"`
}

// SlotView carries the effective price: the slot's own price, or the field's period price when unset.
type SlotView struct {
	ID           int64      `json:"id"`
	CourtFieldID int64      `json:"court_field_id"`
	Day          time.Time  `json:"day"`
	StartTime    string     `json:"start_time"`
	EndTime      string     `json:"end_time"`
	TimeRange    string     `json:"time_range"`
	Price        int64      `json:"price"`
	State        string     `json:"state"`
	LockedBy     *uuid.UUID `json:"locked_by,omitempty"`
	LockedAt     *time.Time `json:"locked_at,omitempty"`
}

type StagedOrderView struct {
	OrderCode      int64     `json:"order_code"`
	UserID         uuid.UUID `json:"user_id"`
	CourtFieldID   int64     `json:"court_field_id"`
	SlotIDs        []int64   `json:"slot_ids"`
	FullName       string    `json:"full_name"`
	Phone          string    `json:"phone"`
	Note           string    `json:"note"`
	OriginalAmount int64     `json:"original_amount"`
	DiscountAmount int64     `json:"discount_amount"`
	FinalAmount    int64     `json:"final_amount"`
	CouponID       *int64    `json:"coupon_id,omitempty"`
	ExpiresAt      time.Time `json:"expires_at"`
	CreatedAt      time.Time `json:"created_at"`
}

type BookingListItem struct {
	ID           int64     `json:"id"`
	CourtFieldID int64     `json:"court_field_id"`
	SlotID       int64     `json:"slot_id"`
	Day          time.Time `json:"day"`
	TimeRange    string    `json:"time_range"`
	Note         string    `json:"note"`
	Price        int64     `json:"price"`
	Status       string    `json:"status"`
	OrderCode    *int64    `json:"order_code,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
