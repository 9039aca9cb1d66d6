package response

import (
	"time"

	"court-booking/internal/usecase/commands"
	"court-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CourtFieldResponse struct {
	ID           int64  `json:"id"`
	CourtID      int64  `json:"court_id"`
	Name         string `json:"name"`
	MorningPrice int64  `json:"morning_price"`
	LunchPrice   int64  `json:"lunch_price"`
	EveningPrice int64  `json:"evening_price"`
}

func FromCourtFieldViews(views []*queries.CourtFieldView) ([]CourtFieldResponse, error) {
	res := make([]CourtFieldResponse, 0, len(views))
	if err := copier.Copy(&res, views); err != nil {
		return nil, err
	}
	return res, nil
}

type SlotResponse struct {
	ID           int64      `json:"id"`
	CourtFieldID int64      `json:"court_field_id"`
	Day          string     `json:"day" copier:"-"`
	StartTime    string     `json:"start_time"`
	EndTime      string     `json:"end_time"`
	TimeRange    string     `json:"time_range"`
	Price        int64      `json:"price"`
	State        string     `json:"state"`
	LockedBy     *uuid.UUID `json:"locked_by,omitempty"`
	LockedAt     *time.Time `json:"locked_at,omitempty"`
}

func FromSlotViews(views []*queries.SlotView) ([]SlotResponse, error) {
	res := make([]SlotResponse, len(views))
	for i, v := range views {
		if err := copier.Copy(&res[i], v); err != nil {
			return nil, err
		}
		res[i].Day = v.Day.Format(time.DateOnly)
	}
	return res, nil
}

type LockResponse struct {
	SlotIDs  []int64   `json:"slot_ids"`
	LockedAt time.Time `json:"locked_at"`
}

func FromLockResult(r *commands.LockResult) *LockResponse {
	return &LockResponse{SlotIDs: r.SlotIDs, LockedAt: r.LockedAt}
}

type UnlockResponse struct {
	Released []int64 `json:"released"`
}

func FromUnlockResult(r *commands.UnlockResult) *UnlockResponse {
	released := r.Released
	if released == nil {
		released = []int64{}
	}
	return &UnlockResponse{Released: released}
}
