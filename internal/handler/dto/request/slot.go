package request

import (
	"time"
)

const DateLayout = "2006-01-02"

type ListSlotsQuery struct {
	Date string `form:"date" binding:"required"`
}

func (q ListSlotsQuery) Day() (time.Time, error) {
	return time.Parse(DateLayout, q.Date)
}

type SlotIDsRequest struct {
	SlotIDs []int64 `json:"slot_ids" binding:"required,min=1,dive,gt=0"`
}
