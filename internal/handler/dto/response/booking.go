package response

import (
	"time"

	"court-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID           int64     `json:"id"`
	CourtFieldID int64     `json:"court_field_id"`
	SlotID       int64     `json:"slot_id"`
	Day          string    `json:"day" copier:"-"`
	TimeRange    string    `json:"time_range"`
	Note         string    `json:"note"`
	Price        int64     `json:"price"`
	Status       string    `json:"status"`
	OrderCode    *int64    `json:"order_code,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type BookingListResponse struct {
	Items      []BookingResponse `json:"items"`
	NextCursor *string           `json:"next_cursor,omitempty"`
}

func FromBookingList(items []*queries.BookingListItem, next *queries.Cursor) (*BookingListResponse, error) {
	res := &BookingListResponse{Items: make([]BookingResponse, len(items))}
	for i, it := range items {
		if err := copier.Copy(&res.Items[i], it); err != nil {
			return nil, err
		}
		res.Items[i].Day = it.Day.Format(time.DateOnly)
	}
	if next != nil && next.After != "" {
		after := next.After
		res.NextCursor = &after
	}
	return res, nil
}
