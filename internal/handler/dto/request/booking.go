package request

import (
	"court-booking/internal/pkg/patch"
	"court-booking/internal/usecase/commands"
)

type DirectBookRequest struct {
	SlotIDs []int64 `json:"slot_ids" binding:"required,min=1,dive,gt=0"`
	Note    *string `json:"note" binding:"omitempty,max=2000"`
}

func (r DirectBookRequest) ToCommand() commands.DirectBookRequest {
	return commands.DirectBookRequest{
		SlotIDs: r.SlotIDs,
		Note:    patch.Coalesce(r.Note, ""),
	}
}

type ListBookingsQuery struct {
	Cursor string `form:"cursor"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=200"`
}
