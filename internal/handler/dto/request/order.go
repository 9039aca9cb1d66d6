package request

import (
	"court-booking/internal/pkg/patch"
	"court-booking/internal/usecase/commands"
)

type StageOrderRequest struct {
	CourtFieldID int64   `json:"court_field_id" binding:"required,gt=0"`
	SlotIDs      []int64 `json:"slot_ids" binding:"required,min=1,dive,gt=0"`
	FullName     string  `json:"full_name" binding:"required,max=100"`
	Phone        string  `json:"phone" binding:"required,max=20"`
	Note         *string `json:"note" binding:"omitempty,max=2000"`
	CouponID     *int64  `json:"coupon_id" binding:"omitempty,gt=0"`
	CouponCode   *string `json:"coupon_code" binding:"omitempty,min=3,max=32"`
}

func (r StageOrderRequest) ToCommand() commands.StageOrderRequest {
	return commands.StageOrderRequest{
		CourtFieldID: r.CourtFieldID,
		SlotIDs:      r.SlotIDs,
		FullName:     r.FullName,
		Phone:        r.Phone,
		Note:         patch.Coalesce(r.Note, ""),
		CouponID:     r.CouponID,
		CouponCode:   r.CouponCode,
	}
}
