package response

import (
	"time"

	"court-booking/internal/domain/order"
	"court-booking/internal/usecase/commands"
	"court-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type StagedOrderResponse struct {
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

func FromStagedOrder(o *order.StagedOrder) *StagedOrderResponse {
	a := o.Amounts()
	return &StagedOrderResponse{
		OrderCode:      o.Code().Int64(),
		UserID:         o.UserID(),
		CourtFieldID:   o.CourtFieldID(),
		SlotIDs:        o.SlotIDs(),
		FullName:       o.Contact().FullName(),
		Phone:          o.Contact().Phone(),
		Note:           o.Note().String(),
		OriginalAmount: a.Original,
		DiscountAmount: a.Discount,
		FinalAmount:    a.Final,
		CouponID:       o.CouponID(),
		ExpiresAt:      o.ExpiresAt(),
		CreatedAt:      o.CreatedAt(),
	}
}

func FromStagedOrderView(v *queries.StagedOrderView) (*StagedOrderResponse, error) {
	var res StagedOrderResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

type FinalizeResponse struct {
	OrderCode  *int64  `json:"order_code,omitempty"`
	BookingIDs []int64 `json:"booking_ids"`
	SlotIDs    []int64 `json:"slot_ids"`
}

func FromFinalizeResult(r *commands.FinalizeResult) *FinalizeResponse {
	res := &FinalizeResponse{BookingIDs: r.BookingIDs, SlotIDs: r.SlotIDs}
	if r.OrderCode != nil {
		code := r.OrderCode.Int64()
		res.OrderCode = &code
	}
	return res
}
