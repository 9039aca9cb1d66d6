//go:build unit || e2e

package builder

import (
	"time"

	"court-booking/internal/domain/order"
	reqdto "court-booking/internal/handler/dto/request"
	"court-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type StagedOrderBuilder struct {
	Code         int64
	UserID       uuid.UUID
	CourtFieldID int64
	SlotIDs      []int64
	FullName     string
	Phone        string
	Note         string
	Original     int64
	Discount     int64
	CouponID     *int64
	CreatedAt    time.Time
	TTL          time.Duration
}

func NewStagedOrderBuilder() *StagedOrderBuilder {
	createdAt := time.Date(2025, 3, 13, 9, 0, 0, 0, time.UTC)
	return &StagedOrderBuilder{
		Code:         order.NewCode(createdAt).Int64(),
		UserID:       uuid.New(),
		CourtFieldID: 7,
		SlotIDs:      []int64{42, 43},
		FullName:     "Nguyen Van A",
		Phone:        "0901234567",
		Note:         "two rackets please",
		Original:     300000,
		CreatedAt:    createdAt,
		TTL:          15 * time.Minute,
	}
}

func (b *StagedOrderBuilder) With(mutate func(*StagedOrderBuilder)) *StagedOrderBuilder {
	mutate(b)
	return b
}

func (b *StagedOrderBuilder) WithUser(userID uuid.UUID) *StagedOrderBuilder {
	b.UserID = userID
	return b
}

func (b *StagedOrderBuilder) WithCoupon(id int64, discount int64) *StagedOrderBuilder {
	b.CouponID = &id
	b.Discount = discount
	return b
}

func (b *StagedOrderBuilder) amounts() order.Amounts {
	return order.Amounts{Original: b.Original, Discount: b.Discount, Final: b.Original - b.Discount}
}

func (b *StagedOrderBuilder) BuildDomain() (*order.StagedOrder, error) {
	code, err := order.ParseCode(b.Code)
	if err != nil {
		return nil, err
	}
	contact, err := order.NewContact(b.FullName, b.Phone)
	if err != nil {
		return nil, err
	}
	note, err := order.NewNote(b.Note)
	if err != nil {
		return nil, err
	}
	return order.NewStagedOrder(code, b.UserID, b.CourtFieldID, b.SlotIDs, contact, note, b.amounts(), b.CouponID, b.CreatedAt, b.TTL)
}

func (b *StagedOrderBuilder) BuildView() *queries.StagedOrderView {
	a := b.amounts()
	return &queries.StagedOrderView{
		OrderCode:      b.Code,
		UserID:         b.UserID,
		CourtFieldID:   b.CourtFieldID,
		SlotIDs:        b.SlotIDs,
		FullName:       b.FullName,
		Phone:          b.Phone,
		Note:           b.Note,
		OriginalAmount: a.Original,
		DiscountAmount: a.Discount,
		FinalAmount:    a.Final,
		CouponID:       b.CouponID,
		ExpiresAt:      b.CreatedAt.Add(b.TTL),
		CreatedAt:      b.CreatedAt,
	}
}

func (b *StagedOrderBuilder) BuildRequestDTO() reqdto.StageOrderRequest {
	note := b.Note
	return reqdto.StageOrderRequest{
		CourtFieldID: b.CourtFieldID,
		SlotIDs:      b.SlotIDs,
		FullName:     b.FullName,
		Phone:        b.Phone,
		Note:         &note,
		CouponID:     b.CouponID,
	}
}
