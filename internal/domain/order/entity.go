package order

import (
	"errors"
	"slices"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNoSlots         = errors.New("order must reference at least one slot")
	ErrInvalidAmounts  = errors.New("order amounts are inconsistent")
	ErrInvalidExpiry   = errors.New("order expiry must be after creation")
	ErrNotOwnedByUser  = errors.New("order is not owned by user")
	ErrOrderHasExpired = errors.New("order has expired")
)

// StagedOrder pairs a user's locked slots with buyer info and the payable amount.
type StagedOrder struct {
	code         Code
	userID       uuid.UUID
	courtFieldID int64
	slotIDs      []int64
	contact      Contact
	note         Note
	amounts      Amounts
	couponID     *int64
	expiresAt    time.Time
	createdAt    time.Time
}

func NewStagedOrder(
	code Code,
	userID uuid.UUID,
	courtFieldID int64,
	slotIDs []int64,
	contact Contact,
	note Note,
	amounts Amounts,
	couponID *int64,
	now time.Time,
	ttl time.Duration,
) (*StagedOrder, error) {
	if len(slotIDs) == 0 {
		return nil, ErrNoSlots
	}
	if amounts.Original < 0 || amounts.Discount < 0 || amounts.Final < 0 ||
		amounts.Original-amounts.Discount != amounts.Final {
		return nil, ErrInvalidAmounts
	}
	if ttl <= 0 {
		return nil, ErrInvalidExpiry
	}
	ids := slices.Clone(slotIDs)
	slices.Sort(ids)
	return &StagedOrder{
		code:         code,
		userID:       userID,
		courtFieldID: courtFieldID,
		slotIDs:      ids,
		contact:      contact,
		note:         note,
		amounts:      amounts,
		couponID:     couponID,
		expiresAt:    now.Add(ttl),
		createdAt:    now,
	}, nil
}

func ReconstructStagedOrder(
	code Code,
	userID uuid.UUID,
	courtFieldID int64,
	slotIDs []int64,
	contact Contact,
	note Note,
	amounts Amounts,
	couponID *int64,
	expiresAt, createdAt time.Time,
) *StagedOrder {
	return &StagedOrder{
		code:         code,
		userID:       userID,
		courtFieldID: courtFieldID,
		slotIDs:      slotIDs,
		contact:      contact,
		note:         note,
		amounts:      amounts,
		couponID:     couponID,
		expiresAt:    expiresAt,
		createdAt:    createdAt,
	}
}

func (o *StagedOrder) IsExpired(now time.Time) bool {
	return !now.Before(o.expiresAt)
}

func (o *StagedOrder) IsOwnedBy(userID uuid.UUID) bool {
	return o.userID == userID
}

// CheckFinalizable is the precondition shared by every finalize path.
func (o *StagedOrder) CheckFinalizable(userID uuid.UUID, now time.Time) error {
	if !o.IsOwnedBy(userID) {
		return ErrNotOwnedByUser
	}
	if o.IsExpired(now) {
		return ErrOrderHasExpired
	}
	return nil
}

func (o *StagedOrder) Code() Code           { return o.code }
func (o *StagedOrder) UserID() uuid.UUID    { return o.userID }
func (o *StagedOrder) CourtFieldID() int64  { return o.courtFieldID }
func (o *StagedOrder) SlotIDs() []int64     { return o.slotIDs }
func (o *StagedOrder) Contact() Contact     { return o.contact }
func (o *StagedOrder) Note() Note           { return o.note }
func (o *StagedOrder) Amounts() Amounts     { return o.amounts }
func (o *StagedOrder) CouponID() *int64     { return o.couponID }
func (o *StagedOrder) ExpiresAt() time.Time { return o.expiresAt }
func (o *StagedOrder) CreatedAt() time.Time { return o.createdAt }
