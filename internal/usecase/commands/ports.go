package commands

import (
	"context"

	"court-booking/internal/domain/order"
	"court-booking/internal/domain/slot"

	"github.com/google/uuid"
)

// SlotNotifier relays slot transitions to the realtime rooms. Implementations log delivery
// failures themselves; callers never see them.
type SlotNotifier interface {
	SlotsLocked(ctx context.Context, userID uuid.UUID, refs []slot.Ref)
	SlotsUnlocked(ctx context.Context, refs []slot.Ref)
	SlotsBooked(ctx context.Context, refs []slot.Ref)
}

type PaymentVerifier interface {
	Verify(ctx context.Context, code order.Code, amount int64) (bool, error)
}
