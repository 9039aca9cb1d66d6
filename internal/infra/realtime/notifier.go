package realtime

import (
	"context"
	"log/slog"

	"court-booking/internal/domain/slot"

	"github.com/google/uuid"
)

// Notifier turns slot transitions into room events. Delivery is fire-and-forget.
type Notifier struct {
	broker Broker
}

func NewNotifier(broker Broker) *Notifier {
	return &Notifier{broker: broker}
}

func (n *Notifier) SlotsLocked(ctx context.Context, userID uuid.UUID, refs []slot.Ref) {
	for _, ref := range refs {
		n.publish(ctx, ref, Event{Type: EventSlotLocked, ScheduleID: ref.ID, UserID: &userID})
	}
}

func (n *Notifier) SlotsUnlocked(ctx context.Context, refs []slot.Ref) {
	for _, ref := range refs {
		n.publish(ctx, ref, Event{Type: EventSlotUnlocked, ScheduleID: ref.ID})
	}
}

func (n *Notifier) SlotsBooked(ctx context.Context, refs []slot.Ref) {
	for _, ref := range refs {
		n.publish(ctx, ref, Event{Type: EventSlotBooked, ScheduleID: ref.ID})
	}
}

func (n *Notifier) publish(ctx context.Context, ref slot.Ref, e Event) {
	payload, err := Encode(e)
	if err != nil {
		slog.Error("Failed to encode realtime event", "error", err, "slot_id", ref.ID)
		return
	}
	room := Room(ref.CourtFieldID)
	if err := n.broker.Publish(ctx, room, payload); err != nil {
		slog.Warn("Failed to relay realtime event",
			"error", err,
			"room", room,
			"event", e.Type,
			"slot_id", ref.ID,
		)
	}
}
