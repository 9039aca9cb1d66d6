//go:build unit

package realtime

import (
	"context"
	"testing"
	"time"

	"court-booking/internal/domain/slot"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, sub Subscription) Event {
	t.Helper()
	select {
	case payload, ok := <-sub.C():
		require.True(t, ok, "subscription closed")
		e, err := Decode(payload)
		require.NoError(t, err)
		return e
	case <-time.After(time.Second):
		t.Fatal("no event received")
		return Event{}
	}
}

func TestMemoryBroker(t *testing.T) {
	ctx := context.Background()

	t.Run("fans out to every subscriber of the room only", func(t *testing.T) {
		b := NewMemoryBroker()
		a1, err := b.Subscribe(ctx, Room(7))
		require.NoError(t, err)
		a2, err := b.Subscribe(ctx, Room(7))
		require.NoError(t, err)
		other, err := b.Subscribe(ctx, Room(8))
		require.NoError(t, err)

		require.NoError(t, b.Publish(ctx, Room(7), []byte(`{"type":"slot-booked","scheduleId":42}`)))

		assert.Equal(t, int64(42), receive(t, a1).ScheduleID)
		assert.Equal(t, int64(42), receive(t, a2).ScheduleID)
		assert.Empty(t, other.C())
	})

	t.Run("close detaches and empties the room", func(t *testing.T) {
		b := NewMemoryBroker()
		sub, err := b.Subscribe(ctx, Room(7))
		require.NoError(t, err)
		assert.Equal(t, 1, b.subscribers(Room(7)))

		require.NoError(t, sub.Close())
		require.NoError(t, sub.Close())

		assert.Equal(t, 0, b.subscribers(Room(7)))
		_, open := <-sub.C()
		assert.False(t, open)
		assert.NoError(t, b.Publish(ctx, Room(7), []byte(`{}`)))
	})

	t.Run("context cancellation closes the subscription", func(t *testing.T) {
		b := NewMemoryBroker()
		subCtx, cancel := context.WithCancel(ctx)
		_, err := b.Subscribe(subCtx, Room(7))
		require.NoError(t, err)

		cancel()

		assert.Eventually(t, func() bool { return b.subscribers(Room(7)) == 0 }, time.Second, 5*time.Millisecond)
	})

	t.Run("slow subscriber drops instead of blocking", func(t *testing.T) {
		b := NewMemoryBroker()
		sub, err := b.Subscribe(ctx, Room(7))
		require.NoError(t, err)

		for range subscriberBuffer + 10 {
			require.NoError(t, b.Publish(ctx, Room(7), []byte(`{}`)))
		}

		assert.Len(t, sub.C(), subscriberBuffer)
	})
}

func TestNotifier(t *testing.T) {
	ctx := context.Background()
	b := NewMemoryBroker()
	n := NewNotifier(b)

	field7, err := b.Subscribe(ctx, Room(7))
	require.NoError(t, err)
	field9, err := b.Subscribe(ctx, Room(9))
	require.NoError(t, err)

	holder := uuid.New()
	n.SlotsLocked(ctx, holder, []slot.Ref{{ID: 42, CourtFieldID: 7}, {ID: 90, CourtFieldID: 9}})
	n.SlotsUnlocked(ctx, []slot.Ref{{ID: 42, CourtFieldID: 7}})
	n.SlotsBooked(ctx, []slot.Ref{{ID: 43, CourtFieldID: 7}})

	locked := receive(t, field7)
	assert.Equal(t, Event{Type: EventSlotLocked, ScheduleID: 42, UserID: &holder}, locked)
	assert.Equal(t, Event{Type: EventSlotUnlocked, ScheduleID: 42}, receive(t, field7))
	assert.Equal(t, Event{Type: EventSlotBooked, ScheduleID: 43}, receive(t, field7))
	assert.Equal(t, int64(90), receive(t, field9).ScheduleID)
}

func TestRoom(t *testing.T) {
	assert.Equal(t, "courtField_12", Room(12))
}
