//go:build unit

package slot_test

import (
	"testing"
	"time"

	"court-booking/internal/domain/slot"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	day   = time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	now   = time.Date(2025, 3, 13, 9, 30, 0, 0, time.UTC)
	alice = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	bob   = uuid.MustParse("22222222-2222-2222-2222-222222222222")
)

func availableSlot(t *testing.T) *slot.Slot {
	t.Helper()
	s, err := slot.ReconstructSlot(42, 7, day, slot.MustTimeOfDay(17, 0), slot.MustTimeOfDay(18, 0), 150000, slot.StateAvailable, nil, nil)
	require.NoError(t, err)
	return s
}

func TestReconstructSlot(t *testing.T) {
	lockedAt := now
	testCases := []struct {
		name     string
		state    slot.State
		lockedBy *uuid.UUID
		lockedAt *time.Time
		errIs    error
	}{
		{name: "available without lock fields", state: slot.StateAvailable},
		{name: "pending with lock fields", state: slot.StatePending, lockedBy: &alice, lockedAt: &lockedAt},
		{name: "booked without lock fields", state: slot.StateBooked},
		{name: "pending without holder", state: slot.StatePending, lockedAt: &lockedAt, errIs: slot.ErrLockFieldsMismatch},
		{name: "available with stale holder", state: slot.StateAvailable, lockedBy: &alice, errIs: slot.ErrLockFieldsMismatch},
		{name: "booked with lock time", state: slot.StateBooked, lockedAt: &lockedAt, errIs: slot.ErrLockFieldsMismatch},
		{name: "unknown state", state: slot.State("held"), errIs: slot.ErrInvalidState},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := slot.ReconstructSlot(1, 7, day, slot.MustTimeOfDay(5, 0), slot.MustTimeOfDay(6, 0), 100, tc.state, tc.lockedBy, tc.lockedAt)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, s)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.state, s.State())
		})
	}
}

func TestSlot_LockLifecycle(t *testing.T) {
	t.Run("lock stamps holder and time", func(t *testing.T) {
		s := availableSlot(t)

		require.NoError(t, s.Lock(alice, now))

		assert.Equal(t, slot.StatePending, s.State())
		require.NotNil(t, s.LockedBy())
		assert.Equal(t, alice, *s.LockedBy())
		assert.Equal(t, now, *s.LockedAt())
		assert.True(t, s.IsHeldBy(alice))
		assert.False(t, s.IsHeldBy(bob))
	})

	t.Run("holder may re-lock to refresh the stamp", func(t *testing.T) {
		s := availableSlot(t)
		require.NoError(t, s.Lock(alice, now))

		later := now.Add(2 * time.Minute)
		require.NoError(t, s.Lock(alice, later))
		assert.Equal(t, later, *s.LockedAt())
	})

	t.Run("competing user is rejected", func(t *testing.T) {
		s := availableSlot(t)
		require.NoError(t, s.Lock(alice, now))

		err := s.Lock(bob, now)

		assert.ErrorIs(t, err, slot.ErrNotAvailable)
		assert.Equal(t, alice, *s.LockedBy())
	})

	t.Run("unlock by holder makes slot lockable by others", func(t *testing.T) {
		s := availableSlot(t)
		require.NoError(t, s.Lock(alice, now))

		require.NoError(t, s.Unlock(alice))
		assert.Equal(t, slot.StateAvailable, s.State())
		assert.Nil(t, s.LockedBy())
		assert.Nil(t, s.LockedAt())

		assert.NoError(t, s.Lock(bob, now))
	})

	t.Run("unlock by someone else fails", func(t *testing.T) {
		s := availableSlot(t)
		require.NoError(t, s.Lock(alice, now))

		assert.ErrorIs(t, s.Unlock(bob), slot.ErrNotHeldByUser)
		assert.Equal(t, slot.StatePending, s.State())
	})
}

func TestSlot_Expire(t *testing.T) {
	ttl := 5 * time.Minute

	testCases := []struct {
		name    string
		age     time.Duration
		expired bool
	}{
		{name: "fresh lock stays", age: time.Minute, expired: false},
		{name: "exactly ttl stays", age: ttl, expired: false},
		{name: "older than ttl is released", age: ttl + time.Second, expired: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := availableSlot(t)
			require.NoError(t, s.Lock(alice, now.Add(-tc.age)))

			changed := s.Expire(now, ttl)

			assert.Equal(t, tc.expired, changed)
			if tc.expired {
				assert.Equal(t, slot.StateAvailable, s.State())
				assert.Nil(t, s.LockedBy())
			} else {
				assert.Equal(t, slot.StatePending, s.State())
			}
		})
	}

	t.Run("available slot never expires", func(t *testing.T) {
		s := availableSlot(t)
		assert.False(t, s.Expire(now.Add(time.Hour), ttl))
	})
}

func TestSlot_Book(t *testing.T) {
	t.Run("holder books pending slot", func(t *testing.T) {
		s := availableSlot(t)
		require.NoError(t, s.Lock(alice, now))

		require.NoError(t, s.Book(&alice))
		assert.Equal(t, slot.StateBooked, s.State())
		assert.Nil(t, s.LockedBy())
	})

	t.Run("holder books available slot", func(t *testing.T) {
		s := availableSlot(t)
		assert.NoError(t, s.Book(&alice))
	})

	t.Run("direct path books available slot", func(t *testing.T) {
		s := availableSlot(t)
		assert.NoError(t, s.Book(nil))
	})

	t.Run("direct path refuses pending slot", func(t *testing.T) {
		s := availableSlot(t)
		require.NoError(t, s.Lock(alice, now))
		assert.ErrorIs(t, s.Book(nil), slot.ErrNotAvailable)
	})

	t.Run("other user refuses pending slot", func(t *testing.T) {
		s := availableSlot(t)
		require.NoError(t, s.Lock(alice, now))
		assert.ErrorIs(t, s.Book(&bob), slot.ErrNotAvailable)
	})

	t.Run("booked is terminal", func(t *testing.T) {
		s := availableSlot(t)
		require.NoError(t, s.Book(nil))
		assert.ErrorIs(t, s.Book(nil), slot.ErrAlreadyBooked)
		assert.ErrorIs(t, s.Lock(alice, now), slot.ErrAlreadyBooked)
	})
}

func TestSlot_Pricing(t *testing.T) {
	pricing := slot.PeriodPricing{Morning: 100000, Lunch: 120000, Evening: 200000}

	t.Run("own price wins", func(t *testing.T) {
		s := availableSlot(t)
		assert.Equal(t, int64(150000), s.EffectivePrice(pricing))
	})

	t.Run("zero price falls back to period", func(t *testing.T) {
		testCases := []struct {
			hour int
			want int64
		}{
			{hour: 5, want: 100000},
			{hour: 11, want: 100000},
			{hour: 12, want: 120000},
			{hour: 17, want: 120000},
			{hour: 18, want: 200000},
			{hour: 21, want: 200000},
		}
		for _, tc := range testCases {
			s, err := slot.NewSlot(7, day, slot.MustTimeOfDay(tc.hour, 0), slot.MustTimeOfDay(tc.hour+1, 0), 0)
			require.NoError(t, err)
			assert.Equal(t, tc.want, s.EffectivePrice(pricing), "hour %d", tc.hour)
		}
	})

	t.Run("total sums effective prices", func(t *testing.T) {
		a := availableSlot(t)
		b, err := slot.NewSlot(7, day, slot.MustTimeOfDay(6, 0), slot.MustTimeOfDay(7, 0), 0)
		require.NoError(t, err)
		assert.Equal(t, int64(250000), slot.Total([]*slot.Slot{a, b}, pricing))
	})
}

func TestGenerateDays(t *testing.T) {
	pricing := slot.PeriodPricing{Morning: 1, Lunch: 2, Evening: 3}

	slots, err := slot.GenerateDays(7, day.Add(15*time.Hour), 2, pricing)
	require.NoError(t, err)

	// 05:00..22:00 hourly = 17 per day
	require.Len(t, slots, 34)

	first, last := slots[0], slots[16]
	assert.Equal(t, "05:00 - 06:00", first.TimeRange())
	assert.Equal(t, "21:00 - 22:00", last.TimeRange())
	assert.Equal(t, day, first.Day())
	assert.Equal(t, day.AddDate(0, 0, 1), slots[17].Day())

	prices := make([]int64, 0, 17)
	for _, s := range slots[:17] {
		prices = append(prices, s.Price())
		assert.Equal(t, slot.StateAvailable, s.State())
	}
	want := []int64{1, 1, 1, 1, 1, 1, 1, 2, 2, 2, 2, 2, 2, 3, 3, 3, 3}
	if diff := cmp.Diff(want, prices); diff != "" {
		t.Errorf("seed prices mismatch (-want +got):\n%s", diff)
	}
}

func TestTimeOfDay(t *testing.T) {
	_, err := slot.NewTimeOfDay(25, 0)
	assert.ErrorIs(t, err, slot.ErrInvalidTimeOfDay)

	end, err := slot.NewTimeOfDay(24, 0)
	require.NoError(t, err)
	assert.Equal(t, "24:00", end.String())

	assert.Equal(t, "09:05", slot.MustTimeOfDay(9, 5).String())
	assert.Equal(t, slot.MustTimeOfDay(10, 30), slot.MustTimeOfDay(9, 0).Add(90*time.Minute))

	_, err = slot.NewSlot(7, day, slot.MustTimeOfDay(10, 0), slot.MustTimeOfDay(10, 0), 1)
	assert.ErrorIs(t, err, slot.ErrInvalidTimeRange)
}
