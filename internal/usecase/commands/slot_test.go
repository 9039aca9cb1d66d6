//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"court-booking/internal/domain/slot"
	"court-booking/internal/infra"
	"court-booking/internal/usecase/commands"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSlotUseCase_LockSlots(t *testing.T) {
	ctx := context.Background()

	t.Run("locks sorted unique ids and broadcasts", func(t *testing.T) {
		h := newHarness(t)
		uc := commands.NewSlotUseCase(h.uow, h.notifier, h.clock, h.cfg)

		rows := []*slot.Slot{heldSlot(t, 42, 17, 0, alice), heldSlot(t, 43, 18, 0, alice)}
		h.slots.EXPECT().Lock(gomock.Any(), gomock.Any(), alice, []int64{42, 43}, now).Return(rows, nil)
		h.slots.EXPECT().CountHeldBy(gomock.Any(), gomock.Any(), alice, []int64{42, 43}).Return(int64(2), nil)
		h.notifier.EXPECT().SlotsLocked(gomock.Any(), alice, refs(42, 43))

		res, err := uc.LockSlots(ctx, alice, []int64{43, 42, 43})

		require.NoError(t, err)
		assert.Equal(t, []int64{42, 43}, res.SlotIDs)
		assert.Equal(t, now, res.LockedAt)
	})

	t.Run("any slot held by someone else fails the whole batch", func(t *testing.T) {
		h := newHarness(t)
		uc := commands.NewSlotUseCase(h.uow, h.notifier, h.clock, h.cfg)

		h.slots.EXPECT().Lock(gomock.Any(), gomock.Any(), alice, []int64{42, 43}, now).
			Return([]*slot.Slot{heldSlot(t, 42, 17, 0, alice)}, nil)
		h.slots.EXPECT().CountHeldBy(gomock.Any(), gomock.Any(), alice, []int64{42, 43}).Return(int64(1), nil)

		_, err := uc.LockSlots(ctx, alice, []int64{42, 43})

		assertMarked(t, err, commands.ErrSlotConflict)
	})

	t.Run("serialization failure surfaces as a conflict", func(t *testing.T) {
		h := newHarness(t)
		uc := commands.NewSlotUseCase(h.uow, h.notifier, h.clock, h.cfg)

		pgErr := &pgconn.PgError{Code: "40001", Message: "could not serialize access"}
		h.slots.EXPECT().Lock(gomock.Any(), gomock.Any(), alice, gomock.Any(), now).
			Return(nil, infra.WrapRepoErr("lock slots", pgErr))

		_, err := uc.LockSlots(ctx, alice, []int64{42})

		assertMarked(t, err, commands.ErrSlotConflict)
	})

	t.Run("rejects bad input before touching the store", func(t *testing.T) {
		h := newHarness(t)
		h.cfg.MaxSlotsPerRequest = 2
		uc := commands.NewSlotUseCase(h.uow, h.notifier, h.clock, h.cfg)

		testCases := []struct {
			name string
			ids  []int64
		}{
			{name: "empty", ids: nil},
			{name: "non positive", ids: []int64{0, 5}},
			{name: "too many", ids: []int64{1, 2, 3}},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := uc.LockSlots(ctx, alice, tc.ids)
				assertMarked(t, err, commands.ErrInvalidRequest)
			})
		}
	})

	t.Run("database failure", func(t *testing.T) {
		h := newHarness(t)
		uc := commands.NewSlotUseCase(h.uow, h.notifier, h.clock, h.cfg)

		h.slots.EXPECT().Lock(gomock.Any(), gomock.Any(), alice, gomock.Any(), now).
			Return(nil, infra.WrapRepoErr("lock slots", errors.New("connection refused")))

		_, err := uc.LockSlots(ctx, alice, []int64{42})

		assertMarked(t, err, commands.ErrDatabaseOperationFailed)
	})
}

func TestSlotUseCase_UnlockSlots(t *testing.T) {
	ctx := context.Background()

	t.Run("releases only own slots and broadcasts them", func(t *testing.T) {
		h := newHarness(t)
		uc := commands.NewSlotUseCase(h.uow, h.notifier, h.clock, h.cfg)

		h.slots.EXPECT().Unlock(gomock.Any(), gomock.Any(), alice, []int64{42, 43}).
			Return([]*slot.Slot{slotAt(t, 43, 18, 0)}, nil)
		h.notifier.EXPECT().SlotsUnlocked(gomock.Any(), refs(43))

		res, err := uc.UnlockSlots(ctx, alice, []int64{43, 42})

		require.NoError(t, err)
		assert.Equal(t, []int64{43}, res.Released)
	})

	t.Run("unlocking nothing is a quiet no-op", func(t *testing.T) {
		h := newHarness(t)
		uc := commands.NewSlotUseCase(h.uow, h.notifier, h.clock, h.cfg)

		h.slots.EXPECT().Unlock(gomock.Any(), gomock.Any(), bob, []int64{42}).Return(nil, nil)

		res, err := uc.UnlockSlots(ctx, bob, []int64{42})

		require.NoError(t, err)
		assert.Empty(t, res.Released)
	})
}

func TestSlotUseCase_SeedSlots(t *testing.T) {
	ctx := context.Background()

	t.Run("inserts the grid and counts new rows", func(t *testing.T) {
		h := newHarness(t)
		uc := commands.NewSlotUseCase(h.uow, h.notifier, h.clock, h.cfg)

		h.reads.EXPECT().CourtFieldByID(gomock.Any(), int64(7)).Return(testField, nil)
		inserted := 0
		h.slots.EXPECT().Insert(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, s *slot.Slot) (bool, error) {
				inserted++
				// first day already seeded
				return s.Day().After(day), nil
			}).Times(34)

		created, err := uc.SeedSlots(ctx, 7, day.Add(10*time.Hour), 2)

		require.NoError(t, err)
		assert.Equal(t, 34, inserted)
		assert.Equal(t, 17, created)
	})

	t.Run("unknown court field", func(t *testing.T) {
		h := newHarness(t)
		uc := commands.NewSlotUseCase(h.uow, h.notifier, h.clock, h.cfg)

		h.reads.EXPECT().CourtFieldByID(gomock.Any(), int64(99)).Return(nil, notFound("court field"))

		_, err := uc.SeedSlots(ctx, 99, day, 1)

		assertMarked(t, err, commands.ErrCourtFieldNotFound)
	})

	t.Run("days must be positive", func(t *testing.T) {
		h := newHarness(t)
		uc := commands.NewSlotUseCase(h.uow, h.notifier, h.clock, h.cfg)

		_, err := uc.SeedSlots(ctx, 7, day, 0)

		assertMarked(t, err, commands.ErrInvalidRequest)
	})
}
