//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"court-booking/internal/domain/slot"
	"court-booking/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSweepUseCase_ReleaseExpiredLocks(t *testing.T) {
	ctx := context.Background()

	t.Run("releases locks older than the ttl and broadcasts", func(t *testing.T) {
		h := newHarness(t)
		uc := commands.NewSweepUseCase(h.uow, h.notifier, h.clock, h.cfg)

		h.slots.EXPECT().ReleaseExpired(gomock.Any(), gomock.Any(), now.Add(-h.cfg.LockTTL)).
			Return([]*slot.Slot{slotAt(t, 42, 17, 0), slotAt(t, 44, 19, 0)}, nil)
		h.notifier.EXPECT().SlotsUnlocked(gomock.Any(), refs(42, 44))

		released, err := uc.ReleaseExpiredLocks(ctx)

		require.NoError(t, err)
		assert.Equal(t, refs(42, 44), released)
	})

	t.Run("nothing expired stays silent", func(t *testing.T) {
		h := newHarness(t)
		uc := commands.NewSweepUseCase(h.uow, h.notifier, h.clock, h.cfg)

		h.slots.EXPECT().ReleaseExpired(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

		released, err := uc.ReleaseExpiredLocks(ctx)

		require.NoError(t, err)
		assert.Empty(t, released)
	})
}

func TestSweepUseCase_Sweep(t *testing.T) {
	ctx := context.Background()

	t.Run("runs both passes", func(t *testing.T) {
		h := newHarness(t)
		uc := commands.NewSweepUseCase(h.uow, h.notifier, h.clock, h.cfg)

		h.slots.EXPECT().ReleaseExpired(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]*slot.Slot{slotAt(t, 42, 17, 0)}, nil)
		h.notifier.EXPECT().SlotsUnlocked(gomock.Any(), refs(42))
		h.orders.EXPECT().DeleteExpired(gomock.Any(), gomock.Any(), now).Return(int64(3), nil)
		h.idem.EXPECT().DeleteExpired(gomock.Any(), gomock.Any(), now).Return(int64(5), nil)

		res, err := uc.Sweep(ctx)

		require.NoError(t, err)
		assert.Equal(t, &commands.SweepResult{ReleasedSlots: refs(42), PurgedOrders: 3, PurgedIdemKeys: 5}, res)
	})

	t.Run("purge failure still reports released locks", func(t *testing.T) {
		h := newHarness(t)
		uc := commands.NewSweepUseCase(h.uow, h.notifier, h.clock, h.cfg)

		h.slots.EXPECT().ReleaseExpired(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]*slot.Slot{slotAt(t, 42, 17, 0)}, nil)
		h.notifier.EXPECT().SlotsUnlocked(gomock.Any(), refs(42))
		h.orders.EXPECT().DeleteExpired(gomock.Any(), gomock.Any(), now).Return(int64(0), errors.New("deadlock detected"))

		res, err := uc.Sweep(ctx)

		assertMarked(t, err, commands.ErrDatabaseOperationFailed)
		require.NotNil(t, res)
		assert.Equal(t, refs(42), res.ReleasedSlots)
		assert.Zero(t, res.PurgedOrders)
	})

	t.Run("release failure stops the sweep", func(t *testing.T) {
		h := newHarness(t)
		uc := commands.NewSweepUseCase(h.uow, h.notifier, h.clock, h.cfg)

		h.slots.EXPECT().ReleaseExpired(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))

		res, err := uc.Sweep(ctx)

		assertMarked(t, err, commands.ErrDatabaseOperationFailed)
		assert.Nil(t, res)
	})
}
