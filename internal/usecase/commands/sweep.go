package commands

import (
	"context"
	"time"

	"court-booking/internal/domain/slot"
	"court-booking/internal/pkg/clock"
	"court-booking/internal/pkg/config"
	"court-booking/internal/usecase/shared"
)

type SweepResult struct {
	ReleasedSlots  []slot.Ref
	PurgedOrders   int64
	PurgedIdemKeys int64
}

type SweepCommands interface {
	// ReleaseExpiredLocks reverts every pending slot locked before now-LockTTL.
	ReleaseExpiredLocks(ctx context.Context) ([]slot.Ref, error)
	// PurgeExpired deletes staged orders and idempotency keys past their expiry.
	PurgeExpired(ctx context.Context) (orders, keys int64, err error)
	Sweep(ctx context.Context) (*SweepResult, error)
}

type sweepUseCaseImpl struct {
	uow      shared.UnitOfWork
	notifier SlotNotifier
	clock    clock.Clock
	lockTTL  time.Duration
}

func NewSweepUseCase(uow shared.UnitOfWork, notifier SlotNotifier, clk clock.Clock, cfg config.ReservationConfig) SweepCommands {
	return &sweepUseCaseImpl{
		uow:      uow,
		notifier: notifier,
		clock:    clk,
		lockTTL:  cfg.LockTTL,
	}
}

func (uc *sweepUseCaseImpl) ReleaseExpiredLocks(ctx context.Context) ([]slot.Ref, error) {
	cutoff := uc.clock.Now().Add(-uc.lockTTL)

	var released []*slot.Slot
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// single conditional UPDATE: a slot re-locked since the cutoff no longer matches
		rows, err := tx.Slots().ReleaseExpired(ctx, tx.DB(), cutoff)
		if err != nil {
			return err
		}
		released = rows
		return nil
	})
	if err != nil {
		return nil, mapTxError(err)
	}

	refs := slot.Refs(released)
	if len(refs) > 0 {
		uc.notifier.SlotsUnlocked(ctx, refs)
	}
	return refs, nil
}

func (uc *sweepUseCaseImpl) PurgeExpired(ctx context.Context) (int64, int64, error) {
	now := uc.clock.Now()

	var orders, keys int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Orders().DeleteExpired(ctx, tx.DB(), now)
		if err != nil {
			return err
		}
		orders = n

		n, err = tx.Idempotency().DeleteExpired(ctx, tx.DB(), now)
		if err != nil {
			return err
		}
		keys = n
		return nil
	})
	if err != nil {
		return 0, 0, mapTxError(err)
	}
	return orders, keys, nil
}

// Sweep runs both passes. Lock release goes first and is reported even when the purge fails.
func (uc *sweepUseCaseImpl) Sweep(ctx context.Context) (*SweepResult, error) {
	refs, err := uc.ReleaseExpiredLocks(ctx)
	if err != nil {
		return nil, err
	}

	res := &SweepResult{ReleasedSlots: refs}
	orders, keys, err := uc.PurgeExpired(ctx)
	if err != nil {
		return res, err
	}
	res.PurgedOrders = orders
	res.PurgedIdemKeys = keys
	return res, nil
}
