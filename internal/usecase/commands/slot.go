package commands

import (
	"context"
	"slices"
	"time"

	"court-booking/internal/domain/slot"
	"court-booking/internal/infra"
	"court-booking/internal/pkg/clock"
	"court-booking/internal/pkg/config"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type LockResult struct {
	SlotIDs  []int64
	LockedAt time.Time
}

type UnlockResult struct {
	Released []int64
}

type SlotCommands interface {
	LockSlots(ctx context.Context, userID uuid.UUID, slotIDs []int64) (*LockResult, error)
	UnlockSlots(ctx context.Context, userID uuid.UUID, slotIDs []int64) (*UnlockResult, error)
	SeedSlots(ctx context.Context, courtFieldID int64, from time.Time, days int) (int, error)
}

type slotUseCaseImpl struct {
	uow      shared.UnitOfWork
	notifier SlotNotifier
	clock    clock.Clock
	maxSlots int
}

func NewSlotUseCase(uow shared.UnitOfWork, notifier SlotNotifier, clk clock.Clock, cfg config.ReservationConfig) SlotCommands {
	return &slotUseCaseImpl{
		uow:      uow,
		notifier: notifier,
		clock:    clk,
		maxSlots: cfg.MaxSlotsPerRequest,
	}
}

// LockSlots is all-or-nothing: the bulk update is followed by a re-read, and any slot
// not held by userID afterwards rolls the whole transaction back.
func (uc *slotUseCaseImpl) LockSlots(ctx context.Context, userID uuid.UUID, slotIDs []int64) (*LockResult, error) {
	ids, err := normalizeSlotIDs(slotIDs, uc.maxSlots)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	var locked []*slot.Slot
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rows, lerr := tx.Slots().Lock(ctx, tx.DB(), userID, ids, now)
		if lerr != nil {
			return lerr
		}

		held, lerr := tx.Slots().CountHeldBy(ctx, tx.DB(), userID, ids)
		if lerr != nil {
			return lerr
		}
		if held != int64(len(ids)) {
			return ErrSlotConflict
		}

		locked = rows
		return nil
	})
	if err != nil {
		return nil, mapTxError(err)
	}

	uc.notifier.SlotsLocked(ctx, userID, slot.Refs(locked))

	return &LockResult{SlotIDs: ids, LockedAt: now}, nil
}

// UnlockSlots releases only what userID holds. Other slots in the request are ignored.
func (uc *slotUseCaseImpl) UnlockSlots(ctx context.Context, userID uuid.UUID, slotIDs []int64) (*UnlockResult, error) {
	ids, err := normalizeSlotIDs(slotIDs, uc.maxSlots)
	if err != nil {
		return nil, err
	}

	var released []*slot.Slot
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rows, uerr := tx.Slots().Unlock(ctx, tx.DB(), userID, ids)
		if uerr != nil {
			return uerr
		}
		released = rows
		return nil
	})
	if err != nil {
		return nil, mapTxError(err)
	}

	if len(released) > 0 {
		uc.notifier.SlotsUnlocked(ctx, slot.Refs(released))
	}

	out := make([]int64, 0, len(released))
	for _, s := range released {
		out = append(out, s.ID())
	}
	slices.Sort(out)
	return &UnlockResult{Released: out}, nil
}

// SeedSlots creates the hourly grid for days starting at from. Existing slots are kept,
// so the count returned only covers new rows.
func (uc *slotUseCaseImpl) SeedSlots(ctx context.Context, courtFieldID int64, from time.Time, days int) (int, error) {
	if days <= 0 {
		return 0, errs.Mark(errs.New("days must be positive"), ErrInvalidRequest)
	}

	field, err := uc.uow.CommandReads().CourtFieldByID(ctx, courtFieldID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return 0, ErrCourtFieldNotFound
		}
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	slots, err := slot.GenerateDays(field.ID, from, days, field.Pricing)
	if err != nil {
		return 0, errs.Mark(err, ErrInvalidRequest)
	}

	created := 0
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created = 0
		for _, s := range slots {
			ok, ierr := tx.Slots().Insert(ctx, tx.DB(), s)
			if ierr != nil {
				return ierr
			}
			if ok {
				created++
			}
		}
		return nil
	})
	if err != nil {
		return 0, mapTxError(err)
	}
	return created, nil
}

// normalizeSlotIDs dedupes and sorts ids, which also fixes the row lock order.
func normalizeSlotIDs(ids []int64, maxSlots int) ([]int64, error) {
	if len(ids) == 0 {
		return nil, errs.Mark(errs.New("slot ids are required"), ErrInvalidRequest)
	}

	out := slices.Clone(ids)
	slices.Sort(out)
	out = slices.Compact(out)

	if maxSlots > 0 && len(out) > maxSlots {
		return nil, errs.Mark(errs.Newf("at most %d slots per request", maxSlots), ErrInvalidRequest)
	}
	if out[0] <= 0 {
		return nil, errs.Mark(errs.New("slot ids must be positive"), ErrInvalidRequest)
	}
	return out, nil
}

// mapTxError keeps usecase sentinels and marks everything else as a database failure.
func mapTxError(err error) error {
	for _, sentinel := range []error{
		ErrInvalidRequest,
		ErrSlotConflict,
		ErrCourtFieldNotFound,
		ErrOrderNotFound,
		ErrOrderExpired,
		ErrCouponNotFound,
		ErrCouponRejected,
	} {
		if errs.Is(err, sentinel) {
			return err
		}
	}
	if infra.IsKind(err, infra.KindConflict) {
		return errs.Mark(err, ErrSlotConflict)
	}
	return errs.Mark(err, ErrDatabaseOperationFailed)
}
