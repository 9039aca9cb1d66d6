package repository

import (
	"context"
	"time"

	"court-booking/internal/domain/slot"
	"court-booking/internal/infra"
	"court-booking/internal/infra/repository/converter"
	sqlc "court-booking/internal/infra/sqlc/generated"
	"court-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type SlotWriteQueries interface {
	LockSlots(ctx context.Context, db sqlc.DBTX, arg sqlc.LockSlotsParams) ([]sqlc.Slots, error)
	CountSlotsHeldBy(ctx context.Context, db sqlc.DBTX, arg sqlc.CountSlotsHeldByParams) (int64, error)
	UnlockSlots(ctx context.Context, db sqlc.DBTX, arg sqlc.UnlockSlotsParams) ([]sqlc.Slots, error)
	TouchSlotLocks(ctx context.Context, db sqlc.DBTX, arg sqlc.TouchSlotLocksParams) ([]sqlc.Slots, error)
	ReleaseExpiredLocks(ctx context.Context, db sqlc.DBTX, cutoff pgtype.Timestamptz) ([]sqlc.Slots, error)
	BookSlots(ctx context.Context, db sqlc.DBTX, arg sqlc.BookSlotsParams) ([]sqlc.Slots, error)
	InsertSlot(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertSlotParams) (int64, error)
}

type SlotRepository struct {
	queries SlotWriteQueries
	db      sqlc.DBTX
}

func NewSlotRepository(queries SlotWriteQueries, db sqlc.DBTX) *SlotRepository {
	return &SlotRepository{
		queries: queries,
		db:      db,
	}
}

// Lock stamps every slot in ids that is available or already held by userID.
// Rows held by someone else or booked are left untouched and omitted from the result.
func (r *SlotRepository) Lock(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, ids []int64, now time.Time) ([]*slot.Slot, error) {
	rows, err := r.queries.LockSlots(ctx, tx, sqlc.LockSlotsParams{
		UserID:   userID,
		LockedAt: pgconv.TimeToPgtype(now),
		Ids:      ids,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock slots", err)
	}
	return toSlots(rows)
}

func (r *SlotRepository) CountHeldBy(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, ids []int64) (int64, error) {
	n, err := r.queries.CountSlotsHeldBy(ctx, tx, sqlc.CountSlotsHeldByParams{Ids: ids, UserID: userID})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count held slots", err)
	}
	return n, nil
}

func (r *SlotRepository) Unlock(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, ids []int64) ([]*slot.Slot, error) {
	rows, err := r.queries.UnlockSlots(ctx, tx, sqlc.UnlockSlotsParams{Ids: ids, UserID: userID})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to unlock slots", err)
	}
	return toSlots(rows)
}

func (r *SlotRepository) TouchLocks(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, courtFieldID int64, ids []int64, now time.Time) ([]*slot.Slot, error) {
	rows, err := r.queries.TouchSlotLocks(ctx, tx, sqlc.TouchSlotLocksParams{
		LockedAt:     pgconv.TimeToPgtype(now),
		Ids:          ids,
		CourtFieldID: courtFieldID,
		UserID:       userID,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to refresh slot locks", err)
	}
	return toSlots(rows)
}

// ReleaseExpired reverts pending slots whose locked_at is strictly before cutoff.
func (r *SlotRepository) ReleaseExpired(ctx context.Context, tx sqlc.DBTX, cutoff time.Time) ([]*slot.Slot, error) {
	rows, err := r.queries.ReleaseExpiredLocks(ctx, tx, pgconv.TimeToPgtype(cutoff))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to release expired locks", err)
	}
	return toSlots(rows)
}

// Book moves slots to booked. A nil holder only books available slots.
func (r *SlotRepository) Book(ctx context.Context, tx sqlc.DBTX, ids []int64, holder *uuid.UUID) ([]*slot.Slot, error) {
	rows, err := r.queries.BookSlots(ctx, tx, sqlc.BookSlotsParams{
		Ids:    ids,
		Holder: pgconv.UUIDPtrToPgtype(holder),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to book slots", err)
	}
	return toSlots(rows)
}

// Insert reports false when the slot already exists for that field, day and start.
func (r *SlotRepository) Insert(ctx context.Context, tx sqlc.DBTX, s *slot.Slot) (bool, error) {
	n, err := r.queries.InsertSlot(ctx, tx, converter.SlotToInsertParams(s))
	if err != nil {
		return false, infra.WrapRepoErr("failed to insert slot", err)
	}
	return n > 0, nil
}

func toSlots(rows []sqlc.Slots) ([]*slot.Slot, error) {
	slots, err := converter.SlotsFromRows(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert slot rows", err)
	}
	return slots, nil
}
