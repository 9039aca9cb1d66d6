package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"court-booking/internal/domain/order"
	"court-booking/internal/domain/slot"
	"court-booking/internal/infra"
	"court-booking/internal/pkg/clock"
	"court-booking/internal/pkg/config"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const stageOrderEndpoint = "POST /api/orders"

type StageOrderRequest struct {
	CourtFieldID int64   `json:"court_field_id"`
	SlotIDs      []int64 `json:"slot_ids"`
	FullName     string  `json:"full_name"`
	Phone        string  `json:"phone"`
	Note         string  `json:"note"`
	CouponID     *int64  `json:"coupon_id,omitempty"`
	CouponCode   *string `json:"coupon_code,omitempty"`
}

type StageOrderResult struct {
	Order      *order.StagedOrder
	IsReplayed bool
}

type OrderCommands interface {
	StageOrder(ctx context.Context, req StageOrderRequest, userID uuid.UUID, idempotencyKey *uuid.UUID) (*StageOrderResult, error)
	CancelStagedOrder(ctx context.Context, userID uuid.UUID, code order.Code) error
}

type orderUseCaseImpl struct {
	uow      shared.UnitOfWork
	discount DiscountPolicy
	notifier SlotNotifier
	clock    clock.Clock
	cfg      config.ReservationConfig
}

func NewOrderUseCase(
	uow shared.UnitOfWork,
	discount DiscountPolicy,
	notifier SlotNotifier,
	clk clock.Clock,
	cfg config.ReservationConfig,
) OrderCommands {
	return &orderUseCaseImpl{
		uow:      uow,
		discount: discount,
		notifier: notifier,
		clock:    clk,
		cfg:      cfg,
	}
}

func (uc *orderUseCaseImpl) StageOrder(
	ctx context.Context,
	req StageOrderRequest,
	userID uuid.UUID,
	idempotencyKey *uuid.UUID,
) (*StageOrderResult, error) {
	ids, err := normalizeSlotIDs(req.SlotIDs, uc.cfg.MaxSlotsPerRequest)
	if err != nil {
		return nil, err
	}
	req.SlotIDs = ids

	contact, err := order.NewContact(req.FullName, req.Phone)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRequest)
	}
	note, err := order.NewNote(req.Note)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRequest)
	}

	now := uc.clock.Now()
	if idempotencyKey != nil {
		existing, err := uc.claimIdempotency(ctx, *idempotencyKey, userID, requestHash(req), now)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return &StageOrderResult{Order: existing, IsReplayed: true}, nil
		}
	}

	staged, err := uc.stage(ctx, req, userID, contact, note, idempotencyKey, now)
	if err != nil {
		if idempotencyKey != nil {
			uc.releaseIdempotency(ctx, *idempotencyKey, userID)
		}
		return nil, err
	}

	return &StageOrderResult{Order: staged}, nil
}

func (uc *orderUseCaseImpl) stage(
	ctx context.Context,
	req StageOrderRequest,
	userID uuid.UUID,
	contact order.Contact,
	note order.Note,
	idempotencyKey *uuid.UUID,
	now time.Time,
) (*order.StagedOrder, error) {
	var staged *order.StagedOrder
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		field, err := tx.Reads().CourtFieldByID(ctx, req.CourtFieldID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrCourtFieldNotFound
			}
			return err
		}

		// re-stamping locked_at doubles as the ownership check and extends the hold
		held, err := tx.Slots().TouchLocks(ctx, tx.DB(), userID, field.ID, req.SlotIDs, now)
		if err != nil {
			return err
		}
		if len(held) != len(req.SlotIDs) {
			return ErrSlotConflict
		}

		priced, err := uc.discount.Quote(ctx, tx, DiscountRequest{
			CouponID:   req.CouponID,
			CouponCode: req.CouponCode,
			Amount:     slot.Total(held, field.Pricing),
			CourtID:    field.CourtID,
		})
		if err != nil {
			return err
		}

		o, err := order.NewStagedOrder(
			order.NewCode(now),
			userID,
			field.ID,
			req.SlotIDs,
			contact,
			note,
			order.Amounts{
				Original: priced.Quote.Original,
				Discount: priced.Quote.Discount,
				Final:    priced.Quote.Final,
			},
			priced.CouponID,
			now,
			uc.cfg.OrderTTL,
		)
		if err != nil {
			return errs.Mark(err, ErrInvalidRequest)
		}

		if err := tx.Orders().Create(ctx, tx.DB(), o); err != nil {
			return err
		}

		if idempotencyKey != nil {
			if err := tx.Idempotency().UpdateStatusCompleted(ctx, tx.DB(), *idempotencyKey, userID, o.Code()); err != nil {
				return err
			}
		}

		staged = o
		return nil
	})
	if err != nil {
		return nil, mapTxError(err)
	}
	return staged, nil
}

// claimIdempotency returns the previously staged order for a completed key, nil when the
// caller now owns the key, or an error for conflicting reuse.
func (uc *orderUseCaseImpl) claimIdempotency(ctx context.Context, key, userID uuid.UUID, hash string, now time.Time) (*order.StagedOrder, error) {
	var owned bool
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		owned, err = tx.Idempotency().TryInsert(ctx, tx.DB(), key, userID, stageOrderEndpoint, hash, now.Add(uc.cfg.IdempotencyTTL), now)
		return err
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if owned {
		return nil, nil
	}

	existing, err := uc.uow.CommandReads().IdempotencyByKey(ctx, key, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// released between our insert attempt and this read
			return nil, ErrIdempotencyInProgress
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if existing.RequestHash != hash {
		return nil, ErrIdempotencyKeyReused
	}

	switch existing.Status {
	case shared.IdempotencyCompleted:
		if existing.ResultOrderCode == nil {
			return nil, errs.Mark(errs.New("completed idempotency key without order code"), ErrDatabaseOperationFailed)
		}
		o, err := uc.uow.CommandReads().StagedOrderByCode(ctx, *existing.ResultOrderCode)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				// finalized or cancelled since
				return nil, ErrOrderNotFound
			}
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return o, nil
	default:
		return nil, ErrIdempotencyInProgress
	}
}

func (uc *orderUseCaseImpl) releaseIdempotency(ctx context.Context, key, userID uuid.UUID) {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Idempotency().Release(ctx, tx.DB(), key, userID)
	})
	if err != nil {
		slog.Warn("failed to release idempotency key", "key", key.String(), "error", err.Error())
	}
}

func (uc *orderUseCaseImpl) CancelStagedOrder(ctx context.Context, userID uuid.UUID, code order.Code) error {
	var released []*slot.Slot
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := tx.Orders().GetForUpdate(ctx, tx.DB(), code)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrOrderNotFound
			}
			return err
		}
		if !o.IsOwnedBy(userID) {
			return ErrOrderNotFound
		}

		if err := tx.Orders().Delete(ctx, tx.DB(), code); err != nil {
			return err
		}

		released, err = tx.Slots().Unlock(ctx, tx.DB(), userID, o.SlotIDs())
		return err
	})
	if err != nil {
		return mapTxError(err)
	}

	if len(released) > 0 {
		uc.notifier.SlotsUnlocked(ctx, slot.Refs(released))
	}
	return nil
}

func requestHash(req StageOrderRequest) string {
	data, _ := json.Marshal(req)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
