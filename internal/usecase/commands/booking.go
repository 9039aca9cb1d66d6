package commands

import (
	"context"
	"encoding/json"
	"time"

	"court-booking/internal/domain/booking"
	"court-booking/internal/domain/coupon"
	"court-booking/internal/domain/order"
	"court-booking/internal/domain/slot"
	"court-booking/internal/infra"
	"court-booking/internal/pkg/clock"
	"court-booking/internal/pkg/config"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	jobKindBooking        = "booking"
	TopicBookingConfirmed = "booking.confirmed"
)

type FinalizeResult struct {
	OrderCode  *order.Code
	BookingIDs []int64
	SlotIDs    []int64
}

type PaymentSignal struct {
	OrderCode   order.Code
	Amount      int64
	ProviderRef string
	Paid        bool
}

type DirectBookRequest struct {
	SlotIDs []int64
	Note    string
}

type BookingCommands interface {
	// Finalize is the client's return from checkout.
	Finalize(ctx context.Context, userID uuid.UUID, code order.Code) (*FinalizeResult, error)
	// FinalizePaid is driven by the payment-confirmation signal.
	FinalizePaid(ctx context.Context, code order.Code) (*FinalizeResult, error)
	// ConfirmPayment records a provider signal and finalizes the order when it was paid.
	ConfirmPayment(ctx context.Context, sig PaymentSignal) (*FinalizeResult, error)
	DirectBook(ctx context.Context, userID uuid.UUID, req DirectBookRequest) (*FinalizeResult, error)
}

type bookingUseCaseImpl struct {
	uow      shared.UnitOfWork
	payments PaymentVerifier
	notifier SlotNotifier
	clock    clock.Clock
	maxSlots int
}

func NewBookingUseCase(
	uow shared.UnitOfWork,
	payments PaymentVerifier,
	notifier SlotNotifier,
	clk clock.Clock,
	cfg config.ReservationConfig,
) BookingCommands {
	return &bookingUseCaseImpl{
		uow:      uow,
		payments: payments,
		notifier: notifier,
		clock:    clk,
		maxSlots: cfg.MaxSlotsPerRequest,
	}
}

func (uc *bookingUseCaseImpl) Finalize(ctx context.Context, userID uuid.UUID, code order.Code) (*FinalizeResult, error) {
	o, err := uc.lookup(ctx, code)
	if err != nil {
		return nil, err
	}
	if err := o.CheckFinalizable(userID, uc.clock.Now()); err != nil {
		if errs.Is(err, order.ErrOrderHasExpired) {
			return nil, ErrOrderExpired
		}
		return nil, ErrOrderNotFound
	}

	if err := uc.verifyPayment(ctx, o); err != nil {
		return nil, err
	}
	return uc.finalize(ctx, code)
}

func (uc *bookingUseCaseImpl) FinalizePaid(ctx context.Context, code order.Code) (*FinalizeResult, error) {
	o, err := uc.lookup(ctx, code)
	if err != nil {
		return nil, err
	}
	if o.IsExpired(uc.clock.Now()) {
		return nil, ErrOrderExpired
	}

	if err := uc.verifyPayment(ctx, o); err != nil {
		return nil, err
	}
	return uc.finalize(ctx, code)
}

func (uc *bookingUseCaseImpl) ConfirmPayment(ctx context.Context, sig PaymentSignal) (*FinalizeResult, error) {
	status := shared.PaymentFailed
	if sig.Paid {
		status = shared.PaymentPaid
	}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Payments().Record(ctx, tx.DB(), shared.PaymentConfirmation{
			OrderCode:   sig.OrderCode,
			ProviderRef: sig.ProviderRef,
			Amount:      sig.Amount,
			Status:      status,
			ReceivedAt:  uc.clock.Now(),
		})
	})
	if err != nil {
		return nil, mapTxError(err)
	}

	if !sig.Paid {
		return nil, nil
	}
	return uc.FinalizePaid(ctx, sig.OrderCode)
}

// DirectBook books available slots without staging or payment. Any slot that is pending
// or booked fails the whole request.
func (uc *bookingUseCaseImpl) DirectBook(ctx context.Context, userID uuid.UUID, req DirectBookRequest) (*FinalizeResult, error) {
	ids, err := normalizeSlotIDs(req.SlotIDs, uc.maxSlots)
	if err != nil {
		return nil, err
	}
	note, err := order.NewNote(req.Note)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRequest)
	}

	now := uc.clock.Now()
	var (
		booked     []*slot.Slot
		bookingIDs []int64
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rows, err := tx.Slots().Book(ctx, tx.DB(), ids, nil)
		if err != nil {
			return err
		}
		if len(rows) != len(ids) {
			return ErrSlotConflict
		}

		bookingIDs, err = uc.createBookings(ctx, tx, userID, rows, note.String(), nil, now)
		if err != nil {
			return err
		}
		booked = rows
		return nil
	})
	if err != nil {
		return nil, mapTxError(err)
	}

	uc.notifier.SlotsBooked(ctx, slot.Refs(booked))
	return &FinalizeResult{BookingIDs: bookingIDs, SlotIDs: ids}, nil
}

func (uc *bookingUseCaseImpl) lookup(ctx context.Context, code order.Code) (*order.StagedOrder, error) {
	o, err := uc.uow.CommandReads().StagedOrderByCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return o, nil
}

func (uc *bookingUseCaseImpl) verifyPayment(ctx context.Context, o *order.StagedOrder) error {
	ok, err := uc.payments.Verify(ctx, o.Code(), o.Amounts().Final)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !ok {
		return ErrUpstreamUnverified
	}
	return nil
}

// finalize re-reads the order under a row lock so that concurrent signals for the same
// order serialize; the loser finds no order.
func (uc *bookingUseCaseImpl) finalize(ctx context.Context, code order.Code) (*FinalizeResult, error) {
	now := uc.clock.Now()
	var (
		booked     []*slot.Slot
		bookingIDs []int64
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := tx.Orders().GetForUpdate(ctx, tx.DB(), code)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrOrderNotFound
			}
			return err
		}
		if o.IsExpired(now) {
			return ErrOrderExpired
		}

		holder := o.UserID()
		rows, err := tx.Slots().Book(ctx, tx.DB(), o.SlotIDs(), &holder)
		if err != nil {
			return err
		}
		if len(rows) != len(o.SlotIDs()) {
			return ErrSlotConflict
		}

		orderCode := code.Int64()
		bookingIDs, err = uc.createBookings(ctx, tx, holder, rows, o.Note().String(), &orderCode, now)
		if err != nil {
			return err
		}

		if couponID := o.CouponID(); couponID != nil {
			if err := tx.Coupons().IncrementUsage(ctx, tx.DB(), *couponID); err != nil {
				if errs.Is(err, coupon.ErrUsageExhausted) {
					return errs.Mark(coupon.ErrUsageExhausted, ErrCouponRejected)
				}
				return err
			}
		}

		if err := tx.Orders().Delete(ctx, tx.DB(), code); err != nil {
			return err
		}

		payload, err := json.Marshal(map[string]any{
			"order_code":  orderCode,
			"user_id":     holder,
			"booking_ids": bookingIDs,
			"amount":      o.Amounts().Final,
		})
		if err != nil {
			return err
		}
		if err := tx.Notifications().CreateJob(ctx, tx.DB(), jobKindBooking, TopicBookingConfirmed, payload, now); err != nil {
			return err
		}

		booked = rows
		return nil
	})
	if err != nil {
		return nil, mapTxError(err)
	}

	uc.notifier.SlotsBooked(ctx, slot.Refs(booked))

	ids := make([]int64, 0, len(booked))
	for _, s := range booked {
		ids = append(ids, s.ID())
	}
	return &FinalizeResult{OrderCode: &code, BookingIDs: bookingIDs, SlotIDs: ids}, nil
}

func (uc *bookingUseCaseImpl) createBookings(
	ctx context.Context,
	tx shared.Tx,
	userID uuid.UUID,
	slots []*slot.Slot,
	note string,
	orderCode *int64,
	now time.Time,
) ([]int64, error) {
	pricing := map[int64]slot.PeriodPricing{}
	ids := make([]int64, 0, len(slots))
	for _, s := range slots {
		p, ok := pricing[s.CourtFieldID()]
		if !ok {
			field, err := tx.Reads().CourtFieldByID(ctx, s.CourtFieldID())
			if err != nil {
				return nil, err
			}
			p = field.Pricing
			pricing[s.CourtFieldID()] = p
		}

		b, err := booking.NewFromSlot(userID, s, note, s.EffectivePrice(p), orderCode, now)
		if err != nil {
			return nil, err
		}
		id, err := tx.Bookings().Create(ctx, tx.DB(), b)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
