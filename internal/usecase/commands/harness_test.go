//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"court-booking/internal/domain/slot"
	"court-booking/internal/infra"
	"court-booking/internal/pkg/clock"
	"court-booking/internal/pkg/config"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/shared"
	commandsmock "court-booking/tests/mock/commands"
	sharedmock "court-booking/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	now   = time.Date(2025, 3, 13, 9, 30, 0, 0, time.UTC)
	day   = time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	alice = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	bob   = uuid.MustParse("22222222-2222-2222-2222-222222222222")

	testPricing = slot.PeriodPricing{Morning: 100000, Lunch: 120000, Evening: 200000}
	testField   = &shared.CourtFieldSnapshot{ID: 7, CourtID: 3, Name: "Field A", Pricing: testPricing}
)

// harness runs every Within callback against one mocked transaction.
type harness struct {
	ctrl     *gomock.Controller
	clock    *clock.MockClock
	cfg      config.ReservationConfig
	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	reads    *sharedmock.MockCommandReads
	slots    *sharedmock.MockSlotRepository
	orders   *sharedmock.MockOrderRepository
	bookings *sharedmock.MockBookingRepository
	coupons  *sharedmock.MockCouponRepository
	idem     *sharedmock.MockIdempotencyRepository
	jobs     *sharedmock.MockNotificationRepository
	payments *sharedmock.MockPaymentRepository
	notifier *commandsmock.MockSlotNotifier
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)
	h := &harness{
		ctrl:     ctrl,
		clock:    clock.NewMockClock(now),
		cfg:      config.NewTestConfig().Reservation,
		uow:      sharedmock.NewMockUnitOfWork(ctrl),
		tx:       sharedmock.NewMockTx(ctrl),
		reads:    sharedmock.NewMockCommandReads(ctrl),
		slots:    sharedmock.NewMockSlotRepository(ctrl),
		orders:   sharedmock.NewMockOrderRepository(ctrl),
		bookings: sharedmock.NewMockBookingRepository(ctrl),
		coupons:  sharedmock.NewMockCouponRepository(ctrl),
		idem:     sharedmock.NewMockIdempotencyRepository(ctrl),
		jobs:     sharedmock.NewMockNotificationRepository(ctrl),
		payments: sharedmock.NewMockPaymentRepository(ctrl),
		notifier: commandsmock.NewMockSlotNotifier(ctrl),
	}

	h.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, h.tx)
		}).AnyTimes()
	h.uow.EXPECT().CommandReads().Return(h.reads).AnyTimes()

	h.tx.EXPECT().DB().Return(nil).AnyTimes()
	h.tx.EXPECT().Reads().Return(h.reads).AnyTimes()
	h.tx.EXPECT().Slots().Return(h.slots).AnyTimes()
	h.tx.EXPECT().Orders().Return(h.orders).AnyTimes()
	h.tx.EXPECT().Bookings().Return(h.bookings).AnyTimes()
	h.tx.EXPECT().Coupons().Return(h.coupons).AnyTimes()
	h.tx.EXPECT().Idempotency().Return(h.idem).AnyTimes()
	h.tx.EXPECT().Notifications().Return(h.jobs).AnyTimes()
	h.tx.EXPECT().Payments().Return(h.payments).AnyTimes()
	return h
}

func notFound(what string) error {
	return infra.WrapRepoErr(what+" not found", errors.New("no rows in result set"), infra.KindNotFound)
}

func slotAt(t *testing.T, id int64, hour int, price int64) *slot.Slot {
	t.Helper()
	s, err := slot.ReconstructSlot(id, testField.ID, day, slot.MustTimeOfDay(hour, 0), slot.MustTimeOfDay(hour+1, 0), price, slot.StateAvailable, nil, nil)
	require.NoError(t, err)
	return s
}

func heldSlot(t *testing.T, id int64, hour int, price int64, holder uuid.UUID) *slot.Slot {
	t.Helper()
	s := slotAt(t, id, hour, price)
	require.NoError(t, s.Lock(holder, now))
	return s
}

func refs(ids ...int64) []slot.Ref {
	out := make([]slot.Ref, 0, len(ids))
	for _, id := range ids {
		out = append(out, slot.Ref{ID: id, CourtFieldID: testField.ID})
	}
	return out
}

// assertMarked matches sentinels attached with errs.Mark, which errors.Is does not see.
func assertMarked(t *testing.T, err, target error) {
	t.Helper()
	assert.Truef(t, errs.Is(err, target), "want %v in chain, got %v", target, err)
}
