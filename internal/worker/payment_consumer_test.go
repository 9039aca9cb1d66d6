//go:build unit

package worker_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"court-booking/internal/domain/order"
	"court-booking/internal/infra/mq"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/commands"
	"court-booking/internal/worker"
	commandsmock "court-booking/tests/mock/commands"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type recordingAck struct {
	acked    int
	nacked   int
	requeued bool
}

func (a *recordingAck) Ack(uint64, bool) error { a.acked++; return nil }

func (a *recordingAck) Nack(_ uint64, _ bool, requeue bool) error {
	a.nacked++
	a.requeued = requeue
	return nil
}

func (a *recordingAck) Reject(_ uint64, requeue bool) error { return a.Nack(0, false, requeue) }

func delivery(ack *recordingAck, routingKey, body string) amqp.Delivery {
	return amqp.Delivery{Acknowledger: ack, DeliveryTag: 1, RoutingKey: routingKey, Body: []byte(body)}
}

func TestPaymentConsumer_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("paid signal finalizes and acks", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		bookings := commandsmock.NewMockBookingCommands(ctrl)
		consumer := worker.NewPaymentConsumer(nil, bookings)

		code := order.Code(1741858200000123)
		bookings.EXPECT().ConfirmPayment(gomock.Any(), commands.PaymentSignal{
			OrderCode:   code,
			Amount:      300000,
			ProviderRef: "txn-9",
			Paid:        true,
		}).Return(&commands.FinalizeResult{OrderCode: &code, BookingIDs: []int64{1, 2}}, nil)

		ack := &recordingAck{}
		consumer.Handle(ctx, delivery(ack, mq.RoutingPaymentPaid, `{"order_code":1741858200000123,"amount":300000,"provider_ref":"txn-9"}`))

		assert.Equal(t, 1, ack.acked)
		assert.Zero(t, ack.nacked)
	})

	t.Run("failed signal is recorded unpaid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		bookings := commandsmock.NewMockBookingCommands(ctrl)
		consumer := worker.NewPaymentConsumer(nil, bookings)

		bookings.EXPECT().ConfirmPayment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, sig commands.PaymentSignal) (*commands.FinalizeResult, error) {
				assert.False(t, sig.Paid)
				return nil, nil
			})

		ack := &recordingAck{}
		consumer.Handle(ctx, delivery(ack, mq.RoutingPaymentFailed, `{"order_code":17,"amount":1}`))

		assert.Equal(t, 1, ack.acked)
	})

	t.Run("terminal outcomes are acked", func(t *testing.T) {
		for _, target := range []error{
			commands.ErrOrderNotFound,
			commands.ErrOrderExpired,
			commands.ErrSlotConflict,
			commands.ErrUpstreamUnverified,
			commands.ErrCouponRejected,
		} {
			ctrl := gomock.NewController(t)
			bookings := commandsmock.NewMockBookingCommands(ctrl)
			consumer := worker.NewPaymentConsumer(nil, bookings)

			bookings.EXPECT().ConfirmPayment(gomock.Any(), gomock.Any()).
				Return(nil, errs.Mark(errs.New("finalize"), target))

			ack := &recordingAck{}
			consumer.Handle(ctx, delivery(ack, mq.RoutingPaymentPaid, `{"order_code":17}`))

			assert.Equal(t, 1, ack.acked, target.Error())
			assert.Zero(t, ack.nacked, target.Error())
		}
	})

	t.Run("transient failure is requeued", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		bookings := commandsmock.NewMockBookingCommands(ctrl)
		consumer := worker.NewPaymentConsumer(nil, bookings)

		bookings.EXPECT().ConfirmPayment(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errors.New("connection refused"), commands.ErrDatabaseOperationFailed))

		ack := &recordingAck{}
		consumer.Handle(ctx, delivery(ack, mq.RoutingPaymentPaid, `{"order_code":17}`))

		assert.Zero(t, ack.acked)
		assert.Equal(t, 1, ack.nacked)
		assert.True(t, ack.requeued)
	})

	t.Run("malformed messages are dropped", func(t *testing.T) {
		for _, body := range []string{`{not json`, `{"order_code":0}`, `{"order_code":-4}`} {
			ctrl := gomock.NewController(t)
			consumer := worker.NewPaymentConsumer(nil, commandsmock.NewMockBookingCommands(ctrl))

			ack := &recordingAck{}
			consumer.Handle(ctx, delivery(ack, mq.RoutingPaymentPaid, body))

			assert.Equal(t, 1, ack.nacked, body)
			assert.False(t, ack.requeued, body)
		}
	})
}

// scriptedSource hands out one prepared subscription per call, then errors.
type scriptedSource struct {
	mu    sync.Mutex
	steps []func() (<-chan amqp.Delivery, error)
	calls int
}

func (s *scriptedSource) Deliveries(context.Context) (<-chan amqp.Delivery, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if len(s.steps) == 0 {
		return nil, errors.New("broker unreachable")
	}
	next := s.steps[0]
	s.steps = s.steps[1:]
	return next()
}

func (s *scriptedSource) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func closedAfter(ds ...amqp.Delivery) func() (<-chan amqp.Delivery, error) {
	return func() (<-chan amqp.Delivery, error) {
		ch := make(chan amqp.Delivery, len(ds))
		for _, d := range ds {
			ch <- d
		}
		close(ch)
		return ch, nil
	}
}

func TestPaymentConsumer_Run(t *testing.T) {
	t.Run("resubscribes after the channel closes and after a failed subscribe", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		bookings := commandsmock.NewMockBookingCommands(ctrl)

		first, second := &recordingAck{}, &recordingAck{}
		handled := make(chan struct{}, 2)
		bookings.EXPECT().ConfirmPayment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, commands.PaymentSignal) (*commands.FinalizeResult, error) {
				handled <- struct{}{}
				return nil, nil
			}).Times(2)

		src := &scriptedSource{steps: []func() (<-chan amqp.Delivery, error){
			closedAfter(delivery(first, mq.RoutingPaymentFailed, `{"order_code":17}`)),
			func() (<-chan amqp.Delivery, error) { return nil, errors.New("connection refused") },
			closedAfter(delivery(second, mq.RoutingPaymentFailed, `{"order_code":18}`)),
		}}

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			worker.NewPaymentConsumer(src, bookings).WithReconnectWait(time.Millisecond).Run(ctx)
			close(done)
		}()

		for range 2 {
			select {
			case <-handled:
			case <-time.After(2 * time.Second):
				t.Fatal("delivery after resubscribe was not handled")
			}
		}
		cancel()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("consumer did not stop")
		}
		assert.Equal(t, 1, first.acked)
		assert.Equal(t, 1, second.acked)
		assert.GreaterOrEqual(t, src.Calls(), 3)
	})

	t.Run("stops while waiting to resubscribe", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		src := &scriptedSource{}

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			worker.NewPaymentConsumer(src, commandsmock.NewMockBookingCommands(ctrl)).WithReconnectWait(time.Hour).Run(ctx)
			close(done)
		}()

		assert.Eventually(t, func() bool { return src.Calls() == 1 }, time.Second, 5*time.Millisecond)
		cancel()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("consumer did not stop")
		}
	})
}
