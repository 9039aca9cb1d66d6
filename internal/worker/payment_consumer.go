package worker

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"court-booking/internal/domain/order"
	"court-booking/internal/infra/mq"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/commands"

	amqp "github.com/rabbitmq/amqp091-go"
)

type DeliverySource interface {
	Deliveries(ctx context.Context) (<-chan amqp.Delivery, error)
}

type paymentMessage struct {
	OrderCode   int64  `json:"order_code"`
	Amount      int64  `json:"amount"`
	ProviderRef string `json:"provider_ref"`
}

const (
	defaultReconnectWait = time.Second
	maxReconnectWait     = 30 * time.Second
)

// PaymentConsumer feeds payment.paid / payment.failed signals into the booking finalizer.
type PaymentConsumer struct {
	source        DeliverySource
	bookings      commands.BookingCommands
	reconnectWait time.Duration
}

func NewPaymentConsumer(source DeliverySource, bookings commands.BookingCommands) *PaymentConsumer {
	return &PaymentConsumer{source: source, bookings: bookings, reconnectWait: defaultReconnectWait}
}

// WithReconnectWait sets the first resubscribe delay; later ones double up to maxReconnectWait.
func (c *PaymentConsumer) WithReconnectWait(d time.Duration) *PaymentConsumer {
	c.reconnectWait = d
	return c
}

// Run consumes until ctx is cancelled, resubscribing with backoff whenever
// the delivery channel closes or the broker cannot be reached.
func (c *PaymentConsumer) Run(ctx context.Context) {
	wait := c.reconnectWait
	for {
		deliveries, err := c.source.Deliveries(ctx)
		if err != nil {
			slog.Error("Payment consumer cannot subscribe", "error", err, "retry_in", wait)
		} else {
			wait = c.reconnectWait
			if !c.drain(ctx, deliveries) {
				return
			}
			slog.Warn("Payment deliveries channel closed, resubscribing", "retry_in", wait)
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(wait):
		}
		wait = min(wait*2, maxReconnectWait)
	}
}

// drain handles deliveries until the channel closes (true) or ctx ends (false).
func (c *PaymentConsumer) drain(ctx context.Context, deliveries <-chan amqp.Delivery) bool {
	for {
		select {
		case <-ctx.Done():
			return false
		case d, ok := <-deliveries:
			if !ok {
				return true
			}
			c.Handle(ctx, d)
		}
	}
}

// Handle acks terminal outcomes and requeues transient failures.
func (c *PaymentConsumer) Handle(ctx context.Context, d amqp.Delivery) {
	var msg paymentMessage
	if err := json.Unmarshal(d.Body, &msg); err != nil {
		slog.Warn("Discarding malformed payment message", "error", err, "routing_key", d.RoutingKey)
		_ = d.Nack(false, false)
		return
	}
	code, err := order.ParseCode(msg.OrderCode)
	if err != nil {
		slog.Warn("Discarding payment message with invalid order code", "order_code", msg.OrderCode)
		_ = d.Nack(false, false)
		return
	}

	res, err := c.bookings.ConfirmPayment(ctx, commands.PaymentSignal{
		OrderCode:   code,
		Amount:      msg.Amount,
		ProviderRef: msg.ProviderRef,
		Paid:        d.RoutingKey == mq.RoutingPaymentPaid,
	})
	switch {
	case err == nil:
		if res != nil {
			slog.Info("Order finalized from payment signal",
				"order_code", msg.OrderCode,
				"bookings", len(res.BookingIDs),
			)
		}
		_ = d.Ack(false)
	case isTerminal(err):
		slog.Warn("Payment signal not applied", "error", err, "order_code", msg.OrderCode)
		_ = d.Ack(false)
	default:
		slog.Error("Payment signal failed, requeueing", "error", err, "order_code", msg.OrderCode)
		_ = d.Nack(false, true)
	}
}

func isTerminal(err error) bool {
	for _, target := range []error{
		commands.ErrSlotConflict,
		commands.ErrOrderNotFound,
		commands.ErrOrderExpired,
		commands.ErrUpstreamUnverified,
		commands.ErrCouponRejected,
	} {
		if errs.Is(err, target) {
			return true
		}
	}
	return false
}
