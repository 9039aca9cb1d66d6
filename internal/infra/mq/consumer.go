package mq

import (
	"context"
	"errors"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	RoutingPaymentPaid   = "payment.paid"
	RoutingPaymentFailed = "payment.failed"
)

var ErrConsumerClosed = errors.New("consumer closed")

// Consumer reopens its connection when Deliveries is called after the broker
// dropped the previous one.
type Consumer struct {
	url      string
	exchange string
	queue    string
	keys     []string
	prefetch int

	mu     sync.Mutex
	conn   *amqp.Connection
	ch     *amqp.Channel
	closed bool
}

func NewConsumer(url, exchange, queue string, keys []string, prefetch int) (*Consumer, error) {
	c := &Consumer{url: url, exchange: exchange, queue: queue, keys: keys, prefetch: prefetch}
	if err := c.connect(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Consumer) connect() error {
	conn, ch, err := open(c.url, c.exchange)
	if err != nil {
		return err
	}
	if c.prefetch > 0 {
		if err := ch.Qos(c.prefetch, 0, false); err != nil {
			_ = closeAll(conn, ch)
			return fmt.Errorf("set qos: %w", err)
		}
	}
	q, err := ch.QueueDeclare(c.queue, true, false, false, false, nil)
	if err != nil {
		_ = closeAll(conn, ch)
		return fmt.Errorf("declare queue: %w", err)
	}
	for _, rk := range c.keys {
		if err := ch.QueueBind(q.Name, rk, c.exchange, false, nil); err != nil {
			_ = closeAll(conn, ch)
			return fmt.Errorf("bind %s: %w", rk, err)
		}
	}
	c.conn, c.ch, c.queue = conn, ch, q.Name
	return nil
}

func (c *Consumer) Deliveries(ctx context.Context) (<-chan amqp.Delivery, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, ErrConsumerClosed
	}
	if c.ch == nil || c.ch.IsClosed() {
		_ = closeAll(c.conn, c.ch)
		c.conn, c.ch = nil, nil
		if err := c.connect(); err != nil {
			return nil, err
		}
	}
	return c.ch.ConsumeWithContext(ctx, c.queue, "", false, false, false, false, nil)
}

func (c *Consumer) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	err := closeAll(c.conn, c.ch)
	c.conn, c.ch, c.closed = nil, nil, true
	return err
}
