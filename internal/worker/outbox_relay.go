package worker

import (
	"context"
	"log/slog"
	"time"

	"court-booking/internal/usecase/commands"
)

type OutboxRelay struct {
	outbox    commands.OutboxCommands
	publisher commands.JobPublisher
	interval  time.Duration
}

func NewOutboxRelay(outbox commands.OutboxCommands, publisher commands.JobPublisher, interval time.Duration) *OutboxRelay {
	return &OutboxRelay{outbox: outbox, publisher: publisher, interval: interval}
}

func (r *OutboxRelay) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Tick(ctx)
		}
	}
}

func (r *OutboxRelay) Tick(ctx context.Context) {
	res, err := r.outbox.RelayDue(ctx, r.publisher)
	if err != nil {
		slog.Error("Outbox relay failed", "error", err)
		return
	}
	if res.Sent+res.Retried+res.Failed > 0 {
		slog.Info("Outbox relay completed", "sent", res.Sent, "retried", res.Retried, "failed", res.Failed)
	}
}

// LogPublisher stands in for the message bus when RabbitMQ is not configured.
type LogPublisher struct{}

func (LogPublisher) Publish(_ context.Context, topic, messageID string, payload []byte) error {
	slog.Info("Outbox event", "topic", topic, "message_id", messageID, "payload", string(payload))
	return nil
}
