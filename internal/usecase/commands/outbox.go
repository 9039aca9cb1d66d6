package commands

import (
	"context"
	"log/slog"
	"time"

	"court-booking/internal/pkg/clock"
	"court-booking/internal/pkg/config"
	"court-booking/internal/usecase/shared"
)

const maxOutboxBackoff = 10 * time.Minute

type JobPublisher interface {
	Publish(ctx context.Context, topic, messageID string, payload []byte) error
}

type OutboxResult struct {
	Sent    int
	Retried int
	Failed  int
}

type OutboxCommands interface {
	// RelayDue publishes every due queued job. Claimed rows stay locked until the
	// statuses are written, so concurrent relays never publish the same job twice.
	RelayDue(ctx context.Context, publisher JobPublisher) (*OutboxResult, error)
}

type outboxUseCaseImpl struct {
	uow         shared.UnitOfWork
	clock       clock.Clock
	batchSize   int32
	maxAttempts int32
	baseBackoff time.Duration
}

func NewOutboxUseCase(uow shared.UnitOfWork, clk clock.Clock, cfg config.OutboxConfig) OutboxCommands {
	return &outboxUseCaseImpl{
		uow:         uow,
		clock:       clk,
		batchSize:   cfg.BatchSize,
		maxAttempts: cfg.MaxAttempts,
		baseBackoff: cfg.Interval,
	}
}

func (uc *outboxUseCaseImpl) RelayDue(ctx context.Context, publisher JobPublisher) (*OutboxResult, error) {
	var res OutboxResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res = OutboxResult{}
		now := uc.clock.Now()

		jobs, err := tx.Notifications().ClaimDue(ctx, tx.DB(), now, uc.batchSize)
		if err != nil {
			return err
		}

		for _, job := range jobs {
			status, runAt, lastErr := shared.JobStatusSent, now, (*string)(nil)

			if pubErr := publisher.Publish(ctx, job.Topic, job.ID.String(), job.Payload); pubErr != nil {
				msg := pubErr.Error()
				lastErr = &msg
				if job.Attempts+1 >= uc.maxAttempts {
					status = shared.JobStatusFailed
					res.Failed++
				} else {
					status = shared.JobStatusQueued
					runAt = now.Add(uc.backoff(job.Attempts))
					res.Retried++
				}
				slog.Warn("Failed to publish outbox job",
					"error", pubErr,
					"job_id", job.ID,
					"topic", job.Topic,
					"attempts", job.Attempts+1,
					"status", status,
				)
			} else {
				res.Sent++
			}

			if err := tx.Notifications().UpdateJobStatus(ctx, tx.DB(), job.ID, status, runAt, lastErr); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, mapTxError(err)
	}
	return &res, nil
}

// backoff doubles per attempt from the relay interval, capped.
func (uc *outboxUseCaseImpl) backoff(attempts int32) time.Duration {
	d := uc.baseBackoff
	if d <= 0 {
		d = time.Second
	}
	for i := int32(0); i < attempts; i++ {
		d *= 2
		if d >= maxOutboxBackoff {
			return maxOutboxBackoff
		}
	}
	return d
}
