package bootstrap

import (
	"context"
	"log/slog"

	"court-booking/internal/infra/mq"
	"court-booking/internal/pkg/config"
	"court-booking/internal/usecase/commands"
	"court-booking/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewJobPublisher,
		NewSweeper,
		NewOutboxRelay,
	),
	fx.Invoke(
		startSweeper,
		startOutboxRelay,
		startPaymentConsumer,
	),
)

func NewJobPublisher(lc fx.Lifecycle, cfg config.Config) (commands.JobPublisher, error) {
	if !cfg.RabbitMQ.Enabled() {
		slog.Info("RabbitMQ not configured, outbox events are logged only")
		return worker.LogPublisher{}, nil
	}
	pub, err := mq.NewPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})
	return pub, nil
}

func NewSweeper(sweep commands.SweepCommands, cfg config.ReservationConfig) *worker.Sweeper {
	return worker.NewSweeper(sweep, cfg.SweepInterval)
}

func NewOutboxRelay(outbox commands.OutboxCommands, publisher commands.JobPublisher, cfg config.OutboxConfig) *worker.OutboxRelay {
	return worker.NewOutboxRelay(outbox, publisher, cfg.Interval)
}

func startSweeper(lc fx.Lifecycle, s *worker.Sweeper) {
	runInBackground(lc, s.Run)
}

func startOutboxRelay(lc fx.Lifecycle, r *worker.OutboxRelay) {
	runInBackground(lc, r.Run)
}

func startPaymentConsumer(lc fx.Lifecycle, cfg config.Config, bookings commands.BookingCommands) error {
	if !cfg.RabbitMQ.Enabled() {
		return nil
	}
	consumer, err := mq.NewConsumer(
		cfg.RabbitMQ.URL,
		cfg.RabbitMQ.Exchange,
		cfg.RabbitMQ.PaymentQueue,
		[]string{mq.RoutingPaymentPaid, mq.RoutingPaymentFailed},
		cfg.RabbitMQ.Prefetch,
	)
	if err != nil {
		return err
	}

	pc := worker.NewPaymentConsumer(consumer, bookings)
	runInBackground(lc, pc.Run)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return consumer.Close()
		},
	})
	return nil
}

// runInBackground starts fn on app start and cancels it on stop, waiting for it to return.
func runInBackground(lc fx.Lifecycle, fn func(ctx context.Context)) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				fn(ctx)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return nil
		},
	})
}
