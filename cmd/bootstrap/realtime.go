package bootstrap

import (
	"context"
	"log/slog"

	"court-booking/internal/infra/realtime"
	"court-booking/internal/pkg/config"
	"court-booking/internal/usecase/commands"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RealtimeModule = fx.Module("realtime",
	fx.Provide(
		NewRedisClient,
		NewBroker,
		fx.Annotate(
			realtime.NewNotifier,
			fx.As(new(commands.SlotNotifier)),
		),
	),
)

// NewRedisClient returns nil when REDIS_ADDR is unset.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config) (*redis.Client, error) {
	client, err := realtime.NewRedisClient(context.Background(), cfg.Redis)
	if err != nil || client == nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return client, nil
}

func NewBroker(client *redis.Client) realtime.Broker {
	if client == nil {
		slog.Info("Redis not configured, relaying realtime events in process")
		return realtime.NewMemoryBroker()
	}
	return realtime.NewRedisBroker(client)
}
