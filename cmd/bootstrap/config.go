package bootstrap

import (
	"court-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(config.LoadConfig),
	ConfigSections,
)

// ConfigSections splits the loaded config into the sections use cases depend on.
var ConfigSections = fx.Provide(
	func(cfg config.Config) config.ReservationConfig { return cfg.Reservation },
	func(cfg config.Config) config.OutboxConfig { return cfg.Outbox },
)
