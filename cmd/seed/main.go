package main

import (
	"context"
	"log/slog"
	"os"
	"slices"
	"time"

	"court-booking/internal/handler/middleware"
	"court-booking/internal/infra/db"
	"court-booking/internal/infra/readstore"
	"court-booking/internal/infra/realtime"
	sqlc "court-booking/internal/infra/sqlc/generated"
	"court-booking/internal/infra/uow"
	"court-booking/internal/pkg/clock"
	"court-booking/internal/pkg/config"
	"court-booking/internal/usecase/commands"
	"court-booking/internal/usecase/queries"

	"github.com/kelseyhightower/envconfig"
)

type seedConfig struct {
	Days        int     `envconfig:"SEED_DAYS" default:"14"`
	CourtFields []int64 `envconfig:"SEED_COURT_FIELDS"`
}

func main() {
	if err := run(); err != nil {
		slog.Error("Seeding failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	var seed seedConfig
	if err := envconfig.Process("", &seed); err != nil {
		return err
	}
	middleware.NewLogger(cfg.Log)

	ctx := context.Background()
	pool, cleanup, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer cleanup()

	q := sqlc.New()
	clk := clock.NewRealClock()
	slotQueries := queries.NewSlotQueries(readstore.NewSlotReadStore(q, pool))
	slotCommands := commands.NewSlotUseCase(
		uow.NewPostgresUoW(pool, q),
		realtime.NewNotifier(realtime.NewMemoryBroker()),
		clk,
		cfg.Reservation,
	)

	fields, err := slotQueries.ListCourtFields(ctx)
	if err != nil {
		return err
	}

	from := clk.Now().In(time.UTC)
	for _, f := range fields {
		if len(seed.CourtFields) > 0 && !slices.Contains(seed.CourtFields, f.ID) {
			continue
		}
		created, err := slotCommands.SeedSlots(ctx, f.ID, from, seed.Days)
		if err != nil {
			return err
		}
		slog.Info("Seeded slots", "court_field_id", f.ID, "name", f.Name, "days", seed.Days, "created", created)
	}
	return nil
}
