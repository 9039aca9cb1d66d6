package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"court-booking/internal/domain/slotgrid"
	"court-booking/internal/handler/middleware"
	"court-booking/internal/infra/db"
	"court-booking/internal/infra/readstore"
	"court-booking/internal/infra/realtime"
	sqlc "court-booking/internal/infra/sqlc/generated"
	"court-booking/internal/pkg/config"
	"court-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/kelseyhightower/envconfig"
)

type watchConfig struct {
	CourtFieldID int64     `envconfig:"WATCH_COURT_FIELD" required:"true"`
	Day          string    `envconfig:"WATCH_DAY"`
	UserID       uuid.UUID `envconfig:"WATCH_USER_ID"`
}

func main() {
	if err := run(); err != nil {
		slog.Error("slotwatch stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	var watch watchConfig
	if err := envconfig.Process("", &watch); err != nil {
		return err
	}
	if !cfg.Redis.Enabled() {
		return errs.New("REDIS_ADDR is required to follow a room")
	}
	middleware.NewLogger(cfg.Log)

	day := time.Now().UTC()
	if watch.Day != "" {
		if day, err = time.Parse(time.DateOnly, watch.Day); err != nil {
			return errs.Wrap(err, "parse WATCH_DAY")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, cleanup, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer cleanup()

	client, err := realtime.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	room := realtime.Room(watch.CourtFieldID)
	// subscribe before the snapshot so no transition falls between the two
	sub, err := realtime.NewRedisBroker(client).Subscribe(ctx, room)
	if err != nil {
		return err
	}
	defer func() { _ = sub.Close() }()

	slots, err := readstore.NewSlotReadStore(sqlc.New(), pool).FindByFieldAndDay(ctx, watch.CourtFieldID, day)
	if err != nil {
		return err
	}
	grid := slotgrid.New(watch.UserID, slots)
	slog.Info("Following room", "room", room, "day", day.Format(time.DateOnly), "slots", len(slots))
	logGrid(grid, watch.UserID)

	for {
		select {
		case <-ctx.Done():
			return nil
		case payload, ok := <-sub.C():
			if !ok {
				return errs.New("subscription closed")
			}
			e, err := realtime.Decode(payload)
			if err != nil {
				slog.Warn("Skipping undecodable event", "error", err)
				continue
			}
			apply(grid, e)
			slog.Info("Event", "type", e.Type, "slot_id", e.ScheduleID)
			logGrid(grid, watch.UserID)
		}
	}
}

func apply(grid *slotgrid.Grid, e realtime.Event) {
	switch e.Type {
	case realtime.EventSlotLocked:
		if e.UserID != nil {
			grid.ApplyLocked(e.ScheduleID, *e.UserID)
		}
	case realtime.EventSlotUnlocked:
		grid.ApplyUnlocked(e.ScheduleID)
	case realtime.EventSlotBooked:
		grid.ApplyBooked(e.ScheduleID)
	}
}

func logGrid(grid *slotgrid.Grid, self uuid.UUID) {
	var b strings.Builder
	for _, c := range grid.Cells() {
		mark := string(c.State)
		if c.IsMine(self) {
			mark += "*"
		}
		fmt.Fprintf(&b, "\n  %6d  %s  %s", c.SlotID, c.TimeRange, mark)
	}
	slog.Info("Grid" + b.String())
}
