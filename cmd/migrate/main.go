package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"court-booking/internal/handler/middleware"
	"court-booking/internal/infra/db"
	"court-booking/internal/pkg/config"
)

func main() {
	down := flag.Bool("down", false, "roll back the most recent migration")
	flag.Parse()

	if err := run(*down); err != nil {
		slog.Error("Migration failed", "error", err)
		os.Exit(1)
	}
}

func run(down bool) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	logger := middleware.NewLogger(cfg.Log).GetSlogLogger()

	ctx := context.Background()
	pool, cleanup, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer cleanup()

	migrator, err := db.NewMigrator(pool, logger)
	if err != nil {
		return err
	}
	defer func() { _ = migrator.Close() }()

	if down {
		return migrator.Down(ctx)
	}
	return migrator.Up(ctx)
}
