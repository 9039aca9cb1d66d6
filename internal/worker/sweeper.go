package worker

import (
	"context"
	"log/slog"
	"time"

	"court-booking/internal/usecase/commands"
)

// Sweeper reclaims expired slot locks once at start and then on a fixed
// interval until ctx is cancelled.
type Sweeper struct {
	sweep    commands.SweepCommands
	interval time.Duration
}

func NewSweeper(sweep commands.SweepCommands, interval time.Duration) *Sweeper {
	return &Sweeper{sweep: sweep, interval: interval}
}

func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	slog.Info("Slot sweeper started", "interval", s.interval)
	// locks that expired while the process was down
	s.Tick(ctx)
	for {
		select {
		case <-ctx.Done():
			slog.Info("Slot sweeper stopped")
			return
		case <-ticker.C:
			s.Tick(ctx)
		}
	}
}

// Tick runs one pass. Errors are logged and left for the next tick.
func (s *Sweeper) Tick(ctx context.Context) {
	start := time.Now()
	res, err := s.sweep.Sweep(ctx)
	if err != nil {
		slog.Error("Slot sweep failed", "error", err)
	}
	if res == nil {
		return
	}
	if len(res.ReleasedSlots) > 0 || res.PurgedOrders > 0 || res.PurgedIdemKeys > 0 {
		slog.Info("Slot sweep completed",
			"released_slots", len(res.ReleasedSlots),
			"purged_orders", res.PurgedOrders,
			"purged_idempotency_keys", res.PurgedIdemKeys,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}
