package lotterysched

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	gerr "github.com/outingclub/trip-lottery/internal/errors"
)

func (w *Worker) worker(ctx context.Context) {
	ticker := time.NewTicker(w.c.WorkerInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if _, err := w.runDue(ctx); err != nil {
				slog.Default().ErrorContext(ctx, "can't run due lotteries",
					slog.String("err", err.Error()),
				)
			}
		case <-ctx.Done():
			return
		}
	}
}

// runDue runs every due cycle once and returns how many completed. A failing
// cycle is logged and retried on the next tick.
func (w *Worker) runDue(ctx context.Context) (int, error) {
	cycles, err := w.repo.Lottery().GetDueLotteryCycles(ctx, w.repo.Now())
	if err != nil {
		return 0, fmt.Errorf("can't get due lottery cycles: %w", err)
	}

	completed := 0
	for _, cycle := range cycles {
		if err := ctx.Err(); err != nil {
			return completed, err
		}

		run, err := w.runner.RunLottery(ctx, cycle.Id)
		if errors.Is(err, gerr.LotteryAlreadyRun) {
			slog.Default().InfoContext(ctx, "lottery already run elsewhere",
				slog.String("cycle_id", cycle.Id),
			)
			continue
		}
		if err != nil {
			slog.Default().ErrorContext(ctx, "can't run scheduled lottery",
				slog.String("err", err.Error()),
				slog.String("cycle_id", cycle.Id),
			)
			continue
		}
		completed++
		slog.Default().InfoContext(ctx, "scheduled lottery completed",
			slog.String("cycle_id", cycle.Id),
			slog.Int("placed", run.Placed),
			slog.Int("waitlisted", run.Waitlisted),
		)
	}

	return completed, nil
}
