package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/outingclub/trip-lottery/internal/dependency"
	"github.com/outingclub/trip-lottery/internal/entity"
	gerr "github.com/outingclub/trip-lottery/internal/errors"
	"github.com/outingclub/trip-lottery/internal/lottery"
	"github.com/outingclub/trip-lottery/internal/metrics"
)

// RunLottery decides the rosters and waitlists of every lottery trip of the
// cycle. The run works on a snapshot taken inside one transaction and saves
// its outcome in the same transaction, so a failed run changes nothing.
// A completed cycle returns gerr.LotteryAlreadyRun; a run that breaks an
// allocation invariant returns *lottery.InvariantViolation.
func (s *Service) RunLottery(ctx context.Context, cycleId string) (*entity.LotteryRun, error) {
	start := time.Now()

	cycle, err := s.repo.Lottery().GetLotteryCycleById(ctx, cycleId)
	if err != nil {
		return nil, err
	}
	if cycle.Status == entity.CycleStatusCompleted {
		metrics.LotteryRunsTotal.WithLabelValues("already_run").Inc()
		return nil, gerr.LotteryAlreadyRun
	}

	trips, err := s.repo.Trips().GetTripsByCycle(ctx, cycleId)
	if err != nil {
		return nil, fmt.Errorf("can't get cycle trips: %w", err)
	}
	tripIds := make([]int, 0, len(trips))
	for _, t := range trips {
		tripIds = append(tripIds, t.Id)
	}
	unlock, err := s.lockTrips(ctx, tripIds)
	if err != nil {
		return nil, err
	}
	defer unlock()

	var res *lottery.Result
	var run entity.LotteryRun
	err = s.repo.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		c, err := rep.Lottery().GetLotteryCycleForUpdate(ctx, cycleId)
		if err != nil {
			return err
		}
		if c.Status == entity.CycleStatusCompleted {
			return gerr.LotteryAlreadyRun
		}
		seed := lottery.DeriveSeed(c.Id, s.seedSecret)
		if c.Seed.Valid {
			seed = c.Seed.Int64
		}

		snap, err := rep.Lottery().GetLotterySnapshot(ctx, cycleId)
		if err != nil {
			return fmt.Errorf("can't get lottery snapshot: %w", err)
		}

		res, err = lottery.NewRunner(s.weights).Run(ctx, *snap, seed)
		if err != nil {
			if errors.Is(err, lottery.ErrAlreadyRun) {
				return gerr.LotteryAlreadyRun
			}
			return err
		}

		out := res.Outcome(rep.Now())
		if err := rep.Lottery().SaveLotteryOutcome(ctx, &out); err != nil {
			return fmt.Errorf("can't save lottery outcome: %w", err)
		}
		run = out.Run
		return nil
	})
	metrics.LotteryRunDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		var iv *lottery.InvariantViolation
		switch {
		case errors.As(err, &iv):
			metrics.LotteryRunsTotal.WithLabelValues("invariant_violation").Inc()
			for _, line := range iv.Log {
				if lottery.IsFatalLine(line) {
					slog.Default().ErrorContext(ctx, line, slog.String("cycle_id", cycleId))
				}
			}
		case errors.Is(err, gerr.LotteryAlreadyRun):
			metrics.LotteryRunsTotal.WithLabelValues("already_run").Inc()
		default:
			metrics.LotteryRunsTotal.WithLabelValues("error").Inc()
		}
		return nil, err
	}

	metrics.LotteryRunsTotal.WithLabelValues("completed").Inc()
	metrics.PlacementsTotal.WithLabelValues(metrics.ModeLottery).Add(float64(res.Placed))
	metrics.WaitlistedTotal.WithLabelValues(metrics.ModeLottery).Add(float64(res.Waitlisted))
	metrics.PromotionsTotal.Add(float64(res.Promoted))
	slog.Default().InfoContext(ctx, "lottery outcome saved",
		slog.String("cycle_id", cycleId),
		slog.Int64("seed", res.Seed),
		slog.Int("placed", res.Placed),
		slog.Int("waitlisted", res.Waitlisted),
		slog.Int("promoted", res.Promoted),
	)
	return &run, nil
}
