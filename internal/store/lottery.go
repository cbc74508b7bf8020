package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/outingclub/trip-lottery/internal/dependency"
	"github.com/outingclub/trip-lottery/internal/entity"
	gerr "github.com/outingclub/trip-lottery/internal/errors"
	"golang.org/x/sync/errgroup"
)

type lotteryStore struct {
	*MYSQLStore
}

// Lottery returns an object implementing lottery interface
func (ms *MYSQLStore) Lottery() dependency.Lottery {
	return &lotteryStore{
		MYSQLStore: ms,
	}
}

func (ms *MYSQLStore) AddLotteryCycle(ctx context.Context, c *entity.LotteryCycleInsert) error {
	query := `
	INSERT INTO lottery_cycle (id, program, close_at, seed)
	VALUES (:id, :program, :closeAt, :seed)`
	err := ExecNamed(ctx, ms.DB(), query, map[string]any{
		"id":      c.Id,
		"program": c.Program,
		"closeAt": c.CloseAt,
		"seed":    c.Seed,
	})
	if err != nil {
		return fmt.Errorf("can't add lottery cycle: %w", err)
	}
	return nil
}

func (ms *MYSQLStore) GetLotteryCycleById(ctx context.Context, id string) (*entity.LotteryCycle, error) {
	return getCycle(ctx, ms, `SELECT * FROM lottery_cycle WHERE id = :id`, id)
}

func (ms *MYSQLStore) GetLotteryCycleForUpdate(ctx context.Context, id string) (*entity.LotteryCycle, error) {
	return getCycle(ctx, ms, `SELECT * FROM lottery_cycle WHERE id = :id FOR UPDATE`, id)
}

func getCycle(ctx context.Context, ms *MYSQLStore, query string, id string) (*entity.LotteryCycle, error) {
	c, err := QueryNamedOne[entity.LotteryCycle](ctx, ms.DB(), query, map[string]any{
		"id": id,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, gerr.CycleNotFound
		}
		return nil, fmt.Errorf("can't get lottery cycle: %w", err)
	}
	return &c, nil
}

func (ms *MYSQLStore) GetDueLotteryCycles(ctx context.Context, now time.Time) ([]entity.LotteryCycle, error) {
	query := `
	SELECT * FROM lottery_cycle
	WHERE status = :status AND close_at IS NOT NULL AND close_at <= :now
	ORDER BY close_at, id`
	cs, err := QueryListNamed[entity.LotteryCycle](ctx, ms.DB(), query, map[string]any{
		"status": entity.CycleStatusNotStarted,
		"now":    now,
	})
	if err != nil {
		return nil, fmt.Errorf("can't get due lottery cycles: %w", err)
	}
	return cs, nil
}

// GetLotterySnapshot loads the cycle, its trips, their active signups and
// waitlists, and the participants and pair requests behind those signups.
func (ms *MYSQLStore) GetLotterySnapshot(ctx context.Context, cycleId string) (*entity.LotterySnapshot, error) {
	cycle, err := ms.GetLotteryCycleById(ctx, cycleId)
	if err != nil {
		return nil, err
	}
	trips, err := ms.GetTripsByCycle(ctx, cycleId)
	if err != nil {
		return nil, err
	}
	tripIds := make([]int, 0, len(trips))
	for _, t := range trips {
		tripIds = append(tripIds, t.Id)
	}

	snap := &entity.LotterySnapshot{
		Cycle: *cycle,
		Trips: trips,
	}

	// MySQL connections only support one query at a time, so inside a
	// transaction everything is loaded sequentially.
	if ms.InTx() {
		if snap.Signups, err = ms.GetActiveSignupsByTrips(ctx, tripIds); err != nil {
			return nil, err
		}
		if snap.Waitlists, err = ms.GetWaitlistsByTrips(ctx, tripIds); err != nil {
			return nil, err
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			snap.Signups, err = ms.GetActiveSignupsByTrips(gctx, tripIds)
			return err
		})
		g.Go(func() error {
			var err error
			snap.Waitlists, err = ms.GetWaitlistsByTrips(gctx, tripIds)
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	seen := map[int]bool{}
	participantIds := []int{}
	for _, s := range snap.Signups {
		if !seen[s.ParticipantId] {
			seen[s.ParticipantId] = true
			participantIds = append(participantIds, s.ParticipantId)
		}
	}
	if snap.Participants, err = ms.GetParticipantsByIds(ctx, participantIds); err != nil {
		return nil, err
	}
	if snap.PairRequests, err = ms.GetPairRequestsByParticipantIds(ctx, participantIds); err != nil {
		return nil, err
	}
	return snap, nil
}

// SaveLotteryOutcome seats the placed signups, rewrites the waitlists of the
// cycle trips, stores the run log, completes the cycle and switches its trips
// to first-come-first-serve. All of it happens in one transaction.
func (ms *MYSQLStore) SaveLotteryOutcome(ctx context.Context, o *entity.LotteryOutcome) error {
	return ms.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		if err := rep.Signups().SetPlacements(ctx, o.Placements); err != nil {
			return err
		}
		for _, tripId := range o.TripIds {
			if err := rep.Waitlists().ReplaceWaitlist(ctx, tripId, o.Waitlists[tripId]); err != nil {
				return err
			}
		}

		query := `
		INSERT INTO lottery_run (cycle_id, seed, log, placed, waitlisted, completed_at)
		VALUES (:cycleId, :seed, :log, :placed, :waitlisted, :completedAt)`
		err := ExecNamed(ctx, rep.DB(), query, map[string]any{
			"cycleId":     o.Run.CycleId,
			"seed":        o.Run.Seed,
			"log":         o.Run.Log,
			"placed":      o.Run.Placed,
			"waitlisted":  o.Run.Waitlisted,
			"completedAt": o.Run.CompletedAt,
		})
		if err != nil {
			if rep.IsErrUniqueViolation(err) {
				return gerr.LotteryAlreadyRun
			}
			return fmt.Errorf("can't insert lottery run: %w", err)
		}

		query = `
		UPDATE lottery_cycle SET status = :status, seed = :seed, completed_at = :completedAt
		WHERE id = :cycleId`
		err = ExecNamed(ctx, rep.DB(), query, map[string]any{
			"cycleId":     o.Run.CycleId,
			"status":      entity.CycleStatusCompleted,
			"seed":        o.Run.Seed,
			"completedAt": o.Run.CompletedAt,
		})
		if err != nil {
			return fmt.Errorf("can't complete lottery cycle: %w", err)
		}

		return rep.Trips().SetTripsAlgorithm(ctx, o.TripIds, entity.AlgorithmFCFS)
	})
}

func (ms *MYSQLStore) GetLotteryRun(ctx context.Context, cycleId string) (*entity.LotteryRun, error) {
	query := `SELECT * FROM lottery_run WHERE cycle_id = :cycleId`
	r, err := QueryNamedOne[entity.LotteryRun](ctx, ms.DB(), query, map[string]any{
		"cycleId": cycleId,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, gerr.LotteryNotRun
		}
		return nil, fmt.Errorf("can't get lottery run: %w", err)
	}
	return &r, nil
}
