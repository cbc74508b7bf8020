package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/outingclub/trip-lottery/internal/dependency"
	"github.com/outingclub/trip-lottery/internal/entity"
	gerr "github.com/outingclub/trip-lottery/internal/errors"
)

type tripStore struct {
	*MYSQLStore
}

// Trips returns an object implementing trips interface
func (ms *MYSQLStore) Trips() dependency.Trips {
	return &tripStore{
		MYSQLStore: ms,
	}
}

func (ms *MYSQLStore) AddTrip(ctx context.Context, t *entity.TripInsert) (int, error) {
	query := `
	INSERT INTO trip (name, program, maximum_participants, algorithm, lottery_cycle_id, signups_open_at, signups_close_at)
	VALUES (:name, :program, :maximumParticipants, :algorithm, :lotteryCycleId, :signupsOpenAt, :signupsCloseAt)`
	id, err := ExecNamedLastId(ctx, ms.DB(), query, map[string]any{
		"name":                t.Name,
		"program":             t.Program,
		"maximumParticipants": t.MaxParticipants,
		"algorithm":           t.Algorithm,
		"lotteryCycleId":      t.LotteryCycleId,
		"signupsOpenAt":       t.SignupsOpenAt,
		"signupsCloseAt":      t.SignupsCloseAt,
	})
	if err != nil {
		return 0, fmt.Errorf("can't add trip: %w", err)
	}
	return id, nil
}

func (ms *MYSQLStore) GetTripById(ctx context.Context, id int) (*entity.Trip, error) {
	return getTrip(ctx, ms, `SELECT * FROM trip WHERE id = :id`, id)
}

func (ms *MYSQLStore) GetTripForUpdate(ctx context.Context, id int) (*entity.Trip, error) {
	return getTrip(ctx, ms, `SELECT * FROM trip WHERE id = :id FOR UPDATE`, id)
}

func getTrip(ctx context.Context, ms *MYSQLStore, query string, id int) (*entity.Trip, error) {
	t, err := QueryNamedOne[entity.Trip](ctx, ms.DB(), query, map[string]any{
		"id": id,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, gerr.TripNotFound
		}
		return nil, fmt.Errorf("can't get trip by id: %w", err)
	}
	return &t, nil
}

func (ms *MYSQLStore) GetTripsByCycle(ctx context.Context, cycleId string) ([]entity.Trip, error) {
	query := `SELECT * FROM trip WHERE lottery_cycle_id = :cycleId ORDER BY id`
	ts, err := QueryListNamed[entity.Trip](ctx, ms.DB(), query, map[string]any{
		"cycleId": cycleId,
	})
	if err != nil {
		return nil, fmt.Errorf("can't get trips by cycle: %w", err)
	}
	return ts, nil
}

func (ms *MYSQLStore) UpdateTripCapacity(ctx context.Context, id int, capacity int) error {
	query := `UPDATE trip SET maximum_participants = :capacity WHERE id = :id`
	err := ExecNamed(ctx, ms.DB(), query, map[string]any{
		"id":       id,
		"capacity": capacity,
	})
	if err != nil {
		return fmt.Errorf("can't update trip capacity: %w", err)
	}
	return nil
}

func (ms *MYSQLStore) SetTripsAlgorithm(ctx context.Context, ids []int, a entity.Algorithm) error {
	if len(ids) == 0 {
		return nil
	}
	query := `UPDATE trip SET algorithm = :algorithm WHERE id IN (:ids)`
	err := ExecNamed(ctx, ms.DB(), query, map[string]any{
		"ids":       ids,
		"algorithm": a,
	})
	if err != nil {
		return fmt.Errorf("can't set trips algorithm: %w", err)
	}
	return nil
}
