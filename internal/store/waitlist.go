package store

import (
	"context"
	"fmt"
	"time"

	"github.com/outingclub/trip-lottery/internal/dependency"
	"github.com/outingclub/trip-lottery/internal/entity"
)

type waitlistStore struct {
	*MYSQLStore
}

// Waitlists returns an object implementing waitlists interface
func (ms *MYSQLStore) Waitlists() dependency.Waitlists {
	return &waitlistStore{
		MYSQLStore: ms,
	}
}

func (ms *MYSQLStore) GetWaitlist(ctx context.Context, tripId int) ([]entity.WaitlistEntry, error) {
	query := `
	SELECT * FROM waitlist_signup
	WHERE trip_id = :tripId
	ORDER BY tier DESC, position ASC`
	es, err := QueryListNamed[entity.WaitlistEntry](ctx, ms.DB(), query, map[string]any{
		"tripId": tripId,
	})
	if err != nil {
		return nil, fmt.Errorf("can't get waitlist: %w", err)
	}
	return es, nil
}

func (ms *MYSQLStore) GetWaitlistWithParticipants(ctx context.Context, tripId int) ([]entity.WaitlistEntryWithSignup, error) {
	query := `
	SELECT
		w.*,
		s.participant_id AS participant_id,
		p.name AS participant_name
	FROM waitlist_signup w
	JOIN signup s ON s.id = w.signup_id
	JOIN participant p ON p.id = s.participant_id
	WHERE w.trip_id = :tripId
	ORDER BY w.tier DESC, w.position ASC`
	es, err := QueryListNamed[entity.WaitlistEntryWithSignup](ctx, ms.DB(), query, map[string]any{
		"tripId": tripId,
	})
	if err != nil {
		return nil, fmt.Errorf("can't get waitlist with participants: %w", err)
	}
	return es, nil
}

func (ms *MYSQLStore) GetWaitlistsByTrips(ctx context.Context, tripIds []int) ([]entity.WaitlistEntry, error) {
	if len(tripIds) == 0 {
		return []entity.WaitlistEntry{}, nil
	}
	query := `
	SELECT * FROM waitlist_signup
	WHERE trip_id IN (:tripIds)
	ORDER BY trip_id, tier DESC, position ASC`
	es, err := QueryListNamed[entity.WaitlistEntry](ctx, ms.DB(), query, map[string]any{
		"tripIds": tripIds,
	})
	if err != nil {
		return nil, fmt.Errorf("can't get waitlists by trips: %w", err)
	}
	return es, nil
}

// ReplaceWaitlist rewrites the waitlist of a trip. Entries keep their
// original created_at; new ones get the store time.
func (ms *MYSQLStore) ReplaceWaitlist(ctx context.Context, tripId int, entries []entity.WaitlistEntry) error {
	return ms.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		err := ExecNamed(ctx, rep.DB(), `DELETE FROM waitlist_signup WHERE trip_id = :tripId`, map[string]any{
			"tripId": tripId,
		})
		if err != nil {
			return fmt.Errorf("can't clear waitlist: %w", err)
		}

		rows := make([]map[string]any, 0, len(entries))
		for _, e := range entries {
			createdAt := e.CreatedAt
			if createdAt.IsZero() {
				createdAt = rep.Now()
			}
			rows = append(rows, map[string]any{
				"trip_id":    tripId,
				"signup_id":  e.SignupId,
				"tier":       int(e.Tier),
				"position":   e.Position,
				"created_at": createdAt.UTC().Truncate(time.Second),
			})
		}
		if err := BulkInsert(ctx, rep.DB(), "waitlist_signup", rows); err != nil {
			return fmt.Errorf("can't insert waitlist: %w", err)
		}
		return nil
	})
}
