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

const signupColumns = `id, participant_id, trip_id, preference_rank, on_trip, roster_seq, deleted, created_at, updated_at`

type signupStore struct {
	*MYSQLStore
}

// Signups returns an object implementing signups interface
func (ms *MYSQLStore) Signups() dependency.Signups {
	return &signupStore{
		MYSQLStore: ms,
	}
}

// AddSignup creates an active signup. A second active signup of the same
// participant for the same trip is rejected with gerr.SignupExists.
func (ms *MYSQLStore) AddSignup(ctx context.Context, s *entity.SignupInsert) (int, error) {
	query := `
	INSERT INTO signup (participant_id, trip_id, preference_rank)
	VALUES (:participantId, :tripId, :rank)`
	id, err := ExecNamedLastId(ctx, ms.DB(), query, map[string]any{
		"participantId": s.ParticipantId,
		"tripId":        s.TripId,
		"rank":          s.Rank,
	})
	if err != nil {
		if ms.IsErrUniqueViolation(err) {
			return 0, gerr.SignupExists
		}
		return 0, fmt.Errorf("can't add signup: %w", err)
	}
	return id, nil
}

func (ms *MYSQLStore) GetSignupById(ctx context.Context, id int) (*entity.Signup, error) {
	query := `SELECT ` + signupColumns + ` FROM signup WHERE id = :id`
	s, err := QueryNamedOne[entity.Signup](ctx, ms.DB(), query, map[string]any{
		"id": id,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, gerr.SignupNotFound
		}
		return nil, fmt.Errorf("can't get signup by id: %w", err)
	}
	return &s, nil
}

func (ms *MYSQLStore) GetActiveSignup(ctx context.Context, participantId int, tripId int) (*entity.Signup, error) {
	query := `
	SELECT ` + signupColumns + ` FROM signup
	WHERE participant_id = :participantId AND trip_id = :tripId AND deleted = FALSE`
	s, err := QueryNamedOne[entity.Signup](ctx, ms.DB(), query, map[string]any{
		"participantId": participantId,
		"tripId":        tripId,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, gerr.SignupNotFound
		}
		return nil, fmt.Errorf("can't get active signup: %w", err)
	}
	return &s, nil
}

func (ms *MYSQLStore) GetActiveSignupsByParticipant(ctx context.Context, participantId int) ([]entity.Signup, error) {
	query := `
	SELECT ` + signupColumns + ` FROM signup
	WHERE participant_id = :participantId AND deleted = FALSE
	ORDER BY preference_rank, trip_id`
	ss, err := QueryListNamed[entity.Signup](ctx, ms.DB(), query, map[string]any{
		"participantId": participantId,
	})
	if err != nil {
		return nil, fmt.Errorf("can't get signups by participant: %w", err)
	}
	return ss, nil
}

func (ms *MYSQLStore) GetActiveSignupsByTrips(ctx context.Context, tripIds []int) ([]entity.Signup, error) {
	if len(tripIds) == 0 {
		return []entity.Signup{}, nil
	}
	query := `
	SELECT ` + signupColumns + ` FROM signup
	WHERE trip_id IN (:tripIds) AND deleted = FALSE
	ORDER BY id`
	ss, err := QueryListNamed[entity.Signup](ctx, ms.DB(), query, map[string]any{
		"tripIds": tripIds,
	})
	if err != nil {
		return nil, fmt.Errorf("can't get signups by trips: %w", err)
	}
	return ss, nil
}

func (ms *MYSQLStore) GetRoster(ctx context.Context, tripId int) ([]entity.Signup, error) {
	query := `
	SELECT ` + signupColumns + ` FROM signup
	WHERE trip_id = :tripId AND on_trip = TRUE AND deleted = FALSE
	ORDER BY roster_seq, id`
	ss, err := QueryListNamed[entity.Signup](ctx, ms.DB(), query, map[string]any{
		"tripId": tripId,
	})
	if err != nil {
		return nil, fmt.Errorf("can't get roster: %w", err)
	}
	return ss, nil
}

func (ms *MYSQLStore) SetPlacements(ctx context.Context, placements []entity.SignupPlacement) error {
	query := `UPDATE signup SET on_trip = :onTrip, roster_seq = :rosterSeq WHERE id = :id`
	for _, p := range placements {
		err := ExecNamed(ctx, ms.DB(), query, map[string]any{
			"id":        p.SignupId,
			"onTrip":    p.OnTrip,
			"rosterSeq": p.RosterSeq,
		})
		if err != nil {
			return fmt.Errorf("can't set placement of signup %d: %w", p.SignupId, err)
		}
	}
	return nil
}

func (ms *MYSQLStore) UpdateSignupRanks(ctx context.Context, ranks []entity.SignupRank) error {
	query := `UPDATE signup SET preference_rank = :rank WHERE id = :id`
	for _, r := range ranks {
		err := ExecNamed(ctx, ms.DB(), query, map[string]any{
			"id":   r.SignupId,
			"rank": r.Rank,
		})
		if err != nil {
			return fmt.Errorf("can't update rank of signup %d: %w", r.SignupId, err)
		}
	}
	return nil
}

func (ms *MYSQLStore) SoftDeleteSignup(ctx context.Context, id int) error {
	query := `UPDATE signup SET deleted = TRUE, on_trip = FALSE WHERE id = :id`
	err := ExecNamed(ctx, ms.DB(), query, map[string]any{
		"id": id,
	})
	if err != nil {
		return fmt.Errorf("can't delete signup: %w", err)
	}
	return nil
}
