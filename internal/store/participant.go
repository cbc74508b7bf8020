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

type participantStore struct {
	*MYSQLStore
}

// Participants returns an object implementing participants interface
func (ms *MYSQLStore) Participants() dependency.Participants {
	return &participantStore{
		MYSQLStore: ms,
	}
}

func (ms *MYSQLStore) AddParticipant(ctx context.Context, p *entity.ParticipantInsert) (int, error) {
	query := `
	INSERT INTO participant (name, email, affiliation, car_status, number_of_passengers)
	VALUES (:name, :email, :affiliation, :carStatus, :numberOfPassengers)`
	id, err := ExecNamedLastId(ctx, ms.DB(), query, map[string]any{
		"name":               p.Name,
		"email":              p.Email,
		"affiliation":        p.Affiliation,
		"carStatus":          p.CarStatus,
		"numberOfPassengers": p.NumberOfPassengers,
	})
	if err != nil {
		return 0, fmt.Errorf("can't add participant: %w", err)
	}
	return id, nil
}

func (ms *MYSQLStore) GetParticipantById(ctx context.Context, id int) (*entity.Participant, error) {
	query := `SELECT * FROM participant WHERE id = :id`
	p, err := QueryNamedOne[entity.Participant](ctx, ms.DB(), query, map[string]any{
		"id": id,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, gerr.ParticipantNotFound
		}
		return nil, fmt.Errorf("can't get participant by id: %w", err)
	}
	return &p, nil
}

func (ms *MYSQLStore) GetParticipantsByIds(ctx context.Context, ids []int) ([]entity.Participant, error) {
	if len(ids) == 0 {
		return []entity.Participant{}, nil
	}
	query := `SELECT * FROM participant WHERE id IN (:ids) ORDER BY id`
	ps, err := QueryListNamed[entity.Participant](ctx, ms.DB(), query, map[string]any{
		"ids": ids,
	})
	if err != nil {
		return nil, fmt.Errorf("can't get participants by ids: %w", err)
	}
	return ps, nil
}

func (ms *MYSQLStore) UpdateCarStatus(ctx context.Context, id int, cs entity.CarStatus, passengers int) error {
	query := `
	UPDATE participant SET car_status = :carStatus, number_of_passengers = :passengers
	WHERE id = :id`
	err := ExecNamed(ctx, ms.DB(), query, map[string]any{
		"id":         id,
		"carStatus":  cs,
		"passengers": passengers,
	})
	if err != nil {
		return fmt.Errorf("can't update car status: %w", err)
	}
	return nil
}
