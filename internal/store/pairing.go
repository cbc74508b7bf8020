package store

import (
	"context"
	"fmt"

	"github.com/outingclub/trip-lottery/internal/dependency"
	"github.com/outingclub/trip-lottery/internal/entity"
)

type pairingStore struct {
	*MYSQLStore
}

// Pairing returns an object implementing pairing interface
func (ms *MYSQLStore) Pairing() dependency.Pairing {
	return &pairingStore{
		MYSQLStore: ms,
	}
}

func (ms *MYSQLStore) SetPairRequest(ctx context.Context, participantId int, partnerId int) error {
	if participantId == partnerId {
		return fmt.Errorf("participant %d can't pair with themselves", participantId)
	}
	query := `
	INSERT INTO pair_request (participant_id, partner_id) VALUES (:participantId, :partnerId)
	ON DUPLICATE KEY UPDATE partner_id = VALUES(partner_id), created_at = CURRENT_TIMESTAMP`
	err := ExecNamed(ctx, ms.DB(), query, map[string]any{
		"participantId": participantId,
		"partnerId":     partnerId,
	})
	if err != nil {
		return fmt.Errorf("can't set pair request: %w", err)
	}
	return nil
}

func (ms *MYSQLStore) DeletePairRequest(ctx context.Context, participantId int) error {
	query := `DELETE FROM pair_request WHERE participant_id = :participantId`
	err := ExecNamed(ctx, ms.DB(), query, map[string]any{
		"participantId": participantId,
	})
	if err != nil {
		return fmt.Errorf("can't delete pair request: %w", err)
	}
	return nil
}

func (ms *MYSQLStore) GetPairRequestsByParticipantIds(ctx context.Context, ids []int) ([]entity.PairRequest, error) {
	if len(ids) == 0 {
		return []entity.PairRequest{}, nil
	}
	query := `
	SELECT * FROM pair_request
	WHERE participant_id IN (:ids) OR partner_id IN (:ids)
	ORDER BY participant_id`
	prs, err := QueryListNamed[entity.PairRequest](ctx, ms.DB(), query, map[string]any{
		"ids": ids,
	})
	if err != nil {
		return nil, fmt.Errorf("can't get pair requests: %w", err)
	}
	return prs, nil
}
