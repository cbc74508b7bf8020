package engine

import (
	"context"
	"fmt"

	"github.com/outingclub/trip-lottery/internal/entity"
	gerr "github.com/outingclub/trip-lottery/internal/errors"
)

// AddParticipant registers a participant.
func (s *Service) AddParticipant(ctx context.Context, p *entity.ParticipantInsert) (int, error) {
	if p.CarStatus == "" {
		p.CarStatus = entity.CarStatusNone
	}
	if !p.CarStatus.Driving() {
		p.NumberOfPassengers = 0
	}
	return s.repo.Participants().AddParticipant(ctx, p)
}

// UpdateCarStatus records what a participant can drive. Passenger seats only
// count for own and rent.
func (s *Service) UpdateCarStatus(ctx context.Context, participantId int, cs entity.CarStatus, passengers int) error {
	if _, err := s.repo.Participants().GetParticipantById(ctx, participantId); err != nil {
		return err
	}
	if !cs.Driving() {
		passengers = 0
	}
	return s.repo.Participants().UpdateCarStatus(ctx, participantId, cs, passengers)
}

// RequestPartner records who a participant wants to be placed with. It binds
// once the partner asks for them too. A zero partnerId clears the request.
func (s *Service) RequestPartner(ctx context.Context, participantId, partnerId int) error {
	if partnerId == 0 {
		return s.repo.Pairing().DeletePairRequest(ctx, participantId)
	}
	if participantId == partnerId {
		return gerr.SelfPairRequest
	}
	ps, err := s.repo.Participants().GetParticipantsByIds(ctx, []int{participantId, partnerId})
	if err != nil {
		return fmt.Errorf("can't get participants: %w", err)
	}
	if len(ps) != 2 {
		return gerr.ParticipantNotFound
	}
	return s.repo.Pairing().SetPairRequest(ctx, participantId, partnerId)
}

// AddTrip creates a trip.
func (s *Service) AddTrip(ctx context.Context, t *entity.TripInsert) (int, error) {
	return s.repo.Trips().AddTrip(ctx, t)
}

// AddLotteryCycle opens a lottery cycle trips can be attached to.
func (s *Service) AddLotteryCycle(ctx context.Context, c *entity.LotteryCycleInsert) error {
	return s.repo.Lottery().AddLotteryCycle(ctx, c)
}
