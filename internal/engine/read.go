package engine

import (
	"context"
	"fmt"

	"github.com/outingclub/trip-lottery/internal/entity"
)

// Roster returns the signups on a trip in seat order.
func (s *Service) Roster(ctx context.Context, tripId int) ([]entity.Signup, error) {
	if _, err := s.repo.Trips().GetTripById(ctx, tripId); err != nil {
		return nil, err
	}
	roster, err := s.repo.Signups().GetRoster(ctx, tripId)
	if err != nil {
		return nil, fmt.Errorf("can't get roster: %w", err)
	}
	return roster, nil
}

// Waitlist returns the waitlist of a trip in promotion order.
func (s *Service) Waitlist(ctx context.Context, tripId int) ([]entity.WaitlistEntryWithSignup, error) {
	if _, err := s.repo.Trips().GetTripById(ctx, tripId); err != nil {
		return nil, err
	}
	es, err := s.repo.Waitlists().GetWaitlistWithParticipants(ctx, tripId)
	if err != nil {
		return nil, fmt.Errorf("can't get waitlist: %w", err)
	}
	return es, nil
}

// LotteryLog returns the audit record of a cycle's completed run.
func (s *Service) LotteryLog(ctx context.Context, cycleId string) (*entity.LotteryRun, error) {
	return s.repo.Lottery().GetLotteryRun(ctx, cycleId)
}
