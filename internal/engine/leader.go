package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/outingclub/trip-lottery/internal/dependency"
	"github.com/outingclub/trip-lottery/internal/entity"
	gerr "github.com/outingclub/trip-lottery/internal/errors"
	"github.com/outingclub/trip-lottery/internal/metrics"
	"github.com/outingclub/trip-lottery/internal/waitlist"
)

// LeaderAddResult is what a leader add changed on the trip.
type LeaderAddResult struct {
	Signup *entity.Signup
	Placed bool
	// WaitlistPosition is set when the participant was waitlisted instead.
	WaitlistPosition int
	// Bumped is the occupant moved to the waitlist by a forced add.
	Bumped     *entity.Signup
	BumpedTier entity.WaitlistTier
}

// AddLeaderSignup puts a participant on a trip on a leader's behalf,
// creating the signup when needed. With a free seat the participant is
// placed. On a full trip the participant is waitlisted at leader-added tier
// unless forceAbsoluteTop is set: then the lowest priority occupant (the
// latest seated) is bumped to the waitlist at driver-bumped tier if they
// drive, leader-added otherwise, and the participant takes the seat.
func (s *Service) AddLeaderSignup(ctx context.Context, tripId, participantId int, forceAbsoluteTop bool) (*LeaderAddResult, error) {
	unlock, err := s.locker.Lock(ctx, tripId)
	if err != nil {
		return nil, fmt.Errorf("can't lock trip %d: %w", tripId, err)
	}
	defer unlock()

	var res *LeaderAddResult
	err = s.repo.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		trip, err := rep.Trips().GetTripForUpdate(ctx, tripId)
		if err != nil {
			return err
		}
		if _, err := rep.Participants().GetParticipantById(ctx, participantId); err != nil {
			return err
		}

		signup, err := leaderSignup(ctx, rep, participantId, tripId)
		if err != nil {
			return err
		}
		res = &LeaderAddResult{Signup: signup}
		if signup.OnTrip {
			res.Placed = true
			return nil
		}

		roster, err := rep.Signups().GetRoster(ctx, tripId)
		if err != nil {
			return fmt.Errorf("can't get roster: %w", err)
		}
		entries, err := rep.Waitlists().GetWaitlist(ctx, tripId)
		if err != nil {
			return fmt.Errorf("can't get waitlist: %w", err)
		}
		q := waitlist.New(tripId, entries)
		seq := nextRosterSeq(roster)

		if len(roster) < trip.MaxParticipants {
			if err := seat(ctx, rep, q, signup, seq); err != nil {
				return err
			}
			res.Placed = true
			return nil
		}

		if !forceAbsoluteTop {
			if err := leaderWaitlist(q, signup.Id); err != nil {
				return err
			}
			if err := rep.Waitlists().ReplaceWaitlist(ctx, tripId, q.Entries()); err != nil {
				return fmt.Errorf("can't update waitlist: %w", err)
			}
			res.WaitlistPosition, _ = q.Position(signup.Id)
			return nil
		}

		bumped, _ := lastSeated(roster)
		occupant, err := rep.Participants().GetParticipantById(ctx, bumped.ParticipantId)
		if err != nil {
			return err
		}
		tier := entity.WaitlistTierLeaderAdded
		if occupant.IsDriver() {
			tier = entity.WaitlistTierDriverBumped
		}
		if _, err := q.Insert(bumped.Id, tier); err != nil {
			return fmt.Errorf("can't waitlist bumped signup: %w", err)
		}
		err = rep.Signups().SetPlacements(ctx, []entity.SignupPlacement{
			{SignupId: bumped.Id, OnTrip: false},
		})
		if err != nil {
			return fmt.Errorf("can't unseat signup %d: %w", bumped.Id, err)
		}
		if err := seat(ctx, rep, q, signup, seq); err != nil {
			return err
		}
		bumped.OnTrip = false
		bumped.RosterSeq = 0
		res.Placed = true
		res.Bumped = &bumped
		res.BumpedTier = tier
		return nil
	})
	if err != nil {
		return nil, err
	}

	attrs := []any{
		slog.Int("signup_id", res.Signup.Id),
		slog.Int("trip_id", tripId),
		slog.Bool("placed", res.Placed),
		slog.Bool("force", forceAbsoluteTop),
	}
	if res.Placed {
		metrics.PlacementsTotal.WithLabelValues(metrics.ModeLeader).Inc()
	} else {
		metrics.WaitlistedTotal.WithLabelValues(metrics.ModeLeader).Inc()
	}
	if res.Bumped != nil {
		metrics.WaitlistedTotal.WithLabelValues(metrics.ModeLeader).Inc()
		attrs = append(attrs,
			slog.Int("bumped_signup_id", res.Bumped.Id),
			slog.String("bumped_tier", res.BumpedTier.String()),
		)
	}
	slog.Default().InfoContext(ctx, "leader added participant", attrs...)
	return res, nil
}

// leaderSignup returns the participant's active signup for the trip,
// creating one ranked last when there is none.
func leaderSignup(ctx context.Context, rep dependency.Repository, participantId, tripId int) (*entity.Signup, error) {
	signup, err := rep.Signups().GetActiveSignup(ctx, participantId, tripId)
	if err == nil {
		return signup, nil
	}
	if !errors.Is(err, gerr.SignupNotFound) {
		return nil, err
	}

	existing, err := rep.Signups().GetActiveSignupsByParticipant(ctx, participantId)
	if err != nil {
		return nil, fmt.Errorf("can't get participant signups: %w", err)
	}
	id, err := rep.Signups().AddSignup(ctx, &entity.SignupInsert{
		ParticipantId: participantId,
		TripId:        tripId,
		Rank:          len(existing) + 1,
	})
	if err != nil {
		return nil, err
	}
	return rep.Signups().GetSignupById(ctx, id)
}

// seat puts signup on the roster, taking it off the waitlist if it was
// waiting, and stores the queue.
func seat(ctx context.Context, rep dependency.Repository, q *waitlist.Queue, signup *entity.Signup, seq int) error {
	q.Remove(signup.Id)
	err := rep.Signups().SetPlacements(ctx, []entity.SignupPlacement{
		{SignupId: signup.Id, OnTrip: true, RosterSeq: seq},
	})
	if err != nil {
		return fmt.Errorf("can't place signup %d: %w", signup.Id, err)
	}
	if err := rep.Waitlists().ReplaceWaitlist(ctx, q.TripId(), q.Entries()); err != nil {
		return fmt.Errorf("can't update waitlist: %w", err)
	}
	signup.OnTrip = true
	signup.RosterSeq = seq
	return nil
}

// leaderWaitlist queues a signup at leader-added tier. Entries already at
// that tier or above keep their place.
func leaderWaitlist(q *waitlist.Queue, signupId int) error {
	for _, e := range q.Entries() {
		if e.SignupId != signupId {
			continue
		}
		if e.Tier >= entity.WaitlistTierLeaderAdded {
			return nil
		}
		_, err := q.Reprioritize(signupId, entity.WaitlistTierLeaderAdded)
		return err
	}
	_, err := q.Insert(signupId, entity.WaitlistTierLeaderAdded)
	return err
}

// PrioritizeWaitlist moves a waitlisted signup to the given tier, behind the
// entries already at that tier or at the very top for absolute-top.
func (s *Service) PrioritizeWaitlist(ctx context.Context, signupId int, tier entity.WaitlistTier) (*entity.WaitlistEntry, error) {
	if !tier.Valid() {
		return nil, fmt.Errorf("invalid waitlist tier %d", int(tier))
	}
	signup, err := s.repo.Signups().GetSignupById(ctx, signupId)
	if err != nil {
		return nil, err
	}

	unlock, err := s.locker.Lock(ctx, signup.TripId)
	if err != nil {
		return nil, fmt.Errorf("can't lock trip %d: %w", signup.TripId, err)
	}
	defer unlock()

	var entry entity.WaitlistEntry
	err = s.repo.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		if _, err := rep.Trips().GetTripForUpdate(ctx, signup.TripId); err != nil {
			return err
		}
		entries, err := rep.Waitlists().GetWaitlist(ctx, signup.TripId)
		if err != nil {
			return fmt.Errorf("can't get waitlist: %w", err)
		}
		q := waitlist.New(signup.TripId, entries)
		if !q.Contains(signupId) {
			return gerr.WaitlistNotFound
		}
		entry, err = q.Reprioritize(signupId, tier)
		if err != nil {
			return err
		}
		if err := rep.Waitlists().ReplaceWaitlist(ctx, signup.TripId, q.Entries()); err != nil {
			return fmt.Errorf("can't update waitlist: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Default().InfoContext(ctx, "waitlist entry prioritized",
		slog.Int("signup_id", signupId),
		slog.Int("trip_id", signup.TripId),
		slog.String("tier", tier.String()),
		slog.Int("position", entry.Position),
	)
	return &entry, nil
}

// SetTripCapacity changes the maximum participants of a trip. It refuses to
// go below the current roster. Seats opened on an FCFS trip are handed to the
// waitlist in queue order and the promoted signups are returned.
func (s *Service) SetTripCapacity(ctx context.Context, tripId, capacity int) ([]entity.Signup, error) {
	if capacity <= 0 {
		return nil, gerr.InvalidCapacity
	}

	unlock, err := s.locker.Lock(ctx, tripId)
	if err != nil {
		return nil, fmt.Errorf("can't lock trip %d: %w", tripId, err)
	}
	defer unlock()

	var promoted []entity.Signup
	err = s.repo.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		promoted = nil
		trip, err := rep.Trips().GetTripForUpdate(ctx, tripId)
		if err != nil {
			return err
		}
		roster, err := rep.Signups().GetRoster(ctx, tripId)
		if err != nil {
			return fmt.Errorf("can't get roster: %w", err)
		}
		if capacity < len(roster) {
			return gerr.CapacityBelowRoster
		}
		if err := rep.Trips().UpdateTripCapacity(ctx, tripId, capacity); err != nil {
			return fmt.Errorf("can't update capacity: %w", err)
		}
		trip.MaxParticipants = capacity
		if trip.Algorithm != entity.AlgorithmFCFS || capacity == len(roster) {
			return nil
		}

		entries, err := rep.Waitlists().GetWaitlist(ctx, tripId)
		if err != nil {
			return fmt.Errorf("can't get waitlist: %w", err)
		}
		if len(entries) == 0 {
			return nil
		}
		q := waitlist.New(tripId, entries)
		promoted, err = promote(ctx, rep, trip, roster, q, capacity-len(roster))
		if err != nil {
			return err
		}
		if err := rep.Waitlists().ReplaceWaitlist(ctx, tripId, q.Entries()); err != nil {
			return fmt.Errorf("can't update waitlist: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.PromotionsTotal.Add(float64(len(promoted)))
	slog.Default().InfoContext(ctx, "trip capacity changed",
		slog.Int("trip_id", tripId),
		slog.Int("capacity", capacity),
		slog.Int("promoted", len(promoted)),
	)
	return promoted, nil
}
