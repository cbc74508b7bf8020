package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/outingclub/trip-lottery/internal/dependency"
	"github.com/outingclub/trip-lottery/internal/entity"
	gerr "github.com/outingclub/trip-lottery/internal/errors"
	"github.com/outingclub/trip-lottery/internal/fcfs"
	"github.com/outingclub/trip-lottery/internal/metrics"
	"github.com/outingclub/trip-lottery/internal/waitlist"
)

// SignupOutcome is what a new signup led to.
type SignupOutcome string

const (
	// SignupRanked is a lottery signup waiting for the cycle's run.
	SignupRanked     SignupOutcome = "ranked"
	SignupPlaced     SignupOutcome = "placed"
	SignupWaitlisted SignupOutcome = "waitlisted"
)

// SignupResult is the signup created by Signup and where it ended up.
type SignupResult struct {
	Signup  *entity.Signup
	Outcome SignupOutcome
	// WaitlistPosition is set when Outcome is SignupWaitlisted.
	WaitlistPosition int
}

// Signup records a participant's interest in a trip. On lottery trips the
// signup is ranked after the participant's existing ones and waits for the
// run; on FCFS trips it takes a free seat or joins the bottom of the waitlist.
func (s *Service) Signup(ctx context.Context, participantId, tripId int) (*SignupResult, error) {
	unlock, err := s.locker.Lock(ctx, tripId)
	if err != nil {
		return nil, fmt.Errorf("can't lock trip %d: %w", tripId, err)
	}
	defer unlock()

	var res *SignupResult
	err = s.repo.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		trip, err := rep.Trips().GetTripForUpdate(ctx, tripId)
		if err != nil {
			return err
		}
		if !trip.SignupsOpen(rep.Now()) {
			return gerr.TripNotOpen
		}
		if _, err := rep.Participants().GetParticipantById(ctx, participantId); err != nil {
			return err
		}

		existing, err := rep.Signups().GetActiveSignupsByParticipant(ctx, participantId)
		if err != nil {
			return fmt.Errorf("can't get participant signups: %w", err)
		}
		for _, e := range existing {
			if e.TripId == tripId {
				return gerr.SignupExists
			}
		}

		id, err := rep.Signups().AddSignup(ctx, &entity.SignupInsert{
			ParticipantId: participantId,
			TripId:        tripId,
			Rank:          len(existing) + 1,
		})
		if err != nil {
			return err
		}
		signup, err := rep.Signups().GetSignupById(ctx, id)
		if err != nil {
			return err
		}

		res = &SignupResult{Signup: signup, Outcome: SignupRanked}
		if trip.Algorithm != entity.AlgorithmFCFS {
			return nil
		}
		return s.arrive(ctx, rep, trip, res)
	})
	if err != nil {
		return nil, err
	}

	switch res.Outcome {
	case SignupPlaced:
		metrics.PlacementsTotal.WithLabelValues(metrics.ModeFCFS).Inc()
	case SignupWaitlisted:
		metrics.WaitlistedTotal.WithLabelValues(metrics.ModeFCFS).Inc()
	}
	slog.Default().InfoContext(ctx, "signup added",
		slog.Int("signup_id", res.Signup.Id),
		slog.Int("participant_id", participantId),
		slog.Int("trip_id", tripId),
		slog.String("outcome", string(res.Outcome)),
	)
	return res, nil
}

// arrive runs the FCFS step for a new signup on trip.
func (s *Service) arrive(ctx context.Context, rep dependency.Repository, trip *entity.Trip, res *SignupResult) error {
	roster, err := rep.Signups().GetRoster(ctx, trip.Id)
	if err != nil {
		return fmt.Errorf("can't get roster: %w", err)
	}
	entries, err := rep.Waitlists().GetWaitlist(ctx, trip.Id)
	if err != nil {
		return fmt.Errorf("can't get waitlist: %w", err)
	}
	q := waitlist.New(trip.Id, entries)

	out, err := fcfs.Place(trip.MaxParticipants, len(roster), q, res.Signup.Id)
	if err != nil {
		return err
	}
	switch out {
	case fcfs.OutcomePlaced:
		seq := nextRosterSeq(roster)
		err := rep.Signups().SetPlacements(ctx, []entity.SignupPlacement{
			{SignupId: res.Signup.Id, OnTrip: true, RosterSeq: seq},
		})
		if err != nil {
			return fmt.Errorf("can't place signup: %w", err)
		}
		res.Signup.OnTrip = true
		res.Signup.RosterSeq = seq
		res.Outcome = SignupPlaced
	case fcfs.OutcomeWaitlisted:
		if err := rep.Waitlists().ReplaceWaitlist(ctx, trip.Id, q.Entries()); err != nil {
			return fmt.Errorf("can't update waitlist: %w", err)
		}
		res.WaitlistPosition, _ = q.Position(res.Signup.Id)
		res.Outcome = SignupWaitlisted
	}
	return nil
}

// DropSignup withdraws a signup. A seat it frees goes to the head of the
// trip's waitlist; the promoted signup is returned, or nil when nobody was
// waiting. The participant's remaining signups are re-ranked 1..n.
func (s *Service) DropSignup(ctx context.Context, signupId int) (*entity.Signup, error) {
	signup, err := s.repo.Signups().GetSignupById(ctx, signupId)
	if err != nil {
		return nil, err
	}
	if signup.Deleted {
		return nil, gerr.SignupWithdrawn
	}

	unlock, err := s.locker.Lock(ctx, signup.TripId)
	if err != nil {
		return nil, fmt.Errorf("can't lock trip %d: %w", signup.TripId, err)
	}
	defer unlock()

	var promoted *entity.Signup
	err = s.repo.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		promoted = nil
		trip, err := rep.Trips().GetTripForUpdate(ctx, signup.TripId)
		if err != nil {
			return err
		}
		cur, err := rep.Signups().GetSignupById(ctx, signupId)
		if err != nil {
			return err
		}
		if cur.Deleted {
			return gerr.SignupWithdrawn
		}

		if err := rep.Signups().SoftDeleteSignup(ctx, cur.Id); err != nil {
			return fmt.Errorf("can't withdraw signup: %w", err)
		}

		entries, err := rep.Waitlists().GetWaitlist(ctx, trip.Id)
		if err != nil {
			return fmt.Errorf("can't get waitlist: %w", err)
		}
		q := waitlist.New(trip.Id, entries)
		_, removed := q.Remove(cur.Id)

		if cur.OnTrip {
			roster, err := rep.Signups().GetRoster(ctx, trip.Id)
			if err != nil {
				return fmt.Errorf("can't get roster: %w", err)
			}
			ps, err := promote(ctx, rep, trip, roster, q, 1)
			if err != nil {
				return err
			}
			if len(ps) > 0 {
				promoted = &ps[0]
			}
		}
		if removed || promoted != nil {
			if err := rep.Waitlists().ReplaceWaitlist(ctx, trip.Id, q.Entries()); err != nil {
				return fmt.Errorf("can't update waitlist: %w", err)
			}
		}

		return rerank(ctx, rep, cur.ParticipantId)
	})
	if err != nil {
		return nil, err
	}

	attrs := []any{
		slog.Int("signup_id", signupId),
		slog.Int("trip_id", signup.TripId),
	}
	if promoted != nil {
		metrics.PromotionsTotal.Inc()
		attrs = append(attrs, slog.Int("promoted_signup_id", promoted.Id))
	}
	slog.Default().InfoContext(ctx, "signup dropped", attrs...)
	return promoted, nil
}

// promote seats up to n waitlisted signups while the trip has free seats,
// head of the queue first. The caller persists the queue.
func promote(ctx context.Context, rep dependency.Repository, trip *entity.Trip, roster []entity.Signup, q *waitlist.Queue, n int) ([]entity.Signup, error) {
	var promoted []entity.Signup
	onTrip := len(roster)
	seq := nextRosterSeq(roster)
	for i := 0; i < n && fcfs.FreeSeats(trip.MaxParticipants, onTrip) > 0; i++ {
		e, ok := q.PromoteNext()
		if !ok {
			break
		}
		err := rep.Signups().SetPlacements(ctx, []entity.SignupPlacement{
			{SignupId: e.SignupId, OnTrip: true, RosterSeq: seq},
		})
		if err != nil {
			return nil, fmt.Errorf("can't promote signup %d: %w", e.SignupId, err)
		}
		p, err := rep.Signups().GetSignupById(ctx, e.SignupId)
		if err != nil {
			return nil, err
		}
		promoted = append(promoted, *p)
		onTrip++
		seq++
	}
	return promoted, nil
}

// rerank closes the gaps in a participant's ranks.
func rerank(ctx context.Context, rep dependency.Repository, participantId int) error {
	active, err := rep.Signups().GetActiveSignupsByParticipant(ctx, participantId)
	if err != nil {
		return fmt.Errorf("can't get participant signups: %w", err)
	}
	var ranks []entity.SignupRank
	for i, a := range active {
		if a.Rank != i+1 {
			ranks = append(ranks, entity.SignupRank{SignupId: a.Id, Rank: i + 1})
		}
	}
	if len(ranks) == 0 {
		return nil
	}
	if err := rep.Signups().UpdateSignupRanks(ctx, ranks); err != nil {
		return fmt.Errorf("can't update ranks: %w", err)
	}
	return nil
}

// ReorderSignups re-ranks a participant's active signups: signupIds lists
// all of them, most preferred first.
func (s *Service) ReorderSignups(ctx context.Context, participantId int, signupIds []int) ([]entity.Signup, error) {
	var out []entity.Signup
	err := s.repo.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		active, err := rep.Signups().GetActiveSignupsByParticipant(ctx, participantId)
		if err != nil {
			return fmt.Errorf("can't get participant signups: %w", err)
		}
		if len(active) != len(signupIds) {
			return gerr.InvalidRankOrder
		}
		byId := make(map[int]entity.Signup, len(active))
		for _, a := range active {
			byId[a.Id] = a
		}

		out = make([]entity.Signup, 0, len(signupIds))
		ranks := make([]entity.SignupRank, 0, len(signupIds))
		for i, id := range signupIds {
			a, ok := byId[id]
			if !ok {
				return gerr.InvalidRankOrder
			}
			delete(byId, id)
			a.Rank = i + 1
			out = append(out, a)
			ranks = append(ranks, entity.SignupRank{SignupId: id, Rank: i + 1})
		}
		if err := rep.Signups().UpdateSignupRanks(ctx, ranks); err != nil {
			return fmt.Errorf("can't update ranks: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
