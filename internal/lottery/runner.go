// Package lottery runs the weighted lottery that decides the rosters and
// waitlists of every lottery trip in a cycle.
package lottery

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/outingclub/trip-lottery/internal/driver"
	"github.com/outingclub/trip-lottery/internal/entity"
	"github.com/outingclub/trip-lottery/internal/pairing"
)

// State is where a runner is in its lifecycle.
type State int32

const (
	StateNotStarted State = iota
	StateInProgress
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StateInProgress:
		return "in_progress"
	case StateCompleted:
		return "completed"
	}
	return fmt.Sprintf("state(%d)", int32(s))
}

// Result is the outcome of a completed run.
type Result struct {
	CycleId string
	Seed    int64
	// Order is the processing order of the participants.
	Order      []int
	Placements []entity.SignupPlacement
	// Rosters maps a trip to its signup ids in seat order.
	Rosters    map[int][]int
	Waitlists  map[int][]entity.WaitlistEntry
	TripIds    []int
	Placed     int
	Waitlisted int
	// Promoted counts signups seated off a waitlist they were on before the run.
	Promoted int
	Log      []string
}

// LogText is the audit log as stored.
func (r *Result) LogText() string {
	return JoinLog(r.Log)
}

// Outcome converts the result into what the store persists.
func (r *Result) Outcome(completedAt time.Time) entity.LotteryOutcome {
	return entity.LotteryOutcome{
		Run: entity.LotteryRun{
			CycleId:     r.CycleId,
			Seed:        r.Seed,
			Log:         r.LogText(),
			Placed:      r.Placed,
			Waitlisted:  r.Waitlisted,
			CompletedAt: completedAt,
		},
		Placements: r.Placements,
		Waitlists:  r.Waitlists,
		TripIds:    r.TripIds,
	}
}

// Runner executes the lottery of one cycle exactly once.
type Runner struct {
	mu      sync.Mutex
	state   State
	weights Weights
}

// NewRunner creates a runner that ranks participants with the given weights.
func NewRunner(w Weights) *Runner {
	if w == nil {
		w = DefaultWeights()
	}
	return &Runner{weights: w}
}

// State returns the current state of the runner.
func (r *Runner) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Run allocates the seats of every lottery trip in snap. The run either
// completes or returns an error with nothing applied; after an
// InvariantViolation the runner is back in StateNotStarted.
func (r *Runner) Run(ctx context.Context, snap entity.LotterySnapshot, seed int64) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state == StateCompleted || snap.Cycle.Status == entity.CycleStatusCompleted {
		return nil, ErrAlreadyRun
	}
	r.state = StateInProgress

	res, err := r.run(ctx, snap, seed)
	if err != nil {
		r.state = StateNotStarted
		slog.Default().ErrorContext(ctx, "lottery aborted",
			slog.String("cycle_id", snap.Cycle.Id),
			slog.String("err", err.Error()),
		)
		return nil, err
	}
	r.state = StateCompleted
	slog.Default().InfoContext(ctx, "lottery completed",
		slog.String("cycle_id", res.CycleId),
		slog.Int64("seed", res.Seed),
		slog.Int("placed", res.Placed),
		slog.Int("waitlisted", res.Waitlisted),
		slog.Int("promoted", res.Promoted),
	)
	return res, nil
}

func (r *Runner) run(ctx context.Context, snap entity.LotterySnapshot, seed int64) (*Result, error) {
	log := &auditLog{}
	log.add("lottery %s started, seed %d", snap.Cycle.Id, seed)

	a, err := newAllocation(snap, log)
	if err != nil {
		return nil, withLog(err, log)
	}
	resolver := pairing.NewResolver(snap.PairRequests)

	ranked := processingOrder(a.candidates(), seed, r.weights, func(id int) string {
		return a.participants[id].Affiliation
	})
	log.add("processing %d participants for %d trips", len(ranked), len(a.tripIds))
	order := make([]int, 0, len(ranked))
	for i, rp := range ranked {
		order = append(order, rp.id)
		log.add("%d. %s key %s", i+1, a.name(rp.id), rp.key.StringFixed(4))
	}

	var pairs []entity.ReciprocalPair
	for i, pid := range order {
		if tripId, ok := a.seated[pid]; ok {
			log.add("skipped %s: already on %s", a.name(pid), a.tripName(tripId))
			continue
		}
		if a.handled[pid] {
			if p, ok := a.placed[pid]; ok {
				log.add("skipped %s: already placed on %s", a.name(pid), a.tripName(p.tripId))
			} else {
				log.add("skipped %s: already handled with their partner", a.name(pid))
			}
			continue
		}

		pair, paired := resolver.Resolve(pid)
		if !paired {
			if requested, has, _ := resolver.Pending(pid); has {
				log.info("%s requested %s, not reciprocated", a.name(pid), a.name(requested))
			}
		}
		if paired {
			pairs = append(pairs, pair)
			done, err := r.placePair(a, pid, pair.Partner(pid), i)
			if err != nil {
				return nil, withLog(err, log)
			}
			if done {
				continue
			}
		}
		if err := r.placeSingle(a, pid, i); err != nil {
			return nil, withLog(err, log)
		}
	}

	if err := a.check(pairs); err != nil {
		return nil, withLog(err, log)
	}

	slog.Default().DebugContext(ctx, "lottery allocation done",
		slog.String("cycle_id", snap.Cycle.Id),
		slog.Int("participants", len(order)),
	)
	res := a.result(snap.Cycle.Id, seed, order, nil)
	log.add("lottery %s completed: %d placed, %d waitlisted", snap.Cycle.Id, res.Placed, res.Waitlisted)
	res.Log = log.snapshot()
	return res, nil
}

// placePair handles a participant with a reciprocal partner. A partner already
// on a trip before the run is joined there when a seat is free. It reports false
// when pairing does not apply and the participant must be placed alone.
func (r *Runner) placePair(a *allocation, pid, partner, order int) (bool, error) {
	if tripId, ok := a.seated[partner]; ok {
		if s, ok := a.signupFor(pid, tripId); ok && a.trips[tripId].free() > 0 {
			if err := a.place(s, order, false); err != nil {
				return false, err
			}
			a.log.add("%s joined partner %s on %s (rank %d)",
				a.name(pid), a.name(partner), a.tripName(tripId), s.Rank)
			return true, nil
		}
	}
	if !a.available(partner) {
		a.log.info("pairing degraded: %s and %s, partner is not competing in this lottery", a.name(pid), a.name(partner))
		return false, nil
	}

	var shared []entity.Signup
	for _, s := range a.ranked[pid] {
		if _, ok := a.signupFor(partner, s.TripId); ok {
			shared = append(shared, s)
		}
	}
	if len(shared) == 0 {
		a.log.info("pairing degraded: %s and %s share no trip", a.name(pid), a.name(partner))
		return false, nil
	}

	for _, s := range a.ranked[pid] {
		ps, ok := a.signupFor(partner, s.TripId)
		if !ok {
			a.log.add("pair %s/%s: %s did not sign up for %s, skipped",
				a.name(pid), a.name(partner), a.name(partner), a.tripName(s.TripId))
			continue
		}
		if free := a.trips[s.TripId].free(); free < 2 {
			a.log.add("pair %s/%s: %s has %d free seat(s), skipped",
				a.name(pid), a.name(partner), a.tripName(s.TripId), free)
			continue
		}
		if err := a.place(s, order, true); err != nil {
			return false, err
		}
		if err := a.place(ps, order, true); err != nil {
			return false, err
		}
		a.log.add("placed pair %s and %s on %s (rank %d)",
			a.name(pid), a.name(partner), a.tripName(s.TripId), s.Rank)
		return true, nil
	}

	first := shared[0]
	ps, _ := a.signupFor(partner, first.TripId)
	a.log.add("pair %s/%s: no shared trip with two free seats", a.name(pid), a.name(partner))
	if err := a.waitlist(first); err != nil {
		return false, err
	}
	if err := a.waitlist(ps); err != nil {
		return false, err
	}
	return true, nil
}

func (r *Runner) placeSingle(a *allocation, pid, order int) error {
	ranked := a.ranked[pid]
	p := a.participants[pid]
	for _, s := range ranked {
		if a.trips[s.TripId].free() > 0 {
			if err := a.place(s, order, false); err != nil {
				return err
			}
			a.log.add("placed %s on %s (rank %d)", a.name(pid), a.tripName(s.TripId), s.Rank)
			return nil
		}
		load := a.load(s.TripId)
		if driver.PriorityFor(load, p) == entity.DriverPriorityBonus {
			a.log.add("%s has a driver bonus on %s: %d seats for %d riders, %d short",
				a.name(pid), a.tripName(s.TripId), load.SeatsReserved, load.Riders, load.Shortfall())
			moved, err := r.displace(a, s, order, load)
			if err != nil {
				return err
			}
			if moved {
				return nil
			}
		}
		a.log.add("%s is full for %s, rank %d skipped", a.tripName(s.TripId), a.name(pid), s.Rank)
	}
	return a.waitlist(ranked[0])
}

// displace seats a driver on a full trip by moving one rider placed earlier
// in this run to another trip on the rider's list that still has room.
// Riders are tried from the latest processed to the earliest and are moved
// at most one hop; nobody is waitlisted to make room.
func (r *Runner) displace(a *allocation, s entity.Signup, order int, load driver.Load) (bool, error) {
	type occupant struct {
		pid int
		at  placement
	}
	var riders []occupant
	for _, sid := range a.trips[s.TripId].roster {
		pid := a.signups[sid].ParticipantId
		at, ok := a.placed[pid]
		if !ok || at.paired {
			continue
		}
		occ := a.participants[pid]
		if !occ.NeedsRide() {
			continue
		}
		riders = append(riders, occupant{pid: pid, at: at})
	}
	sort.SliceStable(riders, func(i, j int) bool {
		return riders[i].at.order > riders[j].at.order
	})

	for _, o := range riders {
		for _, alt := range a.ranked[o.pid] {
			if alt.TripId == s.TripId || a.trips[alt.TripId].free() <= 0 {
				continue
			}
			a.unplace(o.pid)
			if err := a.place(alt, o.at.order, false); err != nil {
				return false, err
			}
			if err := a.place(s, order, false); err != nil {
				return false, err
			}
			after := load.Without(a.participants[o.pid]).With(a.participants[s.ParticipantId])
			a.log.add("%s displaced %s from %s to %s (rank %d)",
				a.name(s.ParticipantId), a.name(o.pid), a.tripName(s.TripId), a.tripName(alt.TripId), alt.Rank)
			a.log.add("%s now has %d seats for %d riders, %d short",
				a.tripName(s.TripId), after.SeatsReserved, after.Riders, after.Shortfall())
			a.log.add("placed %s on %s (rank %d)", a.name(s.ParticipantId), a.tripName(s.TripId), s.Rank)
			return true, nil
		}
	}
	a.log.add("no rider on %s can move for %s", a.tripName(s.TripId), a.name(s.ParticipantId))
	return false, nil
}

func withLog(err error, log *auditLog) error {
	var iv *InvariantViolation
	if errors.As(err, &iv) {
		iv.Log = log.snapshot()
		return iv
	}
	return err
}
