// Package fcfs places signups on first-come-first-serve trips.
package fcfs

import (
	"fmt"
	"sort"

	"github.com/outingclub/trip-lottery/internal/entity"
	"github.com/outingclub/trip-lottery/internal/waitlist"
)

// Outcome is what happened to one arriving signup.
type Outcome string

const (
	OutcomePlaced     Outcome = "placed"
	OutcomeWaitlisted Outcome = "waitlisted"
)

// Result is the allocation of a whole ordered signup list.
type Result struct {
	// Roster holds the placed signup ids in seat order.
	Roster []int
	// Waitlist holds the overflow in queue order.
	Waitlist []entity.WaitlistEntry
}

// Order sorts signups by arrival: created_at, then id.
func Order(signups []entity.Signup) []entity.Signup {
	out := make([]entity.Signup, len(signups))
	copy(out, signups)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].Id < out[j].Id
	})
	return out
}

// Allocate places every active signup of one trip in arrival order, seating
// while capacity lasts and waitlisting the rest at normal tier.
// The input is not modified and the result only depends on its content.
func Allocate(tripId, capacity int, signups []entity.Signup) (Result, error) {
	if capacity < 0 {
		return Result{}, fmt.Errorf("negative capacity %d for trip %d", capacity, tripId)
	}
	q := waitlist.New(tripId, nil)
	res := Result{Roster: []int{}}
	onTrip := 0
	for _, s := range Order(signups) {
		if !s.Active() {
			continue
		}
		out, err := Place(capacity, onTrip, q, s.Id)
		if err != nil {
			return Result{}, err
		}
		if out == OutcomePlaced {
			onTrip++
			res.Roster = append(res.Roster, s.Id)
		}
	}
	res.Waitlist = q.Entries()
	return res, nil
}

// Place handles one arriving signup on a trip that already seats onTrip
// participants: it gets a seat if one is free, otherwise it joins the bottom
// of the queue. The caller holds the trip lock.
func Place(capacity, onTrip int, q *waitlist.Queue, signupId int) (Outcome, error) {
	if onTrip > capacity {
		return "", fmt.Errorf("trip %d seats %d of %d", q.TripId(), onTrip, capacity)
	}
	if onTrip < capacity {
		return OutcomePlaced, nil
	}
	if _, err := q.Insert(signupId, entity.WaitlistTierNormal); err != nil {
		return "", fmt.Errorf("can't waitlist signup %d: %w", signupId, err)
	}
	return OutcomeWaitlisted, nil
}

// FreeSeats returns the seats a trip can still hand out. Negative counts mean
// the roster is over capacity and are returned unchanged for the caller to report.
func FreeSeats(capacity, onTrip int) int {
	return capacity - onTrip
}
