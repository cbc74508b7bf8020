// Package waitlist keeps the ordered waitlist of one trip.
package waitlist

import (
	"fmt"
	"sort"

	"github.com/outingclub/trip-lottery/internal/entity"
)

// Queue is the waitlist of a single trip, strictly ordered by tier (desc) and
// position (asc). Positions are always 0..Len()-1.
// Queue is not safe for concurrent use; callers hold the trip lock.
type Queue struct {
	tripId  int
	entries []entity.WaitlistEntry
}

// New builds a queue from persisted entries. Entries are sorted into waitlist
// order and renumbered, so gaps left by earlier deletes disappear.
func New(tripId int, entries []entity.WaitlistEntry) *Queue {
	q := &Queue{
		tripId:  tripId,
		entries: make([]entity.WaitlistEntry, len(entries)),
	}
	copy(q.entries, entries)
	sort.SliceStable(q.entries, func(i, j int) bool {
		a, b := q.entries[i], q.entries[j]
		if a.Tier != b.Tier {
			return a.Tier > b.Tier
		}
		if a.Position != b.Position {
			return a.Position < b.Position
		}
		return a.SignupId < b.SignupId
	})
	q.renumber()
	return q
}

// TripId returns the trip the queue belongs to.
func (q *Queue) TripId() int {
	return q.tripId
}

// Len returns the number of waiting signups.
func (q *Queue) Len() int {
	return len(q.entries)
}

// Entries returns a copy of the queue in promotion order.
func (q *Queue) Entries() []entity.WaitlistEntry {
	out := make([]entity.WaitlistEntry, len(q.entries))
	copy(out, q.entries)
	return out
}

// Contains reports whether the signup is waiting.
func (q *Queue) Contains(signupId int) bool {
	return q.indexOf(signupId) >= 0
}

// Position returns the 0-based place of the signup in the queue.
func (q *Queue) Position(signupId int) (int, bool) {
	i := q.indexOf(signupId)
	return i, i >= 0
}

// Insert adds a signup to the queue.
//
//   - normal goes to the bottom
//   - leader-added and driver-bumped go after every entry of equal or higher
//     tier, ahead of all lower tiers
//   - absolute-top always becomes position 0
func (q *Queue) Insert(signupId int, tier entity.WaitlistTier) (entity.WaitlistEntry, error) {
	if !tier.Valid() {
		return entity.WaitlistEntry{}, fmt.Errorf("invalid waitlist tier %d", int(tier))
	}
	if q.Contains(signupId) {
		return entity.WaitlistEntry{}, fmt.Errorf("signup %d already waitlisted on trip %d", signupId, q.tripId)
	}

	e := entity.WaitlistEntry{
		TripId:   q.tripId,
		SignupId: signupId,
		Tier:     tier,
	}

	at := len(q.entries)
	switch tier {
	case entity.WaitlistTierAbsoluteTop:
		at = 0
	case entity.WaitlistTierNormal:
	default:
		at = 0
		for at < len(q.entries) && q.entries[at].Tier >= tier {
			at++
		}
	}

	q.entries = append(q.entries, entity.WaitlistEntry{})
	copy(q.entries[at+1:], q.entries[at:])
	q.entries[at] = e
	q.renumber()
	return q.entries[at], nil
}

// PromoteNext removes and returns the head of the queue.
func (q *Queue) PromoteNext() (entity.WaitlistEntry, bool) {
	if len(q.entries) == 0 {
		return entity.WaitlistEntry{}, false
	}
	head := q.entries[0]
	q.removeAt(0)
	return head, true
}

// Remove takes a signup off the queue. It reports whether the signup was waiting.
func (q *Queue) Remove(signupId int) (entity.WaitlistEntry, bool) {
	i := q.indexOf(signupId)
	if i < 0 {
		return entity.WaitlistEntry{}, false
	}
	e := q.entries[i]
	q.removeAt(i)
	return e, true
}

// Reprioritize moves a waiting signup to tier, placing it as Insert would.
func (q *Queue) Reprioritize(signupId int, tier entity.WaitlistTier) (entity.WaitlistEntry, error) {
	if !tier.Valid() {
		return entity.WaitlistEntry{}, fmt.Errorf("invalid waitlist tier %d", int(tier))
	}
	old, ok := q.Remove(signupId)
	if !ok {
		return entity.WaitlistEntry{}, fmt.Errorf("signup %d is not waitlisted on trip %d", signupId, q.tripId)
	}
	e, err := q.Insert(signupId, tier)
	if err != nil {
		return entity.WaitlistEntry{}, err
	}
	q.entries[e.Position].Id = old.Id
	q.entries[e.Position].CreatedAt = old.CreatedAt
	return q.entries[e.Position], nil
}

func (q *Queue) removeAt(i int) {
	q.entries = append(q.entries[:i], q.entries[i+1:]...)
	q.renumber()
}

func (q *Queue) indexOf(signupId int) int {
	for i := range q.entries {
		if q.entries[i].SignupId == signupId {
			return i
		}
	}
	return -1
}

func (q *Queue) renumber() {
	for i := range q.entries {
		q.entries[i].Position = i
	}
}
