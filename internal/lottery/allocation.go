package lottery

import (
	"fmt"
	"sort"

	"github.com/outingclub/trip-lottery/internal/driver"
	"github.com/outingclub/trip-lottery/internal/entity"
	"github.com/outingclub/trip-lottery/internal/waitlist"
)

// tripSeats is the roster and waitlist of one trip while a run is in progress.
type tripSeats struct {
	trip    entity.Trip
	roster  []int // signup ids in seat order
	seq     map[int]int
	nextSeq int
	queue   *waitlist.Queue
}

func (t *tripSeats) free() int {
	return t.trip.MaxParticipants - len(t.roster)
}

func (t *tripSeats) seat(signupId int) {
	t.roster = append(t.roster, signupId)
	t.seq[signupId] = t.nextSeq
	t.nextSeq++
}

func (t *tripSeats) unseat(signupId int) {
	for i, id := range t.roster {
		if id == signupId {
			t.roster = append(t.roster[:i], t.roster[i+1:]...)
			delete(t.seq, signupId)
			return
		}
	}
}

// placement is a seat handed out by the current run.
type placement struct {
	tripId   int
	signupId int
	order    int
	paired   bool
}

// allocation is the whole mutable state of one run. It is built from a
// snapshot and never touches anything outside itself.
type allocation struct {
	cycleId      string
	trips        map[int]*tripSeats
	tripIds      []int
	participants map[int]entity.Participant
	signups      map[int]entity.Signup
	// ranked holds the signups each participant competes with, best rank first.
	ranked       map[int][]entity.Signup
	// seated maps participants already on a cycle trip before the run to that trip.
	seated       map[int]int
	placed       map[int]placement
	handled      map[int]bool
	waitlisted   int
	promoted     int
	log          *auditLog
}

func newAllocation(snap entity.LotterySnapshot, log *auditLog) (*allocation, error) {
	a := &allocation{
		cycleId:      snap.Cycle.Id,
		trips:        make(map[int]*tripSeats, len(snap.Trips)),
		participants: make(map[int]entity.Participant, len(snap.Participants)),
		signups:      make(map[int]entity.Signup, len(snap.Signups)),
		ranked:       make(map[int][]entity.Signup),
		seated:       make(map[int]int),
		placed:       make(map[int]placement),
		handled:      make(map[int]bool),
		log:          log,
	}
	for _, p := range snap.Participants {
		a.participants[p.Id] = p
	}

	waiting := make(map[int][]entity.WaitlistEntry)
	for _, e := range snap.Waitlists {
		waiting[e.TripId] = append(waiting[e.TripId], e)
	}
	for _, t := range snap.Trips {
		if t.Algorithm != entity.AlgorithmLottery {
			continue
		}
		if t.MaxParticipants < 0 {
			return nil, a.violation("trip %d has negative capacity %d", t.Id, t.MaxParticipants)
		}
		a.trips[t.Id] = &tripSeats{
			trip:  t,
			seq:   make(map[int]int),
			queue: waitlist.New(t.Id, waiting[t.Id]),
		}
		a.tripIds = append(a.tripIds, t.Id)
	}
	sort.Ints(a.tripIds)

	signups := make([]entity.Signup, len(snap.Signups))
	copy(signups, snap.Signups)
	sort.SliceStable(signups, func(i, j int) bool {
		if signups[i].RosterSeq != signups[j].RosterSeq {
			return signups[i].RosterSeq < signups[j].RosterSeq
		}
		return signups[i].Id < signups[j].Id
	})
	for _, s := range signups {
		a.signups[s.Id] = s
		ts, ok := a.trips[s.TripId]
		if !ok || !s.Active() {
			continue
		}
		if _, ok := a.participants[s.ParticipantId]; !ok {
			return nil, a.violation("signup %d references unknown participant %d", s.Id, s.ParticipantId)
		}
		if !s.OnTrip {
			a.ranked[s.ParticipantId] = append(a.ranked[s.ParticipantId], s)
			continue
		}
		if prev, ok := a.seated[s.ParticipantId]; ok {
			return nil, a.violation("participant %d is on trips %d and %d", s.ParticipantId, prev, s.TripId)
		}
		a.seated[s.ParticipantId] = s.TripId
		ts.roster = append(ts.roster, s.Id)
		ts.seq[s.Id] = s.RosterSeq
		if s.RosterSeq >= ts.nextSeq {
			ts.nextSeq = s.RosterSeq + 1
		}
	}

	for _, id := range a.tripIds {
		if free := a.trips[id].free(); free < 0 {
			return nil, a.violation("trip %d starts with %d free seats", id, free)
		}
	}
	for pid := range a.ranked {
		r := a.ranked[pid]
		sort.SliceStable(r, func(i, j int) bool {
			if r[i].Rank != r[j].Rank {
				return r[i].Rank < r[j].Rank
			}
			return r[i].TripId < r[j].TripId
		})
	}
	return a, nil
}

func (a *allocation) violation(format string, args ...any) *InvariantViolation {
	reason := fmt.Sprintf(format, args...)
	a.log.fatal("%s", reason)
	return &InvariantViolation{CycleId: a.cycleId, Reason: reason}
}

// candidates returns the participants that compete in this run, ascending.
func (a *allocation) candidates() []int {
	ids := make([]int, 0, len(a.ranked))
	for pid := range a.ranked {
		ids = append(ids, pid)
	}
	sort.Ints(ids)
	return ids
}

func (a *allocation) name(participantId int) string {
	p, ok := a.participants[participantId]
	if !ok || p.Name == "" {
		return fmt.Sprintf("#%d", participantId)
	}
	return fmt.Sprintf("%s (#%d)", p.Name, participantId)
}

func (a *allocation) tripName(tripId int) string {
	ts, ok := a.trips[tripId]
	if !ok {
		return fmt.Sprintf("trip #%d", tripId)
	}
	return fmt.Sprintf("%s (#%d)", ts.trip.String(), tripId)
}

// signupFor returns the competing signup of a participant on a trip.
func (a *allocation) signupFor(participantId, tripId int) (entity.Signup, bool) {
	for _, s := range a.ranked[participantId] {
		if s.TripId == tripId {
			return s, true
		}
	}
	return entity.Signup{}, false
}

// available reports whether a participant can still be placed by this run.
func (a *allocation) available(participantId int) bool {
	if a.handled[participantId] {
		return false
	}
	if _, ok := a.seated[participantId]; ok {
		return false
	}
	return len(a.ranked[participantId]) > 0
}

func (a *allocation) load(tripId int) driver.Load {
	ts := a.trips[tripId]
	roster := make([]entity.Participant, 0, len(ts.roster))
	for _, sid := range ts.roster {
		roster = append(roster, a.participants[a.signups[sid].ParticipantId])
	}
	return driver.LoadOf(roster)
}

func (a *allocation) place(s entity.Signup, order int, paired bool) error {
	ts := a.trips[s.TripId]
	if ts.free() <= 0 {
		return a.violation("no free seat for signup %d on trip %d", s.Id, s.TripId)
	}
	if p, ok := a.placed[s.ParticipantId]; ok {
		return a.violation("participant %d already placed on trip %d", s.ParticipantId, p.tripId)
	}
	ts.seat(s.Id)
	a.placed[s.ParticipantId] = placement{tripId: s.TripId, signupId: s.Id, order: order, paired: paired}
	a.handled[s.ParticipantId] = true
	// a signup queued before the run leaves the waitlist with its seat
	if e, ok := ts.queue.Remove(s.Id); ok {
		a.promoted++
		a.log.add("promoted %s from position %d of the %s waitlist, %d still waiting",
			a.name(s.ParticipantId), e.Position, a.tripName(s.TripId), ts.queue.Len())
	}
	return nil
}

func (a *allocation) unplace(participantId int) {
	p, ok := a.placed[participantId]
	if !ok {
		return
	}
	a.trips[p.tripId].unseat(p.signupId)
	delete(a.placed, participantId)
}

func (a *allocation) waitlist(s entity.Signup) error {
	a.handled[s.ParticipantId] = true
	q := a.trips[s.TripId].queue
	if q.Contains(s.Id) {
		pos, _ := q.Position(s.Id)
		a.log.add("%s stays waitlisted on %s at position %d", a.name(s.ParticipantId), a.tripName(s.TripId), pos)
		return nil
	}
	e, err := q.Insert(s.Id, entity.WaitlistTierNormal)
	if err != nil {
		return a.violation("can't waitlist signup %d: %v", s.Id, err)
	}
	a.waitlisted++
	a.log.add("waitlisted %s on %s at position %d", a.name(s.ParticipantId), a.tripName(s.TripId), e.Position)
	return nil
}

// check verifies the end state before anything leaves the run.
func (a *allocation) check(pairs []entity.ReciprocalPair) error {
	onTrip := make(map[int]int)
	for _, id := range a.tripIds {
		ts := a.trips[id]
		if ts.free() < 0 {
			return a.violation("trip %d is over capacity: %d of %d", id, len(ts.roster), ts.trip.MaxParticipants)
		}
		for _, sid := range ts.roster {
			pid := a.signups[sid].ParticipantId
			if prev, ok := onTrip[pid]; ok {
				return a.violation("participant %d placed on trips %d and %d", pid, prev, id)
			}
			onTrip[pid] = id
			if ts.queue.Contains(sid) {
				return a.violation("signup %d is both on trip %d and waitlisted", sid, id)
			}
		}
	}
	for _, pair := range pairs {
		first, firstOk := a.placed[pair.First]
		second, secondOk := a.placed[pair.Second]
		if !first.paired && !second.paired {
			continue
		}
		if !firstOk || !secondOk || first.tripId != second.tripId {
			return a.violation("pair %d/%d split across placement", pair.First, pair.Second)
		}
	}
	return nil
}

func (a *allocation) result(cycleId string, seed int64, order []int, log []string) *Result {
	res := &Result{
		CycleId:   cycleId,
		Seed:      seed,
		Order:     order,
		Rosters:   make(map[int][]int, len(a.tripIds)),
		Waitlists: make(map[int][]entity.WaitlistEntry, len(a.tripIds)),
		Log:       log,
	}
	for _, id := range a.tripIds {
		ts := a.trips[id]
		res.Rosters[id] = append([]int{}, ts.roster...)
		res.Waitlists[id] = ts.queue.Entries()
		res.TripIds = append(res.TripIds, id)
		for _, sid := range ts.roster {
			if a.signups[sid].OnTrip {
				continue
			}
			res.Placements = append(res.Placements, entity.SignupPlacement{
				SignupId:  sid,
				OnTrip:    true,
				RosterSeq: ts.seq[sid],
			})
		}
	}
	res.Placed = len(res.Placements)
	res.Waitlisted = a.waitlisted
	res.Promoted = a.promoted
	return res
}
