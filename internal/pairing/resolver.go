// Package pairing answers whether two participants asked to be placed together.
package pairing

import (
	"sort"

	"github.com/outingclub/trip-lottery/internal/entity"
)

// Resolver looks up reciprocal pairings over a fixed set of pair requests.
// Requests are kept as two one-directional edge sets; reciprocity is computed
// on demand so there is no "paired" flag to fall out of sync.
type Resolver struct {
	requested   map[int]int   // participant -> partner they asked for
	requestedBy map[int][]int // participant -> everyone who asked for them
}

// NewResolver builds a resolver from active pair requests. A participant has at
// most one outgoing request; a later request replaces an earlier one. Requests
// naming oneself are ignored.
func NewResolver(requests []entity.PairRequest) *Resolver {
	r := &Resolver{
		requested:   make(map[int]int, len(requests)),
		requestedBy: make(map[int][]int, len(requests)),
	}
	for _, req := range requests {
		if req.ParticipantId == req.PartnerId {
			continue
		}
		if prev, ok := r.requested[req.ParticipantId]; ok {
			r.requestedBy[prev] = removeId(r.requestedBy[prev], req.ParticipantId)
		}
		r.requested[req.ParticipantId] = req.PartnerId
		r.requestedBy[req.PartnerId] = append(r.requestedBy[req.PartnerId], req.ParticipantId)
	}
	for id := range r.requestedBy {
		sort.Ints(r.requestedBy[id])
	}
	return r
}

// Resolve returns the participant's reciprocal pair, if both asked for each other.
func (r *Resolver) Resolve(participantId int) (entity.ReciprocalPair, bool) {
	partner, ok := r.requested[participantId]
	if !ok {
		return entity.ReciprocalPair{}, false
	}
	if back, ok := r.requested[partner]; !ok || back != participantId {
		return entity.ReciprocalPair{}, false
	}
	return entity.NewReciprocalPair(participantId, partner), true
}

// Pending returns the one-sided side of a participant's pairing: who they asked
// for without being asked back, and who asked for them without being asked back.
func (r *Resolver) Pending(participantId int) (requested int, hasRequested bool, requestedBy []int) {
	pair, paired := r.Resolve(participantId)
	if partner, ok := r.requested[participantId]; ok && !paired {
		requested, hasRequested = partner, true
	}
	for _, other := range r.requestedBy[participantId] {
		if paired && other == pair.Partner(participantId) {
			continue
		}
		requestedBy = append(requestedBy, other)
	}
	return requested, hasRequested, requestedBy
}

func removeId(ids []int, id int) []int {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
