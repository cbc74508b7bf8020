package dto

import (
	"time"

	"github.com/outingclub/trip-lottery/internal/entity"
)

// WaitlistEntry is the JSON form of a waitlist entry.
type WaitlistEntry struct {
	SignupId        int       `json:"signup_id"`
	TripId          int       `json:"trip_id"`
	Tier            string    `json:"tier"`
	Position        int       `json:"position"`
	ParticipantId   int       `json:"participant_id,omitempty"`
	ParticipantName string    `json:"participant_name,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

func ConvertWaitlistEntry(e *entity.WaitlistEntry) *WaitlistEntry {
	return &WaitlistEntry{
		SignupId:  e.SignupId,
		TripId:    e.TripId,
		Tier:      e.Tier.String(),
		Position:  e.Position,
		CreatedAt: e.CreatedAt,
	}
}

// ConvertWaitlist converts a joined waitlist in promotion order
func ConvertWaitlist(es []entity.WaitlistEntryWithSignup) []WaitlistEntry {
	out := make([]WaitlistEntry, 0, len(es))
	for i := range es {
		e := ConvertWaitlistEntry(&es[i].WaitlistEntry)
		e.ParticipantId = es[i].ParticipantId
		e.ParticipantName = es[i].ParticipantName
		out = append(out, *e)
	}
	return out
}
