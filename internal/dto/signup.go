package dto

import (
	"time"

	"github.com/outingclub/trip-lottery/internal/engine"
	"github.com/outingclub/trip-lottery/internal/entity"
)

// Signup is the JSON form of a signup.
type Signup struct {
	Id            int       `json:"id"`
	ParticipantId int       `json:"participant_id"`
	TripId        int       `json:"trip_id"`
	Rank          int       `json:"rank"`
	OnTrip        bool      `json:"on_trip"`
	RosterSeq     int       `json:"roster_seq,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// ConvertSignup converts an entity Signup to its JSON form
func ConvertSignup(s *entity.Signup) *Signup {
	if s == nil {
		return nil
	}
	return &Signup{
		Id:            s.Id,
		ParticipantId: s.ParticipantId,
		TripId:        s.TripId,
		Rank:          s.Rank,
		OnTrip:        s.OnTrip,
		RosterSeq:     s.RosterSeq,
		CreatedAt:     s.CreatedAt,
	}
}

// ConvertSignups converts a slice of entity Signup, keeping the order
func ConvertSignups(ss []entity.Signup) []Signup {
	out := make([]Signup, 0, len(ss))
	for i := range ss {
		out = append(out, *ConvertSignup(&ss[i]))
	}
	return out
}

// SignupResult reports where a new signup ended up.
type SignupResult struct {
	Signup           *Signup `json:"signup"`
	Outcome          string  `json:"outcome"`
	WaitlistPosition *int    `json:"waitlist_position,omitempty"`
}

func ConvertSignupResult(r *engine.SignupResult) *SignupResult {
	out := &SignupResult{
		Signup:  ConvertSignup(r.Signup),
		Outcome: string(r.Outcome),
	}
	if r.Outcome == engine.SignupWaitlisted {
		pos := r.WaitlistPosition
		out.WaitlistPosition = &pos
	}
	return out
}

// DropResult names the signup promoted into the freed seat, if any.
type DropResult struct {
	Promoted *Signup `json:"promoted"`
}

// LeaderAddResult reports a leader add and the occupant it bumped.
type LeaderAddResult struct {
	Signup           *Signup `json:"signup"`
	Placed           bool    `json:"placed"`
	WaitlistPosition *int    `json:"waitlist_position,omitempty"`
	Bumped           *Signup `json:"bumped,omitempty"`
	BumpedTier       string  `json:"bumped_tier,omitempty"`
}

func ConvertLeaderAddResult(r *engine.LeaderAddResult) *LeaderAddResult {
	out := &LeaderAddResult{
		Signup: ConvertSignup(r.Signup),
		Placed: r.Placed,
		Bumped: ConvertSignup(r.Bumped),
	}
	if !r.Placed {
		pos := r.WaitlistPosition
		out.WaitlistPosition = &pos
	}
	if r.Bumped != nil {
		out.BumpedTier = r.BumpedTier.String()
	}
	return out
}
