package entity

import "time"

// Signup is one participant's interest in one trip.
// Rank orders a participant's active signups, 1 being the favourite.
// RosterSeq orders the roster: a higher value was seated later.
type Signup struct {
	Id            int       `db:"id"`
	ParticipantId int       `db:"participant_id"`
	TripId        int       `db:"trip_id"`
	Rank          int       `db:"preference_rank"`
	OnTrip        bool      `db:"on_trip"`
	RosterSeq     int       `db:"roster_seq"`
	Deleted       bool      `db:"deleted"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

// SignupInsert holds the fields needed to create a signup.
type SignupInsert struct {
	ParticipantId int
	TripId        int
	Rank          int
}

// Active reports whether the signup still takes part in allocation.
func (s *Signup) Active() bool {
	return !s.Deleted
}

// SignupPlacement is a roster change to persist.
type SignupPlacement struct {
	SignupId  int
	OnTrip    bool
	RosterSeq int
}

// SignupRank assigns a rank to one signup.
type SignupRank struct {
	SignupId int
	Rank     int
}
