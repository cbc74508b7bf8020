package entity

import (
	"fmt"
	"time"
)

// WaitlistTier is the priority class of a waitlist entry. Higher tiers are
// promoted first.
type WaitlistTier int

const (
	WaitlistTierNormal WaitlistTier = iota
	WaitlistTierLeaderAdded
	WaitlistTierDriverBumped
	WaitlistTierAbsoluteTop
)

var waitlistTierNames = map[WaitlistTier]string{
	WaitlistTierNormal:       "normal",
	WaitlistTierLeaderAdded:  "leader-added",
	WaitlistTierDriverBumped: "driver-bumped",
	WaitlistTierAbsoluteTop:  "absolute-top",
}

func (t WaitlistTier) String() string {
	if n, ok := waitlistTierNames[t]; ok {
		return n
	}
	return fmt.Sprintf("tier(%d)", int(t))
}

// Valid reports whether t is a known tier.
func (t WaitlistTier) Valid() bool {
	_, ok := waitlistTierNames[t]
	return ok
}

// ParseWaitlistTier converts a tier name into a WaitlistTier.
func ParseWaitlistTier(s string) (WaitlistTier, error) {
	for t, n := range waitlistTierNames {
		if n == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown waitlist tier %q", s)
}

// WaitlistEntry represents a signup waiting for a seat on a trip.
type WaitlistEntry struct {
	Id        int          `db:"id"`
	TripId    int          `db:"trip_id"`
	SignupId  int          `db:"signup_id"`
	Tier      WaitlistTier `db:"tier"`
	Position  int          `db:"position"`
	CreatedAt time.Time    `db:"created_at"`
}

// WaitlistEntryWithSignup joins a waitlist entry with its signup and participant name.
type WaitlistEntryWithSignup struct {
	WaitlistEntry
	ParticipantId   int    `db:"participant_id"`
	ParticipantName string `db:"participant_name"`
}
