package form

import (
	"fmt"

	v "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/outingclub/trip-lottery/internal/entity"
)

// LeaderSignupRequest is a leader adding a participant to their trip.
type LeaderSignupRequest struct {
	TripId           int  `json:"-"`
	ParticipantId    int  `json:"participant_id"`
	ForceAbsoluteTop bool `json:"force_absolute_top"`
}

func (f *LeaderSignupRequest) Validate() error {
	return ValidateStruct(f,
		v.Field(&f.ParticipantId, v.Required, v.Min(1)),
	)
}

// PrioritizeWaitlistRequest moves a waitlisted signup to a higher tier.
type PrioritizeWaitlistRequest struct {
	SignupId int    `json:"-"`
	Tier     string `json:"tier"`
}

func (f *PrioritizeWaitlistRequest) Validate() error {
	return ValidateStruct(f,
		v.Field(&f.Tier, v.Required, v.In(
			entity.WaitlistTierLeaderAdded.String(),
			entity.WaitlistTierDriverBumped.String(),
			entity.WaitlistTierAbsoluteTop.String(),
		)),
	)
}

// WaitlistTier converts the validated tier name.
func (f *PrioritizeWaitlistRequest) WaitlistTier() (entity.WaitlistTier, error) {
	t, err := entity.ParseWaitlistTier(f.Tier)
	if err != nil {
		return 0, fmt.Errorf("can't parse tier: %w", err)
	}
	return t, nil
}

// TripCapacityRequest changes the maximum participants of a trip.
type TripCapacityRequest struct {
	TripId          int `json:"-"`
	MaxParticipants int `json:"maximum_participants"`
}

func (f *TripCapacityRequest) Validate() error {
	return ValidateStruct(f,
		v.Field(&f.MaxParticipants, v.Required, v.Min(1), v.Max(500)),
	)
}
