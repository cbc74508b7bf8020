package form

import (
	v "github.com/go-ozzo/ozzo-validation/v4"
)

// SignupRequest is a participant signing up for a trip.
type SignupRequest struct {
	TripId        int `json:"-"`
	ParticipantId int `json:"participant_id"`
}

func (f *SignupRequest) Validate() error {
	return ValidateStruct(f,
		v.Field(&f.ParticipantId, v.Required, v.Min(1)),
	)
}

// ReorderSignupsRequest lists all active signups of a participant, favourite first.
type ReorderSignupsRequest struct {
	ParticipantId int   `json:"-"`
	SignupIds     []int `json:"signup_ids"`
}

func (f *ReorderSignupsRequest) Validate() error {
	return ValidateStruct(f,
		v.Field(&f.SignupIds, v.Required, v.Length(1, 50), v.Each(v.Min(1))),
	)
}

// PartnerRequest names the partner a participant wants to share a trip with.
// Zero clears the request.
type PartnerRequest struct {
	ParticipantId int `json:"-"`
	PartnerId     int `json:"partner_id"`
}

func (f *PartnerRequest) Validate() error {
	return ValidateStruct(f,
		v.Field(&f.PartnerId, v.Min(0), v.NotIn(f.ParticipantId).Error("must not be the participant")),
	)
}
