package entity

import (
	"fmt"
	"time"
)

// CarStatus is what a participant declared about driving to trips.
type CarStatus string

const (
	CarStatusNone CarStatus = "none"
	CarStatusRent CarStatus = "rent"
	CarStatusOwn  CarStatus = "own"
	// CarStatusSelf drives alone: needs no seat and offers none.
	CarStatusSelf CarStatus = "self"
)

// ParseCarStatus validates a raw car status value.
func ParseCarStatus(s string) (CarStatus, error) {
	switch cs := CarStatus(s); cs {
	case CarStatusNone, CarStatusRent, CarStatusOwn, CarStatusSelf:
		return cs, nil
	}
	return "", fmt.Errorf("unknown car status %q", s)
}

// Driving reports whether the status brings passenger seats.
func (cs CarStatus) Driving() bool {
	return cs == CarStatusOwn || cs == CarStatusRent
}

// Participant is a club member taking part in trip signups.
type Participant struct {
	Id                 int       `db:"id"`
	Name               string    `db:"name"`
	Email              string    `db:"email"`
	Affiliation        string    `db:"affiliation"`
	CarStatus          CarStatus `db:"car_status"`
	NumberOfPassengers int       `db:"number_of_passengers"`
	CreatedAt          time.Time `db:"created_at"`
}

// ParticipantInsert holds the fields needed to register a participant.
type ParticipantInsert struct {
	Name               string
	Email              string
	Affiliation        string
	CarStatus          CarStatus
	NumberOfPassengers int
}

// IsDriver reports whether the participant can take passengers.
func (p *Participant) IsDriver() bool {
	return p.CarStatus.Driving()
}

// NeedsRide reports whether the participant depends on somebody else's car.
func (p *Participant) NeedsRide() bool {
	return p.CarStatus == CarStatusNone || p.CarStatus == ""
}

// SeatsOffered is the number of passenger seats the participant brings.
func (p *Participant) SeatsOffered() int {
	if !p.IsDriver() || p.NumberOfPassengers < 0 {
		return 0
	}
	return p.NumberOfPassengers
}

func (p *Participant) String() string {
	return p.Name
}
