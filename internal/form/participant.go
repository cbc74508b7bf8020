package form

import (
	v "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/outingclub/trip-lottery/internal/entity"
)

var carStatuses = []interface{}{
	string(entity.CarStatusNone),
	string(entity.CarStatusRent),
	string(entity.CarStatusOwn),
	string(entity.CarStatusSelf),
}

// AddParticipantRequest registers a participant.
type AddParticipantRequest struct {
	Name               string `json:"name"`
	Email              string `json:"email"`
	Affiliation        string `json:"affiliation"`
	CarStatus          string `json:"car_status"`
	NumberOfPassengers int    `json:"number_of_passengers"`
}

func (f *AddParticipantRequest) Validate() error {
	return ValidateStruct(f,
		v.Field(&f.Name, v.Required, v.Length(1, 255)),
		v.Field(&f.Email, v.Required, is.EmailFormat),
		v.Field(&f.Affiliation, v.Length(0, 16)),
		v.Field(&f.CarStatus, v.In(carStatuses...)),
		v.Field(&f.NumberOfPassengers, v.Min(0), v.Max(13)),
	)
}

// ParticipantInsert converts the validated request.
func (f *AddParticipantRequest) ParticipantInsert() *entity.ParticipantInsert {
	return &entity.ParticipantInsert{
		Name:               f.Name,
		Email:              f.Email,
		Affiliation:        f.Affiliation,
		CarStatus:          entity.CarStatus(f.CarStatus),
		NumberOfPassengers: f.NumberOfPassengers,
	}
}

// CarStatusRequest updates what a participant can drive.
type CarStatusRequest struct {
	ParticipantId      int    `json:"-"`
	CarStatus          string `json:"car_status"`
	NumberOfPassengers int    `json:"number_of_passengers"`
}

func (f *CarStatusRequest) Validate() error {
	return ValidateStruct(f,
		v.Field(&f.CarStatus, v.Required, v.In(carStatuses...)),
		v.Field(&f.NumberOfPassengers, v.Min(0), v.Max(13)),
	)
}

// CarStatusValue converts the validated car status.
func (f *CarStatusRequest) CarStatusValue() entity.CarStatus {
	return entity.CarStatus(f.CarStatus)
}
