package form

import (
	"database/sql"
	"regexp"
	"time"

	v "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/outingclub/trip-lottery/internal/entity"
)

var cycleIdRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{0,63}$`)

// AddTripRequest creates a trip, optionally as part of a lottery cycle.
type AddTripRequest struct {
	Name            string     `json:"name"`
	Program         string     `json:"program"`
	MaxParticipants int        `json:"maximum_participants"`
	Algorithm       string     `json:"algorithm"`
	LotteryCycleId  string     `json:"lottery_cycle_id"`
	SignupsOpenAt   time.Time  `json:"signups_open_at"`
	SignupsCloseAt  *time.Time `json:"signups_close_at"`
}

func (f *AddTripRequest) Validate() error {
	return ValidateStruct(f,
		v.Field(&f.Name, v.Required, v.Length(1, 255)),
		v.Field(&f.Program, v.Length(0, 64)),
		v.Field(&f.MaxParticipants, v.Required, v.Min(1), v.Max(500)),
		v.Field(&f.Algorithm, v.Required, v.In(string(entity.AlgorithmLottery), string(entity.AlgorithmFCFS))),
		v.Field(&f.LotteryCycleId,
			v.When(f.Algorithm == string(entity.AlgorithmLottery), v.Required),
			v.Match(cycleIdRegex),
		),
		v.Field(&f.SignupsOpenAt, v.Required),
		v.Field(&f.SignupsCloseAt, v.When(f.SignupsCloseAt != nil, v.By(after(f.SignupsOpenAt)))),
	)
}

// TripInsert converts the validated request.
func (f *AddTripRequest) TripInsert() *entity.TripInsert {
	t := &entity.TripInsert{
		Name:            f.Name,
		Program:         f.Program,
		MaxParticipants: f.MaxParticipants,
		Algorithm:       entity.Algorithm(f.Algorithm),
		LotteryCycleId:  sql.NullString{String: f.LotteryCycleId, Valid: f.LotteryCycleId != ""},
		SignupsOpenAt:   f.SignupsOpenAt,
	}
	if f.SignupsCloseAt != nil {
		t.SignupsCloseAt = sql.NullTime{Time: *f.SignupsCloseAt, Valid: true}
	}
	return t
}

// AddLotteryCycleRequest opens a lottery cycle.
type AddLotteryCycleRequest struct {
	Id      string     `json:"id"`
	Program string     `json:"program"`
	CloseAt *time.Time `json:"close_at"`
	Seed    *int64     `json:"seed"`
}

func (f *AddLotteryCycleRequest) Validate() error {
	return ValidateStruct(f,
		v.Field(&f.Id, v.Required, v.Match(cycleIdRegex)),
		v.Field(&f.Program, v.Length(0, 64)),
	)
}

// LotteryCycleInsert converts the validated request.
func (f *AddLotteryCycleRequest) LotteryCycleInsert() *entity.LotteryCycleInsert {
	c := &entity.LotteryCycleInsert{
		Id:      f.Id,
		Program: f.Program,
	}
	if f.CloseAt != nil {
		c.CloseAt = sql.NullTime{Time: *f.CloseAt, Valid: true}
	}
	if f.Seed != nil {
		c.Seed = sql.NullInt64{Int64: *f.Seed, Valid: true}
	}
	return c
}

func after(start time.Time) v.RuleFunc {
	return func(value interface{}) error {
		end, ok := value.(*time.Time)
		if !ok || end == nil {
			return nil
		}
		if !end.After(start) {
			return v.NewError("validation_after_open", "must be after signups open")
		}
		return nil
	}
}
