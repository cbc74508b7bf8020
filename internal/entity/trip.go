package entity

import (
	"database/sql"
	"fmt"
	"time"
)

// Algorithm decides how a trip's seats are handed out.
type Algorithm string

const (
	AlgorithmLottery Algorithm = "lottery"
	AlgorithmFCFS    Algorithm = "fcfs"
)

// ParseAlgorithm validates a raw algorithm value.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch a := Algorithm(s); a {
	case AlgorithmLottery, AlgorithmFCFS:
		return a, nil
	}
	return "", fmt.Errorf("unknown trip algorithm %q", s)
}

// Trip is a capacity-limited outing participants sign up for.
type Trip struct {
	Id              int            `db:"id"`
	Name            string         `db:"name"`
	Program         string         `db:"program"`
	MaxParticipants int            `db:"maximum_participants"`
	Algorithm       Algorithm      `db:"algorithm"`
	LotteryCycleId  sql.NullString `db:"lottery_cycle_id"`
	SignupsOpenAt   time.Time      `db:"signups_open_at"`
	SignupsCloseAt  sql.NullTime   `db:"signups_close_at"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
}

// TripInsert holds the fields a leader sets when creating a trip.
type TripInsert struct {
	Name            string
	Program         string
	MaxParticipants int
	Algorithm       Algorithm
	LotteryCycleId  sql.NullString
	SignupsOpenAt   time.Time
	SignupsCloseAt  sql.NullTime
}

// SignupsOpen reports whether new signups are accepted at now.
// Lottery trips without a close time stay open until their lottery runs.
func (t *Trip) SignupsOpen(now time.Time) bool {
	if now.Before(t.SignupsOpenAt) {
		return false
	}
	if t.SignupsCloseAt.Valid && !now.Before(t.SignupsCloseAt.Time) {
		return false
	}
	return true
}

func (t *Trip) String() string {
	return fmt.Sprintf("%q", t.Name)
}
