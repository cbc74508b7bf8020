package entity

import (
	"database/sql"
	"time"
)

// CycleStatus is the lifecycle state of a lottery cycle.
type CycleStatus string

const (
	CycleStatusNotStarted CycleStatus = "not_started"
	CycleStatusInProgress CycleStatus = "in_progress"
	CycleStatusCompleted  CycleStatus = "completed"
)

// LotteryCycle groups the lottery trips decided by one run, e.g. a single
// trip ("trip-12") or a whole week of a program ("ws-2026-01-14").
type LotteryCycle struct {
	Id          string        `db:"id"`
	Program     string        `db:"program"`
	CloseAt     sql.NullTime  `db:"close_at"`
	Status      CycleStatus   `db:"status"`
	Seed        sql.NullInt64 `db:"seed"`
	CompletedAt sql.NullTime  `db:"completed_at"`
	CreatedAt   time.Time     `db:"created_at"`
}

// LotteryCycleInsert holds the fields needed to open a lottery cycle.
type LotteryCycleInsert struct {
	Id      string
	Program string
	CloseAt sql.NullTime
	Seed    sql.NullInt64
}

// LotteryRun is the audit record of a completed lottery pass.
type LotteryRun struct {
	CycleId     string    `db:"cycle_id"`
	Seed        int64     `db:"seed"`
	Log         string    `db:"log"`
	Placed      int       `db:"placed"`
	Waitlisted  int       `db:"waitlisted"`
	CompletedAt time.Time `db:"completed_at"`
}

// LotterySnapshot is the closed, immutable input of one lottery pass.
type LotterySnapshot struct {
	Cycle        LotteryCycle
	Trips        []Trip
	Participants []Participant
	Signups      []Signup
	PairRequests []PairRequest
	Waitlists    []WaitlistEntry
}

// LotteryOutcome is what a completed pass changes: seats, waitlists and the log.
type LotteryOutcome struct {
	Run        LotteryRun
	Placements []SignupPlacement
	Waitlists  map[int][]WaitlistEntry
	TripIds    []int
}
