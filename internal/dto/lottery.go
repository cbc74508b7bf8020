package dto

import (
	"time"

	"github.com/outingclub/trip-lottery/internal/entity"
)

// LotteryRun is the JSON form of a completed run. Log is shown to leaders verbatim.
type LotteryRun struct {
	CycleId     string    `json:"cycle_id"`
	Seed        int64     `json:"seed"`
	Placed      int       `json:"placed"`
	Waitlisted  int       `json:"waitlisted"`
	Log         string    `json:"log"`
	CompletedAt time.Time `json:"completed_at"`
}

func ConvertLotteryRun(r *entity.LotteryRun) *LotteryRun {
	return &LotteryRun{
		CycleId:     r.CycleId,
		Seed:        r.Seed,
		Placed:      r.Placed,
		Waitlisted:  r.Waitlisted,
		Log:         r.Log,
		CompletedAt: r.CompletedAt,
	}
}
