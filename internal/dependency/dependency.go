package dependency

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/outingclub/trip-lottery/internal/entity"
)

//go:generate mockery --with-expecter --case underscore --all --output=./mocks
type (
	ContextStore interface {
		Tx(ctx context.Context, fn func(ctx context.Context, store Repository) error) error
	}
	Participants interface {
		// AddParticipant registers a participant and returns its id.
		AddParticipant(ctx context.Context, p *entity.ParticipantInsert) (int, error)
		// GetParticipantById returns gerr.ParticipantNotFound for unknown ids.
		GetParticipantById(ctx context.Context, id int) (*entity.Participant, error)
		GetParticipantsByIds(ctx context.Context, ids []int) ([]entity.Participant, error)
		UpdateCarStatus(ctx context.Context, id int, cs entity.CarStatus, passengers int) error
	}
	Pairing interface {
		// SetPairRequest records or replaces the partner a participant asked for.
		SetPairRequest(ctx context.Context, participantId int, partnerId int) error
		DeletePairRequest(ctx context.Context, participantId int) error
		// GetPairRequestsByParticipantIds returns requests made by or naming any of the ids.
		GetPairRequestsByParticipantIds(ctx context.Context, ids []int) ([]entity.PairRequest, error)
	}
	Trips interface {
		AddTrip(ctx context.Context, t *entity.TripInsert) (int, error)
		GetTripById(ctx context.Context, id int) (*entity.Trip, error)
		// GetTripForUpdate locks the trip row until the transaction ends.
		GetTripForUpdate(ctx context.Context, id int) (*entity.Trip, error)
		GetTripsByCycle(ctx context.Context, cycleId string) ([]entity.Trip, error)
		UpdateTripCapacity(ctx context.Context, id int, capacity int) error
		SetTripsAlgorithm(ctx context.Context, ids []int, a entity.Algorithm) error
	}
	Signups interface {
		AddSignup(ctx context.Context, s *entity.SignupInsert) (int, error)
		GetSignupById(ctx context.Context, id int) (*entity.Signup, error)
		// GetActiveSignup returns gerr.SignupNotFound when the participant has no active signup for the trip.
		GetActiveSignup(ctx context.Context, participantId int, tripId int) (*entity.Signup, error)
		// GetActiveSignupsByParticipant returns the signups ordered by rank.
		GetActiveSignupsByParticipant(ctx context.Context, participantId int) ([]entity.Signup, error)
		GetActiveSignupsByTrips(ctx context.Context, tripIds []int) ([]entity.Signup, error)
		// GetRoster returns the signups on the trip in seat order.
		GetRoster(ctx context.Context, tripId int) ([]entity.Signup, error)
		SetPlacements(ctx context.Context, placements []entity.SignupPlacement) error
		UpdateSignupRanks(ctx context.Context, ranks []entity.SignupRank) error
		// SoftDeleteSignup withdraws the signup and takes it off the roster.
		SoftDeleteSignup(ctx context.Context, id int) error
	}
	Waitlists interface {
		GetWaitlist(ctx context.Context, tripId int) ([]entity.WaitlistEntry, error)
		GetWaitlistWithParticipants(ctx context.Context, tripId int) ([]entity.WaitlistEntryWithSignup, error)
		GetWaitlistsByTrips(ctx context.Context, tripIds []int) ([]entity.WaitlistEntry, error)
		// ReplaceWaitlist stores entries as the complete waitlist of the trip.
		ReplaceWaitlist(ctx context.Context, tripId int, entries []entity.WaitlistEntry) error
	}
	Lottery interface {
		AddLotteryCycle(ctx context.Context, c *entity.LotteryCycleInsert) error
		GetLotteryCycleById(ctx context.Context, id string) (*entity.LotteryCycle, error)
		// GetLotteryCycleForUpdate locks the cycle row until the transaction ends.
		GetLotteryCycleForUpdate(ctx context.Context, id string) (*entity.LotteryCycle, error)
		// GetDueLotteryCycles returns not started cycles whose close time has passed.
		GetDueLotteryCycles(ctx context.Context, now time.Time) ([]entity.LotteryCycle, error)
		// GetLotterySnapshot loads everything a run of the cycle reads.
		GetLotterySnapshot(ctx context.Context, cycleId string) (*entity.LotterySnapshot, error)
		// SaveLotteryOutcome applies a completed run and marks the cycle completed.
		SaveLotteryOutcome(ctx context.Context, o *entity.LotteryOutcome) error
		GetLotteryRun(ctx context.Context, cycleId string) (*entity.LotteryRun, error)
	}

	Repository interface {
		Participants() Participants
		Pairing() Pairing
		Trips() Trips
		Signups() Signups
		Waitlists() Waitlists
		Lottery() Lottery
		Tx(ctx context.Context, f func(context.Context, Repository) error) error
		TxBegin(ctx context.Context) (Repository, error)
		TxCommit(ctx context.Context) error
		TxRollback(ctx context.Context) error
		Now() time.Time
		InTx() bool
		Close()
		IsErrUniqueViolation(err error) bool
		IsErrorRepeat(err error) bool
		DB() DB
	}

	// DB represents database interface.
	DB interface {
		BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
		ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)

		// sqlx methods
		GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
		NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
		NamedQuery(query string, arg interface{}) (*sqlx.Rows, error)
		PrepareNamedContext(ctx context.Context, query string) (*sqlx.NamedStmt, error)
		PreparexContext(ctx context.Context, query string) (*sqlx.Stmt, error)
		QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
		QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error)
		SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	}

	// TripLocker serializes roster and waitlist changes of one trip.
	TripLocker interface {
		// Lock blocks until the trip is held or ctx is done. The returned func releases it.
		Lock(ctx context.Context, tripId int) (func(), error)
	}
)
