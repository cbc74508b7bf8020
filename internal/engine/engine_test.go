package engine

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/outingclub/trip-lottery/internal/dependency"
	"github.com/outingclub/trip-lottery/internal/dependency/mocks"
	"github.com/outingclub/trip-lottery/internal/entity"
	gerr "github.com/outingclub/trip-lottery/internal/errors"
	"github.com/outingclub/trip-lottery/internal/lottery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var testNow = time.Date(2026, 1, 14, 18, 0, 0, 0, time.UTC)

type testEnv struct {
	repo         *mocks.Repository
	participants *mocks.Participants
	pairing      *mocks.Pairing
	trips        *mocks.Trips
	signups      *mocks.Signups
	waitlists    *mocks.Waitlists
	lottery      *mocks.Lottery
	locker       *mocks.TripLocker
	svc          *Service
}

func newTestEnv(t *testing.T) *testEnv {
	e := &testEnv{
		repo:         mocks.NewRepository(t),
		participants: mocks.NewParticipants(t),
		pairing:      mocks.NewPairing(t),
		trips:        mocks.NewTrips(t),
		signups:      mocks.NewSignups(t),
		waitlists:    mocks.NewWaitlists(t),
		lottery:      mocks.NewLottery(t),
		locker:       mocks.NewTripLocker(t),
	}
	e.repo.EXPECT().Participants().Return(e.participants).Maybe()
	e.repo.EXPECT().Pairing().Return(e.pairing).Maybe()
	e.repo.EXPECT().Trips().Return(e.trips).Maybe()
	e.repo.EXPECT().Signups().Return(e.signups).Maybe()
	e.repo.EXPECT().Waitlists().Return(e.waitlists).Maybe()
	e.repo.EXPECT().Lottery().Return(e.lottery).Maybe()
	e.repo.EXPECT().Now().Return(testNow).Maybe()
	e.repo.EXPECT().Tx(mock.Anything, mock.Anything).RunAndReturn(
		func(ctx context.Context, f func(context.Context, dependency.Repository) error) error {
			return f(ctx, e.repo)
		}).Maybe()
	e.locker.EXPECT().Lock(mock.Anything, mock.Anything).Return(func() {}, nil).Maybe()

	svc, err := New(&Config{SeedSecret: "test-secret"}, e.repo, e.locker)
	require.NoError(t, err)
	e.svc = svc
	return e
}

func openTrip(id, capacity int, a entity.Algorithm) *entity.Trip {
	return &entity.Trip{
		Id:              id,
		Name:            "Trip",
		MaxParticipants: capacity,
		Algorithm:       a,
		SignupsOpenAt:   testNow.Add(-24 * time.Hour),
	}
}

func rider(id int) entity.Participant {
	return entity.Participant{Id: id, Name: "Rider", CarStatus: entity.CarStatusNone}
}

func driver(id, seats int) entity.Participant {
	return entity.Participant{Id: id, Name: "Driver", CarStatus: entity.CarStatusOwn, NumberOfPassengers: seats}
}

func onTrip(id, participantId, tripId, seq int) entity.Signup {
	return entity.Signup{Id: id, ParticipantId: participantId, TripId: tripId, Rank: 1, OnTrip: true, RosterSeq: seq}
}

func waiting(tripId int, signupIds ...int) []entity.WaitlistEntry {
	es := make([]entity.WaitlistEntry, 0, len(signupIds))
	for i, id := range signupIds {
		es = append(es, entity.WaitlistEntry{Id: 100 + i, TripId: tripId, SignupId: id, Position: i})
	}
	return es
}

func signupIds(es []entity.WaitlistEntry) []int {
	ids := make([]int, 0, len(es))
	for _, e := range es {
		ids = append(ids, e.SignupId)
	}
	return ids
}

func TestNew(t *testing.T) {
	t.Run("Default weights", func(t *testing.T) {
		svc, err := New(nil, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, lottery.DefaultWeights(), svc.weights)
	})

	t.Run("Invalid weights", func(t *testing.T) {
		_, err := New(&Config{AffiliationWeights: map[string]string{"MU": "lots"}}, nil, nil)
		assert.Error(t, err)
	})
}

func TestLockTrips(t *testing.T) {
	e := newTestEnv(t)
	locker := mocks.NewTripLocker(t)
	e.svc.locker = locker

	var locked, released []int
	locker.EXPECT().Lock(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, id int) (func(), error) {
		locked = append(locked, id)
		return func() { released = append(released, id) }, nil
	})

	unlock, err := e.svc.lockTrips(context.Background(), []int{3, 1, 2, 1})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, locked)

	unlock()
	assert.Equal(t, []int{3, 2, 1}, released)
}

func lotterySnapshot() *entity.LotterySnapshot {
	cycle := entity.LotteryCycle{Id: "trip-1", Status: entity.CycleStatusNotStarted}
	trip := *openTrip(1, 2, entity.AlgorithmLottery)
	trip.LotteryCycleId = sql.NullString{String: cycle.Id, Valid: true}
	return &entity.LotterySnapshot{
		Cycle:        cycle,
		Trips:        []entity.Trip{trip},
		Participants: []entity.Participant{rider(1), rider(2), rider(3)},
		Signups: []entity.Signup{
			{Id: 11, ParticipantId: 1, TripId: 1, Rank: 1},
			{Id: 12, ParticipantId: 2, TripId: 1, Rank: 1},
			{Id: 13, ParticipantId: 3, TripId: 1, Rank: 1},
		},
	}
}

func TestRunLottery(t *testing.T) {
	ctx := context.Background()

	t.Run("Completes and saves outcome", func(t *testing.T) {
		e := newTestEnv(t)
		snap := lotterySnapshot()

		e.lottery.EXPECT().GetLotteryCycleById(mock.Anything, "trip-1").Return(&snap.Cycle, nil)
		e.trips.EXPECT().GetTripsByCycle(mock.Anything, "trip-1").Return(snap.Trips, nil)
		e.lottery.EXPECT().GetLotteryCycleForUpdate(mock.Anything, "trip-1").Return(&snap.Cycle, nil)
		e.lottery.EXPECT().GetLotterySnapshot(mock.Anything, "trip-1").Return(snap, nil)

		var saved *entity.LotteryOutcome
		e.lottery.EXPECT().SaveLotteryOutcome(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, o *entity.LotteryOutcome) error {
			saved = o
			return nil
		})

		run, err := e.svc.RunLottery(ctx, "trip-1")
		require.NoError(t, err)
		assert.Equal(t, 2, run.Placed)
		assert.Equal(t, 1, run.Waitlisted)
		assert.Equal(t, lottery.DeriveSeed("trip-1", "test-secret"), run.Seed)
		assert.Equal(t, testNow, run.CompletedAt)
		assert.Contains(t, run.Log, "lottery trip-1 completed")

		require.NotNil(t, saved)
		assert.Len(t, saved.Placements, 2)
		require.Len(t, saved.Waitlists[1], 1)
		assert.Equal(t, entity.WaitlistTierNormal, saved.Waitlists[1][0].Tier)
		assert.Equal(t, 0, saved.Waitlists[1][0].Position)
		assert.Equal(t, []int{1}, saved.TripIds)
	})

	t.Run("Stored seed wins", func(t *testing.T) {
		e := newTestEnv(t)
		snap := lotterySnapshot()
		snap.Cycle.Seed = sql.NullInt64{Int64: 42, Valid: true}

		e.lottery.EXPECT().GetLotteryCycleById(mock.Anything, "trip-1").Return(&snap.Cycle, nil)
		e.trips.EXPECT().GetTripsByCycle(mock.Anything, "trip-1").Return(snap.Trips, nil)
		e.lottery.EXPECT().GetLotteryCycleForUpdate(mock.Anything, "trip-1").Return(&snap.Cycle, nil)
		e.lottery.EXPECT().GetLotterySnapshot(mock.Anything, "trip-1").Return(snap, nil)
		e.lottery.EXPECT().SaveLotteryOutcome(mock.Anything, mock.Anything).Return(nil)

		run, err := e.svc.RunLottery(ctx, "trip-1")
		require.NoError(t, err)
		assert.Equal(t, int64(42), run.Seed)
	})

	t.Run("Completed cycle", func(t *testing.T) {
		e := newTestEnv(t)
		e.lottery.EXPECT().GetLotteryCycleById(mock.Anything, "trip-1").Return(&entity.LotteryCycle{
			Id:     "trip-1",
			Status: entity.CycleStatusCompleted,
		}, nil)

		run, err := e.svc.RunLottery(ctx, "trip-1")
		assert.Nil(t, run)
		assert.ErrorIs(t, err, gerr.LotteryAlreadyRun)
		assert.Equal(t, codes.AlreadyExists, status.Code(err))
	})

	t.Run("Completed while waiting for the lock", func(t *testing.T) {
		e := newTestEnv(t)
		snap := lotterySnapshot()

		e.lottery.EXPECT().GetLotteryCycleById(mock.Anything, "trip-1").Return(&snap.Cycle, nil)
		e.trips.EXPECT().GetTripsByCycle(mock.Anything, "trip-1").Return(snap.Trips, nil)
		e.lottery.EXPECT().GetLotteryCycleForUpdate(mock.Anything, "trip-1").Return(&entity.LotteryCycle{
			Id:     "trip-1",
			Status: entity.CycleStatusCompleted,
		}, nil)

		_, err := e.svc.RunLottery(ctx, "trip-1")
		assert.ErrorIs(t, err, gerr.LotteryAlreadyRun)
	})

	t.Run("Invariant violation saves nothing", func(t *testing.T) {
		e := newTestEnv(t)
		snap := lotterySnapshot()
		snap.Trips[0].MaxParticipants = 1
		snap.Signups[0].OnTrip = true
		snap.Signups[1].OnTrip = true
		snap.Signups[1].RosterSeq = 1

		e.lottery.EXPECT().GetLotteryCycleById(mock.Anything, "trip-1").Return(&snap.Cycle, nil)
		e.trips.EXPECT().GetTripsByCycle(mock.Anything, "trip-1").Return(snap.Trips, nil)
		e.lottery.EXPECT().GetLotteryCycleForUpdate(mock.Anything, "trip-1").Return(&snap.Cycle, nil)
		e.lottery.EXPECT().GetLotterySnapshot(mock.Anything, "trip-1").Return(snap, nil)

		run, err := e.svc.RunLottery(ctx, "trip-1")
		assert.Nil(t, run)
		assert.True(t, lottery.IsInvariantViolation(err))
		assert.Equal(t, codes.Internal, status.Code(err))
		e.lottery.AssertNotCalled(t, "SaveLotteryOutcome", mock.Anything, mock.Anything)
	})

	t.Run("Unknown cycle", func(t *testing.T) {
		e := newTestEnv(t)
		e.lottery.EXPECT().GetLotteryCycleById(mock.Anything, "nope").Return(nil, gerr.CycleNotFound)

		_, err := e.svc.RunLottery(ctx, "nope")
		assert.ErrorIs(t, err, gerr.CycleNotFound)
	})
}

func TestSignup(t *testing.T) {
	ctx := context.Background()

	t.Run("Lottery trip is ranked last", func(t *testing.T) {
		e := newTestEnv(t)
		e.trips.EXPECT().GetTripForUpdate(mock.Anything, 1).Return(openTrip(1, 10, entity.AlgorithmLottery), nil)
		e.participants.EXPECT().GetParticipantById(mock.Anything, 7).Return(&entity.Participant{Id: 7}, nil)
		e.signups.EXPECT().GetActiveSignupsByParticipant(mock.Anything, 7).Return([]entity.Signup{
			{Id: 1, ParticipantId: 7, TripId: 2, Rank: 1},
			{Id: 2, ParticipantId: 7, TripId: 3, Rank: 2},
		}, nil)
		e.signups.EXPECT().AddSignup(mock.Anything, &entity.SignupInsert{ParticipantId: 7, TripId: 1, Rank: 3}).Return(5, nil)
		e.signups.EXPECT().GetSignupById(mock.Anything, 5).Return(&entity.Signup{Id: 5, ParticipantId: 7, TripId: 1, Rank: 3}, nil)

		res, err := e.svc.Signup(ctx, 7, 1)
		require.NoError(t, err)
		assert.Equal(t, SignupRanked, res.Outcome)
		assert.Equal(t, 3, res.Signup.Rank)
	})

	t.Run("FCFS trip with a free seat", func(t *testing.T) {
		e := newTestEnv(t)
		e.trips.EXPECT().GetTripForUpdate(mock.Anything, 1).Return(openTrip(1, 2, entity.AlgorithmFCFS), nil)
		e.participants.EXPECT().GetParticipantById(mock.Anything, 7).Return(&entity.Participant{Id: 7}, nil)
		e.signups.EXPECT().GetActiveSignupsByParticipant(mock.Anything, 7).Return(nil, nil)
		e.signups.EXPECT().AddSignup(mock.Anything, &entity.SignupInsert{ParticipantId: 7, TripId: 1, Rank: 1}).Return(5, nil)
		e.signups.EXPECT().GetSignupById(mock.Anything, 5).Return(&entity.Signup{Id: 5, ParticipantId: 7, TripId: 1, Rank: 1}, nil)
		e.signups.EXPECT().GetRoster(mock.Anything, 1).Return([]entity.Signup{onTrip(3, 2, 1, 4)}, nil)
		e.waitlists.EXPECT().GetWaitlist(mock.Anything, 1).Return(nil, nil)
		e.signups.EXPECT().SetPlacements(mock.Anything, []entity.SignupPlacement{
			{SignupId: 5, OnTrip: true, RosterSeq: 5},
		}).Return(nil)

		res, err := e.svc.Signup(ctx, 7, 1)
		require.NoError(t, err)
		assert.Equal(t, SignupPlaced, res.Outcome)
		assert.True(t, res.Signup.OnTrip)
		assert.Equal(t, 5, res.Signup.RosterSeq)
	})

	t.Run("FCFS trip that is full", func(t *testing.T) {
		e := newTestEnv(t)
		e.trips.EXPECT().GetTripForUpdate(mock.Anything, 1).Return(openTrip(1, 1, entity.AlgorithmFCFS), nil)
		e.participants.EXPECT().GetParticipantById(mock.Anything, 7).Return(&entity.Participant{Id: 7}, nil)
		e.signups.EXPECT().GetActiveSignupsByParticipant(mock.Anything, 7).Return(nil, nil)
		e.signups.EXPECT().AddSignup(mock.Anything, mock.Anything).Return(5, nil)
		e.signups.EXPECT().GetSignupById(mock.Anything, 5).Return(&entity.Signup{Id: 5, ParticipantId: 7, TripId: 1, Rank: 1}, nil)
		e.signups.EXPECT().GetRoster(mock.Anything, 1).Return([]entity.Signup{onTrip(3, 2, 1, 1)}, nil)
		e.waitlists.EXPECT().GetWaitlist(mock.Anything, 1).Return(waiting(1, 4), nil)

		var stored []entity.WaitlistEntry
		e.waitlists.EXPECT().ReplaceWaitlist(mock.Anything, 1, mock.Anything).RunAndReturn(func(_ context.Context, _ int, es []entity.WaitlistEntry) error {
			stored = es
			return nil
		})

		res, err := e.svc.Signup(ctx, 7, 1)
		require.NoError(t, err)
		assert.Equal(t, SignupWaitlisted, res.Outcome)
		assert.Equal(t, 1, res.WaitlistPosition)
		assert.Equal(t, []int{4, 5}, signupIds(stored))
	})

	t.Run("Signups closed", func(t *testing.T) {
		e := newTestEnv(t)
		trip := openTrip(1, 2, entity.AlgorithmFCFS)
		trip.SignupsCloseAt = sql.NullTime{Time: testNow.Add(-time.Minute), Valid: true}
		e.trips.EXPECT().GetTripForUpdate(mock.Anything, 1).Return(trip, nil)

		_, err := e.svc.Signup(ctx, 7, 1)
		assert.ErrorIs(t, err, gerr.TripNotOpen)
	})

	t.Run("Already signed up", func(t *testing.T) {
		e := newTestEnv(t)
		e.trips.EXPECT().GetTripForUpdate(mock.Anything, 1).Return(openTrip(1, 2, entity.AlgorithmLottery), nil)
		e.participants.EXPECT().GetParticipantById(mock.Anything, 7).Return(&entity.Participant{Id: 7}, nil)
		e.signups.EXPECT().GetActiveSignupsByParticipant(mock.Anything, 7).Return([]entity.Signup{
			{Id: 1, ParticipantId: 7, TripId: 1, Rank: 1},
		}, nil)

		_, err := e.svc.Signup(ctx, 7, 1)
		assert.ErrorIs(t, err, gerr.SignupExists)
	})
}

func TestDropSignup(t *testing.T) {
	ctx := context.Background()

	t.Run("Seat goes to the head of the waitlist", func(t *testing.T) {
		e := newTestEnv(t)
		dropped := onTrip(10, 1, 1, 1)
		e.signups.EXPECT().GetSignupById(mock.Anything, 10).Return(&dropped, nil)
		e.trips.EXPECT().GetTripForUpdate(mock.Anything, 1).Return(openTrip(1, 2, entity.AlgorithmFCFS), nil)
		e.signups.EXPECT().SoftDeleteSignup(mock.Anything, 10).Return(nil)
		e.waitlists.EXPECT().GetWaitlist(mock.Anything, 1).Return(waiting(1, 12, 13), nil)
		e.signups.EXPECT().GetRoster(mock.Anything, 1).Return([]entity.Signup{onTrip(11, 2, 1, 2)}, nil)

		var placed []entity.SignupPlacement
		e.signups.EXPECT().SetPlacements(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, ps []entity.SignupPlacement) error {
			placed = append(placed, ps...)
			return nil
		})
		e.signups.EXPECT().GetSignupById(mock.Anything, 12).Return(&entity.Signup{Id: 12, ParticipantId: 3, TripId: 1, OnTrip: true, RosterSeq: 3}, nil)

		var stored []entity.WaitlistEntry
		e.waitlists.EXPECT().ReplaceWaitlist(mock.Anything, 1, mock.Anything).RunAndReturn(func(_ context.Context, _ int, es []entity.WaitlistEntry) error {
			stored = es
			return nil
		})
		e.signups.EXPECT().GetActiveSignupsByParticipant(mock.Anything, 1).Return(nil, nil)

		promoted, err := e.svc.DropSignup(ctx, 10)
		require.NoError(t, err)
		require.NotNil(t, promoted)
		assert.Equal(t, 12, promoted.Id)

		// roster is back at capacity: one remaining occupant plus the promoted signup
		assert.Equal(t, []entity.SignupPlacement{{SignupId: 12, OnTrip: true, RosterSeq: 3}}, placed)
		require.Len(t, stored, 1)
		assert.Equal(t, 13, stored[0].SignupId)
		assert.Equal(t, 0, stored[0].Position)
	})

	t.Run("Nobody waiting", func(t *testing.T) {
		e := newTestEnv(t)
		dropped := onTrip(10, 1, 1, 1)
		e.signups.EXPECT().GetSignupById(mock.Anything, 10).Return(&dropped, nil)
		e.trips.EXPECT().GetTripForUpdate(mock.Anything, 1).Return(openTrip(1, 2, entity.AlgorithmFCFS), nil)
		e.signups.EXPECT().SoftDeleteSignup(mock.Anything, 10).Return(nil)
		e.waitlists.EXPECT().GetWaitlist(mock.Anything, 1).Return(nil, nil)
		e.signups.EXPECT().GetRoster(mock.Anything, 1).Return(nil, nil)
		e.signups.EXPECT().GetActiveSignupsByParticipant(mock.Anything, 1).Return(nil, nil)

		promoted, err := e.svc.DropSignup(ctx, 10)
		require.NoError(t, err)
		assert.Nil(t, promoted)
	})

	t.Run("Waitlisted signup leaves the queue and ranks close up", func(t *testing.T) {
		e := newTestEnv(t)
		dropped := entity.Signup{Id: 12, ParticipantId: 1, TripId: 1, Rank: 1}
		e.signups.EXPECT().GetSignupById(mock.Anything, 12).Return(&dropped, nil)
		e.trips.EXPECT().GetTripForUpdate(mock.Anything, 1).Return(openTrip(1, 1, entity.AlgorithmFCFS), nil)
		e.signups.EXPECT().SoftDeleteSignup(mock.Anything, 12).Return(nil)
		e.waitlists.EXPECT().GetWaitlist(mock.Anything, 1).Return(waiting(1, 11, 12, 13), nil)
		e.waitlists.EXPECT().ReplaceWaitlist(mock.Anything, 1, mock.Anything).RunAndReturn(func(_ context.Context, _ int, es []entity.WaitlistEntry) error {
			assert.Equal(t, []int{11, 13}, signupIds(es))
			return nil
		})
		e.signups.EXPECT().GetActiveSignupsByParticipant(mock.Anything, 1).Return([]entity.Signup{
			{Id: 20, ParticipantId: 1, TripId: 2, Rank: 2},
			{Id: 21, ParticipantId: 1, TripId: 3, Rank: 3},
		}, nil)
		e.signups.EXPECT().UpdateSignupRanks(mock.Anything, []entity.SignupRank{
			{SignupId: 20, Rank: 1},
			{SignupId: 21, Rank: 2},
		}).Return(nil)

		promoted, err := e.svc.DropSignup(ctx, 12)
		require.NoError(t, err)
		assert.Nil(t, promoted)
	})

	t.Run("Already withdrawn", func(t *testing.T) {
		e := newTestEnv(t)
		e.signups.EXPECT().GetSignupById(mock.Anything, 10).Return(&entity.Signup{Id: 10, TripId: 1, Deleted: true}, nil)

		_, err := e.svc.DropSignup(ctx, 10)
		assert.ErrorIs(t, err, gerr.SignupWithdrawn)
	})
}

func TestAddLeaderSignup(t *testing.T) {
	ctx := context.Background()

	// full trip: 20 seated first, 21 seated last
	roster := func(lastSeated entity.Participant) []entity.Signup {
		return []entity.Signup{onTrip(20, 2, 1, 1), onTrip(21, lastSeated.Id, 1, 2)}
	}

	tests := []struct {
		name     string
		occupant entity.Participant
		wantTier entity.WaitlistTier
	}{
		{name: "Bumped driver", occupant: driver(3, 2), wantTier: entity.WaitlistTierDriverBumped},
		{name: "Bumped rider", occupant: rider(3), wantTier: entity.WaitlistTierLeaderAdded},
	}
	for _, tt := range tests {
		t.Run("Forced on a full trip: "+tt.name, func(t *testing.T) {
			e := newTestEnv(t)
			occupant := tt.occupant
			e.trips.EXPECT().GetTripForUpdate(mock.Anything, 1).Return(openTrip(1, 2, entity.AlgorithmFCFS), nil)
			e.participants.EXPECT().GetParticipantById(mock.Anything, 9).Return(&entity.Participant{Id: 9}, nil)
			e.signups.EXPECT().GetActiveSignup(mock.Anything, 9, 1).Return(nil, gerr.SignupNotFound)
			e.signups.EXPECT().GetActiveSignupsByParticipant(mock.Anything, 9).Return(nil, nil)
			e.signups.EXPECT().AddSignup(mock.Anything, &entity.SignupInsert{ParticipantId: 9, TripId: 1, Rank: 1}).Return(30, nil)
			e.signups.EXPECT().GetSignupById(mock.Anything, 30).Return(&entity.Signup{Id: 30, ParticipantId: 9, TripId: 1, Rank: 1}, nil)
			e.signups.EXPECT().GetRoster(mock.Anything, 1).Return(roster(occupant), nil)
			e.waitlists.EXPECT().GetWaitlist(mock.Anything, 1).Return(waiting(1, 40), nil)
			e.participants.EXPECT().GetParticipantById(mock.Anything, 3).Return(&occupant, nil)

			var placed []entity.SignupPlacement
			e.signups.EXPECT().SetPlacements(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, ps []entity.SignupPlacement) error {
				placed = append(placed, ps...)
				return nil
			})
			var stored []entity.WaitlistEntry
			e.waitlists.EXPECT().ReplaceWaitlist(mock.Anything, 1, mock.Anything).RunAndReturn(func(_ context.Context, _ int, es []entity.WaitlistEntry) error {
				stored = es
				return nil
			})

			res, err := e.svc.AddLeaderSignup(ctx, 1, 9, true)
			require.NoError(t, err)
			assert.True(t, res.Placed)
			require.NotNil(t, res.Bumped)
			assert.Equal(t, 21, res.Bumped.Id)
			assert.False(t, res.Bumped.OnTrip)
			assert.Equal(t, tt.wantTier, res.BumpedTier)

			assert.Equal(t, []entity.SignupPlacement{
				{SignupId: 21, OnTrip: false},
				{SignupId: 30, OnTrip: true, RosterSeq: 3},
			}, placed)
			require.Len(t, stored, 2)
			assert.Equal(t, 21, stored[0].SignupId)
			assert.Equal(t, tt.wantTier, stored[0].Tier)
			assert.Equal(t, 40, stored[1].SignupId)
		})
	}

	t.Run("Full trip without force waitlists at leader tier", func(t *testing.T) {
		e := newTestEnv(t)
		e.trips.EXPECT().GetTripForUpdate(mock.Anything, 1).Return(openTrip(1, 2, entity.AlgorithmFCFS), nil)
		e.participants.EXPECT().GetParticipantById(mock.Anything, 9).Return(&entity.Participant{Id: 9}, nil)
		e.signups.EXPECT().GetActiveSignup(mock.Anything, 9, 1).Return(&entity.Signup{Id: 30, ParticipantId: 9, TripId: 1}, nil)
		e.signups.EXPECT().GetRoster(mock.Anything, 1).Return(roster(rider(3)), nil)
		e.waitlists.EXPECT().GetWaitlist(mock.Anything, 1).Return(waiting(1, 40, 30, 41), nil)

		var stored []entity.WaitlistEntry
		e.waitlists.EXPECT().ReplaceWaitlist(mock.Anything, 1, mock.Anything).RunAndReturn(func(_ context.Context, _ int, es []entity.WaitlistEntry) error {
			stored = es
			return nil
		})

		res, err := e.svc.AddLeaderSignup(ctx, 1, 9, false)
		require.NoError(t, err)
		assert.False(t, res.Placed)
		assert.Nil(t, res.Bumped)
		assert.Equal(t, 0, res.WaitlistPosition)
		assert.Equal(t, []int{30, 40, 41}, signupIds(stored))
		assert.Equal(t, entity.WaitlistTierLeaderAdded, stored[0].Tier)
		e.signups.AssertNotCalled(t, "SetPlacements", mock.Anything, mock.Anything)
	})

	t.Run("Free seat", func(t *testing.T) {
		e := newTestEnv(t)
		e.trips.EXPECT().GetTripForUpdate(mock.Anything, 1).Return(openTrip(1, 3, entity.AlgorithmLottery), nil)
		e.participants.EXPECT().GetParticipantById(mock.Anything, 9).Return(&entity.Participant{Id: 9}, nil)
		e.signups.EXPECT().GetActiveSignup(mock.Anything, 9, 1).Return(&entity.Signup{Id: 30, ParticipantId: 9, TripId: 1}, nil)
		e.signups.EXPECT().GetRoster(mock.Anything, 1).Return(roster(rider(3)), nil)
		e.waitlists.EXPECT().GetWaitlist(mock.Anything, 1).Return(waiting(1, 30), nil)
		e.signups.EXPECT().SetPlacements(mock.Anything, []entity.SignupPlacement{
			{SignupId: 30, OnTrip: true, RosterSeq: 3},
		}).Return(nil)
		e.waitlists.EXPECT().ReplaceWaitlist(mock.Anything, 1, []entity.WaitlistEntry{}).Return(nil)

		res, err := e.svc.AddLeaderSignup(ctx, 1, 9, false)
		require.NoError(t, err)
		assert.True(t, res.Placed)
		assert.Nil(t, res.Bumped)
	})

	t.Run("Already on the trip", func(t *testing.T) {
		e := newTestEnv(t)
		e.trips.EXPECT().GetTripForUpdate(mock.Anything, 1).Return(openTrip(1, 2, entity.AlgorithmFCFS), nil)
		e.participants.EXPECT().GetParticipantById(mock.Anything, 9).Return(&entity.Participant{Id: 9}, nil)
		seated := onTrip(30, 9, 1, 1)
		e.signups.EXPECT().GetActiveSignup(mock.Anything, 9, 1).Return(&seated, nil)

		res, err := e.svc.AddLeaderSignup(ctx, 1, 9, true)
		require.NoError(t, err)
		assert.True(t, res.Placed)
		assert.Nil(t, res.Bumped)
	})
}

func TestPrioritizeWaitlist(t *testing.T) {
	ctx := context.Background()

	t.Run("Absolute top", func(t *testing.T) {
		e := newTestEnv(t)
		e.signups.EXPECT().GetSignupById(mock.Anything, 13).Return(&entity.Signup{Id: 13, TripId: 1}, nil)
		e.trips.EXPECT().GetTripForUpdate(mock.Anything, 1).Return(openTrip(1, 2, entity.AlgorithmFCFS), nil)
		e.waitlists.EXPECT().GetWaitlist(mock.Anything, 1).Return(waiting(1, 11, 12, 13), nil)
		e.waitlists.EXPECT().ReplaceWaitlist(mock.Anything, 1, mock.Anything).RunAndReturn(func(_ context.Context, _ int, es []entity.WaitlistEntry) error {
			assert.Equal(t, []int{13, 11, 12}, signupIds(es))
			return nil
		})

		entry, err := e.svc.PrioritizeWaitlist(ctx, 13, entity.WaitlistTierAbsoluteTop)
		require.NoError(t, err)
		assert.Equal(t, 0, entry.Position)
		assert.Equal(t, 102, entry.Id)
	})

	t.Run("Not waitlisted", func(t *testing.T) {
		e := newTestEnv(t)
		e.signups.EXPECT().GetSignupById(mock.Anything, 13).Return(&entity.Signup{Id: 13, TripId: 1}, nil)
		e.trips.EXPECT().GetTripForUpdate(mock.Anything, 1).Return(openTrip(1, 2, entity.AlgorithmFCFS), nil)
		e.waitlists.EXPECT().GetWaitlist(mock.Anything, 1).Return(waiting(1, 11), nil)

		_, err := e.svc.PrioritizeWaitlist(ctx, 13, entity.WaitlistTierLeaderAdded)
		assert.ErrorIs(t, err, gerr.WaitlistNotFound)
	})
}

func TestReorderSignups(t *testing.T) {
	ctx := context.Background()
	active := []entity.Signup{
		{Id: 1, ParticipantId: 7, TripId: 10, Rank: 1},
		{Id: 2, ParticipantId: 7, TripId: 11, Rank: 2},
		{Id: 3, ParticipantId: 7, TripId: 12, Rank: 3},
	}

	t.Run("Permutation", func(t *testing.T) {
		e := newTestEnv(t)
		e.signups.EXPECT().GetActiveSignupsByParticipant(mock.Anything, 7).Return(active, nil)
		e.signups.EXPECT().UpdateSignupRanks(mock.Anything, []entity.SignupRank{
			{SignupId: 3, Rank: 1},
			{SignupId: 1, Rank: 2},
			{SignupId: 2, Rank: 3},
		}).Return(nil)

		out, err := e.svc.ReorderSignups(ctx, 7, []int{3, 1, 2})
		require.NoError(t, err)
		require.Len(t, out, 3)
		assert.Equal(t, 12, out[0].TripId)
		assert.Equal(t, 1, out[0].Rank)
	})

	for name, ids := range map[string][]int{
		"Missing signup":   {3, 1},
		"Duplicate signup": {3, 1, 1},
		"Foreign signup":   {3, 1, 99},
	} {
		t.Run(name, func(t *testing.T) {
			e := newTestEnv(t)
			e.signups.EXPECT().GetActiveSignupsByParticipant(mock.Anything, 7).Return(active, nil)

			_, err := e.svc.ReorderSignups(ctx, 7, ids)
			assert.ErrorIs(t, err, gerr.InvalidRankOrder)
		})
	}
}

func TestSetTripCapacity(t *testing.T) {
	ctx := context.Background()

	t.Run("Raised FCFS capacity promotes", func(t *testing.T) {
		e := newTestEnv(t)
		e.trips.EXPECT().GetTripForUpdate(mock.Anything, 1).Return(openTrip(1, 1, entity.AlgorithmFCFS), nil)
		e.signups.EXPECT().GetRoster(mock.Anything, 1).Return([]entity.Signup{onTrip(10, 1, 1, 1)}, nil)
		e.trips.EXPECT().UpdateTripCapacity(mock.Anything, 1, 3).Return(nil)
		e.waitlists.EXPECT().GetWaitlist(mock.Anything, 1).Return(waiting(1, 11, 12, 13), nil)
		e.signups.EXPECT().SetPlacements(mock.Anything, []entity.SignupPlacement{{SignupId: 11, OnTrip: true, RosterSeq: 2}}).Return(nil)
		e.signups.EXPECT().SetPlacements(mock.Anything, []entity.SignupPlacement{{SignupId: 12, OnTrip: true, RosterSeq: 3}}).Return(nil)
		e.signups.EXPECT().GetSignupById(mock.Anything, 11).Return(&entity.Signup{Id: 11, TripId: 1, OnTrip: true}, nil)
		e.signups.EXPECT().GetSignupById(mock.Anything, 12).Return(&entity.Signup{Id: 12, TripId: 1, OnTrip: true}, nil)
		e.waitlists.EXPECT().ReplaceWaitlist(mock.Anything, 1, mock.Anything).RunAndReturn(func(_ context.Context, _ int, es []entity.WaitlistEntry) error {
			assert.Equal(t, []int{13}, signupIds(es))
			return nil
		})

		promoted, err := e.svc.SetTripCapacity(ctx, 1, 3)
		require.NoError(t, err)
		require.Len(t, promoted, 2)
		assert.Equal(t, 11, promoted[0].Id)
		assert.Equal(t, 12, promoted[1].Id)
	})

	t.Run("Lottery trip keeps its waitlist", func(t *testing.T) {
		e := newTestEnv(t)
		e.trips.EXPECT().GetTripForUpdate(mock.Anything, 1).Return(openTrip(1, 1, entity.AlgorithmLottery), nil)
		e.signups.EXPECT().GetRoster(mock.Anything, 1).Return(nil, nil)
		e.trips.EXPECT().UpdateTripCapacity(mock.Anything, 1, 5).Return(nil)

		promoted, err := e.svc.SetTripCapacity(ctx, 1, 5)
		require.NoError(t, err)
		assert.Empty(t, promoted)
	})

	t.Run("Below roster", func(t *testing.T) {
		e := newTestEnv(t)
		e.trips.EXPECT().GetTripForUpdate(mock.Anything, 1).Return(openTrip(1, 3, entity.AlgorithmFCFS), nil)
		e.signups.EXPECT().GetRoster(mock.Anything, 1).Return([]entity.Signup{onTrip(10, 1, 1, 1), onTrip(11, 2, 1, 2)}, nil)

		_, err := e.svc.SetTripCapacity(ctx, 1, 1)
		assert.ErrorIs(t, err, gerr.CapacityBelowRoster)
	})

	t.Run("Not positive", func(t *testing.T) {
		e := newTestEnv(t)
		_, err := e.svc.SetTripCapacity(ctx, 1, 0)
		assert.ErrorIs(t, err, gerr.InvalidCapacity)
	})
}

func TestReads(t *testing.T) {
	ctx := context.Background()

	t.Run("Roster of unknown trip", func(t *testing.T) {
		e := newTestEnv(t)
		e.trips.EXPECT().GetTripById(mock.Anything, 5).Return(nil, gerr.TripNotFound)

		_, err := e.svc.Roster(ctx, 5)
		assert.ErrorIs(t, err, gerr.TripNotFound)
	})

	t.Run("Waitlist", func(t *testing.T) {
		e := newTestEnv(t)
		e.trips.EXPECT().GetTripById(mock.Anything, 1).Return(openTrip(1, 2, entity.AlgorithmFCFS), nil)
		e.waitlists.EXPECT().GetWaitlistWithParticipants(mock.Anything, 1).Return([]entity.WaitlistEntryWithSignup{
			{WaitlistEntry: waiting(1, 11)[0], ParticipantId: 3, ParticipantName: "C"},
		}, nil)

		es, err := e.svc.Waitlist(ctx, 1)
		require.NoError(t, err)
		require.Len(t, es, 1)
		assert.Equal(t, "C", es[0].ParticipantName)
	})

	t.Run("Lottery log", func(t *testing.T) {
		e := newTestEnv(t)
		e.lottery.EXPECT().GetLotteryRun(mock.Anything, "trip-1").Return(&entity.LotteryRun{CycleId: "trip-1", Log: "lottery trip-1 started\n"}, nil)

		run, err := e.svc.LotteryLog(ctx, "trip-1")
		require.NoError(t, err)
		assert.Equal(t, "lottery trip-1 started\n", run.Log)
	})
}

func TestRequestPartner(t *testing.T) {
	ctx := context.Background()

	t.Run("Both exist", func(t *testing.T) {
		e := newTestEnv(t)
		e.participants.EXPECT().GetParticipantsByIds(mock.Anything, []int{1, 2}).Return([]entity.Participant{rider(1), rider(2)}, nil)
		e.pairing.EXPECT().SetPairRequest(mock.Anything, 1, 2).Return(nil)

		assert.NoError(t, e.svc.RequestPartner(ctx, 1, 2))
	})

	t.Run("Unknown partner", func(t *testing.T) {
		e := newTestEnv(t)
		e.participants.EXPECT().GetParticipantsByIds(mock.Anything, []int{1, 2}).Return([]entity.Participant{rider(1)}, nil)

		assert.ErrorIs(t, e.svc.RequestPartner(ctx, 1, 2), gerr.ParticipantNotFound)
	})

	t.Run("Clear", func(t *testing.T) {
		e := newTestEnv(t)
		e.pairing.EXPECT().DeletePairRequest(mock.Anything, 1).Return(nil)

		assert.NoError(t, e.svc.RequestPartner(ctx, 1, 0))
	})

	t.Run("Self", func(t *testing.T) {
		e := newTestEnv(t)
		assert.ErrorIs(t, e.svc.RequestPartner(ctx, 1, 1), gerr.SelfPairRequest)
	})
}
