package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/outingclub/trip-lottery/internal/auth/jwt"
	"github.com/outingclub/trip-lottery/internal/dependency/mocks"
	"github.com/outingclub/trip-lottery/internal/engine"
	"github.com/outingclub/trip-lottery/internal/entity"
	gerr "github.com/outingclub/trip-lottery/internal/errors"
	"github.com/outingclub/trip-lottery/internal/ratelimit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type testServer struct {
	participants *mocks.Participants
	trips        *mocks.Trips
	signups      *mocks.Signups
	lottery      *mocks.Lottery
	handler      http.Handler
}

func newTestServer(t *testing.T) *testServer {
	repo := mocks.NewRepository(t)
	ts := &testServer{
		participants: mocks.NewParticipants(t),
		trips:        mocks.NewTrips(t),
		signups:      mocks.NewSignups(t),
		lottery:      mocks.NewLottery(t),
	}
	repo.EXPECT().Participants().Return(ts.participants).Maybe()
	repo.EXPECT().Trips().Return(ts.trips).Maybe()
	repo.EXPECT().Signups().Return(ts.signups).Maybe()
	repo.EXPECT().Lottery().Return(ts.lottery).Maybe()

	svc, err := engine.New(&engine.Config{SeedSecret: testSecret}, repo, mocks.NewTripLocker(t))
	require.NoError(t, err)

	limiter := ratelimit.NewSignupLimiter(ratelimit.Config{
		Window:                 time.Hour,
		SignupsPerIP:           10,
		SignupsPerParticipant:  10,
		ReordersPerParticipant: 1,
	})
	s := New(&Config{AllowedOrigins: []string{"https://trips.example.org"}}, svc, limiter, jwt.New(testSecret))
	ts.handler = s.Handler()
	return ts
}

func (ts *testServer) do(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorResponse {
	t.Helper()
	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t)
	rec := ts.do(http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestGetRoster(t *testing.T) {
	t.Run("Ok", func(t *testing.T) {
		ts := newTestServer(t)
		ts.trips.EXPECT().GetTripById(mock.Anything, 7).Return(&entity.Trip{Id: 7, MaxParticipants: 2}, nil)
		ts.signups.EXPECT().GetRoster(mock.Anything, 7).Return([]entity.Signup{
			{Id: 1, ParticipantId: 10, TripId: 7, OnTrip: true, RosterSeq: 1},
			{Id: 2, ParticipantId: 11, TripId: 7, OnTrip: true, RosterSeq: 2},
		}, nil)

		rec := ts.do(http.MethodGet, "/api/trips/7/roster", "", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var roster []map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &roster))
		require.Len(t, roster, 2)
		assert.EqualValues(t, 10, roster[0]["participant_id"])
		assert.EqualValues(t, 2, roster[1]["roster_seq"])
	})

	t.Run("Unknown trip", func(t *testing.T) {
		ts := newTestServer(t)
		ts.trips.EXPECT().GetTripById(mock.Anything, 8).Return(nil, gerr.TripNotFound)

		rec := ts.do(http.MethodGet, "/api/trips/8/roster", "", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "NotFound", decodeError(t, rec).Code)
	})

	t.Run("Bad id", func(t *testing.T) {
		ts := newTestServer(t)
		rec := ts.do(http.MethodGet, "/api/trips/abc/roster", "", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAddParticipant(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		ts := newTestServer(t)
		ts.participants.EXPECT().AddParticipant(mock.Anything, mock.MatchedBy(func(p *entity.ParticipantInsert) bool {
			return p.Email == "ada@example.org" && p.CarStatus == entity.CarStatusNone && p.NumberOfPassengers == 0
		})).Return(42, nil)

		rec := ts.do(http.MethodPost, "/api/participants",
			`{"name":"Ada","email":"ada@example.org","number_of_passengers":3}`, "")
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"id":42}`, rec.Body.String())
	})

	t.Run("Invalid email", func(t *testing.T) {
		ts := newTestServer(t)
		rec := ts.do(http.MethodPost, "/api/participants", `{"name":"Ada","email":"nope"}`, "")
		require.Equal(t, http.StatusBadRequest, rec.Code)

		resp := decodeError(t, rec)
		assert.Equal(t, "InvalidArgument", resp.Code)
		require.Len(t, resp.Violations, 1)
		assert.Equal(t, "email", resp.Violations[0].Field)
	})

	t.Run("Unknown field", func(t *testing.T) {
		ts := newTestServer(t)
		rec := ts.do(http.MethodPost, "/api/participants", `{"name":"Ada","email":"ada@example.org","admin":true}`, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestReorderRateLimited(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodPut, "/api/participants/3/signup-order", `{}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.do(http.MethodPut, "/api/participants/3/signup-order", `{"signup_ids":[1]}`, "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "ResourceExhausted", decodeError(t, rec).Code)
}

func TestLeaderRoutes(t *testing.T) {
	leader, err := jwt.NewLeaderToken(jwt.New(testSecret), time.Hour, "leader@example.org")
	require.NoError(t, err)
	_, plain, err := jwt.New(testSecret).Encode(map[string]interface{}{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	require.NoError(t, err)
	forged, err := jwt.NewLeaderToken(jwt.New("other-secret"), time.Hour, "")
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
		want  int
	}{
		{name: "No token", token: "", want: http.StatusUnauthorized},
		{name: "Wrong secret", token: forged, want: http.StatusUnauthorized},
		{name: "Not a leader", token: plain, want: http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t)
			rec := ts.do(http.MethodPost, "/api/lottery/spring-2026/run", "", tt.token)
			assert.Equal(t, tt.want, rec.Code)
		})
	}

	t.Run("Already run", func(t *testing.T) {
		ts := newTestServer(t)
		ts.lottery.EXPECT().GetLotteryCycleById(mock.Anything, "spring-2026").Return(&entity.LotteryCycle{
			Id:     "spring-2026",
			Status: entity.CycleStatusCompleted,
		}, nil)

		rec := ts.do(http.MethodPost, "/api/lottery/spring-2026/run", "", leader)
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "AlreadyExists", decodeError(t, rec).Code)
	})

	t.Run("Invalid capacity", func(t *testing.T) {
		ts := newTestServer(t)
		rec := ts.do(http.MethodPut, "/api/trips/3/capacity", `{"maximum_participants":0}`, leader)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestIsOriginAllowed(t *testing.T) {
	allowed := []string{"https://trips.example.org"}
	assert.True(t, isOriginAllowed("http://localhost:3000", allowed))
	assert.True(t, isOriginAllowed("https://trips.example.org", allowed))
	assert.False(t, isOriginAllowed("https://evil.example.org", allowed))
}
