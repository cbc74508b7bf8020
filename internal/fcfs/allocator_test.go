package fcfs

import (
	"testing"
	"time"

	"github.com/outingclub/trip-lottery/internal/entity"
	"github.com/outingclub/trip-lottery/internal/waitlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 1, 14, 12, 0, 0, 0, time.UTC)

func signup(id int, after time.Duration) entity.Signup {
	return entity.Signup{Id: id, TripId: 1, CreatedAt: t0.Add(after)}
}

func TestAllocate(t *testing.T) {
	withdrawn := signup(5, 0)
	withdrawn.Deleted = true

	signups := []entity.Signup{
		signup(4, 3*time.Second),
		signup(2, time.Second),
		signup(3, time.Second),
		withdrawn,
		signup(1, 2*time.Second),
	}

	res, err := Allocate(1, 2, signups)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, res.Roster)
	require.Len(t, res.Waitlist, 2)
	assert.Equal(t, 1, res.Waitlist[0].SignupId)
	assert.Equal(t, 4, res.Waitlist[1].SignupId)
	for i, e := range res.Waitlist {
		assert.Equal(t, i, e.Position)
		assert.Equal(t, entity.WaitlistTierNormal, e.Tier)
	}
}

func TestAllocate_Idempotent(t *testing.T) {
	signups := []entity.Signup{
		signup(3, 0),
		signup(1, time.Minute),
		signup(2, 0),
	}
	first, err := Allocate(1, 1, signups)
	require.NoError(t, err)
	second, err := Allocate(1, 1, signups)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, []int{2}, first.Roster)
}

func TestAllocate_NegativeCapacity(t *testing.T) {
	_, err := Allocate(1, -1, nil)
	assert.Error(t, err)
}

func TestPlace(t *testing.T) {
	q := waitlist.New(1, nil)

	out, err := Place(2, 1, q, 10)
	require.NoError(t, err)
	assert.Equal(t, OutcomePlaced, out)
	assert.Zero(t, q.Len())

	out, err = Place(2, 2, q, 11)
	require.NoError(t, err)
	assert.Equal(t, OutcomeWaitlisted, out)
	assert.True(t, q.Contains(11))

	_, err = Place(2, 2, q, 11)
	assert.Error(t, err)

	_, err = Place(2, 3, q, 12)
	assert.Error(t, err)
}
