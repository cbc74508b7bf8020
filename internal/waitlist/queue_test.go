package waitlist

import (
	"testing"

	"github.com/outingclub/trip-lottery/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signupIds(q *Queue) []int {
	ids := []int{}
	for _, e := range q.Entries() {
		ids = append(ids, e.SignupId)
	}
	return ids
}

func mustInsert(t *testing.T, q *Queue, signupId int, tier entity.WaitlistTier) {
	t.Helper()
	_, err := q.Insert(signupId, tier)
	require.NoError(t, err)
}

func TestQueue_InsertByTier(t *testing.T) {
	q := New(1, nil)
	mustInsert(t, q, 1, entity.WaitlistTierNormal)
	mustInsert(t, q, 2, entity.WaitlistTierNormal)
	mustInsert(t, q, 3, entity.WaitlistTierLeaderAdded)
	assert.Equal(t, []int{3, 1, 2}, signupIds(q))

	mustInsert(t, q, 4, entity.WaitlistTierDriverBumped)
	assert.Equal(t, []int{4, 3, 1, 2}, signupIds(q))

	mustInsert(t, q, 5, entity.WaitlistTierLeaderAdded)
	assert.Equal(t, []int{4, 3, 5, 1, 2}, signupIds(q))

	mustInsert(t, q, 6, entity.WaitlistTierAbsoluteTop)
	mustInsert(t, q, 7, entity.WaitlistTierAbsoluteTop)
	assert.Equal(t, []int{7, 6, 4, 3, 5, 1, 2}, signupIds(q))

	mustInsert(t, q, 8, entity.WaitlistTierDriverBumped)
	assert.Equal(t, []int{7, 6, 4, 8, 3, 5, 1, 2}, signupIds(q))

	for i, e := range q.Entries() {
		assert.Equal(t, i, e.Position)
		assert.Equal(t, 1, e.TripId)
	}
}

func TestQueue_InsertRejects(t *testing.T) {
	q := New(1, nil)
	mustInsert(t, q, 1, entity.WaitlistTierNormal)

	_, err := q.Insert(1, entity.WaitlistTierAbsoluteTop)
	assert.Error(t, err)

	_, err = q.Insert(2, entity.WaitlistTier(42))
	assert.Error(t, err)
	assert.Equal(t, 1, q.Len())
}

func TestQueue_PromoteNextOrder(t *testing.T) {
	q := New(1, nil)
	mustInsert(t, q, 1, entity.WaitlistTierNormal)
	mustInsert(t, q, 2, entity.WaitlistTierLeaderAdded)
	mustInsert(t, q, 3, entity.WaitlistTierNormal)
	mustInsert(t, q, 4, entity.WaitlistTierDriverBumped)
	mustInsert(t, q, 5, entity.WaitlistTierAbsoluteTop)
	mustInsert(t, q, 6, entity.WaitlistTierLeaderAdded)

	var got []int
	prevTier := entity.WaitlistTierAbsoluteTop
	for {
		e, ok := q.PromoteNext()
		if !ok {
			break
		}
		assert.LessOrEqual(t, int(e.Tier), int(prevTier))
		prevTier = e.Tier
		got = append(got, e.SignupId)
	}
	assert.Equal(t, []int{5, 4, 2, 6, 1, 3}, got)
	assert.Zero(t, q.Len())
}

func TestQueue_PromoteEmpty(t *testing.T) {
	q := New(1, nil)
	_, ok := q.PromoteNext()
	assert.False(t, ok)
}

func TestQueue_RemoveKeepsTierOrder(t *testing.T) {
	q := New(1, nil)
	for id := 1; id <= 4; id++ {
		mustInsert(t, q, id, entity.WaitlistTierNormal)
	}
	mustInsert(t, q, 10, entity.WaitlistTierLeaderAdded)
	mustInsert(t, q, 11, entity.WaitlistTierLeaderAdded)

	e, ok := q.Remove(2)
	require.True(t, ok)
	assert.Equal(t, 3, e.Position)
	assert.Equal(t, []int{10, 11, 1, 3, 4}, signupIds(q))

	_, ok = q.Remove(10)
	require.True(t, ok)
	assert.Equal(t, []int{11, 1, 3, 4}, signupIds(q))

	_, ok = q.Remove(99)
	assert.False(t, ok)

	pos, ok := q.Position(4)
	assert.True(t, ok)
	assert.Equal(t, 3, pos)
}

func TestQueue_Reprioritize(t *testing.T) {
	q := New(1, nil)
	mustInsert(t, q, 1, entity.WaitlistTierNormal)
	mustInsert(t, q, 2, entity.WaitlistTierNormal)
	mustInsert(t, q, 3, entity.WaitlistTierLeaderAdded)

	e, err := q.Reprioritize(2, entity.WaitlistTierLeaderAdded)
	require.NoError(t, err)
	assert.Equal(t, 1, e.Position)
	assert.Equal(t, []int{3, 2, 1}, signupIds(q))

	e, err = q.Reprioritize(1, entity.WaitlistTierAbsoluteTop)
	require.NoError(t, err)
	assert.Equal(t, 0, e.Position)
	assert.Equal(t, []int{1, 3, 2}, signupIds(q))

	_, err = q.Reprioritize(99, entity.WaitlistTierNormal)
	assert.Error(t, err)
}

func TestNew_SortsAndRenumbers(t *testing.T) {
	q := New(7, []entity.WaitlistEntry{
		{SignupId: 1, Tier: entity.WaitlistTierNormal, Position: 5},
		{SignupId: 2, Tier: entity.WaitlistTierNormal, Position: 2},
		{SignupId: 3, Tier: entity.WaitlistTierDriverBumped, Position: 9},
		{SignupId: 4, Tier: entity.WaitlistTierAbsoluteTop, Position: 4},
	})
	assert.Equal(t, []int{4, 3, 2, 1}, signupIds(q))
	for i, e := range q.Entries() {
		assert.Equal(t, i, e.Position)
	}
	assert.Equal(t, 7, q.TripId())
}
