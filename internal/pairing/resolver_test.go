package pairing

import (
	"testing"

	"github.com/outingclub/trip-lottery/internal/entity"
	"github.com/stretchr/testify/assert"
)

func TestResolver_Resolve(t *testing.T) {
	r := NewResolver([]entity.PairRequest{
		{ParticipantId: 1, PartnerId: 2},
		{ParticipantId: 2, PartnerId: 1},
		{ParticipantId: 3, PartnerId: 1},
		{ParticipantId: 4, PartnerId: 5},
		{ParticipantId: 6, PartnerId: 6},
	})

	t.Run("reciprocal", func(t *testing.T) {
		pair, ok := r.Resolve(1)
		assert.True(t, ok)
		assert.Equal(t, entity.ReciprocalPair{First: 1, Second: 2}, pair)

		pair, ok = r.Resolve(2)
		assert.True(t, ok)
		assert.Equal(t, 1, pair.Partner(2))
	})

	t.Run("one sided request is ignored", func(t *testing.T) {
		_, ok := r.Resolve(3)
		assert.False(t, ok)
		_, ok = r.Resolve(4)
		assert.False(t, ok)
		_, ok = r.Resolve(5)
		assert.False(t, ok)
	})

	t.Run("self request is ignored", func(t *testing.T) {
		_, ok := r.Resolve(6)
		assert.False(t, ok)
		_, hasRequested, _ := r.Pending(6)
		assert.False(t, hasRequested)
	})

	t.Run("no request", func(t *testing.T) {
		_, ok := r.Resolve(42)
		assert.False(t, ok)
	})
}

func TestResolver_Pending(t *testing.T) {
	r := NewResolver([]entity.PairRequest{
		{ParticipantId: 1, PartnerId: 2},
		{ParticipantId: 2, PartnerId: 1},
		{ParticipantId: 3, PartnerId: 1},
		{ParticipantId: 4, PartnerId: 3},
	})

	requested, has, by := r.Pending(1)
	assert.False(t, has)
	assert.Zero(t, requested)
	assert.Equal(t, []int{3}, by)

	requested, has, by = r.Pending(3)
	assert.True(t, has)
	assert.Equal(t, 1, requested)
	assert.Equal(t, []int{4}, by)
}

func TestResolver_LaterRequestReplacesEarlier(t *testing.T) {
	r := NewResolver([]entity.PairRequest{
		{ParticipantId: 1, PartnerId: 2},
		{ParticipantId: 2, PartnerId: 1},
		{ParticipantId: 1, PartnerId: 3},
	})

	_, ok := r.Resolve(2)
	assert.False(t, ok)

	_, _, by := r.Pending(2)
	assert.Empty(t, by)
	_, _, by = r.Pending(3)
	assert.Equal(t, []int{1}, by)
}
