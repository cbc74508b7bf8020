package lottery

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveSeed(t *testing.T) {
	a := DeriveSeed("ws-2026-01-14", "secret")
	assert.Equal(t, a, DeriveSeed("ws-2026-01-14", "secret"))
	assert.NotEqual(t, a, DeriveSeed("ws-2026-01-21", "secret"))
	assert.NotEqual(t, a, DeriveSeed("ws-2026-01-14", "other"))
}

func TestParseWeights(t *testing.T) {
	w, err := ParseWeights(map[string]string{"mu": "0.3", "NA": "0"})
	require.NoError(t, err)
	assert.True(t, w.of("MU").Equal(decimal.RequireFromString("0.3")))
	assert.True(t, w.of("mu").Equal(decimal.RequireFromString("0.3")))
	assert.True(t, w.of("unknown").IsZero())

	_, err = ParseWeights(map[string]string{"MU": "lots"})
	assert.Error(t, err)
}

func TestProcessingOrder(t *testing.T) {
	affiliation := map[int]string{1: "NA", 2: "NA", 3: "MU", 4: "NA"}
	w := Weights{"MU": decimal.NewFromInt(5)}
	of := func(id int) string { return affiliation[id] }

	first := processingOrder([]int{4, 2, 3, 1}, 99, w, of)
	second := processingOrder([]int{1, 2, 3, 4}, 99, w, of)
	assert.Equal(t, first, second)

	require.Len(t, first, 4)
	assert.Equal(t, 3, first[0].id)
	for i := 1; i < len(first); i++ {
		assert.True(t, first[i-1].key.LessThanOrEqual(first[i].key))
	}
}
