package lottery

import (
	"hash/fnv"
	"math/rand/v2"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// pcgStream selects the PCG stream; changing it changes every past draw.
const pcgStream = 0x5851f42d4c957f2d

// Weights lowers the lottery key of participants by affiliation.
// A lower key is processed earlier.
type Weights map[string]decimal.Decimal

// DefaultWeights favours members over non-members, undergraduates most.
func DefaultWeights() Weights {
	return Weights{
		"MU": decimal.RequireFromString("0.3"),
		"MG": decimal.RequireFromString("0.2"),
		"MA": decimal.RequireFromString("0.1"),
		"ML": decimal.RequireFromString("0.1"),
		"NU": decimal.Zero,
		"NG": decimal.Zero,
		"NA": decimal.Zero,
	}
}

// ParseWeights reads weights given as decimal strings. Affiliation codes are
// case-insensitive.
func ParseWeights(raw map[string]string) (Weights, error) {
	w := make(Weights, len(raw))
	for aff, s := range raw {
		d, err := decimal.NewFromString(s)
		if err != nil {
			return nil, err
		}
		w[strings.ToUpper(aff)] = d
	}
	return w, nil
}

func (w Weights) of(affiliation string) decimal.Decimal {
	if d, ok := w[strings.ToUpper(affiliation)]; ok {
		return d
	}
	return decimal.Zero
}

// DeriveSeed computes the seed of a cycle that has none recorded yet.
func DeriveSeed(cycleId, secret string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(cycleId + ":" + secret))
	return int64(h.Sum64())
}

type rankedParticipant struct {
	id  int
	key decimal.Decimal
}

// processingOrder draws one key per participant from the seeded generator,
// in ascending id order, and sorts by key with ties broken by id.
func processingOrder(ids []int, seed int64, w Weights, affiliation func(id int) string) []rankedParticipant {
	sorted := slices.Clone(ids)
	slices.Sort(sorted)

	rng := rand.New(rand.NewPCG(uint64(seed), pcgStream))
	out := make([]rankedParticipant, 0, len(sorted))
	for _, id := range sorted {
		draw := decimal.NewFromFloat(rng.Float64())
		out = append(out, rankedParticipant{id: id, key: draw.Sub(w.of(affiliation(id)))})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if c := out[i].key.Cmp(out[j].key); c != 0 {
			return c < 0
		}
		return out[i].id < out[j].id
	})
	return out
}
