// Package engine is the entry point of the allocation engine: it loads state
// from the repository, runs the allocators under the trip locks and persists
// what they decide.
package engine

import (
	"context"
	"fmt"
	"sort"

	"github.com/outingclub/trip-lottery/internal/dependency"
	"github.com/outingclub/trip-lottery/internal/entity"
	"github.com/outingclub/trip-lottery/internal/lottery"
)

// Config holds the lottery settings of the engine.
type Config struct {
	// SeedSecret is mixed into the cycle id to derive the seed of cycles created without one.
	SeedSecret string `mapstructure:"seed_secret"`
	// AffiliationWeights maps an affiliation to a decimal bonus subtracted from the draw.
	AffiliationWeights map[string]string `mapstructure:"affiliation_weights"`
}

// Service implements the triggering API of the engine.
type Service struct {
	repo       dependency.Repository
	locker     dependency.TripLocker
	weights    lottery.Weights
	seedSecret string
}

// New creates the engine service.
func New(c *Config, repo dependency.Repository, locker dependency.TripLocker) (*Service, error) {
	if c == nil {
		c = &Config{}
	}
	w := lottery.DefaultWeights()
	if len(c.AffiliationWeights) > 0 {
		var err error
		w, err = lottery.ParseWeights(c.AffiliationWeights)
		if err != nil {
			return nil, fmt.Errorf("can't parse affiliation weights: %w", err)
		}
	}
	return &Service{
		repo:       repo,
		locker:     locker,
		weights:    w,
		seedSecret: c.SeedSecret,
	}, nil
}

// lockTrips takes the locks of all trips in ascending id order and returns a
// func releasing them in reverse.
func (s *Service) lockTrips(ctx context.Context, tripIds []int) (func(), error) {
	ids := make([]int, len(tripIds))
	copy(ids, tripIds)
	sort.Ints(ids)

	unlocks := make([]func(), 0, len(ids))
	release := func() {
		for i := len(unlocks) - 1; i >= 0; i-- {
			unlocks[i]()
		}
	}
	for i, id := range ids {
		if i > 0 && ids[i-1] == id {
			continue
		}
		unlock, err := s.locker.Lock(ctx, id)
		if err != nil {
			release()
			return nil, fmt.Errorf("can't lock trip %d: %w", id, err)
		}
		unlocks = append(unlocks, unlock)
	}
	return release, nil
}

// nextRosterSeq returns the seat order number for the next placement.
func nextRosterSeq(roster []entity.Signup) int {
	seq := 0
	for _, s := range roster {
		if s.RosterSeq > seq {
			seq = s.RosterSeq
		}
	}
	return seq + 1
}

// lastSeated returns the occupant seated latest, the lowest priority one.
func lastSeated(roster []entity.Signup) (entity.Signup, bool) {
	if len(roster) == 0 {
		return entity.Signup{}, false
	}
	last := roster[0]
	for _, s := range roster[1:] {
		if s.RosterSeq > last.RosterSeq || (s.RosterSeq == last.RosterSeq && s.Id > last.Id) {
			last = s
		}
	}
	return last, true
}
