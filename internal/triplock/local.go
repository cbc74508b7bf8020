// Package triplock serializes the roster and waitlist changes of a trip.
package triplock

import (
	"context"
	"log/slog"
	"sync"
)

// tripMutex is a mutex that can be waited on with a context.
type tripMutex struct {
	ch      chan struct{}
	waiters int
}

// Local locks trips within one process.
type Local struct {
	mu    sync.Mutex
	trips map[int]*tripMutex
}

// NewLocal creates an in-process trip locker.
func NewLocal() *Local {
	return &Local{
		trips: make(map[int]*tripMutex),
	}
}

// Lock blocks until tripId is free or ctx is done.
func (l *Local) Lock(ctx context.Context, tripId int) (func(), error) {
	l.mu.Lock()
	tm, ok := l.trips[tripId]
	if !ok {
		tm = &tripMutex{ch: make(chan struct{}, 1)}
		l.trips[tripId] = tm
	}
	tm.waiters++
	l.mu.Unlock()

	select {
	case tm.ch <- struct{}{}:
	case <-ctx.Done():
		l.release(tripId, tm, false)
		return nil, ctx.Err()
	}

	slog.Default().DebugContext(ctx, "trip locked", slog.Int("trip_id", tripId))
	var once sync.Once
	return func() {
		once.Do(func() {
			l.release(tripId, tm, true)
		})
	}, nil
}

func (l *Local) release(tripId int, tm *tripMutex, held bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if held {
		<-tm.ch
	}
	tm.waiters--
	if tm.waiters == 0 {
		delete(l.trips, tripId)
	}
}

// Len returns the number of trips currently locked or waited on.
func (l *Local) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.trips)
}
