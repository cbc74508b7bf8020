package triplock

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocal_SerializesOneTrip(t *testing.T) {
	l := NewLocal()
	ctx := context.Background()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		inside  int
		maxSeen int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock, err := l.Lock(ctx, 1)
			if !assert.NoError(t, err) {
				return
			}
			defer unlock()

			mu.Lock()
			inside++
			if inside > maxSeen {
				maxSeen = inside
			}
			mu.Unlock()
			time.Sleep(time.Millisecond)
			mu.Lock()
			inside--
			mu.Unlock()
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, maxSeen)
	assert.Zero(t, l.Len())
}

func TestLocal_TripsAreIndependent(t *testing.T) {
	l := NewLocal()
	ctx := context.Background()

	unlock1, err := l.Lock(ctx, 1)
	require.NoError(t, err)
	defer unlock1()

	ctx2, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	unlock2, err := l.Lock(ctx2, 2)
	require.NoError(t, err)
	unlock2()
}

func TestLocal_ContextCancel(t *testing.T) {
	l := NewLocal()
	unlock, err := l.Lock(context.Background(), 1)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = l.Lock(ctx, 1)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	unlock()
	unlock()
	assert.Zero(t, l.Len())
}
