package triplock

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedis_Lock(t *testing.T) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL is not set")
	}
	ctx := context.Background()
	r, err := NewRedis(ctx, RedisConfig{
		URL:        url,
		KeyPrefix:  "trip-lock-test-" + uuid.NewString() + ":",
		TTL:        5 * time.Second,
		RetryEvery: 10 * time.Millisecond,
	})
	require.NoError(t, err)
	defer r.Close()

	unlock, err := r.Lock(ctx, 7)
	require.NoError(t, err)

	short, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
	defer cancel()
	_, err = r.Lock(short, 7)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	unlock()
	unlockAgain, err := r.Lock(ctx, 7)
	require.NoError(t, err)
	unlockAgain()
}
