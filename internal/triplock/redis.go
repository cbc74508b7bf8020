package triplock

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisConfig configures the shared trip lock.
type RedisConfig struct {
	URL        string        `mapstructure:"redis_url"`
	KeyPrefix  string        `mapstructure:"key_prefix"`
	TTL        time.Duration `mapstructure:"ttl"`
	RetryEvery time.Duration `mapstructure:"retry_every"`
}

// unlockScript deletes the key only while it still holds our token.
var unlockScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`)

// Redis locks trips across replicas with SET NX PX. A lock expires after TTL
// if its holder dies, so TTL must exceed the longest trip transaction.
type Redis struct {
	client     *redis.Client
	prefix     string
	ttl        time.Duration
	retryEvery time.Duration
}

// NewRedis connects to Redis and checks the connection.
func NewRedis(ctx context.Context, c RedisConfig) (*Redis, error) {
	opt, err := redis.ParseURL(c.URL)
	if err != nil {
		return nil, fmt.Errorf("can't parse redis url: %w", err)
	}
	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("can't ping redis: %w", err)
	}
	return newRedis(client, c), nil
}

func newRedis(client *redis.Client, c RedisConfig) *Redis {
	r := &Redis{
		client:     client,
		prefix:     c.KeyPrefix,
		ttl:        c.TTL,
		retryEvery: c.RetryEvery,
	}
	if r.prefix == "" {
		r.prefix = "trip-lock:"
	}
	if r.ttl <= 0 {
		r.ttl = 30 * time.Second
	}
	if r.retryEvery <= 0 {
		r.retryEvery = 50 * time.Millisecond
	}
	return r
}

func (r *Redis) key(tripId int) string {
	return fmt.Sprintf("%s%d", r.prefix, tripId)
}

// Lock polls until the trip key is acquired or ctx is done.
func (r *Redis) Lock(ctx context.Context, tripId int) (func(), error) {
	key := r.key(tripId)
	token := uuid.NewString()

	ticker := time.NewTicker(r.retryEvery)
	defer ticker.Stop()
	for {
		ok, err := r.client.SetNX(ctx, key, token, r.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("can't lock trip %d: %w", tripId, err)
		}
		if ok {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}

	return func() {
		// the caller's ctx may already be done
		uctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := unlockScript.Run(uctx, r.client, []string{key}, token).Err()
		if err != nil && !errors.Is(err, redis.Nil) {
			slog.Default().ErrorContext(ctx, "can't unlock trip",
				slog.Int("trip_id", tripId),
				slog.String("err", err.Error()),
			)
		}
	}, nil
}

// Close closes the Redis connection.
func (r *Redis) Close() error {
	return r.client.Close()
}
