package queue

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/rueidis"
)

type RedisLease struct {
	client rueidis.Client
	key    string
	owner  string
}

func NewRedisLease(client rueidis.Client, key string) *RedisLease {
	return &RedisLease{
		client: client,
		key:    key,
		owner:  uuid.NewString(),
	}
}

// Acquire sets the lease key with NX and a TTL. A nil reply means another
// replica holds it.
func (r *RedisLease) Acquire(ctx context.Context, ttl time.Duration) (bool, error) {
	seconds := int64(ttl / time.Second)
	if seconds < 1 {
		seconds = 1
	}

	cmd := r.client.B().Set().Key(r.key).Value(r.owner).Nx().ExSeconds(seconds).Build()
	if err := r.client.Do(ctx, cmd).Error(); err != nil {
		if rueidis.IsRedisNil(err) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}
