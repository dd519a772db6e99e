// README: Redis-backed cache in front of a DemandEstimator.
package pricing

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"smartpark/internal/types"
)

const demandKeyPrefix = "pricing:demand:%s:%d:%d"

// CachedEstimator caches successful estimates only; errors always fall through.
type CachedEstimator struct {
	next  DemandEstimator
	redis *redis.Client
	ttl   time.Duration
}

func NewCachedEstimator(next DemandEstimator, client *redis.Client, ttl time.Duration) DemandEstimator {
	if client == nil || ttl <= 0 {
		return next
	}
	return &CachedEstimator{next: next, redis: client, ttl: ttl}
}

func (c *CachedEstimator) Estimate(ctx context.Context, zoneID types.ID, start, end time.Time) (float64, error) {
	key := demandKey(zoneID, start, end)
	v, err := c.redis.Get(ctx, key).Float64()
	if err == nil {
		return v, nil
	}
	if !errors.Is(err, redis.Nil) {
		log.Printf("pricing: demand cache get %s: %v", key, err)
	}

	m, err := c.next.Estimate(ctx, zoneID, start, end)
	if err != nil {
		return m, err
	}
	if err := c.redis.Set(ctx, key, m, c.ttl).Err(); err != nil {
		log.Printf("pricing: demand cache set %s: %v", key, err)
	}
	return m, nil
}

func demandKey(zoneID types.ID, start, end time.Time) string {
	return fmt.Sprintf(demandKeyPrefix, string(zoneID), start.Unix(), end.Unix())
}
