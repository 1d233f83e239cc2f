package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultTakenTTL = 10 * time.Minute

// AvailabilityCache remembers handles known to be taken, backed by Redis.
// Key format: handle_taken:<handle>. Only taken handles are cached: a
// reservation is permanent so the entry can never be wrong within its TTL,
// whereas a cached "available" would go stale the moment someone registers.
type AvailabilityCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewAvailabilityCache creates an AvailabilityCache wrapping the given
// Redis client. A non-positive ttl falls back to the default.
func NewAvailabilityCache(client *redis.Client, ttl time.Duration) *AvailabilityCache {
	if ttl <= 0 {
		ttl = defaultTakenTTL
	}
	return &AvailabilityCache{client: client, ttl: ttl}
}

// IsKnownTaken reports whether the handle was recently seen to be taken.
func (c *AvailabilityCache) IsKnownTaken(ctx context.Context, handle string) (bool, error) {
	n, err := c.client.Exists(ctx, c.key(handle)).Result()
	if err != nil {
		return false, fmt.Errorf("availability cache check: %w", err)
	}
	return n > 0, nil
}

// MarkTaken records that the handle is claimed (expires after the TTL).
func (c *AvailabilityCache) MarkTaken(ctx context.Context, handle string) error {
	return c.client.Set(ctx, c.key(handle), "1", c.ttl).Err()
}

func (c *AvailabilityCache) key(handle string) string {
	return fmt.Sprintf("handle_taken:%s", handle)
}
