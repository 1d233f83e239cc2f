package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T, ttl time.Duration) (*AvailabilityCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewAvailabilityCache(client, ttl), mr
}

func TestAvailabilityCache_MarkAndCheck(t *testing.T) {
	cache, _ := newTestCache(t, time.Minute)
	ctx := context.Background()

	taken, err := cache.IsKnownTaken(ctx, "sitirahma")
	require.NoError(t, err)
	assert.False(t, taken, "unknown handle must not read as taken")

	require.NoError(t, cache.MarkTaken(ctx, "sitirahma"))

	taken, err = cache.IsKnownTaken(ctx, "sitirahma")
	require.NoError(t, err)
	assert.True(t, taken)

	// Other handles are unaffected.
	taken, err = cache.IsKnownTaken(ctx, "budiman")
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestAvailabilityCache_EntryExpires(t *testing.T) {
	cache, mr := newTestCache(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.MarkTaken(ctx, "sitirahma"))
	mr.FastForward(2 * time.Minute)

	taken, err := cache.IsKnownTaken(ctx, "sitirahma")
	require.NoError(t, err)
	assert.False(t, taken, "entry must expire with its TTL")
}

func TestAvailabilityCache_ConnectionFailure(t *testing.T) {
	cache, mr := newTestCache(t, time.Minute)
	mr.Close()

	_, err := cache.IsKnownTaken(context.Background(), "sitirahma")
	assert.Error(t, err)
}
