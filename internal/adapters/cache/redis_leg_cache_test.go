package cache

import (
	"context"
	"testing"
	"time"

	"delivery-route-planner/internal/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T, ttl time.Duration) (*RedisLegCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisLegCache(client, "test:", ttl), mr
}

func TestRedisLegCacheRoundTrip(t *testing.T) {
	c, mr := newTestCache(t, time.Hour)
	ctx := context.Background()

	a := domain.MustGeoCoord("34.0500", "-118.2000")
	b := domain.MustGeoCoord("34.0510", "-118.2000")
	route := domain.Route{
		Segments:      []domain.StreetSegment{{Start: a, End: b, Name: "Main St"}},
		DistanceMiles: 0.069,
	}

	_, ok, err := c.Get(ctx, a, b)
	require.NoError(t, err)
	assert.False(t, ok, "empty cache must miss")

	require.NoError(t, c.Put(ctx, a, b, route))
	assert.True(t, mr.Exists("test:leg:34.0500,-118.2000->34.0510,-118.2000"))

	got, ok, err := c.Get(ctx, a, b)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, route, got)
	assert.Equal(t, "34.0500", got.Segments[0].Start.LatText(), "coordinate text survives the cache")

	_, ok, err = c.Get(ctx, b, a)
	require.NoError(t, err)
	assert.False(t, ok, "legs are directional")
}

func TestRedisLegCacheExpires(t *testing.T) {
	c, mr := newTestCache(t, time.Minute)
	ctx := context.Background()
	a := domain.MustGeoCoord("1", "1")
	b := domain.MustGeoCoord("1", "2")

	require.NoError(t, c.Put(ctx, a, b, domain.Route{}))
	mr.FastForward(2 * time.Minute)

	_, ok, err := c.Get(ctx, a, b)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisLegCacheCorruptEntry(t *testing.T) {
	c, mr := newTestCache(t, time.Hour)
	a := domain.MustGeoCoord("1", "1")
	b := domain.MustGeoCoord("1", "2")
	require.NoError(t, mr.Set(c.key(a, b), "{not json"))

	_, _, err := c.Get(context.Background(), a, b)
	assert.Error(t, err)
}

func TestRedisLegCacheUnavailable(t *testing.T) {
	c, mr := newTestCache(t, time.Hour)
	mr.Close()

	a := domain.MustGeoCoord("1", "1")
	b := domain.MustGeoCoord("1", "2")
	_, _, err := c.Get(context.Background(), a, b)
	assert.Error(t, err)
	assert.Error(t, c.Put(context.Background(), a, b, domain.Route{}))
}
