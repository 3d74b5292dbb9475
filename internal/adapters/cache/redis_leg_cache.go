package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"delivery-route-planner/internal/domain"
	"delivery-route-planner/internal/platform/obs"

	"github.com/redis/go-redis/v9"
)

// RedisLegCache stores computed legs in Redis as JSON.
//
// Keys embed coordinate text, so a prefix should identify the loaded network:
// a leg cached for one map must not be served for another.
type RedisLegCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisLegCache(client *redis.Client, prefix string, ttl time.Duration) *RedisLegCache {
	return &RedisLegCache{client: client, prefix: prefix, ttl: ttl}
}

type cachedSegment struct {
	StartLat string `json:"start_lat"`
	StartLon string `json:"start_lon"`
	EndLat   string `json:"end_lat"`
	EndLon   string `json:"end_lon"`
	Name     string `json:"name"`
}

type cachedRoute struct {
	Segments      []cachedSegment `json:"segments"`
	DistanceMiles float64         `json:"distance_miles"`
}

func (c *RedisLegCache) key(start, end domain.GeoCoord) string {
	return fmt.Sprintf("%sleg:%s->%s", c.prefix, start, end)
}

// Get returns the cached leg from start to end, if any.
func (c *RedisLegCache) Get(ctx context.Context, start, end domain.GeoCoord) (_ domain.Route, _ bool, err error) {
	defer obs.Time(ctx, "leg.cache.Get")(&err)

	if c.client == nil {
		return domain.Route{}, false, errors.New("leg cache: client is nil")
	}

	raw, err := c.client.Get(ctx, c.key(start, end)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Route{}, false, nil
	}
	if err != nil {
		return domain.Route{}, false, fmt.Errorf("get leg cache: %w", err)
	}

	var cr cachedRoute
	if err := json.Unmarshal(raw, &cr); err != nil {
		return domain.Route{}, false, fmt.Errorf("get leg cache: decode: %w", err)
	}

	route := domain.Route{
		Segments:      make([]domain.StreetSegment, 0, len(cr.Segments)),
		DistanceMiles: cr.DistanceMiles,
	}
	for i, s := range cr.Segments {
		from, err := domain.NewGeoCoord(s.StartLat, s.StartLon)
		if err != nil {
			return domain.Route{}, false, fmt.Errorf("get leg cache: segment %d: %w", i, err)
		}
		to, err := domain.NewGeoCoord(s.EndLat, s.EndLon)
		if err != nil {
			return domain.Route{}, false, fmt.Errorf("get leg cache: segment %d: %w", i, err)
		}
		route.Segments = append(route.Segments, domain.StreetSegment{Start: from, End: to, Name: s.Name})
	}

	return route, true, nil
}

// Put stores route as the leg from start to end.
func (c *RedisLegCache) Put(ctx context.Context, start, end domain.GeoCoord, route domain.Route) error {
	if c.client == nil {
		return errors.New("leg cache: client is nil")
	}

	cr := cachedRoute{
		Segments:      make([]cachedSegment, 0, len(route.Segments)),
		DistanceMiles: route.DistanceMiles,
	}
	for _, s := range route.Segments {
		cr.Segments = append(cr.Segments, cachedSegment{
			StartLat: s.Start.LatText(),
			StartLon: s.Start.LonText(),
			EndLat:   s.End.LatText(),
			EndLon:   s.End.LonText(),
			Name:     s.Name,
		})
	}

	raw, err := json.Marshal(cr)
	if err != nil {
		return fmt.Errorf("insert leg cache: encode: %w", err)
	}

	if err := c.client.Set(ctx, c.key(start, end), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("insert leg cache: %w", err)
	}

	return nil
}
