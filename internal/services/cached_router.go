package services

import (
	"context"
	"fmt"
	"log"

	"delivery-route-planner/internal/domain"
	"delivery-route-planner/internal/ports"
)

// CachedRouter serves legs from a LegCache and falls back to the wrapped router.
//
// Cache read failures are returned; write failures are logged only, since the
// computed route is still valid. Routing errors are never cached.
type CachedRouter struct {
	next  ports.LegRouter
	cache ports.LegCache
}

func NewCachedRouter(next ports.LegRouter, cache ports.LegCache) *CachedRouter {
	return &CachedRouter{next: next, cache: cache}
}

func (c *CachedRouter) RouteLeg(ctx context.Context, start, end domain.GeoCoord) (domain.Route, error) {
	if start == end {
		return domain.Route{}, nil
	}

	route, ok, err := c.cache.Get(ctx, start, end)
	if err != nil {
		return domain.Route{}, fmt.Errorf("cached route leg: get %s -> %s: %w", start, end, err)
	}
	if ok {
		return route, nil
	}

	route, err = c.next.RouteLeg(ctx, start, end)
	if err != nil {
		return domain.Route{}, err
	}

	if err := c.cache.Put(ctx, start, end, route); err != nil {
		log.Printf("leg cache write failed: from=%s to=%s err=%v", start, end, err)
	}

	return route, nil
}
