package ports

import (
	"context"
	"delivery-route-planner/internal/domain"
)

// Contract for computing one leg of a delivery plan.
type LegRouter interface {
	// Return the shortest route from start to end.
	// Errors wrap domain.ErrBadCoordinate or domain.ErrNoRoute when routing fails.
	RouteLeg(ctx context.Context, start, end domain.GeoCoord) (domain.Route, error)
}

// Storage for previously computed legs.
type LegCache interface {
	// Return the cached route and true, or false on a miss.
	Get(ctx context.Context, start, end domain.GeoCoord) (domain.Route, bool, error)
	Put(ctx context.Context, start, end domain.GeoCoord, route domain.Route) error
}
