package ports

import (
	"context"
	"delivery-route-planner/internal/domain"
)

// Contract for resolving a free-form address to coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (domain.Coordinates, error)
}

// Nearest-node lookup used to snap arbitrary points onto the network.
type NodeLocator interface {
	Nearest(p domain.Coordinates) (domain.GeoCoord, float64, bool)
}
