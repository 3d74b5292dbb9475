package ports

import (
	"context"
	"delivery-route-planner/internal/domain"
)

// Read-only adjacency lookup over the road network.
type SegmentSource interface {
	// Return the segments starting at c, or false when c is not a network node.
	SegmentsFrom(c domain.GeoCoord) ([]domain.StreetSegment, bool)
}

// Port: a boundary for loading street segments from a data source.
type SegmentLoader interface {
	// Return every directed segment of the network (both directions of each street).
	LoadSegments(ctx context.Context) ([]domain.StreetSegment, error)
}
