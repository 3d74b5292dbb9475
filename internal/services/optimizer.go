package services

import (
	"delivery-route-planner/internal/domain"
	"delivery-route-planner/internal/geo"
)

// OptimizeDeliveryOrder reorders deliveries with a greedy nearest-neighbor pass.
//
// The stop closest to the depot is swapped into first place. Then, for each
// position, the closest remaining stop is swapped into the next position.
// Distances are straight-line ("crow") miles. The result is a permutation of
// deliveries and is not guaranteed to be optimal, or even shorter than the input.
//
// Returns the new order with the crow distances of the input and output tours
// (depot to last stop, no return leg). The input slice is not modified.
func OptimizeDeliveryOrder(
	depot domain.GeoCoord,
	deliveries []domain.DeliveryRequest,
) (ordered []domain.DeliveryRequest, oldCrowDistance, newCrowDistance float64) {
	if len(deliveries) == 0 {
		return []domain.DeliveryRequest{}, 0, 0
	}

	ordered = make([]domain.DeliveryRequest, len(deliveries))
	copy(ordered, deliveries)

	oldCrowDistance = CrowDistance(depot, ordered)

	// Strict comparisons keep the earliest stop on ties.
	closest := 0
	closestDist := geo.DistanceMiles(depot, ordered[0].Location)
	for i := 1; i < len(ordered); i++ {
		if d := geo.DistanceMiles(depot, ordered[i].Location); d < closestDist {
			closest, closestDist = i, d
		}
	}
	ordered[0], ordered[closest] = ordered[closest], ordered[0]

	for i := 0; i < len(ordered)-1; i++ {
		from := ordered[i].Location
		next := i + 1
		nextDist := geo.DistanceMiles(from, ordered[next].Location)
		for k := i + 2; k < len(ordered); k++ {
			if d := geo.DistanceMiles(from, ordered[k].Location); d < nextDist {
				next, nextDist = k, d
			}
		}
		ordered[i+1], ordered[next] = ordered[next], ordered[i+1]
	}

	newCrowDistance = CrowDistance(depot, ordered)
	return ordered, oldCrowDistance, newCrowDistance
}

// CrowDistance is the straight-line length of depot -> stops[0] -> ... -> stops[n-1].
func CrowDistance(depot domain.GeoCoord, stops []domain.DeliveryRequest) float64 {
	if len(stops) == 0 {
		return 0
	}

	total := geo.DistanceMiles(depot, stops[0].Location)
	for i := 1; i < len(stops); i++ {
		total += geo.DistanceMiles(stops[i-1].Location, stops[i].Location)
	}
	return total
}
