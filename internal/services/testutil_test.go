package services

import (
	"fmt"
	"math"
	"math/rand"

	"delivery-route-planner/internal/domain"
	"delivery-route-planner/internal/geo"
	"delivery-route-planner/internal/streetmap"
)

// gridCoord returns the node at row r, column c of a test grid with 0.001 degree spacing.
func gridCoord(r, c int) domain.GeoCoord {
	return domain.MustGeoCoord(fmt.Sprintf("%.3f", float64(r)*0.001), fmt.Sprintf("%.3f", float64(c)*0.001))
}

// buildGrid creates a rows x cols street grid. Each street is dropped with
// probability drop using a fixed seed so the layout is reproducible.
func buildGrid(rows, cols int, drop float64, seed int64) *streetmap.Network {
	rng := rand.New(rand.NewSource(seed))
	n := streetmap.New()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols && rng.Float64() >= drop {
				n.AddStreet(gridCoord(r, c), gridCoord(r, c+1), fmt.Sprintf("Row %d St", r))
			}
			if r+1 < rows && rng.Float64() >= drop {
				n.AddStreet(gridCoord(r, c), gridCoord(r+1, c), fmt.Sprintf("Col %d Ave", c))
			}
			// Occasional diagonal so equal-cost ties are not the only shape.
			if r+1 < rows && c+1 < cols && rng.Float64() < 0.15 {
				n.AddStreet(gridCoord(r, c), gridCoord(r+1, c+1), fmt.Sprintf("Diag %d-%d Way", r, c))
			}
		}
	}
	return n
}

// dijkstraMiles is a brute-force reference for the shortest road distance.
func dijkstraMiles(n *streetmap.Network, start, end domain.GeoCoord) (float64, bool) {
	dist := map[domain.GeoCoord]float64{start: 0}
	done := map[domain.GeoCoord]bool{}

	for {
		var u domain.GeoCoord
		best := math.Inf(1)
		for c, d := range dist {
			if !done[c] && d < best {
				u, best = c, d
			}
		}
		if math.IsInf(best, 1) {
			return 0, false
		}
		if u == end {
			return best, true
		}
		done[u] = true

		segs, _ := n.SegmentsFrom(u)
		for _, s := range segs {
			nd := best + geo.SegmentLength(s)
			if d, ok := dist[s.End]; !ok || nd < d {
				dist[s.End] = nd
			}
		}
	}
}

func sumLengths(segs []domain.StreetSegment) float64 {
	total := 0.0
	for _, s := range segs {
		total += geo.SegmentLength(s)
	}
	return total
}
