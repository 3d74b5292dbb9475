// Package geo provides the great-circle distance and line-angle helpers used for
// edge costs, the A* heuristic, and turn classification.
//
// All functions are pure. Distances are in miles so that edge costs and the
// heuristic share a unit.
package geo

import (
	"math"

	"delivery-route-planner/internal/domain"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
	"github.com/umahmood/haversine"
)

// DistanceMiles returns the great-circle distance between a and b.
func DistanceMiles(a, b domain.GeoCoord) float64 {
	if a == b {
		return 0
	}
	mi, _ := haversine.Distance(
		haversine.Coord{Lat: a.Lat(), Lon: a.Lon()},
		haversine.Coord{Lat: b.Lat(), Lon: b.Lon()},
	)
	return mi
}

// PointDistanceMiles is DistanceMiles for plain coordinates.
func PointDistanceMiles(a, b domain.Coordinates) float64 {
	mi, _ := haversine.Distance(
		haversine.Coord{Lat: a.Lat, Lon: a.Lon},
		haversine.Coord{Lat: b.Lat, Lon: b.Lon},
	)
	return mi
}

// SegmentLength returns the great-circle length of seg.
func SegmentLength(seg domain.StreetSegment) float64 {
	return DistanceMiles(seg.Start, seg.End)
}

// AngleOfLine returns the direction of seg in degrees, measured counter-clockwise
// from east, in [0, 360).
func AngleOfLine(seg domain.StreetSegment) float64 {
	bearing := orbgeo.Bearing(
		orb.Point{seg.Start.Lon(), seg.Start.Lat()},
		orb.Point{seg.End.Lon(), seg.End.Lat()},
	)
	// Compass bearing is clockwise from north.
	return normalizeDegrees(90 - bearing)
}

// AngleBetween returns the counter-clockwise angle needed to turn from the
// direction of seg1 onto the direction of seg2, in [0, 360).
func AngleBetween(seg1, seg2 domain.StreetSegment) float64 {
	return normalizeDegrees(AngleOfLine(seg2) - AngleOfLine(seg1))
}

func normalizeDegrees(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	// math.Mod of a tiny negative value can round back up to exactly 360.
	if d >= 360 {
		d = 0
	}
	return d
}
