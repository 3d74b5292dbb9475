package dto

import "github.com/paulmach/orb/geojson"

type RouteRequest struct {
	From Location `json:"from"`
	To   Location `json:"to"`
}

type SegmentResponse struct {
	Start         CoordResponse `json:"start"`
	End           CoordResponse `json:"end"`
	Street        string        `json:"street"`
	DistanceMiles float64       `json:"distance_miles"`
}

type RouteResponse struct {
	From               ResolvedLocation           `json:"from"`
	To                 ResolvedLocation           `json:"to"`
	Segments           []SegmentResponse          `json:"segments"`
	TotalDistanceMiles float64                    `json:"total_distance_miles"`
	Polyline           string                     `json:"polyline"`
	GeoJSON            *geojson.FeatureCollection `json:"geojson"`
}
