package dto

import "github.com/paulmach/orb/geojson"

type DeliveryItem struct {
	Item string `json:"item"`
	Location
}

type PlanRequest struct {
	Depot      Location       `json:"depot"`
	Deliveries []DeliveryItem `json:"deliveries"`
}

type PlanStopResponse struct {
	Item     string        `json:"item"`
	Location CoordResponse `json:"location"`
}

// InstructionResponse carries both the rendered line and its structured fields.
type InstructionResponse struct {
	Kind          string  `json:"kind"`
	Text          string  `json:"text"`
	Direction     string  `json:"direction,omitempty"`
	Street        string  `json:"street,omitempty"`
	DistanceMiles float64 `json:"distance_miles,omitempty"`
	Side          string  `json:"side,omitempty"`
	Item          string  `json:"item,omitempty"`
}

type PlanResponse struct {
	Depot                ResolvedLocation           `json:"depot"`
	Stops                []PlanStopResponse         `json:"stops"`
	Instructions         []InstructionResponse      `json:"instructions"`
	TotalDistanceMiles   float64                    `json:"total_distance_miles"`
	OldCrowDistanceMiles float64                    `json:"old_crow_distance_miles"`
	NewCrowDistanceMiles float64                    `json:"new_crow_distance_miles"`
	Polyline             string                     `json:"polyline"`
	GeoJSON              *geojson.FeatureCollection `json:"geojson"`
}
