package dto

// Location is either a coordinate pair or a free-form address.
type Location struct {
	Lat     *float64 `json:"lat,omitempty"`
	Lon     *float64 `json:"lon,omitempty"`
	Address string   `json:"address,omitempty"`
}

// CoordResponse echoes a network node using its exact coordinate text.
type CoordResponse struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// ResolvedLocation is the network node a requested Location was snapped to.
type ResolvedLocation struct {
	CoordResponse
	SnapDistanceMiles float64 `json:"snap_distance_miles"`
}
