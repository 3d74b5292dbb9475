package domain

// Plain numeric point (latitude, longitude) used for geocoding and snapping.
// Unlike GeoCoord it carries no identity and is never a graph key.
type Coordinates struct {
	Lat float64
	Lon float64
}

// Return coordinates as [lon, lat] for GeoJSON and external API compatibility.
func (c Coordinates) CoordsToList() []float64 { return []float64{c.Lon, c.Lat} }
