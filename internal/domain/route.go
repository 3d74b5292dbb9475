package domain

// Route is an ordered sequence of segments from a start to an end coordinate.
// An empty route means start and end are the same node.
type Route struct {
	Segments      []StreetSegment
	DistanceMiles float64
}

// Coords returns the node sequence visited by the route, start first.
func (r Route) Coords() []GeoCoord {
	if len(r.Segments) == 0 {
		return nil
	}

	out := make([]GeoCoord, 0, len(r.Segments)+1)
	out = append(out, r.Segments[0].Start)
	for _, s := range r.Segments {
		out = append(out, s.End)
	}
	return out
}
