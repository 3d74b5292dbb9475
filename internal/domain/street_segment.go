package domain

// StreetSegment is a directed edge of the road network.
// An undirected street is stored as two segments, one per direction.
type StreetSegment struct {
	Start GeoCoord
	End   GeoCoord
	Name  string
}

// Reverse returns the same street traversed in the opposite direction.
func (s StreetSegment) Reverse() StreetSegment {
	return StreetSegment{Start: s.End, End: s.Start, Name: s.Name}
}
