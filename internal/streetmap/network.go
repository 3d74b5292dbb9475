// Package streetmap holds the road network: every street segment indexed by the
// coordinate it starts at.
//
// A Network is populated once and read-only afterwards. Concurrent readers are
// safe as long as no Add happens after loading completes.
package streetmap

import (
	"slices"

	"delivery-route-planner/internal/domain"
)

type Network struct {
	bySource map[domain.GeoCoord][]domain.StreetSegment
	segments int
}

func New() *Network {
	return &Network{bySource: make(map[domain.GeoCoord][]domain.StreetSegment)}
}

// Build creates a network from segments exactly as given. Loaders are expected
// to supply both directions of every street.
func Build(segments []domain.StreetSegment) *Network {
	n := &Network{bySource: make(map[domain.GeoCoord][]domain.StreetSegment, len(segments)/2+1)}
	for _, s := range segments {
		n.Add(s)
	}
	return n
}

// Add appends seg to the outgoing segments of seg.Start, preserving insertion order.
func (n *Network) Add(seg domain.StreetSegment) {
	n.bySource[seg.Start] = append(n.bySource[seg.Start], seg)
	n.segments++
}

// AddStreet adds a street segment in both directions.
func (n *Network) AddStreet(a, b domain.GeoCoord, name string) {
	s := domain.StreetSegment{Start: a, End: b, Name: name}
	n.Add(s)
	n.Add(s.Reverse())
}

// SegmentsFrom returns the segments that start at c, in insertion order.
// The returned slice is shared with the network and must not be modified.
func (n *Network) SegmentsFrom(c domain.GeoCoord) ([]domain.StreetSegment, bool) {
	segs, ok := n.bySource[c]
	if !ok {
		return nil, false
	}
	return slices.Clip(segs), true
}

// Coords returns every coordinate with at least one outgoing segment, sorted.
func (n *Network) Coords() []domain.GeoCoord {
	out := make([]domain.GeoCoord, 0, len(n.bySource))
	for c := range n.bySource {
		out = append(out, c)
	}
	slices.SortFunc(out, domain.GeoCoord.Compare)
	return out
}

// NodeCount returns the number of distinct originating coordinates.
func (n *Network) NodeCount() int { return len(n.bySource) }

// SegmentCount returns the number of directed segments.
func (n *Network) SegmentCount() int { return n.segments }
