package services

import (
	"container/heap"
	"context"
	"fmt"

	"delivery-route-planner/internal/domain"
	"delivery-route-planner/internal/geo"
	"delivery-route-planner/internal/platform/obs"
	"delivery-route-planner/internal/ports"
)

// Router finds shortest point-to-point routes over the road network with A*.
//
// Edge cost is the great-circle length of a segment and the heuristic is the
// great-circle distance to the goal, which never overestimates the remaining
// road distance. Router holds no per-search state and is safe for concurrent use
// while the network is not modified.
type Router struct {
	network ports.SegmentSource
}

func NewRouter(network ports.SegmentSource) *Router {
	return &Router{network: network}
}

// Route returns the shortest route from start to end.
//
// start == end yields an empty route without consulting the network.
// Errors wrap domain.ErrBadCoordinate when either endpoint is not a network node,
// and domain.ErrNoRoute when end is unreachable from start.
func (r *Router) Route(start, end domain.GeoCoord) (domain.Route, error) {
	if start == end {
		return domain.Route{}, nil
	}

	if _, ok := r.network.SegmentsFrom(start); !ok {
		return domain.Route{}, fmt.Errorf("route: start %s: %w", start, domain.ErrBadCoordinate)
	}
	if _, ok := r.network.SegmentsFrom(end); !ok {
		return domain.Route{}, fmt.Errorf("route: end %s: %w", end, domain.ErrBadCoordinate)
	}

	s := newSearch(r.network, start, end)
	if !s.run() {
		return domain.Route{}, fmt.Errorf("route: %s -> %s: %w", start, end, domain.ErrNoRoute)
	}

	route, err := s.path()
	if err != nil {
		return domain.Route{}, fmt.Errorf("route: %s -> %s: %w", start, end, err)
	}
	return route, nil
}

// RouteLeg adapts Route to the LegRouter port.
func (r *Router) RouteLeg(ctx context.Context, start, end domain.GeoCoord) (_ domain.Route, err error) {
	defer obs.Time(ctx, "router.RouteLeg")(&err)

	return r.Route(start, end)
}

// searchNode is the per-coordinate bookkeeping of a single search.
type searchNode struct {
	parent domain.GeoCoord
	g      float64 // road distance from start
	h      float64 // straight-line distance to end
}

type search struct {
	network ports.SegmentSource
	start   domain.GeoCoord
	end     domain.GeoCoord
	open    openSet
	closed  map[domain.GeoCoord]struct{}
	nodes   map[domain.GeoCoord]searchNode
}

func newSearch(network ports.SegmentSource, start, end domain.GeoCoord) *search {
	return &search{
		network: network,
		start:   start,
		end:     end,
		closed:  make(map[domain.GeoCoord]struct{}),
		nodes:   make(map[domain.GeoCoord]searchNode),
	}
}

// run explores the network and reports whether end was reached.
func (s *search) run() bool {
	h := geo.DistanceMiles(s.start, s.end)
	s.nodes[s.start] = searchNode{parent: s.start, g: 0, h: h}
	heap.Push(&s.open, openEntry{f: h, g: 0, coord: s.start})

	for s.open.Len() > 0 {
		cur := heap.Pop(&s.open).(openEntry)
		if s.stale(cur) {
			continue
		}
		if cur.coord == s.end {
			return true
		}

		s.closed[cur.coord] = struct{}{}
		s.expand(cur)

		// Stop right after the expansion that reaches end, unless a cheaper
		// path through a remaining open coordinate is still possible.
		if goal, ok := s.nodes[s.end]; ok && s.settled(goal.g) {
			return true
		}
	}

	return false
}

func (s *search) expand(cur openEntry) {
	segs, _ := s.network.SegmentsFrom(cur.coord)
	for _, seg := range segs {
		next := seg.End
		if _, done := s.closed[next]; done {
			continue
		}

		g := cur.g + geo.SegmentLength(seg)
		h := geo.DistanceMiles(next, s.end)

		if prev, seen := s.nodes[next]; seen && prev.g+prev.h <= g+h {
			continue
		}

		s.nodes[next] = searchNode{parent: cur.coord, g: g, h: h}
		heap.Push(&s.open, openEntry{f: g + h, g: g, coord: next})
	}
}

// stale reports whether e was closed or superseded by a cheaper entry.
func (s *search) stale(e openEntry) bool {
	if _, done := s.closed[e.coord]; done {
		return true
	}
	return e.g > s.nodes[e.coord].g
}

// settled reports whether no open coordinate can lead to end for less than goalG.
func (s *search) settled(goalG float64) bool {
	for s.open.Len() > 0 && s.stale(s.open[0]) {
		heap.Pop(&s.open)
	}
	return s.open.Len() == 0 || goalG <= s.open[0].f
}

// path walks parent links back from end and returns the route in driving order.
func (s *search) path() (domain.Route, error) {
	var stack []domain.StreetSegment
	total := 0.0

	for cur := s.end; cur != s.start; {
		node := s.nodes[cur]
		seg, ok := s.segmentBetween(node.parent, cur)
		if !ok {
			return domain.Route{}, fmt.Errorf("reconstruct path: no segment %s -> %s", node.parent, cur)
		}
		stack = append(stack, seg)
		total += geo.SegmentLength(seg)
		cur = node.parent
	}

	segments := make([]domain.StreetSegment, 0, len(stack))
	for len(stack) > 0 {
		n := len(stack) - 1
		segments = append(segments, stack[n])
		stack = stack[:n]
	}

	return domain.Route{Segments: segments, DistanceMiles: total}, nil
}

func (s *search) segmentBetween(from, to domain.GeoCoord) (domain.StreetSegment, bool) {
	segs, _ := s.network.SegmentsFrom(from)
	for _, seg := range segs {
		if seg.End == to {
			return seg, true
		}
	}
	return domain.StreetSegment{}, false
}
