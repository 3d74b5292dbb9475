package services

import "delivery-route-planner/internal/domain"

// openEntry is a discovered coordinate waiting to be expanded.
// g is recorded so stale entries can be recognised after a cheaper path was found.
type openEntry struct {
	f     float64
	g     float64
	coord domain.GeoCoord
}

// openSet is a min-heap over (f, coord). Equal priorities are ordered by
// coordinate text so that removal order never depends on insertion history.
// Superseded entries are left in place and skipped when popped.
type openSet []openEntry

func (o openSet) Len() int { return len(o) }

func (o openSet) Less(i, j int) bool {
	if o[i].f != o[j].f {
		return o[i].f < o[j].f
	}
	return o[i].coord.Compare(o[j].coord) < 0
}

func (o openSet) Swap(i, j int) { o[i], o[j] = o[j], o[i] }

func (o *openSet) Push(x any) { *o = append(*o, x.(openEntry)) }

func (o *openSet) Pop() any {
	old := *o
	n := len(old)
	item := old[n-1]
	*o = old[:n-1]
	return item
}
