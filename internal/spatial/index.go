// Package spatial snaps arbitrary points onto road network nodes.
package spatial

import (
	"delivery-route-planner/internal/domain"
	"delivery-route-planner/internal/geo"

	"github.com/dhconnelly/rtreego"
)

// Points are stored as tiny rectangles; rtreego rejects zero-sized ones.
const pointSize = 1e-9

type nodeItem struct {
	rect  rtreego.Rect
	coord domain.GeoCoord
}

func (n *nodeItem) Bounds() rtreego.Rect { return n.rect }

// Index is an R-tree over node coordinates in (lon, lat) space.
// It is built once and read-only afterwards.
type Index struct {
	tree *rtreego.Rtree
}

// NewIndex builds an index over coords. Coordinates are indexed in the order given.
func NewIndex(coords []domain.GeoCoord) *Index {
	tree := rtreego.NewTree(2, 25, 50)
	for _, c := range coords {
		rect, err := rtreego.NewRect(rtreego.Point{c.Lon(), c.Lat()}, []float64{pointSize, pointSize})
		if err != nil {
			// Unreachable: lengths are positive constants.
			continue
		}
		tree.Insert(&nodeItem{rect: rect, coord: c})
	}
	return &Index{tree: tree}
}

func (i *Index) Size() int { return i.tree.Size() }

// Nearest returns the node closest to p and its great-circle distance in miles.
// Closeness is measured in degree space, which is accurate enough at street scale.
func (i *Index) Nearest(p domain.Coordinates) (domain.GeoCoord, float64, bool) {
	found := i.tree.NearestNeighbor(rtreego.Point{p.Lon, p.Lat})
	if found == nil {
		return domain.GeoCoord{}, 0, false
	}

	item := found.(*nodeItem)
	return item.coord, geo.PointDistanceMiles(p, item.coord.Coordinates()), true
}
