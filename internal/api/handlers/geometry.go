package handlers

import (
	"delivery-route-planner/internal/domain"
	"delivery-route-planner/internal/geo"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/twpayne/go-polyline"
)

// encodePolyline returns the Google encoded polyline of the driven node sequence.
func encodePolyline(segments []domain.StreetSegment) string {
	coords := domain.Route{Segments: segments}.Coords()
	if len(coords) == 0 {
		return ""
	}

	pts := make([][]float64, 0, len(coords))
	for _, c := range coords {
		pts = append(pts, []float64{c.Lat(), c.Lon()})
	}
	return string(polyline.EncodeCoords(pts))
}

// segmentsGeoJSON renders every segment as a LineString feature, followed by
// one Point feature per marker.
func segmentsGeoJSON(segments []domain.StreetSegment, markers ...marker) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for i, s := range segments {
		f := geojson.NewFeature(orb.LineString{
			{s.Start.Lon(), s.Start.Lat()},
			{s.End.Lon(), s.End.Lat()},
		})
		f.Properties["seq"] = i
		f.Properties["street"] = s.Name
		f.Properties["distance_miles"] = geo.SegmentLength(s)
		fc.Append(f)
	}

	for _, m := range markers {
		f := geojson.NewFeature(orb.Point{m.at.Lon(), m.at.Lat()})
		f.Properties["role"] = m.role
		if m.label != "" {
			f.Properties["label"] = m.label
		}
		fc.Append(f)
	}

	return fc
}

type marker struct {
	at    domain.GeoCoord
	role  string
	label string
}
