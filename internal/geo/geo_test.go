package geo

import (
	"testing"

	"delivery-route-planner/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seg(lat1, lon1, lat2, lon2 string) domain.StreetSegment {
	return domain.StreetSegment{
		Start: domain.MustGeoCoord(lat1, lon1),
		End:   domain.MustGeoCoord(lat2, lon2),
	}
}

func TestDistanceMiles(t *testing.T) {
	a := domain.MustGeoCoord("0", "0")
	b := domain.MustGeoCoord("0", "1")

	// One degree of longitude at the equator is roughly 69 miles.
	d := DistanceMiles(a, b)
	assert.InDelta(t, 69.1, d, 0.2)
	assert.InDelta(t, d, DistanceMiles(b, a), 1e-12, "distance must be symmetric")
	assert.Zero(t, DistanceMiles(a, a))

	assert.InDelta(t, d, PointDistanceMiles(a.Coordinates(), b.Coordinates()), 1e-12)
}

func TestAngleOfLineCardinals(t *testing.T) {
	cases := []struct {
		name string
		s    domain.StreetSegment
		want float64
	}{
		{"east", seg("0", "0", "0", "0.01"), 0},
		{"north", seg("0", "0", "0.01", "0"), 90},
		{"west", seg("0", "0", "0", "-0.01"), 180},
		{"south", seg("0", "0", "-0.01", "0"), 270},
		{"northeast", seg("0", "0", "0.01", "0.01"), 45},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := AngleOfLine(tc.s)
			require.GreaterOrEqual(t, got, 0.0)
			require.Less(t, got, 360.0)
			// East is either ~0 or ~360-epsilon after normalisation.
			if tc.want == 0 && got > 180 {
				got -= 360
			}
			assert.InDelta(t, tc.want, got, 0.1)
		})
	}
}

func TestAngleBetween(t *testing.T) {
	east := seg("0", "0", "0", "0.01")
	north := seg("0", "0.01", "0.01", "0.01")
	south := seg("0", "0.01", "-0.01", "0.01")

	assert.InDelta(t, 90, AngleBetween(east, north), 0.1, "east then north is a left turn")
	assert.InDelta(t, 270, AngleBetween(east, south), 0.1, "east then south is a right turn")

	straight := AngleBetween(east, seg("0", "0.01", "0", "0.02"))
	if straight > 180 {
		straight -= 360
	}
	assert.InDelta(t, 0, straight, 0.01)
}
