package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// GeoCoord is an immutable latitude/longitude pair that identifies a node in the
// road network.
//
// Identity is the original text of both values: "34.0500" and "34.05" are
// different coordinates even though they parse to the same number. The parsed
// floats are derived deterministically from the text, so GeoCoord is comparable
// with == and safe to use as a map key.
type GeoCoord struct {
	latText string
	lonText string
	lat     float64
	lon     float64
}

// NewGeoCoord parses latitude and longitude text into a GeoCoord.
func NewGeoCoord(latText, lonText string) (GeoCoord, error) {
	latText = strings.TrimSpace(latText)
	lonText = strings.TrimSpace(lonText)

	lat, err := parseDegrees(latText, 90)
	if err != nil {
		return GeoCoord{}, fmt.Errorf("new geo coord: latitude %q: %w", latText, err)
	}

	lon, err := parseDegrees(lonText, 180)
	if err != nil {
		return GeoCoord{}, fmt.Errorf("new geo coord: longitude %q: %w", lonText, err)
	}

	return GeoCoord{latText: latText, lonText: lonText, lat: lat, lon: lon}, nil
}

// MustGeoCoord is NewGeoCoord for literals known to be valid. It panics otherwise.
func MustGeoCoord(latText, lonText string) GeoCoord {
	c, err := NewGeoCoord(latText, lonText)
	if err != nil {
		panic(err)
	}
	return c
}

// FormatGeoCoord builds a GeoCoord from floats using the shortest text that
// round-trips each value.
func FormatGeoCoord(lat, lon float64) (GeoCoord, error) {
	return NewGeoCoord(
		strconv.FormatFloat(lat, 'f', -1, 64),
		strconv.FormatFloat(lon, 'f', -1, 64),
	)
}

func parseDegrees(s string, limit float64) (float64, error) {
	if s == "" {
		return 0, fmt.Errorf("empty value")
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse: %w", err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("not a finite number")
	}
	if v < -limit || v > limit {
		return 0, fmt.Errorf("out of range [-%g, %g]", limit, limit)
	}

	return v, nil
}

func (c GeoCoord) LatText() string { return c.latText }
func (c GeoCoord) LonText() string { return c.lonText }
func (c GeoCoord) Lat() float64    { return c.lat }
func (c GeoCoord) Lon() float64    { return c.lon }

// IsZero reports whether c was never constructed.
func (c GeoCoord) IsZero() bool { return c.latText == "" && c.lonText == "" }

// Equal compares the textual representation of both coordinates.
func (c GeoCoord) Equal(o GeoCoord) bool {
	return c.latText == o.latText && c.lonText == o.lonText
}

// Compare orders coordinates lexicographically by latitude text, then longitude text.
func (c GeoCoord) Compare(o GeoCoord) int {
	if r := strings.Compare(c.latText, o.latText); r != 0 {
		return r
	}
	return strings.Compare(c.lonText, o.lonText)
}

// Coordinates drops the identity and returns the numeric point.
func (c GeoCoord) Coordinates() Coordinates { return Coordinates{Lat: c.lat, Lon: c.lon} }

func (c GeoCoord) String() string { return c.latText + "," + c.lonText }
