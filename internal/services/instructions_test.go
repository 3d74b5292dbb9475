package services

import (
	"testing"

	"delivery-route-planner/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func street(name string, from, to domain.GeoCoord) domain.StreetSegment {
	return domain.StreetSegment{Start: from, End: to, Name: name}
}

func TestCompassDirection(t *testing.T) {
	cases := []struct {
		angle float64
		want  string
	}{
		{0, "east"},
		{22.4, "east"},
		{22.5, "northeast"},
		{67.5, "north"},
		{90, "north"},
		{135, "northwest"},
		{180, "west"},
		{225, "southwest"},
		{270, "south"},
		{315, "southeast"},
		{337.4, "southeast"},
		{337.5, "east"},
		{359.9, "east"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, CompassDirection(tc.angle), "angle %v", tc.angle)
	}
}

func TestClassifyTurn(t *testing.T) {
	cases := []struct {
		angle  float64
		side   domain.TurnSide
		turned bool
	}{
		{0, "", false},
		{0.5, "", false},
		{1, domain.TurnLeft, true},
		{179.9, domain.TurnLeft, true},
		{180, domain.TurnRight, true},
		{358.9, domain.TurnRight, true},
		{359, "", false},
		{359.5, "", false},
	}

	for _, tc := range cases {
		side, turned := classifyTurn(tc.angle)
		assert.Equal(t, tc.turned, turned, "angle %v", tc.angle)
		assert.Equal(t, tc.side, side, "angle %v", tc.angle)
	}
}

func TestBuildInstructionsSameStreetCollapses(t *testing.T) {
	_, a, b, c := mainStreet()

	got := BuildInstructions([]domain.StreetSegment{street("Main St", a, b), street("Main St", b, c)})
	require.Len(t, got, 1)
	assert.Equal(t, domain.InstructionProceed, got[0].Kind)
	assert.Equal(t, "east", got[0].Direction)
	assert.Equal(t, "Main St", got[0].Street)
	assert.InDelta(t, 2.0, got[0].DistanceMiles, 0.01)
}

func TestBuildInstructionsTurns(t *testing.T) {
	origin := domain.MustGeoCoord("0", "0")
	corner := domain.MustGeoCoord("0", "0.01")
	northOf := domain.MustGeoCoord("0.01", "0.01")
	southOf := domain.MustGeoCoord("-0.01", "0.01")
	further := domain.MustGeoCoord("0.02", "0.01")

	left := BuildInstructions([]domain.StreetSegment{
		street("Main St", origin, corner),
		street("Oak Ave", corner, northOf),
		street("Oak Ave", northOf, further),
	})
	require.Len(t, left, 3)
	assert.Equal(t, domain.NewTurn(domain.TurnLeft, "Oak Ave"), left[1])
	assert.Equal(t, domain.InstructionProceed, left[2].Kind)
	assert.Equal(t, "north", left[2].Direction)
	assert.Equal(t, "Oak Ave", left[2].Street)
	assert.InDelta(t, 2*0.01*69.08, left[2].DistanceMiles, 0.05, "second Oak Ave segment extends the proceed after the turn")

	right := BuildInstructions([]domain.StreetSegment{
		street("Main St", origin, corner),
		street("Elm St", corner, southOf),
	})
	require.Len(t, right, 3)
	assert.Equal(t, domain.NewTurn(domain.TurnRight, "Elm St"), right[1])
	assert.Equal(t, "south", right[2].Direction)
}

func TestBuildInstructionsStraightNameChangeMerges(t *testing.T) {
	a := domain.MustGeoCoord("0", "0")
	b := domain.MustGeoCoord("0", "0.01")
	c := domain.MustGeoCoord("0", "0.02")

	got := BuildInstructions([]domain.StreetSegment{
		street("Main St", a, b),
		street("Main Blvd", b, c),
	})
	require.Len(t, got, 1)
	assert.Equal(t, "Main St", got[0].Street)
	assert.InDelta(t, 0.02*69.08, got[0].DistanceMiles, 0.01)
}

func TestBuildInstructionsEmpty(t *testing.T) {
	assert.Nil(t, BuildInstructions(nil))
}
