package services

import (
	"delivery-route-planner/internal/domain"
	"delivery-route-planner/internal/geo"
)

// compassPoints are 45 degree octants centred on east and going counter-clockwise.
var compassPoints = [...]string{
	"east", "northeast", "north", "northwest",
	"west", "southwest", "south", "southeast",
}

// CompassDirection names the octant of a line angle measured counter-clockwise from east.
func CompassDirection(angle float64) string {
	idx := int((angle + 22.5) / 45)
	return compassPoints[idx%len(compassPoints)]
}

// classifyTurn maps the angle between two consecutive segments to a turn side.
// ok is false for a near-straight continuation.
func classifyTurn(angle float64) (side domain.TurnSide, ok bool) {
	switch {
	case angle >= 1 && angle < 180:
		return domain.TurnLeft, true
	case angle >= 180 && angle < 359:
		return domain.TurnRight, true
	default:
		return "", false
	}
}

// BuildInstructions converts a route into proceed and turn instructions.
//
// Consecutive segments on the same street extend the current proceed. A street
// change emits a turn followed by a new proceed, unless the change is a
// near-straight continuation, in which case the distance is folded into the
// current proceed.
func BuildInstructions(segments []domain.StreetSegment) []domain.Instruction {
	if len(segments) == 0 {
		return nil
	}

	first := segments[0]
	out := []domain.Instruction{
		domain.NewProceed(CompassDirection(geo.AngleOfLine(first)), first.Name, geo.SegmentLength(first)),
	}
	// Index of the proceed instruction that absorbs continuation distance.
	current := 0

	for i := 1; i < len(segments); i++ {
		prev, seg := segments[i-1], segments[i]
		miles := geo.SegmentLength(seg)

		if seg.Name == prev.Name {
			out[current].DistanceMiles += miles
			continue
		}

		side, turned := classifyTurn(geo.AngleBetween(prev, seg))
		if !turned {
			out[current].DistanceMiles += miles
			continue
		}

		out = append(out,
			domain.NewTurn(side, seg.Name),
			domain.NewProceed(CompassDirection(geo.AngleOfLine(seg)), seg.Name, miles),
		)
		current = len(out) - 1
	}

	return out
}
