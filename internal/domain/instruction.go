package domain

import "fmt"

type InstructionKind string

const (
	InstructionProceed InstructionKind = "proceed"
	InstructionTurn    InstructionKind = "turn"
	InstructionDeliver InstructionKind = "deliver"
)

type TurnSide string

const (
	TurnLeft  TurnSide = "left"
	TurnRight TurnSide = "right"
)

// Instruction is a single turn-by-turn driving step.
//
// Proceed instructions carry Direction, Street and DistanceMiles.
// Turn instructions carry Side and the Street being turned onto.
// Deliver instructions carry Item.
type Instruction struct {
	Kind          InstructionKind
	Direction     string
	Street        string
	DistanceMiles float64
	Side          TurnSide
	Item          string
}

func NewProceed(direction, street string, miles float64) Instruction {
	return Instruction{Kind: InstructionProceed, Direction: direction, Street: street, DistanceMiles: miles}
}

func NewTurn(side TurnSide, street string) Instruction {
	return Instruction{Kind: InstructionTurn, Side: side, Street: street}
}

func NewDeliver(item string) Instruction {
	return Instruction{Kind: InstructionDeliver, Item: item}
}

func (in Instruction) String() string {
	switch in.Kind {
	case InstructionProceed:
		return fmt.Sprintf("Proceed %.2f miles %s on %s", in.DistanceMiles, in.Direction, in.Street)
	case InstructionTurn:
		return fmt.Sprintf("Turn %s on %s", in.Side, in.Street)
	case InstructionDeliver:
		return fmt.Sprintf("Deliver %s", in.Item)
	default:
		return fmt.Sprintf("unknown instruction %q", string(in.Kind))
	}
}
