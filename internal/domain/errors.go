package domain

import "errors"

var (
	// ErrBadCoordinate: a start or end coordinate is not a node of the road network.
	ErrBadCoordinate = errors.New("bad coordinate")

	// ErrNoRoute: the end coordinate is unreachable from the start coordinate.
	ErrNoRoute = errors.New("no route")
)
