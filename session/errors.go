package session

import "errors"

var (
	// ErrInvalidVertexCount indicates V ≤ 0 or V above the maximum.
	ErrInvalidVertexCount = errors.New("session: invalid number of locations")

	// ErrInvalidEdgeCount indicates E < 0.
	ErrInvalidEdgeCount = errors.New("session: invalid number of roads")

	// ErrInvalidVertexReference indicates a location id outside [0, V).
	ErrInvalidVertexReference = errors.New("session: location out of range")

	// ErrInvalidWeight indicates a negative road distance.
	ErrInvalidWeight = errors.New("session: invalid road distance")

	// ErrMalformedInput indicates a token that is not an integer, or early end of input.
	ErrMalformedInput = errors.New("session: malformed input")
)
