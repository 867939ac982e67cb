// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..." so log lines are easy to grep.
// Callers attach context with fmt.Errorf("ctx: %w", ErrX) and match with errors.Is.

package matrix

import "errors"

var (
	// ErrInvalidVertexCount is returned when n ≤ 0 or n exceeds the configured maximum.
	ErrInvalidVertexCount = errors.New("matrix: invalid vertex count")

	// ErrInvalidVertexReference indicates that an edge endpoint is outside [0, n).
	ErrInvalidVertexReference = errors.New("matrix: vertex index out of range")

	// ErrNegativeWeight indicates that a negative edge weight was supplied.
	ErrNegativeWeight = errors.New("matrix: negative edge weight")

	// ErrNilMatrix indicates that a nil *AdjacencyMatrix was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrBadMaxVertices is the panic message of WithMaxVertices for k ≤ 0.
	ErrBadMaxVertices = errors.New("matrix: MaxVertices must be positive")
)
