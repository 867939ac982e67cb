// Package matrix provides the dense adjacency-matrix graph used by the
// delivery router.
//
// The matrix package provides:
//
//   - AdjacencyMatrix: a fixed-size, undirected, weighted graph over vertex ids
//     0..n-1 with O(1) edge-weight lookups and O(V²) memory.
//   - Edge / FromEdges: build a matrix from an edge list, reporting every
//     invalid edge at once instead of stopping at the first one.
//   - Functional options (WithMaxVertices, WithZeroAsAbsent) that bound the
//     vertex count and choose the zero-weight policy.
//
// Zero-weight policy:
//
//	Every cell carries a presence flag next to its weight, so a road of
//	length 0 is a real edge. WithZeroAsAbsent() switches to the classic
//	"0 means no edge" encoding, where adding a zero weight erases the pair.
//
// Matrices are best for dense or small graphs where O(V²) memory and
// O(V² + E) build time are acceptable.
//
// Errors (sentinel):
//
//	– ErrInvalidVertexCount     n ≤ 0 or n above the configured maximum.
//	– ErrInvalidVertexReference an endpoint outside [0, n).
//	– ErrNegativeWeight         a weight below zero.
//	– ErrNilMatrix              a nil receiver.
package matrix
