// Package session runs the interactive delivery-routing dialogue over a
// reader/writer pair.
//
// The dialogue asks, in order, for the number of locations, the number of
// roads, each road as "from to distance", the restaurant (source) and the
// customer (destination). Input is read as whitespace-separated integers, so
// values may be spread over lines freely.
//
// Malformed input is rejected before the algorithm runs:
//
//	– ErrInvalidVertexCount     V ≤ 0 or above the configured maximum.
//	– ErrInvalidEdgeCount       E < 0.
//	– ErrInvalidVertexReference a road end, source or destination outside [0, V).
//	– ErrInvalidWeight          a negative road distance.
//	– ErrMalformedInput         a non-integer token or input ending early.
//
// Road problems are collected across all E roads and reported together.
// An unreachable customer is not an error; it prints the "no path" line.
package session
