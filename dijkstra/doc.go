// Package dijkstra implements single-source shortest paths on small weighted
// undirected graphs with the array-scan form of Dijkstra's algorithm.
//
// Overview:
//
//   - Instead of a priority queue, every round scans all vertices for the
//     unvisited one with the smallest tentative distance. With an adjacency
//     matrix this gives O(V²) time, which beats a heap on dense graphs and is
//     the textbook variant for small delivery maps.
//   - Each call owns a fresh Result (distance, predecessor and visited tables);
//     nothing is shared between calls, so repeated runs are identical.
//   - Path reconstruction walks the predecessor table backwards and reverses
//     it iteratively, so deep paths never grow the call stack.
//
// Tie-breaking (pinned by tests):
//
//   - Selection: among unvisited vertices with equal distance the lowest id
//     wins, because the scan only replaces its candidate on a strictly smaller
//     distance.
//   - Predecessors: relaxation uses a strict "<", so the first predecessor that
//     reaches a vertex at its final cost is kept; later equal-cost
//     alternatives do not overwrite it.
//
// Key features:
//
//   - Functional options: Source (required), WithMaxDistance, WithInfEdgeThreshold.
//   - Any type with VertexCount and Weight is a Graph; *matrix.AdjacencyMatrix
//     is the one used throughout this module.
//   - Find bundles the run with reconstruction for a single destination.
//
// Performance and complexity:
//
//   - Time:  O(V²) – V selection scans of V vertices, each followed by a V-wide
//     relaxation sweep over the matrix row.
//   - Space: O(V) for the tables on top of the caller's O(V²) matrix.
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource:    Source option missing.
//   - ErrNilGraph:       nil Graph.
//   - ErrVertexNotFound: source or destination outside [0, V).
//   - ErrNegativeWeight: the graph holds a negative weight.
//   - ErrUnreachable:    PathTo called for a vertex with infinite distance.
//
// Unreachable destinations are a normal outcome, not a failure: Find returns a
// Route with Reachable == false and Distance == Infinity.
package dijkstra
