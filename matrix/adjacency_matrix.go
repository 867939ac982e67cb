package matrix

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Edge is one undirected road between vertex ids U and V.
type Edge struct {
	U, V   int
	Weight int64
}

// AdjacencyMatrix holds a fixed-size, 2D representation of an undirected graph.
//
// Description:
//
//	Cell (i, j) holds the weight of the edge between vertex i and vertex j
//	together with a presence flag. Writes always hit both (i, j) and (j, i),
//	so the matrix is symmetric at every point of its life.
//
// Time complexity:
//   - AddEdge/RemoveEdge/Weight: O(1)
//   - Neighbors: O(V)
//   - Edges/EdgeCount: O(V²)
//
// Memory:
//   - O(V²).
type AdjacencyMatrix struct {
	n       int
	weights [][]int64
	present [][]bool
	opts    Options
}

// NewAdjacencyMatrix allocates an n×n matrix with no edges.
// Returns ErrInvalidVertexCount if n ≤ 0 or n > Options.MaxVertices.
//
// Time Complexity: O(V²)
// Memory: O(V²)
func NewAdjacencyMatrix(n int, opts ...Option) (*AdjacencyMatrix, error) {
	cfg := gatherOptions(opts)
	if n <= 0 || n > cfg.MaxVertices {
		return nil, fmt.Errorf("n=%d not in [1,%d]: %w", n, cfg.MaxVertices, ErrInvalidVertexCount)
	}

	weights := make([][]int64, n)
	present := make([][]bool, n)
	for i := 0; i < n; i++ {
		weights[i] = make([]int64, n)
		present[i] = make([]bool, n)
	}

	return &AdjacencyMatrix{
		n:       n,
		weights: weights,
		present: present,
		opts:    cfg,
	}, nil
}

// FromEdges builds an n-vertex matrix and adds every edge in order, so a
// later duplicate of the same pair overwrites an earlier one.
// All invalid edges are reported together in one aggregated error and no
// matrix is returned in that case.
func FromEdges(n int, edges []Edge, opts ...Option) (*AdjacencyMatrix, error) {
	m, err := NewAdjacencyMatrix(n, opts...)
	if err != nil {
		return nil, err
	}

	var result *multierror.Error
	for i, e := range edges {
		if err = m.AddEdge(e.U, e.V, e.Weight); err != nil {
			result = multierror.Append(result, fmt.Errorf("edge #%d: %w", i, err))
		}
	}
	if err = result.ErrorOrNil(); err != nil {
		return nil, err
	}

	return m, nil
}

// AddEdge sets weight(u,v) = weight(v,u) = w, replacing any previous value.
// Under WithZeroAsAbsent a zero weight removes the pair instead.
//
// Time Complexity: O(1)
func (m *AdjacencyMatrix) AddEdge(u, v int, w int64) error {
	if m == nil {
		return ErrNilMatrix
	}
	if err := m.checkVertices(u, v); err != nil {
		return err
	}
	if w < 0 {
		return fmt.Errorf("edge %d-%d weight=%d: %w", u, v, w, ErrNegativeWeight)
	}
	if w == 0 && m.opts.ZeroAsAbsent {
		m.clear(u, v)
		return nil
	}

	m.weights[u][v], m.weights[v][u] = w, w
	m.present[u][v], m.present[v][u] = true, true

	return nil
}

// RemoveEdge deletes the (u, v) pair. Removing an absent edge is a no-op.
func (m *AdjacencyMatrix) RemoveEdge(u, v int) error {
	if m == nil {
		return ErrNilMatrix
	}
	if err := m.checkVertices(u, v); err != nil {
		return err
	}
	m.clear(u, v)

	return nil
}

// Weight returns the weight of the (u, v) edge and whether it exists.
// Out-of-range ids report (0, false).
func (m *AdjacencyMatrix) Weight(u, v int) (int64, bool) {
	if m == nil || !m.inRange(u) || !m.inRange(v) || !m.present[u][v] {
		return 0, false
	}

	return m.weights[u][v], true
}

// HasEdge reports whether u and v are adjacent.
func (m *AdjacencyMatrix) HasEdge(u, v int) bool {
	_, ok := m.Weight(u, v)
	return ok
}

// Neighbors returns the ids adjacent to u in ascending order.
//
// Time Complexity: O(V)
func (m *AdjacencyMatrix) Neighbors(u int) ([]int, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if !m.inRange(u) {
		return nil, fmt.Errorf("vertex %d: %w", u, ErrInvalidVertexReference)
	}

	var out []int
	for v := 0; v < m.n; v++ {
		if m.present[u][v] {
			out = append(out, v)
		}
	}

	return out, nil
}

// VertexCount returns n.
func (m *AdjacencyMatrix) VertexCount() int {
	if m == nil {
		return 0
	}

	return m.n
}

// EdgeCount returns the number of undirected pairs (self-loops count once).
func (m *AdjacencyMatrix) EdgeCount() int {
	return len(m.Edges())
}

// Edges lists every edge once with U ≤ V, ordered by (U, V) ascending.
func (m *AdjacencyMatrix) Edges() []Edge {
	if m == nil {
		return nil
	}

	var out []Edge
	for u := 0; u < m.n; u++ {
		for v := u; v < m.n; v++ {
			if m.present[u][v] {
				out = append(out, Edge{U: u, V: v, Weight: m.weights[u][v]})
			}
		}
	}

	return out
}

// Clone returns a deep copy sharing no storage with m.
func (m *AdjacencyMatrix) Clone() *AdjacencyMatrix {
	if m == nil {
		return nil
	}

	c := &AdjacencyMatrix{
		n:       m.n,
		weights: make([][]int64, m.n),
		present: make([][]bool, m.n),
		opts:    m.opts,
	}
	for i := 0; i < m.n; i++ {
		c.weights[i] = append([]int64(nil), m.weights[i]...)
		c.present[i] = append([]bool(nil), m.present[i]...)
	}

	return c
}

func (m *AdjacencyMatrix) clear(u, v int) {
	m.weights[u][v], m.weights[v][u] = 0, 0
	m.present[u][v], m.present[v][u] = false, false
}

func (m *AdjacencyMatrix) inRange(i int) bool {
	return i >= 0 && i < m.n
}

func (m *AdjacencyMatrix) checkVertices(u, v int) error {
	if !m.inRange(u) {
		return fmt.Errorf("vertex %d not in [0,%d): %w", u, m.n, ErrInvalidVertexReference)
	}
	if !m.inRange(v) {
		return fmt.Errorf("vertex %d not in [0,%d): %w", v, m.n, ErrInvalidVertexReference)
	}

	return nil
}
