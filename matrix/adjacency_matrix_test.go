package matrix_test

import (
	"errors"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/deliveryroute/matrix"
)

func TestNewAdjacencyMatrix_VertexBounds(t *testing.T) {
	_, err := matrix.NewAdjacencyMatrix(0)
	require.ErrorIs(t, err, matrix.ErrInvalidVertexCount)

	_, err = matrix.NewAdjacencyMatrix(-3)
	require.ErrorIs(t, err, matrix.ErrInvalidVertexCount)

	_, err = matrix.NewAdjacencyMatrix(matrix.DefaultMaxVertices + 1)
	require.ErrorIs(t, err, matrix.ErrInvalidVertexCount)

	m, err := matrix.NewAdjacencyMatrix(matrix.DefaultMaxVertices)
	require.NoError(t, err)
	require.Equal(t, matrix.DefaultMaxVertices, m.VertexCount())

	// A raised bound admits larger graphs.
	m, err = matrix.NewAdjacencyMatrix(250, matrix.WithMaxVertices(500))
	require.NoError(t, err)
	require.Equal(t, 250, m.VertexCount())
	require.Zero(t, m.EdgeCount())
}

func TestWithMaxVertices_PanicsOnNonPositive(t *testing.T) {
	require.PanicsWithValue(t, matrix.ErrBadMaxVertices.Error(), func() {
		_, _ = matrix.NewAdjacencyMatrix(1, matrix.WithMaxVertices(0))
	})
}

func TestAddEdge_Symmetric(t *testing.T) {
	m, err := matrix.NewAdjacencyMatrix(4)
	require.NoError(t, err)
	require.NoError(t, m.AddEdge(0, 1, 1))
	require.NoError(t, m.AddEdge(2, 1, 2))
	require.NoError(t, m.AddEdge(0, 2, 4))
	require.NoError(t, m.AddEdge(3, 2, 1))

	for u := 0; u < 4; u++ {
		for v := 0; v < 4; v++ {
			wuv, okuv := m.Weight(u, v)
			wvu, okvu := m.Weight(v, u)
			require.Equal(t, okuv, okvu, "presence (%d,%d)", u, v)
			require.Equal(t, wuv, wvu, "weight (%d,%d)", u, v)
		}
	}
	require.Equal(t, 4, m.EdgeCount())
}

func TestAddEdge_DuplicateOverwrites(t *testing.T) {
	m, err := matrix.NewAdjacencyMatrix(2)
	require.NoError(t, err)
	require.NoError(t, m.AddEdge(0, 1, 9))
	require.NoError(t, m.AddEdge(1, 0, 3))

	w, ok := m.Weight(0, 1)
	require.True(t, ok)
	require.Equal(t, int64(3), w)
	require.Equal(t, 1, m.EdgeCount())
}

func TestAddEdge_Errors(t *testing.T) {
	m, err := matrix.NewAdjacencyMatrix(3)
	require.NoError(t, err)

	require.ErrorIs(t, m.AddEdge(-1, 0, 1), matrix.ErrInvalidVertexReference)
	require.ErrorIs(t, m.AddEdge(0, 3, 1), matrix.ErrInvalidVertexReference)
	require.ErrorIs(t, m.AddEdge(0, 1, -2), matrix.ErrNegativeWeight)
	require.Zero(t, m.EdgeCount(), "failed writes must not mutate")

	var nilM *matrix.AdjacencyMatrix
	require.ErrorIs(t, nilM.AddEdge(0, 1, 1), matrix.ErrNilMatrix)
	require.Zero(t, nilM.VertexCount())
}

func TestZeroWeightPolicy(t *testing.T) {
	// Default: zero is a real, present edge.
	m, err := matrix.NewAdjacencyMatrix(2)
	require.NoError(t, err)
	require.NoError(t, m.AddEdge(0, 1, 0))
	w, ok := m.Weight(0, 1)
	require.True(t, ok)
	require.Zero(t, w)

	// Legacy: zero erases the pair.
	legacy, err := matrix.NewAdjacencyMatrix(2, matrix.WithZeroAsAbsent())
	require.NoError(t, err)
	require.NoError(t, legacy.AddEdge(0, 1, 7))
	require.True(t, legacy.HasEdge(1, 0))
	require.NoError(t, legacy.AddEdge(0, 1, 0))
	require.False(t, legacy.HasEdge(0, 1))
	require.False(t, legacy.HasEdge(1, 0))
}

func TestNeighbors_Ascending(t *testing.T) {
	m, err := matrix.FromEdges(5, []matrix.Edge{
		{U: 2, V: 4, Weight: 1},
		{U: 2, V: 0, Weight: 1},
		{U: 3, V: 2, Weight: 1},
	})
	require.NoError(t, err)

	nbrs, err := m.Neighbors(2)
	require.NoError(t, err)
	require.Equal(t, []int{0, 3, 4}, nbrs)

	nbrs, err = m.Neighbors(1)
	require.NoError(t, err)
	require.Empty(t, nbrs)

	_, err = m.Neighbors(5)
	require.ErrorIs(t, err, matrix.ErrInvalidVertexReference)
}

func TestFromEdges_AggregatesErrors(t *testing.T) {
	_, err := matrix.FromEdges(3, []matrix.Edge{
		{U: 0, V: 1, Weight: 1},
		{U: 0, V: 7, Weight: 1},
		{U: 1, V: 2, Weight: -1},
	})
	require.Error(t, err)
	require.ErrorIs(t, err, matrix.ErrInvalidVertexReference)
	require.ErrorIs(t, err, matrix.ErrNegativeWeight)

	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	require.Len(t, merr.Errors, 2)
}

func TestEdgesAndRemove(t *testing.T) {
	m, err := matrix.FromEdges(3, []matrix.Edge{
		{U: 2, V: 1, Weight: 5},
		{U: 1, V: 0, Weight: 2},
		{U: 1, V: 1, Weight: 4},
	})
	require.NoError(t, err)
	require.Equal(t, []matrix.Edge{
		{U: 0, V: 1, Weight: 2},
		{U: 1, V: 1, Weight: 4},
		{U: 1, V: 2, Weight: 5},
	}, m.Edges())

	require.NoError(t, m.RemoveEdge(2, 1))
	require.False(t, m.HasEdge(1, 2))
	require.Equal(t, 2, m.EdgeCount())
	require.ErrorIs(t, m.RemoveEdge(0, 9), matrix.ErrInvalidVertexReference)
}

func TestClone_Independent(t *testing.T) {
	m, err := matrix.FromEdges(2, []matrix.Edge{{U: 0, V: 1, Weight: 3}})
	require.NoError(t, err)

	c := m.Clone()
	require.NoError(t, c.AddEdge(0, 1, 8))

	w, _ := m.Weight(0, 1)
	require.Equal(t, int64(3), w)
	w, _ = c.Weight(1, 0)
	require.Equal(t, int64(8), w)
}
