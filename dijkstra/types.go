package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that no Source option was supplied.
	ErrEmptySource = errors.New("dijkstra: source vertex not set")

	// ErrNilGraph indicates that a nil Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that a vertex id is outside [0, V).
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrUnreachable indicates that a path was requested to a vertex the source cannot reach.
	ErrUnreachable = errors.New("dijkstra: destination unreachable")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

const (
	// Infinity is the distance of every vertex the source cannot reach.
	Infinity int64 = math.MaxInt64

	// NoPredecessor marks the source and unreachable vertices in Result.Prev.
	NoPredecessor = -1

	// DefaultSeparator joins vertex ids in FormatPath output.
	DefaultSeparator = " -> "

	noSource = math.MinInt
)

// Graph is the read-only view Dijkstra needs: a vertex count and a symmetric
// weight lookup that reports whether the (u, v) edge exists.
type Graph interface {
	VertexCount() int
	Weight(u, v int) (int64, bool)
}

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting vertex id (required, must be in [0, V)).
// MaxDistance      – vertices whose distance would exceed this stay unreachable.
//
//	Must be ≥ 0. Default is Infinity (no cap).
//
// InfEdgeThreshold – edges with weight ≥ this threshold are impassable.
//
//	Must be > 0. Default is Infinity (no walls).
type Options struct {
	Source           int
	MaxDistance      int64
	InfEdgeThreshold int64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex id.
func Source(id int) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// WithMaxDistance caps exploration: relaxations that would produce a distance
// above max are dropped. Panics on a negative value.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats every edge with weight ≥ threshold as closed.
// Panics on zero or a negative value.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct initialized with defaults for the
// given source. Validation happens in Dijkstra, not here.
func DefaultOptions(source int) Options {
	return Options{
		Source:           source,
		MaxDistance:      Infinity,
		InfEdgeThreshold: Infinity,
	}
}

// Result holds the tables of one Dijkstra run.
//
// Dist[v]    – shortest distance from Source, Infinity if unreachable.
// Prev[v]    – predecessor of v on one shortest path, NoPredecessor for the
//
//	source and unreachable vertices.
//
// Visited[v] – v was selected and finalized by the main loop. The loop runs at
//
//	most V-1 rounds, so the last reachable vertex may stay unvisited
//	even though its distance is already final.
//
// Order      – vertices in the order they were finalized.
type Result struct {
	Source  int
	Dist    []int64
	Prev    []int
	Visited []bool
	Order   []int
}

// Route is the answer for one source/destination pair.
type Route struct {
	Source      int
	Destination int
	Distance    int64
	Path        []int
	Reachable   bool
}
