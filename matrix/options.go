// SPDX-License-Identifier: MIT

package matrix

// DefaultMaxVertices bounds the vertex count when WithMaxVertices is not given.
const DefaultMaxVertices = 100

// Options configures AdjacencyMatrix construction.
//
// MaxVertices  – largest accepted n. Must be > 0. Default is DefaultMaxVertices.
// ZeroAsAbsent – treat weight 0 as "no edge" instead of a zero-length road.
type Options struct {
	MaxVertices  int
	ZeroAsAbsent bool
}

// Option represents a functional option for configuring an AdjacencyMatrix.
type Option func(*Options)

// WithMaxVertices raises or lowers the vertex bound.
// Panics on k ≤ 0; a non-positive bound is a programming error.
func WithMaxVertices(k int) Option {
	return func(o *Options) {
		if k <= 0 {
			panic(ErrBadMaxVertices.Error())
		}
		o.MaxVertices = k
	}
}

// WithZeroAsAbsent makes AddEdge(u, v, 0) clear the (u, v) pair.
func WithZeroAsAbsent() Option {
	return func(o *Options) {
		o.ZeroAsAbsent = true
	}
}

// DefaultOptions returns the defaults every constructor starts from.
func DefaultOptions() Options {
	return Options{
		MaxVertices:  DefaultMaxVertices,
		ZeroAsAbsent: false,
	}
}

func gatherOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
