package dijkstra

import (
	"fmt"
)

// Dijkstra computes shortest distances from Options.Source to every vertex of g.
//
// Preconditions and validation (in order):
//  1. Source must be set (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. Source must be in [0, V) (ErrVertexNotFound).
//  4. No edge may have a negative weight (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O(V²)
//   - Space: O(V)
func Dijkstra(g Graph, opts ...Option) (*Result, error) {
	// 1) Build Options.
	cfg := DefaultOptions(noSource)
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	if cfg.Source == noSource {
		return nil, ErrEmptySource
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.VertexCount()
	if cfg.Source < 0 || cfg.Source >= n {
		return nil, fmt.Errorf("source %d not in [0,%d): %w", cfg.Source, n, ErrVertexNotFound)
	}

	// 3) Pre-scan the upper triangle for negative weights; the graph is symmetric.
	for u := 0; u < n; u++ {
		for v := u; v < n; v++ {
			if w, ok := g.Weight(u, v); ok && w < 0 {
				return nil, fmt.Errorf("%w: edge %d-%d weight=%d", ErrNegativeWeight, u, v, w)
			}
		}
	}

	// 4) Fresh tables for this call only.
	r := &runner{
		g:       g,
		n:       n,
		options: cfg,
		res: &Result{
			Source:  cfg.Source,
			Dist:    make([]int64, n),
			Prev:    make([]int, n),
			Visited: make([]bool, n),
			Order:   make([]int, 0, n),
		},
	}
	r.init()
	r.process()

	return r.res, nil
}

// Find runs Dijkstra from src and reconstructs the route to dst.
// An unreachable dst is not an error: the Route comes back with
// Reachable == false, Distance == Infinity and a nil Path.
func Find(g Graph, src, dst int, opts ...Option) (Route, error) {
	runOpts := append(append(make([]Option, 0, len(opts)+1), opts...), Source(src))
	res, err := Dijkstra(g, runOpts...)
	if err != nil {
		return Route{}, err
	}
	if dst < 0 || dst >= len(res.Dist) {
		return Route{}, fmt.Errorf("destination %d not in [0,%d): %w", dst, len(res.Dist), ErrVertexNotFound)
	}

	route := Route{
		Source:      src,
		Destination: dst,
		Distance:    res.Dist[dst],
	}
	if !res.Reachable(dst) {
		return route, nil
	}
	if route.Path, err = res.PathTo(dst); err != nil {
		return Route{}, err
	}
	route.Reachable = true

	return route, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       Graph
	n       int
	options Options
	res     *Result
}

// init sets dist[v] = Infinity and prev[v] = NoPredecessor for all v, then dist[source] = 0.
func (r *runner) init() {
	for v := 0; v < r.n; v++ {
		r.res.Dist[v] = Infinity
		r.res.Prev[v] = NoPredecessor
	}
	r.res.Dist[r.options.Source] = 0
}

// process runs at most V-1 rounds of select-then-relax. It stops early once
// no unvisited vertex has a finite distance.
func (r *runner) process() {
	for round := 0; round < r.n-1; round++ {
		u := r.selectMin()
		if u == NoPredecessor {
			break
		}

		r.res.Visited[u] = true
		r.res.Order = append(r.res.Order, u)
		r.relax(u)
	}
}

// selectMin returns the unvisited vertex with the strictly smallest finite
// distance, scanning ids in ascending order, or NoPredecessor if none is left.
func (r *runner) selectMin() int {
	u := NoPredecessor
	best := Infinity
	for v := 0; v < r.n; v++ {
		if !r.res.Visited[v] && r.res.Dist[v] < best {
			best = r.res.Dist[v]
			u = v
		}
	}

	return u
}

// relax tries to improve every unvisited neighbor of the freshly finalized u.
func (r *runner) relax(u int) {
	du := r.res.Dist[u]
	for v := 0; v < r.n; v++ {
		if r.res.Visited[v] {
			continue
		}
		w, ok := r.g.Weight(u, v)
		if !ok || w >= r.options.InfEdgeThreshold {
			continue
		}

		// Saturate instead of overflowing int64.
		if w > Infinity-du {
			continue
		}
		newDist := du + w
		if newDist > r.options.MaxDistance {
			continue
		}

		// Strict "<" keeps the first equal-cost predecessor.
		if newDist >= r.res.Dist[v] {
			continue
		}
		r.res.Dist[v] = newDist
		r.res.Prev[v] = u
	}
}
