package dijkstra

import (
	"fmt"
	"strconv"
	"strings"
)

// Reachable reports whether dst has a finite distance from the source.
// Out-of-range ids are unreachable.
func (r *Result) Reachable(dst int) bool {
	return r.inRange(dst) && r.Dist[dst] != Infinity
}

// DistanceTo returns the shortest distance to dst, Infinity when unreachable.
func (r *Result) DistanceTo(dst int) (int64, error) {
	if !r.inRange(dst) {
		return Infinity, fmt.Errorf("vertex %d: %w", dst, ErrVertexNotFound)
	}

	return r.Dist[dst], nil
}

// PathTo rebuilds the source→dst path from the predecessor table.
// Callers are expected to check Reachable first; an unreachable dst
// returns ErrUnreachable rather than a partial path.
//
// Complexity: O(path length).
func (r *Result) PathTo(dst int) ([]int, error) {
	if !r.inRange(dst) {
		return nil, fmt.Errorf("vertex %d: %w", dst, ErrVertexNotFound)
	}
	if r.Dist[dst] == Infinity {
		return nil, fmt.Errorf("%d to %d: %w", r.Source, dst, ErrUnreachable)
	}

	// 1) Walk backwards until the source (the only reachable vertex without a
	//    predecessor). A well-formed table never needs more than len(Prev) steps.
	path := make([]int, 0, 8)
	for cur := dst; cur != NoPredecessor; cur = r.Prev[cur] {
		if len(path) == len(r.Prev) {
			return nil, fmt.Errorf("dijkstra: predecessor cycle at vertex %d", cur)
		}
		path = append(path, cur)
	}

	// 2) Reverse in place into source→dst order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

func (r *Result) inRange(v int) bool {
	return r != nil && v >= 0 && v < len(r.Dist)
}

// FormatPath joins vertex ids with sep, e.g. "0 -> 1 -> 2".
// An empty sep falls back to DefaultSeparator.
func FormatPath(path []int, sep string) string {
	if sep == "" {
		sep = DefaultSeparator
	}

	var b strings.Builder
	for i, v := range path {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(strconv.Itoa(v))
	}

	return b.String()
}
