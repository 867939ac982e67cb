// SPDX-License-Identifier: MIT
// Package: deliveryroute/builder
//
// impl_random_sparse.go - RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like: include each unordered pair {i,j}, i<j, independently
//     with probability p. No self-loops.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - 0 < p < 1 needs cfg.rng (else ErrNeedRandSource).
//
// Determinism:
//   - Stable trial order: i asc, then j asc. One Bernoulli draw per pair,
//     followed by one weight draw for each accepted pair.

package builder

import (
	"fmt"

	"github.com/katalvlaran/deliveryroute/matrix"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a G(n, p) graph.
func RandomSparse(n int, p float64) Constructor {
	return func(m *matrix.AdjacencyMatrix, cfg builderConfig) error {
		// 1) Validate parameters before any mutation.
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		// 2) Sample pairs.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				switch {
				case p == probMin:
					continue
				case p == probMax:
				case cfg.rng.Float64() >= p:
					continue
				}
				if err := addEdge(methodRandomSparse, m, cfg, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
