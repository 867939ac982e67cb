// SPDX-License-Identifier: MIT
// Package: deliveryroute/builder
//
// impl_path.go - Path(n) and Cycle(n) constructors.
//
// Contract:
//   - Path: n ≥ 2, edges (i-1)-i for i=1..n-1 in increasing order.
//   - Cycle: n ≥ 3, the Path edges plus the closing (n-1)-0 edge.
//   - Weights come from cfg.weightFn(cfg.rng), one draw per edge in emission order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/deliveryroute/matrix"
)

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	minPathNodes  = 2
	minCycleNodes = 3
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(m *matrix.AdjacencyMatrix, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		for i := 1; i < n; i++ {
			if err := addEdge(methodPath, m, cfg, i-1, i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle returns a Constructor that builds a simple cycle C_n.
func Cycle(n int) Constructor {
	return func(m *matrix.AdjacencyMatrix, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		for i := 1; i < n; i++ {
			if err := addEdge(methodCycle, m, cfg, i-1, i); err != nil {
				return err
			}
		}

		return addEdge(methodCycle, m, cfg, n-1, 0)
	}
}
