// SPDX-License-Identifier: MIT
// Package: deliveryroute/builder
//
// impl_complete.go - Complete(n) constructor: every pair {i,j}, i<j, in
// (i asc, j asc) order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/deliveryroute/matrix"
)

const (
	methodComplete      = "Complete"
	minCompleteVertices = 1
)

// Complete returns a Constructor that builds K_n.
func Complete(n int) Constructor {
	return func(m *matrix.AdjacencyMatrix, cfg builderConfig) error {
		if n < minCompleteVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteVertices, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(methodComplete, m, cfg, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
