// SPDX-License-Identifier: MIT
// Package: deliveryroute/builder
//
// api.go - public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: Build(n, mopts, bopts, cons...). Allocates the matrix,
//     resolves cfg, runs cons in order.
//   - Determinism: same inputs, options, seed and constructor order give
//     identical matrices.
//   - Constructors return sentinel errors; only option constructors panic.

package builder

import (
	"fmt"

	"github.com/katalvlaran/deliveryroute/matrix"
)

// Constructor applies a deterministic topology to m using the resolved
// builderConfig. Constructors touch vertex ids 0..n-1 only, so several of
// them can be layered onto one matrix.
type Constructor func(m *matrix.AdjacencyMatrix, cfg builderConfig) error

// Build allocates an n-vertex matrix with mopts, resolves bopts and applies
// every constructor in order. The first failing constructor aborts the build.
func Build(n int, mopts []matrix.Option, bopts []BuilderOption, cons ...Constructor) (*matrix.AdjacencyMatrix, error) {
	m, err := matrix.NewAdjacencyMatrix(n, mopts...)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(m, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return m, nil
}

// addEdge draws one weight from cfg and writes the (u, v) edge.
func addEdge(method string, m *matrix.AdjacencyMatrix, cfg builderConfig, u, v int) error {
	w := cfg.weightFn(cfg.rng)
	if err := m.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%d-%d, w=%d): %w", method, u, v, w, err)
	}

	return nil
}
