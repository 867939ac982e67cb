// SPDX-License-Identifier: MIT
// Package: deliveryroute/builder
//
// errors.go — sentinel errors for the builder package.
// Callers branch with errors.Is; constructors attach context with %w.

package builder

import "errors"

// ErrTooFewVertices indicates that n is below the minimum of the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a construction that could not proceed (e.g. a nil constructor).
var ErrConstructFailed = errors.New("builder: construction failed")
