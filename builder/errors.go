// SPDX-License-Identifier: MIT
// Package: msf/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Constructors attach context with %w: "<Method>: n=0 < min=1: <sentinel>".

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is below the minimum of
// the requested constructor (e.g. Cycle with n < 3).
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside the closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without an RNG
// (WithSeed or WithRand must be supplied).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that composition itself failed (e.g. a nil constructor).
var ErrConstructFailed = errors.New("builder: construction failed")
