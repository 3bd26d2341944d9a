// SPDX-License-Identifier: MIT
// Package: msf/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math/rand"
)

// Option customizes the resolved builderConfig before any constructor runs.
type Option func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithCostFn overrides the per-edge cost generator. Panics on nil.
func WithCostFn(fn CostFn) Option {
	if fn == nil {
		panic("builder: WithCostFn(nil)")
	}

	return func(c *builderConfig) {
		c.costFn = fn
	}
}

// WithCostRange draws costs uniformly from [min, max]; needs an RNG to vary.
// Panics if max < min.
func WithCostRange(min, max int64) Option {
	if max < min {
		panic(fmt.Sprintf("builder: WithCostRange(min=%d > max=%d)", min, max))
	}

	return WithCostFn(UniformCostFn(min, max))
}
