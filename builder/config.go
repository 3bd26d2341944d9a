// SPDX-License-Identifier: MIT
// Package: msf/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng    = nil             (pure/deterministic unless seeded)
//   • costFn = DefaultCostFn   (constant 1)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Cost generator for every emitted edge.
	costFn CostFn
}

// newBuilderConfig applies options in order on top of the defaults
// (later options override earlier ones).
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{costFn: DefaultCostFn}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// cost draws the next edge cost.
func (c builderConfig) cost() int64 {
	return c.costFn(c.rng)
}
