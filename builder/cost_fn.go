// SPDX-License-Identifier: MIT
// Package: msf/builder
//
// cost_fn.go — edge cost generators.

package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeCost is the cost assigned to each edge when no CostFn is configured.
const DefaultEdgeCost int64 = 1

// CostFn produces an edge cost from an optional *rand.Rand source.
// It must be deterministic for a given RNG state.
type CostFn func(rng *rand.Rand) int64

// DefaultCostFn always returns DefaultEdgeCost.
func DefaultCostFn(_ *rand.Rand) int64 {
	return DefaultEdgeCost
}

// ConstantCostFn returns a CostFn that always yields value. Any value,
// including negative ones, is accepted.
func ConstantCostFn(value int64) CostFn {
	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformCostFn returns a CostFn sampling uniformly from [min, max] inclusive.
// Panics if max < min. With a nil RNG it yields min.
func UniformCostFn(min, max int64) CostFn {
	if max < min {
		panic(fmt.Sprintf("UniformCostFn: require min ≤ max, got min=%d, max=%d", min, max))
	}
	span := max - min + 1

	return func(rng *rand.Rand) int64 {
		if rng == nil || span == 1 {
			return min
		}
		if span <= 0 {
			// [min, max] covers more than int64 can count: sample raw bits.
			for {
				v := int64(rng.Uint64())
				if v >= min && v <= max {
					return v
				}
			}
		}

		return min + rng.Int63n(span)
	}
}
