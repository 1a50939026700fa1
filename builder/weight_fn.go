// SPDX-License-Identifier: MIT
// Package: wugraph/builder
//
// weight_fn.go — edge-weight distributions for graph constructors.

package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is the default weight assigned to each edge when no
// custom WeightFn is provided.
const DefaultEdgeWeight int64 = 1

// WeightFn produces an edge weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed.
type WeightFn func(rng *rand.Rand) int64

// DefaultWeightFn always returns the constant DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) int64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields the provided value.
// Negative and zero weights are legal edge weights and are passed through.
func ConstantWeightFn(value int64) WeightFn {
	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max] inclusive.
// Panics if max < min.
// If rng is nil, yields min so the result stays deterministic.
//
// Complexity: O(1) time, O(1) space.
func UniformWeightFn(min, max int64) WeightFn {
	if max < min {
		panic(fmt.Sprintf("UniformWeightFn: require min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil || max == min {
			return min
		}
		// Int63n needs a positive bound; the span fits unless the interval
		// covers nearly the whole int64 range, which we clamp.
		span := max - min + 1
		if span <= 0 {
			return min + rng.Int63()
		}

		return min + rng.Int63n(span)
	}
}

// WithUniformWeights is shorthand for WithWeightFn(UniformWeightFn(min, max)).
func WithUniformWeights(min, max int64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}

// WithConstantWeight is shorthand for WithWeightFn(ConstantWeightFn(w)).
func WithConstantWeight(w int64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}
