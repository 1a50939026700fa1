// SPDX-License-Identifier: MIT
// Package: wugraph/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Model:
//   - Erdős–Rényi G(n,p): include each unordered pair {i,j}, i<j, independently with prob p.
//   - No self-edges.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//
// Complexity:
//   - Time: O(n) vertices + O(n²) Bernoulli trials.
//   - Space: O(1) extra.
//
// Determinism:
//   - Stable trial order: for each i asc, j asc with j>i. Trials and weight
//     draws share cfg.rng, so outcomes are fixed by the seed.

package builder

import (
	"fmt"

	"github.com/katalvlaran/wugraph/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a G(n,p) graph.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		// NaN fails both comparisons, so test the accepted range.
		if !(p >= probMin && p <= probMax) {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		addVertices(g, cfg, n)
		if p == probMin {
			return nil
		}

		for i := 0; i < n; i++ {
			u := cfg.idFn(i)
			for j := i + 1; j < n; j++ {
				// p==1 keeps every pair without consuming the rng.
				if p < probMax && cfg.rng.Float64() >= p {
					continue
				}
				g.AddEdge(u, cfg.idFn(j), cfg.weight())
			}
		}

		return nil
	}
}
