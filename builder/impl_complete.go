// SPDX-License-Identifier: MIT
// Package: wugraph/builder
//
// impl_complete.go — implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   • Emits each unordered pair {i,j} with i<j exactly once.
//
// Complexity:
//   • Time: O(n) vertices + O(n²) edges emission.
//   • Space: O(n) extra for the precomputed ID slice.
//
// Determinism:
//   • Deterministic pair order: lexicographic by (i,j), i<j.

package builder

import (
	"fmt"

	"github.com/katalvlaran/wugraph/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		ids := make([]string, n)
		for i := 0; i < n; i++ {
			ids[i] = cfg.idFn(i)
			g.AddVertex(ids[i])
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				g.AddEdge(ids[i], ids[j], cfg.weight())
			}
		}

		return nil
	}
}
