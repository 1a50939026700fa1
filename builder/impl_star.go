// SPDX-License-Identifier: MIT
// Package: wugraph/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds hub vertex with fixed label CenterVertexID.
//   - Adds leaves via cfg.idFn in ascending index order for i = 1..n-1.
//   - Emits spokes in stable order Center — leaf[i].
//
// Complexity:
//   - Time: O(n) vertices + O(n-1) edges.
//   - Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/wugraph/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// CenterVertexID is the hub label used by Star.
const CenterVertexID = "Center"

// Star returns a Constructor that builds a star topology with n vertices:
// one hub "Center" and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		g.AddVertex(CenterVertexID)
		for i := 1; i < n; i++ {
			leaf := cfg.idFn(i)
			g.AddVertex(leaf)
			g.AddEdge(CenterVertexID, leaf, cfg.weight())
		}

		return nil
	}
}
