// SPDX-License-Identifier: MIT
// Package: wugraph/builder
//
// impl_cycle.go — implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   • Emits edges in stable order i — (i+1)%n for i=0..n-1.
//   • Weight policy: cfg.weight() per edge, in emission order.
//
// Complexity:
//   • Time: O(n) vertices + O(n) edges.
//   • Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/wugraph/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		addVertices(g, cfg, n)

		// for i==n-1, connect to 0 to close the ring.
		for i := 0; i < n; i++ {
			g.AddEdge(cfg.idFn(i), cfg.idFn((i+1)%n), cfg.weight())
		}

		return nil
	}
}

// addVertices inserts labels cfg.idFn(0..n-1) in ascending order.
func addVertices(g *core.Graph[string], cfg builderConfig, n int) {
	for i := 0; i < n; i++ {
		g.AddVertex(cfg.idFn(i))
	}
}
