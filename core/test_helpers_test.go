// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for wugraph/core.
//
// Purpose:
//   - Provide small, deterministic fixtures shared by the core tests.
//   - Provide a public-API consistency check (degrees, neighbors, weights,
//     edge count) used after every mutation in the randomized tests.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wugraph/core"
)

// Common vertex labels used across core tests.
const (
	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
	VertexX = "X"
)

// Common weights used across core tests (avoid magic numbers in test bodies).
const (
	Weight0 = 0
	Weight1 = 1
	Weight2 = 2
	Weight3 = 3
	Weight9 = 9
)

// newSquare returns the 4-cycle A-B-C-D-A with weights 1,2,3,4 and a chord A-C(5).
func newSquare() *core.Graph[string] {
	g := core.NewGraph[string]()
	for _, v := range []string{VertexA, VertexB, VertexC, VertexD} {
		g.AddVertex(v)
	}
	g.AddEdge(VertexA, VertexB, 1)
	g.AddEdge(VertexB, VertexC, 2)
	g.AddEdge(VertexC, VertexD, 3)
	g.AddEdge(VertexA, VertexD, 4)
	g.AddEdge(VertexA, VertexC, 5)

	return g
}

// pair is an unordered vertex pair used by the reference model.
type pair struct{ a, b int }

func mkPair(a, b int) pair {
	if a > b {
		a, b = b, a
	}

	return pair{a, b}
}

// requireConsistent cross-checks the graph's public views against each other:
//   - Vertices() has VertexCount() distinct members.
//   - Degree(v) == Neighbors(v).Len() for every v.
//   - every neighbor entry is confirmed by EdgeWeight in both directions.
//   - Edges() has EdgeCount() entries and degrees add up (self-edge counts once).
func requireConsistent[L comparable](t *testing.T, g *core.Graph[L]) {
	t.Helper()

	vs := g.Vertices()
	require.Len(t, vs, g.VertexCount(), "Vertices() length")
	seen := make(map[L]struct{}, len(vs))
	for _, v := range vs {
		_, dup := seen[v]
		require.False(t, dup, "duplicate vertex %v", v)
		seen[v] = struct{}{}
	}

	degreeSum := 0
	for _, v := range vs {
		nb := g.Neighbors(v)
		require.Equal(t, g.Degree(v), nb.Len(), "Degree vs Neighbors for %v", v)
		require.Len(t, nb.Weights, nb.Len())
		for i, u := range nb.Vertices {
			w, ok := g.EdgeWeight(v, u)
			require.True(t, ok, "edge %v-%v listed but missing", v, u)
			require.Equal(t, nb.Weights[i], w, "weight sync %v-%v", v, u)
			w2, ok2 := g.EdgeWeight(u, v)
			require.True(t, ok2)
			require.Equal(t, w, w2, "symmetric weight %v-%v", v, u)
		}
		degreeSum += g.Degree(v)
	}

	edges := g.Edges()
	require.Len(t, edges, g.EdgeCount(), "Edges() length")
	selfEdges := 0
	for _, e := range edges {
		if e.From == e.To {
			selfEdges++
		}
	}
	require.Equal(t, 2*(g.EdgeCount()-selfEdges)+selfEdges, degreeSum, "degree sum")
}
