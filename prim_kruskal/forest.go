// SPDX-License-Identifier: MIT
//
// File: forest.go
// Role: Forest helpers shared by tests and the CLI: Components, IsSpanningForest.
// Policy:
//   - Read-only over their arguments; a nil graph counts as empty.

package prim_kruskal

import (
	"github.com/katalvlaran/wugraph/core"
	"github.com/katalvlaran/wugraph/unionfind"
)

// Components returns the number of connected components of g.
// Isolated vertices are components of their own; a nil or empty graph has 0.
//
// Complexity: O(V + E·α(V)).
func Components[L comparable](g *core.Graph[L]) int {
	if g == nil {
		return 0
	}
	vertices := g.Vertices()
	index := make(map[L]int, len(vertices))
	for i, v := range vertices {
		index[v] = i
	}

	ds := unionfind.New(len(vertices))
	for _, e := range g.Edges() {
		ds.Union(index[e.From], index[e.To])
	}

	return ds.Count()
}

// IsSpanningForest reports whether f is a spanning forest of g:
//   - f and g have the same vertex set;
//   - every edge of f is an edge of g with the same weight;
//   - f has no self-edges and no cycles;
//   - f has exactly |V| − Components(g) edges, i.e. it spans every component.
//
// It does not check minimality; compare TotalWeight against a reference for that.
//
// Complexity: O(V + E·α(V)).
func IsSpanningForest[L comparable](g, f *core.Graph[L]) bool {
	if g == nil || f == nil {
		return g == f
	}
	if f.VertexCount() != g.VertexCount() {
		return false
	}

	vertices := f.Vertices()
	index := make(map[L]int, len(vertices))
	for i, v := range vertices {
		if !g.HasVertex(v) {
			return false
		}
		index[v] = i
	}

	ds := unionfind.New(len(vertices))
	for _, e := range f.Edges() {
		if w, ok := g.EdgeWeight(e.From, e.To); !ok || w != e.Weight {
			return false
		}
		if !ds.Union(index[e.From], index[e.To]) {
			return false // self-edge or cycle
		}
	}

	return f.EdgeCount() == g.VertexCount()-Components(g)
}
