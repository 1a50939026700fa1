// SPDX-License-Identifier: MIT
//
// kruskal.go - Kruskal's minimum spanning forest over core.Graph.

package prim_kruskal

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/wugraph/core"
	"github.com/katalvlaran/wugraph/unionfind"
)

// indexedEdge is one logical undirected edge between dense vertex indices lo < hi.
type indexedEdge struct {
	lo, hi int
	weight int64
}

// compareEdges orders by weight, then by endpoint indices; a total order, so
// equal-weight ties always break the same way for the same Vertices() order.
func compareEdges(a, b indexedEdge) int {
	if c := cmp.Compare(a.weight, b.weight); c != 0 {
		return c
	}
	if c := cmp.Compare(a.lo, b.lo); c != 0 {
		return c
	}

	return cmp.Compare(a.hi, b.hi)
}

// MinSpanTree computes a minimum spanning tree of g with Kruskal's algorithm.
// The result is a new graph with exactly g's vertex set and a subset of its
// edges; g itself is only read. For a disconnected g the result is a minimum
// spanning forest, one tree per connected component. An empty or nil g yields
// an empty graph.
//
// Steps:
//  1. Number the vertices 0..n-1 in Vertices() order; the output starts as g.CloneEmpty().
//  2. Collect each undirected edge once: from vertex i keep neighbor j only if i < j.
//     Self-edges (i == j) drop out here; they are never part of a spanning tree.
//  3. Sort the edges by (weight, lo, hi).
//  4. Create unionfind.New(n).
//  5. Scan the sorted edges: if Find(lo) != Find(hi) the edge crosses a cut between two
//     components, so it is the lightest such edge and is accepted (cut property); its
//     endpoints are united. Otherwise it would close a cycle and is skipped.
//  6. Stop when every edge is scanned, or earlier once a single component remains.
//
// Precondition: g must not be mutated by another caller while MinSpanTree runs.
//
// Complexity: O(V + E log E) time, O(V + E) memory.
func MinSpanTree[L comparable](g *core.Graph[L]) *core.Graph[L] {
	if g == nil {
		return core.NewGraph[L]()
	}

	// 1. Dense indices for the union-find universe; output has the same vertex set.
	vertices := g.Vertices()
	mst := g.CloneEmpty()
	n := len(vertices)
	if n < 2 {
		return mst // nothing to connect
	}
	index := make(map[L]int, n)
	for i, v := range vertices {
		index[v] = i
	}

	// 2. One record per undirected edge, self-edges excluded.
	edges := make([]indexedEdge, 0, g.EdgeCount())
	for i, v := range vertices {
		nb := g.Neighbors(v)
		for k, u := range nb.Vertices {
			if j := index[u]; i < j {
				edges = append(edges, indexedEdge{lo: i, hi: j, weight: nb.Weights[k]})
			}
		}
	}

	// 3. Ascending weight with a deterministic tie-break.
	slices.SortStableFunc(edges, compareEdges)

	// 4. Every vertex starts in its own component.
	ds := unionfind.New(n)

	// 5. Greedy acceptance.
	for _, e := range edges {
		ru, rv := ds.Find(e.lo), ds.Find(e.hi)
		if ru == rv {
			continue // would create a cycle
		}
		mst.AddEdge(vertices[e.lo], vertices[e.hi], e.weight)
		ds.Union(ru, rv)

		// 6. A single component cannot accept further edges.
		if ds.Count() == 1 {
			break
		}
	}

	return mst
}
