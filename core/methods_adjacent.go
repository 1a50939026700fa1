// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Adjacency queries: Degree and Neighbors.
// Policy:
//   - An absent vertex and an isolated vertex look the same to callers
//     (degree 0, zero Neighbors value).
//   - Neighbors never aliases internal slices.

package core

// Degree returns the number of edges incident on v; a self-edge counts once.
// Returns 0 if v is absent.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph[L]) Degree(v L) int {
	h, ok := g.handles[v]
	if !ok {
		return 0
	}

	return len(g.slots[h].adj)
}

// Neighbors returns the vertices adjacent to v together with the weights of
// the connecting edges, as two newly allocated parallel slices. A self-edge
// lists v itself once.
//
// Behavior highlights:
//   - Absent v or degree 0 yields the zero Neighbors value (Len() == 0).
//   - The order follows the internal adjacency list and is unspecified.
//
// Complexity:
//   - Time O(d), Space O(d) where d = Degree(v).
func (g *Graph[L]) Neighbors(v L) Neighbors[L] {
	h, ok := g.handles[v]
	if !ok || len(g.slots[h].adj) == 0 {
		return Neighbors[L]{}
	}

	adj := g.slots[h].adj
	out := Neighbors[L]{
		Vertices: make([]L, len(adj)),
		Weights:  make([]int64, len(adj)),
	}
	for i, he := range adj {
		out.Vertices[i] = g.slots[he.to].label
		out.Weights[i] = he.weight
	}

	return out
}
