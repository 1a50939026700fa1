// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin read-only facade: cardinalities and aggregate weight.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents its complexity.

package core

// VertexCount returns the number of vertices currently in the graph.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph[L]) VertexCount() int {
	return len(g.handles)
}

// EdgeCount returns the number of distinct edges, counting each self-edge once.
//
// Implementation:
//   - Returns the incrementally maintained counter; it is never recomputed
//     from degrees (a self-edge contributes 1 to one degree, a normal edge 1
//     to two degrees, so summing degrees would not give the edge count anyway).
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph[L]) EdgeCount() int {
	return g.edgeCount
}

// TotalWeight returns the sum of the weights of all distinct edges,
// self-edges included.
//
// Complexity:
//   - Time O(E), Space O(1).
func (g *Graph[L]) TotalWeight() int64 {
	var total int64
	for _, rec := range g.edges {
		total += rec.weight
	}

	return total
}
