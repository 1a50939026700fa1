// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - CloneEmpty and Clone preserve Vertices() order of the source.
// AI-HINT (file):
//   - Clones share no mutable state with the source; labels are copied by value.
//   - Clear() keeps nothing; it is equivalent to replacing g with NewGraph().

package core

// CloneEmpty returns a new graph with the same vertex set as g and no edges.
//
// Complexity:
//   - Time O(V), Space O(V).
func (g *Graph[L]) CloneEmpty() *Graph[L] {
	clone := &Graph[L]{
		handles: make(map[L]int, len(g.live)),
		slots:   make([]vertex[L], 0, len(g.live)),
		live:    make([]int, 0, len(g.live)),
		edges:   make(map[pairKey]edgeRec),
	}
	for _, h := range g.live {
		clone.AddVertex(g.slots[h].label)
	}

	return clone
}

// Clone returns a deep, independent copy of g: vertices, edges and weights.
//
// Implementation:
//   - Handles are copied verbatim, so edge records and half-edge positions
//     stay valid in the copy; only the slices and maps are duplicated.
//
// Complexity:
//   - Time O(V + E + F) where F is the number of recycled slots, Space likewise.
func (g *Graph[L]) Clone() *Graph[L] {
	clone := &Graph[L]{
		handles:   make(map[L]int, len(g.handles)),
		slots:     make([]vertex[L], len(g.slots)),
		free:      append([]int(nil), g.free...),
		live:      append([]int(nil), g.live...),
		edges:     make(map[pairKey]edgeRec, len(g.edges)),
		edgeCount: g.edgeCount,
	}
	for label, h := range g.handles {
		clone.handles[label] = h
	}
	for h, rec := range g.slots {
		clone.slots[h] = vertex[L]{
			label: rec.label,
			at:    rec.at,
			adj:   append([]halfEdge(nil), rec.adj...),
		}
	}
	for k, rec := range g.edges {
		clone.edges[k] = rec
	}

	return clone
}

// Clear removes every vertex and edge from g.
//
// Complexity:
//   - Time O(1) (the old storage is released to the garbage collector).
func (g *Graph[L]) Clear() {
	*g = *NewGraph[L]()
}
