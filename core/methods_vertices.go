// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle & queries: AddVertex/RemoveVertex/HasVertex/Vertices.
// Determinism:
//   - Vertices() follows the dense live-handle list: insertion order until the
//     first RemoveVertex, which moves the last live vertex into the hole.
//     Callers must not rely on any particular order.
// AI-HINT (file):
//   - Absent labels are silent no-ops; there are no errors in this file.
//   - Handles are recycled; nothing outside this package ever sees them.

package core

// AddVertex inserts an isolated vertex labelled v (idempotent).
//
// Implementation:
//   - Stage 1: Return immediately if v is already present.
//   - Stage 2: Take a handle from the free list, or grow the arena.
//   - Stage 3: Register the handle in the label map and the live list.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph[L]) AddVertex(v L) {
	if _, ok := g.handles[v]; ok {
		return // no-op for an existing vertex
	}

	var h int
	if n := len(g.free); n > 0 {
		// Reuse the most recently released slot; it was reset by RemoveVertex.
		h = g.free[n-1]
		g.free = g.free[:n-1]
	} else {
		h = len(g.slots)
		g.slots = append(g.slots, vertex[L]{})
	}

	g.slots[h].label = v
	g.slots[h].at = len(g.live)
	g.live = append(g.live, h)
	g.handles[v] = h
}

// RemoveVertex deletes v and every edge incident on it, its self-edge included.
// Absent v is a no-op.
//
// Implementation:
//   - Stage 1: Resolve the handle; bail out if missing.
//   - Stage 2: Repeatedly unlink the last incident half-edge; each step is the
//     O(1) RemoveEdge path, so the loop costs O(d).
//   - Stage 3: Swap-remove the handle from the live list, release the slot.
//
// Complexity:
//   - Time O(d) where d = degree(v), Space O(1).
func (g *Graph[L]) RemoveVertex(v L) {
	h, ok := g.handles[v]
	if !ok {
		return
	}

	// Drain incident edges; removeEdge shrinks slots[h].adj by one each time.
	for len(g.slots[h].adj) > 0 {
		last := g.slots[h].adj[len(g.slots[h].adj)-1]
		g.removeEdge(keyOf(h, last.to))
	}

	// Swap-remove from the live list and patch the moved vertex's back-index.
	at := g.slots[h].at
	tail := len(g.live) - 1
	if at != tail {
		moved := g.live[tail]
		g.live[at] = moved
		g.slots[moved].at = at
	}
	g.live = g.live[:tail]

	delete(g.handles, v)
	// Reset the slot but keep the adjacency capacity for the next tenant.
	g.slots[h] = vertex[L]{adj: g.slots[h].adj[:0]}
	g.free = append(g.free, h)
}

// HasVertex reports whether v is a vertex of the graph.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph[L]) HasVertex(v L) bool {
	_, ok := g.handles[v]

	return ok
}

// Vertices returns the labels of all vertices, in no guaranteed order.
// The slice is newly allocated and has length VertexCount(); it never
// exposes internal records.
//
// Complexity:
//   - Time O(V), Space O(V).
func (g *Graph[L]) Vertices() []L {
	out := make([]L, len(g.live))
	for i, h := range g.live {
		out[i] = g.slots[h].label
	}

	return out
}
