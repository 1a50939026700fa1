// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Weight/EdgeWeight/Edges,
//       plus the half-edge bookkeeping shared with RemoveVertex.
// Determinism:
//   - The pair key is canonical (lo handle first), so (u,v) and (v,u) always
//     address the same record.
// AI-HINT (file):
//   - AddEdge on an existing edge updates the weight in place; EdgeCount is unchanged.
//   - Weight() returns 0 for a missing edge; use EdgeWeight() when 0 is a legal weight.

package core

// AddEdge joins u and v with an edge of the given weight.
//
// Behavior highlights:
//   - No-op if either endpoint is absent.
//   - If the edge exists, its weight is updated on the record and on both
//     half-edges; EdgeCount does not change.
//   - Otherwise a new edge is linked: two half-edges for u != v, one for a
//     self-edge, and EdgeCount grows by one.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph[L]) AddEdge(u, v L, weight int64) {
	hu, ok := g.handles[u]
	if !ok {
		return
	}
	hv, ok := g.handles[v]
	if !ok {
		return
	}

	k := keyOf(hu, hv)
	if rec, exists := g.edges[k]; exists {
		// Update in place and keep both half-edges in weight-sync.
		rec.weight = weight
		g.edges[k] = rec
		g.slots[k.lo].adj[rec.pos[0]].weight = weight
		g.slots[k.hi].adj[rec.pos[1]].weight = weight

		return
	}

	rec := edgeRec{weight: weight}
	rec.pos[0] = len(g.slots[k.lo].adj)
	g.slots[k.lo].adj = append(g.slots[k.lo].adj, halfEdge{to: k.hi, weight: weight})
	if k.lo == k.hi {
		// Self-edge: a single half-edge, counted once toward degree.
		rec.pos[1] = rec.pos[0]
	} else {
		rec.pos[1] = len(g.slots[k.hi].adj)
		g.slots[k.hi].adj = append(g.slots[k.hi].adj, halfEdge{to: k.lo, weight: weight})
	}

	g.edges[k] = rec
	g.edgeCount++
}

// RemoveEdge deletes the edge between u and v.
// No-op if either endpoint is absent or the edge does not exist.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph[L]) RemoveEdge(u, v L) {
	hu, ok := g.handles[u]
	if !ok {
		return
	}
	hv, ok := g.handles[v]
	if !ok {
		return
	}

	g.removeEdge(keyOf(hu, hv))
}

// HasEdge reports whether u and v are joined by an edge.
// Returns false when either endpoint is absent.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph[L]) HasEdge(u, v L) bool {
	_, ok := g.EdgeWeight(u, v)

	return ok
}

// EdgeWeight returns the weight of edge (u,v) and whether that edge exists.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph[L]) EdgeWeight(u, v L) (int64, bool) {
	hu, ok := g.handles[u]
	if !ok {
		return 0, false
	}
	hv, ok := g.handles[v]
	if !ok {
		return 0, false
	}

	rec, ok := g.edges[keyOf(hu, hv)]
	if !ok {
		return 0, false
	}

	return rec.weight, true
}

// Weight returns the weight of edge (u,v), or 0 if the edge or either
// endpoint is missing.
//
// Notes:
//   - 0 is a sentinel indistinguishable from a genuine zero-weight edge.
//     Check HasEdge first, or call EdgeWeight instead.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph[L]) Weight(u, v L) int64 {
	w, _ := g.EdgeWeight(u, v)

	return w
}

// Edges returns every edge exactly once, self-edges included.
// The order is unspecified; the slice is newly allocated.
//
// Implementation:
//   - Walk the live vertices and emit a half-edge only when its neighbor
//     handle is not smaller than the owner's, which picks one of the two
//     mirrored half-edges and keeps the lone self-edge half.
//
// Complexity:
//   - Time O(V + E), Space O(E).
func (g *Graph[L]) Edges() []Edge[L] {
	out := make([]Edge[L], 0, g.edgeCount)
	for _, h := range g.live {
		from := g.slots[h].label
		for _, he := range g.slots[h].adj {
			if he.to < h {
				continue // emitted from the other endpoint
			}
			out = append(out, Edge[L]{From: from, To: g.slots[he.to].label, Weight: he.weight})
		}
	}

	return out
}

// removeEdge unlinks the edge stored under k, if any, and drops its record.
// Complexity: O(1).
func (g *Graph[L]) removeEdge(k pairKey) {
	rec, ok := g.edges[k]
	if !ok {
		return
	}

	g.unlinkHalf(k.lo, rec.pos[0])
	if k.lo != k.hi {
		// Unlinking on lo only reshuffles lo's list, so pos[1] is still valid.
		g.unlinkHalf(k.hi, rec.pos[1])
	}

	delete(g.edges, k)
	g.edgeCount--
}

// unlinkHalf swap-removes slots[owner].adj[i] and patches the record of the
// half-edge that was moved into position i.
// Complexity: O(1).
func (g *Graph[L]) unlinkHalf(owner, i int) {
	adj := g.slots[owner].adj
	tail := len(adj) - 1
	if i != tail {
		moved := adj[tail]
		adj[i] = moved

		mk := keyOf(owner, moved.to)
		mrec := g.edges[mk]
		switch {
		case mk.lo == mk.hi:
			mrec.pos[0], mrec.pos[1] = i, i
		case mk.lo == owner:
			mrec.pos[0] = i
		default:
			mrec.pos[1] = i
		}
		g.edges[mk] = mrec
	}

	g.slots[owner].adj = adj[:tail]
}
