// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, vertex and half-edge records, the canonical pair key and the
//       value types handed out to callers (Edge, Neighbors).
// Policy:
//   - Labels are opaque; the graph only maps them to dense integer handles.
//   - Internal records never escape: every exported result is freshly allocated.
//   - No locking. Callers owning a *Graph serialize access themselves.

package core

// Graph is a weighted, undirected, vertex-labeled graph that permits self-edges.
//
// Vertices are identified by caller-supplied labels of any comparable type L.
// On insertion each label is bound to an integer handle indexing an arena of
// vertex records; edges are keyed by the unordered pair of handles, so edge
// lookup, insertion, update and removal are all O(1) and independent of the
// order in which the endpoints are given.
//
// Invariants:
//   - handles[label] == h  ⇔  slots[h] is live and slots[h].label == label.
//   - For every non-self edge {a,b} there is exactly one half-edge a→b in
//     slots[a].adj and one half-edge b→a in slots[b].adj, both carrying the
//     edge weight; a self-edge {a,a} is a single half-edge in slots[a].adj.
//   - edges[keyOf(a,b)].pos records where those half-edges live.
//   - edgeCount == number of distinct unordered pairs with an edge.
//
// The zero value is not usable; construct with NewGraph.
type Graph[L comparable] struct {
	handles map[L]int           // label → handle
	slots   []vertex[L]         // arena of vertex records, indexed by handle
	free    []int               // handles released by RemoveVertex, reused LIFO
	live    []int               // dense list of live handles (for O(V) Vertices)
	edges   map[pairKey]edgeRec // canonical pair → weight + half-edge positions

	edgeCount int // maintained incrementally by AddEdge/RemoveEdge
}

// vertex is the per-handle arena record.
type vertex[L comparable] struct {
	label L          // caller-supplied label
	at    int        // index of this handle inside Graph.live
	adj   []halfEdge // incident half-edges; a self-edge appears once
}

// halfEdge is one endpoint's view of an edge.
type halfEdge struct {
	to     int   // neighbor handle (== owner for a self-edge)
	weight int64 // mirrored from edgeRec.weight
}

// pairKey is the canonical unordered handle pair: lo <= hi.
type pairKey struct {
	lo, hi int
}

// keyOf canonicalizes (a,b) so that keyOf(a,b) == keyOf(b,a).
func keyOf(a, b int) pairKey {
	if a > b {
		a, b = b, a
	}

	return pairKey{lo: a, hi: b}
}

// edgeRec is the single authoritative record of an undirected edge.
type edgeRec struct {
	weight int64
	// pos[0] indexes slots[key.lo].adj, pos[1] indexes slots[key.hi].adj.
	// For a self-edge both entries are equal.
	pos [2]int
}

// Edge is a read-only description of one undirected edge.
// For an edge returned by Graph.Edges, From and To are in no particular
// orientation; a self-edge has From == To.
type Edge[L comparable] struct {
	From   L
	To     L
	Weight int64
}

// Neighbors holds the parallel neighbor/weight sequences returned by
// Graph.Neighbors. Vertices[i] is joined to the queried vertex by an edge of
// weight Weights[i]. The zero value means "no neighbors" and is returned both
// for absent vertices and for vertices of degree zero.
type Neighbors[L comparable] struct {
	Vertices []L
	Weights  []int64
}

// Len reports the number of neighbors (equal to the degree of the vertex).
func (n Neighbors[L]) Len() int { return len(n.Vertices) }

// NewGraph returns an empty graph.
// Complexity: O(1).
func NewGraph[L comparable]() *Graph[L] {
	return &Graph[L]{
		handles: make(map[L]int),
		edges:   make(map[pairKey]edgeRec),
	}
}
