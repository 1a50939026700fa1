// Package core provides Graph, an in-memory weighted, undirected,
// vertex-labeled graph with constant-time vertex and edge operations.
//
// The Graph G = (V,E) has these properties:
//
//   - Vertices are arbitrary comparable labels supplied by the caller
//     (strings, ints, small structs, pointers …). The graph never creates or
//     destroys labels; it only binds each one to an internal integer handle.
//   - Edges are undirected and carry an int64 weight.
//   - At most one edge joins any unordered pair; adding it again updates the weight.
//   - Self-edges are allowed and count once toward the degree of their vertex.
//
// Representation (arena + index):
//
//	handles  map[L]int               label → handle
//	slots    []vertex{label, adj}    records indexed by handle
//	edges    map[{lo,hi}]edgeRec     canonical handle pair → weight + half-edge positions
//
// A non-self edge {a,b} lives in three places that are always kept in sync:
// its edgeRec, a half-edge a→b in slots[a].adj and a half-edge b→a in
// slots[b].adj. The edgeRec remembers where both half-edges sit, so
// removal is a pair of O(1) swap-removes.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(v L)                        // O(1) amortized, idempotent
//	RemoveVertex(v L)                     // O(deg(v)), drops incident edges
//	HasVertex(v L) bool                   // O(1)
//	Vertices() []L                        // O(V), unspecified order
//
//	// Edge lifecycle
//	AddEdge(u, v L, weight int64)         // O(1), insert or update weight
//	RemoveEdge(u, v L)                    // O(1)
//	HasEdge(u, v L) bool                  // O(1)
//	EdgeWeight(u, v L) (int64, bool)      // O(1), explicit "no such edge"
//	Weight(u, v L) int64                  // O(1), 0 for a missing edge
//	Edges() []Edge[L]                     // O(V+E), each edge once
//
//	// Adjacency & counts
//	Degree(v L) int                       // O(1)
//	Neighbors(v L) Neighbors[L]           // O(deg(v)), fresh slices
//	VertexCount() int                     // O(1)
//	EdgeCount() int                       // O(1)
//	TotalWeight() int64                   // O(E)
//
//	// Cloning
//	CloneEmpty() *Graph[L]                // O(V), vertices only
//	Clone() *Graph[L]                     // O(V+E), deep copy
//	Clear()                               // O(1)
//
// Error model:
//
// Nothing in this package returns an error. Operations on an absent vertex or
// edge are silent no-ops, and queries return a documented sentinel: false,
// degree 0, weight 0 or an empty Neighbors value.
//
// Concurrency:
//
// Graph is not safe for concurrent use. A goroutine that owns a Graph must
// serialize all access to it, and must not mutate it while another reader
// (for example an MST computation) is walking it.
//
// Quick example:
//
//	g := core.NewGraph[string]()
//	g.AddVertex("A")
//	g.AddVertex("B")
//	g.AddEdge("A", "B", 7)
//	w, ok := g.EdgeWeight("B", "A") // 7, true
package core
