// SPDX-License-Identifier: MIT

// Package prim_kruskal computes minimum spanning trees (or, for disconnected
// inputs, minimum spanning forests) of an undirected, weighted *core.Graph.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E such that
//     T connects all vertices in V and the sum of weights of edges in T is minimized.
//     When G has several connected components, the analogue is a minimum spanning forest:
//     one MST per component, |V| − c edges in total for c components.
//
//   - Why it works (Kruskal): every accepted edge is a lightest edge crossing the cut between
//     the two components it joins (cut property), and every rejected edge is a heaviest edge
//     on the cycle it would close (cycle property).
//
// Algorithms Provided
//
//   - MinSpanTree[L](g *core.Graph[L]) *core.Graph[L]
//
//   - Strategy: enumerate each undirected edge once, sort by weight, then accept edges whose
//     endpoints are still in different unionfind.DisjointSets components.
//
//   - Complexity: O(E log E + E·α(V)) time, O(V + E) space.
//
//   - Determinism: ties are broken by the endpoints' positions in g.Vertices(), so the same
//     graph always yields the same tree.
//
//   - Prim[L](g *core.Graph[L]) *core.Graph[L]
//
//   - Strategy: grow a tree from every not-yet-spanned vertex with a min-heap of frontier edges.
//
//   - Complexity: O(E log E) time, O(V + E) space.
//
//   - Use-Case: independent cross-check for MinSpanTree; both return forests of equal total weight.
//
// Helpers
//
//   - Components(g) int                — number of connected components (via union-find).
//   - IsSpanningForest(g, f) bool      — structural check that f spans g without cycles.
//
// Error Conditions
//
//	None. Both solvers are total functions: an empty graph yields an empty graph, a graph
//	without edges yields its vertex set, and a disconnected graph yields a forest. Self-edges
//	are ignored. The input graph is never modified and shares nothing with the result.
//
// Concurrency
//
//	core.Graph is not synchronized. The input must not be mutated by another goroutine while
//	MinSpanTree or Prim runs; this is a documented precondition, not an enforced lock.
package prim_kruskal
