// SPDX-License-Identifier: MIT

// Package wugraph is an in-memory weighted, undirected, vertex-labeled graph
// with constant-time vertex and edge operations, and minimum spanning trees
// computed over it.
//
// Packages:
//
//	core/         — Graph[L]: the graph ADT (arena + handle design, self-edges allowed)
//	unionfind/    — DisjointSets: union-find with path halving and union by size
//	prim_kruskal/ — MinSpanTree (Kruskal), Prim, Components, IsSpanningForest
//	builder/      — deterministic fixture graphs (Path, Cycle, Complete, Star, RandomSparse)
//	graphfile/    — YAML documents for core.Graph[string]
//	cmd/mstree/   — command-line driver: `solve` and `generate`
//
// Quick ASCII example:
//
//	    A──1──B
//	    │ ╲5  │
//	    4   ╲ 2
//	    │     ╲│
//	    D──3──C
//
// The minimum spanning tree keeps A-B, B-C and C-D (total weight 6).
//
//	go get github.com/katalvlaran/wugraph
package wugraph
