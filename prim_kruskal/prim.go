// SPDX-License-Identifier: MIT
//
// prim.go - Prim's algorithm, one tree per connected component, over a min-heap of frontier edges.

package prim_kruskal

import (
	"container/heap"

	"github.com/soniakeys/bits"

	"github.com/katalvlaran/wugraph/core"
)

// Prim computes a minimum spanning forest of g with Prim's algorithm and
// returns it as a new graph with g's vertex set. It is an independent
// cross-check for MinSpanTree: both always produce forests of equal total
// weight, though tie-breaking may pick different edges.
//
// Steps:
//  1. Number the vertices 0..n-1 in Vertices() order; the output starts as g.CloneEmpty().
//  2. For each root in index order that is not yet spanned:
//     a. Mark the root as in-tree and push its frontier edges onto the heap.
//     b. Pop the lightest frontier edge (u→v); skip it if v is already in-tree.
//     c. Otherwise add (u,v) to the forest, mark v, and push v's frontier edges.
//  3. Each outer iteration spans exactly one connected component.
//
// Precondition: g must not be mutated by another caller while Prim runs.
//
// Complexity: O(V + E log E) time, O(V + E) memory.
func Prim[L comparable](g *core.Graph[L]) *core.Graph[L] {
	if g == nil {
		return core.NewGraph[L]()
	}

	// 1. Dense indices and the empty forest.
	vertices := g.Vertices()
	forest := g.CloneEmpty()
	n := len(vertices)
	if n < 2 {
		return forest
	}
	index := make(map[L]int, n)
	for i, v := range vertices {
		index[v] = i
	}

	inTree := bits.New(n) // in-tree flags by dense index
	pq := &edgePQ{}

	// pushFrontier queues every edge from i to a vertex outside the tree.
	pushFrontier := func(i int) {
		nb := g.Neighbors(vertices[i])
		for k, u := range nb.Vertices {
			if j := index[u]; inTree.Bit(j) == 0 {
				heap.Push(pq, frontierEdge{from: i, to: j, weight: nb.Weights[k]})
			}
		}
	}

	// 2. One tree per unspanned root.
	for root := 0; root < n; root++ {
		if inTree.Bit(root) == 1 {
			continue
		}
		inTree.SetBit(root, 1)
		pushFrontier(root)

		for pq.Len() > 0 {
			e := heap.Pop(pq).(frontierEdge)
			if inTree.Bit(e.to) == 1 {
				continue // both ends already spanned
			}
			inTree.SetBit(e.to, 1)
			forest.AddEdge(vertices[e.from], vertices[e.to], e.weight)
			pushFrontier(e.to)
		}
	}

	return forest
}

// frontierEdge is a candidate edge from an in-tree vertex to an outside vertex.
type frontierEdge struct {
	from, to int
	weight   int64
}

// edgePQ implements heap.Interface for a min‐heap of frontierEdge ordered by
// weight, then by endpoint indices for determinism.
type edgePQ []frontierEdge

// Len returns the number of edges in the priority queue.
func (pq edgePQ) Len() int { return len(pq) }

// Less reports whether element i should sort before j.
func (pq edgePQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	if a.to != b.to {
		return a.to < b.to
	}

	return a.from < b.from
}

// Swap swaps elements at indices i and j.
func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new frontierEdge; called by heap.Push.
func (pq *edgePQ) Push(x any) { *pq = append(*pq, x.(frontierEdge)) }

// Pop removes and returns the last element; called by heap.Pop.
func (pq *edgePQ) Pop() any {
	old := *pq
	n := len(old)
	e := old[n-1]
	*pq = old[:n-1]

	return e
}
