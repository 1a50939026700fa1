// SPDX-License-Identifier: MIT
//
// File: disjoint_sets.go
// Role: DisjointSets over a fixed universe 0..n-1: Find, Union, Connected, SizeOf.
// Policy:
//   - Find uses path halving; Union attaches the smaller set under the larger root.
//   - Contract violations (negative size, index out of range) panic with a
//     wrapped sentinel; nothing here returns an error.

package unionfind

import "fmt"

// DisjointSets partitions the elements 0..n-1 into disjoint sets.
// The universe is fixed at construction.
type DisjointSets struct {
	items []item
	count int // number of disjoint sets remaining
}

type item struct {
	parent int // equals its own index for a root
	size   int // only meaningful for a root: number of elements in its set
}

// New returns n singleton sets {0}, {1}, ..., {n-1}.
// It panics with an error wrapping ErrNegativeSize if n < 0.
func New(n int) *DisjointSets {
	if n < 0 {
		panic(fmt.Errorf("New(%d): %w", n, ErrNegativeSize))
	}
	d := &DisjointSets{
		items: make([]item, n),
		count: n,
	}
	for i := range d.items {
		d.items[i] = item{parent: i, size: 1}
	}

	return d
}

// Len returns the size of the universe.
func (d *DisjointSets) Len() int {
	return len(d.items)
}

// Count returns the number of disjoint sets.
func (d *DisjointSets) Count() int {
	return d.count
}

// Find returns the representative of the set containing i.
// The representative is stable until the next Union touching that set.
func (d *DisjointSets) Find(i int) int {
	d.check(i)
	for {
		parent := d.items[i].parent
		if parent == i {
			return i
		}
		// Path halving: point i at its grandparent and jump there.
		grand := d.items[parent].parent
		d.items[i].parent = grand
		i = grand
	}
}

// Union merges the sets containing i and j.
// It returns false, and changes nothing, if they were already joined.
func (d *DisjointSets) Union(i, j int) bool {
	ri, rj := d.Find(i), d.Find(j)
	if ri == rj {
		return false
	}
	// Attach the smaller tree under the larger root.
	if d.items[ri].size < d.items[rj].size {
		ri, rj = rj, ri
	}
	d.items[rj].parent = ri
	d.items[ri].size += d.items[rj].size
	d.count--

	return true
}

// Connected reports whether i and j belong to the same set.
func (d *DisjointSets) Connected(i, j int) bool {
	return d.Find(i) == d.Find(j)
}

// SizeOf returns the number of elements in the set containing i.
func (d *DisjointSets) SizeOf(i int) int {
	return d.items[d.Find(i)].size
}

func (d *DisjointSets) check(i int) {
	if i < 0 || i >= len(d.items) {
		panic(fmt.Errorf("index %d not in [0,%d): %w", i, len(d.items), ErrIndexOutOfRange))
	}
}
