// Package unionfind provides DisjointSets, a union-find (merge-find) structure
// over a fixed universe of n elements identified by the indices 0..n-1.
//
// Find uses path halving and Union merges by size, so any sequence of m
// operations costs O(m·α(n)), where α is the inverse Ackermann function.
//
// Indices outside 0..n-1 and a negative universe size are programmer errors:
// they panic with an error wrapping ErrIndexOutOfRange or ErrNegativeSize.
//
//	ds := unionfind.New(4)
//	ds.Union(0, 1)
//	ds.Union(2, 3)
//	ds.Connected(1, 0) // true
//	ds.Count()         // 2
package unionfind
