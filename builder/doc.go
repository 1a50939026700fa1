// Package builder provides deterministic, functional-options constructors
// for core.Graph[string]: fixtures for tests, benchmarks and the
// `mstree generate` command.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(bopts, cons...):  new graph, options resolved once, constructors in order.
//     – Apply(g, bopts, cons...):    same, on an existing graph.
//   - Topologies (Constructor implementations):
//     – Path(n), Cycle(n), Complete(n), Star(n), RandomSparse(n, p).
//   - Vertex-label schemes (IDFn implementations):
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – SymbolIDFn:        single letters ("A","B",…).
//     – ExcelColumnIDFn:   Excel-style columns ("A","Z","AA",…).
//     – PrefixIDFn(p):     prefixed decimals ("v0","v1",…).
//   - Edge-weight distributions (WeightFn implementations):
//     – DefaultWeightFn:   constant weight DefaultEdgeWeight.
//     – ConstantWeightFn:  fixed user-provided value.
//     – UniformWeightFn:   uniform integers in [min,max].
//
// Guarantees:
//
//   - Same options, seed and constructor order ⇒ identical graphs.
//   - Fast-fail on meaningless option parameters via panics in option constructors.
//   - Constructors never panic; they return errors wrapping the package
//     sentinels (ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
//     ErrConstructFailed), so callers branch with errors.Is.
package builder
