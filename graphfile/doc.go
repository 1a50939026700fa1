// SPDX-License-Identifier: MIT

// Package graphfile reads and writes core.Graph[string] values as YAML
// documents:
//
//	vertices: [A, B, C, D]
//	edges:
//	  - {from: A, to: B, weight: 1}
//	  - {from: B, to: C, weight: 2}
//
// Decoding follows core.Graph semantics: a vertex named by an edge but not
// listed under `vertices` is added, and a repeated pair keeps the last
// weight. Encoding is deterministic: vertices are sorted, and each edge is
// written once with from <= to, sorted by (from, to).
package graphfile
