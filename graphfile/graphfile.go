// SPDX-License-Identifier: MIT
//
// File: graphfile.go
// Role: YAML document types and the Decode/Encode/Load entry points.
// Determinism:
//   - Encode sorts vertices, orients every edge from <= to and sorts by (from, to).
// Policy:
//   - Decode rejects unknown fields and edges without a weight.
//   - Errors wrap the package sentinels with %w.

package graphfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wugraph/core"
)

// Document is the serializable YAML form of a graph.
type Document struct {
	Vertices []string  `yaml:"vertices"`
	Edges    []EdgeDoc `yaml:"edges"`
}

// EdgeDoc is one undirected edge. Weight is a pointer so a missing field can
// be told apart from an explicit zero.
type EdgeDoc struct {
	From   string `yaml:"from"`
	To     string `yaml:"to"`
	Weight *int64 `yaml:"weight"`
}

// Decode parses one YAML document from r into a new graph. An empty input
// yields an empty graph. Unknown fields are rejected.
func Decode(r io.Reader) (*core.Graph[string], error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode: %w: %w", ErrSyntax, err)
	}

	return doc.Graph()
}

// Load opens path and decodes it with Decode.
func Load(path string) (*core.Graph[string], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	defer f.Close()

	g, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	return g, nil
}

// Graph validates the document and builds the graph it describes.
func (d Document) Graph() (*core.Graph[string], error) {
	g := core.NewGraph[string]()
	for i, v := range d.Vertices {
		if v == "" {
			return nil, fmt.Errorf("vertices[%d]: %w", i, ErrEmptyLabel)
		}
		g.AddVertex(v)
	}
	for i, e := range d.Edges {
		if e.From == "" || e.To == "" {
			return nil, fmt.Errorf("edges[%d]: %w", i, ErrEmptyLabel)
		}
		if e.Weight == nil {
			return nil, fmt.Errorf("edges[%d] %s-%s: %w", i, e.From, e.To, ErrMissingWeight)
		}
		g.AddVertex(e.From)
		g.AddVertex(e.To)
		g.AddEdge(e.From, e.To, *e.Weight)
	}

	return g, nil
}

// FromGraph builds the canonical document for g.
func FromGraph(g *core.Graph[string]) Document {
	doc := Document{Vertices: []string{}, Edges: []EdgeDoc{}}
	if g == nil {
		return doc
	}

	doc.Vertices = g.Vertices()
	sort.Strings(doc.Vertices)

	for _, e := range g.Edges() {
		from, to := e.From, e.To
		if to < from {
			from, to = to, from
		}
		w := e.Weight
		doc.Edges = append(doc.Edges, EdgeDoc{From: from, To: to, Weight: &w})
	}
	sort.Slice(doc.Edges, func(i, j int) bool {
		if doc.Edges[i].From != doc.Edges[j].From {
			return doc.Edges[i].From < doc.Edges[j].From
		}
		return doc.Edges[i].To < doc.Edges[j].To
	})

	return doc
}

// Encode writes g to w as a YAML document.
func Encode(w io.Writer, g *core.Graph[string]) error {
	doc := FromGraph(g)
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	return nil
}
