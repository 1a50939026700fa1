// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/katalvlaran/wugraph/core"
	"github.com/katalvlaran/wugraph/graphfile"
	"github.com/katalvlaran/wugraph/prim_kruskal"
)

const (
	algoKruskal = "kruskal"
	algoPrim    = "prim"
)

type solveCommand struct {
	Input     string `short:"i" default:"-" placeholder:"PATH" help:"YAML graph to read (- for stdin)"`
	Output    string `short:"o" default:"-" placeholder:"PATH" help:"Where to write the spanning forest (- for stdout)"`
	Algorithm string `short:"a" enum:"kruskal,prim" default:"kruskal" env:"MSTREE_ALGORITHM" help:"Solver to use (${enum})"`
}

func (c *solveCommand) Run(logger *slog.Logger) error {
	in, err := openInput(c.Input)
	if err != nil {
		return err
	}
	defer in.Close()

	// The output is opened only after a successful solve so a bad input
	// never truncates an existing file.
	var buf bytes.Buffer
	if err := solve(logger, in, &buf, c.Algorithm); err != nil {
		return err
	}
	return writeOutput(c.Output, &buf)
}

// solve reads one graph document from r and writes its minimum spanning
// forest to w as a document of the same format.
func solve(logger *slog.Logger, r io.Reader, w io.Writer, algorithm string) error {
	var fn func(*core.Graph[string]) *core.Graph[string]
	switch algorithm {
	case algoKruskal, "":
		fn = prim_kruskal.MinSpanTree[string]
	case algoPrim:
		fn = prim_kruskal.Prim[string]
	default:
		return fmt.Errorf("solve: unknown algorithm %q", algorithm)
	}

	g, err := graphfile.Decode(r)
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}
	logger.Debug("Graph loaded",
		slog.Int("vertices", g.VertexCount()),
		slog.Int("edges", g.EdgeCount()))

	t0 := time.Now()
	forest := fn(g)
	components := prim_kruskal.Components(forest)
	logger.Info("Spanning forest computed",
		slog.String("algorithm", algorithm),
		slog.Int("vertices", forest.VertexCount()),
		slog.Int("edges", forest.EdgeCount()),
		slog.Int64("total_weight", forest.TotalWeight()),
		slog.Int("components", components),
		slog.Duration("elapsed", time.Since(t0)))
	if components > 1 {
		logger.Warn("Input graph is disconnected; result is a forest", slog.Int("components", components))
	}

	if err := graphfile.Encode(w, forest); err != nil {
		return fmt.Errorf("solve: %w", err)
	}
	return nil
}
