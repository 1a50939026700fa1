// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/wugraph/builder"
	"github.com/katalvlaran/wugraph/graphfile"
)

type generateCommand struct {
	Kind      string  `enum:"path,cycle,complete,star,random" default:"random" help:"Topology to generate (${enum})"`
	N         int     `name:"n" default:"10" help:"Number of vertices"`
	P         float64 `name:"p" default:"0.3" help:"Edge probability for --kind=random"`
	Seed      int64   `default:"1" env:"MSTREE_SEED" help:"Random seed for edges and weights"`
	MinWeight int64   `default:"1" help:"Smallest edge weight"`
	MaxWeight int64   `default:"100" help:"Largest edge weight"`
	Output    string  `short:"o" default:"-" placeholder:"PATH" help:"Where to write the graph (- for stdout)"`
}

func (c *generateCommand) Run(logger *slog.Logger) error {
	var buf bytes.Buffer
	if err := c.generate(logger, &buf); err != nil {
		return err
	}
	return writeOutput(c.Output, &buf)
}

func (c *generateCommand) constructor() (builder.Constructor, error) {
	switch c.Kind {
	case "path":
		return builder.Path(c.N), nil
	case "cycle":
		return builder.Cycle(c.N), nil
	case "complete":
		return builder.Complete(c.N), nil
	case "star":
		return builder.Star(c.N), nil
	case "random":
		return builder.RandomSparse(c.N, c.P), nil
	default:
		return nil, fmt.Errorf("generate: unknown kind %q", c.Kind)
	}
}

func (c *generateCommand) generate(logger *slog.Logger, w io.Writer) error {
	if c.MaxWeight < c.MinWeight {
		return fmt.Errorf("generate: max weight %d < min weight %d", c.MaxWeight, c.MinWeight)
	}
	cons, err := c.constructor()
	if err != nil {
		return err
	}

	g, err := builder.BuildGraph([]builder.BuilderOption{
		builder.WithSeed(c.Seed),
		builder.WithPrefixIDs("v"),
		builder.WithUniformWeights(c.MinWeight, c.MaxWeight),
	}, cons)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	logger.Info("Graph generated",
		slog.String("kind", c.Kind),
		slog.Int("vertices", g.VertexCount()),
		slog.Int("edges", g.EdgeCount()),
		slog.Int64("seed", c.Seed))

	if err := graphfile.Encode(w, g); err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	return nil
}
