// SPDX-License-Identifier: MIT

// Command mstree computes minimum spanning forests of graphs stored as YAML
// documents, and generates such documents for testing.
//
//	mstree generate --kind=random --n=50 --p=0.1 --seed=7 > g.yaml
//	mstree solve -i g.yaml --algorithm=prim
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
)

type CLI struct {
	LogLevel  string `name:"log-level" env:"MSTREE_LOG_LEVEL" default:"info" help:"Log level (debug, info, warn, error)"`
	LogFormat string `name:"log-format" env:"MSTREE_LOG_FORMAT" enum:"text,json" default:"text" help:"Log output format (${enum})"`

	Solve    solveCommand    `cmd:"" help:"Compute a minimum spanning forest of a YAML graph"`
	Generate generateCommand `cmd:"" help:"Write a generated YAML graph"`
}

func (cli CLI) AfterApply(kongCtx *kong.Context) error {
	logger, err := newLogger(os.Stderr, cli.LogLevel, cli.LogFormat)
	if err != nil {
		return fmt.Errorf("command line options: %w", err)
	}
	kongCtx.Bind(logger)
	return nil
}

func main() {
	var params CLI
	ctx := kong.Parse(&params,
		kong.Name("mstree"),
		kong.Description("Minimum spanning trees over weighted undirected graphs."),
		kong.UsageOnError(),
	)
	if err := ctx.Run(); err != nil {
		slog.Error("Command failed", slog.String("command", ctx.Command()), slog.Any("error", err))
		os.Exit(1)
	}
}
