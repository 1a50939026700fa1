// SPDX-License-Identifier: MIT
// Package: wugraph/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - All public factories are declared in impl_*.go, one topology per file.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same options/seed and constructor order ⇒ identical graphs.
//   - Safety: constructors never panic; they return wrapped sentinel errors.
//
// AI-Hints (practical):
//   - Compose several constructors in one BuildGraph call to lay out multiple components;
//     pair them with different WithIDScheme prefixes via separate calls if labels must not collide.
//   - Use WithSeed(...) to freeze stochastic paths (RandomSparse) and random weights.

package builder

import (
	"fmt"

	"github.com/katalvlaran/wugraph/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Add every vertex they reference before adding edges (core.AddEdge ignores
//     unknown endpoints).
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph[string], cfg builderConfig) error

// BuildGraph creates a new core.Graph[string], resolves the builder
// configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph[string], error) {
	g := core.NewGraph[string]()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		// Reject a nil constructor instead of panicking on the call below.
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Apply runs constructors against an existing graph with a freshly resolved
// configuration. It lets callers extend a graph (for example, add a second
// component with a different ID scheme) without rebuilding it.
func Apply(g *core.Graph[string], bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Apply: nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Apply: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("Apply: %w", err)
		}
	}

	return nil
}
