// SPDX-License-Identifier: MIT
// Package: grafo/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(n, gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Topology factories are implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs,
//     including identical adjacency order and therefore identical BFS tie-breaking.

package builder

import (
	"fmt"

	"github.com/katalvlaran/grafo/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Place vertices through cfg.idFn so offsets compose.
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a core.Graph with n vertices and graph options gopts,
// resolves the builder configuration from bopts, and applies all
// constructors in order. A core.ErrInvalidSize from NewGraph or any
// constructor error is wrapped with "BuildGraph: %w" and returned
// immediately.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
func BuildGraph(n int, gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g, err := core.NewGraph(n, gopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addEdge adds u–v and wraps failures with the constructor name.
func addEdge(g *core.Graph, method string, u, v int) error {
	if err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	return nil
}

// At runs c with its index 0 placed at vertex id first, overriding the
// configured offset for that constructor only. Use it to lay several
// disjoint components into one BuildGraph call.
func At(first int, c Constructor) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if c == nil {
			return fmt.Errorf("At(%d): nil constructor: %w", first, ErrConstructFailed)
		}
		if err := g.Validate(first); err != nil {
			return fmt.Errorf("At(%d): %w", first, err)
		}
		cfg.offset = first
		return c(g, cfg)
	}
}
