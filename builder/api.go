// SPDX-License-Identifier: MIT
// Package: graphtask/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(label, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphtask/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters before touching g and return sentinel errors.
//   - Emit vertices and edges in a stable, documented order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph labeled label, resolves the builder
// configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w"; no partial cleanup
// is attempted and the partially built graph is not returned.
func BuildGraph(label string, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(label)
	if err := Apply(g, bopts, cons...); err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// Apply runs constructors against an existing graph. Vertices and edges are
// added on top of whatever g already holds.
func Apply(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Apply: nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return err
		}
	}

	return nil
}

// addVertices creates n vertices labeled cfg.idFn(i), highest index first, so
// that the prepend-ordered vertex list reads idFn(0), idFn(1), … .
// The returned slice is indexed by i.
// Complexity: O(n).
func addVertices(g *core.Graph, cfg builderConfig, n int) []*core.Vertex {
	vert := make([]*core.Vertex, n)
	for i := n - 1; i >= 0; i-- {
		vert[i] = g.CreateVertex(cfg.idFn(i))
	}

	return vert
}

// connect emits the mirror pair u—v and wraps core errors with method context.
func connect(g *core.Graph, method string, u, v *core.Vertex) error {
	if _, err := g.CreateEdge(u, v); err != nil {
		return fmt.Errorf("%s: CreateEdge(%s,%s): %w", method, u, v, err)
	}

	return nil
}
