// SPDX-License-Identifier: MIT
// Package: graphtask/builder
//
// impl_random_tree.go - implementation of RandomTree(n) constructor.
//
// Canonical model:
//   - Vertices are created one by one; the k-th created vertex (k ≥ 1) is
//     joined to a parent drawn uniformly from the k vertices created before it.
//   - The parent draw is over already placed vertices only, so tree shapes are
//     biased toward the early vertices (the first one is the root).
//
// Contract:
//   - 0 ≤ n ≤ cfg.maxVertices (else ErrInvalidArgument). n == 0 is a no-op.
//   - cfg.rng must be non-nil when n ≥ 2 (else ErrNeedRandSource).
//   - Creation order is idFn(n-1), idFn(n-2), …, idFn(0); the list reads idFn(0)..idFn(n-1).
//   - Emits exactly n-1 edges, each as a mirror pair (parent→child first).
//
// Complexity:
//   - Time: O(n) vertices + O(n·d) parallel-edge checks (d = parent degree).
//   - Space: O(n) for the vertex slice.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphtask/core"
)

const methodRandomTree = "RandomTree"

// RandomTree returns a Constructor that adds a connected random tree on n vertices.
func RandomTree(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateVertexCount(methodRandomTree, n, cfg); err != nil {
			return err
		}
		if n >= 2 && cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomTree, ErrNeedRandSource)
		}
		_, err := randomTree(g, cfg, n)

		return err
	}
}

// randomTree builds the tree and returns its vertices indexed by id-scheme index.
func randomTree(g *core.Graph, cfg builderConfig, n int) ([]*core.Vertex, error) {
	vert := make([]*core.Vertex, n)

	var (
		k, idx, parent int
		placed         = make([]*core.Vertex, 0, n) // creation order
	)
	for k = 0; k < n; k++ {
		// Highest index first so the prepend-ordered list reads idFn(0) first.
		idx = n - 1 - k
		vert[idx] = g.CreateVertex(cfg.idFn(idx))
		if k > 0 {
			// Uniform over previously created vertices, not over all n.
			parent = cfg.rng.Intn(k)
			if err := connect(g, methodRandomTree, placed[parent], vert[idx]); err != nil {
				return nil, err
			}
		}
		placed = append(placed, vert[idx])
	}

	return vert, nil
}

// validateVertexCount enforces 0 ≤ n ≤ cfg.maxVertices.
func validateVertexCount(method string, n int, cfg builderConfig) error {
	if n < 0 {
		return fmt.Errorf("%s: n=%d < 0: %w", method, n, ErrInvalidArgument)
	}
	if n > cfg.maxVertices {
		return fmt.Errorf("%s: too many vertices n=%d > max=%d: %w", method, n, cfg.maxVertices, ErrInvalidArgument)
	}

	return nil
}
