// SPDX-License-Identifier: MIT
// Package: graphtask/builder
//
// impl_random_simple.go - implementation of RandomSimple(n, m) constructor.
//
// Canonical model:
//   - Step 1: RandomTree(n) guarantees connectivity with exactly n-1 edges.
//   - Step 2: derive the adjacency matrix once; draw (i, j) uniformly over the
//     n new vertices, skip i == j and already connected pairs, otherwise emit a
//     mirror pair and mark both cells. Repeat until m-(n-1) extra edges exist.
//     There is no cap on draws: near-complete targets may retry heavily but
//     terminate with probability 1.
//
// Contract:
//   - 0 ≤ n ≤ cfg.maxVertices and n-1 ≤ m ≤ n(n-1)/2 (else ErrInvalidArgument).
//   - cfg.rng must be non-nil when n ≥ 2 (else ErrNeedRandSource).
//   - The result is connected and simple: no loops, no parallel edges.
//
// Complexity:
//   - Time: O(n²) matrix derivation + expected O(m · n²/(n²-2m)) draws.
//   - Space: O(n²) for the adjacency snapshot.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphtask/core"
	"github.com/katalvlaran/graphtask/matrix"
)

const methodRandomSimple = "RandomSimple"

// RandomSimple returns a Constructor that adds a connected simple random graph
// with n vertices and m edges.
func RandomSimple(n, m int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate sizes before any mutation.
		if err := validateVertexCount(methodRandomSimple, n, cfg); err != nil {
			return err
		}
		if m < n-1 || m > maxSimpleEdges(n) {
			return fmt.Errorf("%s: impossible number of edges m=%d for n=%d (want %d..%d): %w",
				methodRandomSimple, m, n, max(n-1, 0), maxSimpleEdges(n), ErrInvalidArgument)
		}
		if n >= 2 && cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSimple, ErrNeedRandSource)
		}
		if n == 0 {
			return nil
		}

		// 2) Spanning tree: n-1 edges.
		vert, err := randomTree(g, cfg, n)
		if err != nil {
			return err
		}

		// 3) Extra edges over a fresh adjacency snapshot.
		extra := m - (n - 1)
		if extra == 0 {
			return nil
		}
		adj, err := matrix.NewAdjacencyMatrix(g)
		if err != nil {
			return fmt.Errorf("%s: %w", methodRandomSimple, err)
		}
		// Map id-scheme index → snapshot row once; g may hold other vertices.
		rows := make([]int, n)
		for i, v := range vert {
			if rows[i], err = adj.Index(v); err != nil {
				return fmt.Errorf("%s: %w", methodRandomSimple, err)
			}
		}

		var (
			i, j   int
			ij, ji int
		)
		for extra > 0 {
			i = cfg.rng.Intn(n) // random source
			j = cfg.rng.Intn(n) // random target
			if i == j {
				continue // no loops
			}
			ij, _ = adj.At(rows[i], rows[j])
			ji, _ = adj.At(rows[j], rows[i])
			if ij != matrix.CellAbsent || ji != matrix.CellAbsent {
				continue // no multiple edges
			}
			if err = connect(g, methodRandomSimple, vert[i], vert[j]); err != nil {
				return err
			}
			_ = adj.Set(rows[i], rows[j], matrix.CellPresent)
			_ = adj.Set(rows[j], rows[i], matrix.CellPresent)
			extra--
		}

		return nil
	}
}

// maxSimpleEdges returns n(n-1)/2, the edge count of K_n.
func maxSimpleEdges(n int) int {
	if n < 2 {
		return 0
	}

	return n * (n - 1) / 2
}
