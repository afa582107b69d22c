// SPDX-License-Identifier: MIT
// Package: graphtask/builder
//
// impl_fixtures.go — deterministic constructors: Cycle, Path, Complete, EdgeList.
//
// Contract:
//   • Cycle: n ≥ 3, edges i—(i+1)%n for i = 0..n-1.
//   • Path: n ≥ 2, edges i—(i+1) for i = 0..n-2.
//   • Complete: n ≥ 1, edges i—j for i < j, i asc then j asc.
//   • EdgeList: caller-provided labels and index pairs, emitted in slice order.
//   • Vertex labels via cfg.idFn (EdgeList uses the given labels); list order
//     reads index 0 first.
//   • Size violations → ErrInvalidArgument; core rejections (loop/parallel) are wrapped.
//
// Complexity:
//   • Cycle/Path: O(n). Complete: O(n²)·O(deg) parallel checks. EdgeList: O(V + Σdeg).

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphtask/core"
)

const (
	methodCycle    = "Cycle"
	methodPath     = "Path"
	methodComplete = "Complete"
	methodEdgeList = "EdgeList"

	minCycleNodes    = 3
	minPathNodes     = 2
	minCompleteNodes = 1
)

// Cycle returns a Constructor that builds the simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrInvalidArgument)
		}
		vert := addVertices(g, cfg, n)
		for i := 0; i < n; i++ {
			if err := connect(g, methodCycle, vert[i], vert[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrInvalidArgument)
		}
		vert := addVertices(g, cfg, n)
		for i := 0; i+1 < n; i++ {
			if err := connect(g, methodPath, vert[i], vert[i+1]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrInvalidArgument)
		}
		vert := addVertices(g, cfg, n)
		var i, j int
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if err := connect(g, methodComplete, vert[i], vert[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// EdgeList returns a Constructor that adds one vertex per label and one
// undirected edge per index pair.
func EdgeList(labels []string, pairs [][2]int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// Validate every pair before creating anything.
		n := len(labels)
		for k, p := range pairs {
			if p[0] < 0 || p[0] >= n || p[1] < 0 || p[1] >= n {
				return fmt.Errorf("%s: pair %d %v outside [0,%d): %w", methodEdgeList, k, p, n, ErrInvalidArgument)
			}
		}
		vert := make([]*core.Vertex, n)
		for i := n - 1; i >= 0; i-- {
			vert[i] = g.CreateVertex(labels[i])
		}
		for _, p := range pairs {
			if err := connect(g, methodEdgeList, vert[p[0]], vert[p[1]]); err != nil {
				return err
			}
		}

		return nil
	}
}
