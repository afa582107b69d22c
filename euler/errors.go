// SPDX-License-Identifier: MIT
// Package euler: sentinel error set.
// Feasibility and construction failures are reported to the caller; the
// builder never returns a partial circuit. Match with errors.Is.

package euler

import (
	"errors"

	"github.com/katalvlaran/graphtask/core"
)

var (
	// ErrGraphNil indicates a nil *core.Graph argument.
	ErrGraphNil = errors.New("euler: graph is nil")

	// ErrEmptyGraph indicates a graph (or matrix) without vertices.
	ErrEmptyGraph = errors.New("euler: graph has no vertices")

	// ErrNotEulerian indicates at least one vertex of odd degree.
	ErrNotEulerian = errors.New("euler: graph has a vertex of odd degree")

	// ErrInvalidTopology indicates a matrix that cannot come from a fresh
	// derivation of a simple undirected graph: consumed markers, parallel
	// arcs, self-loops or asymmetric cells.
	ErrInvalidTopology = errors.New("euler: invalid topology")

	// ErrNotClosed indicates a walk that spent the edge budget away from its start.
	ErrNotClosed = errors.New("euler: walk did not return to its start")

	// ErrNotConstructible indicates that no attempted walk covered every edge.
	ErrNotConstructible = errors.New("euler: circuit not constructible")

	// ErrInvalidCircuit indicates stamped traversal orders that do not form a
	// closed walk over every edge exactly once (reported by Verify).
	ErrInvalidCircuit = errors.New("euler: invalid circuit")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("euler: invalid option supplied")

	// ErrArcNotFound is core.ErrArcNotFound, surfaced when a consumed matrix
	// cell cannot be resolved to an arc. It signals a programming error.
	ErrArcNotFound = core.ErrArcNotFound
)
