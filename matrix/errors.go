// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All functions return these sentinels (possibly wrapped with %w context);
// tests and callers match them with errors.Is.

package matrix

import "errors"

var (
	// ErrGraphNil indicates that a nil *core.Graph was passed to NewAdjacencyMatrix.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrOutOfRange indicates that a row or column index is outside [0, Size()).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrUnknownVertex indicates that a vertex is not part of this snapshot's numbering.
	ErrUnknownVertex = errors.New("matrix: unknown vertex")

	// ErrNilMatrix indicates that a nil *AdjacencyMatrix was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
