// SPDX-License-Identifier: MIT
// Package: graphtask/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w`:
//       fmt.Errorf("%s: n=%d > max=%d: %w", methodRandomSimple, n, max, ErrInvalidArgument)
//   • Constructors never panic; option constructors (WithX) may.

package builder

import "errors"

// ErrInvalidArgument indicates an out-of-range size parameter: negative or too
// many vertices, or an edge count that no connected simple graph on n vertices
// can have. Fatal to the call; retrying with the same arguments cannot succeed.
var ErrInvalidArgument = errors.New("builder: invalid argument")

// ErrNeedRandSource indicates that a stochastic constructor needs a non-nil
// *rand.Rand (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that BuildGraph received a nil constructor or
// that the core store rejected a mutation the constructor relied on.
var ErrConstructFailed = errors.New("builder: construction failed")
