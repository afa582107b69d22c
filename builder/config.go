// SPDX-License-Identifier: MIT
// Package: graphtask/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • idFn        = vertexID           ("v1","v2",...)
//   • rng         = nil                (pure/deterministic unless seeded)
//   • maxVertices = DefaultMaxVertices (2500)

package builder

import (
	"math/rand"
	"strconv"
)

// DefaultMaxVertices is the largest n accepted by RandomTree and RandomSimple
// unless overridden with WithMaxVertices.
const DefaultMaxVertices = 2500

const defaultVertexPrefix = "v"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Vertex label strategy: index -> label (deterministic).
	idFn func(int) string
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Upper bound on vertex count for stochastic constructors.
	maxVertices int
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        vertexID,
		rng:         nil,
		maxVertices: DefaultMaxVertices,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// vertexID renders index i as "v"+(i+1).
func vertexID(i int) string {
	return defaultVertexPrefix + strconv.Itoa(i+1)
}
