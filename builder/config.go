// SPDX-License-Identifier: MIT
// Package: grafo/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • offset = 1   (constructor index i maps to vertex id 1+i)
//   • rng    = nil (pure/deterministic unless seeded)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// offset is the vertex id assigned to constructor index 0.
	offset int
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
}

// defaultOffset maps index 0 to the first vertex id of a core.Graph.
const defaultOffset = 1

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		offset: defaultOffset,
		rng:    nil,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// idFn maps a constructor-local index to a vertex id.
func (c builderConfig) idFn(i int) int {
	return c.offset + i
}
