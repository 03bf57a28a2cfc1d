// SPDX-License-Identifier: MIT
// Package: socwalk/builder
//
// config.go — internal configuration, deterministic defaults, and
// functional options.
//
// Design:
//   - builderConfig is the single source of truth for all builder knobs.
//   - Defaults are deterministic and documented; no globals.
//   - newBuilderConfig applies options in-order (later overrides earlier).
//   - Option constructors VALIDATE and PANIC on meaningless inputs;
//     constructors themselves never panic.

package builder

import (
	"math/rand" // RNG for weight generation
	"strconv"   // decimal vertex IDs ("0","1",...)
)

// defaultWeight is the constant edge weight used when no weight function
// is configured. Unit weights make builders produce the combinatorial
// (unweighted) walk by default.
const defaultWeight = 1.0

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Vertex ID strategy: index -> ID (deterministic).
	idFn func(int) string
	// RNG for stochastic weight draws; nil means "no randomness".
	rng *rand.Rand
	// Weight generator for edges; receives the (possibly nil) RNG.
	weightFn func(*rand.Rand) float64
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order (last-wins semantics).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     decimalID,                                      // "0","1","2",...
		rng:      nil,                                            // no RNG unless explicitly set
		weightFn: func(*rand.Rand) float64 { return defaultWeight }, // constant weight
	}

	// Apply options in the given order.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// decimalID renders an index as a base-10 string ("0","1","2",...).
// Deterministic and allocation-light; suitable for golden tests.
func decimalID(i int) string {
	return strconv.Itoa(i)
}

// BuilderOption customizes constructor behavior by mutating a
// builderConfig before graph construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the deterministic vertex ID generator: idx -> string.
// Panics on nil to surface programmer error early.
func WithIDScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock weight draws.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator. The function
// receives the (possibly nil) RNG and must be pure with respect to the RNG
// state to preserve determinism. Panics on nil.
func WithWeightFn(fn func(*rand.Rand) float64) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}
