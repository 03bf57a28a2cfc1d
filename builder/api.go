// SPDX-License-Identifier: MIT
// Package: socwalk/builder
//
// api.go — thin public entry-point for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g,
//     resolves cfg, runs cons in order.
//   - Topology factories are implemented in impl_*.go, one file each.
//   - Determinism: same inputs/options/seed and constructor order ⇒
//     identical graphs.
//   - Safety: never panic at runtime; return sentinel errors.

package builder

import (
	"fmt"

	"github.com/dkoverta/socwalk/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Emit vertices and edges in a stable, documented order.
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves
// the builder configuration from bopts, and applies all constructors in
// order. Any constructor error is wrapped with "BuildGraph: %w" and
// returned immediately; no partial cleanup is attempted by design.
//
// Complexity: O(len(bopts)) resolution plus the cost of each constructor.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	// Create a new graph using the provided core graph options.
	g := core.NewGraph(gopts...)

	// Resolve deterministic builder configuration from functional options.
	cfg := newBuilderConfig(bopts...)

	// Apply each constructor sequentially to preserve deterministic order.
	for i, fn := range cons {
		// Reject a nil constructor to avoid a panic later (programmer error).
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			// Wrap once at the API boundary; inner layers already added context.
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}
