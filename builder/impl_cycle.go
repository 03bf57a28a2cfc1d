// SPDX-License-Identifier: MIT
// Package: socwalk/builder
//
// impl_cycle.go — implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Emits edges in stable order i → (i+1)%n for i = 0..n-1.
//   - Weights come from cfg.weightFn(cfg.rng), one draw per edge.
//
// Complexity:
//   - Time: O(n) vertices + O(n) edges. Space: O(1) extra.
//
// Determinism:
//   - Deterministic IDs via cfg.idFn; deterministic edge emission order.

package builder

import (
	"fmt"

	"github.com/dkoverta/socwalk/core"
)

// File-local constants (no magic numbers; stable method tag for context).
const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
// The unweighted cycle is the canonical symmetric fixture: every node has
// an identical return-time distribution.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// Validate parameter domain early (fail fast, no work on invalid input).
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		// Add n vertices with deterministic IDs produced by cfg.idFn.
		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodCycle, id, err)
			}
		}

		// Emit edges in ascending i; for i==n-1, connect to 0 to close the ring.
		var w float64
		for i := 0; i < n; i++ {
			uID := cfg.idFn(i)
			vID := cfg.idFn((i + 1) % n)

			w = cfg.weightFn(cfg.rng)

			if err := g.AddEdge(uID, vID, w); err != nil {
				// Wrap and return immediately on first failure (no partial cleanup).
				return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", methodCycle, uID, vID, w, err)
			}
		}

		return nil
	}
}
