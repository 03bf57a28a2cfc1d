// SPDX-License-Identifier: MIT
// Package: socwalk/builder
//
// impl_complete.go — implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Emits edges in stable lexicographic index order (i,j), i < j.
//
// Complexity:
//   - Time: O(n) vertices + O(n²) edges. Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/dkoverta/socwalk/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 2
)

// Complete returns a Constructor that builds the complete simple graph
// K_n. The walk on K_n mixes in one step; with unit weights every node's
// mean return time is exactly n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		// Add n vertices with deterministic IDs.
		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodComplete, id, err)
			}
		}

		// Emit all pairs (i,j), i < j, in fixed nested order.
		var i, j int
		var w float64
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				uID := cfg.idFn(i)
				vID := cfg.idFn(j)

				w = cfg.weightFn(cfg.rng)

				if err := g.AddEdge(uID, vID, w); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", methodComplete, uID, vID, w, err)
				}
			}
		}

		return nil
	}
}
