// SPDX-License-Identifier: MIT
// Package: socwalk/builder
//
// impl_path.go — implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Emits edges in stable order i → i+1 for i = 0..n-2.
//
// Complexity:
//   - Time: O(n) vertices + O(n-1) edges. Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/dkoverta/socwalk/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n. Endpoints of a
// path are the least central nodes under return-time variance, which makes
// P_n a useful asymmetry fixture.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		// Add n vertices with deterministic IDs.
		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodPath, id, err)
			}
		}

		// Chain consecutive indices.
		var w float64
		for i := 0; i < n-1; i++ {
			uID := cfg.idFn(i)
			vID := cfg.idFn(i + 1)

			w = cfg.weightFn(cfg.rng)

			if err := g.AddEdge(uID, vID, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", methodPath, uID, vID, w, err)
			}
		}

		return nil
	}
}
