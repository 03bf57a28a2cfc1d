// SPDX-License-Identifier: MIT
// Package: socwalk/builder
//
// impl_star.go — implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds hub vertex with fixed ID "Center" (documented design choice).
//   - Adds leaves via cfg.idFn in ascending index order for i = 1..n-1.
//   - Emits spokes in stable order Center → leaf[i].
//   - Weights come from cfg.weightFn(cfg.rng), one draw per spoke.
//
// Complexity:
//   - Time: O(n) vertices + O(n-1) edges. Space: O(1) extra.
//
// Determinism:
//   - Deterministic IDs via cfg.idFn and fixed hub ID.
//   - Deterministic edge emission order by increasing leaf index.
//   - Deterministic weights for fixed cfg.rng/weightFn.

package builder

import (
	"fmt"

	"github.com/dkoverta/socwalk/core"
)

// File-local constants (no magic numbers/strings; stable method tags).
const (
	methodStar   = "Star"
	minStarNodes = 2

	// CenterID is the fixed hub vertex ID for Star and similar topologies.
	CenterID = "Center"
)

// Star returns a Constructor that builds a star topology with n vertices:
// one hub "Center" and n-1 leaves. In return-time terms the hub is the
// extremal case: every second step of the walk is a hub visit.
func Star(n int) Constructor {
	// The returned closure captures n and receives (g,cfg) from BuildGraph.
	return func(g *core.Graph, cfg builderConfig) error {
		// Validate the parameter domain early to avoid partial work.
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		// Insert the hub vertex with a fixed, documented ID.
		if err := g.AddVertex(CenterID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, CenterID, err)
		}

		var (
			i      int     // loop iterator
			w      float64 // edge weight, decided once per spoke
			leafID string  // leaf vertex ID
		)
		// Add leaves in deterministic order and connect spokes.
		for i = 1; i < n; i++ {
			leafID = cfg.idFn(i)

			if err := g.AddVertex(leafID); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, leafID, err)
			}

			w = cfg.weightFn(cfg.rng)

			// Add Center → leaf spoke (core stores it symmetrically).
			if err := g.AddEdge(CenterID, leafID, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", methodStar, CenterID, leafID, w, err)
			}
		}

		return nil
	}
}
