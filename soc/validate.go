// SPDX-License-Identifier: MIT
// Package soc: input-graph validation.
//
// The walk must be irreducible for return times to exist. validateGraph
// enforces the caller contract before any linear algebra runs:
//   - N ≥ 1 (empty graph rejected);
//   - every vertex has positive strength (an isolated node has no
//     stationary behavior);
//   - every vertex is reachable from index 0 over positive-weight edges
//     (breadth-first scan; zero-weight edge records do not connect).
//
// All violations wrap ErrInvalidGraph; no partial result is ever produced.

package soc

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/dkoverta/socwalk/core"
)

// validateGraph checks strengths and connectivity for the indexed graph.
// Complexity: Time O(V + E) for the scan plus O(V) strength lookups.
func validateGraph(g *core.Graph, idx indexMap) error {
	n := len(idx.ids)
	if n == 0 {
		return fmt.Errorf("validateGraph: empty graph: %w", ErrInvalidGraph)
	}

	// Every vertex must carry positive total weight.
	var (
		id       string
		strength float64
		err      error
	)
	for _, id = range idx.ids {
		if strength, err = g.StrengthOf(id); err != nil {
			return fmt.Errorf("validateGraph: StrengthOf(%s): %w", id, err)
		}
		if strength <= 0 {
			return fmt.Errorf("validateGraph: vertex %s has zero total weight: %w", id, ErrInvalidGraph)
		}
	}

	// Breadth-first reachability from index 0 over positive-weight edges.
	visited := mapset.NewThreadUnsafeSet[string]()
	queue := []string{idx.ids[0]}
	visited.Add(idx.ids[0])

	var cur string
	var nbs []string
	var w float64
	for len(queue) > 0 {
		cur, queue = queue[0], queue[1:]

		if nbs, err = g.NeighborIDs(cur); err != nil {
			return fmt.Errorf("validateGraph: NeighborIDs(%s): %w", cur, err)
		}
		for _, nb := range nbs {
			if visited.Contains(nb) {
				continue
			}
			if w, err = g.Weight(cur, nb); err != nil {
				return fmt.Errorf("validateGraph: Weight(%s,%s): %w", cur, nb, err)
			}
			if w <= 0 {
				continue // a zero-weight record is not a usable edge
			}
			visited.Add(nb)
			queue = append(queue, nb)
		}
	}

	if visited.Cardinality() != n {
		return fmt.Errorf("validateGraph: reached %d of %d vertices from %s: %w",
			visited.Cardinality(), n, idx.ids[0], ErrInvalidGraph)
	}

	return nil
}
