// SPDX-License-Identifier: MIT
// Package soc: vertex indexing and transition-matrix construction.
//
// Determinism:
//   - indexMap orders vertices by ID lex asc (core.VertexIDs contract), so
//     index assignment — and therefore every downstream matrix — is stable
//     across runs for the same graph.

package soc

import (
	"fmt"
	"math"

	"github.com/dkoverta/socwalk/core"
	"github.com/dkoverta/socwalk/matrix"
)

// indexMap is the bidirectional vertex ID ↔ dense index mapping built once
// at the pipeline boundary. Caller data is never relabeled in place.
type indexMap struct {
	ids []string       // index → ID, sorted lex asc
	pos map[string]int // ID → index
}

// newIndexMap snapshots the graph's vertex set into a stable indexing.
// Complexity: O(V log V).
func newIndexMap(g *core.Graph) indexMap {
	ids := g.VertexIDs()
	pos := make(map[string]int, len(ids))
	for i, id := range ids {
		pos[id] = i
	}

	return indexMap{ids: ids, pos: pos}
}

// buildTransition derives the unbiased random-walk transition matrix from
// the graph: P[i][j] = w(i,j) / strength(i). Self-loops participate in the
// normalization as ordinary transitions; zero-weight pairs stay exactly
// zero (no epsilon fuzz).
//
// Each row is self-checked to sum to 1 within stochTol; a violation maps
// to ErrRowNotStochastic and indicates a core/transition bug rather than
// bad user input (zero-strength vertices are rejected before this stage).
//
// Complexity: Time O(V² + E), Space O(V²).
func buildTransition(g *core.Graph, idx indexMap) (*matrix.Dense, error) {
	n := len(idx.ids)
	p, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("buildTransition: %w", err)
	}

	var (
		i        int
		id       string
		strength float64
		nbs      []string
		w        float64
		rowSum   float64
	)
	for i, id = range idx.ids {
		strength, err = g.StrengthOf(id)
		if err != nil {
			return nil, fmt.Errorf("buildTransition: StrengthOf(%s): %w", id, err)
		}

		nbs, err = g.NeighborIDs(id)
		if err != nil {
			return nil, fmt.Errorf("buildTransition: NeighborIDs(%s): %w", id, err)
		}

		// Fill row i in neighbor order; absent edges remain exactly 0.
		rowSum = 0
		for _, nb := range nbs {
			if w, err = g.Weight(id, nb); err != nil {
				return nil, fmt.Errorf("buildTransition: Weight(%s,%s): %w", id, nb, err)
			}
			if w == 0 {
				continue // zero-weight edge record contributes nothing
			}
			if err = p.Set(i, idx.pos[nb], w/strength); err != nil {
				return nil, fmt.Errorf("buildTransition: %w", err)
			}
			rowSum += w / strength
		}

		// Row-stochasticity self-check (internal guard, not user-facing).
		if math.Abs(rowSum-1.0) > stochTol {
			return nil, fmt.Errorf("buildTransition: row %d (%s) sums to %g: %w", i, id, rowSum, ErrRowNotStochastic)
		}
	}

	return p, nil
}
