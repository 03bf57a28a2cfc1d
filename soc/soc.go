// SPDX-License-Identifier: MIT
// Package soc: public entry points.

package soc

import (
	"fmt"

	"github.com/dkoverta/socwalk/core"
)

// SecondOrderCentrality computes, for every node of g, the standard
// deviation of the return time of a perpetual unbiased random walk to that
// node. Lower values indicate more central nodes.
//
// The result maps every vertex ID of g to its SOC value — exactly one
// entry per input vertex, ordering unspecified. The graph is only read,
// never mutated, and no partial result is ever returned on error.
//
// Edge cases:
//   - single-vertex graph: SOC 0 by definition (no genuine walk exists).
//
// Errors:
//   - ErrGraphNil: g is nil.
//   - ErrInvalidGraph: empty graph, isolated vertex, or disconnected input.
//   - ErrSingularSystem: a reduced system failed to factorize (numerical
//     degeneracy; unreachable for valid connected input).
//   - ErrOptionViolation: an invalid Option was supplied.
//
// Complexity: Time O(n⁴) with the dense kernels, Space O(n²).
func SecondOrderCentrality(g *core.Graph, opts ...Option) (map[string]float64, error) {
	ids, _, sigmas, err := compute(g, opts...)
	if err != nil {
		return nil, err
	}

	// Package the report: exactly one entry per input vertex.
	out := make(map[string]float64, len(ids))
	for i, id := range ids {
		out[id] = sigmas[i]
	}

	return out, nil
}

// ReturnTimes computes the full per-node return-time statistics (mean and
// standard deviation) of the perpetual walk. The StdDev field equals the
// SecondOrderCentrality value; the mean satisfies the stationary identity
// E[T_i] = total graph weight / strength(i).
//
// Same contract and error set as SecondOrderCentrality.
func ReturnTimes(g *core.Graph, opts ...Option) (map[string]ReturnTime, error) {
	ids, means, sigmas, err := compute(g, opts...)
	if err != nil {
		return nil, err
	}

	out := make(map[string]ReturnTime, len(ids))
	for i, id := range ids {
		out[id] = ReturnTime{Mean: means[i], StdDev: sigmas[i]}
	}

	return out, nil
}

// compute runs the full pipeline: index → validate → transition → hitting
// moments → aggregation. It returns parallel slices aligned with ids.
func compute(g *core.Graph, opts ...Option) (ids []string, means, sigmas []float64, err error) {
	if g == nil {
		return nil, nil, nil, ErrGraphNil
	}

	// Build options and catch any invalid ones immediately.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, nil, nil, o.err
	}

	// Stage 1: stable vertex indexing (caller data is never relabeled).
	idx := newIndexMap(g)
	n := len(idx.ids)
	if n == 0 {
		return nil, nil, nil, fmt.Errorf("SecondOrderCentrality: empty graph: %w", ErrInvalidGraph)
	}

	// Degenerate single-vertex graph: the walk returns instantly by
	// definition — mean 1, deviation 0 — and no linear system exists.
	if n == 1 {
		return idx.ids, []float64{1}, []float64{0}, nil
	}

	// Stage 2: contract validation before any linear algebra runs.
	if err = validateGraph(g, idx); err != nil {
		return nil, nil, nil, err
	}

	// Stage 3: row-stochastic transition matrix.
	p, err := buildTransition(g, idx)
	if err != nil {
		return nil, nil, nil, err
	}

	// Stage 4: hitting-time moments, fanned out across workers.
	hCols, m2Cols, err := hittingMoments(p, o.Workers)
	if err != nil {
		return nil, nil, nil, err
	}

	// Stage 5: return-time statistics per node.
	means, sigmas, err = returnTimeStats(p, hCols, m2Cols, o.VarEps)
	if err != nil {
		return nil, nil, nil, err
	}

	return idx.ids, means, sigmas, nil
}
