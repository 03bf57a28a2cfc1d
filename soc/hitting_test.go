// SPDX-License-Identifier: MIT
// Package soc_test: white-box tests for the hitting-time moment solver,
// verified against closed forms.
package soc_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dkoverta/socwalk/builder"
	"github.com/dkoverta/socwalk/core"
	"github.com/dkoverta/socwalk/soc"
)

func TestSolveTarget_TwoNodeAlternation(t *testing.T) {
	// Two nodes, one edge: from the non-target the walk hits the target in
	// exactly one step, so both moments are exactly 1.
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("a", "b", 1))

	idx := soc.ExportedNewIndexMap(g)
	p, err := soc.ExportedBuildTransition(g, idx)
	require.NoError(t, err)

	h, m2, err := soc.ExportedSolveTarget(p, 0)
	require.NoError(t, err)
	require.Equal(t, 0.0, h[0]) // target slot stays zero by convention
	require.InDelta(t, 1.0, h[1], 1e-12)
	require.InDelta(t, 1.0, m2[1], 1e-12)
}

func TestSolveTarget_TriangleClosedForm(t *testing.T) {
	// On C3 the hitting time from either non-target is geometric with
	// p = 1/2 shifted to k ≥ 1: E[T] = 2 and E[T²] = 6.
	g, err := builder.BuildGraph(nil, nil, builder.Cycle(3))
	require.NoError(t, err)

	idx := soc.ExportedNewIndexMap(g)
	p, err := soc.ExportedBuildTransition(g, idx)
	require.NoError(t, err)

	var target, j int
	for target = 0; target < 3; target++ {
		h, m2, err := soc.ExportedSolveTarget(p, target)
		require.NoError(t, err)
		for j = 0; j < 3; j++ {
			if j == target {
				require.Equal(t, 0.0, h[j])
				require.Equal(t, 0.0, m2[j])
				continue
			}
			require.InDelta(t, 2.0, h[j], 1e-9)
			require.InDelta(t, 6.0, m2[j], 1e-9)
		}
	}
}

func TestHittingMoments_WorkerCountIsTransparent(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Complete(7))
	require.NoError(t, err)

	idx := soc.ExportedNewIndexMap(g)
	p, err := soc.ExportedBuildTransition(g, idx)
	require.NoError(t, err)

	// Same math per target regardless of worker count → bit-identical output.
	h1, m1, err := soc.ExportedHittingMoments(p, 1)
	require.NoError(t, err)
	h4, m4, err := soc.ExportedHittingMoments(p, 4)
	require.NoError(t, err)
	require.Equal(t, h1, h4)
	require.Equal(t, m1, m4)

	// Oversized worker pool clamps to the target count and still works.
	h9, m9, err := soc.ExportedHittingMoments(p, 99)
	require.NoError(t, err)
	require.Equal(t, h1, h9)
	require.Equal(t, m1, m9)
}

func TestSolveTarget_PathHittingTimes(t *testing.T) {
	// P3 (0-1-2), target 0. From 1: h = 1 + (1/2)·h(2); from 2: h = 1 + h(1).
	// Solving gives h(1) = 3, h(2) = 4.
	g, err := builder.BuildGraph(nil, nil, builder.Path(3))
	require.NoError(t, err)

	idx := soc.ExportedNewIndexMap(g)
	p, err := soc.ExportedBuildTransition(g, idx)
	require.NoError(t, err)

	h, _, err := soc.ExportedSolveTarget(p, 0)
	require.NoError(t, err)
	require.InDelta(t, 3.0, h[1], 1e-9)
	require.InDelta(t, 4.0, h[2], 1e-9)
}
