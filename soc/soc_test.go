// SPDX-License-Identifier: MIT
// Package soc_test: black-box property tests for the public SOC surface.
package soc_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dkoverta/socwalk/builder"
	"github.com/dkoverta/socwalk/core"
	"github.com/dkoverta/socwalk/soc"
)

const socTol = 1e-9

func TestSecondOrderCentrality_NilGraph(t *testing.T) {
	_, err := soc.SecondOrderCentrality(nil)
	require.ErrorIs(t, err, soc.ErrGraphNil)
}

func TestSecondOrderCentrality_EmptyGraph(t *testing.T) {
	_, err := soc.SecondOrderCentrality(core.NewGraph())
	require.ErrorIs(t, err, soc.ErrInvalidGraph)
}

func TestSecondOrderCentrality_SingleNodeDegeneracy(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("solo"))

	scores, err := soc.SecondOrderCentrality(g)
	require.NoError(t, err)
	require.Equal(t, map[string]float64{"solo": 0}, scores)

	// The trivial walk "returns" every step: mean 1, deviation 0.
	stats, err := soc.ReturnTimes(g)
	require.NoError(t, err)
	require.Equal(t, soc.ReturnTime{Mean: 1, StdDev: 0}, stats["solo"])
}

func TestSecondOrderCentrality_TwoNodeAlternation(t *testing.T) {
	// The walk alternates deterministically: return time is always exactly
	// 2, so the variance — and the SOC — is exactly 0 for both nodes.
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("a", "b", 1))

	scores, err := soc.SecondOrderCentrality(g)
	require.NoError(t, err)
	require.Len(t, scores, 2)
	require.Equal(t, 0.0, scores["a"])
	require.Equal(t, 0.0, scores["b"])
}

func TestSecondOrderCentrality_CycleSymmetry(t *testing.T) {
	// All nodes of C_n are equivalent under rotation, so all SOC values
	// must coincide within numerical tolerance.
	const n = 9
	g, err := builder.BuildGraph(nil, nil, builder.Cycle(n))
	require.NoError(t, err)

	scores, err := soc.SecondOrderCentrality(g)
	require.NoError(t, err)
	require.Len(t, scores, n)

	ref := scores["0"]
	for id, v := range scores {
		require.InDeltaf(t, ref, v, socTol, "node %s deviates from the shared cycle SOC", id)
	}
}

func TestSecondOrderCentrality_TriangleClosedForm(t *testing.T) {
	// C3: mean return time 3, E[T²] = 11, so σ = sqrt(2) for every node.
	g, err := builder.BuildGraph(nil, nil, builder.Cycle(3))
	require.NoError(t, err)

	scores, err := soc.SecondOrderCentrality(g)
	require.NoError(t, err)
	for id, v := range scores {
		require.InDeltaf(t, math.Sqrt2, v, socTol, "node %s", id)
	}
}

func TestSecondOrderCentrality_StarHubIsStrictMinimum(t *testing.T) {
	// star_graph(10) equivalent: hub + 10 leaves. The hub must carry the
	// strictly smallest SOC — it is the most central node.
	g, err := builder.BuildGraph(nil, nil, builder.Star(11))
	require.NoError(t, err)

	scores, err := soc.SecondOrderCentrality(g)
	require.NoError(t, err)
	require.Len(t, scores, 11)

	hub := scores[builder.CenterID]
	for id, v := range scores {
		if id == builder.CenterID {
			continue
		}
		require.Greaterf(t, v, hub, "leaf %s must be less central than the hub", id)
	}
}

func TestSecondOrderCentrality_PathMiddleBeatsEndpoints(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(5))
	require.NoError(t, err)

	scores, err := soc.SecondOrderCentrality(g)
	require.NoError(t, err)

	// The middle of the path is revisited most regularly.
	require.Less(t, scores["2"], scores["0"])
	require.Less(t, scores["2"], scores["4"])
}

func TestSecondOrderCentrality_NonNegativity(t *testing.T) {
	for name, cons := range map[string]builder.Constructor{
		"star":     builder.Star(8),
		"cycle":    builder.Cycle(8),
		"path":     builder.Path(8),
		"complete": builder.Complete(8),
	} {
		t.Run(name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, nil, cons)
			require.NoError(t, err)

			scores, err := soc.SecondOrderCentrality(g)
			require.NoError(t, err)
			for id, v := range scores {
				require.GreaterOrEqualf(t, v, 0.0, "node %s", id)
				require.Falsef(t, math.IsNaN(v), "node %s", id)
			}
		})
	}
}

func TestSecondOrderCentrality_DisconnectedRejection(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("a", "b", 1))
	require.NoError(t, g.AddEdge("c", "d", 1))

	scores, err := soc.SecondOrderCentrality(g)
	require.ErrorIs(t, err, soc.ErrInvalidGraph)
	require.Nil(t, scores) // never a partial subset result
}

func TestSecondOrderCentrality_IsolatedVertexRejection(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("a", "b", 1))
	require.NoError(t, g.AddVertex("loner"))

	_, err := soc.SecondOrderCentrality(g)
	require.ErrorIs(t, err, soc.ErrInvalidGraph)
}

func TestSecondOrderCentrality_WeightScalingInvariance(t *testing.T) {
	// Uniformly scaling edge weights leaves every transition row unchanged,
	// so SOC must be invariant. In a star every edge is hub-incident, so
	// this also covers "scale one node's incident weights uniformly".
	build := func(w float64) map[string]float64 {
		g, err := builder.BuildGraph(
			nil,
			[]builder.BuilderOption{builder.WithWeightFn(func(_ *rand.Rand) float64 { return w })},
			builder.Star(9),
		)
		require.NoError(t, err)

		scores, err := soc.SecondOrderCentrality(g)
		require.NoError(t, err)
		return scores
	}

	require.Equal(t, build(1), build(4))
}

func TestReturnTimes_StationaryMeanIdentity(t *testing.T) {
	// For the unbiased walk E[T_i] = total weight / strength(i):
	// every node of C5 has mean 5; every node of K4 has mean 4.
	t.Run("cycle5", func(t *testing.T) {
		g, err := builder.BuildGraph(nil, nil, builder.Cycle(5))
		require.NoError(t, err)

		stats, err := soc.ReturnTimes(g)
		require.NoError(t, err)
		for id, rt := range stats {
			require.InDeltaf(t, 5.0, rt.Mean, socTol, "node %s", id)
		}
	})

	t.Run("complete4", func(t *testing.T) {
		g, err := builder.BuildGraph(nil, nil, builder.Complete(4))
		require.NoError(t, err)

		stats, err := soc.ReturnTimes(g)
		require.NoError(t, err)
		for id, rt := range stats {
			require.InDeltaf(t, 4.0, rt.Mean, socTol, "node %s", id)
		}
	})
}

func TestReturnTimes_StdDevMatchesSOC(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Star(7))
	require.NoError(t, err)

	scores, err := soc.SecondOrderCentrality(g)
	require.NoError(t, err)
	stats, err := soc.ReturnTimes(g)
	require.NoError(t, err)

	require.Len(t, stats, len(scores))
	for id, v := range scores {
		require.Equal(t, v, stats[id].StdDev)
	}
}

func TestSecondOrderCentrality_Completeness(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Complete(6))
	require.NoError(t, err)

	scores, err := soc.SecondOrderCentrality(g)
	require.NoError(t, err)

	// Exactly one entry per input vertex.
	require.Len(t, scores, g.VertexCount())
	for _, id := range g.VertexIDs() {
		_, ok := scores[id]
		require.Truef(t, ok, "missing node %s", id)
	}
}

func TestSecondOrderCentrality_OptionViolations(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Cycle(4))
	require.NoError(t, err)

	_, err = soc.SecondOrderCentrality(g, soc.WithWorkers(0))
	require.ErrorIs(t, err, soc.ErrOptionViolation)

	_, err = soc.SecondOrderCentrality(g, soc.WithVarEps(-1))
	require.ErrorIs(t, err, soc.ErrOptionViolation)
}

func TestSecondOrderCentrality_WorkersProduceIdenticalResults(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Complete(10))
	require.NoError(t, err)

	seq, err := soc.SecondOrderCentrality(g)
	require.NoError(t, err)
	par, err := soc.SecondOrderCentrality(g, soc.WithWorkers(4))
	require.NoError(t, err)

	require.Equal(t, seq, par)
}

func TestSecondOrderCentrality_WeightedAsymmetry(t *testing.T) {
	// A weighted triangle is still connected and must produce strictly
	// positive, finite SOC for every node.
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("a", "b", 0.5))
	require.NoError(t, g.AddEdge("b", "c", 2.0))
	require.NoError(t, g.AddEdge("c", "a", 5.0))

	scores, err := soc.SecondOrderCentrality(g)
	require.NoError(t, err)
	require.Len(t, scores, 3)
	for id, v := range scores {
		require.Greaterf(t, v, 0.0, "node %s", id)
		require.Falsef(t, math.IsInf(v, 0), "node %s", id)
	}
}

func TestSecondOrderCentrality_LoopGraph(t *testing.T) {
	// A self-loop is an ordinary transition: the looped node can return in
	// a single step, which spreads its return distribution.
	g := core.NewGraph(core.WithLoops())
	require.NoError(t, g.AddEdge("a", "b", 1))
	require.NoError(t, g.AddEdge("a", "a", 1))

	scores, err := soc.SecondOrderCentrality(g)
	require.NoError(t, err)
	require.Len(t, scores, 2)
	for id, v := range scores {
		require.GreaterOrEqualf(t, v, 0.0, "node %s", id)
	}
}

