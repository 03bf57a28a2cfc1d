// SPDX-License-Identifier: MIT
// Package builder_test contains unit tests for the topology constructors.
package builder_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dkoverta/socwalk/builder"
	"github.com/dkoverta/socwalk/core"
)

func TestStar_Topology(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Star(11))
	require.NoError(t, err)
	require.Equal(t, 11, g.VertexCount())

	// Hub touches every leaf with unit weight.
	s, err := g.StrengthOf(builder.CenterID)
	require.NoError(t, err)
	require.Equal(t, 10.0, s)

	// Each leaf touches only the hub.
	for i := 1; i < 11; i++ {
		nbs, err := g.NeighborIDs(fmt.Sprintf("%d", i))
		require.NoError(t, err)
		require.Equal(t, []string{builder.CenterID}, nbs)
	}
}

func TestCycle_Topology(t *testing.T) {
	const n = 8
	g, err := builder.BuildGraph(nil, nil, builder.Cycle(n))
	require.NoError(t, err)
	require.Equal(t, n, g.VertexCount())

	// Every ring vertex has exactly two unit-weight incidences.
	for i := 0; i < n; i++ {
		s, err := g.StrengthOf(fmt.Sprintf("%d", i))
		require.NoError(t, err)
		require.Equal(t, 2.0, s)
	}
}

func TestPath_Topology(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(5))
	require.NoError(t, err)
	require.Equal(t, 5, g.VertexCount())

	// Endpoints have one incidence, inner vertices two.
	for i, want := range []float64{1, 2, 2, 2, 1} {
		s, err := g.StrengthOf(fmt.Sprintf("%d", i))
		require.NoError(t, err)
		require.Equal(t, want, s)
	}
}

func TestComplete_Topology(t *testing.T) {
	const n = 4
	g, err := builder.BuildGraph(nil, nil, builder.Complete(n))
	require.NoError(t, err)
	require.Equal(t, n, g.VertexCount())

	for i := 0; i < n; i++ {
		s, err := g.StrengthOf(fmt.Sprintf("%d", i))
		require.NoError(t, err)
		require.Equal(t, float64(n-1), s)
	}
}

func TestConstructors_TooFewVertices(t *testing.T) {
	for name, cons := range map[string]builder.Constructor{
		"Star(1)":     builder.Star(1),
		"Cycle(2)":    builder.Cycle(2),
		"Path(1)":     builder.Path(1),
		"Complete(1)": builder.Complete(1),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := builder.BuildGraph(nil, nil, cons)
			require.ErrorIs(t, err, builder.ErrTooFewVertices)
		})
	}
}

func TestBuildGraph_NilConstructor(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestBuildGraph_SeededWeightsAreDeterministic(t *testing.T) {
	weightFn := func(r *rand.Rand) float64 { return 1.0 + r.Float64() }
	bopts := []builder.BuilderOption{builder.WithSeed(42), builder.WithWeightFn(weightFn)}

	g1, err := builder.BuildGraph(nil, bopts, builder.Cycle(6))
	require.NoError(t, err)
	// Fresh options → fresh RNG with the same seed → identical draws.
	g2, err := builder.BuildGraph(
		[]core.GraphOption{},
		[]builder.BuilderOption{builder.WithSeed(42), builder.WithWeightFn(weightFn)},
		builder.Cycle(6),
	)
	require.NoError(t, err)

	for i := 0; i < 6; i++ {
		u := fmt.Sprintf("%d", i)
		v := fmt.Sprintf("%d", (i+1)%6)
		w1, err := g1.Weight(u, v)
		require.NoError(t, err)
		w2, err := g2.Weight(u, v)
		require.NoError(t, err)
		require.Equal(t, w1, w2)
		require.Greater(t, w1, 1.0)
	}
}

func TestWithIDScheme_CustomLabels(t *testing.T) {
	idFn := func(i int) string { return fmt.Sprintf("n%02d", i) }
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithIDScheme(idFn)}, builder.Path(3))
	require.NoError(t, err)

	require.Equal(t, []string{"n00", "n01", "n02"}, g.VertexIDs())
}
