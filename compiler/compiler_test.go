package compiler_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qlayout/circuit"
	"github.com/katalvlaran/qlayout/compiler"
	"github.com/katalvlaran/qlayout/layout"
	"github.com/katalvlaran/qlayout/place"
	"github.com/katalvlaran/qlayout/router"
	"github.com/katalvlaran/qlayout/topology"
)

func line4Compiler(t *testing.T) (*compiler.Compiler, *circuit.Circuit) {
	t.Helper()

	arc, err := topology.NewLine(4)
	require.NoError(t, err)
	circ, err := circuit.Generate(circuit.GHZ, 4)
	require.NoError(t, err)

	return compiler.New(arc, router.NewBasicRouter(), nil), circ
}

func TestCompile_WithProvider(t *testing.T) {
	c, circ := line4Compiler(t)
	prov, err := layout.NewSeededRandom(4, 4, 13)
	require.NoError(t, err)

	out, err := c.Compile(context.Background(), circ, compiler.Job{Provider: prov, Seed: 13})
	require.NoError(t, err)

	assert.Equal(t, layout.NameRandom, out.Strategy)
	assert.Len(t, out.Layout, 4)
	assert.Equal(t, 3, out.GateCounts["cx"], "routing preserves the logical gate set")
	assert.Positive(t, out.Depth)
}

func TestCompile_WithMethod(t *testing.T) {
	c, circ := line4Compiler(t)

	out, err := c.Compile(context.Background(), circ, compiler.Job{Method: place.MethodLine})
	require.NoError(t, err)

	assert.Equal(t, place.MethodLine, out.Strategy)
	assert.Nil(t, out.Layout, "router-internal placement reports no explicit layout")
	assert.Equal(t, 0, out.Swaps(), "a chain circuit line-placed on a line routes swap-free")
}

func TestCompile_StrategyConflict(t *testing.T) {
	c, circ := line4Compiler(t)
	prov, err := layout.NewSeededRandom(4, 4, 1)
	require.NoError(t, err)

	_, err = c.Compile(context.Background(), circ, compiler.Job{Provider: prov, Method: place.MethodTrivial})
	assert.ErrorIs(t, err, compiler.ErrStrategyConflict)
}

func TestCompile_NoStrategy(t *testing.T) {
	c, circ := line4Compiler(t)

	_, err := c.Compile(context.Background(), circ, compiler.Job{})
	assert.ErrorIs(t, err, compiler.ErrNoStrategy)
}

func TestCompile_ProviderErrorPropagates(t *testing.T) {
	arc, err := topology.NewLine(8)
	require.NoError(t, err)
	circ, err := circuit.Generate(circuit.GHZ, 4)
	require.NoError(t, err)

	// The provider was built without a coupling graph, so its engine fails
	// on first use; Compile must surface that instead of routing.
	bad, err := layout.NewPlacement(place.MethodGraph, circ, nil, 8)
	require.NoError(t, err)

	_, err = compiler.New(arc, router.NewBasicRouter(), nil).
		Compile(context.Background(), circ, compiler.Job{Provider: bad})
	assert.Error(t, err)
}

func TestCompile_DeterministicForFixedSeed(t *testing.T) {
	arc, err := topology.NewSquareGrid(9)
	require.NoError(t, err)
	circ, err := circuit.Generate(circuit.QAOA, 5)
	require.NoError(t, err)
	c := compiler.New(arc, router.NewBasicRouter(), nil)

	run := func() compiler.Outcome {
		prov, err := layout.NewSeededRandom(5, 9, 21)
		require.NoError(t, err)
		out, err := c.Compile(context.Background(), circ, compiler.Job{Provider: prov, Seed: 21})
		require.NoError(t, err)

		return out
	}

	assert.Equal(t, run(), run())
}
