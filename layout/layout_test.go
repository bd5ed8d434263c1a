package layout_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qlayout/circuit"
	"github.com/katalvlaran/qlayout/layout"
	"github.com/katalvlaran/qlayout/place"
	"github.com/katalvlaran/qlayout/router"
	"github.com/katalvlaran/qlayout/search"
	"github.com/katalvlaran/qlayout/topology"
)

// assertValidVirtual checks the virtual-view contract: noVirt entries,
// each within [0, noPhys), all distinct.
func assertValidVirtual(t *testing.T, virt []int, noVirt, noPhys int) {
	t.Helper()

	require.Len(t, virt, noVirt)
	seen := make(map[int]bool, noVirt)
	for _, p := range virt {
		assert.GreaterOrEqual(t, p, 0)
		assert.Less(t, p, noPhys)
		assert.False(t, seen[p], "physical qubit %d assigned twice", p)
		seen[p] = true
	}
}

func TestNewRandom_CapacityViolation(t *testing.T) {
	_, err := layout.NewRandom(5, 4)
	assert.ErrorIs(t, err, layout.ErrCapacity)

	_, err = layout.NewRandom(0, 4)
	assert.ErrorIs(t, err, layout.ErrCapacity)
}

func TestRandom_MemoizedAndValid(t *testing.T) {
	r, err := layout.NewRandom(3, 7)
	require.NoError(t, err)
	assert.Equal(t, layout.NameRandom, r.Name())

	first, err := r.VirtualLayout(context.Background())
	require.NoError(t, err)
	assertValidVirtual(t, first, 3, 7)

	second, err := r.VirtualLayout(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second, "repeat queries return the memoized sample")
}

func TestRandom_SeededReproducible(t *testing.T) {
	a, err := layout.NewSeededRandom(4, 9, 42)
	require.NoError(t, err)
	b, err := layout.NewSeededRandom(4, 9, 42)
	require.NoError(t, err)

	va, err := a.VirtualLayout(context.Background())
	require.NoError(t, err)
	vb, err := b.VirtualLayout(context.Background())
	require.NoError(t, err)
	assert.Equal(t, va, vb, "equal seeds draw equal layouts")
}

func TestRandom_ReseedRedraws(t *testing.T) {
	r, err := layout.NewSeededRandom(4, 9, 1)
	require.NoError(t, err)

	first, err := r.VirtualLayout(context.Background())
	require.NoError(t, err)

	r.Reseed(1)
	again, err := r.VirtualLayout(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, again, "reseeding with the same seed redraws the same layout")

	r.Reseed(2)
	other, err := r.VirtualLayout(context.Background())
	require.NoError(t, err)
	assertValidVirtual(t, other, 4, 9)
	assert.NotEqual(t, first, other, "distinct seeds draw distinct layouts")
}

func TestRandom_PhysicalInverse(t *testing.T) {
	r, err := layout.NewSeededRandom(3, 6, 5)
	require.NoError(t, err)

	virt, err := r.VirtualLayout(context.Background())
	require.NoError(t, err)
	phys, err := r.PhysicalLayout(context.Background())
	require.NoError(t, err)
	require.Len(t, phys, 6)

	assigned := 0
	for p, v := range phys {
		if v == layout.Unassigned {
			continue
		}
		assigned++
		assert.Equal(t, p, virt[v], "views must be mutual inverses")
	}
	assert.Equal(t, 3, assigned)
}

func TestNewPlacement_UnknownMethod(t *testing.T) {
	arc, err := topology.NewLine(4)
	require.NoError(t, err)
	circ, err := circuit.Generate(circuit.GHZ, 3)
	require.NoError(t, err)

	_, err = layout.NewPlacement("NoSuchLayout", circ, arc.Couplings(), arc.SystemSize)
	assert.ErrorIs(t, err, place.ErrUnknownMethod)
}

func TestPlacement_DelegatesAndMemoizes(t *testing.T) {
	arc, err := topology.NewSquareGrid(9)
	require.NoError(t, err)
	circ, err := circuit.Generate(circuit.GHZ, 5)
	require.NoError(t, err)

	p, err := layout.NewPlacement(place.MethodGraph, circ, arc.Couplings(), arc.SystemSize)
	require.NoError(t, err)
	assert.Equal(t, place.MethodGraph, p.Name())

	first, err := p.VirtualLayout(context.Background())
	require.NoError(t, err)
	assertValidVirtual(t, first, 5, 9)

	second, err := p.VirtualLayout(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestPlacement_PhysicalUnsupported(t *testing.T) {
	arc, err := topology.NewLine(5)
	require.NoError(t, err)
	circ, err := circuit.Generate(circuit.GHZ, 3)
	require.NoError(t, err)

	p, err := layout.NewPlacement(place.MethodTrivial, circ, arc.Couplings(), arc.SystemSize)
	require.NoError(t, err)

	_, err = p.PhysicalLayout(context.Background())
	assert.ErrorIs(t, err, layout.ErrPhysicalLayoutUnsupported)
}

func TestExtremal_BestBeatsWorst(t *testing.T) {
	arc, err := topology.NewLine(4)
	require.NoError(t, err)
	circ, err := circuit.Generate(circuit.GHZ, 4)
	require.NoError(t, err)

	req := search.Request{
		Circuit:    circ,
		Coupling:   arc.Couplings(),
		PhysQubits: arc.SystemSize,
		Arch:       arc.Name,
		Seed:       3,
	}
	s := search.New(router.NewBasicRouter(), nil, 4, nil)

	best, err := layout.NewBest(s, req)
	require.NoError(t, err)
	worst, err := layout.NewWorst(s, req)
	require.NoError(t, err)
	assert.Equal(t, layout.NameBest, best.Name())
	assert.Equal(t, layout.NameWorst, worst.Name())

	bv, err := best.VirtualLayout(context.Background())
	require.NoError(t, err)
	assertValidVirtual(t, bv, 4, 4)
	wv, err := worst.VirtualLayout(context.Background())
	require.NoError(t, err)
	assertValidVirtual(t, wv, 4, 4)

	route := func(virt []int) int {
		res, err := router.NewBasicRouter().Route(context.Background(), circ, arc.Couplings(), router.Options{
			InitialLayout: virt,
			Seed:          3,
		})
		require.NoError(t, err)

		return res.Swaps()
	}
	assert.LessOrEqual(t, route(bv), route(wv))
	assert.Equal(t, 0, route(bv), "a 4-qubit chain embeds swap-free on a 4-qubit line")
}

func TestExtremal_PhysicalInverse(t *testing.T) {
	arc, err := topology.NewLine(4)
	require.NoError(t, err)
	circ, err := circuit.Generate(circuit.GHZ, 3)
	require.NoError(t, err)

	req := search.Request{
		Circuit:    circ,
		Coupling:   arc.Couplings(),
		PhysQubits: arc.SystemSize,
		Arch:       arc.Name,
		Seed:       7,
	}
	best, err := layout.NewBest(search.New(router.NewBasicRouter(), nil, 2, nil), req)
	require.NoError(t, err)

	virt, err := best.VirtualLayout(context.Background())
	require.NoError(t, err)
	phys, err := best.PhysicalLayout(context.Background())
	require.NoError(t, err)
	for v, p := range virt {
		assert.Equal(t, v, phys[p])
	}
}

func TestExtremal_CapacityViolation(t *testing.T) {
	arc, err := topology.NewLine(3)
	require.NoError(t, err)
	circ, err := circuit.Generate(circuit.GHZ, 4)
	require.NoError(t, err)

	_, err = layout.NewBest(search.New(router.NewBasicRouter(), nil, 1, nil), search.Request{
		Circuit:    circ,
		Coupling:   arc.Couplings(),
		PhysQubits: arc.SystemSize,
		Arch:       arc.Name,
	})
	assert.ErrorIs(t, err, layout.ErrCapacity)
}
