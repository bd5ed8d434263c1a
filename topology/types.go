package topology

import (
	"errors"
	"fmt"
)

// Sentinel errors for topology construction.
var (
	// ErrInvalidSystemSize indicates a size/shape combination that cannot
	// form the requested family (non-square SquareGrid, grid dimension
	// mismatch, ring-count mismatch, non-positive size).
	ErrInvalidSystemSize = errors.New("topology: invalid system size")
	// ErrUnsupportedSize indicates a HeavyHex size outside the fixed set of
	// reference-device sizes.
	ErrUnsupportedSize = errors.New("topology: unsupported heavy-hex size")
)

// Family names as used in cache keys and reports. The set is closed.
const (
	NameLine         = "line"
	NameGrid         = "grid"
	NameSquareGrid   = "square_grid"
	NameHeavyHex     = "heavy_hex"
	NameRigettiRings = "rigetti_rings"
)

// Edge is a directed physical-qubit pair (a, b). Coupling maps carry both
// directions of every physical link.
type Edge [2]int

// Architecture is a named topology family instantiated at a concrete size.
// CouplingMap is computed once at construction and never mutated.
type Architecture struct {
	// Name is one of the Name* family constants.
	Name string
	// SystemSize is the physical qubit count; every edge index is below it.
	SystemSize int
	// CouplingMap is the ordered, symmetric, loop-free directed edge list.
	CouplingMap []Edge
}

// Couplings returns the coupling map as plain index pairs, the shape routers
// and placement engines consume.
func (a *Architecture) Couplings() [][2]int {
	out := make([][2]int, len(a.CouplingMap))
	for i, e := range a.CouplingMap {
		out[i] = [2]int(e)
	}

	return out
}

// link appends both directions of the physical link a-b.
func link(edges []Edge, a, b int) []Edge {
	return append(edges, Edge{a, b}, Edge{b, a})
}

// symmetrize expands a one-way link list into a directed edge list carrying
// both directions, preserving first-appearance order and dropping duplicates.
// Complexity: O(E) time and space.
func symmetrize(links []Edge) []Edge {
	seen := make(map[Edge]struct{}, 2*len(links))
	out := make([]Edge, 0, 2*len(links))
	for _, e := range links {
		for _, d := range [2]Edge{e, {e[1], e[0]}} {
			if _, ok := seen[d]; ok {
				continue
			}
			seen[d] = struct{}{}
			out = append(out, d)
		}
	}

	return out
}

// validate checks the structural invariants every coupling map must hold:
// indices within [0, size), no self-loops, no duplicate directed edges, and
// symmetry ((a,b) present iff (b,a) present).
// Complexity: O(E) time, O(E) space.
func validate(name string, size int, edges []Edge) error {
	seen := make(map[Edge]struct{}, len(edges))
	for _, e := range edges {
		if e[0] == e[1] {
			return fmt.Errorf("%s: self-loop on qubit %d: %w", name, e[0], ErrInvalidSystemSize)
		}
		if e[0] < 0 || e[0] >= size || e[1] < 0 || e[1] >= size {
			return fmt.Errorf("%s: edge (%d,%d) outside [0,%d): %w", name, e[0], e[1], size, ErrInvalidSystemSize)
		}
		if _, dup := seen[e]; dup {
			return fmt.Errorf("%s: duplicate edge (%d,%d): %w", name, e[0], e[1], ErrInvalidSystemSize)
		}
		seen[e] = struct{}{}
	}
	for e := range seen {
		if _, ok := seen[Edge{e[1], e[0]}]; !ok {
			return fmt.Errorf("%s: missing reverse of edge (%d,%d): %w", name, e[0], e[1], ErrInvalidSystemSize)
		}
	}

	return nil
}

// newArchitecture validates the computed coupling map and freezes it.
func newArchitecture(name string, size int, edges []Edge) (*Architecture, error) {
	if err := validate(name, size, edges); err != nil {
		return nil, err
	}

	return &Architecture{Name: name, SystemSize: size, CouplingMap: edges}, nil
}
