package layout

import (
	"context"

	"github.com/katalvlaran/qlayout/circuit"
	"github.com/katalvlaran/qlayout/place"
)

// Placement delegates layout selection to a named placement engine.
// The method name is validated at construction: an unsupported name is a
// configuration error and no provider is returned. Placement only computes
// the virtual view; the physical view is unsupported, mirroring the
// engines' circuit-qubit-to-device-node output.
type Placement struct {
	bounds
	method   string
	engine   place.Engine
	circ     *circuit.Circuit
	coupling [][2]int
	virt     []int
}

// NewPlacement returns the delegate for one of place.Methods.
// Fails with place.ErrUnknownMethod for any other name and ErrCapacity when
// the device is smaller than the circuit.
func NewPlacement(method string, circ *circuit.Circuit, coupling [][2]int, noPhys int) (*Placement, error) {
	b, err := newBounds(circ.NumQubits, noPhys)
	if err != nil {
		return nil, err
	}
	engine, err := place.For(method)
	if err != nil {
		return nil, err
	}

	return &Placement{
		bounds:   b,
		method:   method,
		engine:   engine,
		circ:     circ,
		coupling: coupling,
	}, nil
}

// Name implements Provider; it is the placement-method name.
func (p *Placement) Name() string { return p.method }

// VirtualLayout implements Provider. The engine runs once; repeat calls
// return the memoized assignment.
func (p *Placement) VirtualLayout(_ context.Context) ([]int, error) {
	if p.virt == nil {
		virt, err := p.engine.Place(p.circ, p.coupling)
		if err != nil {
			return nil, err
		}
		p.virt = virt
	}

	out := make([]int, len(p.virt))
	copy(out, p.virt)

	return out, nil
}

// PhysicalLayout implements Provider and is explicitly unsupported.
func (p *Placement) PhysicalLayout(context.Context) ([]int, error) {
	return nil, ErrPhysicalLayoutUnsupported
}
