// Package layout provides the initial-layout strategies the harness
// benchmarks, behind one Provider interface.
//
// A layout relates virtual qubit indices [0, noVirt) to physical qubit
// indices [0, noPhys), noPhys >= noVirt. Its two views are inverses
// wherever both are defined: the virtual layout lists the physical qubit of
// every virtual qubit; the physical layout lists the virtual qubit of every
// physical qubit, Unassigned where none. Deterministic strategies memoize
// their layout on first computation and return it unchanged afterwards;
// reseeding a seeded strategy discards the memo.
package layout

import (
	"context"
	"errors"
	"fmt"
)

// Unassigned marks a physical qubit with no virtual counterpart in the
// physical view.
const Unassigned = -1

// Sentinel errors for layout strategies.
var (
	// ErrCapacity indicates noPhys < noVirt; rejected at construction,
	// before any search or placement begins.
	ErrCapacity = errors.New("layout: architecture smaller than circuit")
	// ErrPhysicalLayoutUnsupported indicates a strategy that only computes
	// the virtual view.
	ErrPhysicalLayoutUnsupported = errors.New("layout: physical layout not supported by this strategy")
)

// Provider computes an initial layout on demand.
type Provider interface {
	// Name identifies the strategy for caching and reporting.
	Name() string
	// VirtualLayout returns, for each virtual qubit index, its assigned
	// physical qubit. Entries are distinct and within [0, noPhys).
	VirtualLayout(ctx context.Context) ([]int, error)
	// PhysicalLayout returns, for each physical qubit index, its assigned
	// virtual qubit or Unassigned. Strategies that cannot provide this
	// view return ErrPhysicalLayoutUnsupported.
	PhysicalLayout(ctx context.Context) ([]int, error)
}

// bounds carries the common size pair and its capacity invariant.
type bounds struct {
	noVirt, noPhys int
}

func newBounds(noVirt, noPhys int) (bounds, error) {
	if noVirt < 1 || noPhys < noVirt {
		return bounds{}, fmt.Errorf("noVirt=%d noPhys=%d: %w", noVirt, noPhys, ErrCapacity)
	}

	return bounds{noVirt: noVirt, noPhys: noPhys}, nil
}

// invert derives the physical view from a virtual layout.
func (b bounds) invert(virt []int) []int {
	phys := make([]int, b.noPhys)
	for i := range phys {
		phys[i] = Unassigned
	}
	for v, p := range virt {
		phys[p] = v
	}

	return phys
}
