package layout

import (
	"context"

	"github.com/katalvlaran/qlayout/search"
)

// Extremal strategy identifiers.
const (
	NameBest  = "best"
	NameWorst = "worst"
)

// Extremal obtains its layout from the exhaustive search: Best returns the
// permutation minimizing the routed SWAP count, Worst the one maximizing
// it. The search runs once per provider; both views are memoized.
type Extremal struct {
	bounds
	name     string
	searcher *search.Searcher
	req      search.Request
	perm     []int
}

// NewBest returns the minimum-SWAP strategy for the given search request.
func NewBest(s *search.Searcher, req search.Request) (*Extremal, error) {
	return newExtremal(NameBest, s, req)
}

// NewWorst returns the maximum-SWAP strategy for the given search request.
func NewWorst(s *search.Searcher, req search.Request) (*Extremal, error) {
	return newExtremal(NameWorst, s, req)
}

func newExtremal(name string, s *search.Searcher, req search.Request) (*Extremal, error) {
	b, err := newBounds(req.Circuit.NumQubits, req.PhysQubits)
	if err != nil {
		return nil, err
	}

	return &Extremal{bounds: b, name: name, searcher: s, req: req}, nil
}

// Name implements Provider.
func (e *Extremal) Name() string { return e.name }

// VirtualLayout implements Provider: the winning permutation truncated to
// the circuit's virtual qubit count.
func (e *Extremal) VirtualLayout(ctx context.Context) ([]int, error) {
	if err := e.ensure(ctx); err != nil {
		return nil, err
	}

	out := make([]int, e.noVirt)
	copy(out, e.perm[:e.noVirt])

	return out, nil
}

// PhysicalLayout implements Provider. The search enumerates full physical
// permutations, so the inverse view is fully defined for the assigned
// prefix and Unassigned elsewhere.
func (e *Extremal) PhysicalLayout(ctx context.Context) ([]int, error) {
	virt, err := e.VirtualLayout(ctx)
	if err != nil {
		return nil, err
	}

	return e.invert(virt), nil
}

// ensure runs the exhaustive search once and pins the winning permutation.
func (e *Extremal) ensure(ctx context.Context) error {
	if e.perm != nil {
		return nil
	}

	res, err := e.searcher.Run(ctx, e.req)
	if err != nil {
		return err
	}
	if e.name == NameWorst {
		e.perm = res.Worst
	} else {
		e.perm = res.Best
	}

	return nil
}
