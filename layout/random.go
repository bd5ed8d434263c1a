package layout

import (
	"context"
	"math/rand"
)

// NameRandom is the Random strategy identifier.
const NameRandom = "random"

// Random samples noVirt distinct physical indices uniformly without
// replacement. The sample is drawn once and memoized; Reseed discards the
// memo so the next query redraws.
type Random struct {
	bounds
	seed   int64
	seeded bool
	virt   []int
}

// NewRandom returns an unseeded Random strategy; each instance draws its
// layout from an arbitrary stream on first use.
func NewRandom(noVirt, noPhys int) (*Random, error) {
	b, err := newBounds(noVirt, noPhys)
	if err != nil {
		return nil, err
	}

	return &Random{bounds: b}, nil
}

// NewSeededRandom returns a Random strategy with a reproducible stream.
func NewSeededRandom(noVirt, noPhys int, seed int64) (*Random, error) {
	b, err := newBounds(noVirt, noPhys)
	if err != nil {
		return nil, err
	}

	return &Random{bounds: b, seed: seed, seeded: true}, nil
}

// Name implements Provider.
func (r *Random) Name() string { return NameRandom }

// Reseed fixes a new seed and forces recomputation on the next query.
func (r *Random) Reseed(seed int64) {
	r.seed = seed
	r.seeded = true
	r.virt = nil
}

// VirtualLayout implements Provider. The first call samples; repeat calls
// return the identical sequence.
func (r *Random) VirtualLayout(_ context.Context) ([]int, error) {
	if r.virt == nil {
		src := r.seed
		if !r.seeded {
			src = rand.Int63()
		}
		rng := rand.New(rand.NewSource(src))
		r.virt = rng.Perm(r.noPhys)[:r.noVirt]
	}

	out := make([]int, r.noVirt)
	copy(out, r.virt)

	return out, nil
}

// PhysicalLayout implements Provider; unsampled physical qubits map to
// Unassigned.
func (r *Random) PhysicalLayout(ctx context.Context) ([]int, error) {
	virt, err := r.VirtualLayout(ctx)
	if err != nil {
		return nil, err
	}

	return r.invert(virt), nil
}
