// Package search finds the initial layouts with extremal SWAP cost by brute
// force: it routes the circuit once per permutation of the physical qubit
// range and tracks the minimum and maximum inserted-SWAP counts.
//
// The search space is the full n! permutations of range(n) physical indices
// (not the smaller set of injective virtual placements), matching the
// reference behavior; this is tractable only for small devices. Permutations
// are enumerated in lexicographic order and results are recorded by
// enumeration rank, so tie-breaking among equal swap counts is independent
// of worker scheduling. Completed tables are persisted through package cache
// and reloaded on repeat runs.
package search

import (
	"context"
	"errors"
	"fmt"

	"github.com/op/go-logging"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/qlayout/cache"
	"github.com/katalvlaran/qlayout/circuit"
	"github.com/katalvlaran/qlayout/router"
)

// Label is the cache namespace of exhaustive-search permutation tables.
const Label = "exhaustive"

// maxPhysQubits caps the brute-force space at 10! routing calls.
const maxPhysQubits = 10

// Sentinel errors for the exhaustive search.
var (
	// ErrCapacity indicates fewer physical than virtual qubits.
	ErrCapacity = errors.New("search: architecture smaller than circuit")
	// ErrSearchTooLarge indicates a physical qubit count whose factorial
	// search space is beyond the brute-force cap.
	ErrSearchTooLarge = errors.New("search: permutation space too large")
	// ErrEmptyTable indicates a best/worst scan over an empty table.
	ErrEmptyTable = errors.New("search: empty result table")
)

// Entry records one candidate permutation and its routed SWAP count.
type Entry struct {
	// Perm is the full physical-index permutation used as initial layout.
	Perm []int
	// Swaps is the SWAP count the router inserted under Perm.
	Swaps int
}

// Table is the complete permutation-to-swap-count record of one search,
// ordered by lexicographic enumeration rank. It is the unit of persistence.
type Table struct {
	Entries []Entry
}

// Request identifies one exhaustive search.
type Request struct {
	// Circuit is the benchmark circuit to route.
	Circuit *circuit.Circuit
	// Coupling is the architecture's coupling-edge list.
	Coupling [][2]int
	// PhysQubits is the architecture's physical qubit count.
	PhysQubits int
	// Arch names the architecture for the cache key.
	Arch string
	// Seed fixes the router's tie-breaking for every permutation.
	Seed int64
}

// Result carries the swap-count extrema of a completed search. Ties are
// broken by enumeration rank: the lexicographically first permutation
// achieving the extremum wins.
type Result struct {
	Best       []int
	BestSwaps  int
	Worst      []int
	WorstSwaps int
}

// Searcher runs exhaustive layout searches against a router, fanning
// permutations out over a bounded worker pool.
type Searcher struct {
	router  router.Router
	store   *cache.Store
	workers int
	log     *logging.Logger
}

// New returns a Searcher dispatching at most workers concurrent routing
// calls; workers < 1 falls back to serial execution. store may be nil to
// disable persistence.
func New(r router.Router, store *cache.Store, workers int, log *logging.Logger) *Searcher {
	if workers < 1 {
		workers = 1
	}

	return &Searcher{router: r, store: store, workers: workers, log: log}
}

// Run performs (or reloads) the exhaustive search for req and returns the
// extremal layouts. The per-permutation routing calls are independent pure
// computations; each worker writes only its own rank slot, so the table
// needs no locking and its content is identical for any worker count.
func (s *Searcher) Run(ctx context.Context, req Request) (Result, error) {
	if req.Circuit.NumQubits > req.PhysQubits {
		return Result{}, fmt.Errorf("%d virtual vs %d physical qubits: %w",
			req.Circuit.NumQubits, req.PhysQubits, ErrCapacity)
	}
	if req.PhysQubits > maxPhysQubits {
		return Result{}, fmt.Errorf("%d physical qubits (cap %d): %w",
			req.PhysQubits, maxPhysQubits, ErrSearchTooLarge)
	}

	key := cache.Key{
		Kind:       Label,
		PhysQubits: req.PhysQubits,
		Circuit:    req.Circuit.Name,
		Arch:       req.Arch,
		Seed:       req.Seed,
	}

	total := factorial(req.PhysQubits)
	var table Table
	if s.store.Get(key, &table) && len(table.Entries) == total {
		s.infof("loaded %d cached permutations for %s", total, key.Bytes())
		return BestWorst(table)
	}

	table, err := s.sweep(ctx, req, total)
	if err != nil {
		return Result{}, err
	}

	// Persist only the complete table; a failed write costs recomputation
	// later, not correctness now.
	if err = s.store.Put(key, table); err != nil {
		s.warnf("persisting %s failed: %v", key.Bytes(), err)
	}

	return BestWorst(table)
}

// sweep routes every permutation and fills the table by enumeration rank.
func (s *Searcher) sweep(ctx context.Context, req Request, total int) (Table, error) {
	s.infof("sweeping %d permutations of %d physical qubits for %s on %s",
		total, req.PhysQubits, req.Circuit.Name, req.Arch)

	entries := make([]Entry, total)
	grp, gctx := errgroup.WithContext(ctx)
	grp.SetLimit(s.workers)

	perm := identity(req.PhysQubits)
	for rank := 0; rank < total; rank++ {
		candidate := make([]int, len(perm))
		copy(candidate, perm)

		slot := &entries[rank]
		grp.Go(func() error {
			res, err := s.router.Route(gctx, req.Circuit, req.Coupling, router.Options{
				InitialLayout: candidate,
				OptLevel:      0,
				Seed:          req.Seed,
			})
			if err != nil {
				return err
			}
			*slot = Entry{Perm: candidate, Swaps: res.Swaps()}

			return nil
		})

		nextPermutation(perm)
	}
	if err := grp.Wait(); err != nil {
		return Table{}, fmt.Errorf("search: sweep aborted: %w", err)
	}

	return Table{Entries: entries}, nil
}

// BestWorst scans a completed table once and returns the extrema; the first
// entry in rank order wins ties.
func BestWorst(table Table) (Result, error) {
	if len(table.Entries) == 0 {
		return Result{}, ErrEmptyTable
	}

	res := Result{
		Best:       table.Entries[0].Perm,
		BestSwaps:  table.Entries[0].Swaps,
		Worst:      table.Entries[0].Perm,
		WorstSwaps: table.Entries[0].Swaps,
	}
	for _, e := range table.Entries[1:] {
		if e.Swaps < res.BestSwaps {
			res.Best, res.BestSwaps = e.Perm, e.Swaps
		}
		if e.Swaps > res.WorstSwaps {
			res.Worst, res.WorstSwaps = e.Perm, e.Swaps
		}
	}

	return res, nil
}

// identity returns [0, 1, ..., n-1].
func identity(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

// nextPermutation advances perm to its lexicographic successor in place,
// wrapping from the last permutation back to the identity.
// Complexity: amortized O(1), worst case O(n).
func nextPermutation(perm []int) {
	n := len(perm)
	i := n - 2
	for i >= 0 && perm[i] >= perm[i+1] {
		i--
	}
	if i < 0 {
		// Wrapped: restore ascending order.
		for l, r := 0, n-1; l < r; l, r = l+1, r-1 {
			perm[l], perm[r] = perm[r], perm[l]
		}
		return
	}
	j := n - 1
	for perm[j] <= perm[i] {
		j--
	}
	perm[i], perm[j] = perm[j], perm[i]
	for l, r := i+1, n-1; l < r; l, r = l+1, r-1 {
		perm[l], perm[r] = perm[r], perm[l]
	}
}

// factorial returns n! for the small n the brute-force cap admits.
func factorial(n int) int {
	out := 1
	for i := 2; i <= n; i++ {
		out *= i
	}

	return out
}

func (s *Searcher) infof(format string, args ...any) {
	if s.log != nil {
		s.log.Infof(format, args...)
	}
}

func (s *Searcher) warnf(format string, args ...any) {
	if s.log != nil {
		s.log.Warningf(format, args...)
	}
}
