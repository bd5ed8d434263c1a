// Package bench drives the benchmark sweep: every configured architecture is
// crossed with every algorithm, layout strategy, and transpiler seed, each
// combination is compiled once, and the per-run metrics are cached so a
// repeated sweep replays from disk instead of recompiling.
package bench

import (
	"context"
	"errors"
	"fmt"

	"github.com/op/go-logging"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/qlayout/cache"
	"github.com/katalvlaran/qlayout/circuit"
	"github.com/katalvlaran/qlayout/compiler"
	"github.com/katalvlaran/qlayout/layout"
	"github.com/katalvlaran/qlayout/place"
	"github.com/katalvlaran/qlayout/router"
	"github.com/katalvlaran/qlayout/search"
	"github.com/katalvlaran/qlayout/topology"
)

// Sentinel errors for sweep configuration.
var (
	// ErrEmptyConfig indicates a sweep dimension with no entries.
	ErrEmptyConfig = errors.New("bench: empty sweep dimension")
	// ErrUnknownStrategy indicates a strategy name outside Strategies.
	ErrUnknownStrategy = errors.New("bench: unknown layout strategy")
)

// Strategies lists every layout strategy the runner accepts, in reporting
// order.
var Strategies = []string{
	layout.NameRandom,
	place.MethodLine,
	place.MethodGraph,
	place.MethodTrivial,
	place.MethodSabre,
	layout.NameBest,
	layout.NameWorst,
}

// Config spans one sweep. Qubits is the circuit width shared by all runs and
// must fit every listed architecture.
type Config struct {
	Architectures []*topology.Architecture
	Algorithms    []circuit.Algorithm
	Strategies    []string
	Seeds         []int64
	Qubits        int
	OptLevel      int
	// Workers bounds concurrent compilations; values below 1 mean serial.
	Workers int
}

// Run is one compiled (architecture, circuit, strategy, seed) cell.
type Run struct {
	Arch       string
	SystemSize int
	Circuit    string
	Strategy   string
	Seed       int64
	Swaps      int
	Depth      int
}

// Runner executes sweeps against one router and one artifact store.
type Runner struct {
	rtr   router.Router
	store *cache.Store
	log   *logging.Logger
}

// NewRunner binds the collaborators. store and log may be nil; a nil store
// disables run caching.
func NewRunner(rtr router.Router, store *cache.Store, log *logging.Logger) *Runner {
	return &Runner{rtr: rtr, store: store, log: log}
}

// Sweep compiles every cell of the configured cross product and returns the
// runs in deterministic sweep order regardless of worker scheduling.
func (r *Runner) Sweep(ctx context.Context, cfg Config) ([]Run, error) {
	if len(cfg.Architectures) == 0 || len(cfg.Algorithms) == 0 ||
		len(cfg.Strategies) == 0 || len(cfg.Seeds) == 0 {
		return nil, ErrEmptyConfig
	}

	circs := make([]*circuit.Circuit, len(cfg.Algorithms))
	for i, algo := range cfg.Algorithms {
		circ, err := circuit.Generate(algo, cfg.Qubits)
		if err != nil {
			return nil, err
		}
		circs[i] = circ
	}

	type cell struct {
		arch     *topology.Architecture
		circ     *circuit.Circuit
		strategy string
		seed     int64
	}
	var cells []cell
	for _, arch := range cfg.Architectures {
		for _, circ := range circs {
			for _, strategy := range cfg.Strategies {
				for _, seed := range cfg.Seeds {
					cells = append(cells, cell{arch, circ, strategy, seed})
				}
			}
		}
	}

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	// One slot per cell: workers never contend and the output order is the
	// enumeration order above.
	runs := make([]Run, len(cells))
	grp, gctx := errgroup.WithContext(ctx)
	grp.SetLimit(workers)
	for i, c := range cells {
		slot, c := &runs[i], c
		grp.Go(func() error {
			run, err := r.compileCell(gctx, c.arch, c.circ, c.strategy, c.seed, cfg)
			if err != nil {
				return err
			}
			*slot = run

			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	return runs, nil
}

// compileCell serves one cell from the run cache or compiles and caches it.
func (r *Runner) compileCell(ctx context.Context, arch *topology.Architecture,
	circ *circuit.Circuit, strategy string, seed int64, cfg Config) (Run, error) {
	key := cache.Key{
		Kind:       strategy,
		PhysQubits: arch.SystemSize,
		Circuit:    circ.Name,
		Arch:       arch.Name,
		Seed:       seed,
	}
	var run Run
	if r.store.Get(key, &run) {
		return run, nil
	}

	prov, err := r.provider(strategy, circ, arch, seed, cfg.Workers)
	if err != nil {
		return Run{}, err
	}
	out, err := compiler.New(arch, r.rtr, r.log).Compile(ctx, circ, compiler.Job{
		Provider: prov,
		OptLevel: cfg.OptLevel,
		Seed:     seed,
	})
	if err != nil {
		return Run{}, err
	}

	run = Run{
		Arch:       arch.Name,
		SystemSize: arch.SystemSize,
		Circuit:    circ.Name,
		Strategy:   strategy,
		Seed:       seed,
		Swaps:      out.Swaps(),
		Depth:      out.Depth,
	}
	if err = r.store.Put(key, run); err != nil && r.log != nil {
		r.log.Warningf("bench: caching %s failed: %v", key.Bytes(), err)
	}

	return run, nil
}

// provider instantiates the named strategy for one cell.
func (r *Runner) provider(strategy string, circ *circuit.Circuit,
	arch *topology.Architecture, seed int64, workers int) (layout.Provider, error) {
	switch strategy {
	case layout.NameRandom:
		return layout.NewSeededRandom(circ.NumQubits, arch.SystemSize, seed)
	case place.MethodLine, place.MethodGraph, place.MethodTrivial, place.MethodSabre:
		return layout.NewPlacement(strategy, circ, arch.Couplings(), arch.SystemSize)
	case layout.NameBest, layout.NameWorst:
		req := search.Request{
			Circuit:    circ,
			Coupling:   arch.Couplings(),
			PhysQubits: arch.SystemSize,
			Arch:       arch.Name,
			Seed:       seed,
		}
		s := search.New(r.rtr, r.store, workers, r.log)
		if strategy == layout.NameBest {
			return layout.NewBest(s, req)
		}

		return layout.NewWorst(s, req)
	default:
		return nil, fmt.Errorf("%q: %w", strategy, ErrUnknownStrategy)
	}
}
