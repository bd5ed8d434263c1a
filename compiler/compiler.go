// Package compiler adapts the harness to the routing engine: it binds one
// Architecture's coupling list to a Router and turns a circuit plus a layout
// strategy into routed gate counts and depth.
//
// A Job carries exactly one strategy input, either a layout.Provider or a
// router-native placement method name. Passing both is a configuration
// error, never a silent override.
package compiler

import (
	"context"
	"errors"
	"fmt"

	"github.com/op/go-logging"

	"github.com/katalvlaran/qlayout/circuit"
	"github.com/katalvlaran/qlayout/layout"
	"github.com/katalvlaran/qlayout/router"
	"github.com/katalvlaran/qlayout/topology"
)

// Sentinel errors for job validation.
var (
	// ErrStrategyConflict indicates a Job carrying both a Provider and a
	// Method.
	ErrStrategyConflict = errors.New("compiler: provider and method are mutually exclusive")
	// ErrNoStrategy indicates a Job carrying neither.
	ErrNoStrategy = errors.New("compiler: job names no layout strategy")
)

// Job describes one compilation: the layout strategy plus router knobs.
type Job struct {
	// Provider supplies an explicit initial layout.
	Provider layout.Provider
	// Method names a router-native placement instead; the router then
	// computes the initial layout itself.
	Method string
	// OptLevel and Seed pass through to the router unchanged.
	OptLevel int
	Seed     int64
}

// Outcome is one compiled run: the strategy that produced it, the initial
// layout actually used (nil when the router placed internally), and the
// routed metrics.
type Outcome struct {
	Strategy string
	Layout   []int
	router.Result
}

// Compiler routes circuits onto one fixed architecture.
type Compiler struct {
	arch *topology.Architecture
	rtr  router.Router
	log  *logging.Logger
}

// New binds an architecture and a router. log may be nil.
func New(arch *topology.Architecture, rtr router.Router, log *logging.Logger) *Compiler {
	return &Compiler{arch: arch, rtr: rtr, log: log}
}

// Compile routes circ under the job's strategy and returns the outcome.
func (c *Compiler) Compile(ctx context.Context, circ *circuit.Circuit, job Job) (Outcome, error) {
	if job.Provider != nil && job.Method != "" {
		return Outcome{}, fmt.Errorf("provider %q, method %q: %w",
			job.Provider.Name(), job.Method, ErrStrategyConflict)
	}
	if job.Provider == nil && job.Method == "" {
		return Outcome{}, ErrNoStrategy
	}

	opts := router.Options{OptLevel: job.OptLevel, Seed: job.Seed}
	out := Outcome{Strategy: job.Method}
	if job.Provider != nil {
		virt, err := job.Provider.VirtualLayout(ctx)
		if err != nil {
			return Outcome{}, fmt.Errorf("compiler: layout %q: %w", job.Provider.Name(), err)
		}
		opts.InitialLayout = virt
		out.Strategy = job.Provider.Name()
		out.Layout = virt
	} else {
		opts.Method = job.Method
	}

	res, err := c.rtr.Route(ctx, circ, c.arch.Couplings(), opts)
	if err != nil {
		return Outcome{}, fmt.Errorf("compiler: route %s on %s: %w", circ.Name, c.arch.Name, err)
	}
	out.Result = res
	c.debugf("%s on %s via %s: %d swaps, depth %d",
		circ.Name, c.arch.Name, out.Strategy, res.Swaps(), res.Depth)

	return out, nil
}

func (c *Compiler) debugf(format string, args ...any) {
	if c.log != nil {
		c.log.Debugf(format, args...)
	}
}
