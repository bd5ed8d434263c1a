// Package router defines the boundary to the gate-routing engine: given a
// circuit, a coupling-edge list, and either an explicit initial layout or a
// named placement method, a Router returns the routed circuit's gate-count
// histogram and depth.
//
// BasicRouter is the deterministic reference implementation shipped with the
// harness; external engines plug in behind the same interface.
package router

import (
	"context"
	"errors"

	"github.com/katalvlaran/qlayout/circuit"
)

// SwapGate is the histogram key of inserted SWAP operations.
const SwapGate = "swap"

// Sentinel errors for routing.
var (
	// ErrBadLayout indicates an initial layout that is too short, refers to
	// an out-of-range physical qubit, or repeats one.
	ErrBadLayout = errors.New("router: invalid initial layout")
	// ErrDisconnected indicates a two-qubit gate between qubits with no
	// connecting path in the coupling graph.
	ErrDisconnected = errors.New("router: coupling graph is disconnected")
)

// Options parameterizes a single routing call.
//
// InitialLayout and Method are mutually exclusive inputs: when Method is
// non-empty the router computes its own initial placement and any explicit
// layout is ignored. InitialLayout entry i is the physical qubit assigned to
// virtual qubit i; it may be longer than the circuit (a full permutation of
// physical indices), in which case the excess entries are unused.
type Options struct {
	InitialLayout []int
	Method        string
	// OptLevel 0 performs layout + routing only; higher levels may apply
	// post-routing gate cancellation.
	OptLevel int
	// Seed fixes the router's internal tie-breaking.
	Seed int64
}

// Result is the outcome of one routing call, immutable once produced.
type Result struct {
	// GateCounts maps gate name to occurrence count in the routed circuit.
	GateCounts map[string]int
	// Depth is the longest dependency chain of the routed circuit.
	Depth int
}

// Swaps returns the inserted SWAP-gate count, the primary cost metric.
func (r Result) Swaps() int {
	return r.GateCounts[SwapGate]
}

// Router routes a circuit onto a coupling graph.
type Router interface {
	// Route maps the circuit's virtual qubits onto the coupling graph per
	// opts and inserts the SWAP gates needed to execute every two-qubit
	// gate on coupled pairs.
	Route(ctx context.Context, circ *circuit.Circuit, coupling [][2]int, opts Options) (Result, error)
}
