package place

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/qlayout/circuit"
)

// Sentinel errors for placement.
var (
	// ErrUnknownMethod indicates an unsupported placement-method name.
	ErrUnknownMethod = errors.New("place: unknown placement method")
	// ErrTooFewQubits indicates the device has fewer physical qubits than
	// the circuit has virtual qubits.
	ErrTooFewQubits = errors.New("place: circuit does not fit device")
)

// Canonical placement-method names.
const (
	MethodLine    = "LinePlacement"
	MethodGraph   = "GraphPlacement"
	MethodTrivial = "TrivialLayout"
	MethodSabre   = "SabreLayout"
)

// Methods lists every supported method name in reporting order.
var Methods = []string{MethodLine, MethodGraph, MethodTrivial, MethodSabre}

// Engine computes a virtual layout: entry i is the physical qubit assigned
// to virtual qubit i. Engines are pure and deterministic per input.
type Engine interface {
	// Place maps the circuit's virtual qubits onto device nodes of the
	// coupling graph. The returned slice has length circ.NumQubits with
	// distinct physical indices.
	Place(circ *circuit.Circuit, coupling [][2]int) ([]int, error)
}

// For returns the engine registered under the given method name, or
// ErrUnknownMethod for anything outside the supported set.
func For(method string) (Engine, error) {
	switch method {
	case MethodLine:
		return linePlacement{}, nil
	case MethodGraph:
		return graphPlacement{}, nil
	case MethodTrivial:
		return trivialLayout{}, nil
	case MethodSabre:
		return sabreLayout{}, nil
	default:
		return nil, fmt.Errorf("%q: %w", method, ErrUnknownMethod)
	}
}

// adjacency builds neighbor lists from the coupling-edge list; the node
// count is one past the highest referenced index. Neighbor order follows
// edge order, so placements stay deterministic.
func adjacency(coupling [][2]int) [][]int {
	n := 0
	for _, e := range coupling {
		if e[0]+1 > n {
			n = e[0] + 1
		}
		if e[1]+1 > n {
			n = e[1] + 1
		}
	}
	adj := make([][]int, n)
	for _, e := range coupling {
		adj[e[0]] = append(adj[e[0]], e[1])
	}

	return adj
}

// checkFits rejects circuits larger than the device.
func checkFits(circ *circuit.Circuit, numPhys int) error {
	if circ.NumQubits > numPhys {
		return fmt.Errorf("%d virtual vs %d physical qubits: %w",
			circ.NumQubits, numPhys, ErrTooFewQubits)
	}

	return nil
}
