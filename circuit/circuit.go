// Package circuit provides the minimal gate-list circuit representation the
// harness feeds to routers, together with deterministic generators for the
// benchmark circuit families used throughout the experiments.
//
// The representation is deliberately structural: gates are named operations
// over qubit indices, with no numerical gate semantics attached. Routing only
// needs to know which qubit pairs interact and in which order.
package circuit

import (
	"errors"
	"fmt"
)

// Sentinel errors for circuit construction.
var (
	// ErrBadQubitCount indicates a generator was asked for fewer qubits
	// than its family supports.
	ErrBadQubitCount = errors.New("circuit: qubit count too small")
	// ErrUnknownAlgorithm indicates an unrecognized benchmark family tag.
	ErrUnknownAlgorithm = errors.New("circuit: unknown algorithm")
	// ErrQubitOutOfRange indicates a gate references a qubit index outside
	// [0, NumQubits).
	ErrQubitOutOfRange = errors.New("circuit: qubit index out of range")
)

// Gate is a single named operation over one or more qubit indices.
type Gate struct {
	// Name is the lowercase gate mnemonic, e.g. "h", "x", "cx", "rz".
	Name string
	// Qubits lists the operand qubit indices in application order.
	Qubits []int
}

// Circuit is an ordered gate list over NumQubits virtual qubits.
// Measurement operations are never part of a benchmark circuit; generators
// strip them by construction.
type Circuit struct {
	// Name identifies the circuit for caching and reporting, e.g. "dj_4".
	Name string
	// NumQubits is the number of virtual qubits referenced by the gates.
	NumQubits int
	// Gates is the ordered operation list.
	Gates []Gate
}

// Validate checks that every gate references only qubits in [0, NumQubits).
// Complexity: O(G) over the gate count.
func (c *Circuit) Validate() error {
	for i, g := range c.Gates {
		for _, q := range g.Qubits {
			if q < 0 || q >= c.NumQubits {
				return fmt.Errorf("gate %d (%s) references qubit %d of %d: %w",
					i, g.Name, q, c.NumQubits, ErrQubitOutOfRange)
			}
		}
	}

	return nil
}

// TwoQubitGates returns the ordered list of two-qubit interactions as
// (control, target) index pairs. Single-qubit gates do not constrain routing
// and are skipped.
// Complexity: O(G).
func (c *Circuit) TwoQubitGates() [][2]int {
	pairs := make([][2]int, 0, len(c.Gates))
	for _, g := range c.Gates {
		if len(g.Qubits) == 2 {
			pairs = append(pairs, [2]int{g.Qubits[0], g.Qubits[1]})
		}
	}

	return pairs
}

// Depth returns the length of the longest dependency chain: each gate is
// scheduled one level after the latest level among its operand qubits.
// Complexity: O(G) time, O(NumQubits) space.
func (c *Circuit) Depth() int {
	level := make([]int, c.NumQubits)
	depth := 0
	for _, g := range c.Gates {
		next := 0
		for _, q := range g.Qubits {
			if level[q] > next {
				next = level[q]
			}
		}
		next++
		for _, q := range g.Qubits {
			level[q] = next
		}
		if next > depth {
			depth = next
		}
	}

	return depth
}
