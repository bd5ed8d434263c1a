package circuit

import "fmt"

// Algorithm tags the benchmark circuit families available to the harness.
type Algorithm string

const (
	// DeutschJozsa is a Deutsch-Jozsa style circuit with a balanced oracle:
	// every data qubit interacts with the last (ancilla) qubit.
	DeutschJozsa Algorithm = "dj"
	// GHZ prepares an n-qubit GHZ state through a CX chain.
	GHZ Algorithm = "ghz"
	// Grover is a Grover-style iteration: oracle plus diffusion entangler.
	Grover Algorithm = "grover"
	// QAOA is a single QAOA layer over a ring interaction graph.
	QAOA Algorithm = "qaoa"
	// VQE is a hardware-efficient ansatz layer with linear entanglement.
	VQE Algorithm = "vqe"
)

// Algorithms lists every supported family in reporting order.
var Algorithms = []Algorithm{DeutschJozsa, GHZ, Grover, QAOA, VQE}

// Generate returns the benchmark circuit of the given family over n qubits.
// Circuits are deterministic per (algo, n) and carry no measurements.
// Returns ErrUnknownAlgorithm for an unrecognized tag and ErrBadQubitCount
// when n is below the family minimum (2 for every family).
func Generate(algo Algorithm, n int) (*Circuit, error) {
	if n < 2 {
		return nil, fmt.Errorf("%s with n=%d: %w", algo, n, ErrBadQubitCount)
	}

	c := &Circuit{Name: fmt.Sprintf("%s_%d", algo, n), NumQubits: n}
	switch algo {
	case DeutschJozsa:
		deutschJozsa(c, n)
	case GHZ:
		ghz(c, n)
	case Grover:
		grover(c, n)
	case QAOA:
		qaoa(c, n)
	case VQE:
		vqe(c, n)
	default:
		return nil, fmt.Errorf("%q: %w", algo, ErrUnknownAlgorithm)
	}

	return c, nil
}

// deutschJozsa emits H on all qubits, a balanced oracle (CX from every data
// qubit into the ancilla n-1), and the closing H layer on the data register.
func deutschJozsa(c *Circuit, n int) {
	c.add("x", n-1)
	for q := 0; q < n; q++ {
		c.add("h", q)
	}
	for q := 0; q < n-1; q++ {
		c.add("cx", q, n-1)
	}
	for q := 0; q < n-1; q++ {
		c.add("h", q)
	}
}

// ghz emits H on qubit 0 followed by the CX chain 0->1->...->n-1.
func ghz(c *Circuit, n int) {
	c.add("h", 0)
	for q := 0; q < n-1; q++ {
		c.add("cx", q, q+1)
	}
}

// grover emits one Grover iteration: uniform superposition, a multi-control
// style oracle decomposed into CX pairs against the last qubit, and the
// diffusion operator's entangling skeleton.
func grover(c *Circuit, n int) {
	for q := 0; q < n; q++ {
		c.add("h", q)
	}
	for q := 0; q < n-1; q++ {
		c.add("cx", q, n-1)
	}
	for q := 0; q < n; q++ {
		c.add("h", q)
		c.add("x", q)
	}
	for q := 0; q < n-1; q++ {
		c.add("cx", q, n-1)
	}
	for q := 0; q < n; q++ {
		c.add("x", q)
		c.add("h", q)
	}
}

// qaoa emits one cost layer over the ring (i, i+1 mod n) followed by the
// mixer rotations. Each ZZ term is the standard CX-RZ-CX decomposition.
func qaoa(c *Circuit, n int) {
	for q := 0; q < n; q++ {
		c.add("h", q)
	}
	for q := 0; q < n; q++ {
		u, v := q, (q+1)%n
		c.add("cx", u, v)
		c.add("rz", v)
		c.add("cx", u, v)
	}
	for q := 0; q < n; q++ {
		c.add("rx", q)
	}
}

// vqe emits one hardware-efficient ansatz layer: single-qubit rotations and
// a linear CX entangler, then the closing rotation layer.
func vqe(c *Circuit, n int) {
	for q := 0; q < n; q++ {
		c.add("ry", q)
		c.add("rz", q)
	}
	for q := 0; q < n-1; q++ {
		c.add("cx", q, q+1)
	}
	for q := 0; q < n; q++ {
		c.add("ry", q)
	}
}

// add appends a gate by mnemonic and operand indices.
func (c *Circuit) add(name string, qubits ...int) {
	c.Gates = append(c.Gates, Gate{Name: name, Qubits: qubits})
}
