package topology

import "fmt"

// ringSize is the number of physical qubits per Rigetti octagon ring.
const ringSize = 8

// Inter-ring attachment offsets. Within a row, a ring's qubits 2 and 3
// connect to the next ring's qubits 7 and 6; between rows, a ring's qubits
// 5 and 4 connect to the ring below at qubits 0 and 1.
var (
	rigettiRowLinks = [2][2]int{{2, 7}, {3, 6}}
	rigettiColLinks = [2][2]int{{5, 0}, {4, 1}}
)

// NewRigettiRings returns the rows x cols ring lattice. Each ring is an
// 8-qubit cycle; ring (r,c) occupies indices [(r*cols+c)*8, (r*cols+c)*8+8).
// The declared size must equal rows*cols*8, else a configuration error.
// Complexity: O(size).
func NewRigettiRings(size, rows, cols int) (*Architecture, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%s: rows=%d cols=%d (each must be >= 1): %w",
			NameRigettiRings, rows, cols, ErrInvalidSystemSize)
	}
	if size != rows*cols*ringSize {
		return nil, fmt.Errorf("%s: size=%d does not match %dx%d rings of %d qubits: %w",
			NameRigettiRings, size, rows, cols, ringSize, ErrInvalidSystemSize)
	}

	base := func(r, c int) int { return (r*cols + c) * ringSize }

	edges := make([]Edge, 0, 2*rows*cols*(ringSize+2))
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			b := base(r, c)
			// The octagon cycle.
			for i := 0; i < ringSize; i++ {
				edges = link(edges, b+i, b+(i+1)%ringSize)
			}
			// Cross-links to the next ring in the row.
			if c+1 < cols {
				nb := base(r, c+1)
				for _, lk := range rigettiRowLinks {
					edges = link(edges, b+lk[0], nb+lk[1])
				}
			}
			// Cross-links to the corresponding ring in the next row.
			if r+1 < rows {
				vb := base(r+1, c)
				for _, lk := range rigettiColLinks {
					edges = link(edges, b+lk[0], vb+lk[1])
				}
			}
		}
	}

	return newArchitecture(NameRigettiRings, size, edges)
}
