package topology

import (
	"fmt"
	"math"
)

// NewGrid returns the rows x cols rectangular lattice. Physical qubits are
// numbered row-major 0..rows*cols-1; edges connect horizontal and vertical
// neighbors, both directions. The declared size must equal rows*cols.
// Returns ErrInvalidSystemSize on any mismatch.
// Complexity: O(rows*cols).
func NewGrid(size, rows, cols int) (*Architecture, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%s: rows=%d cols=%d (each must be >= 1): %w",
			NameGrid, rows, cols, ErrInvalidSystemSize)
	}
	if size != rows*cols {
		return nil, fmt.Errorf("%s: size=%d does not match %dx%d grid: %w",
			NameGrid, size, rows, cols, ErrInvalidSystemSize)
	}

	edges := gridEdges(rows, cols)

	return newArchitecture(NameGrid, size, edges)
}

// NewSquareGrid returns the side x side lattice for a perfect-square size.
// Non-square sizes are a configuration error.
// Complexity: O(size).
func NewSquareGrid(size int) (*Architecture, error) {
	if size < 1 {
		return nil, fmt.Errorf("%s: size=%d: %w", NameSquareGrid, size, ErrInvalidSystemSize)
	}
	side := int(math.Sqrt(float64(size)))
	if side*side != size {
		return nil, fmt.Errorf("%s: size=%d is not a perfect square: %w",
			NameSquareGrid, size, ErrInvalidSystemSize)
	}

	edges := gridEdges(side, side)

	return newArchitecture(NameSquareGrid, size, edges)
}

// gridEdges emits lattice links in row-major scan order: for each cell its
// right neighbor first, then its bottom neighbor, both directions each.
func gridEdges(rows, cols int) []Edge {
	at := func(r, c int) int { return r*cols + c }

	edges := make([]Edge, 0, 4*rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				edges = link(edges, at(r, c), at(r, c+1))
			}
			if r+1 < rows {
				edges = link(edges, at(r, c), at(r+1, c))
			}
		}
	}

	return edges
}
