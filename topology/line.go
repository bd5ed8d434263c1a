package topology

import "fmt"

// NewLine returns the path topology 0-1-...-size-1.
// Both directions of every link are emitted adjacently, so a size-n line
// yields 2*(n-1) directed edges.
// Returns ErrInvalidSystemSize for size < 1.
// Complexity: O(size).
func NewLine(size int) (*Architecture, error) {
	if size < 1 {
		return nil, fmt.Errorf("%s: size=%d: %w", NameLine, size, ErrInvalidSystemSize)
	}

	edges := make([]Edge, 0, 2*(size-1))
	for i := 0; i < size-1; i++ {
		edges = link(edges, i, i+1)
	}

	return newArchitecture(NameLine, size, edges)
}
