// Package topology generates hardware coupling maps for the device families
// benchmarked by the harness.
//
// An Architecture couples a family name, a physical qubit count, and an
// immutable symmetric coupling-edge list computed eagerly at construction.
// Supported families:
//
//   - Line:         qubits in a path
//   - Grid:         m x n rectangular lattice, row-major numbering
//   - SquareGrid:   Grid specialization for perfect-square sizes
//   - HeavyHex:     IBM-style heavy-hex devices for a fixed size set
//   - RigettiRings: rows of 8-qubit octagon rings with inter-ring links
//
// Invalid size/shape combinations are configuration errors: constructors
// refuse to produce a topology rather than emit an inconsistent one.
package topology
