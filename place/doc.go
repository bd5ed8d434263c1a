// Package place hosts the initial-placement engines the harness consumes as
// opaque layout providers. Each engine maps circuit qubits onto device nodes
// given only the coupling-edge list; callers translate the result into the
// virtual-layout sequence ordered by virtual-qubit index.
//
// Supported method names: LinePlacement, GraphPlacement, TrivialLayout,
// SabreLayout. Any other name is a configuration error (ErrUnknownMethod).
package place
