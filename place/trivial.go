package place

import "github.com/katalvlaran/qlayout/circuit"

// trivialLayout assigns virtual qubit i to physical qubit i.
type trivialLayout struct{}

func (trivialLayout) Place(circ *circuit.Circuit, coupling [][2]int) ([]int, error) {
	if err := checkFits(circ, len(adjacency(coupling))); err != nil {
		return nil, err
	}

	layout := make([]int, circ.NumQubits)
	for i := range layout {
		layout[i] = i
	}

	return layout, nil
}
