package place

import "github.com/katalvlaran/qlayout/circuit"

// sabreLayout is a routing-aware greedy placement: like graphPlacement, but
// interactions are weighted by how early they occur in the gate list, so the
// front of the circuit dominates the embedding the way a SABRE-style forward
// pass would.
type sabreLayout struct{}

func (sabreLayout) Place(circ *circuit.Circuit, coupling [][2]int) ([]int, error) {
	adj := adjacency(coupling)
	n := len(adj)
	if err := checkFits(circ, n); err != nil {
		return nil, err
	}

	k := circ.NumQubits
	pairs := circ.TwoQubitGates()

	// Scaled weights: gate t of G contributes G-t, so earlier interactions
	// carry more weight than later ones.
	w := make([][]int, k)
	for i := range w {
		w[i] = make([]int, k)
	}
	for t, g := range pairs {
		w[g[0]][g[1]] += len(pairs) - t
		w[g[1]][g[0]] += len(pairs) - t
	}

	dist := make([][]int, n)
	for i := 0; i < n; i++ {
		dist[i] = bfsDistances(adj, i)
	}

	layout := make([]int, k)
	for i := range layout {
		layout[i] = -1
	}
	used := make([]bool, n)
	for placed := 0; placed < k; placed++ {
		v := nextVirtual(w, layout)
		p := bestNode(v, w, layout, dist, adj, used)
		layout[v] = p
		used[p] = true
	}

	return layout, nil
}
