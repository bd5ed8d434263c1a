package place

import "github.com/katalvlaran/qlayout/circuit"

// graphPlacement greedily embeds the circuit's interaction graph into the
// device graph: the most-interacting virtual qubit lands on the
// highest-degree physical node, and every following qubit takes the free
// node minimizing the summed distance to its already-placed partners.
type graphPlacement struct{}

func (graphPlacement) Place(circ *circuit.Circuit, coupling [][2]int) ([]int, error) {
	adj := adjacency(coupling)
	n := len(adj)
	if err := checkFits(circ, n); err != nil {
		return nil, err
	}

	k := circ.NumQubits
	w := interactionWeights(circ.TwoQubitGates(), k)

	// All-pairs hop distances; devices are small enough for the V*(V+E) cost.
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

// nextVirtual picks the unplaced virtual qubit with the most interaction
// weight toward already-placed qubits, falling back to total weight for the
// first pick. Ties break toward smaller indices.
func nextVirtual(w [][]int, layout []int) int {
	best, bestScore := -1, -1
	for v := range layout {
		if layout[v] >= 0 {
			continue
		}
		score := 0
		anchored := false
		for u := range layout {
			if layout[u] >= 0 && w[v][u] > 0 {
				score += w[v][u]
				anchored = true
			}
		}
		if !anchored {
			// No placed partner yet: score by total interaction weight.
			for u := range w[v] {
				score += w[v][u]
			}
		}
		if score > bestScore {
			best, bestScore = v, score
		}
	}

	return best
}

// bestNode picks the free physical node for virtual qubit v: minimal summed
// distance to placed partners, highest degree as the tie-breaker, smallest
// index last. Without placed partners it is simply the highest-degree free
// node.
func bestNode(v int, w [][]int, layout []int, dist [][]int, adj [][]int, used []bool) int {
	best, bestCost, bestDeg := -1, 0, -1
	for p := range used {
		if used[p] {
			continue
		}
		cost := 0
		for u := range layout {
			if layout[u] >= 0 && w[v][u] > 0 {
				cost += w[v][u] * dist[p][layout[u]]
			}
		}
		deg := len(adj[p])
		if best < 0 || cost < bestCost || (cost == bestCost && deg > bestDeg) {
			best, bestCost, bestDeg = p, cost, deg
		}
	}

	return best
}
