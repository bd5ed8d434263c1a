package place

import "github.com/katalvlaran/qlayout/circuit"

// linePlacement orders the circuit's qubits into an interaction chain and
// lays the chain along a long simple path of the device graph, in the spirit
// of tket's LinePlacement. Virtual qubits that do not fit on the path spill
// onto the nearest free nodes.
type linePlacement struct{}

func (linePlacement) Place(circ *circuit.Circuit, coupling [][2]int) ([]int, error) {
	adj := adjacency(coupling)
	if err := checkFits(circ, len(adj)); err != nil {
		return nil, err
	}

	path := longPath(adj)
	order := chainOrder(circ)

	layout := make([]int, circ.NumQubits)
	used := make([]bool, len(adj))
	for i, v := range order {
		if i < len(path) {
			layout[v] = path[i]
			used[path[i]] = true
			continue
		}
		// Path exhausted: take the lowest-index free node closest to the
		// already-used region.
		layout[v] = nearestFree(adj, used)
		used[layout[v]] = true
	}

	return layout, nil
}

// longPath finds a long simple path with the classic double BFS sweep:
// farthest node from 0, then the shortest path to the node farthest from it.
// Ties break toward smaller indices for determinism.
// Complexity: O(V+E).
func longPath(adj [][]int) []int {
	u := farthest(adj, 0)
	dist, parent := bfsTree(adj, u)
	v := 0
	for i := range dist {
		if dist[i] > dist[v] {
			v = i
		}
	}
	// Walk parents back from v to u.
	var rev []int
	for at := v; at >= 0; at = parent[at] {
		rev = append(rev, at)
	}
	path := make([]int, len(rev))
	for i, node := range rev {
		path[len(rev)-1-i] = node
	}

	return path
}

// farthest returns the reachable node with the greatest hop distance from
// src, preferring smaller indices on ties.
func farthest(adj [][]int, src int) int {
	dist := bfsDistances(adj, src)
	best := src
	for i, d := range dist {
		if d > dist[best] {
			best = i
		}
	}

	return best
}

// bfsTree is bfsDistances plus parent pointers for path reconstruction.
func bfsTree(adj [][]int, src int) (dist, parent []int) {
	dist = make([]int, len(adj))
	parent = make([]int, len(adj))
	for i := range dist {
		dist[i] = -1
		parent[i] = -1
	}
	dist[src] = 0
	queue := []int{src}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range adj[u] {
			if dist[v] < 0 {
				dist[v] = dist[u] + 1
				parent[v] = u
				queue = append(queue, v)
			}
		}
	}

	return dist, parent
}

// chainOrder greedily orders virtual qubits into an interaction chain:
// start from an endpoint of the interaction graph (the interacting qubit
// with the least total weight), then repeatedly append the strongest
// unvisited partner of the chain tail. Starting at an endpoint keeps
// path-shaped interaction graphs intact when laid along a device path.
// Complexity: O(k^2) over the virtual qubit count.
func chainOrder(circ *circuit.Circuit) []int {
	k := circ.NumQubits
	w := interactionWeights(circ.TwoQubitGates(), k)

	total := make([]int, k)
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			total[i] += w[i][j]
		}
	}

	visited := make([]bool, k)
	order := make([]int, 0, k)
	cur := endpointIdx(total, visited)
	for cur >= 0 && len(order) < k {
		visited[cur] = true
		order = append(order, cur)
		next := maxIdx(w[cur], visited)
		if next < 0 || w[cur][next] == 0 {
			// Chain broke; restart from the next endpoint.
			next = endpointIdx(total, visited)
		}
		cur = next
	}

	return order
}

// endpointIdx returns the unvisited interacting qubit with the smallest
// total weight (smallest index on ties), falling back to the smallest
// unvisited index when no interacting qubit remains, or -1 when exhausted.
func endpointIdx(total []int, visited []bool) int {
	best := -1
	for i, v := range total {
		if visited[i] || v == 0 {
			continue
		}
		if best < 0 || v < total[best] {
			best = i
		}
	}
	if best >= 0 {
		return best
	}
	for i := range total {
		if !visited[i] {
			return i
		}
	}

	return -1
}

// maxIdx returns the unvisited index with the largest value, smallest index
// on ties, or -1 when all are visited.
func maxIdx(vals []int, visited []bool) int {
	best := -1
	for i, v := range vals {
		if visited[i] {
			continue
		}
		if best < 0 || v > vals[best] {
			best = i
		}
	}

	return best
}

// nearestFree returns the lowest-index unused node adjacent to the used
// region, falling back to the lowest-index free node on a fragmented device.
func nearestFree(adj [][]int, used []bool) int {
	for u := range adj {
		if !used[u] {
			continue
		}
		for _, v := range adj[u] {
			if !used[v] {
				return v
			}
		}
	}
	for v := range used {
		if !used[v] {
			return v
		}
	}

	return -1
}
