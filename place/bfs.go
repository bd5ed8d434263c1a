package place

// bfsDistances returns hop distances from src over the neighbor lists;
// unreachable nodes get -1.
// Complexity: O(V+E).
func bfsDistances(adj [][]int, src int) []int {
	dist := make([]int, len(adj))
	for i := range dist {
		dist[i] = -1
	}
	dist[src] = 0
	queue := []int{src}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range adj[u] {
			if dist[v] < 0 {
				dist[v] = dist[u] + 1
				queue = append(queue, v)
			}
		}
	}

	return dist
}

// interactionWeights counts two-qubit interactions per virtual qubit pair.
func interactionWeights(pairs [][2]int, n int) [][]int {
	w := make([][]int, n)
	for i := range w {
		w[i] = make([]int, n)
	}
	for _, g := range pairs {
		w[g[0]][g[1]]++
		w[g[1]][g[0]]++
	}

	return w
}
