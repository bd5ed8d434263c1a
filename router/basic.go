package router

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/qlayout/circuit"
	"github.com/katalvlaran/qlayout/place"
)

// BasicRouter is the deterministic reference router: it applies the initial
// layout, then executes gates in order, moving qubits toward each other
// along shortest paths and inserting a SWAP per hop. Ties among equally
// short hops are broken by the seeded RNG, so results are reproducible per
// (circuit, coupling, layout, seed).
type BasicRouter struct{}

// NewBasicRouter returns the reference router.
func NewBasicRouter() *BasicRouter {
	return &BasicRouter{}
}

// Route implements Router.
// Complexity: O(V*(V+E)) for the distance tables plus O(G*D) routing, where
// D is the graph diameter.
func (r *BasicRouter) Route(ctx context.Context, circ *circuit.Circuit, coupling [][2]int, opts Options) (Result, error) {
	if err := circ.Validate(); err != nil {
		return Result{}, err
	}

	adj := neighborLists(coupling)
	n := len(adj)
	if circ.NumQubits > n {
		return Result{}, fmt.Errorf("%d virtual qubits on %d physical: %w",
			circ.NumQubits, n, ErrBadLayout)
	}

	dist := make([][]int, n)
	for i := 0; i < n; i++ {
		dist[i] = hopDistances(adj, i)
	}

	v2p, err := initialLayout(circ, coupling, n, opts)
	if err != nil {
		return Result{}, err
	}
	p2v := make([]int, n)
	for i := range p2v {
		p2v[i] = -1
	}
	for v, p := range v2p {
		p2v[p] = v
	}

	rng := rand.New(rand.NewSource(opts.Seed))

	routed := make([]circuit.Gate, 0, len(circ.Gates))
	for _, g := range circ.Gates {
		if err = ctx.Err(); err != nil {
			return Result{}, err
		}

		if len(g.Qubits) != 2 {
			phys := make([]int, len(g.Qubits))
			for i, q := range g.Qubits {
				phys[i] = v2p[q]
			}
			routed = append(routed, circuit.Gate{Name: g.Name, Qubits: phys})
			continue
		}

		u, v := g.Qubits[0], g.Qubits[1]
		pu, pv := v2p[u], v2p[v]
		if dist[pu][pv] < 0 {
			return Result{}, fmt.Errorf("no path between physical qubits %d and %d: %w",
				pu, pv, ErrDisconnected)
		}

		// Walk u's qubit toward v's, one SWAP per hop, until coupled.
		for dist[pu][pv] > 1 {
			w := nextHop(adj, dist, pu, pv, rng)
			routed = append(routed, circuit.Gate{Name: SwapGate, Qubits: []int{pu, w}})

			displaced := p2v[w]
			v2p[u] = w
			if displaced >= 0 {
				v2p[displaced] = pu
			}
			p2v[pu], p2v[w] = displaced, u
			pu = w
		}
		routed = append(routed, circuit.Gate{Name: g.Name, Qubits: []int{pu, pv}})
	}

	if opts.OptLevel > 0 {
		routed = cancelAdjacentInverses(routed)
	}

	counts := make(map[string]int, 8)
	for _, g := range routed {
		counts[g.Name]++
	}
	physCirc := circuit.Circuit{NumQubits: n, Gates: routed}

	return Result{GateCounts: counts, Depth: physCirc.Depth()}, nil
}

// initialLayout resolves the virtual-to-physical assignment per the Options
// contract: a named method wins over an explicit layout, and neither means
// the identity assignment.
func initialLayout(circ *circuit.Circuit, coupling [][2]int, n int, opts Options) ([]int, error) {
	if opts.Method != "" {
		eng, err := place.For(opts.Method)
		if err != nil {
			return nil, err
		}

		return eng.Place(circ, coupling)
	}

	if opts.InitialLayout == nil {
		v2p := make([]int, circ.NumQubits)
		for i := range v2p {
			v2p[i] = i
		}

		return v2p, nil
	}

	if len(opts.InitialLayout) < circ.NumQubits {
		return nil, fmt.Errorf("layout length %d < %d virtual qubits: %w",
			len(opts.InitialLayout), circ.NumQubits, ErrBadLayout)
	}
	seen := make(map[int]bool, len(opts.InitialLayout))
	for _, p := range opts.InitialLayout {
		if p < 0 || p >= n {
			return nil, fmt.Errorf("physical qubit %d outside [0,%d): %w", p, n, ErrBadLayout)
		}
		if seen[p] {
			return nil, fmt.Errorf("physical qubit %d assigned twice: %w", p, ErrBadLayout)
		}
		seen[p] = true
	}

	v2p := make([]int, circ.NumQubits)
	copy(v2p, opts.InitialLayout[:circ.NumQubits])

	return v2p, nil
}

// nextHop picks a neighbor of pu one hop closer to pv. When several
// neighbors qualify the seeded RNG chooses among them; neighbor order is
// fixed by coupling-edge order, so the choice is reproducible per seed.
func nextHop(adj [][]int, dist [][]int, pu, pv int, rng *rand.Rand) int {
	var candidates []int
	for _, w := range adj[pu] {
		if dist[w][pv] == dist[pu][pv]-1 {
			candidates = append(candidates, w)
		}
	}
	if len(candidates) == 1 {
		return candidates[0]
	}

	return candidates[rng.Intn(len(candidates))]
}

// cancelAdjacentInverses drops immediately consecutive identical two-qubit
// gates (CX and SWAP are self-inverse), the single peephole applied above
// optimization level 0.
func cancelAdjacentInverses(gates []circuit.Gate) []circuit.Gate {
	out := make([]circuit.Gate, 0, len(gates))
	for _, g := range gates {
		if len(out) > 0 && len(g.Qubits) == 2 && sameGate(out[len(out)-1], g) {
			out = out[:len(out)-1]
			continue
		}
		out = append(out, g)
	}

	return out
}

// sameGate reports whether two gates are the identical two-qubit operation.
func sameGate(a, b circuit.Gate) bool {
	return a.Name == b.Name && len(a.Qubits) == 2 && len(b.Qubits) == 2 &&
		a.Qubits[0] == b.Qubits[0] && a.Qubits[1] == b.Qubits[1]
}

// neighborLists builds adjacency lists from the coupling-edge list.
func neighborLists(coupling [][2]int) [][]int {
	n := 0
	for _, e := range coupling {
		if e[0]+1 > n {
			n = e[0] + 1
		}
		if e[1]+1 > n {
			n = e[1] + 1
		}
	}
	adj := make([][]int, n)
	for _, e := range coupling {
		adj[e[0]] = append(adj[e[0]], e[1])
	}

	return adj
}

// hopDistances is a BFS from src; unreachable nodes get -1.
func hopDistances(adj [][]int, src int) []int {
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
