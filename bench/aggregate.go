package bench

import "gonum.org/v1/gonum/stat"

// Summary reduces the seed dimension of one (architecture, circuit,
// strategy) group to its extremal and mean metrics.
type Summary struct {
	Arch     string
	Circuit  string
	Strategy string
	Runs     int
	// BestSwaps and WorstSwaps are the minimal and maximal SWAP counts seen
	// across the group's seeds.
	BestSwaps  int
	WorstSwaps int
	MeanSwaps  float64
	MeanDepth  float64
}

// Aggregate groups runs by (architecture, circuit, strategy) and reduces
// each group across its seeds. Groups appear in first-occurrence order, so a
// sweep's deterministic run order yields a deterministic report.
func Aggregate(runs []Run) []Summary {
	// Integer extrema are tracked as integers; the float slices exist only
	// for the mean.
	type group struct {
		best, worst   int
		swaps, depths []float64
	}
	type gkey struct {
		arch, circ, strategy string
	}

	var order []gkey
	groups := make(map[gkey]*group)
	for _, run := range runs {
		k := gkey{run.Arch, run.Circuit, run.Strategy}
		g, ok := groups[k]
		if !ok {
			g = &group{best: run.Swaps, worst: run.Swaps}
			groups[k] = g
			order = append(order, k)
		}
		if run.Swaps < g.best {
			g.best = run.Swaps
		}
		if run.Swaps > g.worst {
			g.worst = run.Swaps
		}
		g.swaps = append(g.swaps, float64(run.Swaps))
		g.depths = append(g.depths, float64(run.Depth))
	}

	sums := make([]Summary, 0, len(order))
	for _, k := range order {
		g := groups[k]
		sums = append(sums, Summary{
			Arch:       k.arch,
			Circuit:    k.circ,
			Strategy:   k.strategy,
			Runs:       len(g.swaps),
			BestSwaps:  g.best,
			WorstSwaps: g.worst,
			MeanSwaps:  stat.Mean(g.swaps, nil),
			MeanDepth:  stat.Mean(g.depths, nil),
		})
	}

	return sums
}
