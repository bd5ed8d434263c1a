package bench

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"github.com/jedib0t/go-pretty/v6/table"
)

// WriteTable renders the summaries as a console table, one row per
// (architecture, circuit, strategy) group.
func WriteTable(w io.Writer, sums []Summary) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{
		"Architecture", "Circuit", "Strategy", "Runs",
		"Best swaps", "Mean swaps", "Worst swaps", "Mean depth",
	})
	for _, s := range sums {
		t.AppendRow(table.Row{
			s.Arch, s.Circuit, s.Strategy, s.Runs,
			s.BestSwaps, fmt.Sprintf("%.2f", s.MeanSwaps),
			s.WorstSwaps, fmt.Sprintf("%.2f", s.MeanDepth),
		})
	}
	t.Render()
}

// WriteChart renders the summaries as an HTML bar chart at path: one bar
// group per (architecture, circuit) pair, one series per strategy, bar
// height is the mean SWAP count over seeds.
func WriteChart(path string, sums []Summary) error {
	chart := newSwapChart(sums)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("bench: create chart %s: %w", path, err)
	}
	defer f.Close()

	if err = chart.Render(f); err != nil {
		return fmt.Errorf("bench: render chart %s: %w", path, err)
	}

	return nil
}

// newSwapChart builds the mean-SWAP bar chart.
func newSwapChart(sums []Summary) *charts.Bar {
	var labels []string
	labelAt := make(map[string]int)
	var strategies []string
	seenStrategy := make(map[string]bool)
	for _, s := range sums {
		label := s.Arch + "/" + s.Circuit
		if _, ok := labelAt[label]; !ok {
			labelAt[label] = len(labels)
			labels = append(labels, label)
		}
		if !seenStrategy[s.Strategy] {
			seenStrategy[s.Strategy] = true
			strategies = append(strategies, s.Strategy)
		}
	}

	series := make(map[string][]opts.BarData)
	for _, strategy := range strategies {
		series[strategy] = make([]opts.BarData, len(labels))
	}
	for _, s := range sums {
		series[s.Strategy][labelAt[s.Arch+"/"+s.Circuit]] = opts.BarData{Value: s.MeanSwaps}
	}

	chart := charts.NewBar()
	chart.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeChalk,
		}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Mean inserted SWAPs per layout strategy",
			Subtitle: "grouped by architecture and circuit",
		}),
	)
	chart.SetXAxis(labels)
	for _, strategy := range strategies {
		chart.AddSeries(strategy, series[strategy])
	}

	return chart
}
