// qlayout-bench sweeps layout strategies across device topologies and
// benchmark circuits, then reports the routed SWAP and depth statistics.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/qlayout/bench"
	"github.com/katalvlaran/qlayout/cache"
	"github.com/katalvlaran/qlayout/circuit"
	"github.com/katalvlaran/qlayout/logger"
	"github.com/katalvlaran/qlayout/router"
	"github.com/katalvlaran/qlayout/topology"
)

// ErrBadArchSpec indicates a malformed --arch value.
var ErrBadArchSpec = errors.New("architecture spec must be family:dims, e.g. line:6, grid:2x3, heavy_hex:16")

// Shared command flags.
var (
	logLevelFlag = cli.StringFlag{
		Name:  "log-level",
		Usage: "logging level (debug, info, notice, warning, error)",
		Value: "info",
	}
	cacheDirFlag = cli.StringFlag{
		Name:  "cache-dir",
		Usage: "directory of the on-disk artifact cache; empty runs cacheless",
	}
	workersFlag = cli.IntFlag{
		Name:  "workers",
		Usage: "concurrent compilations and search workers",
		Value: runtime.NumCPU(),
	}
	qubitsFlag = cli.IntFlag{
		Name:  "qubits",
		Usage: "circuit width shared by every run",
		Value: 4,
	}
	optLevelFlag = cli.IntFlag{
		Name:  "opt-level",
		Usage: "router optimization level",
		Value: 0,
	}
	archFlag = cli.StringSliceFlag{
		Name:  "arch",
		Usage: "device topology as family:dims (line:N, grid:RxC, square_grid:N, heavy_hex:N, rigetti_rings:RxC)",
		Value: cli.NewStringSlice("line:4"),
	}
	algoFlag = cli.StringSliceFlag{
		Name:  "algo",
		Usage: "benchmark circuit family (dj, ghz, grover, qaoa, vqe)",
		Value: cli.NewStringSlice(string(circuit.GHZ)),
	}
	layoutFlag = cli.StringSliceFlag{
		Name:  "layout",
		Usage: "layout strategies to benchmark",
		Value: cli.NewStringSlice(bench.Strategies...),
	}
	seedFlag = cli.Int64SliceFlag{
		Name:  "seed",
		Usage: "transpiler seeds; each adds one run per cell",
		Value: cli.NewInt64Slice(1, 2, 3),
	}
	chartFlag = cli.StringFlag{
		Name:  "chart",
		Usage: "output path of the HTML bar chart",
		Value: "qlayout_report.html",
	}
)

// RunCommand executes the sweep and prints the summary table.
var RunCommand = cli.Command{
	Action: runAction,
	Name:   "run",
	Usage:  "sweep layout strategies and print the summary table",
	Flags: []cli.Flag{
		&logLevelFlag,
		&cacheDirFlag,
		&workersFlag,
		&qubitsFlag,
		&optLevelFlag,
		&archFlag,
		&algoFlag,
		&layoutFlag,
		&seedFlag,
	},
	Description: "Every architecture is crossed with every circuit family, layout strategy and seed; results are cached per run.",
}

// ReportCommand replays the sweep (from cache where possible) and renders
// the chart alongside the table.
var ReportCommand = cli.Command{
	Action: reportAction,
	Name:   "report",
	Usage:  "replay the sweep and render the HTML chart",
	Flags: []cli.Flag{
		&logLevelFlag,
		&cacheDirFlag,
		&workersFlag,
		&qubitsFlag,
		&optLevelFlag,
		&archFlag,
		&algoFlag,
		&layoutFlag,
		&seedFlag,
		&chartFlag,
	},
}

// App is the qlayout-bench command tree.
var App = cli.App{
	Name:     "qlayout-bench",
	HelpName: "qlayout-bench",
	Usage:    "benchmark initial-qubit-layout strategies",
	Commands: []*cli.Command{
		&RunCommand,
		&ReportCommand,
	},
}

func main() {
	if err := App.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func runAction(ctx *cli.Context) error {
	sums, err := sweep(ctx)
	if err != nil {
		return err
	}
	bench.WriteTable(os.Stdout, sums)

	return nil
}

func reportAction(ctx *cli.Context) error {
	sums, err := sweep(ctx)
	if err != nil {
		return err
	}
	bench.WriteTable(os.Stdout, sums)

	return bench.WriteChart(ctx.String(chartFlag.Name), sums)
}

// sweep assembles the config from flags, runs it, and aggregates the runs.
func sweep(ctx *cli.Context) ([]bench.Summary, error) {
	lg := logger.NewLogger(ctx.String(logLevelFlag.Name), "QLayoutBench")

	var store *cache.Store
	if dir := ctx.String(cacheDirFlag.Name); dir != "" {
		var err error
		if store, err = cache.Open(dir, lg); err != nil {
			return nil, err
		}
		defer func() {
			if err := store.Close(); err != nil {
				lg.Warningf("closing cache: %v", err)
			}
		}()
	}

	cfg := bench.Config{
		Strategies: ctx.StringSlice(layoutFlag.Name),
		Seeds:      ctx.Int64Slice(seedFlag.Name),
		Qubits:     ctx.Int(qubitsFlag.Name),
		OptLevel:   ctx.Int(optLevelFlag.Name),
		Workers:    ctx.Int(workersFlag.Name),
	}
	for _, spec := range ctx.StringSlice(archFlag.Name) {
		arch, err := parseArch(spec)
		if err != nil {
			return nil, err
		}
		cfg.Architectures = append(cfg.Architectures, arch)
	}
	for _, name := range ctx.StringSlice(algoFlag.Name) {
		cfg.Algorithms = append(cfg.Algorithms, circuit.Algorithm(name))
	}

	lg.Noticef("sweeping %d architectures x %d circuits x %d strategies x %d seeds",
		len(cfg.Architectures), len(cfg.Algorithms), len(cfg.Strategies), len(cfg.Seeds))
	runs, err := bench.NewRunner(router.NewBasicRouter(), store, lg).Sweep(ctx.Context, cfg)
	if err != nil {
		return nil, err
	}

	return bench.Aggregate(runs), nil
}

// parseArch builds a topology from its family:dims spec.
func parseArch(spec string) (*topology.Architecture, error) {
	family, dims, ok := strings.Cut(spec, ":")
	if !ok {
		return nil, fmt.Errorf("%q: %w", spec, ErrBadArchSpec)
	}

	switch family {
	case topology.NameLine, topology.NameSquareGrid, topology.NameHeavyHex:
		n, err := strconv.Atoi(dims)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", spec, ErrBadArchSpec)
		}
		switch family {
		case topology.NameLine:
			return topology.NewLine(n)
		case topology.NameSquareGrid:
			return topology.NewSquareGrid(n)
		default:
			return topology.NewHeavyHex(n)
		}
	case topology.NameGrid, topology.NameRigettiRings:
		rows, cols, err := parseRxC(dims)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", spec, ErrBadArchSpec)
		}
		if family == topology.NameGrid {
			return topology.NewGrid(rows*cols, rows, cols)
		}

		return topology.NewRigettiRings(rows*cols*8, rows, cols)
	default:
		return nil, fmt.Errorf("%q: %w", spec, ErrBadArchSpec)
	}
}

func parseRxC(dims string) (int, int, error) {
	r, c, ok := strings.Cut(dims, "x")
	if !ok {
		return 0, 0, fmt.Errorf("want RxC, got %q", dims)
	}
	rows, err := strconv.Atoi(r)
	if err != nil {
		return 0, 0, err
	}
	cols, err := strconv.Atoi(c)
	if err != nil {
		return 0, 0, err
	}

	return rows, cols, nil
}
