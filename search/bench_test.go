package search_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/qlayout/circuit"
	"github.com/katalvlaran/qlayout/router"
	"github.com/katalvlaran/qlayout/search"
	"github.com/katalvlaran/qlayout/topology"
)

// BenchmarkRun_Line5 sweeps all 120 layouts of a 5-qubit chain circuit on a
// 5-qubit line, cacheless and serial.
func BenchmarkRun_Line5(b *testing.B) {
	arc, err := topology.NewLine(5)
	if err != nil {
		b.Fatal(err)
	}
	circ, err := circuit.Generate(circuit.GHZ, 5)
	if err != nil {
		b.Fatal(err)
	}
	req := search.Request{
		Circuit:    circ,
		Coupling:   arc.Couplings(),
		PhysQubits: arc.SystemSize,
		Arch:       arc.Name,
		Seed:       1,
	}
	s := search.New(router.NewBasicRouter(), nil, 1, nil)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := s.Run(context.Background(), req); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkRun_Line5Parallel is the same sweep with a bounded worker pool.
func BenchmarkRun_Line5Parallel(b *testing.B) {
	arc, err := topology.NewLine(5)
	if err != nil {
		b.Fatal(err)
	}
	circ, err := circuit.Generate(circuit.GHZ, 5)
	if err != nil {
		b.Fatal(err)
	}
	req := search.Request{
		Circuit:    circ,
		Coupling:   arc.Couplings(),
		PhysQubits: arc.SystemSize,
		Arch:       arc.Name,
		Seed:       1,
	}
	s := search.New(router.NewBasicRouter(), nil, 8, nil)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := s.Run(context.Background(), req); err != nil {
			b.Fatal(err)
		}
	}
}
