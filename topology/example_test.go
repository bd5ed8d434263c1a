// Package topology_test provides runnable examples for the device
// constructors, showing both code and expected output.
package topology_test

import (
	"fmt"

	"github.com/katalvlaran/qlayout/topology"
)

// ExampleNewLine builds the smallest nontrivial chain device and prints its
// symmetric coupling list.
func ExampleNewLine() {
	arc, err := topology.NewLine(3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(arc.Name, arc.SystemSize)
	for _, e := range arc.CouplingMap {
		fmt.Printf("%d-%d ", e[0], e[1])
	}
	fmt.Println()
	// Output:
	// line 3
	// 0-1 1-0 1-2 2-1
}

// ExampleNewHeavyHex shows that device sizes outside the published set are
// rejected up front.
func ExampleNewHeavyHex() {
	arc, err := topology.NewHeavyHex(16)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(arc.Name, arc.SystemSize, len(arc.CouplingMap))

	if _, err = topology.NewHeavyHex(6); err != nil {
		fmt.Println("size 6 rejected")
	}
	// Output:
	// heavy_hex 16 32
	// size 6 rejected
}
