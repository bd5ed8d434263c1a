// Package qlayout is a research harness for benchmarking initial-qubit-layout
// strategies in quantum circuit compilation.
//
// The module selects a hardware connectivity topology (package topology),
// picks an initial virtual-to-physical qubit assignment (package layout),
// and hands both to a router (package router) to measure the SWAP-gate count
// and circuit depth that the assignment induces. Package search brute-forces
// the layout space to find swap-count extrema, package cache memoizes the
// expensive permutation tables on disk, and package bench sweeps
// (architecture x algorithm x strategy x seed) combinations, reduces repeated
// seeds into best/average/worst statistics, and renders reports.
//
// Entry point: cmd/qlayout-bench.
package qlayout
