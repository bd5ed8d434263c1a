package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qlayout/topology"
)

func TestParseArch(t *testing.T) {
	tests := []struct {
		spec string
		name string
		size int
	}{
		{"line:6", topology.NameLine, 6},
		{"square_grid:9", topology.NameSquareGrid, 9},
		{"grid:2x3", topology.NameGrid, 6},
		{"heavy_hex:16", topology.NameHeavyHex, 16},
		{"rigetti_rings:1x2", topology.NameRigettiRings, 16},
	}
	for _, tc := range tests {
		t.Run(tc.spec, func(t *testing.T) {
			arch, err := parseArch(tc.spec)
			require.NoError(t, err)
			assert.Equal(t, tc.name, arch.Name)
			assert.Equal(t, tc.size, arch.SystemSize)
		})
	}
}

func TestParseArch_Invalid(t *testing.T) {
	for _, spec := range []string{"line", "line:x", "grid:4", "torus:4", "rigetti_rings:2"} {
		t.Run(spec, func(t *testing.T) {
			_, err := parseArch(spec)
			assert.ErrorIs(t, err, ErrBadArchSpec)
		})
	}
}

func TestParseArch_InvalidSizePropagates(t *testing.T) {
	_, err := parseArch("heavy_hex:6")
	assert.ErrorIs(t, err, topology.ErrUnsupportedSize)
}
