package topology

import "fmt"

// heavyHexSizes is the closed set of supported heavy-hex device sizes.
var heavyHexSizes = []int{5, 7, 16, 27, 65, 127, 433}

// Hummingbird (65-qubit) lattice constants: five 13-qubit chains with three
// cross-links per chain gap at fixed offsets within each chain.
const (
	hummingbirdChains   = 5
	hummingbirdChainLen = 13
)

// hummingbirdCrossOffsets designates the three linked qubits of every chain.
var hummingbirdCrossOffsets = [3]int{0, 4, 8}

// Osprey (433-qubit) lattice constants: twelve 27-qubit chains, seven
// dedicated bridge qubits per chain gap drawn from the reserved tail range
// starting at ospreyBridgeBase, attachment offsets 4 apart with the phase
// alternating 0/2 between consecutive gaps.
const (
	ospreyChains        = 12
	ospreyChainLen      = 27
	ospreyBridgeBase    = ospreyChains * ospreyChainLen // 324
	ospreyBridgesPerGap = 7
	ospreyPhaseShift    = 2
)

// ospreyRemovedLinks are the two corner attachments dropped to break the
// outer cycle of the lattice. The numeric layout is a fixture of the modeled
// device; it is reproduced as-is, not derived.
var ospreyRemovedLinks = [2]Edge{
	// First gap, last bridge, top attachment.
	{24, ospreyBridgeBase + 6},
	// Last gap, last bridge, bottom attachment.
	{ospreyBridgeBase + 10*ospreyBridgesPerGap + 6, 11*ospreyChainLen + 24},
}

// NewHeavyHex returns the heavy-hex topology for one of the supported device
// sizes {5,7,16,27,65,127,433}. The small sizes and 127 come from fixed
// reference-device tables; 65 (hummingbird) and 433 (osprey) are generated.
// Any other size is a configuration error listing the valid set.
func NewHeavyHex(size int) (*Architecture, error) {
	var links []Edge
	switch size {
	case 5:
		links = heavyHex5
	case 7:
		links = heavyHex7
	case 16:
		links = heavyHex16
	case 27:
		links = heavyHex27
	case 65:
		links = hummingbird()
	case 127:
		links = heavyHex127()
	case 433:
		links = osprey()
	default:
		return nil, fmt.Errorf("%s: size=%d, valid sizes are %v: %w",
			NameHeavyHex, size, heavyHexSizes, ErrUnsupportedSize)
	}

	return newArchitecture(NameHeavyHex, size, symmetrize(links))
}

// hummingbird generates the 65-qubit lattice: five linear chains laid out
// consecutively, with every pair of adjacent chains cross-linked at the
// three designated offsets.
// Complexity: O(size).
func hummingbird() []Edge {
	links := make([]Edge, 0, 80)
	for chain := 0; chain < hummingbirdChains; chain++ {
		base := chain * hummingbirdChainLen
		for i := 0; i < hummingbirdChainLen-1; i++ {
			links = append(links, Edge{base + i, base + i + 1})
		}
	}
	for chain := 0; chain < hummingbirdChains-1; chain++ {
		base := chain * hummingbirdChainLen
		next := base + hummingbirdChainLen
		for _, o := range hummingbirdCrossOffsets {
			links = append(links, Edge{base + o, next + o})
		}
	}

	return links
}

// osprey generates the 433-qubit lattice: twelve 27-qubit chains occupying
// indices [0, 324), interconnected through bridge qubits from the reserved
// tail range [324, 433). Gap g uses bridges 324+7g..324+7g+6; bridge k of a
// gap attaches at chain offset phase+4k, with phase alternating 0 and 2
// between consecutive gaps. Two corner attachments are removed afterwards
// (see ospreyRemovedLinks).
// Complexity: O(size).
func osprey() []Edge {
	links := make([]Edge, 0, 500)
	for chain := 0; chain < ospreyChains; chain++ {
		base := chain * ospreyChainLen
		for i := 0; i < ospreyChainLen-1; i++ {
			links = append(links, Edge{base + i, base + i + 1})
		}
	}
	for gap := 0; gap < ospreyChains-1; gap++ {
		phase := 0
		if gap%2 == 1 {
			phase = ospreyPhaseShift
		}
		top := gap * ospreyChainLen
		bottom := top + ospreyChainLen
		for k := 0; k < ospreyBridgesPerGap; k++ {
			bridge := ospreyBridgeBase + gap*ospreyBridgesPerGap + k
			offset := phase + 4*k
			links = append(links, Edge{top + offset, bridge}, Edge{bridge, bottom + offset})
		}
	}

	kept := links[:0]
	for _, e := range links {
		if e == ospreyRemovedLinks[0] || e == ospreyRemovedLinks[1] {
			continue
		}
		kept = append(kept, e)
	}

	return kept
}
