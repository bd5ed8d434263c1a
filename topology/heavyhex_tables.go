package topology

// Reference-device heavy-hex connectivity for the fixed small sizes.
// Each table lists one direction per physical link; NewHeavyHex symmetrizes.
// The 5/7/16/27 maps follow the published IBM Falcon-family devices
// (belem / lagos / guadalupe / montreal class); 127 follows the Eagle class.

// heavyHex5 is the 5-qubit T-shaped device.
var heavyHex5 = []Edge{
	{0, 1}, {1, 2}, {1, 3}, {3, 4},
}

// heavyHex7 is the 7-qubit H-shaped device.
var heavyHex7 = []Edge{
	{0, 1}, {1, 2}, {1, 3}, {3, 5}, {4, 5}, {5, 6},
}

// heavyHex16 is the 16-qubit device (guadalupe class).
var heavyHex16 = []Edge{
	{0, 1}, {1, 2}, {1, 4}, {2, 3}, {3, 5}, {4, 7}, {5, 8},
	{6, 7}, {7, 10}, {8, 9}, {8, 11}, {10, 12}, {11, 14},
	{12, 13}, {12, 15}, {13, 14},
}

// heavyHex27 is the 27-qubit Falcon device.
var heavyHex27 = []Edge{
	{0, 1}, {1, 2}, {1, 4}, {2, 3}, {3, 5}, {4, 7}, {5, 8},
	{6, 7}, {7, 10}, {8, 9}, {8, 11}, {10, 12}, {11, 14},
	{12, 13}, {12, 15}, {13, 14}, {14, 16}, {15, 18}, {16, 19},
	{17, 18}, {18, 21}, {19, 20}, {19, 22}, {21, 23}, {22, 25},
	{23, 24}, {24, 25}, {25, 26},
}

// eagleRow describes one horizontal qubit chain of the 127-qubit lattice.
type eagleRow struct {
	start, length int
}

// eagleBridge is a dedicated connector qubit joining one qubit of the row
// above to one qubit of the row below.
type eagleBridge struct {
	bridge, top, bottom int
}

// The Eagle lattice: seven chains separated by groups of four bridge qubits.
// Bridge attachment alternates phase between consecutive groups (offsets
// 0,4,8,12 vs 2,6,10,14 within the 15-long middle rows; the shorter edge
// rows shift accordingly).
var eagleRows = []eagleRow{
	{0, 14}, {18, 15}, {37, 15}, {56, 15}, {75, 15}, {94, 15}, {113, 14},
}

var eagleBridges = []eagleBridge{
	{14, 0, 18}, {15, 4, 22}, {16, 8, 26}, {17, 12, 30},
	{33, 20, 39}, {34, 24, 43}, {35, 28, 47}, {36, 32, 51},
	{52, 37, 56}, {53, 41, 60}, {54, 45, 64}, {55, 49, 68},
	{71, 58, 77}, {72, 62, 81}, {73, 66, 85}, {74, 70, 89},
	{90, 75, 94}, {91, 79, 98}, {92, 83, 102}, {93, 87, 106},
	{109, 96, 114}, {110, 100, 118}, {111, 104, 122}, {112, 108, 126},
}

// heavyHex127 expands the Eagle row/bridge description into a one-way link
// list: chain edges row by row, then both attachments of every bridge.
func heavyHex127() []Edge {
	links := make([]Edge, 0, 160)
	for _, row := range eagleRows {
		for i := 0; i < row.length-1; i++ {
			links = append(links, Edge{row.start + i, row.start + i + 1})
		}
	}
	for _, b := range eagleBridges {
		links = append(links, Edge{b.top, b.bridge}, Edge{b.bridge, b.bottom})
	}

	return links
}
