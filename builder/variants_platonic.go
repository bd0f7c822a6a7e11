// SPDX-License-Identifier: MIT
// Package: boardtopo/builder
//
// variants_platonic.go - Schlegel layouts for the five Platonic solids.
//
// Design:
//   • Each solid is drawn as concentric rings of vertices (outer face first)
//     plus a fixed edge list over ring-local indices.
//   • Radii are chosen so that no edge crosses another: the result is a
//     plane embedding whose bounded cells are all faces but the outer one.
//   • Datasets are immutable package data; emission order is the slice order.

package builder

// PlatonicName enumerates the five Platonic solids.
type PlatonicName int

// String provides a readable identifier for logs/errors (deterministic).
func (p PlatonicName) String() string {
	switch p {
	case Tetrahedron:
		return "Tetrahedron"
	case Cube:
		return "Cube"
	case Octahedron:
		return "Octahedron"
	case Dodecahedron:
		return "Dodecahedron"
	case Icosahedron:
		return "Icosahedron"
	default:
		return "Unknown"
	}
}

// Enum values (stable ordering).
const (
	Tetrahedron  PlatonicName = iota // V=4,  E=6,  F=4
	Cube                             // V=8,  E=12, F=6
	Octahedron                       // V=6,  E=12, F=8
	Dodecahedron                     // V=20, E=30, F=12
	Icosahedron                      // V=12, E=30, F=20
)

// shell is one ring of a Schlegel layout: n vertices at radius r, the first
// at angle start (degrees), proceeding CCW. n == 1 places a single centre.
type shell struct {
	n        int
	r, start float64
}

// schlegel is a full layout: shells in emission order and edges over the
// global vertex index (shell offsets are cumulative).
type schlegel struct {
	shells []shell
	edges  [][2]int
}

// ringEdges returns the closing ring over n vertices starting at offset.
func ringEdges(offset, n int) [][2]int {
	out := make([][2]int, n)
	for i := 0; i < n; i++ {
		out[i] = [2]int{offset + i, offset + (i+1)%n}
	}
	return out
}

// joinEdges concatenates edge lists.
func joinEdges(parts ...[][2]int) [][2]int {
	var out [][2]int
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// platonicLayouts maps each PlatonicName to its layout.
var platonicLayouts = map[PlatonicName]schlegel{
	// Outer triangle around a centre vertex.
	Tetrahedron: {
		shells: []shell{{3, 2, 90}, {1, 0, 0}},
		edges:  joinEdges(ringEdges(0, 3), [][2]int{{3, 0}, {3, 1}, {3, 2}}),
	},
	// Two nested squares joined by four spokes.
	Cube: {
		shells: []shell{{4, 2, 45}, {4, 1, 45}},
		edges: joinEdges(ringEdges(0, 4), ringEdges(4, 4),
			[][2]int{{0, 4}, {1, 5}, {2, 6}, {3, 7}}),
	},
	// Outer triangle A, inner triangle B rotated by 60°; A_k meets B_k and B_{k+1}.
	Octahedron: {
		shells: []shell{{3, 2, 90}, {3, 0.75, 30}},
		edges: joinEdges(ringEdges(0, 3), ringEdges(3, 3),
			[][2]int{{0, 3}, {0, 4}, {1, 4}, {1, 5}, {2, 5}, {2, 3}}),
	},
	// Outer pentagon (0..4), decagon (5..14), inner pentagon (15..19).
	// O_k meets D_{2k}; I_k meets D_{2k+1}.
	Dodecahedron: {
		shells: []shell{{5, 3, 90}, {10, 2, 90}, {5, 1, 126}},
		edges: joinEdges(ringEdges(0, 5), ringEdges(5, 10), ringEdges(15, 5),
			spokes(5, func(k int) [][2]int { return [][2]int{{k, 5 + 2*k}} }),
			spokes(5, func(k int) [][2]int { return [][2]int{{15 + k, 5 + 2*k + 1}} })),
	},
	// Outer triangle A (0..2), hexagon B (3..8), inner triangle C (9..11).
	// A_k meets B_{2k-1}, B_{2k}, B_{2k+1}; C_k meets B_{2k}, B_{2k+1}, B_{2k+2}.
	Icosahedron: {
		shells: []shell{{3, 4, 90}, {6, 1.5, 90}, {3, 0.6, 150}},
		edges: joinEdges(ringEdges(0, 3), ringEdges(3, 6), ringEdges(9, 3),
			spokes(3, func(k int) [][2]int {
				return [][2]int{{k, 3 + (2*k+5)%6}, {k, 3 + 2*k}, {k, 3 + (2*k+1)%6}}
			}),
			spokes(3, func(k int) [][2]int {
				return [][2]int{{9 + k, 3 + 2*k}, {9 + k, 3 + (2*k+1)%6}, {9 + k, 3 + (2*k+2)%6}}
			})),
	},
}

// spokes concatenates fn(k) for k in [0, n).
func spokes(n int, fn func(k int) [][2]int) [][2]int {
	var out [][2]int
	for k := 0; k < n; k++ {
		out = append(out, fn(k)...)
	}
	return out
}
