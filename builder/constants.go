// Package builder defines shared constants used by board builders, ensuring
// consistent defaults and validation across all topology constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodCycle is the canonical name for the Cycle constructor.
	MethodCycle = "Cycle"
	// MethodPath is the canonical name for the Path constructor.
	MethodPath = "Path"
	// MethodStar is the canonical name for the Star constructor.
	MethodStar = "Star"
	// MethodWheel is the canonical name for the Wheel constructor.
	MethodWheel = "Wheel"
	// MethodGrid is the canonical name for the Grid constructor.
	MethodGrid = "Grid"
	// MethodHexGrid is the canonical name for the HexGrid constructor.
	MethodHexGrid = "HexGrid"
	// MethodRandomGrid is the canonical name for the RandomGrid constructor.
	MethodRandomGrid = "RandomGrid"
	// MethodPlatonicSolid is the canonical name for the PlatonicSolid constructor.
	MethodPlatonicSolid = "PlatonicSolid"
)

//-----------------------------------------------------------------------------
// Minimum Sizes
//-----------------------------------------------------------------------------

// MinCycleNodes is the smallest polygon: a triangle.
const MinCycleNodes = 3

// MinPathNodes is the smallest meaningful path: one edge.
const MinPathNodes = 2

// MinStarNodes is a hub plus at least one leaf.
const MinStarNodes = 2

// MinWheelNodes is a triangle rim plus one hub.
const MinWheelNodes = 4

// MinGridDim is the smallest allowed dimension (rows or cols) for a tiling.
// A 1×1 grid is a single cell.
const MinGridDim = 1

//-----------------------------------------------------------------------------
// Probability Bounds
//-----------------------------------------------------------------------------

// MinProbability is the lower bound for p in RandomGrid, inclusive.
const MinProbability = 0.0

// MaxProbability is the upper bound for p in RandomGrid, inclusive.
const MaxProbability = 1.0
