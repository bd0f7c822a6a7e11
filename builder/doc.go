// Package builder assembles planar boards from deterministic, composable
// topology constructors. It is the fixture factory for boardtopo: tests,
// benchmarks and the generate command all obtain their boards here.
//
// The package offers the following key components:
//
//   - Entry points:
//     – BuildBoard:  create a planar.Board, resolve options, run constructors.
//     – BuildInto:   run constructors against an existing board.
//   - Configuration primitives:
//     – BuilderOption: a function that mutates builderConfig before use.
//     – builderConfig: origin, spacing, RNG and jitter.
//   - Topologies (each returns a Constructor):
//     – Grid, HexGrid:      square and pointy-top hexagonal tilings.
//     – Cycle, Wheel:       regular polygon and polygon with a hub.
//     – Path, Star:         acyclic fixtures (no cells).
//     – PlatonicSolid:      Schlegel diagrams of the five solids.
//     – RandomGrid:         a grid with interior edges dropped at random.
//     – Translate:          shift any constructor by a world offset.
//
// Coordinates are expressed in lattice units: a constructor places its
// points relative to the configured origin and multiplies them by the
// configured spacing. Points that land on the same lattice position within
// one constructor call are merged, and repeated edges are reused through
// planar.Board.GetOrAddEdge, so tilings can emit every tile independently.
//
// Guarantees:
//
//   - Deterministic: equal inputs, options and seed produce identical boards,
//     including vertex and edge IDs.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors never panic; they return sentinel errors wrapped with the
//     constructor name (errors.Is works against ErrTooFewVertices and friends).
//   - Every topology is a plane embedding: Compute yields E − V + C cells.
package builder
