// Package planar turns a hand-authored planar straight-line graph into a
// playable board topology: enclosed cells, their shared borders, and the
// vertex/edge/cell adjacency that rules engines and renderers consume.
//
// What:
//
//   - Vertices are points with dense integer IDs (0, 1, 2, ...).
//   - Edges connect two distinct vertices; identity is unordered.
//   - Cells are the bounded faces of the embedding, traced with half-edges.
//   - Board composes the vertex, edge and cell stores behind one facade.
//
// Lifecycle:
//
//	StateEmpty ──AddVertex──▶ StateBuilding ──Compute──▶ StateComputed
//	                               ▲                            │
//	                               └──── any mutation ──────────┘
//
// Cell and adjacency queries are valid only in StateComputed; elsewhere
// they return ErrStaleState. Vertex and edge lookups work in every state.
//
// Algorithm (Compute):
//
//  1. Every edge (v0,v1) yields half-edges v0→v1 and v1→v0.
//  2. Half-edges leaving each vertex are sorted by atan2(dy,dx), ties by
//     neighbour ID then edge ID.
//  3. Filaments (edges hanging off degree-1 vertices) are peeled away;
//     they border no cell.
//  4. Starting from every unvisited half-edge u→v, the walk continues with
//     the half-edge immediately clockwise from v→u around v until it
//     returns to the start. Each walk traces the face on its left.
//  5. Per connected component, the trace with the most negative signed
//     area is the unbounded outer face and is dropped. The rest are cells.
//
// Euler relation: a connected graph with at least one cycle yields
// E − V + 1 cells; k components with cycles yield E − V + k.
//
// Parallel edges: AddEdge permits them, GetOrAddEdge never creates them.
// Compute folds parallel edges: only the lowest-ID edge of each unordered
// pair is traced, the others border no cell.
//
// Concurrency: a Board is a single-writer structure with no internal
// locking. Callers must not mutate it while Compute is running.
//
// Complexity: Compute is O(V + E·log Δ) where Δ is the maximum degree.
//
// Errors:
//
//	ErrInvalidVertex – vertex ID out of range, or an edge with v0 == v1.
//	ErrInvalidEdge   – edge ID out of range.
//	ErrInvalidCell   – cell ID out of range.
//	ErrNotFound      – GetEdge found no edge for the vertex pair.
//	ErrStaleState    – cell/adjacency query before Compute.
package planar
