// Package lattice implements the hex lattice engine: a 2-regular subgraph on
// a toroidal flat-topped hex grid, a degree-preserving Markov edge-swap, and
// the decomposition of the graph into its disjoint simple cycles.
//
// State model: one byte per cell, bits 0..5 holding the "door" half-edges for
// the six hex.Directions. Two invariants govern every mutation path:
//
//   - Symmetry: a door at (u, d) always has its mate set at (neighbor(u,d),
//     Opp(d)). Add and Remove write both halves, so symmetry is structural
//     rather than checked.
//   - Degree-2: after any seed or successful swap, every cell has exactly two
//     doors. The swap removes two edges and adds two edges touching the same
//     four endpoints, so the per-vertex degree change is zero.
//
// A 2-regular graph is a disjoint union of simple cycles, which is what
// Cycles returns. All mutations are synchronous and single-threaded; callers
// that share a Lattice across goroutines must serialize access externally
// (the HTTP facade holds one exclusive lock per request).
package lattice
