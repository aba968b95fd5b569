// Package hex implements the coordinate algebra for a flat-topped hexagonal
// lattice in odd-q offset coordinates, wrapped on both axes (a torus).
//
// Cells are addressed as (col, row). Each cell has six neighbors indexed by
// Direction. Because odd columns are shifted down by half a cell, the
// (Δcol, Δrow) offset for a direction depends on column parity.
//
// The package has two layers:
//
//   - Pure functions: Direction, its Opp involution, and the parity-indexed
//     offset tables.
//   - Table: a per-size precomputed neighbor cache. Neighbor lookup is the
//     single hottest operation in the swap and cycle-walk loops, so it is a
//     flat array read rather than recomputed wrap arithmetic.
package hex
