package lattice

import (
	"log/slog"

	"github.com/mquint/hexloop/internal/hex"
)

// attemptsPerStep bounds Scramble: a call asking for n steps makes at most
// n*attemptsPerStep swap attempts in total, shared across all of its steps.
const attemptsPerStep = 20

// Swap performs one Markov edge-swap attempt and reports whether it mutated
// state. Failures are silent; they are the normal rejection path of the
// sampler, not errors.
//
// The attempt samples an edge u–v (uniform cell, uniform door) and a second
// edge x–y the same way, requires all four endpoints distinct, then tries the
// two rewirings (u–x, v–y) and (u–y, v–x). A rewiring is admissible when both
// endpoint pairs are adjacent and neither new edge already exists. The
// mutation removes two edges and adds two edges over the same four vertices,
// so every vertex keeps its degree.
func (l *Lattice) Swap(rng Rand) bool {
	var doorBuf [hex.NumDirections]hex.Direction

	uc := rng.IntN(l.size)
	ur := rng.IntN(l.size)
	uDoors := l.DoorsInto(uc, ur, doorBuf[:0])
	if len(uDoors) == 0 {
		return false
	}
	dUV := uDoors[rng.IntN(len(uDoors))]
	vc, vr := l.table.Neighbor(uc, ur, dUV)

	xc := rng.IntN(l.size)
	xr := rng.IntN(l.size)
	xDoors := l.DoorsInto(xc, xr, doorBuf[:0])
	if len(xDoors) == 0 {
		return false
	}
	dXY := xDoors[rng.IntN(len(xDoors))]
	yc, yr := l.table.Neighbor(xc, xr, dXY)

	u := Coord{uc, ur}
	v := Coord{vc, vr}
	x := Coord{xc, xr}
	y := Coord{yc, yr}
	if u == v || u == x || u == y || v == x || v == y || x == y {
		return false
	}

	// Pairing A: (u,x) and (v,y).
	dUX := l.table.DirectionBetween(uc, ur, xc, xr)
	dVY := l.table.DirectionBetween(vc, vr, yc, yr)
	if dUX != hex.None && dVY != hex.None &&
		!l.Has(uc, ur, dUX) && !l.Has(vc, vr, dVY) {
		l.rewire(uc, ur, dUV, xc, xr, dXY, uc, ur, dUX, vc, vr, dVY)
		return true
	}

	// Pairing B: (u,y) and (v,x).
	dUY := l.table.DirectionBetween(uc, ur, yc, yr)
	dVX := l.table.DirectionBetween(vc, vr, xc, xr)
	if dUY != hex.None && dVX != hex.None &&
		!l.Has(uc, ur, dUY) && !l.Has(vc, vr, dVX) {
		l.rewire(uc, ur, dUV, xc, xr, dXY, uc, ur, dUY, vc, vr, dVX)
		return true
	}

	return false
}

// rewire applies the atomic two-remove, two-add mutation. All four writes go
// through the symmetric Add/Remove, so symmetry survives unconditionally.
// Directions come from DirectionBetween and door samples, so the range
// errors are unreachable here.
func (l *Lattice) rewire(
	rc1, rr1 int, rd1 hex.Direction,
	rc2, rr2 int, rd2 hex.Direction,
	ac1, ar1 int, ad1 hex.Direction,
	ac2, ar2 int, ad2 hex.Direction,
) {
	_ = l.Remove(rc1, rr1, rd1)
	_ = l.Remove(rc2, rr2, rd2)
	_ = l.Add(ac1, ar1, ad1)
	_ = l.Add(ac2, ar2, ad2)
}

// Scramble runs swap attempts until steps swaps succeeded or the attempt
// budget (attemptsPerStep per requested step) is exhausted, and returns the
// success count. Negative steps count as zero. The loop is strictly bounded;
// a lattice where no swap is admissible terminates after the budget.
func (l *Lattice) Scramble(rng Rand, steps int) int {
	if steps < 0 {
		steps = 0
	}
	swaps := 0
	maxAttempts := steps * attemptsPerStep
	for attempts := 0; swaps < steps && attempts < maxAttempts; attempts++ {
		if l.Swap(rng) {
			swaps++
		}
	}
	slog.Debug("scramble finished", "requested", steps, "swaps", swaps, "size", l.size)
	return swaps
}
