package lattice

import "github.com/mquint/hexloop/internal/hex"

// walkResult is one extracted walk and whether it closed on its start.
type walkResult struct {
	cells  []Coord
	closed bool
}

// Cycles partitions the lattice into its cycle decomposition.
//
// On a lattice satisfying the degree-2 invariant the result is the unique
// (up to start and direction) set of disjoint simple cycles covering every
// cell exactly once. The enumeration is fully deterministic: the outer scan
// visits cells in storage order (col outer, row inner) and the walk always
// leaves through the lowest-numbered door that does not immediately
// backtrack. Two lattices in the same state therefore produce identical
// output, which the pinned fixtures rely on.
//
// On a degenerate lattice (isolated cells, dead ends) the walk still
// terminates; broken fragments are returned in scan order as if they were
// cycles, matching the historical behavior. Use CyclesDiag to separate them.
func (l *Lattice) Cycles() [][]Coord {
	walks := l.extract()
	cycles := make([][]Coord, len(walks))
	for i, w := range walks {
		cycles[i] = w.cells
	}
	return cycles
}

// CyclesDiag is the diagnostic variant: it returns closed cycles and
// non-closed fragments separately instead of silently folding fragments into
// the cycle list. Intended for inspecting a lattice whose invariants are in
// doubt; on a healthy lattice fragments is empty.
func (l *Lattice) CyclesDiag() (cycles, fragments [][]Coord) {
	for _, w := range l.extract() {
		if w.closed {
			cycles = append(cycles, w.cells)
		} else {
			fragments = append(fragments, w.cells)
		}
	}
	return cycles, fragments
}

func (l *Lattice) extract() []walkResult {
	var walks []walkResult
	visited := make([]uint64, (l.size*l.size+63)/64)
	// One walk buffer for the whole pass; each finished walk is copied out.
	walk := make([]Coord, 0, l.size*l.size)
	var doorBuf [hex.NumDirections]hex.Direction

	for c := 0; c < l.size; c++ {
		for r := 0; r < l.size; r++ {
			if bitGet(visited, l.index(c, r)) {
				continue
			}
			start := Coord{c, r}
			walk = walk[:0]
			curr := start
			var prev Coord
			hasPrev := false
			closed := false

			for {
				idx := l.index(curr.Col, curr.Row)
				if bitGet(visited, idx) {
					// Either back at the walk's own start (a closed cycle)
					// or merged into a prior walk (a fragment).
					closed = curr == start
					break
				}
				bitSet(visited, idx)
				walk = append(walk, curr)

				doors := l.DoorsInto(curr.Col, curr.Row, doorBuf[:0])
				if len(doors) == 0 {
					break
				}
				next := l.step(curr, doors[0])
				if hasPrev && next == prev {
					if len(doors) < 2 {
						break
					}
					next = l.step(curr, doors[1])
				}
				prev = curr
				hasPrev = true
				curr = next
			}

			if len(walk) == 0 {
				continue
			}
			out := make([]Coord, len(walk))
			copy(out, walk)
			walks = append(walks, walkResult{cells: out, closed: closed})
		}
	}
	return walks
}

func (l *Lattice) step(from Coord, d hex.Direction) Coord {
	nc, nr := l.table.Neighbor(from.Col, from.Row, d)
	return Coord{nc, nr}
}

func bitGet(bits []uint64, i int) bool {
	return bits[i/64]&(1<<(i%64)) != 0
}

func bitSet(bits []uint64, i int) {
	bits[i/64] |= 1 << (i % 64)
}
