package hex

// Table is the precomputed neighbor cache for one lattice size.
//
// It stores, for every (col, row, direction), the wrapped neighbor
// coordinates as a pair of int16 (size never exceeds 200, so int16 is ample).
// The table is immutable after construction; lookups are plain array reads
// and never allocate.
//
// Layout: neighbors[((col*size + row) * NumDirections + dir) * 2] = ncol,
// followed by nrow. Column-major cell order matches the lattice cell array.
type Table struct {
	size      int
	neighbors []int16
}

// NewTable builds the neighbor cache for a size×size torus.
func NewTable(size int) *Table {
	t := &Table{
		size:      size,
		neighbors: make([]int16, size*size*NumDirections*2),
	}
	for c := 0; c < size; c++ {
		offs := Offsets(c)
		for r := 0; r < size; r++ {
			base := ((c*size + r) * NumDirections) * 2
			for d := 0; d < NumDirections; d++ {
				nc := Wrap(c+offs[d].dc, size)
				nr := Wrap(r+offs[d].dr, size)
				t.neighbors[base+d*2] = int16(nc)
				t.neighbors[base+d*2+1] = int16(nr)
			}
		}
	}
	return t
}

// Size returns the lattice edge length the table was built for.
func (t *Table) Size() int {
	return t.size
}

// Neighbor returns the wrapped coordinates of the neighbor of (c, r) in
// direction d. The caller must pass in-range coordinates and a valid d.
func (t *Table) Neighbor(c, r int, d Direction) (int, int) {
	base := ((c*t.size+r)*NumDirections + int(d)) * 2
	return int(t.neighbors[base]), int(t.neighbors[base+1])
}

// DirectionBetween returns the direction from (c1, r1) to (c2, r2), or None
// when the two cells are not adjacent. It probes the six cached neighbors;
// O(1) and allocation-free, which the swap engine relies on.
func (t *Table) DirectionBetween(c1, r1, c2, r2 int) Direction {
	base := (c1*t.size + r1) * NumDirections * 2
	for d := 0; d < NumDirections; d++ {
		if int(t.neighbors[base+d*2]) == c2 && int(t.neighbors[base+d*2+1]) == r2 {
			return Direction(d)
		}
	}
	return None
}
