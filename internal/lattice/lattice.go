package lattice

import (
	"log/slog"

	"github.com/mquint/hexloop/internal/hex"
)

// Size limits for a lattice edge. Reset clamps into this range.
const (
	MinSize = 5
	MaxSize = 200
)

// doorMaskBits covers the six valid door bits; the top two bits of a cell
// byte must stay zero.
const doorMaskBits = 0x3F

// Coord identifies a cell position. Engine-level value; the wire
// representation lives in snapshot.go.
type Coord struct {
	Col, Row int
}

// Lattice owns one size×size toroidal hex grid and its door state.
//
// Cells are stored column-major: cells[col*size+row]. The neighbor cache is
// rebuilt whenever Reset changes the size. The snapshot cache is invalidated
// by every mutation (Add, Remove, Reset, successful Swap).
//
// Not safe for concurrent use; see the package comment.
type Lattice struct {
	size  int
	cells []uint8
	table *hex.Table

	snapDirty  bool
	snapCache  *Snapshot
	legacyKeys bool
}

// Option configures a Lattice at construction.
type Option func(*Lattice)

// WithLegacyCycleKeys makes snapshots emit cycle points under the legacy
// q/r wire names instead of the canonical col/row.
func WithLegacyCycleKeys() Option {
	return func(l *Lattice) {
		l.legacyKeys = true
	}
}

// New creates a lattice seeded with the given pattern. Size is clamped to
// [MinSize, MaxSize].
func New(size int, p Pattern, opts ...Option) *Lattice {
	l := &Lattice{}
	for _, opt := range opts {
		opt(l)
	}
	l.Reset(size, p)
	return l
}

// ClampSize coerces a requested size into [MinSize, MaxSize].
func ClampSize(size int) int {
	if size < MinSize {
		return MinSize
	}
	if size > MaxSize {
		return MaxSize
	}
	return size
}

// Size returns the current edge length.
func (l *Lattice) Size() int {
	return l.size
}

// Table exposes the neighbor cache for read-only use by callers that walk
// the lattice (cycle rendering, tests).
func (l *Lattice) Table() *hex.Table {
	return l.table
}

// Reset reallocates storage if size changes (clamped to [MinSize, MaxSize]),
// then reseeds every cell with the pattern's door mask. Both lattice
// invariants hold afterwards by construction; no repair pass runs.
func (l *Lattice) Reset(size int, p Pattern) {
	size = ClampSize(size)
	if size != l.size {
		l.size = size
		l.cells = make([]uint8, size*size)
		l.table = hex.NewTable(size)
	}
	seed(l.cells, size, p)
	l.markDirty()
	slog.Debug("lattice reset", "size", l.size, "pattern", p)
}

// index returns the cell slot for wrapped coordinates.
func (l *Lattice) index(c, r int) int {
	return c*l.size + r
}

// wrap normalizes arbitrary coordinates onto the torus.
func (l *Lattice) wrap(c, r int) (int, int) {
	return hex.Wrap(c, l.size), hex.Wrap(r, l.size)
}

// Mask returns the raw 6-bit door mask of a cell. Coordinates wrap.
func (l *Lattice) Mask(c, r int) uint8 {
	c, r = l.wrap(c, r)
	return l.cells[l.index(c, r)]
}

// Has reports whether the door at (c, r) in direction d is open.
// Coordinates wrap; an invalid direction is never open.
func (l *Lattice) Has(c, r int, d hex.Direction) bool {
	if !d.Valid() {
		return false
	}
	c, r = l.wrap(c, r)
	return l.cells[l.index(c, r)]&d.Bit() != 0
}

// Doors returns the open directions of a cell in ascending direction order.
// The ascending order is load-bearing: the cycle walk's tie-breaking and the
// wire format both depend on it.
func (l *Lattice) Doors(c, r int) []hex.Direction {
	return l.DoorsInto(c, r, nil)
}

// DoorsInto appends the open directions of (c, r) to buf and returns it.
// Passing a reused buffer keeps the swap and cycle hot loops allocation-free.
func (l *Lattice) DoorsInto(c, r int, buf []hex.Direction) []hex.Direction {
	c, r = l.wrap(c, r)
	bits := l.cells[l.index(c, r)]
	for d := hex.Direction(0); d < hex.NumDirections; d++ {
		if bits&d.Bit() != 0 {
			buf = append(buf, d)
		}
	}
	return buf
}

// Degree returns the number of open doors of a cell.
func (l *Lattice) Degree(c, r int) int {
	bits := l.Mask(c, r)
	n := 0
	for ; bits != 0; bits &= bits - 1 {
		n++
	}
	return n
}

// Add opens the door at (c, r, d) and its mate at (neighbor, Opp(d)).
// Idempotent. Coordinates wrap; an invalid direction is a RangeError.
func (l *Lattice) Add(c, r int, d hex.Direction) error {
	if !d.Valid() {
		return &RangeError{Code: ErrCodeDirectionRange, Param: "direction", Value: int(d)}
	}
	c, r = l.wrap(c, r)
	l.cells[l.index(c, r)] |= d.Bit()

	nc, nr := l.table.Neighbor(c, r, d)
	l.cells[l.index(nc, nr)] |= d.Opp().Bit()

	l.markDirty()
	return nil
}

// Remove closes the door at (c, r, d) and its mate. Idempotent.
// Coordinates wrap; an invalid direction is a RangeError.
func (l *Lattice) Remove(c, r int, d hex.Direction) error {
	if !d.Valid() {
		return &RangeError{Code: ErrCodeDirectionRange, Param: "direction", Value: int(d)}
	}
	c, r = l.wrap(c, r)
	l.cells[l.index(c, r)] &^= d.Bit()

	nc, nr := l.table.Neighbor(c, r, d)
	l.cells[l.index(nc, nr)] &^= d.Opp().Bit()

	l.markDirty()
	return nil
}

// markDirty invalidates the memoized snapshot.
func (l *Lattice) markDirty() {
	l.snapDirty = true
}
