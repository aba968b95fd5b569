package lattice

import (
	"encoding/json"
	"strconv"
)

// CellState is the wire form of one cell: position plus its open doors in
// ascending direction order. The "c,r" map key in Snapshot.Cells repeats the
// position; both copies are part of the client contract.
type CellState struct {
	Col   int   `json:"col"`
	Row   int   `json:"row"`
	Doors []int `json:"doors"`
}

// CyclePoint is the wire form of one cycle step. Canonically it marshals as
// {"col":c,"row":r}; lattices built with WithLegacyCycleKeys emit the
// historical {"q":c,"r":r} names instead.
type CyclePoint struct {
	Col int
	Row int

	legacy bool
}

// MarshalJSON emits canonical or legacy key names.
func (p CyclePoint) MarshalJSON() ([]byte, error) {
	if p.legacy {
		return json.Marshal(struct {
			Q int `json:"q"`
			R int `json:"r"`
		}{p.Col, p.Row})
	}
	return json.Marshal(struct {
		Col int `json:"col"`
		Row int `json:"row"`
	}{p.Col, p.Row})
}

// Snapshot is the full serialized lattice state.
type Snapshot struct {
	Cells  map[string]CellState `json:"cells"`
	Cycles [][]CyclePoint       `json:"cycles"`
	Size   int                  `json:"size"`
}

// Snapshot returns the memoized dump of the lattice: every cell with its
// door list, the cycle decomposition, and the size.
//
// The cached value is invalidated by any mutation and rebuilt on the next
// call; a clean call returns the same shared *Snapshot. Callers must treat
// it as read-only.
func (l *Lattice) Snapshot() *Snapshot {
	if !l.snapDirty && l.snapCache != nil {
		return l.snapCache
	}

	snap := &Snapshot{
		Cells: make(map[string]CellState, l.size*l.size),
		Size:  l.size,
	}

	for c := 0; c < l.size; c++ {
		for r := 0; r < l.size; r++ {
			bits := l.cells[l.index(c, r)]
			doors := make([]int, 0, 2)
			for d := 0; d < 6; d++ {
				if bits&(1<<d) != 0 {
					doors = append(doors, d)
				}
			}
			key := strconv.Itoa(c) + "," + strconv.Itoa(r)
			snap.Cells[key] = CellState{Col: c, Row: r, Doors: doors}
		}
	}

	raw := l.Cycles()
	snap.Cycles = make([][]CyclePoint, len(raw))
	for i, cyc := range raw {
		points := make([]CyclePoint, len(cyc))
		for j, cell := range cyc {
			points[j] = CyclePoint{Col: cell.Col, Row: cell.Row, legacy: l.legacyKeys}
		}
		snap.Cycles[i] = points
	}

	l.snapCache = snap
	l.snapDirty = false
	return snap
}
