package lattice

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mquint/hexloop/internal/hex"
)

func TestParsePattern(t *testing.T) {
	tests := []struct {
		in   string
		want Pattern
	}{
		{"vertical", PatternVertical},
		{"diagonal_1", PatternDiagonal1},
		{"diagonal_2", PatternDiagonal2},
		{"zigzag", PatternZigzag},
		{"", PatternVertical},
		{"sideways", PatternVertical},
		{"VERTICAL", PatternVertical},
		{"diagonal_3", PatternVertical},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParsePattern(tt.in))
		})
	}
}

func TestSeed_UniformMasks(t *testing.T) {
	tests := []struct {
		pattern Pattern
		mask    uint8
	}{
		{PatternVertical, hex.N.Bit() | hex.S.Bit()},
		{PatternDiagonal1, hex.NE.Bit() | hex.SW.Bit()},
		{PatternDiagonal2, hex.SE.Bit() | hex.NW.Bit()},
	}

	for _, tt := range tests {
		t.Run(string(tt.pattern), func(t *testing.T) {
			l := New(6, tt.pattern)
			for c := 0; c < 6; c++ {
				for r := 0; r < 6; r++ {
					assert.Equal(t, tt.mask, l.Mask(c, r), "cell (%d,%d)", c, r)
				}
			}
		})
	}
}

func TestSeed_ZigzagEvenSize(t *testing.T) {
	l := New(6, PatternZigzag)
	for c := 0; c < 6; c++ {
		want := hex.NE.Bit() | hex.NW.Bit()
		if c%2 == 1 {
			want = hex.SE.Bit() | hex.SW.Bit()
		}
		for r := 0; r < 6; r++ {
			assert.Equal(t, want, l.Mask(c, r), "cell (%d,%d)", c, r)
		}
	}
}

func TestSeed_ZigzagOddSize_LastColumn(t *testing.T) {
	// On an odd-size torus the last column would face the first with the
	// same parity, so it is seeded SE/NW to keep the seam consistent.
	l := New(7, PatternZigzag)

	for r := 0; r < 7; r++ {
		assert.Equal(t, hex.SE.Bit()|hex.NW.Bit(), l.Mask(6, r), "row %d", r)
	}
	requireTwoRegular(t, l)
	requireSymmetric(t, l)
}

func TestSeed_GarbagePatternFallsBack(t *testing.T) {
	want := New(5, PatternVertical)
	got := New(5, ParsePattern("definitely_not_a_pattern"))
	assert.Equal(t, snapshotMasks(want), snapshotMasks(got))
}
