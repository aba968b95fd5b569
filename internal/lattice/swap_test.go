package lattice

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwap_PreservesInvariants(t *testing.T) {
	l := New(10, PatternVertical)
	rng := NewSeededRand(1)

	swaps := 0
	for attempt := 0; attempt < 500 && swaps < 50; attempt++ {
		if l.Swap(rng) {
			swaps++
			requireTwoRegular(t, l)
			requireSymmetric(t, l)
		}
	}
	require.Positive(t, swaps, "seeded run should land at least one swap")
}

func TestSwap_TouchesFourCells(t *testing.T) {
	// One successful swap rewires four half-edge pairs over four vertices:
	// each of the four touched cells loses one door bit and gains another.
	l := New(10, PatternVertical)
	rng := NewSeededRand(2)

	for n := 0; n < 20; n++ {
		before := snapshotMasks(l)
		ok := false
		for attempt := 0; attempt < 10000 && !ok; attempt++ {
			ok = l.Swap(rng)
		}
		require.True(t, ok, "no admissible swap found")
		after := snapshotMasks(l)

		changed := 0
		for i := range before {
			if before[i] == after[i] {
				continue
			}
			changed++
			diff := before[i] ^ after[i]
			require.Equal(t, 2, bits.OnesCount8(diff),
				"a touched cell flips exactly two door bits")
			require.Equal(t, bits.OnesCount8(before[i]), bits.OnesCount8(after[i]),
				"degree survives the rewire")
		}
		require.Equal(t, 4, changed, "a swap touches exactly four cells")
	}
}

func TestSwap_FailureLeavesStateUntouched(t *testing.T) {
	l := New(10, PatternVertical)
	rng := NewSeededRand(3)

	before := snapshotMasks(l)
	for i := 0; i < 1000; i++ {
		if !l.Swap(rng) {
			assert.Equal(t, before, snapshotMasks(l))
		} else {
			before = snapshotMasks(l)
		}
	}
}

func TestScramble_ReturnsSwapCount(t *testing.T) {
	l := New(20, PatternVertical)
	rng := NewSeededRand(7)

	n := l.Scramble(rng, 100)
	assert.GreaterOrEqual(t, n, 0)
	assert.LessOrEqual(t, n, 100)
	requireTwoRegular(t, l)
	requireSymmetric(t, l)
}

func TestScramble_ZeroAndNegativeSteps(t *testing.T) {
	l := New(10, PatternVertical)
	before := snapshotMasks(l)
	rng := NewSeededRand(9)

	assert.Equal(t, 0, l.Scramble(rng, 0))
	assert.Equal(t, 0, l.Scramble(rng, -5))
	assert.Equal(t, before, snapshotMasks(l))
}

func TestScramble_Deterministic(t *testing.T) {
	// Identical seeds walk identical swap sequences.
	a := New(12, PatternDiagonal1)
	b := New(12, PatternDiagonal1)

	na := a.Scramble(NewSeededRand(42), 300)
	nb := b.Scramble(NewSeededRand(42), 300)

	assert.Equal(t, na, nb)
	assert.Equal(t, snapshotMasks(a), snapshotMasks(b))
}

func TestScramble_DifferentSeedsDiverge(t *testing.T) {
	a := New(12, PatternVertical)
	b := New(12, PatternVertical)

	a.Scramble(NewSeededRand(1), 200)
	b.Scramble(NewSeededRand(2), 200)

	assert.NotEqual(t, snapshotMasks(a), snapshotMasks(b))
}

func TestSeededRand_Reproducible(t *testing.T) {
	a := NewSeededRand(99)
	b := NewSeededRand(99)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.IntN(1000), b.IntN(1000))
	}
}

func TestEntropyRand_InRange(t *testing.T) {
	rng := NewEntropyRand()
	for i := 0; i < 100; i++ {
		n := rng.IntN(6)
		require.GreaterOrEqual(t, n, 0)
		require.Less(t, n, 6)
	}
}
