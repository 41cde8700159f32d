package zopgz

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLengthLimitedCodeLengths_KnownVectors(t *testing.T) {
	tests := []struct {
		name    string
		freqs   []int
		maxBits int
		want    []uint8
	}{
		{
			name:    "classic-limited",
			freqs:   []int{1, 1, 5, 7, 10, 14},
			maxBits: 4,
			want:    []uint8{4, 4, 3, 2, 2, 2},
		},
		{
			name:    "two-used-symbols",
			freqs:   []int{0, 10, 0, 0, 5},
			maxBits: 15,
			want:    []uint8{0, 1, 0, 0, 1},
		},
		{
			name:    "no-symbols",
			freqs:   []int{0, 0, 0, 0},
			maxBits: 15,
			want:    []uint8{0, 0, 0, 0},
		},
		{
			name:    "one-symbol",
			freqs:   []int{0, 0, 7, 0},
			maxBits: 15,
			want:    []uint8{0, 0, 1, 0},
		},
		{
			name:    "uniform-four",
			freqs:   []int{3, 3, 3, 3},
			maxBits: 15,
			want:    []uint8{2, 2, 2, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := make([]uint8, len(tt.freqs))
			lengthLimitedCodeLengths(tt.freqs, tt.maxBits, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

// kraftSum returns sum(2^-len) scaled by 2^maxCodeBits.
func kraftSum(lengths []uint8) int {
	sum := 0
	for _, l := range lengths {
		if l > 0 {
			sum += 1 << (maxCodeBits - l)
		}
	}
	return sum
}

func TestLengthLimitedCodeLengths_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 200; trial++ {
		n := 3 + rng.Intn(numLitLenSymbols-3)
		maxBits := 7 + rng.Intn(9)
		freqs := make([]int, n)
		for i := range freqs {
			if rng.Intn(3) > 0 {
				freqs[i] = rng.Intn(10000)
			}
		}

		lengths := make([]uint8, n)
		lengthLimitedCodeLengths(freqs, maxBits, lengths)

		used := 0
		for i, f := range freqs {
			if f > 0 {
				used++
				require.NotZero(t, lengths[i], "used symbol %d must get a code", i)
				require.LessOrEqual(t, int(lengths[i]), maxBits)
			} else {
				require.Zero(t, lengths[i], "unused symbol %d must stay zero", i)
			}
		}
		if used == 0 {
			continue
		}

		require.LessOrEqual(t, kraftSum(lengths), 1<<maxCodeBits,
			"Kraft inequality must hold")

		// Heavier symbols never get longer codes than lighter ones.
		for i, fi := range freqs {
			for j, fj := range freqs {
				if fi > 0 && fj > 0 && fi < fj {
					require.GreaterOrEqual(t, lengths[i], lengths[j],
						"freq %d got shorter code than freq %d", fi, fj)
				}
			}
		}
	}
}

func TestLengthLimitedCodeLengths_TightLimit(t *testing.T) {
	// Fibonacci-ish weights force deep unlimited trees; the limit must cap them.
	freqs := []int{1, 1, 2, 3, 5, 8, 13, 21, 34, 55, 89, 144}
	lengths := make([]uint8, len(freqs))
	lengthLimitedCodeLengths(freqs, 7, lengths)

	for i, l := range lengths {
		require.NotZero(t, l)
		require.LessOrEqual(t, int(l), 7, "symbol %d exceeds the limit", i)
	}
	require.LessOrEqual(t, kraftSum(lengths), 1<<maxCodeBits)
}
