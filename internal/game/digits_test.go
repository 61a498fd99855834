package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedRand returns picks in order; a pick outside [0, n) is clamped.
type scriptedRand struct {
	picks []int
	calls []int
}

func (s *scriptedRand) IntN(n int) int {
	s.calls = append(s.calls, n)
	if len(s.picks) == 0 {
		return 0
	}
	p := s.picks[0]
	s.picks = s.picks[1:]
	if p >= n {
		p = n - 1
	}
	return p
}

func TestGenerate_Properties(t *testing.T) {
	rng := NewRand(42)
	for length := MinLength; length <= MaxLength; length++ {
		for i := 0; i < 500; i++ {
			n, err := Generate(length, rng)
			require.NoError(t, err)
			require.Len(t, n, length)
			require.NotZero(t, n[0], "first digit must not be zero: %s", n)
			require.False(t, HasDuplicates(n), "repeated digits: %s", n)
			for _, d := range n {
				require.True(t, d <= 9, "digit out of range: %s", n)
			}
		}
	}
}

func TestGenerate_OutOfRange(t *testing.T) {
	for _, length := range []int{-1, 0, 10, 100} {
		_, err := Generate(length, NewRand(1))
		assert.ErrorIs(t, err, ErrLengthOutOfRange, "length=%d", length)
	}
}

func TestGenerate_ZeroJoinsPoolAfterFirstDigit(t *testing.T) {
	rng := &scriptedRand{picks: []int{0, 8, 0}}

	n, err := Generate(3, rng)
	require.NoError(t, err)

	// 1 из {1..9}; затем пул {2..9,0}, индекс 8 => 0; затем {2..9} индекс 0 => 2
	assert.Equal(t, Number{1, 0, 2}, n)
	assert.Equal(t, []int{9, 9, 8}, rng.calls)
}

func TestGenerate_FullLengthUsesNineOfTenDigits(t *testing.T) {
	rng := &scriptedRand{picks: []int{8, 8, 7, 6, 5, 4, 3, 2, 1}}

	n, err := Generate(9, rng)
	require.NoError(t, err)
	assert.Equal(t, Number{9, 0, 8, 7, 6, 5, 4, 3, 2}, n)
}

func TestGenerate_Deterministic(t *testing.T) {
	a, err := Generate(6, NewRand(99))
	require.NoError(t, err)
	b, err := Generate(6, NewRand(99))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerate_Distribution(t *testing.T) {
	const (
		length = 4
		runs   = 20000
	)
	rng := NewRand(2024)

	var counts [length][10]int
	for i := 0; i < runs; i++ {
		n, err := Generate(length, rng)
		require.NoError(t, err)
		for pos, d := range n {
			counts[pos][d]++
		}
	}

	// позиция 0: только 1..9, каждая примерно runs/9
	require.Zero(t, counts[0][0])
	for d := 1; d <= 9; d++ {
		assert.InDelta(t, runs/9, counts[0][d], runs/9*0.15, "pos 0 digit %d", d)
	}
	// остальные позиции: все десять цифр встречаются
	for pos := 1; pos < length; pos++ {
		for d := 0; d <= 9; d++ {
			assert.NotZero(t, counts[pos][d], "pos %d digit %d", pos, d)
		}
	}
}

func TestNumber_String(t *testing.T) {
	assert.Equal(t, "0123", Number{0, 1, 2, 3}.String())
	assert.Equal(t, "", Number{}.String())
}

func TestNewSeed(t *testing.T) {
	_, err := NewSeed()
	require.NoError(t, err)
}
