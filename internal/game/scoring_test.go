package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBullsCows_AllMatch(t *testing.T) {
	s, err := BullsCows(Number{1, 2, 3}, Number{1, 2, 3})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if s.Bulls != 3 || s.Cows != 0 {
		t.Fatalf("expected 3 bulls,0 cows got %d bulls,%d cows", s.Bulls, s.Cows)
	}
}

func TestBullsCows_NoMatch(t *testing.T) {
	s, err := BullsCows(Number{4, 5, 6}, Number{1, 2, 3})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if s.Bulls != 0 || s.Cows != 0 {
		t.Fatalf("expected 0,0 got %d,%d", s.Bulls, s.Cows)
	}
}

func TestBullsCows_Cases(t *testing.T) {
	cases := []struct {
		name   string
		secret Number
		guess  Number
		want   Score
	}{
		{name: "reversed", secret: Number{1, 2, 3}, guess: Number{3, 2, 1}, want: Score{Bulls: 1, Cows: 2}},
		{name: "rotated", secret: Number{7, 1, 5}, guess: Number{1, 5, 7}, want: Score{Bulls: 0, Cows: 3}},
		{name: "one_bull_two_cows", secret: Number{7, 1, 5}, guess: Number{5, 1, 7}, want: Score{Bulls: 1, Cows: 2}},
		{name: "leading_zero_guess", secret: Number{1, 0, 2, 3}, guess: Number{0, 1, 2, 9}, want: Score{Bulls: 1, Cows: 2}},
		{name: "single_digit_hit", secret: Number{8}, guess: Number{8}, want: Score{Bulls: 1}},
		{name: "single_digit_miss", secret: Number{8}, guess: Number{0}, want: Score{}},
		{name: "nine_digits", secret: Number{9, 8, 7, 6, 5, 4, 3, 2, 1}, guess: Number{1, 2, 3, 4, 5, 6, 7, 8, 0}, want: Score{Bulls: 1, Cows: 7}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := BullsCows(tc.secret, tc.guess)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestBullsCows_DoesNotMutate(t *testing.T) {
	secret := Number{1, 2, 3, 4}
	guess := Number{4, 3, 2, 1}

	_, err := BullsCows(secret, guess)
	require.NoError(t, err)

	assert.Equal(t, Number{1, 2, 3, 4}, secret)
	assert.Equal(t, Number{4, 3, 2, 1}, guess)
}

func TestBullsCows_LengthMismatch(t *testing.T) {
	_, err := BullsCows(Number{1, 2, 3}, Number{1, 2})
	require.ErrorIs(t, err, ErrLengthMismatch)
}

func TestBullsCows_DigitOutOfRange(t *testing.T) {
	_, err := BullsCows(Number{1, 2}, Number{3, 12})
	require.ErrorIs(t, err, ErrMalformedGuess)

	_, err = BullsCows(Number{1, 10}, Number{3, 4})
	require.ErrorIs(t, err, ErrMalformedGuess)
}

func TestBullsCows_SumNeverExceedsLength(t *testing.T) {
	rng := NewRand(7)
	for length := MinLength; length <= MaxLength; length++ {
		for i := 0; i < 200; i++ {
			secret, err := Generate(length, rng)
			require.NoError(t, err)

			// перемешанная перестановка цифр 0..9 тоже без повторов
			perm := rng.Perm(10)
			guess := make(Number, length)
			for j := range guess {
				guess[j] = Digit(perm[j])
			}

			s, err := BullsCows(secret, guess)
			require.NoError(t, err)
			require.LessOrEqual(t, s.Bulls+s.Cows, length, "secret=%s guess=%s", secret, guess)
		}
	}
}
