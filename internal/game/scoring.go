package game

import (
	"errors"
	"fmt"
)

var ErrLengthMismatch = errors.New("secret and guess lengths differ")

type Score struct {
	Bulls int `json:"bulls"`
	Cows  int `json:"cows"`
}

// BullsCows compares guess with secret. Both are expected to be free of
// repeated digits, so a cow is counted once per misplaced secret digit.
func BullsCows(secret, guess Number) (Score, error) {
	if len(secret) != len(guess) {
		return Score{}, fmt.Errorf("%w: secret=%d guess=%d", ErrLengthMismatch, len(secret), len(guess))
	}

	for i := range guess {
		if secret[i] > 9 || guess[i] > 9 {
			return Score{}, fmt.Errorf("%w: digit out of range at %d", ErrMalformedGuess, i)
		}
	}

	var inSecret [10]bool
	for _, d := range secret {
		inSecret[d] = true
	}

	var s Score
	for i, d := range guess {
		switch {
		case d == secret[i]:
			s.Bulls++
		case inSecret[d]:
			s.Cows++
		}
	}
	return s, nil
}
