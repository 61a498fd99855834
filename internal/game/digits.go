package game

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand/v2"
)

const (
	MinLength = 1
	MaxLength = 9
)

var (
	ErrLengthOutOfRange = errors.New("length must be between 1 and 9")
	ErrInvalidSecret    = errors.New("secret must have distinct digits and a non-zero first digit")
)

// Digit — десятичная цифра 0..9.
type Digit uint8

// Number — упорядоченная последовательность цифр фиксированной длины.
type Number []Digit

func (n Number) String() string {
	b := make([]byte, len(n))
	for i, d := range n {
		b[i] = byte('0' + d)
	}
	return string(b)
}

// Rand — источник случайности для генератора.
// *rand.Rand из math/rand/v2 подходит как есть.
type Rand interface {
	IntN(n int) int
}

// NewRand creates a deterministic source for the given seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// NewSeed draws a seed from crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// Generate returns length distinct digits; the first one is never zero.
func Generate(length int, rng Rand) (Number, error) {
	if length < MinLength || length > MaxLength {
		return nil, fmt.Errorf("%w: got %d", ErrLengthOutOfRange, length)
	}

	// ноль в пуле появляется только после первой позиции
	pool := []Digit{1, 2, 3, 4, 5, 6, 7, 8, 9}

	out := make(Number, length)
	for i := 0; i < length; i++ {
		j := rng.IntN(len(pool))
		out[i] = pool[j]
		pool = append(pool[:j], pool[j+1:]...)

		if i == 0 {
			pool = append(pool, 0)
		}
	}
	return out, nil
}

func validSecret(n Number) bool {
	if len(n) < MinLength || len(n) > MaxLength {
		return false
	}
	if n[0] == 0 {
		return false
	}
	for _, d := range n {
		if d > 9 {
			return false
		}
	}
	return !HasDuplicates(n)
}
