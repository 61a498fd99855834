package game

import (
	"errors"
	"fmt"
	"sync"
)

type Phase string

const (
	PhaseAwaitingGuess Phase = "awaiting_guess"
	PhaseWon           Phase = "won"
)

var ErrRoundFinished = errors.New("round already won")

// Round owns one secret until it is guessed. There is no attempt limit.
type Round struct {
	id string
	mu sync.Mutex

	secret Number
	phase  Phase

	history   []Attempt
	onPersist func(RoundSnapshot)
}

func NewRound(id string, length int, rng Rand) (*Round, error) {
	secret, err := Generate(length, rng)
	if err != nil {
		return nil, err
	}
	return newRound(id, secret), nil
}

// NewRoundWithSecret starts a round from a known secret.
func NewRoundWithSecret(id string, secret Number) (*Round, error) {
	if !validSecret(secret) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSecret, secret.String())
	}
	return newRound(id, append(Number(nil), secret...)), nil
}

func newRound(id string, secret Number) *Round {
	return &Round{
		id:     id,
		secret: secret,
		phase:  PhaseAwaitingGuess,
	}
}

func (r *Round) ID() string { return r.id }

// Length is immutable for the round's lifetime, no lock needed.
func (r *Round) Length() int { return len(r.secret) }

func (r *Round) Phase() Phase {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.phase
}

// Submit scores a validated guess. Errors leave the round untouched.
func (r *Round) Submit(guess Number) (Attempt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.phase == PhaseWon {
		return Attempt{}, ErrRoundFinished
	}
	if HasDuplicates(guess) {
		return Attempt{}, ErrRepeatedDigits
	}

	score, err := BullsCows(r.secret, guess)
	if err != nil {
		return Attempt{}, err
	}

	a := Attempt{Guess: guess.String(), Bulls: score.Bulls, Cows: score.Cows}
	r.history = append(r.history, a)

	if score.Bulls == len(r.secret) {
		r.phase = PhaseWon
	}

	r.persistLocked()
	return a, nil
}

func (r *Round) Attempts() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.history)
}

// State builds the client view. The secret is revealed only once won.
func (r *Round) State() StatePayload {
	r.mu.Lock()
	defer r.mu.Unlock()

	st := StatePayload{
		RoundID:  r.id,
		Length:   len(r.secret),
		Phase:    r.phase,
		Attempts: len(r.history),
		History:  append([]Attempt{}, r.history...),
	}
	if r.phase == PhaseWon {
		st.Secret = r.secret.String()
	}
	return st
}

func (r *Round) persistLocked() {
	if r.onPersist == nil {
		return
	}
	r.onPersist(r.snapshotLocked())
}
