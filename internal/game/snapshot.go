package game

import "fmt"

// RoundSnapshot — сериализуемое состояние раунда, которое можно положить в Redis.
type RoundSnapshot struct {
	RoundID string    `json:"roundId"`
	Secret  string    `json:"secret"`
	Phase   Phase     `json:"phase"`
	History []Attempt `json:"history"`
}

func (r *Round) snapshotLocked() RoundSnapshot {
	return RoundSnapshot{
		RoundID: r.id,
		Secret:  r.secret.String(),
		Phase:   r.phase,
		History: append([]Attempt(nil), r.history...),
	}
}

// restoreRound rebuilds a round from a snapshot. The secret goes through the
// same checks as a freshly generated one.
func restoreRound(s RoundSnapshot) (*Round, error) {
	secret, ok := ParseGuess(s.Secret, len(s.Secret))
	if !ok || !validSecret(secret) {
		return nil, fmt.Errorf("restore round %s: %w", s.RoundID, ErrInvalidSecret)
	}

	r := newRound(s.RoundID, secret)
	r.history = append([]Attempt(nil), s.History...)

	switch s.Phase {
	case PhaseWon:
		r.phase = PhaseWon
	case PhaseAwaitingGuess, "":
		r.phase = PhaseAwaitingGuess
	default:
		return nil, fmt.Errorf("restore round %s: unknown phase %q", s.RoundID, s.Phase)
	}
	return r, nil
}
