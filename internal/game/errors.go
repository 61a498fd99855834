package game

import "errors"

// ErrorCode maps core errors to the codes clients see in ErrorPayload.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrMalformedGuess), errors.Is(err, ErrLengthMismatch):
		return "bad_guess"
	case errors.Is(err, ErrRepeatedDigits):
		return "repeated_digits"
	case errors.Is(err, ErrRoundFinished):
		return "round_finished"
	case errors.Is(err, ErrRoundNotFound):
		return "round_not_found"
	case errors.Is(err, ErrLengthOutOfRange):
		return "bad_length"
	default:
		return "internal"
	}
}
