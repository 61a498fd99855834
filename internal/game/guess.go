package game

import "errors"

var (
	ErrMalformedGuess = errors.New("guess must consist of exactly the required number of digits")
	ErrRepeatedDigits = errors.New("guess must not contain repeated digits")
)

// ParseGuess converts raw into digits. ok is false when raw has the wrong
// length or contains anything but 0-9. raw is not trimmed.
func ParseGuess(raw string, length int) (n Number, ok bool) {
	if len(raw) != length {
		return nil, false
	}

	n = make(Number, length)
	for i := 0; i < length; i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return nil, false
		}
		n[i] = Digit(raw[i] - '0')
	}
	return n, true
}

func HasDuplicates(n Number) bool {
	for i := 0; i < len(n); i++ {
		for j := i + 1; j < len(n); j++ {
			if n[i] == n[j] {
				return true
			}
		}
	}
	return false
}

// CheckGuess = ParseGuess + HasDuplicates, with errors the I/O layers can map
// to their own messages. Leading zero is allowed in a guess.
func CheckGuess(raw string, length int) (Number, error) {
	n, ok := ParseGuess(raw, length)
	if !ok {
		return nil, ErrMalformedGuess
	}
	if HasDuplicates(n) {
		return nil, ErrRepeatedDigits
	}
	return n, nil
}
