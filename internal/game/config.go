package game

import (
	"strings"
	"time"
)

// GuessRule returns true when a complete guess must be rejected before the
// word source is asked about it.
type GuessRule func(guess string) bool

// RepeatedLetterRule rejects guesses made of a single letter repeated,
// such as "AAAAA".
func RepeatedLetterRule(guess string) bool {
	r := []rune(strings.ToUpper(guess))
	if len(r) < 2 {
		return false
	}
	for _, c := range r[1:] {
		if c != r[0] {
			return false
		}
	}
	return true
}

// Config holds game configuration options.
type Config struct {
	// Rules checked in order on every complete guess; any match rejects it.
	Rules []GuessRule

	// ToastDuration is how long user-facing messages are shown.
	ToastDuration time.Duration

	// AutoResetDelay starts a new game this long after one ends.
	// Zero disables it.
	AutoResetDelay time.Duration
}

// DefaultConfig returns the configuration used when none is given.
func DefaultConfig() Config {
	return Config{
		Rules:         []GuessRule{RepeatedLetterRule},
		ToastDuration: 1500 * time.Millisecond,
	}
}
