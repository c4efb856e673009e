// Package match scores a guess against the answer, letter by letter.
package match

import "strings"

// Status is the evaluation result for a single letter of a guess.
type Status int

const (
	// Absent - letter does not appear in the unconsumed answer letters.
	Absent Status = iota
	// Present - letter appears in the answer at a different position.
	Present
	// Correct - letter is in the right position.
	Correct
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case Absent:
		return "absent"
	case Present:
		return "present"
	case Correct:
		return "correct"
	default:
		return "unknown"
	}
}

// Better reports whether s outranks other for keyboard display
// (correct > present > absent).
func (s Status) Better(other Status) bool {
	return s > other
}

// Evaluate classifies each letter of guess against answer.
//
// Exact matches are resolved first and consume their answer position. The
// remaining guess letters are then scanned left to right, each consuming the
// first unconsumed matching answer position. A letter is therefore credited at
// most as many times as it occurs in the answer.
//
// Comparison is case-insensitive. If the lengths differ every letter is absent.
func Evaluate(guess, answer string) []Status {
	g := []rune(strings.ToUpper(guess))
	a := []rune(strings.ToUpper(answer))

	statuses := make([]Status, len(g))
	if len(g) != len(a) {
		return statuses
	}

	consumed := make([]bool, len(a))

	// First pass: exact positions
	for i := range g {
		if g[i] == a[i] {
			statuses[i] = Correct
			consumed[i] = true
		}
	}

	// Second pass: earliest unconsumed occurrence elsewhere
	for i := range g {
		if statuses[i] == Correct {
			continue
		}
		for j := range a {
			if !consumed[j] && g[i] == a[j] {
				statuses[i] = Present
				consumed[j] = true
				break
			}
		}
	}

	return statuses
}

// AllCorrect reports whether every status is Correct.
// An empty slice is never a match.
func AllCorrect(statuses []Status) bool {
	if len(statuses) == 0 {
		return false
	}
	for _, s := range statuses {
		if s != Correct {
			return false
		}
	}
	return true
}
