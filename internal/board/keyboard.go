package board

import "github.com/samdwyer/wordgrid/internal/match"

// Keyboard tracks the best status seen so far for each letter.
// A letter absent from the map has not been evaluated yet.
type Keyboard map[rune]match.Status

// KeyUpdate is a single keyboard change produced by Apply.
type KeyUpdate struct {
	Letter rune
	Status match.Status
}

// Apply folds an evaluated guess into the keyboard and returns the keys whose
// displayed status changed, in guess order. A key is never downgraded.
func (k Keyboard) Apply(guess string, statuses []match.Status) []KeyUpdate {
	var updates []KeyUpdate
	for i, r := range []rune(guess) {
		if i >= len(statuses) {
			break
		}
		letter, ok := toLetter(r)
		if !ok {
			continue
		}
		current, seen := k[rune(letter)]
		if seen && !statuses[i].Better(current) {
			continue
		}
		k[rune(letter)] = statuses[i]
		updates = append(updates, KeyUpdate{Letter: rune(letter), Status: statuses[i]})
	}
	return updates
}

// clone returns an independent copy.
func (k Keyboard) clone() Keyboard {
	out := make(Keyboard, len(k))
	for r, s := range k {
		out[r] = s
	}
	return out
}
