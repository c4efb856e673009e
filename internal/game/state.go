// Package game drives a word-guessing game: it turns input events into board
// mutations, consults the word source and reports changes to a Presenter.
package game

// State represents the controller's position in the turn cycle.
type State int

const (
	// StateEntering accepts letters and backspace on the active row.
	StateEntering State = iota
	// StateSubmitting waits for the word source; the active row is locked.
	StateSubmitting
	// StateEvaluated is held while a validated guess is scored.
	StateEvaluated
	// StateTerminal means the game was won or lost. Only reset is accepted.
	StateTerminal
	// StateHalted means the word source failed. Only reset is accepted.
	StateHalted
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateEntering:
		return "entering"
	case StateSubmitting:
		return "submitting"
	case StateEvaluated:
		return "evaluated"
	case StateTerminal:
		return "terminal"
	case StateHalted:
		return "halted"
	default:
		return "unknown"
	}
}
