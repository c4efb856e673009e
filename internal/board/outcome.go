package board

// Outcome represents whether the game is still being played.
type Outcome int

const (
	// InProgress means guesses are still accepted.
	InProgress Outcome = iota
	// Won means a guess matched the answer.
	Won
	// Lost means every row was used without a match.
	Lost
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case InProgress:
		return "in_progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// IsTerminal returns true for won and lost.
func (o Outcome) IsTerminal() bool {
	return o == Won || o == Lost
}
