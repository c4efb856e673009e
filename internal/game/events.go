package game

// EventKind identifies an input event.
type EventKind int

const (
	EventLetter EventKind = iota
	EventBackspace
	EventSubmit
	EventReset
	EventReveal
)

// String returns a human-readable event name.
func (k EventKind) String() string {
	switch k {
	case EventLetter:
		return "letter"
	case EventBackspace:
		return "backspace"
	case EventSubmit:
		return "submit"
	case EventReset:
		return "reset"
	case EventReveal:
		return "reveal"
	default:
		return "unknown"
	}
}

// Event is a single input to the controller.
type Event struct {
	Kind   EventKind
	Letter rune // EventLetter only
}

// Letter returns a letter-key event.
func Letter(ch rune) Event { return Event{Kind: EventLetter, Letter: ch} }

// Backspace returns a delete event.
func Backspace() Event { return Event{Kind: EventBackspace} }

// Submit returns a guess submission event.
func Submit() Event { return Event{Kind: EventSubmit} }

// Reset returns a new-game event.
func Reset() Event { return Event{Kind: EventReset} }

// Reveal returns an event that shows the answer without ending the game.
func Reveal() Event { return Event{Kind: EventReveal} }
