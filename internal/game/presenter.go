package game

import (
	"time"

	"github.com/samdwyer/wordgrid/internal/board"
	"github.com/samdwyer/wordgrid/internal/match"
)

// Presenter receives the controller's output, in order, on the controller's
// goroutine. Implementations must not call back into the controller.
type Presenter interface {
	// OnCellUpdated reports a written cell; letter is 0 when cleared.
	OnCellUpdated(row, col int, letter rune)
	OnRowEvaluated(row int, statuses []match.Status)
	OnKeyboardUpdated(letter rune, status match.Status)
	// OnToast shows a message; a zero duration keeps it until replaced.
	OnToast(message string, duration time.Duration)
	OnRowShake(row int)
	OnGameOver(outcome board.Outcome, answer string)
	OnReset()
}

// NopPresenter discards every notification.
type NopPresenter struct{}

func (NopPresenter) OnCellUpdated(int, int, rune)         {}
func (NopPresenter) OnRowEvaluated(int, []match.Status)   {}
func (NopPresenter) OnKeyboardUpdated(rune, match.Status) {}
func (NopPresenter) OnToast(string, time.Duration)        {}
func (NopPresenter) OnRowShake(int)                       {}
func (NopPresenter) OnGameOver(board.Outcome, string)     {}
func (NopPresenter) OnReset()                             {}
