package ui

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/wordgrid/internal/board"
	"github.com/samdwyer/wordgrid/internal/match"
)

const (
	gridLeft  = 2
	gridTop   = 2
	cellWidth = 4 // " X " plus a gap

	shakeDuration = 500 * time.Millisecond
)

var keyboardRows = []string{"QWERTYUIOP", "ASDFGHJKL", "ZXCVBNM"}

// Renderer draws the game and implements game.Presenter.
// Notifications may arrive from the controller goroutine while timers
// expire on others, so all state is guarded by mu.
type Renderer struct {
	screen *Screen
	rows   int
	cols   int
	now    func() time.Time
	after  func(time.Duration, func()) // schedules a redraw

	mu         sync.Mutex
	cells      [][]rune
	statuses   [][]match.Status
	keys       map[rune]match.Status
	toast      string
	toastUntil time.Time // zero means until replaced
	shakeRow   int
	shakeUntil time.Time
	outcome    board.Outcome
}

// NewRenderer creates a renderer for a board of the given size.
func NewRenderer(screen *Screen, rows, cols int) *Renderer {
	r := &Renderer{
		screen: screen,
		rows:   rows,
		cols:   cols,
		now:    time.Now,
		after:  func(d time.Duration, f func()) { time.AfterFunc(d, f) },
	}
	r.clear()
	return r
}

func (r *Renderer) clear() {
	r.cells = make([][]rune, r.rows)
	r.statuses = make([][]match.Status, r.rows)
	for i := range r.cells {
		r.cells[i] = make([]rune, r.cols)
	}
	r.keys = make(map[rune]match.Status)
	r.shakeRow = -1
	r.outcome = board.InProgress
}

// OnCellUpdated implements game.Presenter.
func (r *Renderer) OnCellUpdated(row, col int, letter rune) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if row < 0 || row >= r.rows || col < 0 || col >= r.cols {
		return
	}
	r.cells[row][col] = letter
	r.draw()
}

// OnRowEvaluated implements game.Presenter.
func (r *Renderer) OnRowEvaluated(row int, statuses []match.Status) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if row < 0 || row >= r.rows {
		return
	}
	r.statuses[row] = append([]match.Status(nil), statuses...)
	r.draw()
}

// OnKeyboardUpdated implements game.Presenter.
func (r *Renderer) OnKeyboardUpdated(letter rune, status match.Status) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.keys[letter] = status
	r.draw()
}

// OnToast implements game.Presenter.
func (r *Renderer) OnToast(message string, duration time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.toast = message
	r.toastUntil = time.Time{}
	if duration > 0 {
		r.toastUntil = r.now().Add(duration)
		r.after(duration, r.Redraw)
	}
	r.draw()
}

// OnRowShake implements game.Presenter.
func (r *Renderer) OnRowShake(row int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shakeRow = row
	r.shakeUntil = r.now().Add(shakeDuration)
	r.after(shakeDuration, r.Redraw)
	r.draw()
}

// OnGameOver implements game.Presenter.
func (r *Renderer) OnGameOver(outcome board.Outcome, answer string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcome = outcome
	r.draw()
}

// OnReset implements game.Presenter.
func (r *Renderer) OnReset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clear()
	r.draw()
}

// Redraw repaints the whole screen, dropping expired toasts and shakes.
func (r *Renderer) Redraw() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.draw()
}

// draw renders everything; mu must be held.
func (r *Renderer) draw() {
	now := r.now()
	if !r.toastUntil.IsZero() && !now.Before(r.toastUntil) {
		r.toast = ""
		r.toastUntil = time.Time{}
	}
	if r.shakeRow >= 0 && !now.Before(r.shakeUntil) {
		r.shakeRow = -1
	}

	r.screen.Clear()
	r.drawText(gridLeft, 0, "WORDGRID", tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))

	for row := 0; row < r.rows; row++ {
		for col := 0; col < r.cols; col++ {
			r.drawCell(row, col)
		}
	}

	for _, line := range keyboardRows {
		for _, k := range line {
			style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
			if s, ok := r.keys[k]; ok {
				style = style.Background(statusColor(s))
			}
			x, y, _ := keyPosition(r.rows, k)
			r.screen.SetContent(x, y, k, style)
		}
	}

	y := gridTop + r.rows + 1 + len(keyboardRows) + 1
	if r.toast != "" {
		r.drawText(gridLeft, y, r.toast, tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true))
	}
	y += 2

	help := "Enter submit  Backspace delete  Ctrl+R new game  Ctrl+W reveal  Esc quit"
	if r.outcome.IsTerminal() {
		help = "Game over. Ctrl+R for a new game, Esc to quit"
	}
	r.drawText(gridLeft, y, help, tcell.StyleDefault.Foreground(tcell.ColorGray))

	r.screen.Show()
}

// drawCell renders one tile as " X ".
func (r *Renderer) drawCell(row, col int) {
	bg := colorEmpty
	switch {
	case r.shakeRow == row:
		bg = colorShake
	case r.statuses[row] != nil && col < len(r.statuses[row]):
		bg = statusColor(r.statuses[row][col])
	}
	style := tcell.StyleDefault.Background(bg).Foreground(tcell.ColorWhite).Bold(true)

	letter := r.cells[row][col]
	if letter == 0 {
		letter = ' '
	}

	x, y := cellPosition(row, col)
	r.screen.SetContent(x-1, y, ' ', style)
	r.screen.SetContent(x, y, letter, style)
	r.screen.SetContent(x+1, y, ' ', style)
}

// cellPosition returns the screen position of a tile's letter.
func cellPosition(row, col int) (x, y int) {
	return gridLeft + col*cellWidth + 1, gridTop + row
}

// keyPosition returns the screen position of a keyboard key below a grid of
// the given number of rows.
func keyPosition(rows int, k rune) (x, y int, ok bool) {
	for i, line := range keyboardRows {
		for j, c := range line {
			if c == k {
				return gridLeft + i + j*2, gridTop + rows + 1 + i, true
			}
		}
	}
	return 0, 0, false
}

func (r *Renderer) drawText(x, y int, msg string, style tcell.Style) {
	for i, ch := range []rune(msg) {
		r.screen.SetContent(x+i, y, ch, style)
	}
}
