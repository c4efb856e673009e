package board

import (
	"errors"
	"fmt"

	"github.com/samdwyer/wordgrid/internal/match"
)

const (
	// Default grid dimensions
	DefaultRows = 6
	DefaultCols = 5
)

var (
	// ErrAlreadyTerminal is returned by mutators called after the game ended.
	ErrAlreadyTerminal = errors.New("board: game already finished")
	// ErrRowsExhausted is returned when advancing past the last row.
	ErrRowsExhausted = errors.New("board: no rows left")
	// ErrRowNotEvaluated is returned when advancing before the row was scored.
	ErrRowNotEvaluated = errors.New("board: active row not evaluated")
	// ErrRowIncomplete is returned when scoring a row that is not full.
	ErrRowIncomplete = errors.New("board: active row incomplete")
)

// Board is the grid, cursor, keyboard summary and outcome of one game.
// It is not safe for concurrent use; a single controller owns it.
type Board struct {
	rows     int
	cols     int
	cells    [][]Cell
	statuses [][]match.Status // nil until the row is evaluated
	row      int
	col      int
	outcome  Outcome
	keyboard Keyboard
}

// New creates an empty board with the given dimensions.
func New(rows, cols int) *Board {
	if rows <= 0 {
		rows = DefaultRows
	}
	if cols <= 0 {
		cols = DefaultCols
	}
	b := &Board{rows: rows, cols: cols}
	b.Reset()
	return b
}

// Reset clears every cell, moves the cursor to (0,0), empties the keyboard
// and puts the outcome back to in progress.
func (b *Board) Reset() {
	cells := make([][]Cell, b.rows)
	for r := range cells {
		cells[r] = make([]Cell, b.cols)
	}
	b.cells = cells
	b.statuses = make([][]match.Status, b.rows)
	b.row, b.col = 0, 0
	b.outcome = InProgress
	b.keyboard = make(Keyboard)
}

// InsertLetter writes ch at the cursor and advances it.
// Returns false without changing anything if the game is over, the row is
// full or ch is not an ASCII letter.
func (b *Board) InsertLetter(ch rune) bool {
	if b.outcome.IsTerminal() || b.IsRowComplete() {
		return false
	}
	letter, ok := toLetter(ch)
	if !ok {
		return false
	}
	b.cells[b.row][b.col] = letter
	b.col++
	return true
}

// DeleteLetter clears the cell before the cursor and moves back onto it.
// Returns false if the row is empty or the game is over.
func (b *Board) DeleteLetter() bool {
	if b.outcome.IsTerminal() || b.col == 0 {
		return false
	}
	b.col--
	b.cells[b.row][b.col] = CellEmpty
	return true
}

// CurrentGuess returns the letters written so far in the active row.
func (b *Board) CurrentGuess() string {
	out := make([]rune, 0, b.cols)
	for _, c := range b.cells[b.row][:b.col] {
		out = append(out, rune(c))
	}
	return string(out)
}

// IsRowComplete returns true once every cell of the active row is written.
func (b *Board) IsRowComplete() bool {
	return b.col == b.cols
}

// Evaluate records the statuses of the active row and folds them into the
// keyboard. Either everything is applied or, on error, nothing is.
func (b *Board) Evaluate(statuses []match.Status) ([]KeyUpdate, error) {
	if b.outcome.IsTerminal() {
		return nil, ErrAlreadyTerminal
	}
	if !b.IsRowComplete() {
		return nil, ErrRowIncomplete
	}
	if b.statuses[b.row] != nil {
		return nil, fmt.Errorf("board: row %d already evaluated", b.row)
	}
	if len(statuses) != b.cols {
		return nil, fmt.Errorf("board: got %d statuses for %d columns", len(statuses), b.cols)
	}

	row := make([]match.Status, b.cols)
	copy(row, statuses)
	b.statuses[b.row] = row
	return b.keyboard.Apply(b.CurrentGuess(), row), nil
}

// AdvanceRow moves the cursor to the start of the next row.
// The active row must be complete and evaluated. ErrRowsExhausted is returned,
// leaving the cursor where it is, when the active row was the last one.
func (b *Board) AdvanceRow() error {
	if b.outcome.IsTerminal() {
		return ErrAlreadyTerminal
	}
	if !b.IsRowComplete() || b.statuses[b.row] == nil {
		return ErrRowNotEvaluated
	}
	if b.row+1 >= b.rows {
		return ErrRowsExhausted
	}
	b.row++
	b.col = 0
	return nil
}

// MarkOutcome ends the game. It can only happen once per game.
func (b *Board) MarkOutcome(o Outcome) error {
	if b.outcome.IsTerminal() {
		return ErrAlreadyTerminal
	}
	if !o.IsTerminal() {
		return fmt.Errorf("board: %s is not a final outcome", o)
	}
	b.outcome = o
	return nil
}

// Rows returns the number of rows.
func (b *Board) Rows() int { return b.rows }

// Cols returns the number of columns.
func (b *Board) Cols() int { return b.cols }

// Cursor returns the active row and the next writable column.
func (b *Board) Cursor() (row, col int) { return b.row, b.col }

// ActiveRow returns the row accepting input, or false once the game is over.
func (b *Board) ActiveRow() (int, bool) {
	if b.outcome.IsTerminal() {
		return 0, false
	}
	return b.row, true
}

// Outcome returns the current outcome.
func (b *Board) Outcome() Outcome { return b.outcome }

// Cell returns the cell at (row, col), CellEmpty when out of bounds.
func (b *Board) Cell(row, col int) Cell {
	if row < 0 || row >= b.rows || col < 0 || col >= b.cols {
		return CellEmpty
	}
	return b.cells[row][col]
}

// RowStatuses returns a copy of the statuses of an evaluated row, nil otherwise.
func (b *Board) RowStatuses(row int) []match.Status {
	if row < 0 || row >= b.rows || b.statuses[row] == nil {
		return nil
	}
	out := make([]match.Status, len(b.statuses[row]))
	copy(out, b.statuses[row])
	return out
}

// KeyStatus returns the best status seen for letter, false if never evaluated.
func (b *Board) KeyStatus(letter rune) (match.Status, bool) {
	l, ok := toLetter(letter)
	if !ok {
		return match.Absent, false
	}
	s, seen := b.keyboard[rune(l)]
	return s, seen
}

// Keyboard returns a snapshot of the keyboard state.
func (b *Board) Keyboard() Keyboard {
	return b.keyboard.clone()
}
