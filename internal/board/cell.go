// Package board holds the state of a single game: the letter grid, the
// cursor, the keyboard summary and the outcome.
package board

// Cell represents a single grid cell.
type Cell rune

// CellEmpty is an unwritten cell.
const CellEmpty Cell = 0

// IsEmpty returns true if no letter has been written to the cell.
func (c Cell) IsEmpty() bool {
	return c == CellEmpty
}

// Rune returns the cell's display character, a space when empty.
func (c Cell) Rune() rune {
	if c.IsEmpty() {
		return ' '
	}
	return rune(c)
}

// toLetter upper-cases an ASCII letter. Anything else is rejected.
func toLetter(ch rune) (Cell, bool) {
	switch {
	case ch >= 'A' && ch <= 'Z':
		return Cell(ch), true
	case ch >= 'a' && ch <= 'z':
		return Cell(ch - 'a' + 'A'), true
	default:
		return CellEmpty, false
	}
}
