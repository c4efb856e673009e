package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/wordgrid/internal/board"
	"github.com/samdwyer/wordgrid/internal/game"
	"github.com/samdwyer/wordgrid/internal/match"
)

func newTestRenderer(t *testing.T) (*Renderer, *Screen) {
	t.Helper()
	s, err := NewSimulationScreen(80, 24)
	if err != nil {
		t.Fatalf("NewSimulationScreen() error = %v", err)
	}
	t.Cleanup(s.Close)
	r := NewRenderer(s, board.DefaultRows, board.DefaultCols)
	r.after = func(time.Duration, func()) {}
	return r, s
}

func background(style tcell.Style) tcell.Color {
	_, bg, _ := style.Decompose()
	return bg
}

func lineText(s *Screen, y int) string {
	w, _ := s.Size()
	out := make([]rune, 0, w)
	for x := 0; x < w; x++ {
		r, _ := s.Content(x, y)
		out = append(out, r)
	}
	return string(out)
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#16a34a", true},
		{"f59e0b", true},
		{"#FFFFFF", true},
		{"invalid", false},
		{"#FFF", false},
		{"#GG0000", false},
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}

	c := MustParseHexColor("#16a34a")
	if r, g, b := c.RGB(); r != 0x16 || g != 0xa3 || b != 0x4a {
		t.Errorf("MustParseHexColor(#16a34a) = %d,%d,%d", r, g, b)
	}
}

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want game.Event
		quit bool
		ok   bool
	}{
		{"letter", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), game.Letter('a'), false, true},
		{"upper letter", tcell.NewEventKey(tcell.KeyRune, 'Q', tcell.ModNone), game.Letter('Q'), false, true},
		{"digit", tcell.NewEventKey(tcell.KeyRune, '3', tcell.ModNone), game.Event{}, false, false},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), game.Submit(), false, true},
		{"backspace", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), game.Backspace(), false, true},
		{"reset", tcell.NewEventKey(tcell.KeyCtrlR, 0, tcell.ModCtrl), game.Reset(), false, true},
		{"reveal", tcell.NewEventKey(tcell.KeyCtrlW, 0, tcell.ModCtrl), game.Reveal(), false, true},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), game.Event{}, true, false},
		{"arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), game.Event{}, false, false},
	}

	for _, tt := range tests {
		got, quit, ok := TranslateKey(tt.ev)
		if got != tt.want || quit != tt.quit || ok != tt.ok {
			t.Errorf("%s: TranslateKey() = %+v, %v, %v; want %+v, %v, %v",
				tt.name, got, quit, ok, tt.want, tt.quit, tt.ok)
		}
	}
}

func TestRendererCells(t *testing.T) {
	r, s := newTestRenderer(t)

	r.OnCellUpdated(0, 0, 'C')
	r.OnCellUpdated(0, 1, 'R')
	x, y := cellPosition(0, 1)
	if got, _ := s.Content(x, y); got != 'R' {
		t.Errorf("cell (0,1) shows %q, want R", got)
	}

	r.OnCellUpdated(0, 1, 0)
	if got, _ := s.Content(x, y); got != ' ' {
		t.Errorf("cleared cell shows %q, want space", got)
	}

	// Out of range updates are ignored
	r.OnCellUpdated(99, 0, 'X')
}

func TestRendererRowColors(t *testing.T) {
	r, s := newTestRenderer(t)
	A, P, C := match.Absent, match.Present, match.Correct

	for i, ch := range "SLATE" {
		r.OnCellUpdated(0, i, ch)
	}
	r.OnRowEvaluated(0, []match.Status{A, P, C, A, A})

	want := []tcell.Color{colorAbsent, colorPresent, colorCorrect, colorAbsent, colorAbsent}
	for col, color := range want {
		x, y := cellPosition(0, col)
		_, style := s.Content(x, y)
		if background(style) != color {
			t.Errorf("tile (0,%d) background = %v, want %v", col, background(style), color)
		}
	}

	x, y := cellPosition(1, 0)
	if _, style := s.Content(x, y); background(style) != colorEmpty {
		t.Error("unevaluated tile should use the empty color")
	}
}

func TestRendererKeyboard(t *testing.T) {
	r, s := newTestRenderer(t)

	r.OnKeyboardUpdated('E', match.Correct)
	x, y, ok := keyPosition(board.DefaultRows, 'E')
	if !ok {
		t.Fatal("keyPosition(E) not found")
	}
	got, style := s.Content(x, y)
	if got != 'E' || background(style) != colorCorrect {
		t.Errorf("key E = %q bg %v, want E on correct color", got, background(style))
	}

	if _, _, ok := keyPosition(board.DefaultRows, '1'); ok {
		t.Error("keyPosition(1) should not exist")
	}
}

func TestRendererToastExpires(t *testing.T) {
	r, s := newTestRenderer(t)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return now }

	toastY := gridTop + r.rows + 1 + len(keyboardRows) + 1
	r.OnToast("Word is incomplete", time.Hour)
	if got := lineText(s, toastY); !strings.Contains(got, "Word is incomplete") {
		t.Fatalf("toast line = %q", got)
	}

	now = now.Add(2 * time.Hour)
	r.Redraw()
	if got := lineText(s, toastY); strings.Contains(got, "Word is incomplete") {
		t.Error("toast still shown after it expired")
	}

	// Zero duration sticks
	r.OnToast("Error fetching word!", 0)
	now = now.Add(24 * time.Hour)
	r.Redraw()
	if got := lineText(s, toastY); !strings.Contains(got, "Error fetching word!") {
		t.Error("blocking toast disappeared")
	}
}

func TestRendererShake(t *testing.T) {
	r, s := newTestRenderer(t)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return now }

	r.OnRowShake(0)
	x, y := cellPosition(0, 2)
	if _, style := s.Content(x, y); background(style) != colorShake {
		t.Error("shaking row not highlighted")
	}

	now = now.Add(time.Second)
	r.Redraw()
	if _, style := s.Content(x, y); background(style) == colorShake {
		t.Error("shake highlight not cleared")
	}
}

func TestRendererReset(t *testing.T) {
	r, s := newTestRenderer(t)

	r.OnCellUpdated(0, 0, 'C')
	r.OnKeyboardUpdated('C', match.Correct)
	r.OnGameOver(board.Won, "CRANE")
	r.OnReset()

	x, y := cellPosition(0, 0)
	if got, _ := s.Content(x, y); got != ' ' {
		t.Errorf("cell after reset = %q, want space", got)
	}
	kx, ky, _ := keyPosition(board.DefaultRows, 'C')
	if _, style := s.Content(kx, ky); background(style) == colorCorrect {
		t.Error("keyboard color survived reset")
	}
	if r.outcome != board.InProgress {
		t.Errorf("outcome = %v after reset", r.outcome)
	}
}
