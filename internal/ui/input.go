package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/wordgrid/internal/game"
)

var _ game.Presenter = (*Renderer)(nil)

// TranslateKey maps a key press to a game event.
// quit is true for Escape and Ctrl+C; ok is false for keys with no meaning.
func TranslateKey(ev *tcell.EventKey) (gev game.Event, quit, ok bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.Event{}, true, false

	case tcell.KeyEnter:
		return game.Submit(), false, true
	case tcell.KeyBackspace, tcell.KeyBackspace2, tcell.KeyDelete:
		return game.Backspace(), false, true
	case tcell.KeyCtrlR:
		return game.Reset(), false, true
	case tcell.KeyCtrlW:
		return game.Reveal(), false, true

	case tcell.KeyRune:
		r := ev.Rune()
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			// Some terminals report Ctrl+letter as a rune with a modifier
			switch r {
			case 'r', 'R':
				return game.Reset(), false, true
			case 'w', 'W':
				return game.Reveal(), false, true
			case 'c', 'C':
				return game.Event{}, true, false
			}
			return game.Event{}, false, false
		}
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return game.Letter(r), false, true
		}
	}
	return game.Event{}, false, false
}

// ReadInput polls the terminal and forwards game events until quit is
// pressed or the screen is closed. It closes events before returning.
func ReadInput(s *Screen, r *Renderer, events chan<- game.Event) {
	defer close(events)
	for {
		switch ev := s.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventKey:
			gev, quit, ok := TranslateKey(ev)
			if quit {
				return
			}
			if ok {
				events <- gev
			}
		case *tcell.EventResize:
			s.Sync()
			r.Redraw()
		}
	}
}
