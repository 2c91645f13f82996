package tui

import (
	"github.com/gdamore/tcell/v2"

	"snake-classic/constants"
)

// KeyFor translates a terminal key event into a game key. quit is set for
// Esc and Ctrl-C; key is empty for anything the game ignores.
func KeyFor(ev *tcell.EventKey) (key string, quit bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return "", true
	case tcell.KeyEnter:
		return constants.KEY_ENTER, false
	case tcell.KeyUp:
		return constants.KEY_UP, false
	case tcell.KeyDown:
		return constants.KEY_DOWN, false
	case tcell.KeyLeft:
		return constants.KEY_LEFT, false
	case tcell.KeyRight:
		return constants.KEY_RIGHT, false
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return constants.KEY_SPACE, false
		case 'r', 'R':
			return constants.KEY_RESTART, false
		}
	}
	return "", false
}
