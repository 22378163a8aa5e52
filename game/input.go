package game

import (
	"github.com/rfenner/gridfire/terminal"
)

// Action is a game intent decoded from a keypress
type Action uint8

const (
	ActionNone Action = iota
	ActionQuit
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionToggleStats
	ActionToggleAudio
)

// ActionFor maps a key event to a game action. Vi movement keys and arrows
// are both accepted.
func ActionFor(ev terminal.KeyEvent) Action {
	switch ev.Key {
	case terminal.KeyUp:
		return ActionMoveUp
	case terminal.KeyDown:
		return ActionMoveDown
	case terminal.KeyLeft:
		return ActionMoveLeft
	case terminal.KeyRight:
		return ActionMoveRight
	case terminal.KeyCtrlC, terminal.KeyEscape:
		return ActionQuit
	case terminal.KeyRune:
		switch ev.Rune {
		case 'k':
			return ActionMoveUp
		case 'j':
			return ActionMoveDown
		case 'h':
			return ActionMoveLeft
		case 'l':
			return ActionMoveRight
		case 'q':
			return ActionQuit
		case 's':
			return ActionToggleStats
		case 'm':
			return ActionToggleAudio
		}
	}
	return ActionNone
}

// Delta returns the movement vector for a move action, or (0,0)
func (a Action) Delta() (int, int) {
	switch a {
	case ActionMoveUp:
		return 0, -1
	case ActionMoveDown:
		return 0, 1
	case ActionMoveLeft:
		return -1, 0
	case ActionMoveRight:
		return 1, 0
	}
	return 0, 0
}
