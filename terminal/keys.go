package terminal

import "github.com/gdamore/tcell/v2"

// Action is a user command decoded from a key press.
type Action uint8

const (
	ActionNone Action = iota
	ActionQuit
	ActionToggleRun
	ActionStep
	ActionReset
	ActionFaster
	ActionSlower
	ActionMute
)

// KeyAction maps a key event to the action it triggers.
func KeyAction(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyRune:
	default:
		return ActionNone
	}

	switch ev.Rune() {
	case 'q', 'Q':
		return ActionQuit
	case ' ':
		return ActionToggleRun
	case 's', 'S':
		return ActionStep
	case 'r', 'R':
		return ActionReset
	case '.', '>':
		return ActionFaster
	case ',', '<':
		return ActionSlower
	case 'm', 'M':
		return ActionMute
	}
	return ActionNone
}
