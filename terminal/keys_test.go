package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestKeyAction(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Action
	}{
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), ActionQuit},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ActionQuit},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), ActionQuit},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), ActionToggleRun},
		{"step", tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone), ActionStep},
		{"reset", tcell.NewEventKey(tcell.KeyRune, 'R', tcell.ModShift), ActionReset},
		{"faster", tcell.NewEventKey(tcell.KeyRune, '.', tcell.ModNone), ActionFaster},
		{"slower", tcell.NewEventKey(tcell.KeyRune, ',', tcell.ModNone), ActionSlower},
		{"mute", tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone), ActionMute},
		{"unbound rune", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), ActionNone},
		{"unbound key", tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone), ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KeyAction(tt.ev); got != tt.want {
				t.Errorf("KeyAction() = %d, want %d", got, tt.want)
			}
		})
	}
}
