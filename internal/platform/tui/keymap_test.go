package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bigboard/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"vim k", runeKey('k'), core.ActionUp},
		{"vim j", runeKey('j'), core.ActionDown},
		{"vim h", runeKey('h'), core.ActionLeft},
		{"vim l", runeKey('l'), core.ActionRight},
		{"next color", runeKey(']'), core.ActionColorNext},
		{"prev color", runeKey('['), core.ActionColorPrev},
		{"paint", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionPaint},
		{"screenshot", tea.KeyMsg{Type: tea.KeyCtrlS}, core.ActionScreenshot},
		{"copy", runeKey('y'), core.ActionCopyColor},
		{"help", runeKey('?'), core.ActionHelp},
		{"quit q", runeKey('q'), core.ActionQuit},
		{"quit esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit},
		{"quit ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('z'), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.Action(tt.msg); got != tt.want {
				t.Errorf("Action(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestWheelDelta(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.MouseMsg
		want int
	}{
		{"wheel up", tea.MouseMsg{Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress}, 1},
		{"wheel down", tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress}, -1},
		{"left click", tea.MouseMsg{Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}, 0},
		{"motion", tea.MouseMsg{Button: tea.MouseButtonWheelUp, Action: tea.MouseActionMotion}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WheelDelta(tt.msg); got != tt.want {
				t.Errorf("WheelDelta() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestHelpBindings(t *testing.T) {
	km := DefaultKeyMap()
	if len(km.ShortHelp()) == 0 {
		t.Error("ShortHelp() is empty")
	}
	total := 0
	for _, col := range km.FullHelp() {
		total += len(col)
	}
	if total != 11 {
		t.Errorf("FullHelp() has %d bindings, want 11", total)
	}
}
