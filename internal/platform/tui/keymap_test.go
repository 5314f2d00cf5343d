package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/wordfall/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, core.ActionMute},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"letter q is typed", runeKey("q"), core.ActionNone},
		{"letter r is typed", runeKey("r"), core.ActionNone},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.MapKey(tc.msg); got != tc.want {
				t.Errorf("MapKey() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	for _, s := range []string{"c", "A", "t"} {
		if km.MapKeyToFrame(runeKey(s), &frame) {
			t.Fatalf("%q reported as quit", s)
		}
	}
	if km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyEnter}, &frame) {
		t.Fatal("enter reported as quit")
	}
	// Alt-modified runes are not typing
	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x"), Alt: true}, &frame)

	if got := string(frame.Text); got != "cAt" {
		t.Errorf("typed text = %q, expected %q", got, "cAt")
	}
	if !frame.Has(core.ActionConfirm) {
		t.Error("enter did not set Confirm")
	}
	if !km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyCtrlC}, &frame) {
		t.Error("ctrl+c should quit")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyLeft}, MenuActionLeft},
		{runeKey("l"), MenuActionRight},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{runeKey("q"), MenuActionQuit},
		{runeKey("z"), MenuActionNone},
	}

	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(tc.msg); got != tc.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
		}
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColored(0, 0, "cat", core.ColorGreen)
	s.DrawTextColored(3, 0, "dog", core.ColorDarkGray)

	out := RenderScreen(s)
	if !strings.Contains(out, "cat") || !strings.Contains(out, "dog") {
		t.Errorf("rendered screen lost text: %q", out)
	}
	if got := strings.Count(out, "\n"); got != 1 {
		t.Errorf("rendered %d line breaks, expected 1", got)
	}
}

func TestRenderStatus(t *testing.T) {
	out := RenderStatus(core.GameState{Score: 42, Lives: 2, Level: 3, Muted: true}, 60)

	for _, want := range []string{"Score: 42", "Level: 3", "♥♥", "♡", "muted"} {
		if !strings.Contains(out, want) {
			t.Errorf("status %q missing %q", out, want)
		}
	}
}
