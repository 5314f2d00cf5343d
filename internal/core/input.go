package core

// Action represents a semantic control action, abstracted from physical key presses.
// Letters typed at enemies travel separately in InputFrame.Text.
type Action int

const (
	ActionNone    Action = iota
	ActionConfirm        // Enter - start a round, or restart after game over
	ActionMute           // Toggle sound effects
	ActionQuit           // Ctrl+C / Esc - leave the game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionConfirm:
		return "Confirm"
	case ActionMute:
		return "Mute"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the input that arrived between two simulation steps.
// Text preserves keystroke order so words are typed exactly as pressed.
type InputFrame struct {
	Actions map[Action]bool
	Text    []rune
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Type appends a typed character.
func (f *InputFrame) Type(r rune) {
	f.Text = append(f.Text, r)
}

// Clear resets all actions and typed text for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Text = f.Text[:0]
}

// Empty reports whether nothing was pressed.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && len(f.Text) == 0
}
