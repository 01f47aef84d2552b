package core

// Action represents a semantic board action, abstracted from physical input.
// Frontends translate keys and mouse events into actions so the board never
// sees framework key codes.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // Up arrow, k - move cursor up
	ActionDown              // Down arrow, j - move cursor down
	ActionLeft              // Left arrow, h - move cursor left
	ActionRight             // Right arrow, l - move cursor right
	ActionColorNext         // ] - next palette color
	ActionColorPrev         // [ - previous palette color
	ActionPaint             // Space - paint the cell under the cursor
	ActionScreenshot        // Ctrl+S - write a PNG screenshot
	ActionCopyColor         // y - copy the current color to the clipboard
	ActionHelp              // ? - toggle help
	ActionQuit              // q, Ctrl+C, Esc - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionColorNext:
		return "ColorNext"
	case ActionColorPrev:
		return "ColorPrev"
	case ActionPaint:
		return "Paint"
	case ActionScreenshot:
		return "Screenshot"
	case ActionCopyColor:
		return "CopyColor"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the input delivered during one frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// WheelY is the accumulated vertical wheel delta. Positive means the
	// wheel was scrolled up (away from the user).
	WheelY int
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

// Scroll adds a vertical wheel delta to the frame.
func (f *InputFrame) Scroll(dy int) {
	f.WheelY += dy
}

// Empty reports whether nothing happened this frame.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && f.WheelY == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.WheelY = 0
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.WheelY = f.WheelY
	return clone
}
