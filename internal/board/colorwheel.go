package board

import "github.com/vovakirdan/bigboard/internal/core"

// ColorWheel is a cyclic cursor over a fixed palette.
// It starts on the first entry and wraps in both directions.
type ColorWheel struct {
	palette Palette
	index   int
	reverse bool
}

// NewColorWheel creates a wheel over p positioned at p[0].
// p must not be empty.
func NewColorWheel(p Palette) *ColorWheel {
	if len(p) == 0 {
		panic("board: color wheel needs at least one color")
	}
	return &ColorWheel{
		palette: p,
		reverse: true,
	}
}

// SetReverse enables or disables backward traversal. With reverse disabled
// Backward is a no-op, which is how the first versions of the board behaved.
func (w *ColorWheel) SetReverse(enabled bool) {
	w.reverse = enabled
}

// Forward advances to the next color, wrapping from the last to the first.
func (w *ColorWheel) Forward() {
	w.index = (w.index + 1) % len(w.palette)
}

// Backward steps to the previous color, wrapping from the first to the last.
func (w *ColorWheel) Backward() {
	if !w.reverse {
		return
	}
	n := len(w.palette)
	w.index = (w.index - 1 + n) % n
}

// Color returns the selected color without moving the wheel.
func (w *ColorWheel) Color() core.Color {
	return w.palette[w.index].Color
}

// Name returns the name of the selected color.
func (w *ColorWheel) Name() string {
	return w.palette[w.index].Name
}

// Index returns the position of the selected color in the palette.
func (w *ColorWheel) Index() int {
	return w.index
}

// Len returns the palette size.
func (w *ColorWheel) Len() int {
	return len(w.palette)
}

// Palette returns the wheel's palette.
func (w *ColorWheel) Palette() Palette {
	return w.palette
}
