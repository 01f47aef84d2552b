package board

import "github.com/vovakirdan/bigboard/internal/core"

// Canvas is the drawing surface a frontend hands to State.Draw.
// Rectangles are in pixel space as produced by Geometry.Rect.
type Canvas interface {
	// Clear fills the whole surface with bg.
	Clear(bg core.Color) error

	// FillRect draws a solid rectangle.
	FillRect(r core.Rect, c core.Color) error

	// StrokeRect draws a rectangle outline of the given width. The stroke
	// stays inside r so that repainting r erases it.
	StrokeRect(r core.Rect, width float64, c core.Color) error
}
