package board

import "github.com/vovakirdan/bigboard/internal/core"

// DrawMode selects between a filled rectangle and an outline.
type DrawMode struct {
	Outline   bool
	LineWidth float64 // outline stroke width in pixels
}

// Fill draws solid rectangles.
var Fill = DrawMode{}

// Outline draws rectangle borders of the given width.
func Outline(width float64) DrawMode {
	return DrawMode{Outline: true, LineWidth: width}
}

// Cell is one drawable square: a color, a draw mode and a dirty flag.
// New cells start dirty so they are drawn on the first frame.
type Cell struct {
	color core.Color
	mode  DrawMode
	dirty bool
}

// NewCell creates a dirty cell.
func NewCell(c core.Color, mode DrawMode) Cell {
	return Cell{color: c, mode: mode, dirty: true}
}

// Color returns the cell color.
func (c *Cell) Color() core.Color {
	return c.color
}

// Dirty reports whether the cell needs to be redrawn.
func (c *Cell) Dirty() bool {
	return c.dirty
}

// SetColor changes the color and marks the cell dirty.
func (c *Cell) SetColor(col core.Color) {
	c.color = col
	c.dirty = true
}

// SetDirty marks the cell for redraw.
func (c *Cell) SetDirty() {
	c.dirty = true
}

// Draw renders the cell at r when it is dirty or force is set, then clears
// the dirty flag. It reports whether a draw call was issued.
func (c *Cell) Draw(cv Canvas, r core.Rect, force bool) (bool, error) {
	if !c.dirty && !force {
		return false, nil
	}
	if err := c.Render(cv, r); err != nil {
		return false, err
	}
	c.dirty = false
	return true, nil
}

// Render issues the draw call for the cell without touching the dirty flag.
func (c *Cell) Render(cv Canvas, r core.Rect) error {
	if c.mode.Outline {
		return cv.StrokeRect(r, c.mode.LineWidth, c.color)
	}
	return cv.FillRect(r, c.color)
}
