package board

import "github.com/vovakirdan/bigboard/internal/core"

// DefaultCursorWidth is the outline width of the cursor in pixels.
const DefaultCursorWidth = 5.0

// Cursor is the single movable, outline-drawn cell.
type Cursor struct {
	pos  Position
	cell Cell
}

// NewCursor creates a cursor at pos with the given outline color and width.
func NewCursor(pos Position, c core.Color, width float64) *Cursor {
	return &Cursor{
		pos:  pos,
		cell: NewCell(c, Outline(width)),
	}
}

// Position returns the current cursor position.
func (c *Cursor) Position() Position {
	return c.pos
}

// Color returns the outline color.
func (c *Cursor) Color() core.Color {
	return c.cell.Color()
}

// Dirty reports whether the cursor needs to be redrawn.
func (c *Cursor) Dirty() bool {
	return c.cell.Dirty()
}

// SetColor changes the outline color.
func (c *Cursor) SetColor(col core.Color) {
	c.cell.SetColor(col)
}

// MoveTo moves the cursor one cell in dir.
func (c *Cursor) MoveTo(dir Direction) {
	c.pos = MoveFrom(c.pos, dir)
	c.cell.SetDirty()
}

// Place puts the cursor at pos.
func (c *Cursor) Place(pos Position) {
	if pos == c.pos {
		return
	}
	c.pos = pos
	c.cell.SetDirty()
}

// Draw renders the outline when dirty or forced.
func (c *Cursor) Draw(cv Canvas, g Geometry, force bool) (bool, error) {
	return c.cell.Draw(cv, g.Rect(c.pos), force)
}

// Render draws the outline without changing the dirty flag.
func (c *Cursor) Render(cv Canvas, g Geometry) error {
	return c.cell.Render(cv, g.Rect(c.pos))
}
