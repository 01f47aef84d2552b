package tui

import (
	"github.com/vovakirdan/bigboard/internal/board"
	"github.com/vovakirdan/bigboard/internal/core"
)

// ColumnsPerCell is how many terminal columns one grid cell occupies.
const ColumnsPerCell = 2

// Canvas maps the board's pixel rectangles onto a character Screen.
// One grid cell becomes ColumnsPerCell columns by one row.
type Canvas struct {
	screen *core.Screen
	cellW  int
	cellH  int
}

// NewCanvas creates a terminal canvas sized for the given geometry.
func NewCanvas(g board.Geometry) *Canvas {
	return &Canvas{
		screen: core.NewScreen(g.GridW*ColumnsPerCell, g.GridH),
		cellW:  g.CellW,
		cellH:  g.CellH,
	}
}

// Screen returns the backing character buffer.
func (c *Canvas) Screen() *core.Screen {
	return c.screen
}

// cells converts a pixel rectangle into a character rectangle.
func (c *Canvas) cells(r core.Rect) core.Rect {
	x0 := floorDiv(r.X*ColumnsPerCell, c.cellW)
	y0 := floorDiv(r.Y, c.cellH)
	x1 := floorDiv(r.Right()*ColumnsPerCell, c.cellW)
	y1 := floorDiv(r.Bottom(), c.cellH)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// visible converts r and reports whether any of it lands on the screen.
func (c *Canvas) visible(r core.Rect) (core.Rect, bool) {
	cr := c.cells(r)
	screen := core.NewRect(0, 0, c.screen.Width(), c.screen.Height())
	return cr, cr.Intersects(screen)
}

// Clear fills the whole screen with bg.
func (c *Canvas) Clear(bg core.Color) error {
	c.screen.Fill(core.ScreenCell{Rune: ' ', BG: bg})
	return nil
}

// FillRect paints the character cells covered by r.
func (c *Canvas) FillRect(r core.Rect, col core.Color) error {
	if cr, ok := c.visible(r); ok {
		c.screen.FillRect(cr, col)
	}
	return nil
}

// StrokeRect brackets every row of r with '[' and ']' in col, keeping the
// background underneath. The width is irrelevant at character resolution.
func (c *Canvas) StrokeRect(r core.Rect, _ float64, col core.Color) error {
	cr, ok := c.visible(r)
	if !ok {
		return nil
	}
	for y := cr.Y; y < cr.Bottom(); y++ {
		c.bracket(cr.X, y, '[', col)
		c.bracket(cr.Right()-1, y, ']', col)
	}
	return nil
}

func (c *Canvas) bracket(x, y int, r rune, col core.Color) {
	cell := c.screen.GetCell(x, y)
	cell.Rune = r
	cell.FG = col
	c.screen.SetCell(x, y, cell)
}

// floorDiv divides rounding toward negative infinity, so cells left of or
// above the grid map to negative coordinates instead of folding onto 0.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
