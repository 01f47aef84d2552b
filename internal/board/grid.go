package board

import "github.com/vovakirdan/bigboard/internal/core"

// Grid is the fixed board of filled cells, stored row-major:
// index = y*W + x.
type Grid struct {
	w, h  int
	cells []Cell
}

// NewGrid creates a w x h grid with every cell set to bg.
func NewGrid(w, h int, bg core.Color) *Grid {
	g := &Grid{
		w:     w,
		h:     h,
		cells: make([]Cell, w*h),
	}
	for i := range g.cells {
		g.cells[i] = NewCell(bg, Fill)
	}
	return g
}

// Size returns the grid dimensions in cells.
func (g *Grid) Size() (w, h int) {
	return g.w, g.h
}

func (g *Grid) inBounds(p Position) bool {
	return p.X >= 0 && p.X < g.w && p.Y >= 0 && p.Y < g.h
}

func (g *Grid) index(p Position) int {
	return p.Y*g.w + p.X
}

// ColorAt returns the color of the cell at p. ok is false off-grid.
func (g *Grid) ColorAt(p Position) (c core.Color, ok bool) {
	if !g.inBounds(p) {
		return core.Color{}, false
	}
	return g.cells[g.index(p)].Color(), true
}

// Paint recolors the cell at p. Off-grid positions are ignored.
// It reports whether a cell changed color.
func (g *Grid) Paint(p Position, c core.Color) bool {
	if !g.inBounds(p) {
		return false
	}
	cell := &g.cells[g.index(p)]
	if cell.Color() == c {
		return false
	}
	cell.SetColor(c)
	return true
}

// MarkDirty flags the cell at p for redraw. Off-grid positions are ignored.
func (g *Grid) MarkDirty(p Position) {
	if g.inBounds(p) {
		g.cells[g.index(p)].SetDirty()
	}
}

// DirtyCount returns how many cells are waiting to be redrawn.
func (g *Grid) DirtyCount() int {
	n := 0
	for i := range g.cells {
		if g.cells[i].Dirty() {
			n++
		}
	}
	return n
}

// each calls fn for every cell in row-major order, stopping at the first error.
func (g *Grid) each(fn func(p Position, c *Cell) error) error {
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			p := Position{X: x, Y: y}
			if err := fn(p, &g.cells[g.index(p)]); err != nil {
				return err
			}
		}
	}
	return nil
}

// Draw issues a filled-rectangle draw for every cell, or only for dirty
// cells when onlyDirty is set. It returns how many cells were drawn.
func (g *Grid) Draw(cv Canvas, geom Geometry, onlyDirty bool) (int, error) {
	n := 0
	err := g.each(func(p Position, c *Cell) error {
		ok, err := c.Draw(cv, geom.Rect(p), !onlyDirty)
		if ok {
			n++
		}
		return err
	})
	return n, err
}

// DrawDirty redraws only dirty cells and returns their positions.
func (g *Grid) DrawDirty(cv Canvas, geom Geometry) ([]Position, error) {
	var drawn []Position
	err := g.each(func(p Position, c *Cell) error {
		ok, err := c.Draw(cv, geom.Rect(p), false)
		if ok {
			drawn = append(drawn, p)
		}
		return err
	})
	return drawn, err
}

// Render draws every cell without changing dirty flags.
func (g *Grid) Render(cv Canvas, geom Geometry) error {
	return g.each(func(p Position, c *Cell) error {
		return c.Render(cv, geom.Rect(p))
	})
}
