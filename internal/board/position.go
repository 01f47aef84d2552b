package board

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/bigboard/internal/core"
)

// Direction is one of the four cursor movement directions.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Delta returns the unit offset of the direction in grid space.
// Y grows downward.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// DirectionFromAction maps a directional action to a Direction.
// ok is false for every non-directional action.
func DirectionFromAction(a core.Action) (d Direction, ok bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	default:
		return 0, false
	}
}

// Position identifies a grid cell. Any integers are accepted; positions
// outside the grid are legal values.
type Position struct {
	X int
	Y int
}

// NewPosition creates a position.
func NewPosition(x, y int) Position {
	return Position{X: x, Y: y}
}

// String returns "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// MoveFrom returns the position one cell away from pos in direction dir.
func MoveFrom(pos Position, dir Direction) Position {
	dx, dy := dir.Delta()
	return Position{X: pos.X + dx, Y: pos.Y + dy}
}

// BoundsPolicy decides what happens when the cursor is moved off the grid.
type BoundsPolicy string

const (
	BoundsUnbounded BoundsPolicy = "unbounded" // cursor may leave the grid
	BoundsClamp     BoundsPolicy = "clamp"     // cursor stops at the edge
	BoundsWrap      BoundsPolicy = "wrap"      // cursor reappears on the opposite edge
)

// ParseBoundsPolicy validates a policy name.
func ParseBoundsPolicy(s string) (BoundsPolicy, error) {
	switch p := BoundsPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case BoundsUnbounded, BoundsClamp, BoundsWrap:
		return p, nil
	default:
		return "", fmt.Errorf("unknown bounds policy %q (want unbounded, clamp or wrap)", s)
	}
}

// Geometry describes grid and cell dimensions.
type Geometry struct {
	GridW int // cells per row
	GridH int // cells per column
	CellW int // cell width in pixels
	CellH int // cell height in pixels
}

// DefaultGeometry is the 30x20 grid of 32x32 cells.
func DefaultGeometry() Geometry {
	return Geometry{GridW: 30, GridH: 20, CellW: 32, CellH: 32}
}

// ScreenSize returns the pixel size of the whole grid.
func (g Geometry) ScreenSize() (w, h int) {
	return g.GridW * g.CellW, g.GridH * g.CellH
}

// Rect converts a position into its pixel rectangle.
func (g Geometry) Rect(p Position) core.Rect {
	return core.NewRect(p.X*g.CellW, p.Y*g.CellH, g.CellW, g.CellH)
}

// InBounds reports whether p addresses a grid cell.
func (g Geometry) InBounds(p Position) bool {
	return core.NewRect(0, 0, g.GridW, g.GridH).Contains(p.X, p.Y)
}

// Constrain applies a bounds policy to p.
func (g Geometry) Constrain(p Position, policy BoundsPolicy) Position {
	switch policy {
	case BoundsClamp:
		return Position{
			X: core.Clamp(p.X, 0, g.GridW-1),
			Y: core.Clamp(p.Y, 0, g.GridH-1),
		}
	case BoundsWrap:
		return Position{
			X: core.Wrap(p.X, g.GridW),
			Y: core.Wrap(p.Y, g.GridH),
		}
	default:
		return p
	}
}
