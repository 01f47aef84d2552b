package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/bigboard/internal/core"
)

// canvas draws board rectangles onto an ebiten screen image.
type canvas struct {
	dst *ebiten.Image
}

func (c canvas) Clear(bg core.Color) error {
	c.dst.Fill(bg)
	return nil
}

func (c canvas) FillRect(r core.Rect, col core.Color) error {
	x, y, w, h := rectF(r)
	vector.DrawFilledRect(c.dst, x, y, w, h, col, false)
	return nil
}

func (c canvas) StrokeRect(r core.Rect, width float64, col core.Color) error {
	x, y, w, h := strokePath(r, width)
	vector.StrokeRect(c.dst, x, y, w, h, float32(width), col, false)
	return nil
}

func rectF(r core.Rect) (x, y, w, h float32) {
	return float32(r.X), float32(r.Y), float32(r.W), float32(r.H)
}

// strokePath returns the rectangle ebiten should stroke so that a line of the
// given width, centered on the path, stays inside r.
func strokePath(r core.Rect, width float64) (x, y, w, h float32) {
	half := float32(width / 2)
	x, y, w, h = rectF(r)
	return x + half, y + half, w - 2*half, h - 2*half
}
