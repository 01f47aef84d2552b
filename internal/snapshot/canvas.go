// Package snapshot renders a board into PNG images.
package snapshot

import (
	"image"

	"github.com/fogleman/gg"

	"github.com/vovakirdan/bigboard/internal/core"
)

// Canvas is a board.Canvas backed by a gg drawing context.
type Canvas struct {
	dc *gg.Context
}

// NewCanvas creates a w x h pixel canvas.
func NewCanvas(w, h int) *Canvas {
	return &Canvas{dc: gg.NewContext(w, h)}
}

// Context exposes the underlying drawing context.
func (c *Canvas) Context() *gg.Context {
	return c.dc
}

// Image returns the rendered image.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// Clear fills the whole canvas with bg.
func (c *Canvas) Clear(bg core.Color) error {
	c.dc.SetColor(bg)
	c.dc.Clear()
	return nil
}

// FillRect draws a solid rectangle.
func (c *Canvas) FillRect(r core.Rect, col core.Color) error {
	c.dc.SetColor(col)
	c.dc.DrawRectangle(float64(r.X), float64(r.Y), float64(r.W), float64(r.H))
	c.dc.Fill()
	return nil
}

// StrokeRect draws an outline that stays inside r.
func (c *Canvas) StrokeRect(r core.Rect, width float64, col core.Color) error {
	half := width / 2
	c.dc.SetColor(col)
	c.dc.SetLineWidth(width)
	c.dc.DrawRectangle(float64(r.X)+half, float64(r.Y)+half, float64(r.W)-width, float64(r.H)-width)
	c.dc.Stroke()
	return nil
}
