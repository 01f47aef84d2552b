package core

import "fmt"

// Color is an 8-bit RGBA color. It implements image/color.Color so that it can
// be handed directly to image-based renderers.
type Color struct {
	R, G, B, A uint8
}

// Basic colors used as defaults across the board.
var (
	Black = Color{0x00, 0x00, 0x00, 0xff}
	White = Color{0xff, 0xff, 0xff, 0xff}
)

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xff}
}

// RGBA returns alpha-premultiplied 16-bit channels, as image/color.Color requires.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	r = r * uint32(c.A) / 0xff
	g = uint32(c.G)
	g |= g << 8
	g = g * uint32(c.A) / 0xff
	b = uint32(c.B)
	b |= b << 8
	b = b * uint32(c.A) / 0xff
	a = uint32(c.A)
	a |= a << 8
	return r, g, b, a
}

// Hex returns the color as "#rrggbb". Alpha is dropped.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}
