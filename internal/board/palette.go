// Package board holds the Big Board domain: the color wheel, the grid and
// cursor coordinate model, and the single program state that every frontend
// callback mutates.
package board

import (
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/bigboard/internal/core"
)

// NamedColor is a palette entry.
type NamedColor struct {
	Name  string
	Color core.Color
}

// Palette is a fixed, ordered list of named colors.
type Palette []NamedColor

// fromUnit converts [0,1] float channels to an opaque 8-bit color.
func fromUnit(r, g, b float64) core.Color {
	r8, g8, b8 := colorful.Color{R: r, G: g, B: b}.RGB255()
	return core.RGB(r8, g8, b8)
}

// Named colors. Channel values are kept in unit form so they read the same
// as the swatches they were picked from.
var (
	Black      = core.Black
	White      = core.White
	DarkGray   = fromUnit(0.34, 0.34, 0.34)
	LightGray  = fromUnit(0.63, 0.63, 0.63)
	Blue       = fromUnit(0.16, 0.29, 0.84)
	LightBlue  = fromUnit(0.61, 0.68, 1.0)
	Cyan       = fromUnit(0.16, 0.82, 0.82)
	Green      = fromUnit(0.11, 0.41, 0.0)
	LightGreen = fromUnit(0.51, 0.77, 0.03)
	Yellow     = fromUnit(1.0, 0.93, 0.01)
	Brown      = fromUnit(0.51, 0.29, 0.0)
	Tan        = fromUnit(0.91, 0.87, 0.04)
	Orange     = fromUnit(1.0, 0.57, 0.01)
	Purple     = fromUnit(0.51, 0.15, 0.05)
	Red        = fromUnit(0.68, 0.14, 0.01)
	Pink       = fromUnit(1.0, 0.80, 0.06)

	// HotPink is the default window background.
	HotPink = core.RGB(0xff, 0x69, 0xb3)
)

// DefaultPalette returns the 16-color wheel in wheel order.
func DefaultPalette() Palette {
	return Palette{
		{"black", Black},
		{"white", White},
		{"dark_gray", DarkGray},
		{"light_gray", LightGray},
		{"blue", Blue},
		{"light_blue", LightBlue},
		{"cyan", Cyan},
		{"green", Green},
		{"light_green", LightGreen},
		{"yellow", Yellow},
		{"brown", Brown},
		{"tan", Tan},
		{"orange", Orange},
		{"purple", Purple},
		{"red", Red},
		{"pink", Pink},
	}
}

// Lookup finds a color by name. Names are matched case-insensitively and
// "-" or " " may stand in for "_".
func (p Palette) Lookup(name string) (NamedColor, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("-", "_", " ", "_").Replace(key)
	for _, nc := range p {
		if nc.Name == key {
			return nc, true
		}
	}
	return NamedColor{}, false
}

// Names returns palette names in order.
func (p Palette) Names() []string {
	names := make([]string, len(p))
	for i, nc := range p {
		names[i] = nc.Name
	}
	return names
}
