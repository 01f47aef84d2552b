package config

import (
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/bigboard/internal/board"
	"github.com/vovakirdan/bigboard/internal/core"
)

// ParseColor resolves a palette name or a #rrggbb / #rgb hex string.
func ParseColor(s string, p board.Palette) (core.Color, error) {
	if nc, ok := p.Lookup(s); ok {
		return nc.Color, nil
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return core.Color{}, fmt.Errorf("unknown color %q: want #rrggbb or one of %s", s, strings.Join(p.Names(), ", "))
	}
	r, g, b := c.RGB255()
	return core.RGB(r, g, b), nil
}

// Options converts the configuration into board options.
func (c Config) Options() (board.Options, error) {
	opts := board.DefaultOptions()
	p := opts.Palette

	bg, err := ParseColor(c.Window.Background, p)
	if err != nil {
		return opts, fmt.Errorf("window background: %w", err)
	}
	gridColor, err := ParseColor(c.Grid.Background, p)
	if err != nil {
		return opts, fmt.Errorf("grid background: %w", err)
	}
	cursorColor, err := ParseColor(c.Cursor.Color, p)
	if err != nil {
		return opts, fmt.Errorf("cursor color: %w", err)
	}
	bounds, err := board.ParseBoundsPolicy(c.Grid.Bounds)
	if err != nil {
		return opts, fmt.Errorf("grid bounds: %w", err)
	}

	opts.Geometry = board.Geometry{
		GridW: c.Grid.Width,
		GridH: c.Grid.Height,
		CellW: c.Grid.CellWidth,
		CellH: c.Grid.CellHeight,
	}
	opts.Background = bg
	opts.GridColor = gridColor
	opts.CursorStart = board.NewPosition(c.Cursor.X, c.Cursor.Y)
	opts.CursorColor = cursorColor
	opts.CursorWidth = c.Cursor.LineWidth
	opts.Bounds = bounds
	opts.ReverseWheel = c.Wheel.Reverse
	opts.UpdatesPerSecond = c.Render.UpdatesPerSecond
	opts.Incremental = c.Render.Incremental
	opts.ClearFrame = c.Render.ClearFrame
	return opts, nil
}
