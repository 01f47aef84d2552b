// Package config provides YAML-based board configuration: embedded defaults,
// a file search path, validation, and conversion into board options.
package config

// Config is the full board configuration.
type Config struct {
	Window WindowConfig `yaml:"window"`
	Grid   GridConfig   `yaml:"grid"`
	Cursor CursorConfig `yaml:"cursor"`
	Wheel  WheelConfig  `yaml:"wheel"`
	Render RenderConfig `yaml:"render"`
}

// WindowConfig defines the window title and the frame clear color.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Background string `yaml:"background"` // palette name or #rrggbb
}

// GridConfig defines grid and cell dimensions.
type GridConfig struct {
	Width      int    `yaml:"width"`       // cells per row
	Height     int    `yaml:"height"`      // cells per column
	CellWidth  int    `yaml:"cell_width"`  // pixels
	CellHeight int    `yaml:"cell_height"` // pixels
	Background string `yaml:"background"`  // initial cell color
	Bounds     string `yaml:"bounds"`      // "unbounded", "clamp" or "wrap"
}

// CursorConfig defines the cursor start position and look.
type CursorConfig struct {
	X         int     `yaml:"x"`
	Y         int     `yaml:"y"`
	Color     string  `yaml:"color"`
	LineWidth float64 `yaml:"line_width"`
}

// WheelConfig defines color wheel behavior.
type WheelConfig struct {
	Reverse bool `yaml:"reverse"` // false turns scroll-up into a no-op
}

// RenderConfig defines frame pacing and redraw strategy.
type RenderConfig struct {
	UpdatesPerSecond int  `yaml:"updates_per_second"` // fixed update gate rate
	TickRate         int  `yaml:"tick_rate"`          // frontend frames per second
	Incremental      bool `yaml:"incremental"`        // redraw only dirty cells
	ClearFrame       bool `yaml:"clear_frame"`        // clear before each full redraw
}
