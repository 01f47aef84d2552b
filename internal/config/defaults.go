package config

import (
	_ "embed"
)

//go:embed defaults/bigboard.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches
// defaults/bigboard.yaml.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:      "Big Board",
			Background: "#ff69b3",
		},
		Grid: GridConfig{
			Width:      30,
			Height:     20,
			CellWidth:  32,
			CellHeight: 32,
			Background: "white",
			Bounds:     "clamp",
		},
		Cursor: CursorConfig{
			X:         10,
			Y:         10,
			Color:     "black",
			LineWidth: 5,
		},
		Wheel: WheelConfig{
			Reverse: true,
		},
		Render: RenderConfig{
			UpdatesPerSecond: 8,
			TickRate:         60,
			Incremental:      false,
			ClearFrame:       true,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
