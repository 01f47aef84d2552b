package core

// RuntimeConfig contains configuration handed to frontends at start.
type RuntimeConfig struct {
	ScreenW  int // Terminal width in characters (terminal frontend only)
	ScreenH  int // Terminal height in characters (terminal frontend only)
	TickRate int // Frames per second driven by the frontend (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}
