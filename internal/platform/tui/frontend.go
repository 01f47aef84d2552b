package tui

import (
	"github.com/vovakirdan/bigboard/internal/board"
	"github.com/vovakirdan/bigboard/internal/registry"
)

// FrontendID is the registry ID of the terminal frontend.
const FrontendID = "terminal"

func init() {
	registry.Register(FrontendID, func() registry.Frontend { return &Frontend{} })
}

// Frontend runs the board inside the terminal.
type Frontend struct{}

// ID returns the frontend ID.
func (f *Frontend) ID() string { return FrontendID }

// Title returns the display name.
func (f *Frontend) Title() string { return "Terminal (Bubble Tea)" }

// Run blocks until the user quits.
func (f *Frontend) Run(s *board.State, opts registry.RunOptions) error {
	return Run(s, opts)
}
