package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bigboard/internal/core"
	"github.com/vovakirdan/bigboard/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a frontend interactively",
	Long: `Shows a menu of available frontends and opens the board in the
one you pick.

Controls:
  Up/Down   - Navigate
  Enter     - Select
  Q/Esc     - Quit`,
	Run: runMenu,
}

func runMenu(cmd *cobra.Command, args []string) {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	id, err := tui.RunMenu(cfg)
	if err != nil {
		fatal("%v", err)
	}
	if id == "" {
		return
	}
	playBoard(id)
}
