// bigboard is a grid drawing toy: move a cursor across a board, spin a color
// wheel with the mouse and paint cells.
//
// Usage:
//
//	bigboard play [frontend]  - Open the board (window or terminal)
//	bigboard menu             - Pick a frontend interactively
//	bigboard list             - List available frontends
//	bigboard palette          - Show the color wheel
//	bigboard config           - Print the effective configuration
//	bigboard snapshot         - Replay an input script into a PNG
//
// Global flags:
//
//	--config <path>     - Config file (default: search path)
//	--log-level <level> - debug, info, warn or error (default: info)
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import frontends to register them
	_ "github.com/vovakirdan/bigboard/internal/platform/tui"
	_ "github.com/vovakirdan/bigboard/internal/platform/window"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bigboard",
	Short: "Big Board - a grid you can paint on",
	Long: `Big Board renders a grid of cells with a cursor on top of it.
Arrow keys move the cursor, the mouse wheel cycles its color and
Space paints the cell under it.

Available commands:
  play      - Open the board in a window or the terminal
  menu      - Interactive frontend picker
  list      - Show all available frontends
  palette   - Show the color wheel
  config    - Print the effective configuration
  snapshot  - Render an input script to a PNG

Examples:
  bigboard play
  bigboard play terminal
  bigboard snapshot --script "right*3,wheel-2,paint" --out board.png
  bigboard config > ~/.bigboard/config.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(paletteCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(snapshotCmd)
}

// newLogger builds the process logger. When quiet is set and no log file was
// given, output is discarded so it cannot corrupt a terminal UI.
// The returned function closes the log file, if any.
func newLogger(quiet bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	case quiet:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "bigboard",
		Level:           level,
	})
	return logger, closeFn, nil
}

// fatal prints an error and exits with status 1.
func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
