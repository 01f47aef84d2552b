package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bigboard/internal/board"
	"github.com/vovakirdan/bigboard/internal/snapshot"
)

var (
	flagOut    string
	flagScript string
	flagLegend bool
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Render an input script to a PNG",
	Long: `Creates a fresh board, replays an input script against it and saves
the result as a PNG. No window or terminal is opened.

Script steps are comma separated:
  up, down, left, right  - Move the cursor
  next, prev             - Step the color wheel
  wheel<delta>           - Mouse wheel event, e.g. wheel-1 or wheel+2
  paint                  - Paint the cell under the cursor
  <step>*<n>             - Repeat a step n times

Examples:
  bigboard snapshot --out board.png
  bigboard snapshot --script "right*3,wheel-2,paint,down,paint" --out board.png`,
	Run: runSnapshot,
}

func init() {
	snapshotCmd.Flags().StringVar(&flagOut, "out", "bigboard.png", "Output PNG path")
	snapshotCmd.Flags().StringVar(&flagScript, "script", "", "Input script to replay")
	snapshotCmd.Flags().BoolVar(&flagLegend, "legend", true, "Append a legend strip")
}

func runSnapshot(cmd *cobra.Command, args []string) {
	_, opts, source := loadOptions()

	frames, err := board.ParseScript(flagScript)
	if err != nil {
		fatal("invalid --script: %v", err)
	}

	logger, closeLog, err := newLogger(false)
	if err != nil {
		fatal("%v", err)
	}
	defer closeLog()

	state := board.New(opts, time.Now())
	board.Replay(state, frames)
	logger.Debug("replayed script", "steps", len(frames), "config", source)

	if err := snapshot.Save(flagOut, state, snapshot.Options{Legend: flagLegend}); err != nil {
		logger.Error("snapshot failed", "error", err)
		fatal("%v", err)
	}
	fmt.Printf("Saved %s (cursor %s, color %s)\n",
		flagOut, state.Cursor().Position(), state.Wheel().Name())
}
