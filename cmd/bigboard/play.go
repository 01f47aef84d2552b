package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bigboard/internal/board"
	"github.com/vovakirdan/bigboard/internal/config"
	"github.com/vovakirdan/bigboard/internal/core"
	"github.com/vovakirdan/bigboard/internal/platform/tui"
	"github.com/vovakirdan/bigboard/internal/platform/window"
	"github.com/vovakirdan/bigboard/internal/registry"
	"github.com/vovakirdan/bigboard/internal/snapshot"
)

var playCmd = &cobra.Command{
	Use:   "play [frontend]",
	Short: "Open the board",
	Long: `Open the board in the given frontend (default: window).

Controls:
  Arrows      - Move the cursor (hjkl in the terminal)
  Mouse wheel - Cycle the cursor color
  [ / ]       - Previous / next color
  Space       - Paint the cell under the cursor
  Ctrl+S      - Save a PNG screenshot
  y           - Copy the color hex (terminal)
  ?           - Toggle help (terminal)
  Esc/Q       - Quit

Examples:
  bigboard play
  bigboard play terminal
  bigboard play --config ./my-board.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	id := window.FrontendID
	if len(args) > 0 {
		id = args[0]
	}
	playBoard(id)
}

// loadOptions loads the configuration and converts it to board options.
func loadOptions() (config.Config, board.Options, string) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		fatal("%v", err)
	}
	opts, err := cfg.Options()
	if err != nil {
		fatal("%v", err)
	}
	return cfg, opts, source
}

// playBoard runs the board in the given frontend until the user quits.
func playBoard(id string) {
	if !registry.Exists(id) {
		fmt.Fprintf(os.Stderr, "Error: unknown frontend %q\n", id)
		fmt.Fprintln(os.Stderr, "Run 'bigboard list' to see available frontends.")
		os.Exit(1)
	}

	cfg, opts, source := loadOptions()

	runtime := core.DefaultConfig()
	runtime.TickRate = cfg.Render.TickRate
	if id == tui.FrontendID {
		runtime = terminalRuntime(runtime, opts.Geometry)
	}

	frontend, err := registry.Create(id)
	if err != nil {
		fatal("%v", err)
	}

	logger, closeLog, err := newLogger(id == tui.FrontendID)
	if err != nil {
		fatal("%v", err)
	}
	defer closeLog()

	logger.Info("starting board", "frontend", id, "config", source)
	state := board.New(opts, time.Now())
	runErr := frontend.Run(state, registry.RunOptions{
		Title:         cfg.Window.Title,
		Runtime:       runtime,
		ScreenshotDir: snapshot.DefaultDir(),
		Logger:        logger,
	})

	if runErr != nil {
		logger.Error("board stopped", "frontend", id, "error", runErr)
		fmt.Printf("Error encountered running board: %v\n", runErr)
		return
	}
	logger.Info("board closed", "frontend", id)
	fmt.Println("Board closed cleanly!")
}

// terminalRuntime probes the terminal and exits if the board cannot fit.
// The board needs two columns per cell plus a status and a help line.
func terminalRuntime(rc core.RuntimeConfig, g board.Geometry) core.RuntimeConfig {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}

	needW := g.GridW * tui.ColumnsPerCell
	needH := g.GridH + 2
	if rc.ScreenW < needW || rc.ScreenH < needH {
		fatal("terminal is %dx%d, the board needs at least %dx%d", rc.ScreenW, rc.ScreenH, needW, needH)
	}
	return rc
}
