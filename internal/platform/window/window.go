// Package window provides the Ebiten desktop frontend for the board.
package window

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/bigboard/internal/board"
	"github.com/vovakirdan/bigboard/internal/core"
	"github.com/vovakirdan/bigboard/internal/registry"
	"github.com/vovakirdan/bigboard/internal/snapshot"
)

// FrontendID is the registry ID of the window frontend.
const FrontendID = "window"

func init() {
	registry.Register(FrontendID, func() registry.Frontend { return &Frontend{} })
}

// keyActions maps auto-repeating keys to board actions, in the order they
// are applied within one tick.
var keyActions = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeyBracketRight, core.ActionColorNext},
	{ebiten.KeyBracketLeft, core.ActionColorPrev},
	{ebiten.KeyArrowUp, core.ActionUp},
	{ebiten.KeyArrowDown, core.ActionDown},
	{ebiten.KeyArrowLeft, core.ActionLeft},
	{ebiten.KeyArrowRight, core.ActionRight},
	{ebiten.KeySpace, core.ActionPaint},
}

// Game implements ebiten.Game on top of a board.State.
type Game struct {
	state *board.State
	opts  registry.RunOptions
	input input
	now   func() time.Time
	err   error // draw error, reported by the next Update
}

// NewGame wraps a board for ebiten.
func NewGame(s *board.State, opts registry.RunOptions) *Game {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return &Game{
		state: s,
		opts:  opts,
		input: ebitenInput{},
		now:   time.Now,
	}
}

// Update applies this tick's input to the board: Escape quits, Ctrl+S saves
// a screenshot, then the wheel, then every key that fires this tick.
func (g *Game) Update() error {
	if g.err != nil {
		return g.err
	}
	if justPressed(g.input, ebiten.KeyEscape) {
		return ebiten.Termination
	}

	ctrl := g.input.IsKeyPressed(ebiten.KeyControl)
	if ctrl && justPressed(g.input, ebiten.KeyS) {
		g.saveScreenshot()
	}

	if _, yoff := g.input.Wheel(); yoff > 0 {
		g.state.MouseWheel(1)
	} else if yoff < 0 {
		g.state.MouseWheel(-1)
	}

	for _, ka := range keyActions {
		if repeats(g.input.KeyPressDuration(ka.key)) {
			g.state.Apply(ka.action)
		}
	}

	g.state.Update(g.now())
	return nil
}

// Draw renders the board. With incremental rendering the screen keeps its
// previous content and only dirty cells are repainted.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.err != nil || !g.state.NeedsRedraw() {
		return
	}
	if err := g.state.Draw(canvas{dst: screen}); err != nil {
		g.err = fmt.Errorf("draw: %w", err)
	}
}

// Layout returns the fixed board size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.state.Geometry().ScreenSize()
}

func (g *Game) saveScreenshot() {
	path := snapshot.Path(g.opts.ScreenshotDir, g.now())
	if err := snapshot.Save(path, g.state, snapshot.Options{Legend: true}); err != nil {
		g.opts.Logger.Error("screenshot failed", "error", err)
		return
	}
	g.opts.Logger.Info("screenshot saved", "path", path)
}

// Frontend runs the board in a desktop window.
type Frontend struct{}

// ID returns the frontend ID.
func (f *Frontend) ID() string { return FrontendID }

// Title returns the display name.
func (f *Frontend) Title() string { return "Window (Ebiten)" }

// Run opens the window and blocks until it is closed.
func (f *Frontend) Run(s *board.State, opts registry.RunOptions) error {
	w, h := s.Geometry().ScreenSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	if opts.Runtime.TickRate > 0 {
		ebiten.SetTPS(opts.Runtime.TickRate)
	}
	ebiten.SetScreenClearedEveryFrame(!s.Incremental())

	err := ebiten.RunGame(NewGame(s, opts))
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
