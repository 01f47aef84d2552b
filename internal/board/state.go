package board

import (
	"time"

	"github.com/vovakirdan/bigboard/internal/core"
)

// Options configures a new State.
type Options struct {
	Geometry         Geometry
	Palette          Palette
	GridColor        core.Color // initial color of every grid cell
	Background       core.Color // frame clear color, visible outside the grid
	CursorStart      Position
	CursorColor      core.Color
	CursorWidth      float64
	Bounds           BoundsPolicy
	ReverseWheel     bool // false makes Backward a no-op
	UpdatesPerSecond int
	Incremental      bool // redraw only dirty cells
	ClearFrame       bool // clear to Background before a full redraw
}

// DefaultOptions returns the classic 30x20 board.
func DefaultOptions() Options {
	return Options{
		Geometry:         DefaultGeometry(),
		Palette:          DefaultPalette(),
		GridColor:        White,
		Background:       HotPink,
		CursorStart:      NewPosition(10, 10),
		CursorColor:      Black,
		CursorWidth:      DefaultCursorWidth,
		Bounds:           BoundsClamp,
		ReverseWheel:     true,
		UpdatesPerSecond: DefaultUpdatesPerSecond,
		ClearFrame:       true,
	}
}

// State is the whole program state. It is owned by exactly one frontend and
// mutated only from that frontend's callbacks.
type State struct {
	geom       Geometry
	grid       *Grid
	cursor     *Cursor
	wheel      *ColorWheel
	gate       *UpdateGate
	bounds     BoundsPolicy
	background core.Color

	incremental bool
	clearFrame  bool
	fullRedraw  bool // next incremental frame must clear and redraw everything
}

// New creates the board state. now seeds the update gate.
func New(opts Options, now time.Time) *State {
	if len(opts.Palette) == 0 {
		opts.Palette = DefaultPalette()
	}
	wheel := NewColorWheel(opts.Palette)
	wheel.SetReverse(opts.ReverseWheel)

	s := &State{
		geom:        opts.Geometry,
		grid:        NewGrid(opts.Geometry.GridW, opts.Geometry.GridH, opts.GridColor),
		wheel:       wheel,
		gate:        NewUpdateGate(opts.UpdatesPerSecond, now),
		bounds:      opts.Bounds,
		background:  opts.Background,
		incremental: opts.Incremental,
		clearFrame:  opts.ClearFrame,
		fullRedraw:  true,
	}
	start := opts.Geometry.Constrain(opts.CursorStart, opts.Bounds)
	s.cursor = NewCursor(start, opts.CursorColor, opts.CursorWidth)
	return s
}

// Geometry returns the board geometry.
func (s *State) Geometry() Geometry { return s.geom }

// Grid returns the board grid.
func (s *State) Grid() *Grid { return s.grid }

// Cursor returns the board cursor.
func (s *State) Cursor() *Cursor { return s.cursor }

// Wheel returns the color wheel.
func (s *State) Wheel() *ColorWheel { return s.wheel }

// Background returns the frame clear color.
func (s *State) Background() core.Color { return s.background }

// Incremental reports whether only dirty cells are redrawn.
func (s *State) Incremental() bool { return s.incremental }

// Update runs the fixed-timestep gate. It reports whether a period elapsed.
// No board state changes here; input is applied as it arrives.
func (s *State) Update(now time.Time) bool {
	return s.gate.Tick(now)
}

// KeyDown moves the cursor one cell and applies the bounds policy.
func (s *State) KeyDown(dir Direction) {
	old := s.cursor.Position()
	s.cursor.MoveTo(dir)
	if s.bounds != BoundsUnbounded {
		s.cursor.Place(s.geom.Constrain(s.cursor.Position(), s.bounds))
	}
	s.vacate(old)
}

// vacate schedules the redraw needed to erase the cursor outline at old.
func (s *State) vacate(old Position) {
	if old == s.cursor.Position() {
		return
	}
	if s.geom.InBounds(old) {
		s.grid.MarkDirty(old)
		return
	}
	// Nothing on the grid covers an off-grid outline.
	s.fullRedraw = true
}

// MouseWheel turns the color wheel one step and applies the color to the
// cursor. Positive dy (scroll up) goes backward, negative goes forward, zero
// does nothing. The magnitude is ignored.
func (s *State) MouseWheel(dy int) {
	switch {
	case dy > 0:
		s.wheel.Backward()
	case dy < 0:
		s.wheel.Forward()
	default:
		return
	}
	s.cursor.SetColor(s.wheel.Color())
}

// PaintCell paints the grid cell under the cursor with the wheel color.
// It reports whether a cell changed.
func (s *State) PaintCell() bool {
	return s.grid.Paint(s.cursor.Position(), s.wheel.Color())
}

// Apply handles a single input event. It reports whether the action is one
// the board reacts to; frontend-only actions (quit, screenshot, help) are not.
func (s *State) Apply(a core.Action) bool {
	if dir, ok := DirectionFromAction(a); ok {
		s.KeyDown(dir)
		return true
	}
	switch a {
	case core.ActionColorNext:
		s.MouseWheel(-1)
	case core.ActionColorPrev:
		s.MouseWheel(1)
	case core.ActionPaint:
		s.PaintCell()
	default:
		return false
	}
	return true
}

// stepOrder is the order in which Step applies the actions of one frame.
var stepOrder = []core.Action{
	core.ActionColorNext, core.ActionColorPrev,
	core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight,
	core.ActionPaint,
}

// Step applies one frame of abstract input: wheel first, then color keys,
// then movement, then painting. Each action counts once per frame.
func (s *State) Step(in core.InputFrame) {
	s.MouseWheel(in.WheelY)
	for _, a := range stepOrder {
		if in.Has(a) {
			s.Apply(a)
		}
	}
}

// Invalidate forces the next Draw to repaint everything.
func (s *State) Invalidate() {
	s.fullRedraw = true
}

// NeedsRedraw reports whether the next Draw would issue any draw call.
// It is always true for non-incremental rendering.
func (s *State) NeedsRedraw() bool {
	if !s.incremental || s.fullRedraw {
		return true
	}
	return s.cursor.Dirty() || s.grid.DirtyCount() > 0
}

// Draw renders the grid and then the cursor. Canvas errors are returned
// unchanged.
func (s *State) Draw(cv Canvas) error {
	if s.incremental && !s.fullRedraw {
		return s.drawDirty(cv)
	}

	if s.clearFrame || s.fullRedraw {
		if err := cv.Clear(s.background); err != nil {
			return err
		}
	}
	if _, err := s.grid.Draw(cv, s.geom, false); err != nil {
		return err
	}
	if _, err := s.cursor.Draw(cv, s.geom, true); err != nil {
		return err
	}
	s.fullRedraw = false
	return nil
}

// drawDirty redraws dirty cells, then the cursor if it changed or if the
// cell beneath it was repainted.
func (s *State) drawDirty(cv Canvas) error {
	drawn, err := s.grid.DrawDirty(cv, s.geom)
	if err != nil {
		return err
	}
	force := false
	pos := s.cursor.Position()
	for _, p := range drawn {
		if p == pos {
			force = true
			break
		}
	}
	_, err = s.cursor.Draw(cv, s.geom, force)
	return err
}

// Render draws a complete frame onto a fresh canvas without consuming any
// dirty state, so the owning frontend's next Draw is unaffected.
func (s *State) Render(cv Canvas) error {
	if err := cv.Clear(s.background); err != nil {
		return err
	}
	if err := s.grid.Render(cv, s.geom); err != nil {
		return err
	}
	return s.cursor.Render(cv, s.geom)
}
