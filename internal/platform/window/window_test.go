package window

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/bigboard/internal/board"
	"github.com/vovakirdan/bigboard/internal/core"
	"github.com/vovakirdan/bigboard/internal/registry"
)

// fakeInput holds key press durations in ticks and a wheel offset.
type fakeInput struct {
	held  map[ebiten.Key]int
	wheel float64
}

func newFakeInput() *fakeInput {
	return &fakeInput{held: make(map[ebiten.Key]int)}
}

func (f *fakeInput) KeyPressDuration(k ebiten.Key) int { return f.held[k] }
func (f *fakeInput) IsKeyPressed(k ebiten.Key) bool    { return f.held[k] > 0 }
func (f *fakeInput) Wheel() (float64, float64)         { return 0, f.wheel }

var epoch = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

func newTestGame(t *testing.T) (*Game, *fakeInput) {
	t.Helper()
	s := board.New(board.DefaultOptions(), epoch)
	g := NewGame(s, registry.RunOptions{ScreenshotDir: t.TempDir()})
	in := newFakeInput()
	g.input = in
	g.now = func() time.Time { return epoch }
	return g, in
}

func TestRepeats(t *testing.T) {
	tests := []struct {
		d        int
		expected bool
	}{
		{0, false},
		{1, true},
		{2, false},
		{repeatDelay - 1, false},
		{repeatDelay, true},
		{repeatDelay + 1, false},
		{repeatDelay + repeatInterval, true},
		{repeatDelay + 2*repeatInterval, true},
	}
	for _, tc := range tests {
		if got := repeats(tc.d); got != tc.expected {
			t.Errorf("repeats(%d) = %v, expected %v", tc.d, got, tc.expected)
		}
	}
}

func TestUpdateEscapeTerminates(t *testing.T) {
	g, in := newTestGame(t)
	in.held[ebiten.KeyEscape] = 1
	in.held[ebiten.KeyArrowUp] = 1

	if err := g.Update(); !errors.Is(err, ebiten.Termination) {
		t.Fatalf("Update() = %v, expected ebiten.Termination", err)
	}
	if got := g.state.Cursor().Position(); got != board.NewPosition(10, 10) {
		t.Errorf("cursor moved to %v on quit", got)
	}
}

func TestUpdateHeldArrowRepeats(t *testing.T) {
	g, in := newTestGame(t)

	for d := 1; d <= 30; d++ {
		in.held[ebiten.KeyArrowRight] = d
		if err := g.Update(); err != nil {
			t.Fatalf("Update() error = %v", err)
		}
	}

	// Fires at ticks 1, 15, 19, 23 and 27.
	if got := g.state.Cursor().Position(); got != board.NewPosition(15, 10) {
		t.Errorf("cursor = %v, expected (15,10)", got)
	}
}

func TestUpdateAppliesWheelThenKeys(t *testing.T) {
	g, in := newTestGame(t)
	in.wheel = -1
	in.held[ebiten.KeyBracketRight] = 1
	in.held[ebiten.KeyArrowUp] = 1
	in.held[ebiten.KeySpace] = 1

	if err := g.Update(); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if name := g.state.Wheel().Name(); name != "dark_gray" {
		t.Errorf("wheel = %s, expected dark_gray", name)
	}
	if c, _ := g.state.Grid().ColorAt(board.NewPosition(10, 9)); c != board.DarkGray {
		t.Errorf("painted cell = %v, expected dark gray at the moved position", c)
	}
	if c, _ := g.state.Grid().ColorAt(board.NewPosition(10, 10)); c != board.White {
		t.Errorf("start cell = %v, expected white", c)
	}
}

func TestUpdateWheelUpGoesBackward(t *testing.T) {
	g, in := newTestGame(t)
	in.wheel = 2.5

	if err := g.Update(); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if name := g.state.Wheel().Name(); name != "pink" {
		t.Errorf("wheel = %s, expected pink", name)
	}
}

func TestUpdateScreenshot(t *testing.T) {
	g, in := newTestGame(t)
	in.held[ebiten.KeyControl] = 3
	in.held[ebiten.KeyS] = 1

	if err := g.Update(); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	matches, err := filepath.Glob(filepath.Join(g.opts.ScreenshotDir, "*.png"))
	if err != nil || len(matches) != 1 {
		t.Fatalf("expected one screenshot, got %v (err %v)", matches, err)
	}
	if _, err := os.Stat(matches[0]); err != nil {
		t.Errorf("screenshot unreadable: %v", err)
	}

	// S alone does nothing.
	in.held[ebiten.KeyControl] = 0
	in.held[ebiten.KeyS] = 1
	g.now = func() time.Time { return epoch.Add(time.Minute) }
	if err := g.Update(); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	matches, _ = filepath.Glob(filepath.Join(g.opts.ScreenshotDir, "*.png"))
	if len(matches) != 1 {
		t.Errorf("S without Ctrl wrote a screenshot: %v", matches)
	}
}

func TestUpdateReportsDrawError(t *testing.T) {
	g, _ := newTestGame(t)
	g.err = errors.New("boom")

	if err := g.Update(); err == nil || err.Error() != "boom" {
		t.Errorf("Update() = %v, expected boom", err)
	}
}

func TestLayout(t *testing.T) {
	g, _ := newTestGame(t)
	w, h := g.Layout(100, 100)
	if w != 960 || h != 640 {
		t.Errorf("Layout() = %dx%d, expected 960x640", w, h)
	}
}

func TestStrokePathStaysInside(t *testing.T) {
	r := core.NewRect(32, 64, 32, 32)

	x, y, w, h := strokePath(r, 5)
	if x != 34.5 || y != 66.5 || w != 27 || h != 27 {
		t.Errorf("strokePath() = (%v, %v, %v, %v), expected (34.5, 66.5, 27, 27)", x, y, w, h)
	}

	// The outer edge of a centered stroke lands exactly on r.
	if x-2.5 != float32(r.X) || x+w+2.5 != float32(r.Right()) {
		t.Errorf("stroke spans [%v, %v], expected [%d, %d]", x-2.5, x+w+2.5, r.X, r.Right())
	}
}

func TestRectF(t *testing.T) {
	x, y, w, h := rectF(core.NewRect(-32, 0, 32, 16))
	if x != -32 || y != 0 || w != 32 || h != 16 {
		t.Errorf("rectF() = (%v, %v, %v, %v)", x, y, w, h)
	}
}
