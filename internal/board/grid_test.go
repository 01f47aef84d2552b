package board

import "testing"

func TestNewGridBackground(t *testing.T) {
	g := NewGrid(30, 20, White)

	w, h := g.Size()
	if w != 30 || h != 20 {
		t.Fatalf("Size() = %dx%d, expected 30x20", w, h)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c, ok := g.ColorAt(NewPosition(x, y))
			if !ok || c != White {
				t.Fatalf("cell (%d,%d) = %v, expected white", x, y, c)
			}
		}
	}
	if g.DirtyCount() != 600 {
		t.Errorf("new grid should be fully dirty, got %d dirty cells", g.DirtyCount())
	}
}

func TestGridPaint(t *testing.T) {
	g := NewGrid(4, 4, White)
	cv := &recordingCanvas{}
	if _, err := g.Draw(cv, DefaultGeometry(), true); err != nil {
		t.Fatalf("Draw failed: %v", err)
	}

	if !g.Paint(NewPosition(1, 2), Red) {
		t.Error("Paint should report a change")
	}
	if g.Paint(NewPosition(1, 2), Red) {
		t.Error("repainting with the same color should not report a change")
	}
	if g.Paint(NewPosition(-1, 2), Red) {
		t.Error("painting off-grid should be ignored")
	}

	if c, _ := g.ColorAt(NewPosition(1, 2)); c != Red {
		t.Errorf("ColorAt(1,2) = %v, expected red", c)
	}
	if _, ok := g.ColorAt(NewPosition(4, 0)); ok {
		t.Error("ColorAt off-grid should report !ok")
	}
	if g.DirtyCount() != 1 {
		t.Errorf("DirtyCount() = %d, expected 1", g.DirtyCount())
	}
}

func TestGridDrawAllCells(t *testing.T) {
	geom := Geometry{GridW: 3, GridH: 2, CellW: 32, CellH: 32}
	g := NewGrid(3, 2, White)
	cv := &recordingCanvas{}

	for frame := 0; frame < 2; frame++ {
		cv.reset()
		n, err := g.Draw(cv, geom, false)
		if err != nil {
			t.Fatalf("Draw failed: %v", err)
		}
		if n != 6 || cv.count("fill") != 6 {
			t.Errorf("frame %d: drew %d cells (%d fills), expected 6", frame, n, cv.count("fill"))
		}
	}

	last := cv.calls[len(cv.calls)-1]
	if last.rect != geom.Rect(NewPosition(2, 1)) || last.color != White {
		t.Errorf("last draw = %+v, expected white fill at (2,1)", last)
	}
}

func TestGridDrawOnlyDirty(t *testing.T) {
	geom := DefaultGeometry()
	g := NewGrid(30, 20, White)
	cv := &recordingCanvas{}

	if _, err := g.Draw(cv, geom, true); err != nil {
		t.Fatalf("Draw failed: %v", err)
	}

	cv.reset()
	g.MarkDirty(NewPosition(5, 5))
	g.MarkDirty(NewPosition(99, 99))

	drawn, err := g.DrawDirty(cv, geom)
	if err != nil {
		t.Fatalf("DrawDirty failed: %v", err)
	}
	if len(drawn) != 1 || drawn[0] != NewPosition(5, 5) {
		t.Errorf("drawn = %v, expected only (5,5)", drawn)
	}

	if n, err := g.Draw(cv, geom, true); err != nil || n != 0 {
		t.Errorf("Draw(onlyDirty) on a clean grid = (%d, %v), expected (0, nil)", n, err)
	}
}

func TestGridDrawPropagatesError(t *testing.T) {
	g := NewGrid(3, 3, White)
	cv := &recordingCanvas{failAt: 4}

	n, err := g.Draw(cv, DefaultGeometry(), false)
	if err != errCanvas {
		t.Fatalf("Draw error = %v, expected %v", err, errCanvas)
	}
	if n != 3 {
		t.Errorf("drawn %d cells before failure, expected 3", n)
	}
}
