package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Fatal("new frame should be empty")
	}

	f.Set(ActionUp)
	f.Scroll(-3)

	if !f.Has(ActionUp) {
		t.Error("Has(ActionUp) = false after Set")
	}
	if f.Has(ActionDown) {
		t.Error("Has(ActionDown) = true, never set")
	}
	if f.WheelY != -3 {
		t.Errorf("WheelY = %d, expected -3", f.WheelY)
	}

	clone := f.Clone()
	f.Clear()

	if !f.Empty() {
		t.Error("frame should be empty after Clear")
	}
	if !clone.Has(ActionUp) || clone.WheelY != -3 {
		t.Error("Clear should not affect a clone")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionPaint) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionPaint)
	if !f.Has(ActionPaint) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	if ActionColorNext.String() != "ColorNext" {
		t.Errorf("ActionColorNext.String() = %q", ActionColorNext.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q", Action(99).String())
	}
}
