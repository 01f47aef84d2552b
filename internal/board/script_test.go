package board

import (
	"testing"

	"github.com/vovakirdan/bigboard/internal/core"
)

func TestParseScript(t *testing.T) {
	frames, err := ParseScript("up, right*3 ,wheel-3,wheel+2,paint,next,prev")
	if err != nil {
		t.Fatalf("ParseScript failed: %v", err)
	}
	if len(frames) != 9 {
		t.Fatalf("got %d frames, expected 9", len(frames))
	}

	if !frames[0].Has(core.ActionUp) {
		t.Error("frame 0 should be up")
	}
	for i := 1; i <= 3; i++ {
		if !frames[i].Has(core.ActionRight) {
			t.Errorf("frame %d should be right", i)
		}
	}
	if frames[4].WheelY != -3 || frames[5].WheelY != 2 {
		t.Errorf("wheel deltas = %d, %d, expected -3, 2", frames[4].WheelY, frames[5].WheelY)
	}
	if !frames[6].Has(core.ActionPaint) || !frames[7].Has(core.ActionColorNext) || !frames[8].Has(core.ActionColorPrev) {
		t.Error("paint/next/prev frames not parsed")
	}
}

func TestParseScriptErrors(t *testing.T) {
	for _, script := range []string{"jump", "wheel", "wheelx", "up*0", "up*x", "right*1001", "right*1000000000"} {
		if _, err := ParseScript(script); err == nil {
			t.Errorf("ParseScript(%q) should fail", script)
		}
	}
}

func TestParseScriptMaxRepeat(t *testing.T) {
	frames, err := ParseScript("right*1000")
	if err != nil {
		t.Fatalf("ParseScript failed: %v", err)
	}
	if len(frames) != MaxRepeat {
		t.Errorf("got %d frames, expected %d", len(frames), MaxRepeat)
	}
}

func TestReplay(t *testing.T) {
	s := newTestState(nil)
	frames, err := ParseScript("up,right,wheel-3")
	if err != nil {
		t.Fatal(err)
	}

	Replay(s, frames)

	if got := s.Cursor().Position(); got != NewPosition(11, 9) {
		t.Errorf("cursor = %v, expected (11,9)", got)
	}
	if s.Cursor().Color() != White {
		t.Errorf("cursor color = %v, expected white", s.Cursor().Color())
	}
}
