package board

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/bigboard/internal/core"
)

// MaxRepeat is the largest repeat count a script step accepts.
const MaxRepeat = 1000

// ParseScript turns a comma-separated input script into frames, one frame per
// step. Steps are up, down, left, right, next, prev, paint and wheel<delta>
// (for example wheel-3 or wheel+1). A step may be repeated with *n, as in
// right*5.
func ParseScript(script string) ([]core.InputFrame, error) {
	var frames []core.InputFrame
	for _, raw := range strings.Split(script, ",") {
		tok := strings.ToLower(strings.TrimSpace(raw))
		if tok == "" {
			continue
		}

		count := 1
		if name, rep, found := strings.Cut(tok, "*"); found {
			n, err := strconv.Atoi(rep)
			if err != nil || n < 1 || n > MaxRepeat {
				return nil, fmt.Errorf("bad repeat count in %q: want 1..%d", raw, MaxRepeat)
			}
			tok, count = name, n
		}

		frame, err := parseStep(tok)
		if err != nil {
			return nil, err
		}
		for i := 0; i < count; i++ {
			frames = append(frames, frame.Clone())
		}
	}
	return frames, nil
}

func parseStep(tok string) (core.InputFrame, error) {
	f := core.NewInputFrame()
	switch tok {
	case "up":
		f.Set(core.ActionUp)
	case "down":
		f.Set(core.ActionDown)
	case "left":
		f.Set(core.ActionLeft)
	case "right":
		f.Set(core.ActionRight)
	case "next":
		f.Set(core.ActionColorNext)
	case "prev":
		f.Set(core.ActionColorPrev)
	case "paint":
		f.Set(core.ActionPaint)
	default:
		rest, ok := strings.CutPrefix(tok, "wheel")
		if !ok {
			return f, fmt.Errorf("unknown script step %q", tok)
		}
		dy, err := strconv.Atoi(rest)
		if err != nil {
			return f, fmt.Errorf("bad wheel delta in %q", tok)
		}
		f.Scroll(dy)
	}
	return f, nil
}

// Replay applies frames to s in order.
func Replay(s *State, frames []core.InputFrame) {
	for _, f := range frames {
		s.Step(f)
	}
}
