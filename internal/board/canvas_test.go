package board

import (
	"errors"

	"github.com/vovakirdan/bigboard/internal/core"
)

// drawCall is one recorded canvas operation.
type drawCall struct {
	op    string // "clear", "fill" or "stroke"
	rect  core.Rect
	color core.Color
	width float64
}

// recordingCanvas records draw calls and can fail after a number of calls.
type recordingCanvas struct {
	calls   []drawCall
	failAt  int // 1-based call index to fail on; 0 never fails
	failErr error
}

var errCanvas = errors.New("canvas: present failed")

func (c *recordingCanvas) record(call drawCall) error {
	if c.failAt > 0 && len(c.calls)+1 == c.failAt {
		if c.failErr == nil {
			return errCanvas
		}
		return c.failErr
	}
	c.calls = append(c.calls, call)
	return nil
}

func (c *recordingCanvas) Clear(bg core.Color) error {
	return c.record(drawCall{op: "clear", color: bg})
}

func (c *recordingCanvas) FillRect(r core.Rect, col core.Color) error {
	return c.record(drawCall{op: "fill", rect: r, color: col})
}

func (c *recordingCanvas) StrokeRect(r core.Rect, width float64, col core.Color) error {
	return c.record(drawCall{op: "stroke", rect: r, color: col, width: width})
}

func (c *recordingCanvas) count(op string) int {
	n := 0
	for _, call := range c.calls {
		if call.op == op {
			n++
		}
	}
	return n
}

func (c *recordingCanvas) reset() {
	c.calls = nil
}
