package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Key repeat timing, in ticks.
const (
	repeatDelay    = 15
	repeatInterval = 4
)

// input is the part of ebiten's input state the game reads.
type input interface {
	KeyPressDuration(k ebiten.Key) int
	IsKeyPressed(k ebiten.Key) bool
	Wheel() (xoff, yoff float64)
}

type ebitenInput struct{}

func (ebitenInput) KeyPressDuration(k ebiten.Key) int { return inpututil.KeyPressDuration(k) }
func (ebitenInput) IsKeyPressed(k ebiten.Key) bool    { return ebiten.IsKeyPressed(k) }
func (ebitenInput) Wheel() (float64, float64)         { return ebiten.Wheel() }

// repeats reports whether a key held for d ticks fires this tick: once on
// press, then every repeatInterval ticks after repeatDelay.
func repeats(d int) bool {
	if d == 1 {
		return true
	}
	return d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0
}

// justPressed reports whether k went down this tick.
func justPressed(in input, k ebiten.Key) bool {
	return in.KeyPressDuration(k) == 1
}
