package board

import "time"

// DefaultUpdatesPerSecond is the fixed update rate of the board clock.
const DefaultUpdatesPerSecond = 8

// UpdateGate is a fixed-timestep gate: it opens at most once per period.
type UpdateGate struct {
	period time.Duration
	last   time.Time
}

// NewUpdateGate creates a gate for the given rate, starting at now.
// Non-positive rates fall back to DefaultUpdatesPerSecond.
func NewUpdateGate(perSecond int, now time.Time) *UpdateGate {
	if perSecond <= 0 {
		perSecond = DefaultUpdatesPerSecond
	}
	return &UpdateGate{
		period: time.Second / time.Duration(perSecond),
		last:   now,
	}
}

// Tick reports whether at least one period has elapsed since the last open,
// and if so records now as the last update.
func (g *UpdateGate) Tick(now time.Time) bool {
	if now.Sub(g.last) < g.period {
		return false
	}
	g.last = now
	return true
}
