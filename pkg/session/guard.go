package session

import "time"

// DefaultGuardDelay is how long a new popup blocks further triggers.
const DefaultGuardDelay = 150 * time.Millisecond

// Guard is the re-entrancy token of a completion session. While held, new
// completion cycles are refused. It is released explicitly or expires once
// the delay has passed since it was taken.
type Guard struct {
	delay time.Duration
	held  bool
	until time.Time
}

// NewGuard returns a released guard. A non-positive delay uses DefaultGuardDelay.
func NewGuard(delay time.Duration) Guard {
	if delay <= 0 {
		delay = DefaultGuardDelay
	}
	return Guard{delay: delay}
}

// Delay returns the hold duration.
func (g *Guard) Delay() time.Duration {
	return g.delay
}

// Held reports whether the guard blocks a trigger at now.
func (g *Guard) Held(now time.Time) bool {
	if g.held && !now.Before(g.until) {
		g.held = false
	}
	return g.held
}

// Acquire takes the guard at now. It fails if the guard is still held.
func (g *Guard) Acquire(now time.Time) bool {
	if g.Held(now) {
		return false
	}
	g.held = true
	g.until = now.Add(g.delay)
	return true
}

// Release drops the guard immediately.
func (g *Guard) Release() {
	g.held = false
	g.until = time.Time{}
}
