// Package clock provides the simulation time source.
//
// Combat code never reads wall-clock time. Every cooldown, modifier expiry and
// scheduled effect compares against Clock.Now(), which the arena loop advances
// once per tick. Tests drive a Manual clock directly.
package clock

// Clock returns the current simulation time in seconds.
type Clock interface {
	Now() float64
}

// Manual is a clock that only moves when told to.
// Not safe for concurrent use; the simulation is single-threaded.
type Manual struct {
	now float64
}

// NewManual creates a clock starting at the given time.
func NewManual(start float64) *Manual {
	return &Manual{now: start}
}

// Now returns the current time.
func (c *Manual) Now() float64 {
	return c.now
}

// Advance moves the clock forward by dt seconds. Negative steps are ignored.
func (c *Manual) Advance(dt float64) {
	if dt > 0 {
		c.now += dt
	}
}

// Set jumps to t. Used by tests to position the clock exactly.
func (c *Manual) Set(t float64) {
	c.now = t
}

// Func adapts a plain function to Clock.
type Func func() float64

// Now calls f.
func (f Func) Now() float64 {
	return f()
}
