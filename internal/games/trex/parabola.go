// Package trex implements the T-Rex endless runner: a player character that
// jumps and crouches past scrolling obstacles, plus an autopilot ghost driven
// by the precomputed solution track.
package trex

import "fmt"

// Parabola is a discretized jump arc: height over time follows the integer
// formula 4*peak*t*(duration-t)/duration², floored. Integer-only arithmetic
// keeps render positions deterministic and replayable across many ticks.
// The curve touches zero at t=0 and t=duration and peaks near duration/2.
type Parabola struct {
	peak     int
	duration int
	time     int

	// derived from time
	value int
}

// NewParabola constructs a curve at elapsed time 0, value 0.
// A non-positive duration is a caller bug and panics.
func NewParabola(peak, duration int) Parabola {
	if duration <= 0 {
		panic(fmt.Sprintf("trex: parabola duration must be positive, got %d", duration))
	}
	return Parabola{peak: peak, duration: duration}
}

// Step advances elapsed time by one tick and recomputes the height.
func (p *Parabola) Step() {
	p.time++
	p.value = p.calcValue()
}

// Value returns the current height, always >= 0 and exactly 0 once finished.
func (p Parabola) Value() int {
	return p.value
}

// Finished reports whether elapsed time has reached the duration.
func (p Parabola) Finished() bool {
	return p.time >= p.duration
}

func (p Parabola) calcValue() int {
	if p.time >= p.duration {
		return 0
	}

	a := 4 * p.peak
	b := 4 * p.peak * p.duration

	return (b*p.time - a*p.time*p.time) / (p.duration * p.duration)
}
