package core

import "time"

// Clock abstracts wall-clock time so timing-dependent code can be tested
// without sleeping.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }

// ManualClock is a Clock that only moves when told to.
type ManualClock struct {
	T time.Time
}

// Now returns the current manual time.
func (c *ManualClock) Now() time.Time { return c.T }

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) { c.T = c.T.Add(d) }

const fpsSampleFrames = 10

// FrameTimer measures the elapsed time between host ticks and keeps a coarse
// frames-per-second estimate refreshed every few frames.
type FrameTimer struct {
	clock  Clock
	last   time.Time
	frames int
	fps    float64
}

// NewFrameTimer constructs a FrameTimer reading from clock. A nil clock uses
// the system clock.
func NewFrameTimer(clock Clock) *FrameTimer {
	if clock == nil {
		clock = SystemClock{}
	}
	return &FrameTimer{clock: clock}
}

// Tick returns the seconds elapsed since the previous Tick. The first call
// returns zero.
func (f *FrameTimer) Tick() float64 {
	now := f.clock.Now()
	if f.last.IsZero() {
		f.last = now
		return 0
	}
	delta := now.Sub(f.last)
	f.last = now
	if delta < 0 {
		delta = 0
	}
	elapsed := delta.Seconds()
	f.frames++
	if f.frames == fpsSampleFrames {
		f.frames = 0
		if elapsed > 0 {
			f.fps = 1 / elapsed
		}
	}
	return elapsed
}

// FPS returns the latest frames-per-second sample.
func (f *FrameTimer) FPS() float64 { return f.fps }
