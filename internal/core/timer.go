package core

import "time"

// DefaultInterval is the step cadence used when none is configured.
const DefaultInterval = 100 * time.Millisecond

// FixedStep turns a frame-driven update loop into steps at a steady interval.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller that fires once per interval.
func NewFixedStep(interval time.Duration) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetInterval(interval)
	fs.Reset()
	return fs
}

// SetInterval changes the cadence. It is safe to call from the main loop.
func (f *FixedStep) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = DefaultInterval
	}
	f.step = interval
}

// Interval returns the current cadence.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Reset forgets elapsed time so the next ShouldStep fires immediately. Call it
// when resuming so a long pause does not turn into a burst of steps.
func (f *FixedStep) Reset() {
	f.last = time.Time{}
	f.accumulator = f.step
}

// ShouldStep reports whether the simulation should advance by one step.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		if f.accumulator > f.step {
			f.accumulator = f.step
		}
		return true
	}
	return false
}
