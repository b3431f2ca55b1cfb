package core

import "time"

// FixedStep paces generations at a steady rate independent of the frame
// rate of the surrounding loop.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep returns a FixedStep targeting rate steps per second. The
// first call to ShouldStep always fires.
func NewFixedStep(rate int) *FixedStep {
	return newFixedStep(rate, time.Now)
}

func newFixedStep(rate int, now func() time.Time) *FixedStep {
	fs := &FixedStep{now: now}
	fs.SetRate(rate)
	fs.accumulator = fs.step
	return fs
}

// SetRate changes the step rate. Non-positive rates fall back to 30.
func (f *FixedStep) SetRate(rate int) {
	if rate <= 0 {
		rate = 30
	}
	f.step = time.Second / time.Duration(rate)
}

// Interval returns the time between steps.
func (f *FixedStep) Interval() time.Duration { return f.step }

// ShouldStep reports whether enough time has passed for one more step. The
// backlog is capped at one step so a stalled loop does not burst.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator < f.step {
		return false
	}
	f.accumulator -= f.step
	if f.accumulator > f.step {
		f.accumulator = f.step
	}
	return true
}

// Reset restarts pacing so the next call to ShouldStep fires.
func (f *FixedStep) Reset() {
	f.last = time.Time{}
	f.accumulator = f.step
}
