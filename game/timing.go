package game

import "time"

// ClampDT limits a frame delta to [0, maxDT].
func ClampDT(dt, maxDT float64) float64 {
	if dt < 0 {
		return 0
	}
	if dt > maxDT {
		return maxDT
	}
	return dt
}

// FrameTimer measures wall-clock time between frames on a monotonic clock.
type FrameTimer struct {
	maxDT float64
	now   func() time.Time
	last  time.Time
}

// NewFrameTimer creates a timer whose first delta is measured from now.
func NewFrameTimer(maxDT float64) *FrameTimer {
	return newFrameTimerWithClock(maxDT, time.Now)
}

func newFrameTimerWithClock(maxDT float64, now func() time.Time) *FrameTimer {
	return &FrameTimer{maxDT: maxDT, now: now, last: now()}
}

// Tick returns the seconds since the previous Tick, clamped to
// [0, maxDT]. Long stalls (window drags, breakpoints) therefore advance
// the simulation by at most maxDT.
func (t *FrameTimer) Tick() float64 {
	now := t.now()
	dt := now.Sub(t.last).Seconds()
	t.last = now
	return ClampDT(dt, t.maxDT)
}

// Restart discards the time elapsed since the last Tick.
func (t *FrameTimer) Restart() {
	t.last = t.now()
}
