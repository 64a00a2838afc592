package sketch

import "time"

// FrameTimer measures frame deltas and sleeps away the rest of each frame interval.
// It never tries to catch up on frames that ran long.
type FrameTimer struct {
	clock    Clock
	interval time.Duration
	last     time.Time
}

// NewFrameTimer creates a timer for targetFPS frames per second, starting now.
func NewFrameTimer(clock Clock, targetFPS int) *FrameTimer {
	if clock == nil {
		clock = SystemClock{}
	}
	t := &FrameTimer{clock: clock}
	t.SetTargetFPS(targetFPS)
	t.Reset()
	return t
}

// Reset restarts delta measurement from the current time.
func (t *FrameTimer) Reset() {
	t.last = t.clock.Now()
}

// SetTargetFPS changes the frame interval. Non-positive values are ignored.
func (t *FrameTimer) SetTargetFPS(fps int) {
	if fps <= 0 {
		return
	}
	t.interval = time.Second / time.Duration(fps)
}

// Interval returns the target time per frame.
func (t *FrameTimer) Interval() time.Duration {
	return t.interval
}

// Update returns the milliseconds elapsed since the previous Update (or Reset) and
// marks the start of a new frame.
func (t *FrameTimer) Update() float64 {
	now := t.clock.Now()
	delta := now.Sub(t.last)
	t.last = now
	return float64(delta) / float64(time.Millisecond)
}

// Limit sleeps for whatever remains of the frame interval since the last Update and
// returns the time slept.
func (t *FrameTimer) Limit() time.Duration {
	remaining := t.interval - t.clock.Now().Sub(t.last)
	if remaining <= 0 {
		return 0
	}
	t.clock.Sleep(remaining)
	return remaining
}
