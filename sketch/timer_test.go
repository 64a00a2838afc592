package sketch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFrameTimerUpdate(t *testing.T) {
	clock := newFakeClock()
	ft := NewFrameTimer(clock, 60)

	assert.Equal(t, time.Second/60, ft.Interval())
	assert.Equal(t, 0.0, ft.Update())

	clock.Advance(16500 * time.Microsecond)
	assert.InDelta(t, 16.5, ft.Update(), 1e-9)

	clock.Advance(time.Millisecond)
	assert.InDelta(t, 1.0, ft.Update(), 1e-9)
}

func TestFrameTimerLimit(t *testing.T) {
	clock := newFakeClock()
	ft := NewFrameTimer(clock, 50) // 20ms

	ft.Update()
	clock.Advance(5 * time.Millisecond)
	assert.Equal(t, 15*time.Millisecond, ft.Limit())

	ft.Update()
	clock.Advance(30 * time.Millisecond)
	assert.Equal(t, time.Duration(0), ft.Limit(), "overrun frames sleep zero")

	assert.Equal(t, []time.Duration{15 * time.Millisecond}, clock.sleeps)
}

func TestFrameTimerSetTargetFPS(t *testing.T) {
	ft := NewFrameTimer(newFakeClock(), 30)
	ft.SetTargetFPS(0)
	assert.Equal(t, time.Second/30, ft.Interval())
	ft.SetTargetFPS(120)
	assert.Equal(t, time.Second/120, ft.Interval())
}

func TestFrameTimerReset(t *testing.T) {
	clock := newFakeClock()
	ft := NewFrameTimer(clock, 60)
	clock.Advance(time.Second)
	ft.Reset()
	clock.Advance(2 * time.Millisecond)
	assert.InDelta(t, 2.0, ft.Update(), 1e-9)
}
