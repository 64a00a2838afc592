// Package sketch runs Processing-style sketches: Setup once, then Draw every frame
// into a raster.FrameBuffer that a Presenter puts on screen.
package sketch

import (
	"time"

	"github.com/pthm-cable/kanvas/raster"
)

// Sketch is the user program driven by the frame loop.
type Sketch interface {
	// Setup is called once before the first frame.
	Setup(fb *raster.FrameBuffer)
	// Draw is called every frame while looping. frame counts loop iterations from 0 and
	// deltaMillis is the wall time since the previous iteration.
	Draw(fb *raster.FrameBuffer, frame int, deltaMillis float64)
}

// Funcs adapts plain functions to Sketch. Nil fields are no-ops.
type Funcs struct {
	SetupFunc func(fb *raster.FrameBuffer)
	DrawFunc  func(fb *raster.FrameBuffer, frame int, deltaMillis float64)
}

// Setup implements Sketch.
func (f Funcs) Setup(fb *raster.FrameBuffer) {
	if f.SetupFunc != nil {
		f.SetupFunc(fb)
	}
}

// Draw implements Sketch.
func (f Funcs) Draw(fb *raster.FrameBuffer, frame int, deltaMillis float64) {
	if f.DrawFunc != nil {
		f.DrawFunc(fb, frame, deltaMillis)
	}
}

// Controller is the loop control surface a running sketch can use.
type Controller interface {
	Loop()
	NoLoop()
	IsLooping() bool
	Frame() int
}

// Attacher is implemented by sketches that want loop control. Attach is called once,
// before Setup.
type Attacher interface {
	Attach(c Controller)
}

// InputState is the per-iteration input summary.
type InputState struct {
	Quit       bool
	Save       bool
	ToggleLoop bool
}

// Presenter puts a finished frame on some display surface.
type Presenter interface {
	Present(fb *raster.FrameBuffer) error
	Close() error
}

// Input reports what the user asked for since the previous poll.
type Input interface {
	Poll() InputState
}

// Saver persists the current frame, returning where it went.
type Saver interface {
	Save(fb *raster.FrameBuffer, base string) (string, error)
}

// Clock abstracts wall time so the loop can be driven deterministically.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// SystemClock is the real wall clock.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time { return time.Now() }

// Sleep implements Clock.
func (SystemClock) Sleep(d time.Duration) { time.Sleep(d) }

// State is the lifecycle stage of a Driver.
type State int

const (
	StateUninitialized State = iota
	StateRunning
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

type nopPresenter struct{}

func (nopPresenter) Present(*raster.FrameBuffer) error { return nil }
func (nopPresenter) Close() error                      { return nil }

type nopInput struct{}

func (nopInput) Poll() InputState { return InputState{} }
