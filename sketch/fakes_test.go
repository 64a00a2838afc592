package sketch

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/pthm-cable/kanvas/raster"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

type fakeClock struct {
	now    time.Time
	sleeps []time.Duration
}

func newFakeClock() *fakeClock { return &fakeClock{now: epoch} }

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Sleep(d time.Duration) {
	c.sleeps = append(c.sleeps, d)
	c.now = c.now.Add(d)
}

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// scriptedInput returns one state per poll and empty states after the script runs out.
type scriptedInput struct {
	script []InputState
	polls  int
}

func (in *scriptedInput) Poll() InputState {
	defer func() { in.polls++ }()
	if in.polls < len(in.script) {
		return in.script[in.polls]
	}
	return InputState{}
}

type fakePresenter struct {
	presents int
	closes   int
	failAt   int // 1-based present call that fails; 0 never fails
	err      error
}

func (p *fakePresenter) Present(*raster.FrameBuffer) error {
	p.presents++
	if p.failAt > 0 && p.presents == p.failAt {
		return p.err
	}
	return nil
}

func (p *fakePresenter) Close() error {
	p.closes++
	return nil
}

type fakeSaver struct {
	bases []string
	err   error
}

func (s *fakeSaver) Save(_ *raster.FrameBuffer, base string) (string, error) {
	s.bases = append(s.bases, base)
	if s.err != nil {
		return "", s.err
	}
	return "output/" + base + ".png", nil
}

// recorder is a sketch that remembers every call it receives.
type recorder struct {
	setups int
	frames []int
	deltas []float64

	onSetup func(fb *raster.FrameBuffer)
	onDraw  func(frame int)
}

func (r *recorder) Setup(fb *raster.FrameBuffer) {
	r.setups++
	if r.onSetup != nil {
		r.onSetup(fb)
	}
}

func (r *recorder) Draw(_ *raster.FrameBuffer, frame int, deltaMillis float64) {
	r.frames = append(r.frames, frame)
	r.deltas = append(r.deltas, deltaMillis)
	if r.onDraw != nil {
		r.onDraw(frame)
	}
}

// attachingRecorder stops looping as soon as it is set up.
type attachingRecorder struct {
	recorder
	ctl Controller
}

func (a *attachingRecorder) Attach(c Controller) { a.ctl = c }

func (a *attachingRecorder) Setup(fb *raster.FrameBuffer) {
	a.recorder.Setup(fb)
	a.ctl.NoLoop()
}

var errBoom = errors.New("boom")

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func bufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
