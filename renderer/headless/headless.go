// Package headless provides an offscreen presenter and scripted input for batch
// runs and tests.
package headless

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/pthm-cable/kanvas/raster"
	"github.com/pthm-cable/kanvas/sketch"
)

// Presenter keeps a copy of the most recent frame.
type Presenter struct {
	frames int
	last   *raster.FrameBuffer
	closed bool
}

// NewPresenter creates an offscreen presenter.
func NewPresenter() *Presenter { return &Presenter{} }

// Present implements sketch.Presenter.
func (p *Presenter) Present(fb *raster.FrameBuffer) error {
	if p.last == nil || p.last.Width() != fb.Width() || p.last.Height() != fb.Height() {
		p.last = raster.MustNew(fb.Width(), fb.Height())
	}
	copy(p.last.Pix(), fb.Pix())
	p.frames++
	return nil
}

// Close implements sketch.Presenter.
func (p *Presenter) Close() error {
	p.closed = true
	return nil
}

// Frames returns how many frames were presented.
func (p *Presenter) Frames() int { return p.frames }

// Last returns the most recently presented frame, or nil.
func (p *Presenter) Last() *raster.FrameBuffer { return p.last }

// Closed reports whether Close was called.
func (p *Presenter) Closed() bool { return p.closed }

// Input requests a save on chosen loop iterations and a quit once ctx is done.
type Input struct {
	ctx    context.Context
	saveAt []int
	polls  int
}

// NewInput creates input that saves on the given zero-based iterations.
func NewInput(ctx context.Context, saveAt []int) *Input {
	return &Input{ctx: ctx, saveAt: slices.Clone(saveAt)}
}

// Poll implements sketch.Input.
func (in *Input) Poll() sketch.InputState {
	iter := in.polls
	in.polls++
	return sketch.InputState{
		Quit: in.ctx != nil && in.ctx.Err() != nil,
		Save: slices.Contains(in.saveAt, iter),
	}
}

// ParseFrames parses a comma-separated list of non-negative frame numbers.
// Duplicates are dropped and the result is sorted.
func ParseFrames(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	var frames []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("frame %q: %w", part, err)
		}
		if n < 0 {
			return nil, fmt.Errorf("frame %d must not be negative", n)
		}
		frames = append(frames, n)
	}
	slices.Sort(frames)
	return slices.Compact(frames), nil
}
