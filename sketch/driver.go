package sketch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pthm-cable/kanvas/raster"
	"github.com/pthm-cable/kanvas/telemetry"
)

var (
	// ErrInvalidOptions is wrapped by every construction error from New.
	ErrInvalidOptions = errors.New("sketch: invalid options")
	// ErrAlreadyStarted is returned when Run is called on a driver that has run before.
	ErrAlreadyStarted = errors.New("sketch: driver already started")
)

// DefaultTitle is used as the window title and save base when Options.Title is empty.
const DefaultTitle = "kanvas"

// Options configures a Driver.
type Options struct {
	Width     int
	Height    int
	Title     string
	TargetFPS int
	// MaxFrames stops the loop after that many iterations; 0 runs until quit.
	MaxFrames int

	// Collaborators. Nil values fall back to no-op implementations and the system clock.
	Presenter Presenter
	Input     Input
	Saver     Saver
	Clock     Clock
	Logger    *slog.Logger

	// Perf receives per-phase timings; a collector is created when nil.
	Perf *telemetry.PerfCollector
	// Output receives CSV rows at the end of every stats window when set.
	Output *telemetry.OutputManager
	// StatsWindow is the number of frames per telemetry window (default 60).
	StatsWindow int
	// LogStats logs perf and frame stats at the end of every window.
	LogStats bool

	// TargetFPSUpdates is drained between frames; each value replaces the target rate.
	TargetFPSUpdates <-chan int
}

// Driver owns the framebuffer and runs a Sketch through its lifecycle.
type Driver struct {
	sketch Sketch
	opts   Options
	fb     *raster.FrameBuffer

	presenter Presenter
	input     Input
	clock     Clock
	logger    *slog.Logger
	perf      *telemetry.PerfCollector
	collector *telemetry.Collector
	timer     *FrameTimer

	state   State
	looping bool
	frame   int
	saved   []string
}

// New validates opts and allocates the framebuffer. The driver starts uninitialized
// with looping enabled.
func New(sk Sketch, opts Options) (*Driver, error) {
	if sk == nil {
		return nil, fmt.Errorf("%w: nil sketch", ErrInvalidOptions)
	}
	if opts.TargetFPS <= 0 {
		return nil, fmt.Errorf("%w: target fps %d must be positive", ErrInvalidOptions, opts.TargetFPS)
	}
	if opts.MaxFrames < 0 {
		return nil, fmt.Errorf("%w: max frames %d must not be negative", ErrInvalidOptions, opts.MaxFrames)
	}
	fb, err := raster.New(opts.Width, opts.Height)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}

	if opts.Title == "" {
		opts.Title = DefaultTitle
	}
	if opts.StatsWindow <= 0 {
		opts.StatsWindow = 60
	}

	d := &Driver{
		sketch:    sk,
		opts:      opts,
		fb:        fb,
		presenter: opts.Presenter,
		input:     opts.Input,
		clock:     opts.Clock,
		logger:    opts.Logger,
		perf:      opts.Perf,
		collector: telemetry.NewCollector(opts.StatsWindow),
		state:     StateUninitialized,
		looping:   true,
	}
	if d.presenter == nil {
		d.presenter = nopPresenter{}
	}
	if d.input == nil {
		d.input = nopInput{}
	}
	if d.clock == nil {
		d.clock = SystemClock{}
	}
	if d.logger == nil {
		d.logger = slog.Default()
	}
	if d.perf == nil {
		d.perf = telemetry.NewPerfCollector(opts.StatsWindow)
	}

	if a, ok := sk.(Attacher); ok {
		a.Attach(d)
	}
	return d, nil
}

// Loop resumes calling Draw every frame.
func (d *Driver) Loop() { d.looping = true }

// NoLoop stops calling Draw; the loop keeps presenting and polling input.
func (d *Driver) NoLoop() { d.looping = false }

// IsLooping reports whether Draw is being called.
func (d *Driver) IsLooping() bool { return d.looping }

// State returns the lifecycle stage.
func (d *Driver) State() State { return d.state }

// Frame returns the number of completed loop iterations.
func (d *Driver) Frame() int { return d.frame }

// FrameBuffer returns the buffer sketches draw into.
func (d *Driver) FrameBuffer() *raster.FrameBuffer { return d.fb }

// Title returns the configured title.
func (d *Driver) Title() string { return d.opts.Title }

// TargetFPS returns the current target frame rate.
func (d *Driver) TargetFPS() int { return d.opts.TargetFPS }

// Saved returns the paths of frames saved so far.
func (d *Driver) Saved() []string { return d.saved }

// Run calls Setup once and then iterates until quit is requested, ctx is done,
// MaxFrames is reached, or the presenter fails. The presenter is closed on return.
//
// Each iteration polls input, handles save requests, measures the frame delta, draws
// when looping, presents, and sleeps out the rest of the frame interval.
func (d *Driver) Run(ctx context.Context) (err error) {
	if d.state != StateUninitialized {
		return ErrAlreadyStarted
	}
	d.state = StateRunning
	defer func() {
		d.state = StateStopped
		if cerr := d.presenter.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close presenter: %w", cerr)
		}
	}()

	d.logger.Info("sketch starting",
		"title", d.opts.Title,
		"width", d.fb.Width(),
		"height", d.fb.Height(),
		"target_fps", d.opts.TargetFPS,
		"max_frames", d.opts.MaxFrames,
	)

	d.sketch.Setup(d.fb)
	d.timer = NewFrameTimer(d.clock, d.opts.TargetFPS)

	for {
		if ctx.Err() != nil {
			d.logger.Info("sketch cancelled", "frame", d.frame)
			break
		}
		d.applyFPSUpdates()

		quit, err := d.step()
		if err != nil {
			return err
		}
		if quit {
			d.logger.Info("quit requested", "frame", d.frame)
			break
		}

		if d.opts.MaxFrames > 0 && d.frame >= d.opts.MaxFrames {
			d.logger.Info("max frames reached", "frame", d.frame)
			break
		}
		d.timer.Limit()
	}

	d.flushStats()
	return nil
}

// step runs one loop iteration. quit reports that input asked to stop.
func (d *Driver) step() (quit bool, err error) {
	d.perf.StartFrame()

	d.perf.StartPhase(telemetry.PhaseInput)
	in := d.input.Poll()
	if in.Quit {
		d.perf.EndFrame()
		return true, nil
	}
	if in.ToggleLoop {
		d.looping = !d.looping
		d.logger.Debug("loop toggled", "frame", d.frame, "looping", d.looping)
	}
	if in.Save {
		d.perf.StartPhase(telemetry.PhaseSave)
		d.save()
	}

	delta := d.timer.Update()

	d.perf.StartPhase(telemetry.PhaseDraw)
	drawn := d.looping
	if drawn {
		d.sketch.Draw(d.fb, d.frame, delta)
	}

	d.perf.StartPhase(telemetry.PhasePresent)
	if err := d.presenter.Present(d.fb); err != nil {
		d.perf.EndFrame()
		return false, fmt.Errorf("present frame %d: %w", d.frame, err)
	}
	d.perf.EndFrame()
	d.perf.RecordFrame()

	d.frame++
	d.collector.RecordFrame(delta, drawn)
	if d.collector.ShouldFlush(d.frame) {
		d.flushStats()
	}
	return false, nil
}

func (d *Driver) save() {
	if d.opts.Saver == nil {
		d.logger.Warn("save requested but no saver configured", "frame", d.frame)
		return
	}
	path, err := d.opts.Saver.Save(d.fb, d.opts.Title)
	if err != nil {
		d.logger.Warn("save failed", "frame", d.frame, "error", err)
		return
	}
	d.saved = append(d.saved, path)
	d.collector.RecordSave()
	d.logger.Info("frame saved", "frame", d.frame, "path", path)
}

func (d *Driver) applyFPSUpdates() {
	if d.opts.TargetFPSUpdates == nil {
		return
	}
	for {
		select {
		case fps, ok := <-d.opts.TargetFPSUpdates:
			if !ok {
				d.opts.TargetFPSUpdates = nil
				return
			}
			if fps <= 0 || fps == d.opts.TargetFPS {
				continue
			}
			d.logger.Info("target fps changed", "from", d.opts.TargetFPS, "to", fps)
			d.opts.TargetFPS = fps
			d.timer.SetTargetFPS(fps)
		default:
			return
		}
	}
}

// flushStats closes the current telemetry window. Empty windows are dropped.
func (d *Driver) flushStats() {
	stats := d.collector.Flush(d.frame, d.looping)
	if stats.Frames == 0 {
		return
	}
	perf := d.perf.Stats()

	if d.opts.LogStats {
		stats.LogStats(d.logger)
		perf.LogStats(d.logger)
	}
	if err := d.opts.Output.WriteFrames(stats); err != nil {
		d.logger.Warn("writing frame stats", "error", err)
	}
	if err := d.opts.Output.WritePerf(perf, d.frame); err != nil {
		d.logger.Warn("writing perf stats", "error", err)
	}
}
