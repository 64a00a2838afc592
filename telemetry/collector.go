package telemetry

// Collector accumulates per-frame observations and produces FrameStats windows.
type Collector struct {
	window int

	windowStart int
	deltas      []float64
	drawn       int
	saves       int
}

// NewCollector creates a collector that flushes every window frames.
func NewCollector(window int) *Collector {
	if window < 1 {
		window = 1
	}
	return &Collector{
		window: window,
		deltas: make([]float64, 0, window),
	}
}

// RecordFrame records one loop iteration.
func (c *Collector) RecordFrame(deltaMillis float64, drawn bool) {
	c.deltas = append(c.deltas, deltaMillis)
	if drawn {
		c.drawn++
	}
}

// RecordSave records a successful save.
func (c *Collector) RecordSave() {
	c.saves++
}

// ShouldFlush reports whether the window ending at frame is complete.
func (c *Collector) ShouldFlush(frame int) bool {
	return frame-c.windowStart >= c.window
}

// Flush summarises the current window and starts a new one at frame.
func (c *Collector) Flush(frame int, looping bool) FrameStats {
	mean, std, p50, p95, maxDelta := ComputeDeltaStats(c.deltas)

	var fps float64
	if mean > 0 {
		fps = 1000 / mean
	}

	s := FrameStats{
		WindowStart: c.windowStart,
		WindowEnd:   frame,
		Frames:      len(c.deltas),
		Drawn:       c.drawn,
		Saves:       c.saves,
		Looping:     looping,
		DeltaMean:   mean,
		DeltaStd:    std,
		DeltaP50:    p50,
		DeltaP95:    p95,
		DeltaMax:    maxDelta,
		FPS:         fps,
	}

	c.windowStart = frame
	c.deltas = c.deltas[:0]
	c.drawn = 0
	c.saves = 0

	return s
}

// Window returns the number of frames per window.
func (c *Collector) Window() int {
	return c.window
}
