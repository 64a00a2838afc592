package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// FrameStats summarises one telemetry window of the frame loop.
type FrameStats struct {
	WindowStart int `csv:"-"`
	WindowEnd   int `csv:"window_end"`

	Frames  int  `csv:"frames"`
	Drawn   int  `csv:"drawn"`
	Saves   int  `csv:"saves"`
	Looping bool `csv:"looping"`

	// Delta between consecutive iterations, milliseconds
	DeltaMean float64 `csv:"delta_mean_ms"`
	DeltaStd  float64 `csv:"delta_std_ms"`
	DeltaP50  float64 `csv:"delta_p50_ms"`
	DeltaP95  float64 `csv:"delta_p95_ms"`
	DeltaMax  float64 `csv:"delta_max_ms"`

	// Achieved rate derived from DeltaMean
	FPS float64 `csv:"fps"`
}

// ComputeDeltaStats returns mean, sample standard deviation, median, p95 and max of the
// given frame deltas. Empty input yields zeros.
func ComputeDeltaStats(deltas []float64) (mean, std, p50, p95, maxDelta float64) {
	n := len(deltas)
	if n == 0 {
		return 0, 0, 0, 0, 0
	}

	sorted := make([]float64, n)
	copy(sorted, deltas)
	sort.Float64s(sorted)

	if n == 1 {
		mean = sorted[0]
	} else {
		mean, std = stat.MeanStdDev(sorted, nil)
	}
	p50 = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	p95 = stat.Quantile(0.95, stat.Empirical, sorted, nil)
	maxDelta = sorted[n-1]

	return mean, std, p50, p95, maxDelta
}

// LogValue implements slog.LogValuer for structured logging.
func (s FrameStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", s.WindowStart),
		slog.Int("window_end", s.WindowEnd),
		slog.Int("frames", s.Frames),
		slog.Int("drawn", s.Drawn),
		slog.Int("saves", s.Saves),
		slog.Bool("looping", s.Looping),
		slog.Float64("delta_mean_ms", s.DeltaMean),
		slog.Float64("delta_std_ms", s.DeltaStd),
		slog.Float64("delta_p50_ms", s.DeltaP50),
		slog.Float64("delta_p95_ms", s.DeltaP95),
		slog.Float64("delta_max_ms", s.DeltaMax),
		slog.Float64("fps", s.FPS),
	)
}

// LogStats logs the window summary.
func (s FrameStats) LogStats(logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("stats",
		"window_end", s.WindowEnd,
		"frames", s.Frames,
		"drawn", s.Drawn,
		"saves", s.Saves,
		"looping", s.Looping,
		"delta_mean_ms", s.DeltaMean,
		"delta_p95_ms", s.DeltaP95,
		"fps", s.FPS,
	)
}
