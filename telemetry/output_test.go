package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pthm-cable/kanvas/config"
)

func TestOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil || om != nil {
		t.Fatalf("expected nil manager for empty dir, got %v, %v", om, err)
	}
	// Nil receivers are no-ops.
	if err := om.WriteFrames(FrameStats{}); err != nil {
		t.Error(err)
	}
	if err := om.WritePerf(PerfStats{}, 1); err != nil {
		t.Error(err)
	}
	if err := om.Close(); err != nil {
		t.Error(err)
	}
	if om.Dir() != "" {
		t.Error("expected empty dir")
	}
}

func TestOutputManagerWritesCSVHeaderOnce(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager: %v", err)
	}

	for i := 1; i <= 3; i++ {
		if err := om.WriteFrames(FrameStats{WindowEnd: i * 60, Frames: 60, FPS: 60}); err != nil {
			t.Fatal(err)
		}
		perf := PerfStats{AvgFrameDuration: time.Millisecond, PhasePct: map[string]float64{PhaseDraw: 50}}
		if err := om.WritePerf(perf, i*60); err != nil {
			t.Fatal(err)
		}
	}
	if err := om.Close(); err != nil {
		t.Fatal(err)
	}

	frames := readLines(t, filepath.Join(dir, "frames.csv"))
	if len(frames) != 4 {
		t.Fatalf("frames.csv has %d lines, want header + 3", len(frames))
	}
	if !strings.HasPrefix(frames[0], "window_end,frames,") {
		t.Errorf("unexpected header %q", frames[0])
	}
	if strings.Contains(frames[0], "window_start") {
		t.Error("window_start should not be exported")
	}

	perf := readLines(t, filepath.Join(dir, "perf.csv"))
	if len(perf) != 4 {
		t.Fatalf("perf.csv has %d lines, want header + 3", len(perf))
	}
	if !strings.Contains(perf[0], "draw_pct") {
		t.Errorf("unexpected header %q", perf[0])
	}
}

func TestOutputManagerWritesConfigAndSummary(t *testing.T) {
	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer om.Close()

	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	if err := om.WriteConfig(cfg); err != nil {
		t.Fatalf("WriteConfig: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "config.yaml")); err != nil {
		t.Errorf("config.yaml missing: %v", err)
	}

	path, err := om.WriteSummary(&RunSummary{Version: SummaryVersion, Sketch: "demo"})
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Dir(path) != dir {
		t.Errorf("summary written to %s, want inside %s", path, dir)
	}
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}
