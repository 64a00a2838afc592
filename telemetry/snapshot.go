package telemetry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// SummaryVersion is incremented when the format changes.
const SummaryVersion = 1

// RunSummary records what a finished run drew, for reproducing it later.
type RunSummary struct {
	Version int `json:"version"`

	Sketch string `json:"sketch"`
	Seed   int64  `json:"seed"`
	Width  int    `json:"width"`
	Height int    `json:"height"`

	TargetFPS int           `json:"target_fps"`
	Frames    int           `json:"frames"`
	Started   time.Time     `json:"started"`
	Elapsed   time.Duration `json:"elapsed_ns"`

	// Paths of images saved during the run
	Saved []string `json:"saved,omitempty"`
}

// SaveSummary writes a summary to dir as summary_<sketch>.json.
// Returns the filepath where it was saved.
func SaveSummary(summary *RunSummary, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create summary dir: %w", err)
	}

	name := "summary.json"
	if summary.Sketch != "" {
		sanitized := strings.ReplaceAll(summary.Sketch, " ", "_")
		name = fmt.Sprintf("summary_%s.json", sanitized)
	}
	path := filepath.Join(dir, name)

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal summary: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write summary: %w", err)
	}

	return path, nil
}

// LoadSummary reads a summary from disk.
func LoadSummary(path string) (*RunSummary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read summary: %w", err)
	}

	var summary RunSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, fmt.Errorf("unmarshal summary: %w", err)
	}
	if summary.Version != SummaryVersion {
		return nil, fmt.Errorf("unsupported summary version %d", summary.Version)
	}

	return &summary, nil
}
