// Package config provides configuration loading and access for kanvas.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds all runtime configuration.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen" toml:"screen"`
	Noise     NoiseConfig     `yaml:"noise" toml:"noise"`
	Output    OutputConfig    `yaml:"output" toml:"output"`
	Telemetry TelemetryConfig `yaml:"telemetry" toml:"telemetry"`
	Terminal  TerminalConfig  `yaml:"terminal" toml:"terminal"`
	Log       LogConfig       `yaml:"log" toml:"log"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-" toml:"-"`
}

// ScreenConfig holds framebuffer and window settings.
type ScreenConfig struct {
	Width     int    `yaml:"width" toml:"width"`
	Height    int    `yaml:"height" toml:"height"`
	Scale     int    `yaml:"scale" toml:"scale"` // window pixels per buffer pixel
	Title     string `yaml:"title" toml:"title"`
	TargetFPS int    `yaml:"target_fps" toml:"target_fps"`
}

// NoiseConfig holds noise table parameters.
type NoiseConfig struct {
	Seed      int64 `yaml:"seed" toml:"seed"`
	TableSize int   `yaml:"table_size" toml:"table_size"`
}

// OutputConfig holds image export settings.
type OutputConfig struct {
	Dir    string `yaml:"dir" toml:"dir"`
	Format string `yaml:"format" toml:"format"`
	Scale  int    `yaml:"scale" toml:"scale"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow int `yaml:"stats_window" toml:"stats_window"` // frames
	PerfWindow  int `yaml:"perf_window" toml:"perf_window"`   // frames
}

// TerminalConfig holds terminal presenter settings.
type TerminalConfig struct {
	Width int `yaml:"width" toml:"width"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	FrameInterval time.Duration // 1s / TargetFPS
	WindowWidth   int           // Screen.Width * Screen.Scale
	WindowHeight  int           // Screen.Height * Screen.Scale
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Set replaces the global configuration.
func Set(cfg *Config) {
	global = cfg
}

// Load loads configuration from a YAML or TOML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := unmarshal(path, data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

func unmarshal(path string, data []byte, cfg *Config) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return toml.Unmarshal(data, cfg)
	}
	return yaml.Unmarshal(data, cfg)
}

// Validate rejects values the renderer cannot work with.
func (c *Config) Validate() error {
	switch {
	case c.Screen.Width <= 0 || c.Screen.Height <= 0:
		return fmt.Errorf("%w: screen size %dx%d must be positive", ErrInvalid, c.Screen.Width, c.Screen.Height)
	case c.Screen.Scale <= 0:
		return fmt.Errorf("%w: screen.scale %d must be positive", ErrInvalid, c.Screen.Scale)
	case c.Screen.TargetFPS <= 0:
		return fmt.Errorf("%w: screen.target_fps %d must be positive", ErrInvalid, c.Screen.TargetFPS)
	case c.Noise.TableSize <= 0:
		return fmt.Errorf("%w: noise.table_size %d must be positive", ErrInvalid, c.Noise.TableSize)
	case c.Output.Scale <= 0:
		return fmt.Errorf("%w: output.scale %d must be positive", ErrInvalid, c.Output.Scale)
	case c.Terminal.Width <= 0:
		return fmt.Errorf("%w: terminal.width %d must be positive", ErrInvalid, c.Terminal.Width)
	}

	switch strings.ToLower(c.Output.Format) {
	case "png", "jpg", "jpeg", "bmp":
	default:
		return fmt.Errorf("%w: unknown output.format %q", ErrInvalid, c.Output.Format)
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "json", "text":
	default:
		return fmt.Errorf("%w: unknown log.format %q", ErrInvalid, c.Log.Format)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.FrameInterval = time.Second / time.Duration(c.Screen.TargetFPS)
	c.Derived.WindowWidth = c.Screen.Width * c.Screen.Scale
	c.Derived.WindowHeight = c.Screen.Height * c.Screen.Scale
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if s == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return lvl, nil
}

// Logger builds a slog logger writing to w with the configured level and format.
func (l LogConfig) Logger(w io.Writer) *slog.Logger {
	lvl, err := parseLevel(l.Level)
	if err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if strings.EqualFold(l.Format, "text") {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}
