package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pthm-cable/kanvas/config"
	"github.com/pthm-cable/kanvas/export"
	"github.com/pthm-cable/kanvas/renderer"
	"github.com/pthm-cable/kanvas/renderer/headless"
	"github.com/pthm-cable/kanvas/renderer/term"
	"github.com/pthm-cable/kanvas/sketch"
	"github.com/pthm-cable/kanvas/sketches"
	"github.com/pthm-cable/kanvas/telemetry"
)

const version = "0.1.0"

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml or config.toml (empty = use defaults)")
	sketchName := flag.String("sketch", "demo", "Sketch to run (see -list)")
	headlessMode := flag.Bool("headless", false, "Run without a window")
	terminalMode := flag.Bool("terminal", false, "Draw frames to the terminal instead of a window")
	maxFrames := flag.Int("max-frames", 0, "Stop after N frames (0 = unlimited)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs, config snapshot and run summary")
	saveAt := flag.String("save-at", "", "Comma-separated frames to save in headless mode")
	flag.Int64("seed", 0, "Noise seed (overrides config when set)")
	logStats := flag.Bool("log-stats", false, "Output frame stats via slog")
	list := flag.Bool("list", false, "List available sketches and exit")
	showVersion := flag.Bool("version", false, "Print version and exit")

	flag.Parse()

	if *showVersion {
		fmt.Printf("kanvas %s\n", version)
		return
	}
	if *list {
		for _, name := range sketches.Names() {
			fmt.Printf("%-10s %s\n", name, sketches.Describe(name))
		}
		return
	}

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()
	cfg.ApplyFlags(flag.CommandLine)

	// Terminal frames own stdout, so logs move to stderr there.
	var logOut io.Writer = os.Stdout
	if *terminalMode {
		logOut = os.Stderr
	}
	logger := cfg.Log.Logger(logOut)
	slog.SetDefault(logger)

	if err := run(cfg, runOptions{
		configPath: *configPath,
		sketch:     *sketchName,
		headless:   *headlessMode,
		terminal:   *terminalMode,
		maxFrames:  *maxFrames,
		outputDir:  *outputDir,
		saveAt:     *saveAt,
		logStats:   *logStats,
	}); err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}
}

type runOptions struct {
	configPath string
	sketch     string
	headless   bool
	terminal   bool
	maxFrames  int
	outputDir  string
	saveAt     string
	logStats   bool
}

func run(cfg *config.Config, opts runOptions) error {
	sk, err := sketches.New(opts.sketch, cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	saver, err := export.New(cfg.Output.Dir, cfg.Output.Format, cfg.Output.Scale)
	if err != nil {
		return err
	}

	output, err := telemetry.NewOutputManager(opts.outputDir)
	if err != nil {
		return err
	}
	defer output.Close()
	if err := output.WriteConfig(cfg); err != nil {
		slog.Warn("writing config snapshot", "error", err)
	}

	fpsUpdates := make(chan int, 1)
	if opts.configPath != "" {
		err := config.Watch(ctx, opts.configPath, func(c *config.Config) {
			select {
			case fpsUpdates <- c.Screen.TargetFPS:
			default:
			}
		})
		if err != nil {
			slog.Warn("config watch disabled", "error", err)
		}
	}

	perf := telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow)
	title := cfg.Screen.Title
	if title == "" {
		title = opts.sketch
	}

	driverOpts := sketch.Options{
		Width:            cfg.Screen.Width,
		Height:           cfg.Screen.Height,
		Title:            title,
		TargetFPS:        cfg.Screen.TargetFPS,
		MaxFrames:        opts.maxFrames,
		Saver:            saver,
		Logger:           slog.Default(),
		Perf:             perf,
		Output:           output,
		StatsWindow:      cfg.Telemetry.StatsWindow,
		LogStats:         opts.logStats,
		TargetFPSUpdates: fpsUpdates,
	}

	var window *renderer.Window
	switch {
	case opts.headless:
		frames, err := headless.ParseFrames(opts.saveAt)
		if err != nil {
			return fmt.Errorf("-save-at: %w", err)
		}
		driverOpts.Presenter = headless.NewPresenter()
		driverOpts.Input = headless.NewInput(ctx, frames)
	case opts.terminal:
		driverOpts.Presenter = term.New(os.Stdout, cfg.Terminal.Width)
		driverOpts.Input = headless.NewInput(ctx, nil)
	default:
		window = renderer.NewWindow(renderer.WindowOptions{
			Width:     cfg.Screen.Width,
			Height:    cfg.Screen.Height,
			Scale:     cfg.Screen.Scale,
			Title:     title,
			TargetFPS: cfg.Screen.TargetFPS,
			Perf:      perf,
		})
		driverOpts.Presenter = window
		driverOpts.Input = window
	}

	driver, err := sketch.New(sk, driverOpts)
	if err != nil {
		if window != nil {
			window.Close()
		}
		return err
	}
	if window != nil {
		window.Attach(driver)
	}

	started := time.Now()
	runErr := driver.Run(ctx)

	summary := &telemetry.RunSummary{
		Version:   telemetry.SummaryVersion,
		Sketch:    opts.sketch,
		Seed:      cfg.Noise.Seed,
		Width:     cfg.Screen.Width,
		Height:    cfg.Screen.Height,
		TargetFPS: driver.TargetFPS(),
		Frames:    driver.Frame(),
		Started:   started,
		Elapsed:   time.Since(started),
		Saved:     driver.Saved(),
	}
	if path, err := output.WriteSummary(summary); err != nil {
		slog.Warn("writing run summary", "error", err)
	} else if path != "" {
		slog.Info("run summary written", "path", path)
	}

	return runErr
}
