package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alejandrodnm/montecarlo/config"
	"github.com/alejandrodnm/montecarlo/internal/adapters/notify"
	"github.com/alejandrodnm/montecarlo/internal/adapters/plot"
	"github.com/alejandrodnm/montecarlo/internal/application/simulation"
	"github.com/alejandrodnm/montecarlo/internal/ports"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to config file")
	count := flag.Int("count", 0, "number of simulations (overrides config)")
	seed := flag.Uint64("seed", 0, "random seed (overrides config; 0 keeps config)")
	parallel := flag.Bool("parallel", false, "generate both samples concurrently")
	plotPath := flag.String("plot", "", "histogram output path (overrides config)")
	noPlot := flag.Bool("no-plot", false, "skip the histogram")
	compact := flag.Bool("compact", false, "print a 1-line summary instead of the full report")
	verbose := flag.Bool("verbose", false, "set log level to debug")
	logFormat := flag.String("format", "", "log format: text|json (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "err", err, "path", *configPath)
		os.Exit(1)
	}

	applyFlags(cfg, *count, *seed, *parallel, *plotPath, *noPlot, *compact)
	if *verbose {
		cfg.Log.Level = "debug"
	}
	if *logFormat != "" {
		cfg.Log.Format = *logFormat
	}
	setupLogger(cfg.Log)

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	slog.Info("montecarlo starting",
		"config", *configPath,
		"count", cfg.Simulation.Count,
		"seed", cfg.Simulation.Seed,
		"parallel", cfg.Simulation.Parallel,
		"plot", cfg.PlotEnabled(),
	)

	engine, err := simulation.NewEngine(cfg.EngineConfig())
	if err != nil {
		slog.Error("failed to build engine", "err", err)
		os.Exit(1)
	}

	var plotter ports.Plotter
	if cfg.PlotEnabled() {
		plotter = plot.NewHistogram()
	}
	reporter := notify.NewConsole(cfg.ReportTable())

	runner := simulation.NewRunner(engine, reporter, plotter, cfg.PlotSettings())

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	res, err := runner.RunOnce(ctx)
	if err != nil {
		slog.Error("simulation failed", "err", err)
		os.Exit(1)
	}

	slog.Info("montecarlo finished", "run_id", res.ID, "seed", res.Seed, "elapsed", res.Elapsed)
}

// applyFlags sobreescribe la config con los flags que se hayan pasado.
func applyFlags(cfg *config.Config, count int, seed uint64, parallel bool, plotPath string, noPlot, compact bool) {
	if count != 0 {
		cfg.Simulation.Count = count
	}
	if seed != 0 {
		cfg.Simulation.Seed = seed
	}
	if parallel {
		cfg.Simulation.Parallel = true
	}
	if plotPath != "" {
		cfg.Plot.Path = plotPath
	}
	if noPlot {
		disabled := false
		cfg.Plot.Enabled = &disabled
	}
	if compact {
		table := false
		cfg.Report.Table = &table
	}
}

func setupLogger(cfg config.LogConfig) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	// stderr: stdout queda libre para el reporte
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}
