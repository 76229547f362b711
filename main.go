package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"leakview/internal/config"
	"leakview/internal/heuristic"
	"leakview/internal/history"
	"leakview/internal/output"
	"leakview/internal/render"
	"leakview/internal/trace"
	"leakview/internal/tui"
)

func main() {
	cfg := config.NewConfig()
	if err := cfg.ParseFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)

	if err := run(cfg, logger); err != nil {
		logger.Error("Fatal error", "error", err)
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelInfo
	}
	if cfg.Debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func run(cfg *config.Config, logger *slog.Logger) error {
	repo := trace.NewRepository(logger)

	report, err := repo.Load(cfg.TracePath)
	if err != nil {
		return err
	}

	if cfg.HistoryDB != "" {
		if err := recordHistory(report, cfg.HistoryDB, logger); err != nil {
			return err
		}
	}

	if cfg.OutputFormat == "tui" {
		return runTUI(cfg, repo, report, logger)
	}
	return export(cfg, report, heuristic.NewEngine(logger, &report.Trace).CauseFunc())
}

// recordHistory persists the leaked object into the history database and, if
// the same class leaked before, promotes the report to a leak-group view with
// the recorded instances.
func recordHistory(report *trace.Report, dbPath string, logger *slog.Logger) error {
	store, err := history.Open(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	leaked := report.Trace.LeakedObject()
	summary := trace.InstanceSummary{
		ClassSimpleName: leaked.ClassSimpleName,
		CreatedAt:       time.Now().UnixMilli(),
	}
	if err := store.Record(summary); err != nil {
		return err
	}

	prior, err := store.ByClass(leaked.ClassSimpleName)
	if err != nil {
		return err
	}
	logger.Info("Recorded leak in history",
		"class", leaked.ClassSimpleName,
		"instances", len(prior))

	if !report.IsLeakGroup() && len(prior) > 1 {
		report.Instances = prior
	}
	return nil
}

func runTUI(cfg *config.Config, repo trace.Repository, report *trace.Report, logger *slog.Logger) error {
	// The heuristic engine is rebuilt on reload; the cause query always
	// dispatches to the engine for the report currently on screen.
	var mu sync.Mutex
	engine := heuristic.NewEngine(logger, &report.Trace)

	opts := tui.Options{
		Cause: func(elementIndex int) bool {
			mu.Lock()
			defer mu.Unlock()
			return engine.MayBeLeakCause(elementIndex)
		},
		Reload: func() (*trace.Report, error) {
			reloaded, err := repo.Load(cfg.TracePath)
			if err != nil {
				return nil, err
			}
			mu.Lock()
			engine = heuristic.NewEngine(logger, &reloaded.Trace)
			mu.Unlock()
			return reloaded, nil
		},
	}
	opts.UseNerdFonts = cfg.UseNerdFonts
	if cfg.Watch {
		opts.WatchPath = cfg.TracePath
	}

	return tui.NewTUI(logger).Run(context.Background(), report, opts)
}

func export(cfg *config.Config, report *trace.Report, cause render.CauseFunc) error {
	ctx := render.Context{
		GroupDescription: report.Description,
		IsLeakGroup:      report.IsLeakGroup(),
		MayBeLeakCause:   cause,
	}

	exporter := output.NewExporter()

	var data []byte
	var err error
	switch cfg.OutputFormat {
	case "json":
		data, err = exporter.ExportJSON(report, ctx)
	case "text":
		var s string
		s, err = exporter.ExportText(report, ctx)
		data = []byte(s)
	case "markdown", "md":
		var s string
		s, err = exporter.ExportMarkdown(report, ctx)
		data = []byte(s)
	default:
		return fmt.Errorf("unsupported output format: %s", cfg.OutputFormat)
	}
	if err != nil {
		return fmt.Errorf("failed to export report: %w", err)
	}

	if cfg.OutputFile != "" {
		if err := os.WriteFile(cfg.OutputFile, data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", cfg.OutputFile, err)
		}
		fmt.Printf("Report written to %s\n", cfg.OutputFile)
		return nil
	}

	_, err = os.Stdout.Write(data)
	return err
}
