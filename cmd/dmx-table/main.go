package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/saaga0h/dmx-palette/internal/grid"
	"github.com/saaga0h/dmx-palette/internal/report"
	"github.com/saaga0h/dmx-palette/pkg/config"
)

func main() {
	// Load configuration with hierarchy: defaults → file → env → flags
	cfg := config.NewConfig()
	if path := config.ConfigFilePath(); path != "" {
		if err := cfg.LoadFromFile(path); err != nil {
			fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.LoadFromEnv()
	cfg.LoadFromFlags()

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	// Set up structured logging
	logLevel := parseLogLevel(cfg.LogLevel)
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	runID := uuid.New().String()
	logger = logger.With("run_id", runID)

	logger.Info("Starting DMX palette generation",
		"service_name", cfg.ServiceName,
		"output_dir", cfg.OutputDir,
		"workers", cfg.Workers,
		"log_level", cfg.LogLevel)

	// Cancel rendering on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, runID, logger); err != nil {
		logger.Error("Generation failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, runID string, logger *slog.Logger) error {
	start := time.Now()

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	// Enumerate the control grid and evaluate every combination
	entries := grid.Enumerate(logger)
	sorted := grid.SortedByBrightness(entries)

	// Index-ordered and brightness-ordered CSV tables
	csvPath := filepath.Join(cfg.OutputDir, cfg.CSVName)
	if err := report.WriteCSV(csvPath, entries); err != nil {
		return err
	}
	logger.Info("Wrote CSV table", "path", csvPath, "rows", len(entries))

	sortedPath := filepath.Join(cfg.OutputDir, cfg.SortedName)
	if err := report.WriteCSV(sortedPath, sorted); err != nil {
		return err
	}
	logger.Info("Wrote brightness-ordered CSV table", "path", sortedPath, "rows", len(sorted))

	// Swatch images
	if cfg.WriteSwatches {
		renderer := report.NewSwatchRenderer(
			filepath.Join(cfg.OutputDir, cfg.SwatchDir),
			cfg.SwatchSize,
			cfg.Workers,
			logger,
		)
		if err := renderer.RenderAll(ctx, entries); err != nil {
			return err
		}
	}

	// HTML preview page
	if cfg.WriteReport {
		reportPath := filepath.Join(cfg.OutputDir, cfg.ReportName)
		if err := report.WriteHTML(reportPath, runID, entries, sorted, logger); err != nil {
			return err
		}
	}

	logger.Info("Generation complete",
		"entries", len(entries),
		"elapsed", time.Since(start).Round(time.Millisecond).String())

	return nil
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
