package trace

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// repository implements the Repository interface with JSON files on disk.
type repository struct {
	logger *slog.Logger
}

// NewRepository creates a new Repository instance.
func NewRepository(logger *slog.Logger) Repository {
	return &repository{logger: logger}
}

// Load reads and validates a leak report from a JSON file.
func (r *repository) Load(path string) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open report %s: %w", path, err)
	}
	defer f.Close()

	report, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse report %s: %w", path, err)
	}

	r.logger.Info("Loaded leak report",
		"path", path,
		"elements", report.Trace.Len(),
		"instances", len(report.Instances))
	return report, nil
}

// Save persists a leak report as pretty-printed JSON.
func (r *repository) Save(report *Report, path string) error {
	if report == nil {
		return fmt.Errorf("report cannot be nil")
	}
	if err := report.Validate(); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}

	r.logger.Info("Saved leak report", "path", path, "elements", report.Trace.Len())
	return nil
}
