// Package config provides configuration management for the leak viewer.
package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds the application configuration.
type Config struct {
	// Input options
	TracePath string `json:"trace_path"`
	HistoryDB string `json:"history_db,omitempty"`

	// Output options
	OutputFormat string `json:"output_format"` // "tui", "text", "json", "markdown"
	OutputFile   string `json:"output_file,omitempty"`

	// UI options
	Watch        bool `json:"watch"`
	UseNerdFonts bool `json:"use_nerd_fonts"`

	// Debug options
	Verbose bool `json:"verbose"`
	Debug   bool `json:"debug"`
}

// NewConfig creates a new configuration with default values.
func NewConfig() *Config {
	return &Config{
		OutputFormat: "tui",
		Watch:        true,
		Verbose:      false,
		Debug:        false,
	}
}

// ParseFlags parses command line flags and updates the config.
func (c *Config) ParseFlags() error {
	flag.StringVar(&c.TracePath, "trace", c.TracePath, "Leak report file to display (JSON)")
	flag.StringVar(&c.HistoryDB, "db", c.HistoryDB, "Leak history database (SQLite); empty disables history")
	flag.StringVar(&c.OutputFormat, "format", c.OutputFormat, "Output format (tui, text, json, markdown)")
	flag.StringVar(&c.OutputFile, "output", c.OutputFile, "Output file (defaults to stdout)")
	flag.BoolVar(&c.Watch, "watch", c.Watch, "Reload the report when the file changes (TUI only)")
	flag.BoolVar(&c.UseNerdFonts, "nerd-fonts", c.UseNerdFonts, "Use Nerd Fonts icons")
	flag.BoolVar(&c.Verbose, "verbose", c.Verbose, "Verbose output")
	flag.BoolVar(&c.Debug, "debug", c.Debug, "Debug output")

	flag.Parse()

	return c.Validate()
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.TracePath == "" {
		return fmt.Errorf("a leak report file is required (-trace)")
	}

	absTrace, err := filepath.Abs(c.TracePath)
	if err != nil {
		return fmt.Errorf("invalid trace path %s: %w", c.TracePath, err)
	}
	c.TracePath = absTrace

	if _, err := os.Stat(c.TracePath); os.IsNotExist(err) {
		return fmt.Errorf("trace file does not exist: %s", c.TracePath)
	}

	validFormats := map[string]bool{
		"tui":      true,
		"text":     true,
		"json":     true,
		"markdown": true,
		"md":       true,
	}
	if !validFormats[c.OutputFormat] {
		return fmt.Errorf("invalid output format: %s (valid: tui, text, json, markdown)", c.OutputFormat)
	}

	return nil
}
