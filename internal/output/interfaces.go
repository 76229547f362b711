package output

import (
	"leakview/internal/render"
	"leakview/internal/trace"
)

// Exporter renders leak reports into terminal-free formats. All methods run
// the report through the same row model the TUI uses, so every format shows
// the identical row sequence.
type Exporter interface {
	// ExportJSON renders the report plus the computed row model as JSON.
	ExportJSON(report *trace.Report, ctx render.Context) ([]byte, error)

	// ExportText renders the report as plain text with connector art.
	ExportText(report *trace.Report, ctx render.Context) (string, error)

	// ExportMarkdown renders the report as Markdown documentation.
	ExportMarkdown(report *trace.Report, ctx render.Context) (string, error)
}
