// Package output provides export functionality for leak reports.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"leakview/internal/render"
	"leakview/internal/trace"
)

// exporter implements the Exporter interface.
type exporter struct{}

// NewExporter creates a new Exporter instance.
func NewExporter() Exporter {
	return &exporter{}
}

// ExportJSON exports the report plus the computed row model as
// pretty-printed JSON.
func (e *exporter) ExportJSON(report *trace.Report, ctx render.Context) ([]byte, error) {
	type rowJSON struct {
		Position  int    `json:"position"`
		Kind      string `json:"kind"`
		Connector string `json:"connector,omitempty"`
		Text      string `json:"text"`
	}
	type exportJSON struct {
		Report *trace.Report `json:"report"`
		Rows   []rowJSON     `json:"rows"`
	}

	statuses := report.Trace.Statuses()
	elementCount := report.Trace.Len()
	summaryCount := len(report.Instances)
	total := render.TotalRowCount(elementCount, summaryCount)

	export := exportJSON{Report: report}
	for pos := 0; pos < total; pos++ {
		row := rowJSON{Position: pos}
		switch r := render.RowAt(pos, elementCount, summaryCount).(type) {
		case render.HeaderRow:
			row.Kind = "header"
			row.Text = render.HeaderText(ctx).Text
		case render.ConnectorRow:
			row.Kind = "connector"
			conn := render.ConnectorAt(pos, statuses, summaryCount, ctx.IsLeakGroup)
			row.Connector = conn.String()
			if r.Help {
				row.Text = render.HelpText(ctx.IsLeakGroup).Text
			} else {
				row.Text = render.ElementText(report.Trace.Elements[r.ElementIndex], r.ElementIndex, ctx).Text
			}
		case render.SummaryRow:
			row.Kind = "instance_summary"
			row.Text = render.SummaryText(report.Instances[r.SummaryIndex], ctx).Text
		}
		export.Rows = append(export.Rows, row)
	}

	return json.MarshalIndent(export, "", "  ")
}

// ExportText exports the report as plain text with ASCII connector art,
// suitable for logs and bug reports.
func (e *exporter) ExportText(report *trace.Report, ctx render.Context) (string, error) {
	var buf bytes.Buffer

	statuses := report.Trace.Statuses()
	elementCount := report.Trace.Len()
	summaryCount := len(report.Instances)
	total := render.TotalRowCount(elementCount, summaryCount)

	for pos := 0; pos < total; pos++ {
		switch r := render.RowAt(pos, elementCount, summaryCount).(type) {
		case render.HeaderRow:
			buf.WriteString(render.HeaderText(ctx).Text)
			buf.WriteString("\n")
		case render.ConnectorRow:
			conn := render.ConnectorAt(pos, statuses, summaryCount, ctx.IsLeakGroup)
			if r.Help {
				buf.WriteString("┬ ")
				buf.WriteString(render.HelpText(ctx.IsLeakGroup).Text)
				buf.WriteString("\n")
				continue
			}
			text := render.ElementText(report.Trace.Elements[r.ElementIndex], r.ElementIndex, ctx).Text
			writeConnectorLines(&buf, conn, text)
		case render.SummaryRow:
			buf.WriteString("  ")
			buf.WriteString(render.SummaryText(report.Instances[r.SummaryIndex], ctx).Text)
			buf.WriteString("\n")
		}
	}

	return plainText(buf.String()), nil
}

// ExportMarkdown exports the report as Markdown documentation.
func (e *exporter) ExportMarkdown(report *trace.Report, ctx render.Context) (string, error) {
	var buf bytes.Buffer

	buf.WriteString("# Leak Report\n\n")
	if ctx.GroupDescription != "" {
		buf.WriteString(ctx.GroupDescription)
		buf.WriteString("\n\n")
	}

	buf.WriteString("## Leak Trace\n\n")
	text, err := e.ExportText(report, ctx)
	if err != nil {
		return "", err
	}
	buf.WriteString("```\n")
	buf.WriteString(text)
	buf.WriteString("```\n")

	if len(report.Instances) > 0 {
		format := ctx.FormatTime
		if format == nil {
			format = render.RelativeTime
		}
		buf.WriteString("\n## Recorded Instances\n\n")
		buf.WriteString("| Class | Detected |\n")
		buf.WriteString("|-------|----------|\n")
		for _, s := range report.Instances {
			fmt.Fprintf(&buf, "| %s | %s |\n", s.ClassSimpleName, format(s.CreatedAt))
		}
	}

	return buf.String(), nil
}

// writeConnectorLines writes one element's text with the connector glyph on
// the first line and a trunk continuation on the detail lines.
func writeConnectorLines(buf *bytes.Buffer, conn render.Connector, text string) {
	first, cont := connectorArt(conn)
	for i, line := range strings.Split(text, "\n") {
		if i == 0 {
			buf.WriteString(first)
		} else {
			buf.WriteString(cont)
		}
		buf.WriteString(line)
		buf.WriteString("\n")
	}
}

// connectorArt maps a connector category to its first-line glyph and the
// continuation prefix for the detail lines under it.
func connectorArt(conn render.Connector) (first, cont string) {
	switch conn {
	case render.ConnectorStart, render.ConnectorStartLastReachable:
		return "├─ ", "│  "
	case render.ConnectorEnd, render.ConnectorEndFirstUnreachable:
		return "╰→ ", "   "
	case render.ConnectorNodeUnknown:
		return "├┄ ", "┆  "
	default:
		return "├─ ", "│  "
	}
}

// plainText strips the non-breaking spaces the formatter uses for visual
// indentation, keeping the export copy-paste friendly.
func plainText(s string) string {
	return strings.ReplaceAll(s, "\u00a0", " ")
}
