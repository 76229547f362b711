package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"leakview/internal/render"
)

// renderMain composes the full screen: header bar, scrollable trace content,
// an optional status line, and the key-binding help.
func renderMain(state *State, styles StyleManager, helpModel help.Model, keys keyMap) string {
	sections := []string{
		styles.Header(headerLine(state), state.WindowWidth),
		state.Viewport.View(),
	}
	if state.StatusMessage != "" {
		sections = append(sections, statusLine(state, styles))
	}
	if state.WatchPath != "" {
		sections = append(sections, styles.Footer("[watch] "+state.WatchPath, state.WindowWidth))
	}
	sections = append(sections, helpModel.View(keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// chromeHeight is the number of terminal rows everything but the viewport
// occupies, so resize can size the viewport to the remainder.
func chromeHeight(state *State, helpModel help.Model, keys keyMap) int {
	h := 1 // header bar
	if state.StatusMessage != "" {
		h++
	}
	if state.WatchPath != "" {
		h++
	}
	h += lipgloss.Height(helpModel.View(keys))
	return h
}

func headerLine(state *State) string {
	trace := state.Report.Trace
	line := fmt.Sprintf("leakview · %d elements", trace.Len())
	if n := len(state.Report.Instances); n > 0 {
		line += fmt.Sprintf(" · %d leaked instances", n)
	}
	if state.Ready {
		line += fmt.Sprintf(" · %3.0f%%", state.Viewport.ScrollPercent()*100)
	}
	return line
}

func statusLine(state *State, styles StyleManager) string {
	switch state.StatusType {
	case StatusError:
		return styles.Error(state.StatusMessage)
	case StatusSuccess:
		return styles.Success(state.StatusMessage)
	default:
		return styles.DimText(state.StatusMessage)
	}
}

// buildContent renders every row of the report into the viewport content.
// Rows come from the position model; connector rows get their glyph column
// prepended to each line of the compiled element text.
func buildContent(state *State, styles StyleManager) string {
	report := state.Report
	ctx := state.RenderCtx

	statuses := report.Trace.Statuses()
	elementCount := report.Trace.Len()
	summaryCount := len(report.Instances)
	total := render.TotalRowCount(elementCount, summaryCount)

	var b strings.Builder
	for pos := 0; pos < total; pos++ {
		switch row := render.RowAt(pos, elementCount, summaryCount).(type) {
		case render.HeaderRow:
			b.WriteString(styles.Title(render.HeaderText(ctx).Text))
			b.WriteString("\n")

		case render.ConnectorRow:
			conn := render.ConnectorAt(pos, statuses, summaryCount, ctx.IsLeakGroup)
			var text render.StyledText
			if row.Help {
				text = render.HelpText(ctx.IsLeakGroup)
			} else {
				text = render.ElementText(report.Trace.Elements[row.ElementIndex], row.ElementIndex, ctx)
			}
			writeConnectorRow(&b, styles, conn, text)

		case render.SummaryRow:
			b.WriteString("  ")
			b.WriteString(styles.Compile(render.SummaryText(report.Instances[row.SummaryIndex], ctx)))
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// writeConnectorRow writes one connector row: the first line carries the
// node glyph, continuation lines carry the trunk below it.
func writeConnectorRow(b *strings.Builder, styles StyleManager, conn render.Connector, text render.StyledText) {
	first, cont := styles.ConnectorCell(conn)
	for i, line := range strings.Split(styles.Compile(text), "\n") {
		if i == 0 {
			b.WriteString(first)
		} else {
			b.WriteString(cont)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
}
