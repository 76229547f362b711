package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"leakview/internal/render"
	"leakview/internal/tui/theme"
)

// compileStyledText renders the formatter's span-annotated text into an
// ANSI-styled string. Text outside any span keeps the terminal default.
//
// The emphasized underline the formatter requests for suspected leak causes
// renders as underline plus bold; terminals have no portable squiggly
// decoration, so weight carries the emphasis instead.
func compileStyledText(st render.StyledText, th *theme.Theme) string {
	if len(st.Spans) == 0 {
		return st.Text
	}

	var b strings.Builder
	cursor := 0
	for _, span := range st.Spans {
		if span.Start > cursor {
			b.WriteString(st.Text[cursor:span.Start])
		}
		b.WriteString(spanStyle(span.Style, th).Render(st.Text[span.Start:span.End]))
		cursor = span.End
	}
	if cursor < len(st.Text) {
		b.WriteString(st.Text[cursor:])
	}
	return b.String()
}

func spanStyle(s render.Style, th *theme.Theme) lipgloss.Style {
	style := lipgloss.NewStyle().Foreground(th.TokenColor(s.Color))
	if s.Bold {
		style = style.Bold(true)
	}
	if s.Italic {
		style = style.Italic(true)
	}
	switch s.Underline {
	case render.UnderlinePlain:
		style = style.Underline(true)
	case render.UnderlineEmphasized:
		style = style.Underline(true).Bold(true)
	}
	return style
}
