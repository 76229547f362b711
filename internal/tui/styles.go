package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"leakview/internal/render"
	"leakview/internal/tui/theme"
)

// styleManager implements the StyleManager interface on top of the theme.
type styleManager struct {
	theme        *theme.Theme
	styles       *theme.Styles
	useNerdFonts bool

	headerStyle lipgloss.Style
	footerStyle lipgloss.Style
	dimStyle    lipgloss.Style
	errorStyle  lipgloss.Style
	okStyle     lipgloss.Style
}

// NewStyleManager creates a new StyleManager instance. With useNerdFonts the
// connector column carries a verdict icon next to the glyph.
func NewStyleManager(useNerdFonts bool) StyleManager {
	t := theme.DefaultTheme()
	s := theme.NewStyles(t)

	return &styleManager{
		theme:        t,
		styles:       s,
		useNerdFonts: useNerdFonts,

		headerStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(t.Surface).
			Bold(true).
			Padding(0, 1),

		footerStyle: lipgloss.NewStyle().
			Foreground(t.Subtle).
			Background(t.Surface).
			Padding(0, 1),

		dimStyle: lipgloss.NewStyle().
			Foreground(t.Muted),

		errorStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(t.Error).
			Bold(true).
			Padding(0, 1),

		okStyle: lipgloss.NewStyle().
			Foreground(t.Success),
	}
}

// Header renders the top bar with the given text.
func (s *styleManager) Header(text string, width int) string {
	if width <= 0 {
		width = 80
	}
	return s.headerStyle.Width(width).Render(text)
}

// Footer renders the bottom bar with key bindings. Bindings use the
// [key]action notation and get their key highlighted.
func (s *styleManager) Footer(text string, width int) string {
	parts := strings.Split(text, " ")
	var rendered strings.Builder

	keyStyle := lipgloss.NewStyle().
		Foreground(s.theme.Primary).
		Bold(true)
	labelStyle := lipgloss.NewStyle().
		Foreground(s.theme.Subtle)

	for _, part := range parts {
		if strings.HasPrefix(part, "[") && strings.Contains(part, "]") {
			idx := strings.Index(part, "]")
			rendered.WriteString(keyStyle.Render(part[1:idx]))
			rendered.WriteString(labelStyle.Render(part[idx+1:]))
		} else {
			rendered.WriteString(labelStyle.Render(part))
		}
		rendered.WriteString(" ")
	}

	style := s.footerStyle
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(strings.TrimSpace(rendered.String()))
}

// Title renders a title.
func (s *styleManager) Title(text string) string {
	return s.styles.Title.Render(text)
}

// DimText renders text with dimmed styling.
func (s *styleManager) DimText(text string) string {
	return s.dimStyle.Render(text)
}

// Error renders error text.
func (s *styleManager) Error(text string) string {
	return s.errorStyle.Render(text)
}

// Success renders success text.
func (s *styleManager) Success(text string) string {
	return s.okStyle.Render(text)
}

// Compile renders styled row text into ANSI-styled terminal output.
func (s *styleManager) Compile(st render.StyledText) string {
	return compileStyledText(st, s.theme)
}

// ConnectorCell returns the styled glyph column for a connector row.
func (s *styleManager) ConnectorCell(c render.Connector) (first, cont string) {
	color := s.theme.ConnectorColor(c)
	style := lipgloss.NewStyle().Foreground(color)
	f, ct := connectorGlyphs(c)
	if s.useNerdFonts {
		// Keep the continuation column aligned under the icon.
		return style.Render(f+" "+connectorIcon(c)) + " ", style.Render(ct+"  ") + " "
	}
	return style.Render(f) + " ", style.Render(ct) + " "
}

// GetTheme returns the underlying theme.
func (s *styleManager) GetTheme() *theme.Theme {
	return s.theme
}

// GetStyles returns the underlying theme styles.
func (s *styleManager) GetStyles() *theme.Styles {
	return s.styles
}
