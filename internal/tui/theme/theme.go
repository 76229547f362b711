// Package theme provides a cohesive visual theme for the TUI, including the
// palette the leak-trace formatter's color tokens resolve to.
package theme

import (
	"github.com/charmbracelet/lipgloss"

	"leakview/internal/render"
)

// Theme represents the complete visual theme for the application.
type Theme struct {
	// Base colors
	Base    lipgloss.Color
	Surface lipgloss.Color
	Overlay lipgloss.Color
	Muted   lipgloss.Color
	Subtle  lipgloss.Color
	Text    lipgloss.Color

	// Accent colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color

	// Semantic colors
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	Info    lipgloss.Color

	// Leak trace colors: the concrete values behind the formatter's
	// opaque color tokens.
	ClassName lipgloss.Color
	Leak      lipgloss.Color
	Reference lipgloss.Color
	Extra     lipgloss.Color
	Help      lipgloss.Color

	// UI element colors
	Border    lipgloss.Color
	Selection lipgloss.Color
}

// DefaultTheme returns the default dark theme.
func DefaultTheme() *Theme {
	return &Theme{
		// Deep space base palette
		Base:    lipgloss.Color("#0d1117"),
		Surface: lipgloss.Color("#161b22"),
		Overlay: lipgloss.Color("#21262d"),
		Muted:   lipgloss.Color("#484f58"),
		Subtle:  lipgloss.Color("#6e7681"),
		Text:    lipgloss.Color("#e6edf3"),

		Primary:   lipgloss.Color("#58a6ff"),
		Secondary: lipgloss.Color("#bc8cff"),

		Success: lipgloss.Color("#3fb950"),
		Warning: lipgloss.Color("#d29922"),
		Error:   lipgloss.Color("#f85149"),
		Info:    lipgloss.Color("#58a6ff"),

		// Leak trace palette
		ClassName: lipgloss.Color("#e6edf3"), // Bright for the display name
		Leak:      lipgloss.Color("#f85149"), // Red for suspected causes
		Reference: lipgloss.Color("#79c0ff"), // Blue for ordinary references
		Extra:     lipgloss.Color("#6e7681"), // Dimmed detail lines
		Help:      lipgloss.Color("#d29922"), // Amber for the help row

		Border:    lipgloss.Color("#30363d"),
		Selection: lipgloss.Color("#388bfd"),
	}
}

// TokenColor resolves one of the formatter's opaque color tokens to the
// theme's concrete color.
func (t *Theme) TokenColor(token render.ColorToken) lipgloss.Color {
	switch token {
	case render.ColorClassName:
		return t.ClassName
	case render.ColorLeak:
		return t.Leak
	case render.ColorReference:
		return t.Reference
	case render.ColorExtra:
		return t.Extra
	case render.ColorHelp:
		return t.Help
	default:
		return t.Text
	}
}

// ConnectorColor returns the trunk color for a connector category:
// green while the chain is known good, red once it is leaking, amber for
// undetermined elements and the help rows.
func (t *Theme) ConnectorColor(c render.Connector) lipgloss.Color {
	switch c {
	case render.ConnectorStart, render.ConnectorStartLastReachable,
		render.ConnectorNodeReachable, render.ConnectorNodeLastReachable:
		return t.Success
	case render.ConnectorNodeFirstUnreachable, render.ConnectorNodeUnreachable,
		render.ConnectorEnd, render.ConnectorEndFirstUnreachable:
		return t.Error
	default:
		return t.Warning
	}
}

// Styles holds all pre-configured styles for the UI.
type Styles struct {
	theme *Theme

	// Layout styles
	App    lipgloss.Style
	Header lipgloss.Style
	Footer lipgloss.Style

	// Component styles
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style

	// Status styles
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style
	Muted   lipgloss.Style

	// Special styles
	KeyBinding lipgloss.Style
	KeyLabel   lipgloss.Style
	Divider    lipgloss.Style
	Box        lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	s := &Styles{theme: theme}

	s.App = lipgloss.NewStyle().
		Background(theme.Base)

	s.Header = lipgloss.NewStyle().
		Foreground(theme.Text).
		Background(theme.Surface).
		Bold(true).
		Padding(0, 2).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(theme.Border)

	s.Footer = lipgloss.NewStyle().
		Foreground(theme.Subtle).
		Background(theme.Surface).
		Padding(0, 1).
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(theme.Border)

	s.Title = lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true)

	s.Subtitle = lipgloss.NewStyle().
		Foreground(theme.Subtle).
		Italic(true)

	s.Label = lipgloss.NewStyle().
		Foreground(theme.Muted)

	s.Value = lipgloss.NewStyle().
		Foreground(theme.Text)

	s.Success = lipgloss.NewStyle().
		Foreground(theme.Success)

	s.Warning = lipgloss.NewStyle().
		Foreground(theme.Warning)

	s.Error = lipgloss.NewStyle().
		Foreground(theme.Error)

	s.Info = lipgloss.NewStyle().
		Foreground(theme.Info)

	s.Muted = lipgloss.NewStyle().
		Foreground(theme.Muted)

	s.KeyBinding = lipgloss.NewStyle().
		Foreground(theme.Primary).
		Background(theme.Overlay).
		Padding(0, 1).
		Bold(true)

	s.KeyLabel = lipgloss.NewStyle().
		Foreground(theme.Subtle)

	s.Divider = lipgloss.NewStyle().
		Foreground(theme.Border)

	s.Box = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(1, 2)

	return s
}

// GetTheme returns the underlying theme.
func (s *Styles) GetTheme() *Theme {
	return s.theme
}
