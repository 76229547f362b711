// Package tui provides a terminal user interface for browsing leak traces:
// a scrolling row list with connector glyphs, styled element descriptions,
// and the recorded instances of a leak group.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"leakview/internal/render"
	"leakview/internal/trace"
	"leakview/internal/tui/theme"
)

// TUI provides the main terminal user interface.
type TUI interface {
	// Run starts the TUI with the given report and blocks until the user
	// exits.
	Run(ctx context.Context, report *trace.Report, opts Options) error
}

// Model represents the application state for the TUI.
type Model interface {
	// Init initializes the model.
	Init() tea.Cmd

	// Update handles messages and updates the model.
	Update(tea.Msg) (tea.Model, tea.Cmd)

	// View renders the current view.
	View() string
}

// StyleManager provides consistent styling across the TUI.
type StyleManager interface {
	// Header renders the top bar with the given text.
	Header(text string, width int) string

	// Footer renders the bottom bar with the given text.
	Footer(text string, width int) string

	// Title renders a title.
	Title(text string) string

	// DimText renders text with dimmed styling.
	DimText(text string) string

	// Error renders error text.
	Error(text string) string

	// Success renders success text.
	Success(text string) string

	// Compile renders styled row text into ANSI-styled terminal output.
	Compile(st render.StyledText) string

	// ConnectorCell returns the glyph column for a connector row: the
	// first-line glyph and the continuation prefix for detail lines.
	ConnectorCell(c render.Connector) (first, cont string)

	// GetTheme returns the underlying theme.
	GetTheme() *theme.Theme

	// GetStyles returns the underlying theme styles.
	GetStyles() *theme.Styles
}
