package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"

	"leakview/internal/render"
	"leakview/internal/trace"
)

// Options configures a TUI run.
type Options struct {
	// Cause is the analysis collaborator's per-element leak-cause heuristic.
	Cause render.CauseFunc
	// FormatTime renders summary timestamps; nil uses the default.
	FormatTime render.TimeFormatter
	// WatchPath enables live reload of the report file when non-empty.
	WatchPath string
	// UseNerdFonts adds verdict icons to the connector column.
	UseNerdFonts bool
	// Reload re-reads the report; required when WatchPath is set.
	Reload func() (*trace.Report, error)
}

// State represents the complete application state.
type State struct {
	// Core data
	Report    *trace.Report
	RenderCtx render.Context

	// UI components
	Viewport viewport.Model
	Ready    bool

	// Window dimensions
	WindowWidth  int
	WindowHeight int

	// UI preferences
	ShowHelp bool

	// WatchPath is the report file being watched for changes, if any.
	WatchPath string

	// Status
	StatusMessage string
	StatusType    string // "info", "success", "warning", "error"
}

// StatusType constants
const (
	StatusInfo    = "info"
	StatusSuccess = "success"
	StatusWarning = "warning"
	StatusError   = "error"
)

// keyMap defines the keyboard shortcuts. It implements help.KeyMap.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Reload   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "b"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "f", " "),
			key.WithHelp("pgdn", "page down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "go to bottom"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Reload, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Top, k.Bottom, k.Reload},
		{k.Help, k.Quit},
	}
}

// Messages used by the update loop.

// fileChangedMsg signals that the watched report file changed on disk.
type fileChangedMsg struct{}

// reloadedMsg carries the result of re-reading the report.
type reloadedMsg struct {
	report *trace.Report
	err    error
}
