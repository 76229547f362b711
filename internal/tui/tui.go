package tui

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"leakview/internal/render"
	"leakview/internal/trace"
)

// tui implements the TUI interface.
type tui struct {
	logger *slog.Logger
}

// NewTUI creates a new TUI instance.
func NewTUI(logger *slog.Logger) TUI {
	return &tui{logger: logger}
}

// Run starts the TUI with the given report and blocks until the user exits.
func (t *tui) Run(ctx context.Context, report *trace.Report, opts Options) error {
	if report == nil {
		return fmt.Errorf("report cannot be nil")
	}
	if err := report.Validate(); err != nil {
		return err
	}

	var watcher *trace.Watcher
	if opts.WatchPath != "" && opts.Reload != nil {
		w, err := trace.NewWatcher(opts.WatchPath)
		if err != nil {
			return fmt.Errorf("failed to watch %s: %w", opts.WatchPath, err)
		}
		defer w.Close()
		watcher = w
		t.logger.Info("Watching report for changes", "path", opts.WatchPath)
	}

	model := NewModel(report, NewStyleManager(opts.UseNerdFonts), opts, watcher, t.logger)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// model implements the Model interface and serves as the main application
// model.
type model struct {
	state   *State
	styles  StyleManager
	keys    keyMap
	help    help.Model
	opts    Options
	watcher *trace.Watcher
	logger  *slog.Logger
}

// NewModel creates a new model instance.
func NewModel(report *trace.Report, styles StyleManager, opts Options, watcher *trace.Watcher, logger *slog.Logger) Model {
	state := &State{
		Report:       report,
		RenderCtx:    renderContext(report, opts),
		WindowWidth:  80,
		WindowHeight: 30,
		WatchPath:    opts.WatchPath,
	}

	return &model{
		state:   state,
		styles:  styles,
		keys:    defaultKeyMap(),
		help:    help.New(),
		opts:    opts,
		watcher: watcher,
		logger:  logger,
	}
}

// renderContext builds the per-render configuration for a report.
func renderContext(report *trace.Report, opts Options) render.Context {
	return render.Context{
		GroupDescription: report.Description,
		IsLeakGroup:      report.IsLeakGroup(),
		MayBeLeakCause:   opts.Cause,
		FormatTime:       opts.FormatTime,
	}
}

// Init initializes the model.
func (m *model) Init() tea.Cmd {
	if m.watcher != nil {
		return watchCmd(m.watcher)
	}
	return nil
}

// Update handles messages and updates the model.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.handleWindowResize(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case fileChangedMsg:
		// Re-arm the watcher before reloading so no change is missed.
		return m, tea.Batch(reloadCmd(m.opts.Reload), watchCmd(m.watcher))

	case reloadedMsg:
		m.handleReload(msg)
		return m, nil

	default:
		var cmd tea.Cmd
		m.state.Viewport, cmd = m.state.Viewport.Update(msg)
		return m, cmd
	}
}

// View renders the current view.
func (m *model) View() string {
	if !m.state.Ready {
		return "Loading..."
	}
	return renderMain(m.state, m.styles, m.help, m.keys)
}

func (m *model) handleWindowResize(msg tea.WindowSizeMsg) {
	m.state.WindowWidth = msg.Width
	m.state.WindowHeight = msg.Height
	m.help.Width = msg.Width

	contentHeight := msg.Height - chromeHeight(m.state, m.help, m.keys)
	if contentHeight < 3 {
		contentHeight = 3
	}

	if !m.state.Ready {
		m.state.Viewport = viewport.New(msg.Width, contentHeight)
		m.state.Ready = true
	} else {
		m.state.Viewport.Width = msg.Width
		m.state.Viewport.Height = contentHeight
	}
	m.state.Viewport.SetContent(buildContent(m.state, m.styles))
}

func (m *model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Help):
		m.state.ShowHelp = !m.state.ShowHelp
		m.help.ShowAll = m.state.ShowHelp
		m.handleWindowResize(tea.WindowSizeMsg{Width: m.state.WindowWidth, Height: m.state.WindowHeight})
		return m, nil

	case key.Matches(msg, keys.Top):
		m.state.Viewport.GotoTop()
		return m, nil

	case key.Matches(msg, keys.Bottom):
		m.state.Viewport.GotoBottom()
		return m, nil

	case key.Matches(msg, keys.Reload):
		if m.opts.Reload == nil {
			m.setStatus("No report source to reload from", StatusWarning)
			return m, nil
		}
		return m, reloadCmd(m.opts.Reload)

	default:
		var cmd tea.Cmd
		m.state.Viewport, cmd = m.state.Viewport.Update(msg)
		return m, cmd
	}
}

func (m *model) handleReload(msg reloadedMsg) {
	if msg.err != nil {
		m.logger.Error("Failed to reload report", "error", msg.err)
		m.setStatus(fmt.Sprintf("Reload failed: %v", msg.err), StatusError)
		return
	}

	m.state.Report = msg.report
	m.state.RenderCtx = renderContext(msg.report, m.opts)
	m.state.Viewport.SetContent(buildContent(m.state, m.styles))
	m.setStatus("Report reloaded", StatusSuccess)
	m.logger.Info("Reloaded report", "elements", msg.report.Trace.Len())
}

func (m *model) setStatus(message, statusType string) {
	m.state.StatusMessage = message
	m.state.StatusType = statusType
}

// watchCmd waits for the next change signal from the file watcher.
func watchCmd(w *trace.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-w.Changes(); !ok {
			return nil
		}
		return fileChangedMsg{}
	}
}

// reloadCmd re-reads the report off the update loop.
func reloadCmd(reload func() (*trace.Report, error)) tea.Cmd {
	return func() tea.Msg {
		report, err := reload()
		return reloadedMsg{report: report, err: err}
	}
}
