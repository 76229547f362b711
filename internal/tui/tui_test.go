package tui

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func testModel(t *testing.T, opts Options) *model {
	t.Helper()
	m, ok := NewModel(testReport(), NewStyleManager(false), opts, nil, testLogger()).(*model)
	if !ok {
		t.Fatal("NewModel did not return the concrete model")
	}
	return m
}

func TestNewTUI(t *testing.T) {
	if NewTUI(testLogger()) == nil {
		t.Fatal("NewTUI returned nil")
	}
}

func TestModelViewBeforeResize(t *testing.T) {
	m := testModel(t, Options{})

	if got := m.View(); got != "Loading..." {
		t.Errorf("View before the first resize = %q, want %q", got, "Loading...")
	}
}

func TestModelResizeRendersContent(t *testing.T) {
	m := testModel(t, Options{})

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = updated.(*model)

	if !m.state.Ready {
		t.Fatal("model not ready after a window size message")
	}
	view := m.View()
	for _, want := range []string{"MainActivity has leaked", "ActivityThread"} {
		if !strings.Contains(view, want) {
			t.Errorf("view does not contain %q", want)
		}
	}
}

func TestModelQuitKey(t *testing.T) {
	m := testModel(t, Options{})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("quit key produced no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit key did not produce a quit message")
	}
}

func TestModelHelpToggle(t *testing.T) {
	m := testModel(t, Options{})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	if !m.state.ShowHelp {
		t.Error("help key did not enable the full help")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	if m.state.ShowHelp {
		t.Error("help key did not toggle the full help off")
	}
}

func TestModelReloadWithoutSource(t *testing.T) {
	m := testModel(t, Options{})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	if cmd != nil {
		t.Error("reload without a source should not produce a command")
	}
	if m.state.StatusType != StatusWarning {
		t.Errorf("status type = %q, want %q", m.state.StatusType, StatusWarning)
	}
}

func TestModelReloadedMessage(t *testing.T) {
	m := testModel(t, Options{})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	reloaded := testReport()
	reloaded.Description = "DetailFragment has leaked"
	m.Update(reloadedMsg{report: reloaded})

	if m.state.Report.Description != "DetailFragment has leaked" {
		t.Errorf("report description = %q after reload", m.state.Report.Description)
	}
	if m.state.StatusType != StatusSuccess {
		t.Errorf("status type = %q, want %q", m.state.StatusType, StatusSuccess)
	}
	if !strings.Contains(m.View(), "DetailFragment has leaked") {
		t.Error("view does not show the reloaded report")
	}
}

func TestModelReloadedMessageError(t *testing.T) {
	m := testModel(t, Options{})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	before := m.state.Report

	m.Update(reloadedMsg{err: errors.New("file vanished")})

	if m.state.Report != before {
		t.Error("a failed reload replaced the report")
	}
	if m.state.StatusType != StatusError {
		t.Errorf("status type = %q, want %q", m.state.StatusType, StatusError)
	}
}

func TestRunRejectsNilReport(t *testing.T) {
	if err := NewTUI(testLogger()).Run(context.Background(), nil, Options{}); err == nil {
		t.Error("Run accepted a nil report")
	}
}
