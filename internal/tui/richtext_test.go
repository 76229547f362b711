package tui

import (
	"strings"
	"testing"

	"leakview/internal/render"
	"leakview/internal/tui/theme"
)

func TestCompileStyledTextNoSpans(t *testing.T) {
	st := render.StyledText{Text: "plain text"}

	got := compileStyledText(st, theme.DefaultTheme())
	if got != "plain text" {
		t.Errorf("compileStyledText = %q, want the text unchanged", got)
	}
}

func TestCompileStyledTextKeepsAllText(t *testing.T) {
	// Styled or not, every byte of the input text must survive compilation.
	st := render.StyledText{
		Text: "prefix styled suffix",
		Spans: []render.Span{
			{Start: 7, End: 13, Style: render.Style{Color: render.ColorLeak, Bold: true}},
		},
	}

	got := compileStyledText(st, theme.DefaultTheme())
	for _, want := range []string{"prefix ", "styled", " suffix"} {
		if !strings.Contains(got, want) {
			t.Errorf("compiled output %q lost segment %q", got, want)
		}
	}
}

func TestCompileStyledTextAdjacentSpans(t *testing.T) {
	st := render.StyledText{
		Text: "com.example.MainActivity",
		Spans: []render.Span{
			{Start: 0, End: 12, Style: render.Style{Color: render.ColorExtra}},
			{Start: 12, End: 24, Style: render.Style{Color: render.ColorClassName}},
		},
	}

	got := compileStyledText(st, theme.DefaultTheme())
	if !strings.Contains(got, "com.example.") || !strings.Contains(got, "MainActivity") {
		t.Errorf("compiled output %q lost an adjacent span", got)
	}
}

func TestSpanStyleDecorations(t *testing.T) {
	th := theme.DefaultTheme()

	plain := spanStyle(render.Style{Underline: render.UnderlinePlain}, th)
	if !plain.GetUnderline() {
		t.Error("plain underline span is not underlined")
	}

	emphasized := spanStyle(render.Style{Underline: render.UnderlineEmphasized}, th)
	if !emphasized.GetUnderline() || !emphasized.GetBold() {
		t.Error("emphasized underline span should render underlined and bold")
	}

	italic := spanStyle(render.Style{Italic: true}, th)
	if !italic.GetItalic() {
		t.Error("italic span is not italic")
	}

	bold := spanStyle(render.Style{Bold: true}, th)
	if !bold.GetBold() {
		t.Error("bold span is not bold")
	}
}
