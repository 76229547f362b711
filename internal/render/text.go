package render

import (
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"leakview/internal/trace"
)

// ColorToken names a themed color. Tokens are opaque here; the rendering
// layer resolves them to concrete colors.
type ColorToken int

const (
	// ColorDefault leaves the segment in the surrounding text color.
	ColorDefault ColorToken = iota
	// ColorClassName is used for class display names.
	ColorClassName
	// ColorLeak is used for references suspected to cause the leak.
	ColorLeak
	// ColorReference is used for ordinary reference names.
	ColorReference
	// ColorExtra is used for package prefixes, reachability and labels.
	ColorExtra
	// ColorHelp is used for explanatory help text.
	ColorHelp
)

// UnderlineKind distinguishes the two underline decorations the rendering
// layer must support.
type UnderlineKind int

const (
	UnderlineNone UnderlineKind = iota
	UnderlinePlain
	// UnderlineEmphasized marks the span for the distinctive squiggly
	// decoration used on suspected leak causes.
	UnderlineEmphasized
)

// Style is the set of attributes applied to one span of text.
type Style struct {
	Color     ColorToken
	Bold      bool
	Italic    bool
	Underline UnderlineKind
}

// Span is a half-open byte range [Start, End) of styled text.
type Span struct {
	Start int
	End   int
	Style Style
}

// StyledText is a plain string plus ordered, non-overlapping style
// annotations. Each target toolkit compiles this into its native rich-text
// form without the core depending on any markup syntax.
type StyledText struct {
	Text  string
	Spans []Span
}

// CauseFunc is the analysis engine's per-element root-cause heuristic,
// consumed as an opaque query. It must be callable for every valid element
// index and must not mutate the trace.
type CauseFunc func(elementIndex int) bool

// TimeFormatter renders epoch milliseconds as a display string. Locale
// handling belongs to the formatter, not to this core.
type TimeFormatter func(epochMillis int64) string

// Context is the immutable per-render configuration.
type Context struct {
	// GroupDescription is the text shown in the header row.
	GroupDescription string
	// IsLeakGroup is true iff the instance summary sequence is non-empty.
	IsLeakGroup bool
	// MayBeLeakCause is the analysis collaborator's heuristic. May be nil,
	// in which case no element is emphasized outside leak-group mode.
	MayBeLeakCause CauseFunc
	// FormatTime renders summary timestamps. Defaults to RelativeTime.
	FormatTime TimeFormatter
}

// Indent is the fixed visual indent of the detail lines below a class name:
// four non-breaking spaces, so word-wrap never collapses it.
const Indent = "\u00a0\u00a0\u00a0\u00a0"

// Help text for the explanatory connector row.
const (
	helpText          = "Underlined references are the likely causes of the leak."
	helpTextLeakGroup = "Known likely causes of leak group"
)

var angleEscaper = strings.NewReplacer("<", "&lt;", ">", "&gt;")

// RelativeTime is the default TimeFormatter: an absolute timestamp followed
// by a humanized relative offset.
func RelativeTime(epochMillis int64) string {
	t := time.UnixMilli(epochMillis)
	return t.Format("2006-01-02 15:04") + " (" + humanize.Time(t) + ")"
}

// HeaderText builds the header row: the plain group description.
func HeaderText(ctx Context) StyledText {
	return StyledText{Text: ctx.GroupDescription}
}

// HelpText builds the explanatory text for the help connector row.
func HelpText(isLeakGroup bool) StyledText {
	text := helpText
	if isLeakGroup {
		text = helpTextLeakGroup
	}
	return StyledText{
		Text:  text,
		Spans: []Span{{Start: 0, End: len(text), Style: Style{Color: ColorHelp}}},
	}
}

// ElementText builds the styled description of one trace element: the class
// name, its reachability verdict, any labels, and the outgoing reference.
// A reference suspected to be the leak cause is emphasized with bold and the
// squiggly underline decoration.
func ElementText(e trace.Element, elementIndex int, ctx Context) StyledText {
	checkStatus(e.Status, elementIndex)
	cause := maybeLeakCause(elementIndex, ctx)

	var b textBuilder

	pkg, name := splitClassName(e)
	if pkg != "" {
		b.styled(pkg, Style{Color: ColorExtra})
	}
	b.styled(name, Style{Color: ColorClassName})

	b.plain("\n")
	b.styled(Indent+"Leaking: "+reachability(e), Style{Color: ColorExtra})

	for _, label := range e.Labels {
		b.plain("\n")
		b.styled(Indent+label, Style{Color: ColorExtra})
	}

	if e.Reference != nil {
		st := Style{Color: ColorReference}
		if cause {
			st = Style{Color: ColorLeak, Bold: true, Underline: UnderlineEmphasized}
		}
		if e.Reference.Type == trace.RefStaticField {
			st.Italic = true
		}
		b.plain("\n" + Indent)
		b.styled(angleEscaper.Replace(e.Reference.DisplayName), st)
	}

	return b.build()
}

// SummaryText builds the row for one previously recorded leaking instance.
func SummaryText(s trace.InstanceSummary, ctx Context) StyledText {
	format := ctx.FormatTime
	if format == nil {
		format = RelativeTime
	}

	var b textBuilder
	b.styled(s.ClassSimpleName, Style{Color: ColorClassName})
	b.plain(" has leaked ")
	b.styled(format(s.CreatedAt), Style{Color: ColorExtra})
	return b.build()
}

// maybeLeakCause is true unconditionally in leak-group mode; otherwise the
// decision is delegated to the analysis collaborator.
func maybeLeakCause(elementIndex int, ctx Context) bool {
	if ctx.IsLeakGroup {
		return true
	}
	if ctx.MayBeLeakCause == nil {
		return false
	}
	return ctx.MayBeLeakCause(elementIndex)
}

// splitClassName splits the fully qualified name at the last dot. The
// display name comes from the simple name with every "[]" rewritten to
// "[ ]" so array brackets survive downstream word-wrap.
func splitClassName(e trace.Element) (pkg, name string) {
	name = strings.ReplaceAll(e.ClassSimpleName, "[]", "[ ]")
	if idx := strings.LastIndex(e.ClassName, "."); idx >= 0 {
		pkg = e.ClassName[:idx+1]
	}
	return pkg, name
}

func reachability(e trace.Element) string {
	switch e.Status {
	case trace.StatusUnknown:
		return "UNKNOWN"
	case trace.StatusNotLeaking:
		return "NO (" + e.StatusReason + ")"
	default:
		return "YES (" + e.StatusReason + ")"
	}
}

// textBuilder accumulates plain text and span annotations.
type textBuilder struct {
	text  strings.Builder
	spans []Span
}

func (b *textBuilder) plain(s string) {
	b.text.WriteString(s)
}

func (b *textBuilder) styled(s string, style Style) {
	start := b.text.Len()
	b.text.WriteString(s)
	b.spans = append(b.spans, Span{Start: start, End: b.text.Len(), Style: style})
}

func (b *textBuilder) build() StyledText {
	return StyledText{Text: b.text.String(), Spans: b.spans}
}
