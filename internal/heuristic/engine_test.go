package heuristic

import (
	"log/slog"
	"os"
	"testing"

	"leakview/internal/trace"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestEngineFlagsSuspicionWindow(t *testing.T) {
	tr := chain(
		trace.StatusNotLeaking,
		trace.StatusNotLeaking,
		trace.StatusLeaking,
		trace.StatusLeaking,
	)

	engine := NewEngine(testLogger(), tr)

	want := []bool{false, true, false, false}
	for i, w := range want {
		if got := engine.MayBeLeakCause(i); got != w {
			t.Errorf("MayBeLeakCause(%d) = %v, want %v", i, got, w)
		}
	}
}

func TestEngineWithNoRules(t *testing.T) {
	tr := chain(trace.StatusUnknown, trace.StatusLeaking)

	engine := NewEngineWithRules(testLogger(), tr, nil)
	for i := 0; i < tr.Len(); i++ {
		if engine.MayBeLeakCause(i) {
			t.Errorf("MayBeLeakCause(%d) = true with no rules", i)
		}
	}
}

func TestEngineCauseFuncMatchesEngine(t *testing.T) {
	tr := chain(trace.StatusNotLeaking, trace.StatusUnknown, trace.StatusLeaking)

	engine := NewEngine(testLogger(), tr)
	cause := engine.CauseFunc()
	for i := 0; i < tr.Len(); i++ {
		if cause(i) != engine.MayBeLeakCause(i) {
			t.Errorf("CauseFunc()(%d) disagrees with MayBeLeakCause", i)
		}
	}
}

// alwaysRule flags every element; used to check rule dispatch.
type alwaysRule struct{}

func (alwaysRule) ID() string          { return "TEST" }
func (alwaysRule) Name() string        { return "always" }
func (alwaysRule) Description() string { return "flags everything" }
func (alwaysRule) Applies(*trace.LeakTrace, int) bool {
	return true
}

func TestEngineWithCustomRules(t *testing.T) {
	tr := chain(trace.StatusNotLeaking, trace.StatusLeaking)

	engine := NewEngineWithRules(testLogger(), tr, []Rule{alwaysRule{}})
	for i := 0; i < tr.Len(); i++ {
		if !engine.MayBeLeakCause(i) {
			t.Errorf("MayBeLeakCause(%d) = false with an always-on rule", i)
		}
	}
}
