package heuristic

import (
	"log/slog"

	"leakview/internal/render"
	"leakview/internal/trace"
)

// Engine evaluates the rule set against one leak trace. Verdicts are
// computed once per element and cached, so the render layer can query per
// row without re-walking the chain.
type Engine struct {
	logger *slog.Logger
	rules  []Rule
	tr     *trace.LeakTrace

	suspect []bool
}

// NewEngine creates an engine over the given trace using the default rules.
func NewEngine(logger *slog.Logger, tr *trace.LeakTrace) *Engine {
	return NewEngineWithRules(logger, tr, DefaultRules())
}

// NewEngineWithRules creates an engine with a custom rule set.
func NewEngineWithRules(logger *slog.Logger, tr *trace.LeakTrace, rules []Rule) *Engine {
	e := &Engine{
		logger:  logger,
		rules:   rules,
		tr:      tr,
		suspect: make([]bool, tr.Len()),
	}
	e.evaluate()
	return e
}

// MayBeLeakCause reports whether any rule flagged the element as suspect.
// It satisfies render.CauseFunc.
func (e *Engine) MayBeLeakCause(elementIndex int) bool {
	return e.suspect[elementIndex]
}

// CauseFunc returns the engine's verdict as the opaque query the render
// core consumes.
func (e *Engine) CauseFunc() render.CauseFunc {
	return e.MayBeLeakCause
}

func (e *Engine) evaluate() {
	for i := range e.tr.Elements {
		for _, rule := range e.rules {
			if rule.Applies(e.tr, i) {
				e.suspect[i] = true
				e.logger.Debug("Element flagged as possible leak cause",
					"element", i,
					"class", e.tr.Elements[i].ClassName,
					"rule", rule.ID())
				break
			}
		}
	}
}
