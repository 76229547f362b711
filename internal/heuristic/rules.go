// Package heuristic provides the default root-cause analysis used to decide
// whether a trace element's outgoing reference is likely the actual cause of
// retention. The render core consumes the result as an opaque per-element
// query; this package is the collaborator behind it.
package heuristic

import (
	"strings"

	"leakview/internal/trace"
)

// Rule decides whether a single element is suspect.
type Rule interface {
	// ID returns the unique identifier for this rule (e.g., "LC001").
	ID() string
	// Name returns the human-readable name of the rule.
	Name() string
	// Description returns a detailed description of what this rule checks.
	Description() string
	// Applies reports whether the element at elementIndex is suspect.
	Applies(tr *trace.LeakTrace, elementIndex int) bool
}

// =============================================================================
// Rules
// =============================================================================

// CauseWindowRule flags elements inside the suspicion window: from the last
// element confirmed reachable up to, but not including, the first element
// confirmed leaking. The reference that breaks the chain has to live there.
type CauseWindowRule struct{}

func (r *CauseWindowRule) ID() string   { return "LC001" }
func (r *CauseWindowRule) Name() string { return "cause-window" }
func (r *CauseWindowRule) Description() string {
	return "The leak-causing reference sits between the last element known to be reachable and the first element known to be leaking. Everything outside that window is already explained."
}

func (r *CauseWindowRule) Applies(tr *trace.LeakTrace, elementIndex int) bool {
	lo, hi := suspicionWindow(tr)
	return elementIndex >= lo && elementIndex < hi
}

// StaticFieldRule flags undetermined elements held through a static field.
// Statics never get collected, so a static reference into an undetermined
// part of the chain is a classic retention pattern.
type StaticFieldRule struct{}

func (r *StaticFieldRule) ID() string   { return "LC002" }
func (r *StaticFieldRule) Name() string { return "static-field" }
func (r *StaticFieldRule) Description() string {
	return "A static field keeps its referent alive for the lifetime of the class loader. When the analysis could not clear the element, the static reference is a likely cause."
}

func (r *StaticFieldRule) Applies(tr *trace.LeakTrace, elementIndex int) bool {
	e := tr.Elements[elementIndex]
	if e.Reference == nil || e.Reference.Type != trace.RefStaticField {
		return false
	}
	return e.Status != trace.StatusNotLeaking
}

// AnonymousClassRule flags undetermined anonymous or synthetic classes,
// which commonly capture an outer instance without the author noticing.
type AnonymousClassRule struct{}

func (r *AnonymousClassRule) ID() string   { return "LC003" }
func (r *AnonymousClassRule) Name() string { return "anonymous-class" }
func (r *AnonymousClassRule) Description() string {
	return "Anonymous and synthetic inner classes hold an implicit reference to their enclosing instance, a frequent source of accidental retention."
}

func (r *AnonymousClassRule) Applies(tr *trace.LeakTrace, elementIndex int) bool {
	e := tr.Elements[elementIndex]
	if e.Status == trace.StatusNotLeaking {
		return false
	}
	return strings.Contains(e.ClassName, "$")
}

// DefaultRules returns the ordered rule set used by the engine.
func DefaultRules() []Rule {
	return []Rule{
		&CauseWindowRule{},
		&StaticFieldRule{},
		&AnonymousClassRule{},
	}
}

// suspicionWindow returns the half-open element index range [lo, hi) where
// the leak cause can sit: after the last confirmed NotLeaking element
// (inclusive, since its outgoing reference is the first unexplained hop) and
// before the first confirmed Leaking element.
func suspicionWindow(tr *trace.LeakTrace) (lo, hi int) {
	lo = 0
	hi = tr.Len()
	for i, e := range tr.Elements {
		if e.Status == trace.StatusNotLeaking {
			lo = i
		}
	}
	for i, e := range tr.Elements {
		if e.Status == trace.StatusLeaking {
			hi = i
			break
		}
	}
	if hi < lo {
		hi = lo
	}
	return lo, hi
}
