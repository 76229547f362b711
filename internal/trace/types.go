// Package trace defines the leak trace data model: the ordered reference
// chain from a garbage-collection root to a retained object, plus the
// summaries of previously recorded leaking instances shown in leak-group
// views.
package trace

import (
	"encoding/json"
	"fmt"
	"strings"
)

// LeakStatus is the analysis verdict for a single trace element.
type LeakStatus int

const (
	// StatusUnknown means the analysis could not decide either way.
	StatusUnknown LeakStatus = iota
	// StatusNotLeaking means the element is confirmed reachable by design.
	StatusNotLeaking
	// StatusLeaking means the element is confirmed part of the leak.
	StatusLeaking
)

// Valid reports whether s is one of the three defined verdicts.
func (s LeakStatus) Valid() bool {
	return s == StatusUnknown || s == StatusNotLeaking || s == StatusLeaking
}

// String returns the wire name of the status.
func (s LeakStatus) String() string {
	switch s {
	case StatusUnknown:
		return "UNKNOWN"
	case StatusNotLeaking:
		return "NOT_LEAKING"
	case StatusLeaking:
		return "LEAKING"
	default:
		return fmt.Sprintf("LeakStatus(%d)", int(s))
	}
}

// MarshalJSON encodes the status by its wire name.
func (s LeakStatus) MarshalJSON() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("cannot marshal invalid leak status %d", int(s))
	}
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a status from its wire name.
func (s *LeakStatus) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	switch name {
	case "UNKNOWN":
		*s = StatusUnknown
	case "NOT_LEAKING":
		*s = StatusNotLeaking
	case "LEAKING":
		*s = StatusLeaking
	default:
		return fmt.Errorf("unknown leak status %q", name)
	}
	return nil
}

// ReferenceType describes the kind of outgoing reference an element holds.
type ReferenceType string

const (
	RefInstanceField ReferenceType = "instance_field"
	RefStaticField   ReferenceType = "static_field"
	RefLocal         ReferenceType = "local"
	RefArrayEntry    ReferenceType = "array_entry"
)

// Reference is the outgoing edge from one element to the next in the chain.
// The last element of a trace has no reference.
type Reference struct {
	DisplayName string        `json:"display_name"`
	Type        ReferenceType `json:"type"`
}

// Element is one node in the reference chain.
type Element struct {
	ClassName       string     `json:"class_name"`
	ClassSimpleName string     `json:"class_simple_name"`
	Status          LeakStatus `json:"status"`
	// StatusReason is the free-text explanation for the verdict.
	// Empty when Status is StatusUnknown.
	StatusReason string     `json:"status_reason,omitempty"`
	Labels       []string   `json:"labels,omitempty"`
	Reference    *Reference `json:"reference,omitempty"`
}

// LeakTrace is the ordered, immutable chain of elements. Index 0 is the
// GC root side; the last index is the leaked object itself.
type LeakTrace struct {
	Elements []Element `json:"elements"`
}

// Len returns the number of elements in the chain.
func (t *LeakTrace) Len() int {
	return len(t.Elements)
}

// Statuses returns the leak status of every element, in chain order.
func (t *LeakTrace) Statuses() []LeakStatus {
	statuses := make([]LeakStatus, len(t.Elements))
	for i, e := range t.Elements {
		statuses[i] = e.Status
	}
	return statuses
}

// LeakedObject returns the final element of the chain.
func (t *LeakTrace) LeakedObject() Element {
	return t.Elements[len(t.Elements)-1]
}

// Validate checks the structural invariants of the trace. A trace always
// has at least the leaked object, and every status must be a defined verdict.
func (t *LeakTrace) Validate() error {
	if len(t.Elements) == 0 {
		return fmt.Errorf("leak trace must contain at least the leaked object")
	}
	for i, e := range t.Elements {
		if !e.Status.Valid() {
			return fmt.Errorf("element %d (%s): invalid leak status %d", i, e.ClassName, int(e.Status))
		}
		if strings.TrimSpace(e.ClassName) == "" {
			return fmt.Errorf("element %d: missing class name", i)
		}
	}
	return nil
}

// InstanceSummary is one previously recorded leak of the same retained
// class, shown as part of a leak-group view. CreatedAt is epoch milliseconds.
type InstanceSummary struct {
	ClassSimpleName string `json:"class_simple_name"`
	CreatedAt       int64  `json:"created_at_ms"`
}

// Report is a complete renderable unit: one leak trace, its description,
// and any previously recorded instances of the same leak. Instances keep
// the order they were supplied in; nothing here re-sorts them.
type Report struct {
	Description string            `json:"description"`
	Trace       LeakTrace         `json:"trace"`
	Instances   []InstanceSummary `json:"instances,omitempty"`
}

// IsLeakGroup reports whether the report carries recorded instances and
// should render in leak-group mode.
func (r *Report) IsLeakGroup() bool {
	return len(r.Instances) > 0
}

// Validate checks the report and its trace.
func (r *Report) Validate() error {
	if err := r.Trace.Validate(); err != nil {
		return fmt.Errorf("invalid trace: %w", err)
	}
	for i, s := range r.Instances {
		if strings.TrimSpace(s.ClassSimpleName) == "" {
			return fmt.Errorf("instance %d: missing class name", i)
		}
	}
	return nil
}
