// Package model defines the data structures shared by the trace city packages.
package model

import (
	"encoding/json"
	"strings"
)

// Path represents a file system path.
type Path string

// EventType is the kind of a raw trace record.
type EventType string

const (
	// EventCall marks a function entry.
	EventCall EventType = "CALL"
	// EventReturn marks a function exit.
	EventReturn EventType = "RETURN"
	// EventDecl marks a variable declaration.
	EventDecl EventType = "DECL"
	// EventAssign marks an assignment to an existing variable.
	EventAssign EventType = "ASSIGN"
	// EventParam marks a function parameter binding.
	EventParam EventType = "PARAM"
	// EventLoop marks one iteration of a loop.
	EventLoop EventType = "LOOP"
	// EventCondition marks the evaluation of an if/else-if condition.
	EventCondition EventType = "CONDITION"
	// EventBranch marks entry into the body of a taken branch.
	EventBranch EventType = "BRANCH"
	// EventRead marks a variable read. Reads never become entities.
	EventRead EventType = "READ"
)

// Scalar is a trace value kept as its literal text. JSON numbers and
// booleans decode to their text; null decodes to "".
type Scalar string

// UnmarshalJSON implements json.Unmarshaler.
func (s *Scalar) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}

		*s = Scalar(str)

		return nil
	}

	if string(data) == "null" {
		*s = ""
		return nil
	}

	*s = Scalar(data)

	return nil
}

// TraceEvent is one immutable record of the execution trace.
// Index is the stable position in the full trace array.
type TraceEvent struct {
	Index           int       `yaml:"index" json:"index"`
	Type            EventType `yaml:"type" json:"type"`
	Name            string    `yaml:"name,omitempty" json:"name,omitempty"`
	Subject         string    `yaml:"subject,omitempty" json:"subject,omitempty"`
	Var             string    `yaml:"var,omitempty" json:"var,omitempty"`
	Value           Scalar    `yaml:"value,omitempty" json:"value,omitempty"`
	Address         string    `yaml:"address,omitempty" json:"address,omitempty"`
	Condition       string    `yaml:"condition,omitempty" json:"condition,omitempty"`
	ConditionResult *bool     `yaml:"conditionResult,omitempty" json:"conditionResult,omitempty"`
	Subtype         string    `yaml:"subtype,omitempty" json:"subtype,omitempty"`
	Branch          string    `yaml:"branch,omitempty" json:"branch,omitempty"`
	Line            int       `yaml:"line,omitempty" json:"line,omitempty"`
	Depth           int       `yaml:"depth,omitempty" json:"depth,omitempty"`
}

// VariableName returns the variable the event refers to.
func (e TraceEvent) VariableName() string {
	switch {
	case e.Var != "":
		return e.Var
	case e.Name != "":
		return e.Name
	default:
		return e.Subject
	}
}

// DisplayName returns the label used for entities created from this event.
func (e TraceEvent) DisplayName() string {
	switch e.Type {
	case EventDecl, EventAssign, EventParam, EventRead:
		return e.VariableName()
	case EventLoop:
		if e.Condition == "" {
			return e.Subtype
		}

		return strings.TrimSpace(e.Subtype + " (" + e.Condition + ")")
	case EventCondition:
		return e.Condition
	case EventBranch:
		if e.Branch != "" {
			return e.Branch
		}

		return e.Condition
	}

	if e.Name != "" {
		return e.Name
	}

	if e.Subject != "" {
		return e.Subject
	}

	return string(e.Type)
}

// IsControlFlow reports whether the event belongs to a branch structure.
func (e TraceEvent) IsControlFlow() bool {
	return e.Type == EventCondition || e.Type == EventBranch
}

// Lookup returns the event at idx, or false when the index has no record.
func Lookup(trace []TraceEvent, idx int) (TraceEvent, bool) {
	if idx < 0 || idx >= len(trace) {
		return TraceEvent{}, false
	}

	return trace[idx], true
}

// BoolPtr returns a pointer to b. Handy for ConditionResult literals.
func BoolPtr(b bool) *bool {
	return &b
}

// Trace is a loaded trace file: the raw events plus an optional snapshot.
type Trace struct {
	Events   []TraceEvent `yaml:"events" json:"events"`
	Snapshot *Snapshot    `yaml:"snapshot,omitempty" json:"snapshot,omitempty"`
}
