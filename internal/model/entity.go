package model

import (
	"fmt"
	"strconv"
	"strings"
)

// EntityType is the semantic category of a consolidated entity.
type EntityType string

const (
	// EntityVariable is a variable's full lifetime (DECL, ASSIGN, PARAM).
	EntityVariable EntityType = "variable"
	// EntityCall is a single function call.
	EntityCall EntityType = "call"
	// EntityReturn is a single function return.
	EntityReturn EntityType = "return"
	// EntityLoop is every iteration of one loop.
	EntityLoop EntityType = "loop"
	// EntityCondition is a single condition evaluation.
	EntityCondition EntityType = "condition"
	// EntityBranch is a single taken branch.
	EntityBranch EntityType = "branch"
	// EntitySummary stands in for entities elided by a node cap.
	EntitySummary EntityType = "summary"
)

// EntityTypeFor maps a raw event type to its entity category. Unknown
// event types pass through lower-cased.
func EntityTypeFor(t EventType) EntityType {
	switch t {
	case EventDecl, EventAssign, EventParam:
		return EntityVariable
	case EventCall:
		return EntityCall
	case EventReturn:
		return EntityReturn
	case EventLoop:
		return EntityLoop
	case EventCondition:
		return EntityCondition
	case EventBranch:
		return EntityBranch
	}

	return EntityType(strings.ToLower(string(t)))
}

// ValueRecord is one entry of a variable's value history.
type ValueRecord struct {
	Step  int    `yaml:"step" json:"step"`
	Value string `yaml:"value" json:"value"`
}

// Entity is a deduplicated semantic unit derived from one or more events.
type Entity struct {
	Type         EntityType    `yaml:"type" json:"type"`
	ColorType    string        `yaml:"colorType" json:"colorType"`
	Label        string        `yaml:"label" json:"label"`
	Key          string        `yaml:"key" json:"key"`
	StepIndices  []int         `yaml:"stepIndices" json:"stepIndices"`
	FirstStep    *TraceEvent   `yaml:"-" json:"-"`
	CurrentValue string        `yaml:"currentValue,omitempty" json:"currentValue,omitempty"`
	Values       []ValueRecord `yaml:"values,omitempty" json:"values,omitempty"`
	Iterations   int           `yaml:"iterations,omitempty" json:"iterations,omitempty"`
	// Elided is the remainder count carried by a summary entity.
	Elided int `yaml:"elided,omitempty" json:"elided,omitempty"`
}

// Address returns the memory address of the first contributing event.
func (e Entity) Address() string {
	if e.FirstStep == nil {
		return ""
	}

	return e.FirstStep.Address
}

// Line returns the source line of the first contributing event.
func (e Entity) Line() (int, bool) {
	if e.FirstStep == nil || e.FirstStep.Line <= 0 {
		return 0, false
	}

	return e.FirstStep.Line, true
}

// VariableKey is the identity key of a variable entity.
func VariableKey(name, address string) string {
	return name + "|" + address
}

// LoopKey is the identity key of a loop entity.
func LoopKey(subtype, condition string) string {
	return subtype + "|" + condition
}

// EventKey is the key of an entity that never merges.
func EventKey(t EntityType, index int) string {
	return string(t) + "#" + strconv.Itoa(index)
}

// SummaryLabel is the label of a summary entity eliding n entities.
func SummaryLabel(n int) string {
	return fmt.Sprintf("+%d more", n)
}
