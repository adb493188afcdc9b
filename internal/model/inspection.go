package model

import "cogentcore.org/core/math32"

// Addressable is one entity reachable by navigation in the active context.
type Addressable struct {
	Key      string         `yaml:"key" json:"key"`
	Label    string         `yaml:"label" json:"label"`
	Type     EntityType     `yaml:"type" json:"type"`
	View     ViewKind       `yaml:"view,omitempty" json:"view,omitempty"`
	Slot     int            `yaml:"slot" json:"slot"`
	Position math32.Vector3 `yaml:"position" json:"position"`
	Line     int            `yaml:"line,omitempty" json:"line,omitempty"`
}

// ViewState is the state reported by a view toggle.
type ViewState string

// View toggle states.
const (
	ViewOpened ViewState = "open"
	ViewClosed ViewState = "close"
)

// ViewToggle is fired whenever a nested view opens or closes. Radius and
// Center frame the view for a camera; they are zero on close.
type ViewToggle struct {
	State  ViewState
	Key    string
	Kind   ViewKind
	Radius float32
	Center math32.Vector3
}

// Inspection is the structured detail of one entity or raw event, enough
// for an external panel to render.
type Inspection struct {
	Key          string        `yaml:"key" json:"key"`
	Type         EntityType    `yaml:"type" json:"type"`
	ColorType    string        `yaml:"colorType" json:"colorType"`
	Label        string        `yaml:"label" json:"label"`
	Address      string        `yaml:"address,omitempty" json:"address,omitempty"`
	Line         int           `yaml:"line,omitempty" json:"line,omitempty"`
	CurrentValue string        `yaml:"currentValue,omitempty" json:"currentValue,omitempty"`
	Values       []ValueRecord `yaml:"values,omitempty" json:"values,omitempty"`
	Iterations   int           `yaml:"iterations,omitempty" json:"iterations,omitempty"`
	Elided       int           `yaml:"elided,omitempty" json:"elided,omitempty"`
	StepIndices  []int         `yaml:"stepIndices,omitempty" json:"stepIndices,omitempty"`
	// Condition and ConditionResult are set for raw CONDITION events.
	Condition       string `yaml:"condition,omitempty" json:"condition,omitempty"`
	ConditionResult *bool  `yaml:"conditionResult,omitempty" json:"conditionResult,omitempty"`
}

// LinePtr returns the inspected source line, or nil when it is unknown.
func (i Inspection) LinePtr() *int {
	if i.Line <= 0 {
		return nil
	}

	line := i.Line

	return &line
}

// InspectEntity describes e.
func InspectEntity(e Entity) Inspection {
	line, _ := e.Line()

	return Inspection{
		Key:          e.Key,
		Type:         e.Type,
		ColorType:    e.ColorType,
		Label:        e.Label,
		Address:      e.Address(),
		Line:         line,
		CurrentValue: e.CurrentValue,
		Values:       append([]ValueRecord(nil), e.Values...),
		Iterations:   e.Iterations,
		Elided:       e.Elided,
		StepIndices:  append([]int(nil), e.StepIndices...),
	}
}

// InspectEvent describes a single raw event.
func InspectEvent(ev TraceEvent) Inspection {
	t := EntityTypeFor(ev.Type)

	insp := Inspection{
		Key:         EventKey(t, ev.Index),
		Type:        t,
		ColorType:   string(ev.Type),
		Label:       ev.DisplayName(),
		Address:     ev.Address,
		Line:        ev.Line,
		StepIndices: []int{ev.Index},
		Condition:   ev.Condition,
	}

	if ev.ConditionResult != nil {
		result := *ev.ConditionResult
		insp.ConditionResult = &result
	}

	if ev.Value != "" {
		insp.CurrentValue = string(ev.Value)
		insp.Values = []ValueRecord{{Step: ev.Index, Value: string(ev.Value)}}
	}

	return insp
}
