package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspection_LinePtr(t *testing.T) {
	assert.Nil(t, Inspection{}.LinePtr())

	line := Inspection{Line: 9}.LinePtr()
	require.NotNil(t, line)
	assert.Equal(t, 9, *line)
}

func TestInspectEntity_CopiesHistory(t *testing.T) {
	e := Entity{
		Type:         EntityVariable,
		ColorType:    "DECL",
		Label:        "x",
		Key:          "x|0x1",
		StepIndices:  []int{1, 4},
		FirstStep:    &TraceEvent{Index: 1, Address: "0x1", Line: 3},
		CurrentValue: "2",
		Values:       []ValueRecord{{Step: 1, Value: "1"}, {Step: 4, Value: "2"}},
	}

	insp := InspectEntity(e)

	assert.Equal(t, "x|0x1", insp.Key)
	assert.Equal(t, "0x1", insp.Address)
	assert.Equal(t, 3, insp.Line)
	assert.Equal(t, "2", insp.CurrentValue)
	assert.Equal(t, e.Values, insp.Values)

	insp.StepIndices[0] = 99
	insp.Values[0].Value = "changed"
	assert.Equal(t, 1, e.StepIndices[0])
	assert.Equal(t, "1", e.Values[0].Value)
}

func TestInspectEvent(t *testing.T) {
	insp := InspectEvent(TraceEvent{Index: 5, Type: EventAssign, Var: "y", Value: "8", Address: "0x2", Line: 11})

	assert.Equal(t, "variable#5", insp.Key)
	assert.Equal(t, EntityVariable, insp.Type)
	assert.Equal(t, "ASSIGN", insp.ColorType)
	assert.Equal(t, "y", insp.Label)
	assert.Equal(t, "8", insp.CurrentValue)
	assert.Equal(t, []ValueRecord{{Step: 5, Value: "8"}}, insp.Values)
	assert.Equal(t, []int{5}, insp.StepIndices)
	assert.Nil(t, insp.ConditionResult)

	bare := InspectEvent(TraceEvent{Index: 0, Type: EventCall, Name: "main"})
	assert.Empty(t, bare.Values)
	assert.Nil(t, bare.LinePtr())
}

func TestInspectEvent_Condition(t *testing.T) {
	result := false
	ev := TraceEvent{Index: 3, Type: EventCondition, Condition: "i < n", ConditionResult: &result, Line: 7}

	insp := InspectEvent(ev)
	assert.Equal(t, "condition#3", insp.Key)
	assert.Equal(t, "i < n", insp.Condition)
	require.NotNil(t, insp.ConditionResult)
	assert.False(t, *insp.ConditionResult)

	result = true
	assert.False(t, *insp.ConditionResult)
}
