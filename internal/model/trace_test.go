package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalar_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Scalar
	}{
		{name: "string", in: `"abc"`, want: "abc"},
		{name: "escaped string", in: `"a\"b"`, want: `a"b`},
		{name: "integer", in: `42`, want: "42"},
		{name: "float", in: `-1.5`, want: "-1.5"},
		{name: "bool", in: `true`, want: "true"},
		{name: "null", in: `null`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Scalar
			require.NoError(t, json.Unmarshal([]byte(tt.in), &s))
			assert.Equal(t, tt.want, s)
		})
	}
}

func TestTraceEvent_DecodesNumericValue(t *testing.T) {
	var ev TraceEvent
	require.NoError(t, json.Unmarshal([]byte(`{"index":3,"type":"ASSIGN","var":"x","value":7,"address":"0x1"}`), &ev))

	assert.Equal(t, 3, ev.Index)
	assert.Equal(t, EventAssign, ev.Type)
	assert.Equal(t, Scalar("7"), ev.Value)
}

func TestTraceEvent_VariableName(t *testing.T) {
	assert.Equal(t, "v", TraceEvent{Var: "v", Name: "n", Subject: "s"}.VariableName())
	assert.Equal(t, "n", TraceEvent{Name: "n", Subject: "s"}.VariableName())
	assert.Equal(t, "s", TraceEvent{Subject: "s"}.VariableName())
}

func TestTraceEvent_DisplayName(t *testing.T) {
	tests := []struct {
		name string
		ev   TraceEvent
		want string
	}{
		{name: "variable", ev: TraceEvent{Type: EventDecl, Var: "x"}, want: "x"},
		{name: "loop with condition", ev: TraceEvent{Type: EventLoop, Subtype: "for", Condition: "i < 3"}, want: "for (i < 3)"},
		{name: "loop without condition", ev: TraceEvent{Type: EventLoop, Subtype: "while"}, want: "while"},
		{name: "condition", ev: TraceEvent{Type: EventCondition, Condition: "x > 0"}, want: "x > 0"},
		{name: "branch label", ev: TraceEvent{Type: EventBranch, Branch: "else", Condition: "x > 0"}, want: "else"},
		{name: "branch falls back to condition", ev: TraceEvent{Type: EventBranch, Condition: "x > 0"}, want: "x > 0"},
		{name: "call", ev: TraceEvent{Type: EventCall, Name: "main"}, want: "main"},
		{name: "subject", ev: TraceEvent{Type: EventReturn, Subject: "sum"}, want: "sum"},
		{name: "bare", ev: TraceEvent{Type: EventReturn}, want: "RETURN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.ev.DisplayName())
		})
	}
}

func TestLookup(t *testing.T) {
	trace := []TraceEvent{{Index: 0}, {Index: 1}}

	ev, ok := Lookup(trace, 1)
	assert.True(t, ok)
	assert.Equal(t, 1, ev.Index)

	_, ok = Lookup(trace, 2)
	assert.False(t, ok)

	_, ok = Lookup(trace, -1)
	assert.False(t, ok)
}

func TestIsControlFlow(t *testing.T) {
	assert.True(t, TraceEvent{Type: EventCondition}.IsControlFlow())
	assert.True(t, TraceEvent{Type: EventBranch}.IsControlFlow())
	assert.False(t, TraceEvent{Type: EventLoop}.IsControlFlow())
}
