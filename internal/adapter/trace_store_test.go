package adapter

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/tracecity/internal/model"
)

func writeFile(t *testing.T, dir, name, content string) m.Path {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return m.Path(path)
}

const yamlListTrace = `
- index: 0
  type: CALL
  name: main
  line: 1
- index: 1
  type: DECL
  var: x
  value: 3
  address: "0x10"
- index: 2
  type: RETURN
  name: main
`

const jsonObjectTrace = `{
  "events": [
    {"index": 0, "type": "DECL", "var": "x", "value": 1, "address": "0x10"},
    {"index": 1, "type": "ASSIGN", "var": "x", "value": "two", "address": "0x10"}
  ],
  "snapshot": {
    "variables": [
      {"key": "variable:x|0x10", "kind": "variable", "label": "x", "firstStep": 0, "childStepIndices": [0, 1]}
    ]
  }
}`

func TestLocalTraceStore_LoadYAMLList(t *testing.T) {
	path := writeFile(t, t.TempDir(), "trace.yaml", yamlListTrace)

	trace, err := NewLocalTraceStore(nil).Load(path)
	require.NoError(t, err)

	require.Len(t, trace.Events, 3)
	assert.Nil(t, trace.Snapshot)
	assert.Equal(t, m.EventDecl, trace.Events[1].Type)
	assert.Equal(t, m.Scalar("3"), trace.Events[1].Value)
	assert.Equal(t, "0x10", trace.Events[1].Address)
}

func TestLocalTraceStore_LoadJSONObject(t *testing.T) {
	path := writeFile(t, t.TempDir(), "trace.json", jsonObjectTrace)

	trace, err := NewLocalTraceStore(nil).Load(path)
	require.NoError(t, err)

	require.Len(t, trace.Events, 2)
	assert.Equal(t, m.Scalar("1"), trace.Events[0].Value)
	assert.Equal(t, m.Scalar("two"), trace.Events[1].Value)

	require.NotNil(t, trace.Snapshot)
	require.Len(t, trace.Snapshot.Variables, 1)
	assert.Equal(t, []int{0, 1}, trace.Snapshot.Variables[0].ChildStepIndices)
}

func TestLocalTraceStore_LoadJSONList(t *testing.T) {
	path := writeFile(t, t.TempDir(), "trace.json", `[{"index":0,"type":"CALL","name":"f"}]`)

	trace, err := NewLocalTraceStore(nil).Load(path)
	require.NoError(t, err)
	require.Len(t, trace.Events, 1)
	assert.Equal(t, "f", trace.Events[0].Name)
}

func TestLocalTraceStore_Reindexes(t *testing.T) {
	path := writeFile(t, t.TempDir(), "trace.yml", `
- {index: 5, type: CALL, name: f}
- {index: 9, type: RETURN, name: f}
`)

	trace, err := NewLocalTraceStore(nil).Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0, trace.Events[0].Index)
	assert.Equal(t, 1, trace.Events[1].Index)
}

func TestLocalTraceStore_LoadErrors(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalTraceStore(nil)

	_, err := store.Load(writeFile(t, dir, "trace.txt", "[]"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = store.Load(m.Path(filepath.Join(dir, "missing.yaml")))
	assert.Error(t, err)

	_, err = store.Load(writeFile(t, dir, "bad.json", "{"))
	assert.Error(t, err)

	_, err = store.Load(writeFile(t, dir, "scalar.yaml", "just text"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLocalTraceStore_LoadEmpty(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalTraceStore(nil)

	trace, err := store.Load(writeFile(t, dir, "empty.yaml", ""))
	require.NoError(t, err)
	assert.Empty(t, trace.Events)

	trace, err = store.Load(writeFile(t, dir, "empty.json", "  "))
	require.NoError(t, err)
	assert.Empty(t, trace.Events)
}

func TestLocalTraceStore_LoadAllKeepsOrder(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.yaml", yamlListTrace)
	b := writeFile(t, dir, "b.json", jsonObjectTrace)

	traces, err := NewLocalTraceStore(nil).LoadAll(context.Background(), a, b)
	require.NoError(t, err)
	require.Len(t, traces, 2)
	assert.Len(t, traces[0].Events, 3)
	assert.Len(t, traces[1].Events, 2)
}

func TestLocalTraceStore_LoadAllFails(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.yaml", yamlListTrace)

	_, err := NewLocalTraceStore(nil).LoadAll(context.Background(), a, m.Path(filepath.Join(dir, "nope.yaml")))
	assert.Error(t, err)
}

func TestLocalTraceStore_LoadConfigOverlays(t *testing.T) {
	path := writeFile(t, t.TempDir(), "layout.yaml", `
spiral:
  radiusStart: 20
bubble:
  maxNodes: 8
interaction:
  doubleClickWindow: 500ms
`)

	base := m.DefaultLayoutConfig()

	cfg, err := NewLocalTraceStore(nil).LoadConfig(path, base)
	require.NoError(t, err)

	assert.Equal(t, float32(20), cfg.Spiral.RadiusStart)
	assert.Equal(t, base.Spiral.AngleStep, cfg.Spiral.AngleStep)
	assert.Equal(t, 8, cfg.Bubble.MaxNodes)
	assert.Equal(t, 500*time.Millisecond, cfg.Interaction.DoubleClickWindow)
	assert.Equal(t, base.Tree, cfg.Tree)
}

func TestLocalTraceStore_LoadConfigRejectsJSON(t *testing.T) {
	path := writeFile(t, t.TempDir(), "layout.json", "{}")

	_, err := NewLocalTraceStore(nil).LoadConfig(path, m.DefaultLayoutConfig())
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}

func TestLocalTraceStore_HashFile(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalTraceStore(nil)

	a, err := store.HashFile(writeFile(t, dir, "a.yaml", "same"))
	require.NoError(t, err)

	b, err := store.HashFile(writeFile(t, dir, "b.yaml", "same"))
	require.NoError(t, err)

	c, err := store.HashFile(writeFile(t, dir, "c.yaml", "other"))
	require.NoError(t, err)

	assert.Len(t, a, 64)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)

	_, err = store.HashFile(m.Path(filepath.Join(dir, "missing")))
	assert.Error(t, err)
}

func TestDecodeTrace_UnknownFormat(t *testing.T) {
	_, err := DecodeTrace([]byte("[]"), Format("toml"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
