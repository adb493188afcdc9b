package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExploreSession(t *testing.T) {
	city, scene := newSampleCity()
	views := NewViewManager(city, scene, WithViewLogger(discardLogger()))
	s := newExploreSession("traces/sum.yaml", city, views)

	assert.Equal(t, "sum.yaml", s.Title())
	assert.Len(t, s.Addressables(), 7)

	_, ok := s.OpenView()
	assert.False(t, ok)

	assert.Equal(t, mainKey, s.Navigate(1))
	assert.Equal(t, mainKey, s.Selected())

	insp, ok := s.Inspection()
	require.True(t, ok)
	assert.Equal(t, 1, insp.Line)

	views.RequestOpen(branchKey, "")

	view, ok := s.OpenView()
	require.True(t, ok)
	assert.Equal(t, branchKey, view.Key)
	assert.Len(t, s.Addressables(), 1)
	assert.False(t, s.ToggleCausality())

	s.CloseView()
	_, ok = s.OpenView()
	assert.False(t, ok)

	s.Activate(xKey)
	assert.Equal(t, xKey, s.Selected())

	s.Close()
	assert.Zero(t, scene.Live())

	s.Close()
	assert.Zero(t, scene.Live())
}
