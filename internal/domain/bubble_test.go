package domain

import (
	"fmt"
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/tracecity/internal/model"
)

func TestBubblePosition_StaysInside(t *testing.T) {
	center := math32.Vec3(3, 7, -2)

	for _, total := range []int{1, 2, 5, 17, 50} {
		radius := BubbleRadius(total, m.DefaultLayoutConfig().Bubble)

		for slot := 0; slot < total; slot++ {
			p := BubblePosition(slot, total, center, radius)
			assert.LessOrEqual(t, p.Sub(center).Length(), radius, "slot %d of %d", slot, total)
		}
	}
}

func TestBubblePosition_DistinctSlots(t *testing.T) {
	center := math32.Vec3(0, 0, 0)
	seen := make(map[math32.Vector3]int)

	for slot := 0; slot < 20; slot++ {
		p := BubblePosition(slot, 20, center, 5)
		if prev, dup := seen[p]; dup {
			t.Fatalf("slots %d and %d share position %v", prev, slot, p)
		}

		seen[p] = slot
	}
}

func TestBubbleRadius_Grows(t *testing.T) {
	cfg := m.BubbleConfig{RadiusBase: 3, RadiusPerNode: 0.5}

	assert.Equal(t, float32(3), BubbleRadius(0, cfg))
	assert.Equal(t, float32(3), BubbleRadius(-2, cfg))
	assert.Equal(t, float32(8), BubbleRadius(10, cfg))
}

func manyEntities(n int) []m.Entity {
	entities := make([]m.Entity, n)
	for i := range entities {
		entities[i] = m.Entity{Type: m.EntityCall, Key: fmt.Sprintf("call#%d", i), Label: "f"}
	}

	return entities
}

func TestCapEntities_Summary(t *testing.T) {
	capped := CapEntities(manyEntities(120), 50)

	require.Len(t, capped, 50)

	last := capped[49]
	assert.Equal(t, m.EntitySummary, last.Type)
	assert.Equal(t, 70, last.Elided)
	assert.Contains(t, last.Label, "70")
	assert.Equal(t, "call#48", capped[48].Key)
}

func TestCapEntities_UnderCap(t *testing.T) {
	entities := manyEntities(50)

	assert.Equal(t, entities, CapEntities(entities, 50))
	assert.Len(t, CapEntities(manyEntities(m.DefaultMaxBubbleNodes+1), 0), m.DefaultMaxBubbleNodes)
}

func TestSequentialConnections(t *testing.T) {
	assert.Nil(t, SequentialConnections(1))
	assert.Equal(t, []Connection{{0, 1}, {1, 2}}, SequentialConnections(3))
}

func TestCausalityChains(t *testing.T) {
	entities := []m.Entity{
		{Type: m.EntityLoop, Label: "for"},
		{Type: m.EntityVariable, Label: "t"},
		{Type: m.EntityVariable, Label: "x"},
		{Type: m.EntityVariable, Label: "t"},
		{Type: m.EntityCall, Label: "t"},
		{Type: m.EntityVariable, Label: "t"},
	}

	assert.Equal(t, []Connection{{From: 1, To: 3}, {From: 3, To: 5}}, CausalityChains(entities))
}

func TestLayoutBubble(t *testing.T) {
	cfg := m.DefaultLayoutConfig().Bubble
	parent := math32.Vec3(10, -1, 0)

	layout := LayoutBubble(manyEntities(4), parent, cfg)

	assert.Equal(t, BubbleRadius(4, cfg), layout.Radius)
	assert.Equal(t, math32.Vec3(10, -1+cfg.Lift+layout.Radius, 0), layout.Center)
	assert.Equal(t, math32.Vec3(10, -1+cfg.EntryLift, 0), layout.Entry)
	require.Len(t, layout.Children, 4)
	assert.Len(t, layout.Connections, 3)

	for i, c := range layout.Children {
		assert.Equal(t, i, c.Slot)
		assert.True(t, c.Placed)
		assert.LessOrEqual(t, c.Position.Sub(layout.Center).Length(), layout.Radius)
	}

	assert.Greater(t, layout.Children[0].Position.Y-layout.Radius, parent.Y)
}

func TestLayoutBubble_CapsNodes(t *testing.T) {
	cfg := m.DefaultLayoutConfig().Bubble
	cfg.MaxNodes = 5

	layout := LayoutBubble(manyEntities(9), math32.Vec3(0, 0, 0), cfg)
	require.Len(t, layout.Children, 5)
	assert.Equal(t, m.EntitySummary, layout.Children[4].Type)
	assert.Equal(t, 4, layout.Children[4].Elided)
}
