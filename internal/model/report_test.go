package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRGB_Hex(t *testing.T) {
	assert.Equal(t, "#ff0080", RGB{R: 255, G: 0, B: 128}.Hex())
}

func TestCityReport_Convergences(t *testing.T) {
	r := CityReport{Addresses: []AddressNode{
		{Address: "a", Count: 1},
		{Address: "b", Count: 2},
		{Address: "c", Count: 5},
	}}

	got := r.Convergences()
	assert.Len(t, got, 2)
	assert.Equal(t, "b", got[0].Address)
	assert.Equal(t, "c", got[1].Address)
	assert.Empty(t, CityReport{}.Convergences())
}

func TestSnapshot_AllOrder(t *testing.T) {
	s := Snapshot{
		Functions:  []Group{{Key: "f"}},
		Variables:  []Group{{Key: "v"}},
		ForLoops:   []Group{{Key: "l"}},
		WhileLoops: []Group{{Key: "w"}},
		Branches:   []Group{{Key: "b"}},
	}

	keys := make([]string, 0, s.Len())
	for _, g := range s.All() {
		keys = append(keys, g.Key)
	}

	assert.Equal(t, []string{"f", "v", "l", "w", "b"}, keys)
	assert.Equal(t, 5, s.Len())
}

func TestDefaultLayoutConfig(t *testing.T) {
	cfg := DefaultLayoutConfig()

	assert.Equal(t, DefaultMaxBubbleNodes, cfg.Bubble.MaxNodes)
	assert.Equal(t, DefaultDoubleClickWindow, cfg.Interaction.DoubleClickWindow)
	assert.Less(t, cfg.Spiral.HeightDecay, float32(1))
}
