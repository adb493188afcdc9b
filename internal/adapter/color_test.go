package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashColorFunc_Deterministic(t *testing.T) {
	colors := NewHashColorFunc()

	assert.Equal(t, colors("variable", "x|0x1"), colors("variable", "x|0x1"))
	assert.Equal(t, colors("variable", "x|0x1"), NewHashColorFunc()("variable", "x|0x1"))
}

func TestHashColorFunc_SeparatesCategoryAndKey(t *testing.T) {
	colors := NewHashColorFunc()

	assert.NotEqual(t, colors("ab", "c"), colors("a", "bc"))
}

func TestHashColorFunc_Bright(t *testing.T) {
	colors := NewHashColorFunc()

	for _, key := range []string{"a", "b", "c", "main", "0x7ffd", "loop:for|i<10"} {
		c := colors("address", key)
		brightest := max(c.R, c.G, c.B)
		assert.GreaterOrEqual(t, brightest, uint8(180), "key %s", key)
	}
}
