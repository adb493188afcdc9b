package domain

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"

	m "github.com/mouse-blink/tracecity/internal/model"
)

func TestSpiral_NearConstantSpacing(t *testing.T) {
	cfg := m.SpiralConfig{RadiusStart: 10, RadiusGrowth: 0.35, AngleStep: 0.5}
	s := NewSpiralLayout(cfg)
	want := cfg.RadiusStart * cfg.AngleStep

	prev := s.PositionAt(0).Position
	for i := 1; i < 300; i++ {
		cur := s.PositionAt(i).Position
		d := cur.Sub(prev).Length()
		assert.InEpsilon(t, want, d, 0.05, "slot %d", i)
		prev = cur
	}
}

func TestSpiral_DefaultConfigSpacing(t *testing.T) {
	cfg := m.DefaultLayoutConfig().Spiral
	s := NewSpiralLayout(cfg)
	want := cfg.RadiusStart * cfg.AngleStep

	for i := 1; i < 100; i++ {
		d := s.PositionAt(i).Position.Sub(s.PositionAt(i - 1).Position).Length()
		assert.InEpsilon(t, want, d, 0.05, "slot %d", i)
	}
}

func TestSpiral_SlotZero(t *testing.T) {
	s := NewSpiralLayout(m.SpiralConfig{RadiusStart: 10, RadiusGrowth: 1, AngleStep: 0.5, HeightStep: 2, HeightDecay: 1})

	p := s.PositionAt(0)
	assert.Equal(t, math32.Vec3(10, 0, 0), p.Position)
	assert.Equal(t, float32(0), p.Angle)
	assert.Equal(t, float32(10), p.Radius)

	assert.Equal(t, s.PositionAt(0), s.PositionAt(-3))
}

func TestSpiral_HeightLinearAndDecaying(t *testing.T) {
	linear := NewSpiralLayout(m.SpiralConfig{HeightStep: 2, HeightDecay: 1})
	assert.Equal(t, float32(0), linear.Height(0))
	assert.Equal(t, float32(6), linear.Height(3))

	decaying := NewSpiralLayout(m.SpiralConfig{HeightStep: 1, HeightDecay: 0.5})
	assert.InDelta(t, 1, decaying.Height(1), 1e-6)
	assert.InDelta(t, 1.5, decaying.Height(2), 1e-6)
	assert.LessOrEqual(t, decaying.Height(50), float32(2))

	flat := NewSpiralLayout(m.SpiralConfig{HeightStep: 1, HeightDecay: 0})
	assert.InDelta(t, 1, flat.Height(1), 1e-6)
	assert.InDelta(t, 1, flat.Height(5), 1e-6)

	negative := NewSpiralLayout(m.SpiralConfig{HeightStep: 1, HeightDecay: -0.5})
	assert.Equal(t, flat.Height(5), negative.Height(5))
}

func TestSpiral_NextAppends(t *testing.T) {
	s := NewSpiralLayout(m.DefaultLayoutConfig().Spiral)

	first := s.Next()
	second := s.Next()

	assert.Equal(t, s.PositionAt(0), first)
	assert.Equal(t, s.PositionAt(1), second)
	assert.Equal(t, 2, s.Len())

	s.PositionAt(9)
	assert.Equal(t, 10, s.Len())
}

func TestSpiral_AnglesIncrease(t *testing.T) {
	s := NewSpiralLayout(m.DefaultLayoutConfig().Spiral)

	prev := s.PositionAt(0).Angle
	for i := 1; i < 50; i++ {
		a := s.PositionAt(i).Angle
		assert.Greater(t, a, prev)
		assert.Less(t, s.AngleIncrement(i), s.AngleIncrement(i-1)+1e-6)
		prev = a
	}
}

func TestGalaxyLayout_OffsetFromParent(t *testing.T) {
	cfg := m.DefaultLayoutConfig().Galaxy

	g := NewGalaxyLayout(math32.Vec3(10, 2, 0), cfg)
	assert.Equal(t, math32.Vec3(10+cfg.Offset, 2, 0), g.Origin())

	g = NewGalaxyLayout(math32.Vec3(0, 0, -4), cfg)
	assert.InDelta(t, -4-cfg.Offset, g.Origin().Z, 1e-5)

	onAxis := NewGalaxyLayout(math32.Vec3(0, 1, 0), cfg)
	assert.Equal(t, math32.Vec3(cfg.Offset, 1, 0), onAxis.Origin())

	first := g.PositionAt(0).Position
	assert.InDelta(t, cfg.RadiusStart, first.Sub(g.Origin()).Length(), 1e-4)
}
