package domain

import (
	"cogentcore.org/core/math32"

	m "github.com/mouse-blink/tracecity/internal/model"
)

// Placement is a spiral slot position together with its polar coordinates.
type Placement struct {
	Position math32.Vector3
	Angle    float32
	Radius   float32
}

// SpiralLayout maps slots to positions on an equal-arc-length spiral.
// Cumulative angles are cached, so appending a slot costs O(1).
type SpiralLayout struct {
	cfg    m.SpiralConfig
	origin math32.Vector3
	angles []float32
}

// NewSpiralLayout returns a spiral centered on the world origin.
func NewSpiralLayout(cfg m.SpiralConfig) *SpiralLayout {
	return &SpiralLayout{cfg: cfg}
}

// NewGalaxyLayout returns a nested spiral for the building at parent. The
// galaxy center is pushed outward from the city axis by cfg.Offset along
// the parent's ground direction.
func NewGalaxyLayout(parent math32.Vector3, cfg m.GalaxyConfig) *SpiralLayout {
	dir := groundDirection(parent)

	return &SpiralLayout{
		cfg: cfg.SpiralConfig,
		origin: math32.Vec3(
			parent.X+dir.X*cfg.Offset,
			parent.Y,
			parent.Z+dir.Y*cfg.Offset,
		),
	}
}

// Origin returns the spiral center.
func (s *SpiralLayout) Origin() math32.Vector3 {
	return s.origin
}

// AngleIncrement returns the angular step taken to reach slot i.
func (s *SpiralLayout) AngleIncrement(i int) float32 {
	r := s.radius(i)
	if r <= 0 {
		return s.cfg.AngleStep
	}

	return s.cfg.RadiusStart * s.cfg.AngleStep / r
}

// Height returns the vertical offset of slot i.
func (s *SpiralLayout) Height(i int) float32 {
	if i <= 0 {
		return 0
	}

	decay := s.cfg.HeightDecay
	if decay >= 1 {
		return float32(i) * s.cfg.HeightStep
	}

	decay = math32.Max(decay, 0)

	return s.cfg.HeightStep * (1 - math32.Pow(decay, float32(i))) / (1 - decay)
}

// PositionAt returns the placement of slot. Negative slots clamp to 0.
func (s *SpiralLayout) PositionAt(slot int) Placement {
	if slot < 0 {
		slot = 0
	}

	s.extend(slot)

	angle := s.angles[slot]
	r := s.radius(slot)

	return Placement{
		Position: math32.Vec3(
			s.origin.X+r*math32.Cos(angle),
			s.origin.Y+s.Height(slot),
			s.origin.Z+r*math32.Sin(angle),
		),
		Angle:  angle,
		Radius: r,
	}
}

// Next returns the placement of the slot after the last computed one.
func (s *SpiralLayout) Next() Placement {
	return s.PositionAt(len(s.angles))
}

// Len returns how many slots have been computed.
func (s *SpiralLayout) Len() int {
	return len(s.angles)
}

func (s *SpiralLayout) radius(i int) float32 {
	return s.cfg.RadiusStart + float32(i)*s.cfg.RadiusGrowth
}

func (s *SpiralLayout) extend(slot int) {
	if len(s.angles) == 0 {
		s.angles = append(s.angles, 0)
	}

	for i := len(s.angles); i <= slot; i++ {
		s.angles = append(s.angles, s.angles[i-1]+s.AngleIncrement(i))
	}
}

// groundDirection returns the unit (x, z) direction of p from the vertical
// axis, or (1, 0) when p sits on the axis.
func groundDirection(p math32.Vector3) math32.Vector2 {
	l := math32.Sqrt(p.X*p.X + p.Z*p.Z)
	if l < 1e-6 {
		return math32.Vec2(1, 0)
	}

	return math32.Vec2(p.X/l, p.Z/l)
}
