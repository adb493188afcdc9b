// Package adapter provides the boundaries between the trace city and the
// outside world: rendering, colors, trace files and scene export.
package adapter

import (
	"cogentcore.org/core/math32"

	m "github.com/mouse-blink/tracecity/internal/model"
)

// Handle is an opaque renderer resource.
type Handle uint64

// Shape is a primitive geometry kind.
type Shape string

// Supported primitive shapes.
const (
	ShapeBox      Shape = "box"
	ShapeCylinder Shape = "cylinder"
	ShapeSphere   Shape = "sphere"
	ShapeTorus    Shape = "torus"
	ShapeCone     Shape = "cone"
	ShapeCurve    Shape = "curve"
)

// PrimitiveParams sizes a primitive. Unused fields are zero.
type PrimitiveParams struct {
	Width  float32 `yaml:"width,omitempty"`
	Height float32 `yaml:"height,omitempty"`
	Depth  float32 `yaml:"depth,omitempty"`
	Radius float32 `yaml:"radius,omitempty"`
	Tube   float32 `yaml:"tube,omitempty"`
	Label  string  `yaml:"label,omitempty"`
}

// Material describes how a primitive is drawn.
type Material struct {
	Kind    string  `yaml:"kind"`
	Color   m.RGB   `yaml:"color"`
	Opacity float32 `yaml:"opacity"`
}

// Renderer is the capability the city needs from a 3D engine. The city
// only places opaque handles; it never depends on a graphics API.
type Renderer interface {
	CreatePrimitive(shape Shape, params PrimitiveParams) Handle
	SetPosition(h Handle, pos math32.Vector3)
	SetMaterial(h Handle, material Material)
	CreateCurve(points []math32.Vector3) Handle
	Dispose(h Handle)
}

// ColorFunc maps a category and key to a color. It must be pure: the same
// inputs always yield the same color.
type ColorFunc func(category, key string) m.RGB
