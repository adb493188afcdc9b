package domain

import (
	"github.com/mouse-blink/tracecity/internal/adapter"
	m "github.com/mouse-blink/tracecity/internal/model"
)

// GeometryDescriptor is the primitive drawn for one entity category.
type GeometryDescriptor struct {
	Shape  adapter.Shape
	Params adapter.PrimitiveParams
}

var shapeTable = map[m.EntityType]GeometryDescriptor{
	m.EntityVariable:  {Shape: adapter.ShapeBox, Params: adapter.PrimitiveParams{Width: 0.8, Height: 0.8, Depth: 0.8}},
	m.EntityLoop:      {Shape: adapter.ShapeTorus, Params: adapter.PrimitiveParams{Radius: 0.6, Tube: 0.18}},
	m.EntityCall:      {Shape: adapter.ShapeCylinder, Params: adapter.PrimitiveParams{Radius: 0.4, Height: 1}},
	m.EntityReturn:    {Shape: adapter.ShapeCylinder, Params: adapter.PrimitiveParams{Radius: 0.4, Height: 0.5}},
	m.EntityCondition: {Shape: adapter.ShapeCone, Params: adapter.PrimitiveParams{Radius: 0.5, Height: 1}},
	m.EntityBranch:    {Shape: adapter.ShapeCone, Params: adapter.PrimitiveParams{Radius: 0.4, Height: 0.7}},
	m.EntitySummary:   {Shape: adapter.ShapeSphere, Params: adapter.PrimitiveParams{Radius: 0.7}},
}

var defaultShape = GeometryDescriptor{
	Shape:  adapter.ShapeBox,
	Params: adapter.PrimitiveParams{Width: 0.6, Height: 0.6, Depth: 0.6},
}

// ShapeFor returns the geometry of an entity category. Unknown categories
// get a small box.
func ShapeFor(t m.EntityType) GeometryDescriptor {
	if g, ok := shapeTable[t]; ok {
		return g
	}

	return defaultShape
}
