package adapter

import (
	"sort"

	"cogentcore.org/core/math32"
)

// SceneNode is one live primitive or curve held by a SceneRenderer.
type SceneNode struct {
	Handle   Handle           `yaml:"handle"`
	Shape    Shape            `yaml:"shape"`
	Params   PrimitiveParams  `yaml:"params,omitempty"`
	Position math32.Vector3   `yaml:"position"`
	Material Material         `yaml:"material"`
	Points   []math32.Vector3 `yaml:"points,omitempty"`
}

// SceneRenderer is an in-memory Renderer. It backs the CLI and the
// explorer, and lets tests check that every handle is released.
type SceneRenderer struct {
	next  Handle
	nodes map[Handle]*SceneNode
}

// NewSceneRenderer creates an empty scene.
func NewSceneRenderer() *SceneRenderer {
	return &SceneRenderer{nodes: make(map[Handle]*SceneNode)}
}

// CreatePrimitive adds a primitive at the origin.
func (r *SceneRenderer) CreatePrimitive(shape Shape, params PrimitiveParams) Handle {
	r.next++
	r.nodes[r.next] = &SceneNode{
		Handle:   r.next,
		Shape:    shape,
		Params:   params,
		Material: Material{Opacity: 1},
	}

	return r.next
}

// CreateCurve adds a polyline through points.
func (r *SceneRenderer) CreateCurve(points []math32.Vector3) Handle {
	r.next++
	r.nodes[r.next] = &SceneNode{
		Handle:   r.next,
		Shape:    ShapeCurve,
		Points:   append([]math32.Vector3(nil), points...),
		Material: Material{Opacity: 1},
	}

	return r.next
}

// SetPosition moves a live node. Unknown handles are ignored.
func (r *SceneRenderer) SetPosition(h Handle, pos math32.Vector3) {
	if n, ok := r.nodes[h]; ok {
		n.Position = pos
	}
}

// SetMaterial restyles a live node. Unknown handles are ignored.
func (r *SceneRenderer) SetMaterial(h Handle, material Material) {
	if n, ok := r.nodes[h]; ok {
		n.Material = material
	}
}

// Dispose releases a node. Disposing twice is a no-op.
func (r *SceneRenderer) Dispose(h Handle) {
	delete(r.nodes, h)
}

// Node returns a copy of the live node h.
func (r *SceneRenderer) Node(h Handle) (SceneNode, bool) {
	n, ok := r.nodes[h]
	if !ok {
		return SceneNode{}, false
	}

	return *n, true
}

// Live returns the number of undisposed nodes.
func (r *SceneRenderer) Live() int {
	return len(r.nodes)
}

// Nodes returns copies of every live node in creation order.
func (r *SceneRenderer) Nodes() []SceneNode {
	nodes := make([]SceneNode, 0, len(r.nodes))
	for _, n := range r.nodes {
		nodes = append(nodes, *n)
	}

	sort.Slice(nodes, func(i, j int) bool {
		return nodes[i].Handle < nodes[j].Handle
	})

	return nodes
}
