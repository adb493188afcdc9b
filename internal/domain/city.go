package domain

import (
	"log/slog"
	"sort"
	"strconv"

	"cogentcore.org/core/math32"

	"github.com/mouse-blink/tracecity/internal/adapter"
	m "github.com/mouse-blink/tracecity/internal/model"
)

// Material kinds handed to the renderer.
const (
	buildingMaterial    = "building"
	addressMaterial     = "address"
	convergenceMaterial = "convergence"
	fountainMaterial    = "fountain"
	connectorMaterial   = "connector"
	causalityMaterial   = "causality"
	shellMaterial       = "shell"
	armMaterial         = "arm"
)

var (
	connectorColor = m.RGB{R: 200, G: 200, B: 200}
	causalityColor = m.RGB{R: 255, G: 170, B: 0}
	shellColor     = m.RGB{R: 120, G: 160, B: 255}
)

const (
	shellOpacity        = 0.12
	addressRadius       = 0.5
	convergenceRadius   = 0.8
	convergenceOpacity  = 1
	addressOpacity      = 0.85
	fountainOpacity     = 0.6
	connectorCurvePoint = 8
)

// ViewKindFor returns the nested view a group opens into.
func ViewKindFor(kind m.GroupKind) m.ViewKind {
	switch kind {
	case m.GroupFunction:
		return m.ViewGalaxy
	case m.GroupForLoop, m.GroupWhileLoop:
		return m.ViewBubble
	case m.GroupBranch:
		return m.ViewTree
	}

	return m.ViewNone
}

// Fountain links one variable building to its address node.
type Fountain struct {
	Key     string
	Address string
	Path    Bezier
}

type cityBuilding struct {
	building m.Building
	group    m.Group
}

// City lays a trace out as a spiral of buildings over a memory plane and
// serves as the Catalog of its ViewManager.
type City struct {
	trace    m.Trace
	cfg      m.LayoutConfig
	renderer adapter.Renderer
	colors   adapter.ColorFunc
	logger   *slog.Logger

	spiral    *SpiralLayout
	buildings []cityBuilding
	byKey     map[string]int
	addresses map[string]m.AddressNode
	fountains []Fountain
	droplets  []Droplet
	handles   []adapter.Handle
	built     bool
}

// NewCity prepares a city for trace. A trace without a snapshot gets one
// derived from its events.
func NewCity(trace m.Trace, renderer adapter.Renderer, colors adapter.ColorFunc, cfg m.LayoutConfig, logger *slog.Logger) *City {
	if logger == nil {
		logger = slog.Default()
	}

	if colors == nil {
		colors = adapter.NewHashColorFunc()
	}

	if trace.Snapshot == nil {
		snap := BuildSnapshot(trace.Events)
		trace.Snapshot = &snap
	}

	return &City{
		trace:    trace,
		cfg:      cfg,
		renderer: renderer,
		colors:   colors,
		logger:   logger,
		byKey:    make(map[string]int),
	}
}

// Build lays out and materializes the buildings and the memory layer.
// Building again first disposes the previous scene.
func (c *City) Build() {
	if c.built {
		c.Dispose()
	}

	c.layout()
	c.materialize()
	c.built = true

	c.logger.Info("city built",
		slog.Int("events", len(c.trace.Events)),
		slog.Int("buildings", len(c.buildings)),
		slog.Int("addresses", len(c.addresses)),
		slog.Int("fountains", len(c.fountains)))
}

// Dispose releases the top-level scene. Nested views belong to the
// ViewManager.
func (c *City) Dispose() {
	for _, h := range c.handles {
		c.renderer.Dispose(h)
	}

	c.handles = nil
	c.built = false
}

func (c *City) layout() {
	groups := c.trace.Snapshot.All()
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].FirstStep < groups[j].FirstStep
	})

	c.spiral = NewSpiralLayout(c.cfg.Spiral)
	c.buildings = c.buildings[:0]
	c.byKey = make(map[string]int, len(groups))

	slot := 0

	for _, g := range groups {
		if _, dup := c.byKey[g.Key]; dup {
			c.logger.Warn("duplicate group key skipped", slog.String("key", g.Key))
			continue
		}

		e := c.groupEntity(g)
		place := c.spiral.PositionAt(slot)

		b := m.Building{
			PlacedEntity: m.PlacedEntity{
				Entity:   e,
				Slot:     slot,
				Position: place.Position,
				Placed:   true,
			},
			Group:  g.Kind,
			View:   ViewKindFor(g.Kind),
			Height: c.buildingHeight(len(g.ChildStepIndices)),
			Color:  c.colors(e.ColorType, g.Key),
		}

		c.byKey[g.Key] = len(c.buildings)
		c.buildings = append(c.buildings, cityBuilding{building: b, group: g})
		slot++
	}

	c.layoutMemory()
}

// groupEntity is the entity a building stands for.
func (c *City) groupEntity(g m.Group) m.Entity {
	e := m.Entity{
		Label:       g.Label,
		Key:         g.Key,
		StepIndices: append([]int(nil), g.ChildStepIndices...),
	}

	if ev, ok := m.Lookup(c.trace.Events, g.FirstStep); ok {
		e.FirstStep = &ev
	}

	switch g.Kind {
	case m.GroupVariable:
		for _, v := range Consolidate(g.ChildStepIndices, c.trace.Events) {
			if v.Type != m.EntityVariable {
				continue
			}

			v.Key = g.Key
			if g.Label != "" {
				v.Label = g.Label
			}

			return v
		}

		e.Type = m.EntityVariable
		e.ColorType = string(m.EventDecl)
	case m.GroupFunction:
		e.Type = m.EntityCall
		e.ColorType = string(m.EventCall)
	case m.GroupForLoop, m.GroupWhileLoop:
		e.Type = m.EntityLoop
		e.ColorType = string(m.EventLoop)

		for _, idx := range g.ChildStepIndices {
			if ev, ok := m.Lookup(c.trace.Events, idx); ok && ev.Type == m.EventLoop {
				e.Iterations++
			}
		}
	case m.GroupBranch:
		e.Type = m.EntityBranch
		e.ColorType = string(m.EventBranch)
	default:
		e.Type = m.EntityType(g.Kind)
		e.ColorType = string(g.Kind)
	}

	return e
}

func (c *City) buildingHeight(steps int) float32 {
	h := c.cfg.Building.HeightBase + float32(steps)*c.cfg.Building.HeightPerStep
	if c.cfg.Building.MaxHeight > 0 {
		h = math32.Min(h, c.cfg.Building.MaxHeight)
	}

	return h
}

// planeY is the height of the address plane, below the lowest building.
func (c *City) planeY() float32 {
	if len(c.buildings) == 0 {
		return -c.cfg.Memory.PlaneDepth
	}

	low := c.buildings[0].building.Position.Y
	for _, b := range c.buildings[1:] {
		low = math32.Min(low, b.building.Position.Y)
	}

	return low - c.cfg.Memory.PlaneDepth
}

func (c *City) layoutMemory() {
	placed := make([]m.PlacedEntity, len(c.buildings))
	for i, b := range c.buildings {
		placed[i] = b.building.PlacedEntity
	}

	c.addresses = AddressPositions(placed, c.planeY(), c.colors)
	c.fountains = c.fountains[:0]
	c.droplets = c.droplets[:0]

	for _, b := range c.buildings {
		addr := b.building.Address()
		node, ok := c.addresses[addr]

		if b.building.Type != m.EntityVariable || !ok {
			continue
		}

		path := FountainPath(b.building.Position, node.Position, c.cfg.Memory.OutwardFactor)
		c.fountains = append(c.fountains, Fountain{Key: b.building.Key, Address: addr, Path: path})
		c.droplets = append(c.droplets, DropletsFor(b.building.Key, path, c.cfg.Memory.DropletsPerPath, c.cfg.Memory.DropletSpeed)...)
	}
}

func (c *City) materialize() {
	for _, b := range c.buildings {
		bd := b.building
		h := c.renderer.CreatePrimitive(adapter.ShapeBox, adapter.PrimitiveParams{
			Width:  c.cfg.Building.Width,
			Height: bd.Height,
			Depth:  c.cfg.Building.Width,
			Label:  bd.Label,
		})
		c.renderer.SetPosition(h, bd.Position.Add(math32.Vec3(0, bd.Height/2, 0)))
		c.renderer.SetMaterial(h, adapter.Material{Kind: buildingMaterial, Color: bd.Color, Opacity: 1})
		c.handles = append(c.handles, h)
	}

	for _, node := range SortedAddressNodes(c.addresses) {
		radius, kind, opacity := float32(addressRadius), addressMaterial, float32(addressOpacity)
		if node.Convergent() {
			radius, kind, opacity = convergenceRadius, convergenceMaterial, convergenceOpacity
		}

		h := c.renderer.CreatePrimitive(adapter.ShapeSphere, adapter.PrimitiveParams{Radius: radius, Label: node.Address})
		c.renderer.SetPosition(h, node.Position)
		c.renderer.SetMaterial(h, adapter.Material{Kind: kind, Color: node.Color, Opacity: opacity})
		c.handles = append(c.handles, h)
	}

	for _, f := range c.fountains {
		h := c.renderer.CreateCurve(f.Path.Sample(c.cfg.Memory.CurveSamples))
		c.renderer.SetMaterial(h, adapter.Material{
			Kind:    fountainMaterial,
			Color:   c.addresses[f.Address].Color,
			Opacity: fountainOpacity,
		})
		c.handles = append(c.handles, h)
	}
}

// Report summarizes the laid-out city.
func (c *City) Report(source m.Path) m.CityReport {
	return m.CityReport{
		Source:    source,
		Events:    len(c.trace.Events),
		Buildings: c.Buildings(),
		Addresses: SortedAddressNodes(c.addresses),
		Fountains: len(c.fountains),
	}
}

// Buildings returns the buildings in slot order.
func (c *City) Buildings() []m.Building {
	out := make([]m.Building, len(c.buildings))
	for i, b := range c.buildings {
		out[i] = b.building
	}

	return out
}

// AddressNodes returns the address layer ordered by address.
func (c *City) AddressNodes() []m.AddressNode {
	return SortedAddressNodes(c.addresses)
}

// Fountains returns the fountain paths in building order.
func (c *City) Fountains() []Fountain {
	return append([]Fountain(nil), c.fountains...)
}

// Droplets returns every droplet. A frame driver positions them with
// Droplet.Position.
func (c *City) Droplets() []Droplet {
	return append([]Droplet(nil), c.droplets...)
}

// Addressables implements Catalog.
func (c *City) Addressables() []m.Addressable {
	out := make([]m.Addressable, len(c.buildings))
	for i, b := range c.buildings {
		out[i] = buildingAddressable(b.building)
	}

	return out
}

// Resolve implements Catalog.
func (c *City) Resolve(key string) (m.Addressable, bool) {
	i, ok := c.byKey[key]
	if !ok {
		return m.Addressable{}, false
	}

	return buildingAddressable(c.buildings[i].building), true
}

// Inspect implements Catalog.
func (c *City) Inspect(key string) (m.Inspection, bool) {
	i, ok := c.byKey[key]
	if !ok {
		return m.Inspection{}, false
	}

	return m.InspectEntity(c.buildings[i].building.Entity), true
}

// BuildView implements Catalog.
func (c *City) BuildView(key string, kind m.ViewKind) (NestedView, bool) {
	i, ok := c.byKey[key]
	if !ok {
		return NestedView{}, false
	}

	b := c.buildings[i]

	switch kind {
	case m.ViewGalaxy:
		return c.buildGalaxy(b)
	case m.ViewBubble:
		return c.buildBubble(b)
	case m.ViewTree:
		return c.buildTree(b)
	}

	return NestedView{}, false
}

func (c *City) buildGalaxy(b cityBuilding) (NestedView, bool) {
	entities := Consolidate(b.group.ChildStepIndices, c.trace.Events, WithControlFlow())
	if len(entities) == 0 {
		return NestedView{}, false
	}

	galaxy := NewGalaxyLayout(b.building.Position, c.cfg.Galaxy)
	view := NestedView{
		Key:    b.group.Key,
		Kind:   m.ViewGalaxy,
		Center: galaxy.Origin(),
	}

	for slot, e := range entities {
		place := galaxy.PositionAt(slot)
		view.Radius = math32.Max(view.Radius, place.Radius)
		view.Children = append(view.Children, m.PlacedEntity{Entity: e, Slot: slot, Position: place.Position, Placed: true})
	}

	distinctKeys(view.Children)

	view.Handles = append(view.Handles, c.connector(b.building.Position, view.Center))
	view.Handles = append(view.Handles, c.placeEntities(view.Children, 1)...)

	return view, true
}

func (c *City) buildBubble(b cityBuilding) (NestedView, bool) {
	entities := Consolidate(b.group.ChildStepIndices, c.trace.Events)
	if len(entities) == 0 {
		return NestedView{}, false
	}

	layout := LayoutBubble(entities, b.building.Position, c.cfg.Bubble)
	view := NestedView{
		Key:      b.group.Key,
		Kind:     m.ViewBubble,
		Center:   layout.Center,
		Radius:   layout.Radius,
		Children: layout.Children,
	}

	distinctKeys(view.Children)

	shell := c.renderer.CreatePrimitive(adapter.ShapeSphere, adapter.PrimitiveParams{Radius: layout.Radius})
	c.renderer.SetPosition(shell, layout.Center)
	c.renderer.SetMaterial(shell, adapter.Material{Kind: shellMaterial, Color: shellColor, Opacity: shellOpacity})
	view.Handles = append(view.Handles, shell)

	view.Handles = append(view.Handles, c.connector(layout.Entry, layout.Children[0].Position))
	view.Handles = append(view.Handles, c.placeEntities(layout.Children, 1)...)

	for _, conn := range layout.Connections {
		view.Handles = append(view.Handles, c.connector(layout.Children[conn.From].Position, layout.Children[conn.To].Position))
	}

	for _, conn := range layout.Causality {
		h := c.renderer.CreateCurve([]math32.Vector3{
			layout.Children[conn.From].Position,
			layout.Children[conn.To].Position,
		})
		c.renderer.SetMaterial(h, adapter.Material{Kind: causalityMaterial, Color: causalityColor, Opacity: 0})
		view.Handles = append(view.Handles, h)
		view.Causality = append(view.Causality, h)
	}

	return view, true
}

func (c *City) buildTree(b cityBuilding) (NestedView, bool) {
	structure := ExtractBranchStructure(b.group.ChildStepIndices, c.trace.Events, b.group.Summary)
	if len(structure.Branches) == 0 {
		return NestedView{}, false
	}

	layout := LayoutTree(structure, b.building.Position, TreeLeaves(structure, c.trace.Events), c.cfg.Tree)
	view := NestedView{
		Key:    b.group.Key,
		Kind:   m.ViewTree,
		Center: layout.Root,
	}

	slot := 0

	for b, arm := range layout.Arms {
		view.Radius = math32.Max(view.Radius, arm.Position.Sub(layout.Root).Length())

		trunk := c.renderer.CreateCurve([]math32.Vector3{layout.Root, arm.Position})
		c.renderer.SetMaterial(trunk, adapter.Material{Kind: connectorMaterial, Color: connectorColor, Opacity: arm.Opacity})

		node := c.renderer.CreatePrimitive(adapter.ShapeCone, adapter.PrimitiveParams{Radius: 0.5, Height: 1, Label: arm.Branch.Label})
		c.renderer.SetPosition(node, arm.Position)
		c.renderer.SetMaterial(node, adapter.Material{
			Kind:    armMaterial,
			Color:   c.colors(armMaterial, arm.Branch.Label),
			Opacity: arm.Opacity,
		})

		view.Handles = append(view.Handles, trunk, node)

		leaves := make([]m.PlacedEntity, len(arm.Leaves))
		for i, leaf := range arm.Leaves {
			leaf.Key = armLeafKey(b, leaf.Key)
			leaf.Slot = slot
			slot++

			leaves[i] = leaf
			view.Radius = math32.Max(view.Radius, leaf.Position.Sub(layout.Root).Length())
		}

		view.Handles = append(view.Handles, c.placeEntities(leaves, arm.Opacity)...)
		view.Children = append(view.Children, leaves...)
	}

	return view, true
}

// armLeafKey scopes a leaf key to its arm. The same variable can hang off
// several arms of one tree.
func armLeafKey(arm int, key string) string {
	return "arm" + strconv.Itoa(arm) + "/" + key
}

// distinctKeys suffixes repeated child keys with the child's slot so every
// child of a view can be selected by key.
func distinctKeys(children []m.PlacedEntity) {
	seen := make(map[string]struct{}, len(children))

	for i := range children {
		key := children[i].Key
		if _, dup := seen[key]; dup {
			key += "@" + strconv.Itoa(children[i].Slot)
		}

		seen[key] = struct{}{}
		children[i].Key = key
	}
}

// placeEntities materializes one primitive per entity.
func (c *City) placeEntities(placed []m.PlacedEntity, opacity float32) []adapter.Handle {
	handles := make([]adapter.Handle, 0, len(placed))

	for _, p := range placed {
		g := ShapeFor(p.Type)

		params := g.Params
		params.Label = p.Label

		h := c.renderer.CreatePrimitive(g.Shape, params)
		c.renderer.SetPosition(h, p.Position)
		c.renderer.SetMaterial(h, adapter.Material{
			Kind:    string(p.Type),
			Color:   c.colors(p.ColorType, p.Key),
			Opacity: opacity,
		})
		handles = append(handles, h)
	}

	return handles
}

// connector draws a straight link between two points.
func (c *City) connector(from, to math32.Vector3) adapter.Handle {
	points := make([]math32.Vector3, connectorCurvePoint+1)
	for i := range points {
		t := float32(i) / connectorCurvePoint
		points[i] = from.Add(to.Sub(from).MulScalar(t))
	}

	h := c.renderer.CreateCurve(points)
	c.renderer.SetMaterial(h, adapter.Material{Kind: connectorMaterial, Color: connectorColor, Opacity: 1})

	return h
}

func buildingAddressable(b m.Building) m.Addressable {
	line, _ := b.Line()

	return m.Addressable{
		Key:      b.Key,
		Label:    b.Label,
		Type:     b.Type,
		View:     b.View,
		Slot:     b.Slot,
		Position: b.Position,
		Line:     line,
	}
}
