package domain

import (
	"cogentcore.org/core/math32"

	m "github.com/mouse-blink/tracecity/internal/model"
)

// Connection links two slots of the same container.
type Connection struct {
	From int
	To   int
}

// BubbleLayout is the laid-out content of one bubble.
type BubbleLayout struct {
	Center      math32.Vector3
	Radius      float32
	Entry       math32.Vector3
	Children    []m.PlacedEntity
	Connections []Connection
	// Causality links successive occurrences of the same variable. Hidden
	// until toggled.
	Causality []Connection
}

// BubbleRadius grows with the node count so a bubble never clips its content.
func BubbleRadius(count int, cfg m.BubbleConfig) float32 {
	if count < 0 {
		count = 0
	}

	return cfg.RadiusBase + float32(count)*cfg.RadiusPerNode
}

// BubblePosition places slot of total on a one-and-a-half turn curve inside
// the sphere (center, radius). The radial distance breathes so the path
// does not overlap itself, and the height is centered on the sphere.
func BubblePosition(slot, total int, center math32.Vector3, radius float32) math32.Vector3 {
	denom := total - 1
	if denom < 1 {
		denom = 1
	}

	t := float32(slot) / float32(denom)
	t = math32.Max(0, math32.Min(1, t))

	azimuth := t * 2 * math32.Pi * 1.5
	radial := 0.5 * radius * (0.5 + 0.3*math32.Sin(2*math32.Pi*t))
	vertical := 0.6 * radius * (math32.Sin(math32.Pi*t) - 0.5)

	return math32.Vec3(
		center.X+radial*math32.Cos(azimuth),
		center.Y+vertical,
		center.Z+radial*math32.Sin(azimuth),
	)
}

// CapEntities bounds a bubble to maxNodes entities. Past the cap it keeps
// the first maxNodes-1 entities and appends a summary entity carrying the
// remainder count. A non-positive maxNodes uses the default cap.
func CapEntities(entities []m.Entity, maxNodes int) []m.Entity {
	if maxNodes <= 0 {
		maxNodes = m.DefaultMaxBubbleNodes
	}

	if len(entities) <= maxNodes {
		return entities
	}

	elided := len(entities) - maxNodes

	capped := make([]m.Entity, 0, maxNodes)
	capped = append(capped, entities[:maxNodes-1]...)
	capped = append(capped, m.Entity{
		Type:      m.EntitySummary,
		ColorType: "SUMMARY",
		Label:     m.SummaryLabel(elided),
		Key:       m.EventKey(m.EntitySummary, len(entities)),
		Elided:    elided,
	})

	return capped
}

// SequentialConnections links every slot to the next one.
func SequentialConnections(count int) []Connection {
	if count < 2 {
		return nil
	}

	conns := make([]Connection, 0, count-1)
	for i := 0; i+1 < count; i++ {
		conns = append(conns, Connection{From: i, To: i + 1})
	}

	return conns
}

// CausalityChains links successive variable entities sharing a name, in
// slot order. Merged variables differ by address here, e.g. a loop-body
// local re-declared on every iteration.
func CausalityChains(entities []m.Entity) []Connection {
	last := make(map[string]int)

	var conns []Connection

	for slot, e := range entities {
		if e.Type != m.EntityVariable {
			continue
		}

		if prev, ok := last[e.Label]; ok {
			conns = append(conns, Connection{From: prev, To: slot})
		}

		last[e.Label] = slot
	}

	return conns
}

// EntryAnchor is the parent-side end of the connector into a nested view.
func EntryAnchor(parent math32.Vector3, lift float32) math32.Vector3 {
	return parent.Add(math32.Vec3(0, lift, 0))
}

// LayoutBubble caps and places entities inside a bubble floating above parent.
func LayoutBubble(entities []m.Entity, parent math32.Vector3, cfg m.BubbleConfig) BubbleLayout {
	capped := CapEntities(entities, cfg.MaxNodes)
	radius := BubbleRadius(len(capped), cfg)
	center := parent.Add(math32.Vec3(0, cfg.Lift+radius, 0))

	children := make([]m.PlacedEntity, len(capped))
	for slot, e := range capped {
		children[slot] = m.PlacedEntity{
			Entity:   e,
			Slot:     slot,
			Position: BubblePosition(slot, len(capped), center, radius),
			Placed:   true,
		}
	}

	return BubbleLayout{
		Center:      center,
		Radius:      radius,
		Entry:       EntryAnchor(parent, cfg.EntryLift),
		Children:    children,
		Connections: SequentialConnections(len(capped)),
		Causality:   CausalityChains(capped),
	}
}
