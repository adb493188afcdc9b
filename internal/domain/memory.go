package domain

import (
	"sort"

	"cogentcore.org/core/math32"

	"github.com/mouse-blink/tracecity/internal/adapter"
	m "github.com/mouse-blink/tracecity/internal/model"
)

// AddressCategory is the color category of address nodes.
const AddressCategory = "address"

// Bezier is a cubic Bézier curve.
type Bezier struct {
	P0, P1, P2, P3 math32.Vector3
}

// At evaluates the curve at t in [0, 1].
func (b Bezier) At(t float32) math32.Vector3 {
	u := 1 - t
	w0 := u * u * u
	w1 := 3 * u * u * t
	w2 := 3 * u * t * t
	w3 := t * t * t

	return b.P0.MulScalar(w0).
		Add(b.P1.MulScalar(w1)).
		Add(b.P2.MulScalar(w2)).
		Add(b.P3.MulScalar(w3))
}

// Sample returns n+1 evenly spaced points from P0 to P3.
func (b Bezier) Sample(n int) []math32.Vector3 {
	if n < 1 {
		n = 1
	}

	points := make([]math32.Vector3, n+1)
	for i := 0; i <= n; i++ {
		points[i] = b.At(float32(i) / float32(n))
	}

	return points
}

// AddressPositions aggregates positioned variable entities by address. The
// node sits at the mean (x, z) of its contributors on the plane y = planeY.
// Entities without an address or a position do not contribute.
func AddressPositions(placed []m.PlacedEntity, planeY float32, colors adapter.ColorFunc) map[string]m.AddressNode {
	nodes := make(map[string]m.AddressNode)

	for _, p := range placed {
		addr := p.Address()
		if p.Type != m.EntityVariable || addr == "" || !p.Placed {
			continue
		}

		node := nodes[addr]
		node.Address = addr
		node.Contributors = append(node.Contributors, math32.Vec2(p.Position.X, p.Position.Z))
		node.Count = len(node.Contributors)
		nodes[addr] = node
	}

	for addr, node := range nodes {
		var sx, sz float32
		for _, c := range node.Contributors {
			sx += c.X
			sz += c.Y
		}

		n := float32(node.Count)
		node.Position = math32.Vec3(sx/n, planeY, sz/n)

		if colors != nil {
			node.Color = colors(AddressCategory, addr)
		}

		nodes[addr] = node
	}

	return nodes
}

// SortedAddressNodes returns the nodes ordered by address.
func SortedAddressNodes(nodes map[string]m.AddressNode) []m.AddressNode {
	sorted := make([]m.AddressNode, 0, len(nodes))
	for _, n := range nodes {
		sorted = append(sorted, n)
	}

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Address < sorted[j].Address
	})

	return sorted
}

// FountainPath returns the curve from a building base down to its address
// node. The first control point launches straight up, the second arcs over
// the horizontal midpoint pushed away from the city axis.
func FountainPath(from, to math32.Vector3, outwardFactor float32) Bezier {
	drop := from.Y - to.Y
	dir := groundDirection(from)

	dx := to.X - from.X
	dz := to.Z - from.Z
	push := outwardFactor * math32.Sqrt(dx*dx+dz*dz)

	return Bezier{
		P0: from,
		P1: math32.Vec3(from.X, from.Y+0.6*drop, from.Z),
		P2: math32.Vec3(
			from.X+dx/2+dir.X*push,
			from.Y+0.35*drop,
			from.Z+dz/2+dir.Y*push,
		),
		P3: to,
	}
}

// Smoothstep eases t in [0, 1] with zero slope at both ends.
func Smoothstep(t float32) float32 {
	return t * t * (3 - 2*t)
}

// DropletParameter returns the eased curve parameter of a droplet at tTime.
func DropletParameter(tTime, speed, offset float32) float32 {
	raw := tTime*speed + offset
	raw -= math32.Floor(raw)

	return Smoothstep(raw)
}

// DropletPosition returns where a droplet on path is at tTime.
func DropletPosition(path Bezier, tTime, speed, offset float32) math32.Vector3 {
	return path.At(DropletParameter(tTime, speed, offset))
}

// Droplet is one animated particle on a fountain. The frame driver owns the
// clock and calls Position once per tick.
type Droplet struct {
	Key    string
	Path   Bezier
	Speed  float32
	Offset float32
}

// Position returns the droplet position at tTime.
func (d Droplet) Position(tTime float32) math32.Vector3 {
	return DropletPosition(d.Path, tTime, d.Speed, d.Offset)
}

// DropletsFor spreads count droplets evenly along path.
func DropletsFor(key string, path Bezier, count int, speed float32) []Droplet {
	if count <= 0 {
		return nil
	}

	droplets := make([]Droplet, count)
	for i := range droplets {
		droplets[i] = Droplet{
			Key:    key,
			Path:   path,
			Speed:  speed,
			Offset: float32(i) / float32(count),
		}
	}

	return droplets
}
