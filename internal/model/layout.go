package model

import (
	"fmt"
	"time"

	"cogentcore.org/core/math32"
)

// ViewKind is the kind of a nested visualization.
type ViewKind string

const (
	// ViewNone means the entity has no nested view.
	ViewNone ViewKind = ""
	// ViewGalaxy is a nested sub-spiral.
	ViewGalaxy ViewKind = "galaxy"
	// ViewBubble is a nested spherical layout.
	ViewBubble ViewKind = "bubble"
	// ViewTree is a nested branch fan.
	ViewTree ViewKind = "tree"
)

// RGB is an opaque display color.
type RGB struct {
	R uint8 `yaml:"r" json:"r"`
	G uint8 `yaml:"g" json:"g"`
	B uint8 `yaml:"b" json:"b"`
}

// Hex returns the color as #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// PlacedEntity is an entity with its slot and position inside one container.
type PlacedEntity struct {
	Entity
	Slot     int            `yaml:"slot" json:"slot"`
	Position math32.Vector3 `yaml:"position" json:"position"`
	// Placed is false when the entity has no resolvable position.
	Placed bool `yaml:"placed" json:"placed"`
}

// AddressNode aggregates every variable sharing one memory address.
type AddressNode struct {
	Address      string           `yaml:"address" json:"address"`
	Position     math32.Vector3   `yaml:"position" json:"position"`
	Contributors []math32.Vector2 `yaml:"contributors" json:"contributors"`
	Count        int              `yaml:"count" json:"count"`
	Color        RGB              `yaml:"color" json:"color"`
}

// Convergent reports whether two or more variables share the address.
func (n AddressNode) Convergent() bool {
	return n.Count >= 2
}

// Branch is one arm of a branch structure.
type Branch struct {
	Label           string `yaml:"label" json:"label"`
	ConditionResult bool   `yaml:"conditionResult" json:"conditionResult"`
	IsTaken         bool   `yaml:"isTaken" json:"isTaken"`
	ChildIndices    []int  `yaml:"childIndices" json:"childIndices"`
}

// BranchStructure is the taken/not-taken arm set of one conditional.
type BranchStructure struct {
	Condition string   `yaml:"condition" json:"condition"`
	Result    bool     `yaml:"result" json:"result"`
	Branches  []Branch `yaml:"branches" json:"branches"`
}

// SpiralConfig holds the constants of one spiral family.
type SpiralConfig struct {
	RadiusStart  float32 `yaml:"radiusStart"`
	RadiusGrowth float32 `yaml:"radiusGrowth"`
	AngleStep    float32 `yaml:"angleStep"`
	HeightStep   float32 `yaml:"heightStep"`
	// HeightDecay below 1 selects geometric height decay; 1 or more is linear.
	// Negative values count as 0.
	HeightDecay float32 `yaml:"heightDecay"`
}

// GalaxyConfig is a nested spiral pushed away from its parent building.
type GalaxyConfig struct {
	SpiralConfig `yaml:",inline"`
	Offset       float32 `yaml:"offset"`
}

// BubbleConfig holds the bubble constants.
type BubbleConfig struct {
	RadiusBase    float32 `yaml:"radiusBase"`
	RadiusPerNode float32 `yaml:"radiusPerNode"`
	MaxNodes      int     `yaml:"maxNodes"`
	// Lift raises the bubble center above its parent building.
	Lift float32 `yaml:"lift"`
	// EntryLift is the height of the parent-to-first-child connector anchor.
	EntryLift float32 `yaml:"entryLift"`
}

// TreeConfig holds the branch fan constants.
type TreeConfig struct {
	BranchSpread    float32 `yaml:"branchSpread"`
	TrunkLength     float32 `yaml:"trunkLength"`
	LeafSpacing     float32 `yaml:"leafSpacing"`
	ZigzagOffset    float32 `yaml:"zigzagOffset"`
	TakenOpacity    float32 `yaml:"takenOpacity"`
	NotTakenOpacity float32 `yaml:"notTakenOpacity"`
}

// MemoryConfig holds the address layer constants.
type MemoryConfig struct {
	// PlaneDepth is how far below the lowest building the address plane sits.
	PlaneDepth float32 `yaml:"planeDepth"`
	// OutwardFactor pushes the fountain's second control point away from the city axis.
	OutwardFactor   float32 `yaml:"outwardFactor"`
	CurveSamples    int     `yaml:"curveSamples"`
	DropletsPerPath int     `yaml:"dropletsPerPath"`
	DropletSpeed    float32 `yaml:"dropletSpeed"`
}

// BuildingConfig sizes the building primitives.
type BuildingConfig struct {
	Width         float32 `yaml:"width"`
	HeightBase    float32 `yaml:"heightBase"`
	HeightPerStep float32 `yaml:"heightPerStep"`
	MaxHeight     float32 `yaml:"maxHeight"`
}

// InteractionConfig holds input timing.
type InteractionConfig struct {
	DoubleClickWindow time.Duration `yaml:"doubleClickWindow"`
}

// LayoutConfig is the complete set of static layout constants.
type LayoutConfig struct {
	Spiral      SpiralConfig      `yaml:"spiral"`
	Galaxy      GalaxyConfig      `yaml:"galaxy"`
	Bubble      BubbleConfig      `yaml:"bubble"`
	Tree        TreeConfig        `yaml:"tree"`
	Memory      MemoryConfig      `yaml:"memory"`
	Building    BuildingConfig    `yaml:"building"`
	Interaction InteractionConfig `yaml:"interaction"`
}

// DefaultMaxBubbleNodes is the default bubble node cap.
const DefaultMaxBubbleNodes = 50

// DefaultDoubleClickWindow is the default activate debounce window.
const DefaultDoubleClickWindow = 350 * time.Millisecond

// DefaultLayoutConfig returns the documented defaults.
func DefaultLayoutConfig() LayoutConfig {
	return LayoutConfig{
		Spiral: SpiralConfig{
			RadiusStart:  10,
			RadiusGrowth: 0.35,
			AngleStep:    0.5,
			HeightStep:   -0.4,
			HeightDecay:  0.985,
		},
		Galaxy: GalaxyConfig{
			SpiralConfig: SpiralConfig{
				RadiusStart:  3,
				RadiusGrowth: 0.12,
				AngleStep:    0.6,
				HeightStep:   0.25,
				HeightDecay:  1,
			},
			Offset: 8,
		},
		Bubble: BubbleConfig{
			RadiusBase:    3,
			RadiusPerNode: 0.15,
			MaxNodes:      DefaultMaxBubbleNodes,
			Lift:          6,
			EntryLift:     2,
		},
		Tree: TreeConfig{
			BranchSpread:    4,
			TrunkLength:     3,
			LeafSpacing:     1.5,
			ZigzagOffset:    0.6,
			TakenOpacity:    1,
			NotTakenOpacity: 0.35,
		},
		Memory: MemoryConfig{
			PlaneDepth:      12,
			OutwardFactor:   0.25,
			CurveSamples:    24,
			DropletsPerPath: 3,
			DropletSpeed:    0.4,
		},
		Building: BuildingConfig{
			Width:         1.2,
			HeightBase:    1,
			HeightPerStep: 0.5,
			MaxHeight:     12,
		},
		Interaction: InteractionConfig{
			DoubleClickWindow: DefaultDoubleClickWindow,
		},
	}
}
