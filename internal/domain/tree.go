package domain

import (
	"cogentcore.org/core/math32"

	m "github.com/mouse-blink/tracecity/internal/model"
)

const (
	elseLabel = "else"
	ifLabel   = "if"
)

type branchRecord struct {
	branch        m.Branch
	fromCondition bool
	// resultKnown is false when the CONDITION carried no conditionResult.
	resultKnown bool
}

// ExtractBranchStructure groups the CONDITION/BRANCH events among
// childIndices into arms.
//
// Each CONDITION opens a candidate arm. A BRANCH marks the pending candidate
// as taken; with no pending candidate, or when the pending one is known to
// have evaluated false, it opens a bare taken arm (an else block). Other
// events join the currently open arm. Events before the first arm are
// dropped when arms exist. This is a heuristic: elif chains are detected
// best-effort.
//
// With no arms found the structure is synthesized from summary and every
// child hangs off its taken arm. A single
// arm gets its logical complement appended, so every tree shows at least a
// taken and a not-taken arm. A nil summary with no arms yields an empty
// structure.
func ExtractBranchStructure(childIndices []int, trace []m.TraceEvent, summary *m.BranchSummary) m.BranchStructure {
	var (
		records   []*branchRecord
		pending   *branchRecord
		open      *branchRecord
		preBranch []int
	)

	for _, idx := range childIndices {
		ev, ok := m.Lookup(trace, idx)
		if !ok {
			continue
		}

		switch ev.Type {
		case m.EventCondition:
			rec := &branchRecord{
				branch:        m.Branch{Label: ev.Condition},
				fromCondition: true,
				resultKnown:   ev.ConditionResult != nil,
			}
			if ev.ConditionResult != nil {
				rec.branch.ConditionResult = *ev.ConditionResult
			}

			records = append(records, rec)
			pending = rec
			open = rec
		case m.EventBranch:
			if pending != nil && (!pending.resultKnown || pending.branch.ConditionResult) {
				pending.branch.IsTaken = true
				pending.branch.ConditionResult = true
				open = pending
				pending = nil

				continue
			}

			label := ev.Branch
			if label == "" {
				label = elseLabel
			}

			rec := &branchRecord{
				branch: m.Branch{Label: label, ConditionResult: true, IsTaken: true},
			}
			records = append(records, rec)
			pending = nil
			open = rec
		default:
			if open == nil {
				preBranch = append(preBranch, idx)
				continue
			}

			open.branch.ChildIndices = append(open.branch.ChildIndices, idx)
		}
	}

	switch len(records) {
	case 0:
		return fallbackStructure(summary, preBranch)
	case 1:
		records = append(records, complementOf(records[0]))
	}

	structure := m.BranchStructure{
		Branches: make([]m.Branch, len(records)),
	}

	for i, rec := range records {
		structure.Branches[i] = rec.branch
	}

	first := records[0]
	structure.Condition = first.branch.Label
	structure.Result = first.branch.ConditionResult

	return structure
}

func complementOf(rec *branchRecord) *branchRecord {
	label := elseLabel
	if !rec.fromCondition {
		label = ifLabel
	}

	return &branchRecord{
		branch: m.Branch{
			Label:           label,
			ConditionResult: !rec.branch.ConditionResult,
			IsTaken:         false,
		},
	}
}

// fallbackStructure builds the two-arm structure from a summary. With no
// structured arms the whole child pool is the executed body, so it hangs
// off the taken arm.
func fallbackStructure(summary *m.BranchSummary, pool []int) m.BranchStructure {
	if summary == nil {
		return m.BranchStructure{}
	}

	taken := m.Branch{
		Label:           summary.ChosenBranch,
		ConditionResult: summary.Result,
		IsTaken:         true,
		ChildIndices:    append([]int(nil), pool...),
	}
	other := m.Branch{
		ConditionResult: !summary.Result,
	}

	if summary.Result {
		if taken.Label == "" {
			taken.Label = summary.Condition
		}

		other.Label = elseLabel
	} else {
		if taken.Label == "" {
			taken.Label = elseLabel
		}

		other.Label = summary.Condition
	}

	branches := []m.Branch{taken, other}
	if !summary.Result {
		branches = []m.Branch{other, taken}
	}

	return m.BranchStructure{
		Condition: summary.Condition,
		Result:    summary.Result,
		Branches:  branches,
	}
}

// TreeArm is one laid-out arm of a tree.
type TreeArm struct {
	Branch   m.Branch
	Position math32.Vector3
	Leaves   []m.PlacedEntity
	// Opacity is higher for the taken arm. Renderers must honor it.
	Opacity float32
}

// TreeLayout is the laid-out content of one tree view.
type TreeLayout struct {
	Root math32.Vector3
	Arms []TreeArm
}

// ArmPosition returns the position of arm b of n under parent.
func ArmPosition(b, n int, parent math32.Vector3, cfg m.TreeConfig) math32.Vector3 {
	offset := float32(b) - float32(n-1)/2

	return math32.Vec3(
		parent.X+offset*cfg.BranchSpread,
		parent.Y-cfg.TrunkLength,
		parent.Z,
	)
}

// LeafPosition returns the position of leaf l under arm. Leaves zigzag in
// z by parity so consecutive leaves do not overlap.
func LeafPosition(l int, arm math32.Vector3, cfg m.TreeConfig) math32.Vector3 {
	z := arm.Z + cfg.ZigzagOffset
	if l%2 == 1 {
		z = arm.Z - cfg.ZigzagOffset
	}

	return math32.Vec3(arm.X, arm.Y-float32(l+1)*cfg.LeafSpacing, z)
}

// TreeLeaves consolidates the children of every arm, control flow excluded.
func TreeLeaves(structure m.BranchStructure, trace []m.TraceEvent) [][]m.Entity {
	leaves := make([][]m.Entity, len(structure.Branches))
	for i, b := range structure.Branches {
		leaves[i] = Consolidate(b.ChildIndices, trace)
	}

	return leaves
}

// LayoutTree positions the root, the arms and their leaf chains. leaves is
// indexed like structure.Branches; missing rows mean an arm has no leaves.
func LayoutTree(structure m.BranchStructure, parent math32.Vector3, leaves [][]m.Entity, cfg m.TreeConfig) TreeLayout {
	layout := TreeLayout{Root: parent}
	n := len(structure.Branches)

	for b, branch := range structure.Branches {
		pos := ArmPosition(b, n, parent, cfg)

		arm := TreeArm{
			Branch:   branch,
			Position: pos,
			Opacity:  cfg.NotTakenOpacity,
		}
		if branch.IsTaken {
			arm.Opacity = cfg.TakenOpacity
		}

		if b < len(leaves) {
			for l, e := range leaves[b] {
				arm.Leaves = append(arm.Leaves, m.PlacedEntity{
					Entity:   e,
					Slot:     l,
					Position: LeafPosition(l, pos, cfg),
					Placed:   true,
				})
			}
		}

		layout.Arms = append(layout.Arms, arm)
	}

	return layout
}
