package model

// GroupKind is the top-level category of a snapshot group.
type GroupKind string

const (
	// GroupFunction groups every event executed inside one function.
	GroupFunction GroupKind = "function"
	// GroupVariable is one variable identity.
	GroupVariable GroupKind = "variable"
	// GroupForLoop is one for loop.
	GroupForLoop GroupKind = "for"
	// GroupWhileLoop is one while loop.
	GroupWhileLoop GroupKind = "while"
	// GroupBranch is one if/else-if/else chain.
	GroupBranch GroupKind = "branch"
)

// BranchSummary is the fallback description of a branch chain, used when
// the child events carry no usable CONDITION/BRANCH records.
type BranchSummary struct {
	Condition    string `yaml:"condition,omitempty" json:"condition,omitempty"`
	Result       bool   `yaml:"result" json:"result"`
	ChosenBranch string `yaml:"chosenBranch,omitempty" json:"chosenBranch,omitempty"`
}

// Group is one top-level item of the snapshot. Key is stable across loads
// of the same trace.
type Group struct {
	Key              string         `yaml:"key" json:"key"`
	Kind             GroupKind      `yaml:"kind" json:"kind"`
	Label            string         `yaml:"label" json:"label"`
	FirstStep        int            `yaml:"firstStep" json:"firstStep"`
	ChildStepIndices []int          `yaml:"childStepIndices" json:"childStepIndices"`
	Summary          *BranchSummary `yaml:"summary,omitempty" json:"summary,omitempty"`
}

// Snapshot groups the trace by top-level kind.
type Snapshot struct {
	Functions  []Group `yaml:"functions,omitempty" json:"functions,omitempty"`
	Variables  []Group `yaml:"variables,omitempty" json:"variables,omitempty"`
	ForLoops   []Group `yaml:"forLoops,omitempty" json:"forLoops,omitempty"`
	WhileLoops []Group `yaml:"whileLoops,omitempty" json:"whileLoops,omitempty"`
	Branches   []Group `yaml:"branches,omitempty" json:"branches,omitempty"`
}

// All returns every group in snapshot order: functions, variables, for
// loops, while loops, branches.
func (s Snapshot) All() []Group {
	all := make([]Group, 0, len(s.Functions)+len(s.Variables)+len(s.ForLoops)+len(s.WhileLoops)+len(s.Branches))
	all = append(all, s.Functions...)
	all = append(all, s.Variables...)
	all = append(all, s.ForLoops...)
	all = append(all, s.WhileLoops...)
	all = append(all, s.Branches...)

	return all
}

// Len returns the total group count.
func (s Snapshot) Len() int {
	return len(s.Functions) + len(s.Variables) + len(s.ForLoops) + len(s.WhileLoops) + len(s.Branches)
}
