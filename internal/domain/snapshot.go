package domain

import (
	"sort"
	"strconv"
	"strings"

	m "github.com/mouse-blink/tracecity/internal/model"
)

// Group key prefixes of a derived snapshot.
const (
	functionKeyPrefix = "function:"
	variableKeyPrefix = "variable:"
	loopKeyPrefix     = "loop:"
	branchKeyPrefix   = "branch:"
)

// groupBuilder collects the child steps of one group without duplicates.
type groupBuilder struct {
	group m.Group
	steps map[int]struct{}
}

func newGroupBuilder(key string, kind m.GroupKind, label string, first int) *groupBuilder {
	return &groupBuilder{
		group: m.Group{Key: key, Kind: kind, Label: label, FirstStep: first},
		steps: make(map[int]struct{}),
	}
}

func (b *groupBuilder) add(indices ...int) {
	for _, idx := range indices {
		b.steps[idx] = struct{}{}
	}
}

func (b *groupBuilder) freeze() m.Group {
	g := b.group

	g.ChildStepIndices = make([]int, 0, len(b.steps))
	for idx := range b.steps {
		g.ChildStepIndices = append(g.ChildStepIndices, idx)
	}

	sort.Ints(g.ChildStepIndices)

	return g
}

// orderedGroups keeps builders in first-seen order.
type orderedGroups struct {
	order []*groupBuilder
	byKey map[string]*groupBuilder
}

func newOrderedGroups() *orderedGroups {
	return &orderedGroups{byKey: make(map[string]*groupBuilder)}
}

func (o *orderedGroups) get(key string, create func() *groupBuilder) *groupBuilder {
	if b, ok := o.byKey[key]; ok {
		return b
	}

	b := create()
	o.order = append(o.order, b)
	o.byKey[key] = b

	return b
}

func (o *orderedGroups) freeze() []m.Group {
	if len(o.order) == 0 {
		return nil
	}

	groups := make([]m.Group, len(o.order))
	for i, b := range o.order {
		groups[i] = b.freeze()
	}

	return groups
}

// BuildSnapshot derives the top-level grouping from raw events, for traces
// that ship without one.
//
// Functions group by name: a function owns the events whose innermost open
// call is one of its calls, and both ends of every call it makes. Variables
// group by name and address. Loops group by subtype and condition and own
// the body that follows each header. Branches are CONDITION chains with
// their BRANCH and the taken body.
//
// Bodies are delimited by event depth. Traces without depth information
// fall back to call-frame boundaries and the next header.
func BuildSnapshot(events []m.TraceEvent) m.Snapshot {
	hasDepth := false

	for _, ev := range events {
		if ev.Depth > 0 {
			hasDepth = true
			break
		}
	}

	return m.Snapshot{
		Functions:  functionGroups(events),
		Variables:  variableGroups(events),
		ForLoops:   loopGroups(events, hasDepth, false),
		WhileLoops: loopGroups(events, hasDepth, true),
		Branches:   branchGroups(events, hasDepth),
	}
}

func functionGroups(events []m.TraceEvent) []m.Group {
	groups := newOrderedGroups()

	var stack []*groupBuilder

	for i, ev := range events {
		switch ev.Type {
		case m.EventCall:
			if len(stack) > 0 {
				stack[len(stack)-1].add(i)
			}

			name := ev.DisplayName()
			b := groups.get(functionKeyPrefix+name, func() *groupBuilder {
				return newGroupBuilder(functionKeyPrefix+name, m.GroupFunction, name, i)
			})
			b.add(i)
			stack = append(stack, b)
		case m.EventReturn:
			if len(stack) == 0 {
				continue
			}

			stack[len(stack)-1].add(i)
			stack = stack[:len(stack)-1]

			if len(stack) > 0 {
				stack[len(stack)-1].add(i)
			}
		default:
			if len(stack) > 0 {
				stack[len(stack)-1].add(i)
			}
		}
	}

	return groups.freeze()
}

func variableGroups(events []m.TraceEvent) []m.Group {
	groups := newOrderedGroups()

	for i, ev := range events {
		if m.EntityTypeFor(ev.Type) != m.EntityVariable {
			continue
		}

		name := ev.VariableName()
		key := variableKeyPrefix + m.VariableKey(name, ev.Address)
		groups.get(key, func() *groupBuilder {
			return newGroupBuilder(key, m.GroupVariable, name, i)
		}).add(i)
	}

	return groups.freeze()
}

func isWhileLoop(subtype string) bool {
	return strings.Contains(strings.ToLower(subtype), "while")
}

func loopGroups(events []m.TraceEvent, hasDepth, while bool) []m.Group {
	groups := newOrderedGroups()

	kind := m.GroupForLoop
	if while {
		kind = m.GroupWhileLoop
	}

	for i, ev := range events {
		if ev.Type != m.EventLoop || isWhileLoop(ev.Subtype) != while {
			continue
		}

		id := m.LoopKey(ev.Subtype, ev.Condition)
		key := loopKeyPrefix + id

		b := groups.get(key, func() *groupBuilder {
			return newGroupBuilder(key, kind, ev.DisplayName(), i)
		})
		b.add(i)
		b.add(scanBody(events, i+1, ev, hasDepth, func(next m.TraceEvent) bool {
			return next.Type == m.EventLoop && m.LoopKey(next.Subtype, next.Condition) == id
		})...)
	}

	return groups.freeze()
}

func branchGroups(events []m.TraceEvent, hasDepth bool) []m.Group {
	var groups []m.Group

	claimed := make(map[int]struct{})

	for i, ev := range events {
		if ev.Type != m.EventCondition {
			continue
		}

		if _, ok := claimed[i]; ok {
			continue
		}

		b := newGroupBuilder(branchKeyPrefix+strconv.Itoa(i), m.GroupBranch, ev.Condition, i)
		summary := &m.BranchSummary{Condition: ev.Condition}

		if ev.ConditionResult != nil {
			summary.Result = *ev.ConditionResult
		}

		taken := false
		j := i

	chain:
		for ; j < len(events); j++ {
			next := events[j]

			switch {
			case next.Type == m.EventCondition && !taken && next.Depth == ev.Depth:
				claimed[j] = struct{}{}
				b.add(j)

				if next.ConditionResult == nil || *next.ConditionResult {
					taken = true

					if summary.ChosenBranch == "" {
						summary.ChosenBranch = next.Condition
					}
				}
			case next.Type == m.EventBranch:
				b.add(j)

				if next.Branch != "" {
					summary.ChosenBranch = next.Branch
				}

				taken = true
				j++

				break chain
			default:
				break chain
			}
		}

		if taken {
			b.add(scanBody(events, j, ev, hasDepth, func(next m.TraceEvent) bool {
				return next.Type == m.EventCondition || next.Type == m.EventLoop
			})...)
		}

		g := b.freeze()
		g.Summary = summary
		groups = append(groups, g)
	}

	return groups
}

// scanBody returns the indices from start that belong to the block opened
// by header. With depth information the block is every following deeper
// event. Without it the block runs until stop matches in the header's call
// frame, or until that frame returns.
func scanBody(events []m.TraceEvent, start int, header m.TraceEvent, hasDepth bool, stop func(m.TraceEvent) bool) []int {
	var body []int

	frame := 0

	for j := start; j < len(events); j++ {
		ev := events[j]

		if hasDepth {
			if ev.Depth <= header.Depth {
				break
			}

			body = append(body, j)

			continue
		}

		if frame == 0 && stop(ev) {
			break
		}

		switch ev.Type {
		case m.EventCall:
			frame++
		case m.EventReturn:
			if frame == 0 {
				return body
			}

			frame--
		}

		body = append(body, j)
	}

	return body
}
