package domain

import (
	"fmt"

	m "github.com/mouse-blink/tracecity/internal/model"
)

// ConsolidateOption tunes a consolidation pass.
type ConsolidateOption func(*consolidateConfig)

type consolidateConfig struct {
	controlFlow bool
}

// WithControlFlow keeps CONDITION and BRANCH events as ordinary entities.
// Galaxy views use it; loop bodies leave control flow to the tree layout.
func WithControlFlow() ConsolidateOption {
	return func(c *consolidateConfig) {
		c.controlFlow = true
	}
}

// entityBuilder accumulates one entity while the pass is running.
type entityBuilder struct {
	merge  string
	entity m.Entity
	values []m.ValueRecord
	steps  []int
}

func newEntityBuilder(key, merge string, idx int, ev m.TraceEvent) *entityBuilder {
	first := ev

	b := &entityBuilder{
		merge: merge,
		entity: m.Entity{
			Type:      m.EntityTypeFor(ev.Type),
			ColorType: string(ev.Type),
			Label:     ev.DisplayName(),
			Key:       key,
			FirstStep: &first,
		},
	}
	b.absorb(idx, ev)

	return b
}

func (b *entityBuilder) absorb(idx int, ev m.TraceEvent) {
	b.steps = append(b.steps, idx)

	switch b.entity.Type {
	case m.EntityVariable:
		if ev.Value != "" {
			b.values = append(b.values, m.ValueRecord{Step: idx, Value: string(ev.Value)})
			b.entity.CurrentValue = string(ev.Value)
		}
	case m.EntityLoop:
		b.entity.Iterations++
	}
}

func (b *entityBuilder) freeze() m.Entity {
	e := b.entity
	e.StepIndices = append([]int(nil), b.steps...)

	if len(b.values) > 0 {
		e.Values = append([]m.ValueRecord(nil), b.values...)
	}

	return e
}

// identityKey returns the entity key of ev, its merge key and whether
// events with the same merge key merge into one entity. Merge keys are
// scoped by entity type so a loop never absorbs a variable.
func identityKey(idx int, ev m.TraceEvent) (key, merge string, merges bool) {
	t := m.EntityTypeFor(ev.Type)

	switch ev.Type {
	case m.EventDecl, m.EventAssign, m.EventParam:
		key, merges = m.VariableKey(ev.VariableName(), ev.Address), true
	case m.EventLoop:
		key, merges = m.LoopKey(ev.Subtype, ev.Condition), true
	default:
		key = m.EventKey(t, idx)
	}

	return key, string(t) + ":" + key, merges
}

// Consolidate turns the trace events named by childIndices into an ordered
// list of deduplicated entities.
//
// Variables merge by name and address, loops by subtype and condition;
// calls, returns, conditions and branches stay one entity per event. READ
// events are dropped. Indices without a trace record, and indices already
// seen in this pass, are skipped. Entities keep first-seen order.
func Consolidate(childIndices []int, trace []m.TraceEvent, opts ...ConsolidateOption) []m.Entity {
	cfg := consolidateConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	builders := make([]*entityBuilder, 0, len(childIndices))
	byKey := make(map[string]*entityBuilder)
	seen := make(map[int]struct{}, len(childIndices))

	for _, idx := range childIndices {
		ev, ok := m.Lookup(trace, idx)
		if !ok {
			continue
		}

		if _, dup := seen[idx]; dup {
			continue
		}

		seen[idx] = struct{}{}

		if ev.Type == m.EventRead {
			continue
		}

		if ev.IsControlFlow() && !cfg.controlFlow {
			continue
		}

		key, merge, merges := identityKey(idx, ev)
		if merges {
			if b, found := byKey[merge]; found {
				b.absorb(idx, ev)
				continue
			}
		}

		b := newEntityBuilder(key, merge, idx, ev)
		builders = append(builders, b)
		byKey[merge] = b
	}

	entities := make([]m.Entity, 0, len(builders))
	keys := make(map[string]struct{}, len(builders))

	for _, b := range builders {
		if _, dup := keys[b.merge]; dup {
			panic(fmt.Sprintf("consolidate: identity key %q produced two entities", b.merge))
		}

		keys[b.merge] = struct{}{}

		entities = append(entities, b.freeze())
	}

	return entities
}
