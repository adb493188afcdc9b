package domain

import (
	"io"
	"log/slog"
	"time"

	"github.com/mouse-blink/tracecity/internal/adapter"
	m "github.com/mouse-blink/tracecity/internal/model"
)

// fakeClock is a manually advanced clock.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

type fakeTimer struct {
	at      time.Time
	f       func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}

	t.stopped = true

	return true
}

// fakeScheduler runs due callbacks when Advance moves its clock.
type fakeScheduler struct {
	clock  *fakeClock
	timers []*fakeTimer
}

func newFakeScheduler() *fakeScheduler {
	return &fakeScheduler{clock: newFakeClock()}
}

func (s *fakeScheduler) AfterFunc(d time.Duration, f func()) m.Timer {
	t := &fakeTimer{at: s.clock.now.Add(d), f: f}
	s.timers = append(s.timers, t)

	return t
}

func (s *fakeScheduler) Advance(d time.Duration) {
	s.clock.now = s.clock.now.Add(d)

	for i := 0; i < len(s.timers); i++ {
		t := s.timers[i]
		if t.stopped || t.fired || t.at.After(s.clock.now) {
			continue
		}

		t.fired = true
		t.f()
	}
}

func (s *fakeScheduler) Pending() int {
	n := 0

	for _, t := range s.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}

	return n
}

// sampleTrace is main() with a variable, a three-check for loop whose body
// re-declares t at a new address each time, and a taken if whose body
// declares y at x's address.
func sampleTrace() []m.TraceEvent {
	events := []m.TraceEvent{
		{Type: m.EventCall, Name: "main", Line: 1},
		{Type: m.EventDecl, Var: "x", Address: "0xA", Value: "1", Line: 2, Depth: 1},
		{Type: m.EventLoop, Subtype: "for", Condition: "i<3", Line: 3, Depth: 1},
		{Type: m.EventDecl, Var: "t", Address: "0xB1", Value: "0", Line: 4, Depth: 2},
		{Type: m.EventAssign, Var: "x", Address: "0xA", Value: "2", Line: 5, Depth: 2},
		{Type: m.EventLoop, Subtype: "for", Condition: "i<3", Line: 3, Depth: 1},
		{Type: m.EventDecl, Var: "t", Address: "0xB2", Value: "1", Line: 4, Depth: 2},
		{Type: m.EventLoop, Subtype: "for", Condition: "i<3", Line: 3, Depth: 1},
		{Type: m.EventCondition, Condition: "x > 1", ConditionResult: m.BoolPtr(true), Line: 6, Depth: 1},
		{Type: m.EventBranch, Branch: "if", Line: 6, Depth: 1},
		{Type: m.EventDecl, Var: "y", Address: "0xA", Value: "9", Line: 7, Depth: 2},
		{Type: m.EventRead, Var: "x", Address: "0xA", Line: 8, Depth: 1},
		{Type: m.EventReturn, Name: "main", Line: 8},
	}

	return indexed(events)
}

// Keys of the sampleTrace groups.
const (
	mainKey   = "function:main"
	xKey      = "variable:x|0xA"
	loopKey   = "loop:for|i<3"
	branchKey = "branch:8"
	yKey      = "variable:y|0xA"
)

func indexed(events []m.TraceEvent) []m.TraceEvent {
	for i := range events {
		events[i].Index = i
	}

	return events
}

func indices(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

func keysOf(entities []m.Entity) []string {
	keys := make([]string, len(entities))
	for i, e := range entities {
		keys[i] = e.Key
	}

	return keys
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newSampleCity builds the sampleTrace city on a fresh scene.
func newSampleCity() (*City, *adapter.SceneRenderer) {
	scene := adapter.NewSceneRenderer()
	city := NewCity(m.Trace{Events: sampleTrace()}, scene, nil, m.DefaultLayoutConfig(), discardLogger())
	city.Build()

	return city, scene
}

// consolidateAll consolidates every event of trace in order.
func consolidateAll(trace []m.TraceEvent, opts ...ConsolidateOption) []m.Entity {
	return Consolidate(indices(len(trace)), trace, opts...)
}
