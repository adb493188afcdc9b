package domain

import (
	"time"

	m "github.com/mouse-blink/tracecity/internal/model"
)

// ClickState is the state of a ClickMachine.
type ClickState int

// Click machine states.
const (
	// ClickIdle has no activation pending.
	ClickIdle ClickState = iota
	// ClickPendingSingle waits for the window to pass before running the
	// shallow action of the last activated key.
	ClickPendingSingle
)

// ClickMachine tells single activations from double activations.
//
// An activation of the pending key before its deadline cancels the pending
// shallow action and runs the deep action at once. Any other activation
// replaces the pending one. Every deferred callback carries the generation
// it was scheduled in and does nothing once the generation has moved on.
type ClickMachine struct {
	window    time.Duration
	clock     m.Clock
	scheduler m.Scheduler

	state      ClickState
	key        string
	deadline   time.Time
	timer      m.Timer
	generation uint64
}

// NewClickMachine creates an idle machine. With a nil scheduler the
// shallow action runs immediately and double activations are never seen.
func NewClickMachine(window time.Duration, clock m.Clock, scheduler m.Scheduler) *ClickMachine {
	if clock == nil {
		clock = m.SystemClock{}
	}

	if window <= 0 {
		window = m.DefaultDoubleClickWindow
	}

	return &ClickMachine{
		window:    window,
		clock:     clock,
		scheduler: scheduler,
	}
}

// State returns the current state.
func (c *ClickMachine) State() ClickState {
	return c.state
}

// Pending returns the key waiting for its shallow action.
func (c *ClickMachine) Pending() (string, bool) {
	if c.state != ClickPendingSingle {
		return "", false
	}

	return c.key, true
}

// Activate feeds one raw activation of key.
func (c *ClickMachine) Activate(key string, shallow, deep func(key string)) {
	now := c.clock.Now()

	if c.state == ClickPendingSingle && c.key == key && !now.After(c.deadline) {
		c.Cancel()
		deep(key)

		return
	}

	c.Cancel()

	if c.scheduler == nil {
		shallow(key)
		return
	}

	gen := c.generation
	c.state = ClickPendingSingle
	c.key = key
	c.deadline = now.Add(c.window)
	c.timer = c.scheduler.AfterFunc(c.window, func() {
		if c.generation != gen || c.state != ClickPendingSingle {
			return
		}

		c.reset()
		shallow(key)
	})
}

// Cancel drops any pending shallow action.
func (c *ClickMachine) Cancel() {
	if c.timer != nil {
		c.timer.Stop()
	}

	c.reset()
}

func (c *ClickMachine) reset() {
	c.state = ClickIdle
	c.key = ""
	c.deadline = time.Time{}
	c.timer = nil
	c.generation++
}
