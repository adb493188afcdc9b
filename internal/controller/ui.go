// Package controller provides the user interfaces that display laid-out
// traces and drive interactive exploration.
package controller

import (
	"context"

	m "github.com/mouse-blink/tracecity/internal/model"
)

// Session is the interactive state of one explored trace. Every method
// runs on the UI's event loop.
type Session interface {
	// Title names the explored trace.
	Title() string
	// Addressables lists the entities of the active context in slot order.
	Addressables() []m.Addressable
	// Selected returns the selected key, or "".
	Selected() string
	// Inspection describes the selection.
	Inspection() (m.Inspection, bool)
	// OpenView describes the open nested view.
	OpenView() (m.ViewToggle, bool)
	// Activate feeds one raw activation of key.
	Activate(key string)
	// Navigate moves the selection forward (dir > 0) or backward.
	Navigate(dir int) string
	// CloseView closes the open nested view.
	CloseView()
	// ToggleCausality shows or hides causality links of the open view.
	ToggleCausality() bool
	// Close releases every resource of the session.
	Close()
}

// SessionFactory builds a session whose deferred callbacks run on sched.
// A nil sched means the UI cannot defer callbacks.
type SessionFactory func(sched m.Scheduler) (Session, error)

// UI defines the interface for displaying laid-out traces.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// DisplayLayout shows the buildings of one or more traces.
	DisplayLayout(reports []m.CityReport) error
	// DisplayMemory shows the address layer of one or more traces.
	DisplayMemory(reports []m.CityReport, convergentOnly bool) error
	// DisplayExport reports a written scene.
	DisplayExport(summary m.ExportSummary) error
	// Explore runs an exploration session until the user quits or ctx is
	// done. Each receive on reloads rebuilds the session.
	Explore(ctx context.Context, open SessionFactory, reloads <-chan struct{}) error
}
