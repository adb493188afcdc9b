package domain

import (
	"log/slog"
	"time"

	"cogentcore.org/core/math32"

	"github.com/mouse-blink/tracecity/internal/adapter"
	m "github.com/mouse-blink/tracecity/internal/model"
)

// NestedView is one materialized nested visualization.
type NestedView struct {
	Key      string
	Kind     m.ViewKind
	Center   math32.Vector3
	Radius   float32
	Children []m.PlacedEntity
	// Handles are every renderer resource the view created.
	Handles []adapter.Handle
	// Causality are the causality curves among Handles. They start hidden.
	Causality []adapter.Handle
}

// Catalog is the top-level content a ViewManager navigates and expands.
type Catalog interface {
	// Addressables lists the top-level entities in slot order.
	Addressables() []m.Addressable
	// Resolve looks up a top-level key.
	Resolve(key string) (m.Addressable, bool)
	// Inspect describes a top-level key.
	Inspect(key string) (m.Inspection, bool)
	// BuildView materializes the nested view of key. It reports false when
	// key has nothing to show.
	BuildView(key string, kind m.ViewKind) (NestedView, bool)
}

// ViewOption configures a ViewManager.
type ViewOption func(*ViewManager)

// WithScheduler debounces activations on scheduler, reading time from clock.
func WithScheduler(scheduler m.Scheduler, clock m.Clock) ViewOption {
	return func(vm *ViewManager) {
		vm.scheduler = scheduler
		vm.clock = clock
	}
}

// WithDoubleClickWindow sets the double activation window.
func WithDoubleClickWindow(d time.Duration) ViewOption {
	return func(vm *ViewManager) {
		vm.window = d
	}
}

// WithViewLogger sets the logger.
func WithViewLogger(logger *slog.Logger) ViewOption {
	return func(vm *ViewManager) {
		vm.logger = logger
	}
}

// ViewManager owns the single open nested view, the selection and the
// activation state machine.
type ViewManager struct {
	catalog  Catalog
	renderer adapter.Renderer
	logger   *slog.Logger

	scheduler m.Scheduler
	clock     m.Clock
	window    time.Duration
	clicks    *ClickMachine

	open  *NestedView
	owned map[string][]adapter.Handle

	selected   string
	inspection *m.Inspection
	causality  bool

	onSelect     func(line *int)
	onViewToggle func(m.ViewToggle)
}

// NewViewManager creates a manager with no open view.
func NewViewManager(catalog Catalog, renderer adapter.Renderer, opts ...ViewOption) *ViewManager {
	vm := &ViewManager{
		catalog:  catalog,
		renderer: renderer,
		logger:   slog.Default(),
		window:   m.DefaultDoubleClickWindow,
		owned:    make(map[string][]adapter.Handle),
	}

	for _, opt := range opts {
		opt(vm)
	}

	vm.clicks = NewClickMachine(vm.window, vm.clock, vm.scheduler)

	return vm
}

// OnSelect registers the selection hook. It receives the source line of the
// new selection, or nil when it has none.
func (vm *ViewManager) OnSelect(fn func(line *int)) {
	vm.onSelect = fn
}

// OnViewToggle registers the view open/close hook.
func (vm *ViewManager) OnViewToggle(fn func(m.ViewToggle)) {
	vm.onViewToggle = fn
}

// Open returns the open view.
func (vm *ViewManager) Open() (NestedView, bool) {
	if vm.open == nil {
		return NestedView{}, false
	}

	return *vm.open, true
}

// Owned returns the handles owned by key's view.
func (vm *ViewManager) Owned(key string) []adapter.Handle {
	return vm.owned[key]
}

// OwnedCount returns how many views own resources.
func (vm *ViewManager) OwnedCount() int {
	return len(vm.owned)
}

// Selected returns the selected key.
func (vm *ViewManager) Selected() string {
	return vm.selected
}

// Inspection returns the detail of the current selection.
func (vm *ViewManager) Inspection() (m.Inspection, bool) {
	if vm.inspection == nil {
		return m.Inspection{}, false
	}

	return *vm.inspection, true
}

// RequestOpen opens the view of key. Requesting the open key closes it;
// requesting another key closes the open view first. Unknown keys are
// ignored. ViewNone opens the kind the catalog assigns to key.
func (vm *ViewManager) RequestOpen(key string, kind m.ViewKind) {
	a, ok := vm.catalog.Resolve(key)
	if !ok {
		return
	}

	if vm.open != nil && vm.open.Key == key {
		vm.Close()
		return
	}

	if kind == m.ViewNone {
		kind = a.View
	}

	if kind == m.ViewNone {
		return
	}

	vm.Close()

	view, ok := vm.catalog.BuildView(key, kind)
	if !ok {
		vm.logger.Debug("nothing to show", slog.String("key", key), slog.String("kind", string(kind)))
		return
	}

	vm.open = &view
	vm.owned[key] = append([]adapter.Handle(nil), view.Handles...)
	vm.causality = false

	vm.logger.Debug("view opened",
		slog.String("key", key),
		slog.String("kind", string(kind)),
		slog.Int("children", len(view.Children)),
		slog.Int("handles", len(view.Handles)))

	vm.fireToggle(m.ViewToggle{
		State:  m.ViewOpened,
		Key:    key,
		Kind:   kind,
		Radius: view.Radius,
		Center: view.Center,
	})
}

// Close disposes the open view and drops any pending activation.
func (vm *ViewManager) Close() {
	vm.clicks.Cancel()

	if vm.open == nil {
		return
	}

	vm.Dispose(vm.open.Key)
}

// Dispose releases every resource owned by key's view. Disposing twice is
// a no-op.
func (vm *ViewManager) Dispose(key string) {
	handles, ok := vm.owned[key]
	if !ok {
		return
	}

	for _, h := range handles {
		vm.renderer.Dispose(h)
	}

	delete(vm.owned, key)

	if vm.open == nil || vm.open.Key != key {
		return
	}

	kind := vm.open.Kind
	vm.open = nil
	vm.causality = false

	vm.logger.Debug("view closed", slog.String("key", key))

	vm.fireToggle(m.ViewToggle{State: m.ViewClosed, Key: key, Kind: kind})
}

// Shutdown closes everything the manager owns.
func (vm *ViewManager) Shutdown() {
	vm.Close()

	for key := range vm.owned {
		vm.Dispose(key)
	}
}

// ToggleCausality shows or hides the causality curves of the open view
// and returns the new visibility.
func (vm *ViewManager) ToggleCausality() bool {
	if vm.open == nil {
		return false
	}

	vm.causality = !vm.causality

	opacity := float32(0)
	if vm.causality {
		opacity = 1
	}

	for _, h := range vm.open.Causality {
		vm.renderer.SetMaterial(h, adapter.Material{Kind: causalityMaterial, Color: causalityColor, Opacity: opacity})
	}

	return vm.causality
}

// Addressables lists the entities of the active context in slot order:
// the open view's children, or the top-level buildings.
func (vm *ViewManager) Addressables() []m.Addressable {
	if vm.open == nil {
		return vm.catalog.Addressables()
	}

	list := make([]m.Addressable, 0, len(vm.open.Children))
	for _, c := range vm.open.Children {
		list = append(list, childAddressable(c))
	}

	return list
}

// Select makes key the selection, updates the inspection and fires the
// selection hook. Unknown keys are ignored.
func (vm *ViewManager) Select(key string) {
	insp, ok := vm.inspect(key)
	if !ok {
		return
	}

	vm.selected = key
	vm.inspection = &insp

	if vm.onSelect != nil {
		vm.onSelect(insp.LinePtr())
	}
}

// Activate feeds one raw activation (a click) of key. A second activation
// of the same key within the window runs the deep action, opening the
// key's nested view; otherwise key is selected once the window passes.
func (vm *ViewManager) Activate(key string) {
	if _, ok := vm.resolve(key); !ok {
		return
	}

	vm.clicks.Activate(key, vm.Select, vm.deep)
}

func (vm *ViewManager) deep(key string) {
	a, ok := vm.resolve(key)
	if !ok {
		return
	}

	if a.View != m.ViewNone {
		vm.RequestOpen(key, a.View)
	}

	vm.Select(key)
}

// Navigate moves the selection by one step in direction dir (sign only)
// through the active context, wrapping at both ends. With no selection in
// the context it starts from the first entity going forward or the last
// going backward. It returns the new selection.
//
// Navigate selects and inspects the target but never opens its nested view:
// opening one would swap the navigation context mid-traversal.
func (vm *ViewManager) Navigate(dir int) string {
	list := vm.Addressables()
	if len(list) == 0 {
		return ""
	}

	vm.clicks.Cancel()

	step := 1
	if dir < 0 {
		step = -1
	}

	n := len(list)

	current := -1

	for i, a := range list {
		if a.Key == vm.selected {
			current = i
			break
		}
	}

	var next int

	switch {
	case current < 0 && step > 0:
		next = 0
	case current < 0:
		next = n - 1
	default:
		next = ((current+step)%n + n) % n
	}

	vm.Select(list[next].Key)

	return list[next].Key
}

func (vm *ViewManager) resolve(key string) (m.Addressable, bool) {
	if vm.open != nil {
		for _, c := range vm.open.Children {
			if c.Key == key {
				return childAddressable(c), true
			}
		}
	}

	return vm.catalog.Resolve(key)
}

func (vm *ViewManager) inspect(key string) (m.Inspection, bool) {
	if vm.open != nil {
		for _, c := range vm.open.Children {
			if c.Key == key {
				return inspectChild(c), true
			}
		}
	}

	return vm.catalog.Inspect(key)
}

// inspectChild describes a view child. Entities that never merge stand for
// exactly one event, so they are inspected as that raw event.
func inspectChild(c m.PlacedEntity) m.Inspection {
	switch c.Type {
	case m.EntityVariable, m.EntityLoop, m.EntitySummary:
	default:
		if c.FirstStep != nil && len(c.StepIndices) == 1 {
			insp := m.InspectEvent(*c.FirstStep)
			insp.Key = c.Key

			return insp
		}
	}

	return m.InspectEntity(c.Entity)
}

func (vm *ViewManager) fireToggle(t m.ViewToggle) {
	if vm.onViewToggle != nil {
		vm.onViewToggle(t)
	}
}

func childAddressable(c m.PlacedEntity) m.Addressable {
	line, _ := c.Line()

	return m.Addressable{
		Key:      c.Key,
		Label:    c.Label,
		Type:     c.Type,
		Slot:     c.Slot,
		Position: c.Position,
		Line:     line,
	}
}
