package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mouse-blink/tracecity/internal/adapter"
	"github.com/mouse-blink/tracecity/internal/controller"
	m "github.com/mouse-blink/tracecity/internal/model"
)

// ErrNoTraces is returned when a command gets no trace paths.
var ErrNoTraces = errors.New("no trace files given")

// ErrUnknownKey is returned when a requested group key is not in the city.
var ErrUnknownKey = errors.New("unknown group key")

// LayoutArgs holds the arguments of Workflow.Layout.
type LayoutArgs struct {
	Paths  []m.Path
	Config m.Path
}

// MemoryArgs holds the arguments of Workflow.Memory.
type MemoryArgs struct {
	LayoutArgs
	ConvergentOnly bool
}

// SceneArgs holds the arguments of Workflow.Scene.
type SceneArgs struct {
	Path   m.Path
	Config m.Path
	Output m.Path
	// Open is the group key whose nested view is open in the export.
	Open string
	// Kind overrides the nested view kind of Open.
	Kind m.ViewKind
}

// ExploreArgs holds the arguments of Workflow.Explore.
type ExploreArgs struct {
	Path   m.Path
	Config m.Path
	Watch  bool
}

// Workflow defines the trace city operations behind the CLI.
type Workflow interface {
	Layout(ctx context.Context, args LayoutArgs) error
	Memory(ctx context.Context, args MemoryArgs) error
	Scene(ctx context.Context, args SceneArgs) error
	Explore(ctx context.Context, args ExploreArgs) error
}

type workflow struct {
	traces  adapter.TraceStore
	scenes  adapter.SceneStore
	watcher adapter.TraceWatcher
	ui      controller.UI
	colors  adapter.ColorFunc
	logger  *slog.Logger
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	traces adapter.TraceStore,
	scenes adapter.SceneStore,
	watcher adapter.TraceWatcher,
	ui controller.UI,
	logger *slog.Logger,
) Workflow {
	if logger == nil {
		logger = slog.Default()
	}

	return &workflow{
		traces:  traces,
		scenes:  scenes,
		watcher: watcher,
		ui:      ui,
		colors:  adapter.NewHashColorFunc(),
		logger:  logger,
	}
}

// Layout lays out every trace and displays its buildings.
func (w *workflow) Layout(ctx context.Context, args LayoutArgs) error {
	reports, err := w.reports(ctx, args)
	if err != nil {
		return err
	}

	return w.ui.DisplayLayout(reports)
}

// Memory lays out every trace and displays its address layer.
func (w *workflow) Memory(ctx context.Context, args MemoryArgs) error {
	reports, err := w.reports(ctx, args.LayoutArgs)
	if err != nil {
		return err
	}

	return w.ui.DisplayMemory(reports, args.ConvergentOnly)
}

// Scene builds one trace's scene, optionally with a nested view open, and
// writes it through the scene store.
func (w *workflow) Scene(_ context.Context, args SceneArgs) error {
	cfg, err := w.config(args.Config)
	if err != nil {
		return err
	}

	trace, err := w.traces.Load(args.Path)
	if err != nil {
		return err
	}

	hash, err := w.traces.HashFile(args.Path)
	if err != nil {
		return err
	}

	scene := adapter.NewSceneRenderer()
	city := NewCity(trace, scene, w.colors, cfg, w.logger)
	city.Build()
	defer city.Dispose()

	views := NewViewManager(city, scene, WithViewLogger(w.logger))
	defer views.Shutdown()

	if args.Open != "" {
		if _, ok := city.Resolve(args.Open); !ok {
			return fmt.Errorf("%w: %s", ErrUnknownKey, args.Open)
		}

		views.RequestOpen(args.Open, args.Kind)
	}

	doc := adapter.NewSceneDocument(args.Path, hash, scene)
	doc.Addresses = city.AddressNodes()

	for _, d := range city.Droplets() {
		doc.Droplets = append(doc.Droplets, adapter.SceneDroplet{
			Key:      d.Key,
			Offset:   d.Offset,
			Speed:    d.Speed,
			Position: d.Position(0),
		})
	}

	summary := m.ExportSummary{
		ID:     doc.ID,
		Output: args.Output,
		Source: args.Path,
		Nodes:  len(doc.Nodes),
	}

	if view, ok := views.Open(); ok {
		doc.View = &adapter.SceneView{
			Key:      view.Key,
			Kind:     view.Kind,
			Radius:   view.Radius,
			Children: len(view.Children),
		}
		summary.OpenView = view.Key
		summary.ViewKind = view.Kind
	}

	if err := w.scenes.Save(args.Output, doc); err != nil {
		return err
	}

	return w.ui.DisplayExport(summary)
}

// Explore hands an interactive session to the UI. With Watch set, every
// change to the trace file rebuilds the session.
func (w *workflow) Explore(ctx context.Context, args ExploreArgs) error {
	cfg, err := w.config(args.Config)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var reloads <-chan struct{}

	if args.Watch {
		reloads, err = w.watcher.Watch(ctx, args.Path)
		if err != nil {
			return err
		}
	}

	open := func(sched m.Scheduler) (controller.Session, error) {
		trace, err := w.traces.Load(args.Path)
		if err != nil {
			return nil, err
		}

		scene := adapter.NewSceneRenderer()
		city := NewCity(trace, scene, w.colors, cfg, w.logger)
		city.Build()

		opts := []ViewOption{
			WithViewLogger(w.logger),
			WithDoubleClickWindow(cfg.Interaction.DoubleClickWindow),
		}
		if sched != nil {
			opts = append(opts, WithScheduler(sched, m.SystemClock{}))
		}

		views := NewViewManager(city, scene, opts...)
		views.OnSelect(func(line *int) {
			if line != nil {
				w.logger.Debug("selection", slog.Int("line", *line))
			}
		})
		views.OnViewToggle(func(t m.ViewToggle) {
			w.logger.Debug("view toggled",
				slog.String("state", string(t.State)),
				slog.String("key", t.Key),
				slog.Float64("radius", float64(t.Radius)))
		})

		return newExploreSession(args.Path, city, views), nil
	}

	return w.ui.Explore(ctx, open, reloads)
}

func (w *workflow) config(path m.Path) (m.LayoutConfig, error) {
	base := m.DefaultLayoutConfig()
	if path == "" {
		return base, nil
	}

	return w.traces.LoadConfig(path, base)
}

func (w *workflow) reports(ctx context.Context, args LayoutArgs) ([]m.CityReport, error) {
	if len(args.Paths) == 0 {
		return nil, ErrNoTraces
	}

	cfg, err := w.config(args.Config)
	if err != nil {
		return nil, err
	}

	traces, err := w.traces.LoadAll(ctx, args.Paths...)
	if err != nil {
		return nil, err
	}

	reports := make([]m.CityReport, len(traces))

	for i, trace := range traces {
		city := NewCity(trace, adapter.NewSceneRenderer(), w.colors, cfg, w.logger)
		city.Build()
		reports[i] = city.Report(args.Paths[i])
		city.Dispose()
	}

	return reports, nil
}
