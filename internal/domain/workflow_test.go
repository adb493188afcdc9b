package domain

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/tracecity/internal/adapter"
	adaptermocks "github.com/mouse-blink/tracecity/internal/adapter/mocks"
	"github.com/mouse-blink/tracecity/internal/controller"
	controllermocks "github.com/mouse-blink/tracecity/internal/controller/mocks"
	m "github.com/mouse-blink/tracecity/internal/model"
)

type workflowFixture struct {
	traces  *adaptermocks.MockTraceStore
	scenes  *adaptermocks.MockSceneStore
	watcher *adaptermocks.MockTraceWatcher
	ui      *controllermocks.MockUI
	wf      Workflow
}

func newWorkflowFixture(t *testing.T) *workflowFixture {
	t.Helper()

	f := &workflowFixture{
		traces:  adaptermocks.NewMockTraceStore(t),
		scenes:  adaptermocks.NewMockSceneStore(t),
		watcher: adaptermocks.NewMockTraceWatcher(t),
		ui:      controllermocks.NewMockUI(t),
	}
	f.wf = NewWorkflow(f.traces, f.scenes, f.watcher, f.ui, discardLogger())

	return f
}

func sampleTraceValue() m.Trace {
	return m.Trace{Events: sampleTrace()}
}

func TestWorkflow_Layout(t *testing.T) {
	f := newWorkflowFixture(t)

	f.traces.EXPECT().LoadAll(mock.Anything, m.Path("a.yaml"), m.Path("b.json")).
		Return([]m.Trace{sampleTraceValue(), {}}, nil)
	f.ui.EXPECT().DisplayLayout(mock.Anything).
		Run(func(reports []m.CityReport) {
			require.Len(t, reports, 2)
			assert.Equal(t, m.Path("a.yaml"), reports[0].Source)
			assert.Len(t, reports[0].Buildings, 7)
			assert.Equal(t, 13, reports[0].Events)
			assert.Equal(t, m.Path("b.json"), reports[1].Source)
			assert.Empty(t, reports[1].Buildings)
		}).
		Return(nil)

	err := f.wf.Layout(context.Background(), LayoutArgs{Paths: []m.Path{"a.yaml", "b.json"}})
	require.NoError(t, err)
}

func TestWorkflow_LayoutNoTraces(t *testing.T) {
	f := newWorkflowFixture(t)

	err := f.wf.Layout(context.Background(), LayoutArgs{})
	assert.ErrorIs(t, err, ErrNoTraces)
}

func TestWorkflow_LayoutLoadError(t *testing.T) {
	f := newWorkflowFixture(t)
	boom := errors.New("boom")

	f.traces.EXPECT().LoadAll(mock.Anything, m.Path("a.yaml")).Return(nil, boom)

	err := f.wf.Layout(context.Background(), LayoutArgs{Paths: []m.Path{"a.yaml"}})
	assert.ErrorIs(t, err, boom)
}

func TestWorkflow_LayoutConfig(t *testing.T) {
	f := newWorkflowFixture(t)

	cfg := m.DefaultLayoutConfig()
	cfg.Building.MaxHeight = 2

	f.traces.EXPECT().LoadConfig(m.Path("city.yaml"), m.DefaultLayoutConfig()).Return(cfg, nil)
	f.traces.EXPECT().LoadAll(mock.Anything, m.Path("a.yaml")).Return([]m.Trace{sampleTraceValue()}, nil)
	f.ui.EXPECT().DisplayLayout(mock.Anything).
		Run(func(reports []m.CityReport) {
			for _, b := range reports[0].Buildings {
				assert.LessOrEqual(t, b.Height, float32(2))
			}
		}).
		Return(nil)

	err := f.wf.Layout(context.Background(), LayoutArgs{Paths: []m.Path{"a.yaml"}, Config: "city.yaml"})
	require.NoError(t, err)
}

func TestWorkflow_LayoutConfigError(t *testing.T) {
	f := newWorkflowFixture(t)
	boom := errors.New("bad config")

	f.traces.EXPECT().LoadConfig(m.Path("city.yaml"), mock.Anything).Return(m.LayoutConfig{}, boom)

	err := f.wf.Layout(context.Background(), LayoutArgs{Paths: []m.Path{"a.yaml"}, Config: "city.yaml"})
	assert.ErrorIs(t, err, boom)
}

func TestWorkflow_Memory(t *testing.T) {
	f := newWorkflowFixture(t)

	f.traces.EXPECT().LoadAll(mock.Anything, m.Path("a.yaml")).Return([]m.Trace{sampleTraceValue()}, nil)
	f.ui.EXPECT().DisplayMemory(mock.Anything, true).
		Run(func(reports []m.CityReport, _ bool) {
			require.Len(t, reports, 1)
			assert.Len(t, reports[0].Addresses, 3)
			assert.Equal(t, 4, reports[0].Fountains)
		}).
		Return(nil)

	err := f.wf.Memory(context.Background(), MemoryArgs{
		LayoutArgs:     LayoutArgs{Paths: []m.Path{"a.yaml"}},
		ConvergentOnly: true,
	})
	require.NoError(t, err)
}

func TestWorkflow_Scene(t *testing.T) {
	f := newWorkflowFixture(t)

	f.traces.EXPECT().Load(m.Path("a.yaml")).Return(sampleTraceValue(), nil)
	f.traces.EXPECT().HashFile(m.Path("a.yaml")).Return("abc123", nil)
	f.scenes.EXPECT().Save(m.Path("out.yaml"), mock.Anything).
		Run(func(_ m.Path, doc adapter.SceneDocument) {
			assert.NotEmpty(t, doc.ID)
			assert.Equal(t, m.Path("a.yaml"), doc.Source)
			assert.Equal(t, "abc123", doc.SourceHash)
			assert.Len(t, doc.Nodes, sampleCityHandles+10)
			assert.Len(t, doc.Addresses, 3)
			require.Len(t, doc.Droplets, 12)
			assert.Equal(t, xKey, doc.Droplets[0].Key)
			assert.Equal(t, float32(0), doc.Droplets[0].Offset)
			require.NotNil(t, doc.View)
			assert.Equal(t, loopKey, doc.View.Key)
			assert.Equal(t, m.ViewBubble, doc.View.Kind)
			assert.Equal(t, 4, doc.View.Children)
		}).
		Return(nil)
	f.ui.EXPECT().DisplayExport(mock.Anything).
		Run(func(summary m.ExportSummary) {
			assert.Equal(t, m.Path("out.yaml"), summary.Output)
			assert.Equal(t, sampleCityHandles+10, summary.Nodes)
			assert.Equal(t, loopKey, summary.OpenView)
			assert.Equal(t, m.ViewBubble, summary.ViewKind)
		}).
		Return(nil)

	err := f.wf.Scene(context.Background(), SceneArgs{Path: "a.yaml", Output: "out.yaml", Open: loopKey})
	require.NoError(t, err)
}

func TestWorkflow_SceneWithoutView(t *testing.T) {
	f := newWorkflowFixture(t)

	f.traces.EXPECT().Load(m.Path("a.yaml")).Return(sampleTraceValue(), nil)
	f.traces.EXPECT().HashFile(m.Path("a.yaml")).Return("abc123", nil)
	f.scenes.EXPECT().Save(m.Path("out.yaml"), mock.MatchedBy(func(doc adapter.SceneDocument) bool {
		return doc.View == nil && len(doc.Nodes) == sampleCityHandles
	})).Return(nil)
	f.ui.EXPECT().DisplayExport(mock.MatchedBy(func(summary m.ExportSummary) bool {
		return summary.OpenView == ""
	})).Return(nil)

	err := f.wf.Scene(context.Background(), SceneArgs{Path: "a.yaml", Output: "out.yaml"})
	require.NoError(t, err)
}

func TestWorkflow_SceneUnknownKey(t *testing.T) {
	f := newWorkflowFixture(t)

	f.traces.EXPECT().Load(m.Path("a.yaml")).Return(sampleTraceValue(), nil)
	f.traces.EXPECT().HashFile(m.Path("a.yaml")).Return("abc123", nil)

	err := f.wf.Scene(context.Background(), SceneArgs{Path: "a.yaml", Output: "out.yaml", Open: "nope"})
	require.ErrorIs(t, err, ErrUnknownKey)
	assert.Contains(t, err.Error(), "nope")
}

func TestWorkflow_SceneSaveError(t *testing.T) {
	f := newWorkflowFixture(t)
	boom := errors.New("disk full")

	f.traces.EXPECT().Load(m.Path("a.yaml")).Return(sampleTraceValue(), nil)
	f.traces.EXPECT().HashFile(m.Path("a.yaml")).Return("abc123", nil)
	f.scenes.EXPECT().Save(m.Path("out.yaml"), mock.Anything).Return(boom)

	err := f.wf.Scene(context.Background(), SceneArgs{Path: "a.yaml", Output: "out.yaml"})
	assert.ErrorIs(t, err, boom)
}

func TestWorkflow_Explore(t *testing.T) {
	f := newWorkflowFixture(t)
	sched := newFakeScheduler()

	f.traces.EXPECT().Load(m.Path("a.yaml")).Return(sampleTraceValue(), nil)
	f.ui.EXPECT().Explore(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, open controller.SessionFactory, reloads <-chan struct{}) error {
			assert.NoError(t, ctx.Err())
			assert.Nil(t, reloads)

			s, err := open(sched)
			require.NoError(t, err)
			defer s.Close()

			assert.Equal(t, "a.yaml", s.Title())

			s.Activate(loopKey)
			sched.Advance(100 * time.Millisecond)
			s.Activate(loopKey)

			view, ok := s.OpenView()
			require.True(t, ok)
			assert.Equal(t, loopKey, view.Key)
			assert.Equal(t, m.ViewBubble, view.Kind)

			return nil
		})

	err := f.wf.Explore(context.Background(), ExploreArgs{Path: "a.yaml"})
	require.NoError(t, err)
}

func TestWorkflow_ExploreWithoutScheduler(t *testing.T) {
	f := newWorkflowFixture(t)

	f.traces.EXPECT().Load(m.Path("a.yaml")).Return(sampleTraceValue(), nil)
	f.ui.EXPECT().Explore(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, open controller.SessionFactory, _ <-chan struct{}) error {
			s, err := open(nil)
			require.NoError(t, err)
			defer s.Close()

			s.Activate(xKey)
			assert.Equal(t, xKey, s.Selected())

			return nil
		})

	require.NoError(t, f.wf.Explore(context.Background(), ExploreArgs{Path: "a.yaml"}))
}

func TestWorkflow_ExploreLoadError(t *testing.T) {
	f := newWorkflowFixture(t)
	boom := errors.New("boom")

	f.traces.EXPECT().Load(m.Path("a.yaml")).Return(m.Trace{}, boom)
	f.ui.EXPECT().Explore(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, open controller.SessionFactory, _ <-chan struct{}) error {
			_, err := open(nil)
			return err
		})

	err := f.wf.Explore(context.Background(), ExploreArgs{Path: "a.yaml"})
	assert.ErrorIs(t, err, boom)
}

func TestWorkflow_ExploreWatch(t *testing.T) {
	f := newWorkflowFixture(t)
	ch := make(chan struct{})

	f.watcher.EXPECT().Watch(mock.Anything, m.Path("a.yaml")).Return((<-chan struct{})(ch), nil)
	f.ui.EXPECT().Explore(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ controller.SessionFactory, reloads <-chan struct{}) error {
			assert.Equal(t, (<-chan struct{})(ch), reloads)
			return nil
		})

	require.NoError(t, f.wf.Explore(context.Background(), ExploreArgs{Path: "a.yaml", Watch: true}))
}

func TestWorkflow_ExploreWatchError(t *testing.T) {
	f := newWorkflowFixture(t)
	boom := errors.New("no such directory")

	f.watcher.EXPECT().Watch(mock.Anything, m.Path("a.yaml")).Return(nil, boom)

	err := f.wf.Explore(context.Background(), ExploreArgs{Path: "a.yaml", Watch: true})
	assert.ErrorIs(t, err, boom)
}
