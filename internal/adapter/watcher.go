package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	m "github.com/mouse-blink/tracecity/internal/model"
)

// TraceWatcher reports changes to a trace file.
type TraceWatcher interface {
	// Watch sends on the returned channel whenever path is written or
	// recreated. Bursts of events coalesce into one send. The channel is
	// closed when ctx is done.
	Watch(ctx context.Context, path m.Path) (<-chan struct{}, error)
}

// LocalTraceWatcher watches the local filesystem with fsnotify.
type LocalTraceWatcher struct {
	logger *slog.Logger
}

// NewLocalTraceWatcher creates a LocalTraceWatcher. A nil logger uses slog.Default.
func NewLocalTraceWatcher(logger *slog.Logger) *LocalTraceWatcher {
	if logger == nil {
		logger = slog.Default()
	}

	return &LocalTraceWatcher{logger: logger}
}

// Watch implements TraceWatcher. The parent directory is watched so that
// editors replacing the file by rename are still seen.
func (w *LocalTraceWatcher) Watch(ctx context.Context, path m.Path) (<-chan struct{}, error) {
	abs, err := filepath.Abs(string(path))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", path, err)
	}

	changes := make(chan struct{}, 1)

	go w.loop(ctx, watcher, abs, changes)

	w.logger.Debug("watching trace", slog.String("path", abs))

	return changes, nil
}

func (w *LocalTraceWatcher) loop(ctx context.Context, watcher *fsnotify.Watcher, target string, changes chan<- struct{}) {
	defer close(changes)
	defer func() { _ = watcher.Close() }()

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}

			if !relevant(event, target) {
				continue
			}

			select {
			case changes <- struct{}{}:
			default:
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}

			w.logger.Warn("trace watcher error", slog.Any("error", err))
		case <-ctx.Done():
			w.logger.Debug("trace watcher stopping", slog.String("path", target))
			return
		}
	}
}

func relevant(event fsnotify.Event, target string) bool {
	if filepath.Clean(event.Name) != target {
		return false
	}

	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}
