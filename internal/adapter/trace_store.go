package adapter

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/tracecity/internal/model"
)

// ErrUnsupportedFormat is returned for trace or config files that are
// neither YAML nor JSON.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// TraceStore loads traces and layout configuration from disk. It hides
// direct `os` access so commands can be tested without touching the disk.
type TraceStore interface {
	// Load reads one trace file. The file holds either a bare event list or
	// an object with `events` and an optional `snapshot`.
	Load(path m.Path) (m.Trace, error)

	// LoadAll reads several trace files concurrently, keeping input order.
	LoadAll(ctx context.Context, paths ...m.Path) ([]m.Trace, error)

	// LoadConfig overlays the YAML file at path on base.
	LoadConfig(path m.Path, base m.LayoutConfig) (m.LayoutConfig, error)

	// HashFile returns a stable SHA-256 fingerprint of the file at path.
	HashFile(path m.Path) (string, error)
}

// LocalTraceStore reads traces from the local filesystem.
type LocalTraceStore struct {
	logger *slog.Logger
}

// NewLocalTraceStore constructs a LocalTraceStore. A nil logger uses slog.Default.
func NewLocalTraceStore(logger *slog.Logger) *LocalTraceStore {
	if logger == nil {
		logger = slog.Default()
	}

	return &LocalTraceStore{logger: logger}
}

// Load reads and decodes one trace file.
func (s *LocalTraceStore) Load(path m.Path) (m.Trace, error) {
	format, ok := formatOf(path)
	if !ok {
		return m.Trace{}, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}

	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.Trace{}, fmt.Errorf("failed to read trace %s: %w", path, err)
	}

	trace, err := DecodeTrace(data, format)
	if err != nil {
		return m.Trace{}, fmt.Errorf("failed to decode trace %s: %w", path, err)
	}

	if n := reindex(trace.Events); n > 0 {
		s.logger.Warn("trace indices did not match positions; reindexed",
			slog.String("path", string(path)),
			slog.Int("events", n))
	}

	s.logger.Debug("trace loaded",
		slog.String("path", string(path)),
		slog.Int("events", len(trace.Events)),
		slog.Bool("snapshot", trace.Snapshot != nil))

	return trace, nil
}

// LoadAll reads paths concurrently. The first failure cancels the rest.
func (s *LocalTraceStore) LoadAll(ctx context.Context, paths ...m.Path) ([]m.Trace, error) {
	traces := make([]m.Trace, len(paths))

	g, ctx := errgroup.WithContext(ctx)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			trace, err := s.Load(path)
			if err != nil {
				return err
			}

			traces[i] = trace

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return traces, nil
}

// LoadConfig overlays the YAML file at path on base. Fields absent from the
// file keep their base values.
func (s *LocalTraceStore) LoadConfig(path m.Path, base m.LayoutConfig) (m.LayoutConfig, error) {
	if format, ok := formatOf(path); !ok || format != FormatYAML {
		return base, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}

	data, err := os.ReadFile(string(path))
	if err != nil {
		return base, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	return cfg, nil
}

// HashFile returns the hex SHA-256 of the file at path.
func (s *LocalTraceStore) HashFile(path m.Path) (string, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return "", fmt.Errorf("hash error for %s: %w", path, err)
	}

	sum := sha256.Sum256(data)

	return fmt.Sprintf("%x", sum), nil
}

// Format is a trace file encoding.
type Format string

// Supported trace file formats.
const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// DecodeTrace decodes a trace document: either a bare list of events or an
// object with `events` and an optional `snapshot`.
func DecodeTrace(data []byte, format Format) (m.Trace, error) {
	switch format {
	case FormatJSON:
		return decodeJSONTrace(data)
	case FormatYAML:
		return decodeYAMLTrace(data)
	}

	return m.Trace{}, ErrUnsupportedFormat
}

func decodeJSONTrace(data []byte) (m.Trace, error) {
	var trace m.Trace

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return trace, nil
	}

	if trimmed[0] == '[' {
		err := json.Unmarshal(trimmed, &trace.Events)
		return trace, err
	}

	err := json.Unmarshal(trimmed, &trace)

	return trace, err
}

func decodeYAMLTrace(data []byte) (m.Trace, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return m.Trace{}, err
	}

	if len(root.Content) == 0 {
		return m.Trace{}, nil
	}

	doc := root.Content[0]

	var trace m.Trace

	switch doc.Kind {
	case yaml.SequenceNode:
		if err := doc.Decode(&trace.Events); err != nil {
			return m.Trace{}, err
		}
	case yaml.MappingNode:
		if err := doc.Decode(&trace); err != nil {
			return m.Trace{}, err
		}
	default:
		return m.Trace{}, fmt.Errorf("trace document must be a list or a mapping: %w", ErrUnsupportedFormat)
	}

	return trace, nil
}

// reindex makes every event's Index equal its position and returns how
// many events were changed.
func reindex(events []m.TraceEvent) int {
	changed := 0

	for i := range events {
		if events[i].Index != i {
			events[i].Index = i
			changed++
		}
	}

	return changed
}

func formatOf(path m.Path) (Format, bool) {
	switch strings.ToLower(filepath.Ext(string(path))) {
	case ".yaml", ".yml":
		return FormatYAML, true
	case ".json":
		return FormatJSON, true
	}

	return "", false
}
