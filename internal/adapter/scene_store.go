package adapter

import (
	"fmt"
	"os"
	"path/filepath"

	"cogentcore.org/core/math32"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/tracecity/internal/model"
)

// SceneView describes the nested view open at export time.
type SceneView struct {
	Key      string     `yaml:"key"`
	Kind     m.ViewKind `yaml:"kind"`
	Radius   float32    `yaml:"radius"`
	Children int        `yaml:"children"`
}

// SceneDroplet is one fountain particle. Position is where it sits at
// time zero; a player advances it along its fountain curve at Speed.
type SceneDroplet struct {
	Key      string         `yaml:"key"`
	Offset   float32        `yaml:"offset"`
	Speed    float32        `yaml:"speed"`
	Position math32.Vector3 `yaml:"position"`
}

// SceneDocument is an exported scene.
type SceneDocument struct {
	ID         string          `yaml:"id"`
	Source     m.Path          `yaml:"source"`
	SourceHash string          `yaml:"sourceHash,omitempty"`
	View       *SceneView      `yaml:"view,omitempty"`
	Addresses  []m.AddressNode `yaml:"addresses,omitempty"`
	Droplets   []SceneDroplet  `yaml:"droplets,omitempty"`
	Nodes      []SceneNode     `yaml:"nodes"`
}

// NewSceneDocument snapshots the live nodes of scene under a fresh id.
func NewSceneDocument(source m.Path, hash string, scene *SceneRenderer) SceneDocument {
	return SceneDocument{
		ID:         uuid.NewString(),
		Source:     source,
		SourceHash: hash,
		Nodes:      scene.Nodes(),
	}
}

// SceneStore persists exported scenes.
type SceneStore interface {
	Save(path m.Path, doc SceneDocument) error
	Load(path m.Path) (SceneDocument, error)
}

// LocalSceneStore writes scenes as YAML files.
type LocalSceneStore struct{}

// NewLocalSceneStore creates a LocalSceneStore.
func NewLocalSceneStore() *LocalSceneStore {
	return &LocalSceneStore{}
}

// Save writes doc to path, creating parent directories.
func (s *LocalSceneStore) Save(path m.Path, doc SceneDocument) error {
	if dir := filepath.Dir(string(path)); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", path, err)
		}
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode scene: %w", err)
	}

	if err := os.WriteFile(string(path), data, 0o600); err != nil {
		return fmt.Errorf("failed to write scene %s: %w", path, err)
	}

	return nil
}

// Load reads a scene written by Save.
func (s *LocalSceneStore) Load(path m.Path) (SceneDocument, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return SceneDocument{}, fmt.Errorf("failed to read scene %s: %w", path, err)
	}

	var doc SceneDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return SceneDocument{}, fmt.Errorf("failed to decode scene %s: %w", path, err)
	}

	return doc, nil
}
