package storage

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/nikbrunner/diario/internal/model"
)

//go:embed journal.yaml
var embeddedJournal []byte

// ParseYAML decodes a journal from YAML.
func ParseYAML(data []byte) (*model.Journal, error) {
	var journal model.Journal
	if err := yaml.Unmarshal(data, &journal); err != nil {
		return nil, fmt.Errorf("parse journal YAML: %w", err)
	}
	return &journal, nil
}

// YAMLStorage implements Storage using a YAML file.
type YAMLStorage struct {
	path string
}

// NewYAMLStorage creates a new YAMLStorage with the given file path.
func NewYAMLStorage(path string) *YAMLStorage {
	return &YAMLStorage{path: path}
}

// Path returns the storage file path.
func (s *YAMLStorage) Path() string {
	return s.path
}

// Load reads the journal from the YAML file.
func (s *YAMLStorage) Load() (*model.Journal, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read journal: %w", err)
	}
	return ParseYAML(data)
}

// Save writes the journal to the YAML file.
func (s *YAMLStorage) Save(journal *model.Journal) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(journal)
	if err != nil {
		return fmt.Errorf("marshal journal: %w", err)
	}

	return os.WriteFile(s.path, data, 0644)
}

// EmbeddedStorage serves the journal compiled into the binary.
type EmbeddedStorage struct{}

// Embedded returns the read-only storage for the built-in journal.
func Embedded() EmbeddedStorage {
	return EmbeddedStorage{}
}

// Load decodes the built-in journal.
func (EmbeddedStorage) Load() (*model.Journal, error) {
	return ParseYAML(embeddedJournal)
}

// Save always fails: the built-in journal cannot be changed.
func (EmbeddedStorage) Save(*model.Journal) error {
	return ErrReadOnly
}
