package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nikbrunner/diario/internal/model"
)

// ErrReadOnly is returned by Save on storages that cannot be written.
var ErrReadOnly = errors.New("storage is read-only")

// Storage defines the interface for loading and saving a journal.
type Storage interface {
	Load() (*model.Journal, error)
	Save(journal *model.Journal) error
}

// LoadCatalog loads a journal from s and validates it into a Catalog.
func LoadCatalog(s Storage) (*model.Catalog, error) {
	journal, err := s.Load()
	if err != nil {
		return nil, err
	}
	return model.NewCatalog(*journal)
}

// OpenStorage picks a backend for path by file extension.
// An empty path selects the embedded journal.
func OpenStorage(path string) (Storage, error) {
	if path == "" {
		return Embedded(), nil
	}

	path = ExpandHome(path)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return NewYAMLStorage(path), nil
	case ".json":
		return NewJSONStorage(path), nil
	case ".db", ".sqlite", ".sqlite3":
		// Only dump creates databases; loading a missing one is an error.
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("open catalog: %w", err)
		}
		return NewSQLiteStorage(path)
	default:
		return nil, fmt.Errorf("unsupported catalog file %q (want .yaml, .json or .db)", path)
	}
}

// JSONStorage implements Storage using a JSON file.
type JSONStorage struct {
	path string
}

// NewJSONStorage creates a new JSONStorage with the given file path.
func NewJSONStorage(path string) *JSONStorage {
	return &JSONStorage{path: path}
}

// Path returns the storage file path.
func (s *JSONStorage) Path() string {
	return s.path
}

// Load reads the journal from the JSON file.
func (s *JSONStorage) Load() (*model.Journal, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read journal: %w", err)
	}

	var journal model.Journal
	if err := json.Unmarshal(data, &journal); err != nil {
		return nil, fmt.Errorf("parse journal JSON: %w", err)
	}

	return &journal, nil
}

// Save writes the journal to the JSON file.
// Creates the directory if it doesn't exist.
func (s *JSONStorage) Save(journal *model.Journal) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(journal, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0644)
}

// ExpandHome replaces a leading "~/" with the user's home directory.
func ExpandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
