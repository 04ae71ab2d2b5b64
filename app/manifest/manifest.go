package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/transactify/transactify/app/entity"
)

// FileName is the manifest file written into the project directory.
const FileName = ".transactify.json"

var ErrManifestNotFound = errors.New("no .transactify.json found, run init first")

// Store reads and writes the project manifest of one directory. Every
// mutation reads the whole file, changes it in memory, and rewrites the
// whole file. There is no locking; concurrent writers can lose updates.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) Path() string {
	return filepath.Join(s.dir, FileName)
}

func (s *Store) Load() (*entity.ProjectManifest, error) {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrManifestNotFound
		}
		return nil, err
	}

	var m entity.ProjectManifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse %s: %w", FileName, err)
	}
	if m.Providers == nil {
		m.Providers = map[string]entity.Credentials{}
	}
	return &m, nil
}

func (s *Store) Save(m *entity.ProjectManifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.Path(), data, 0o644)
}

// Init writes a fresh manifest carrying the configured providers and URLs
// from the global settings and an empty catalogue.
func (s *Store) Init(settings *entity.GlobalSettings) (*entity.ProjectManifest, error) {
	m := entity.NewProjectManifest(settings)
	if err := s.Save(m); err != nil {
		return nil, err
	}
	return m, nil
}
