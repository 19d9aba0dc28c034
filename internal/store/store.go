// Package store persists the whole application state as one YAML blob on
// disk. Loading never fails: anything unreadable degrades to the empty
// default state so a corrupted file can't lock the user out of the tool.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lixm/gokao/internal/record"
	"gopkg.in/yaml.v3"
)

//go:generate mockgen -source=store.go -destination=../mocks/store/mock_store.go -package=mock_store Store

// Store loads and saves the full application state.
type Store interface {
	Load() (record.State, error)
	Save(state record.State) error
}

// FileStore is a Store backed by a single YAML file.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore at the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// stateFile mirrors record.State with pointer fields so a missing key can
// be told apart from an empty value at load time.
type stateFile struct {
	Targets          *[]record.ExamTarget            `yaml:"targets"`
	SelectedTargetID *string                         `yaml:"selectedTargetId"`
	Logs             *map[string][]record.SessionLog `yaml:"logs"`
	Reviews          *map[string][]record.ReviewNote `yaml:"reviews"`
}

// Load reads the state blob. A missing file, malformed YAML, or a blob
// lacking the targets or logs fields all yield the empty default state with
// a nil error. A blob that predates review notes (no reviews key at all)
// loads with an empty reviews map and everything else preserved.
func (s *FileStore) Load() (record.State, error) {
	contents, err := os.ReadFile(s.path)
	if err != nil {
		return record.NewState(), nil
	}

	var loaded stateFile
	if err := yaml.Unmarshal(contents, &loaded); err != nil {
		return record.NewState(), nil
	}
	if loaded.Targets == nil || loaded.Logs == nil {
		return record.NewState(), nil
	}

	state := record.State{
		Targets: *loaded.Targets,
		Logs:    *loaded.Logs,
		Reviews: map[string][]record.ReviewNote{},
	}
	if loaded.SelectedTargetID != nil {
		state.SelectedTargetID = *loaded.SelectedTargetID
	}
	if loaded.Reviews != nil {
		state.Reviews = *loaded.Reviews
	}
	if state.Targets == nil {
		state.Targets = []record.ExamTarget{}
	}
	if state.Logs == nil {
		state.Logs = map[string][]record.SessionLog{}
	}
	if state.Reviews == nil {
		state.Reviews = map[string][]record.ReviewNote{}
	}
	return state, nil
}

// Save writes the state atomically: encode to a temp file in the same
// directory, then rename over the target. A failed save leaves the previous
// blob untouched and the caller's in-memory state authoritative.
func (s *FileStore) Save(state record.State) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("os.MkdirAll(%s) > %w", dir, err)
	}

	encoded, err := yaml.Marshal(state)
	if err != nil {
		return fmt.Errorf("yaml.Marshal(state) > %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("os.CreateTemp(%s) > %w", dir, err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(encoded); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("tmp.Write(%s) > %w", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("tmp.Close(%s) > %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("os.Rename(%s) > %w", s.path, err)
	}
	return nil
}
