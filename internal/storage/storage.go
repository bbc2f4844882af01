// /internal/storage/storage.go
package storage

import (
	"fmt"

	"github.com/keshon/datastore"
)

// Storage persists the small set of one-shot markers the agent needs across
// restarts (currently only the first-boot flag). Everything else is in-memory
// by design: a restart forgets session state.
type Storage struct {
	ds *datastore.DataStore
}

func New(filePath string) (*Storage, error) {
	ds, err := datastore.New(filePath)
	if err != nil {
		return nil, err
	}
	return &Storage{ds: ds}, nil
}

func (s *Storage) Close() error {
	return s.ds.Close()
}

// Exists reports whether a marker was created earlier.
func (s *Storage) Exists(name string) bool {
	_, ok := s.ds.Get(markerKey(name))
	return ok
}

// Create writes a marker and flushes it to disk immediately. Markers are
// consulted once at startup, so durability matters more than write cost.
func (s *Storage) Create(name, contents string) error {
	s.ds.Add(markerKey(name), contents)
	if err := s.ds.SaveToFile(); err != nil {
		return fmt.Errorf("failed to persist marker %q: %w", name, err)
	}
	return nil
}

func markerKey(name string) string {
	return "marker:" + name
}
