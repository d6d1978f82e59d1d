// File: utils/storage.go
package utils

import (
	"encoding/json"
	"os"
	"sync"

	"go.uber.org/zap"
)

// LocalStore is a simple string key-value store persisted as a JSON file.
// It backs the legacy local configuration format (working hours and the
// old partial-day day-off records).
type LocalStore struct {
	mu     sync.Mutex
	path   string
	values map[string]string
}

// NewLocalStore opens the store at path, loading any existing contents.
// A missing or corrupt file is not an error: the store starts empty.
func NewLocalStore(path string) *LocalStore {
	s := &LocalStore{
		path:   path,
		values: make(map[string]string),
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			GetLogger().Warn("local store: failed to read file", zap.String("path", path), zap.Error(err))
		}
		return s
	}
	if err := json.Unmarshal(data, &s.values); err != nil {
		GetLogger().Warn("local store: corrupt file, starting empty", zap.String("path", path), zap.Error(err))
		s.values = make(map[string]string)
	}
	return s
}

// GetItem returns the value stored under key, and whether it was present.
func (s *LocalStore) GetItem(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok
}

// SetItem stores value under key and persists the store.
func (s *LocalStore) SetItem(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return s.flush()
}

// RemoveItem deletes key and persists the store.
func (s *LocalStore) RemoveItem(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return s.flush()
}

func (s *LocalStore) flush() error {
	data, err := json.Marshal(s.values)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}
