// Package storage implements the local device storage contract: synchronous
// get/set/remove of string values by key, persisted as a single JSON file.
// Writes can fail (disk quota, permissions); callers decide whether that is
// fatal. Draft autosave ignores write errors, alert settings surface them.
package storage

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// ErrNotFound is returned by Get when the key has no value.
var ErrNotFound = errors.New("storage: key not found")

type KV struct {
	mu     sync.RWMutex
	values map[string]string
	file   string
}

// Open loads the store backed by the given file. A missing file yields an
// empty store; a corrupt file is treated as empty rather than failing, since
// local storage is a cache, never the source of truth.
func Open(filePath string) (*KV, error) {
	s := &KV{
		values: make(map[string]string),
		file:   filePath,
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, err
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &s.values); err != nil {
			s.values = make(map[string]string)
		}
	}
	return s, nil
}

func (s *KV) Get(key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (s *KV) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return s.flush()
}

func (s *KV) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.values[key]; !ok {
		return nil
	}
	delete(s.values, key)
	return s.flush()
}

// flush rewrites the whole file; callers hold the write lock. The in-memory
// map is updated even when the write fails, so the most recent value always
// wins for the lifetime of the process.
func (s *KV) flush() error {
	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.file)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(s.file, data, 0644)
}
