package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"safety-board/log"
)

// ErrInvalidValue is returned by Set when the value is not valid JSON.
var ErrInvalidValue = errors.New("store value must be valid JSON")

// Store is a local key-value store with string keys and JSON-encoded values.
type Store interface {
	// Get returns the raw value for key and whether it exists.
	Get(key string) ([]byte, bool, error)
	// Set writes value under key, replacing any previous value.
	Set(key string, value []byte) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(key string) error
	// Keys lists the stored keys in sorted order.
	Keys() ([]string, error)
}

// FileStore keeps every key in one JSON object on disk. Reads take a shared
// lock and writes an exclusive one, so several processes can share the file.
type FileStore struct {
	path string
}

// NewFileStore returns a store backed by the file at path. The file is
// created on first write.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Get(key string) ([]byte, bool, error) {
	entries, err := s.readShared()
	if err != nil {
		return nil, false, err
	}
	value, ok := entries[key]
	if !ok {
		return nil, false, nil
	}
	return []byte(value), true, nil
}

func (s *FileStore) Set(key string, value []byte) error {
	if !json.Valid(value) {
		return fmt.Errorf("%w: key %s", ErrInvalidValue, key)
	}
	return s.update(func(entries map[string]json.RawMessage) {
		entries[key] = json.RawMessage(value)
	})
}

func (s *FileStore) Delete(key string) error {
	return s.update(func(entries map[string]json.RawMessage) {
		delete(entries, key)
	})
}

func (s *FileStore) Keys() ([]string, error) {
	entries, err := s.readShared()
	if err != nil {
		return nil, err
	}
	return sortedKeys(entries), nil
}

// readShared reads the store under a shared lock. A missing store directory
// means nothing was saved yet.
func (s *FileStore) readShared() (map[string]json.RawMessage, error) {
	if _, err := os.Stat(filepath.Dir(s.path)); os.IsNotExist(err) {
		return map[string]json.RawMessage{}, nil
	}
	lock := NewFileLock(s.path)
	if err := lock.RLock(); err != nil {
		log.WarningLog.Printf("failed to acquire read lock: %v", err)
		// Continue without lock - better to have stale data than fail
	} else {
		defer lock.Unlock()
	}
	return s.read()
}

// read parses the store file. A missing file is an empty store.
func (s *FileStore) read() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]json.RawMessage{}, nil
		}
		return nil, fmt.Errorf("failed to read store file: %w", err)
	}

	entries := map[string]json.RawMessage{}
	if len(data) == 0 {
		return entries, nil
	}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse store file: %w", err)
	}
	return entries, nil
}

// update applies fn to the stored entries under an exclusive lock and writes
// the result back. A corrupted store file is backed up and replaced.
func (s *FileStore) update(fn func(map[string]json.RawMessage)) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}

	lock := NewFileLock(s.path)
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("failed to acquire write lock: %w", err)
	}
	defer lock.Unlock()

	entries, err := s.read()
	if err != nil {
		log.ErrorLog.Printf("%v", err)
		backupPath := s.path + ".corrupt." + time.Now().Format("20060102-150405")
		if renameErr := os.Rename(s.path, backupPath); renameErr == nil {
			log.InfoLog.Printf("Backed up corrupted store to: %s", backupPath)
		}
		entries = map[string]json.RawMessage{}
	}

	fn(entries)

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal store: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write store file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace store file: %w", err)
	}
	return nil
}

// MemoryStore is an in-process Store. Values are stored as given, without
// JSON validation, so tests can plant malformed payloads.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string][]byte
	writes  int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: map[string][]byte{}}
}

func (m *MemoryStore) Get(key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.entries[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), value...), true, nil
}

func (m *MemoryStore) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = append([]byte(nil), value...)
	m.writes++
	return nil
}

func (m *MemoryStore) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}

func (m *MemoryStore) Keys() ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return sortedKeys(m.entries), nil
}

// Writes returns how many Set calls the store has seen.
func (m *MemoryStore) Writes() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.writes
}

func sortedKeys[V any](entries map[string]V) []string {
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
