// Copyright 2025 The Vote Simplified Authors
// SPDX-License-Identifier: Apache-2.0

package districts

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/coletl/vote-simplified-us/civic"
)

// LocalStore keeps a per-user copy of the last district record outside
// the database so lookups survive without one. It mirrors what the
// repository stores but needs no connection.
type LocalStore interface {
	Load(userID string) (rec civic.DistrictRecord, found bool, err error)
	Save(userID string, rec civic.DistrictRecord) error
}

// MemoryStore is a process-local LocalStore for tests and ephemeral
// runs.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]civic.DistrictRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]civic.DistrictRecord)}
}

func (s *MemoryStore) Load(userID string) (civic.DistrictRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[userID]

	return rec, ok, nil
}

func (s *MemoryStore) Save(userID string, rec civic.DistrictRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[userID] = rec

	return nil
}

// FileStore is a LocalStore backed by a single JSON file holding all
// user records. Writes rewrite the file atomically.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a FileStore at dir/userDistricts.json.
func NewFileStore(dir string) *FileStore {
	return &FileStore{path: filepath.Join(dir, "userDistricts.json")}
}

func (s *FileStore) read() (map[string]civic.DistrictRecord, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]civic.DistrictRecord{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("reading district store: %w", err)
	}

	records := make(map[string]civic.DistrictRecord)
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing district store: %w", err)
	}

	return records, nil
}

func (s *FileStore) Load(userID string) (civic.DistrictRecord, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.read()
	if err != nil {
		return civic.DistrictRecord{}, false, err
	}

	rec, ok := records[userID]

	return rec, ok, nil
}

func (s *FileStore) Save(userID string, rec civic.DistrictRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.read()
	if err != nil {
		return err
	}

	records[userID] = rec

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding district store: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing district store: %w", err)
	}

	return os.Rename(tmp, s.path)
}
