package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-desk-widget/internal/logger"
)

// MemoryDSN selects a non-persistent in-memory store.
const MemoryDSN = ":memory:"

const (
	tempFilePrefix = "widget-tmp-"
	corruptSuffix  = ".corrupt"
)

type fileStorage struct {
	path     string
	inMemory bool
	logger   *logger.Logger

	mu    sync.RWMutex
	items map[string]string
}

type filePersistedState struct {
	Items map[string]string `json:"items"`
}

// NewFileStorage returns a [KeyValueStorage] kept in a JSON file at path,
// or only in memory when path is empty or [MemoryDSN]. A file that cannot be
// decoded is renamed with a ".corrupt" suffix and the store starts empty.
func NewFileStorage(path string, log *logger.Logger) (KeyValueStorage, error) {
	if path == "" {
		path = MemoryDSN
	}
	if log == nil {
		log = logger.Nop()
	}

	s := &fileStorage{
		path:     path,
		inMemory: path == MemoryDSN,
		logger:   log,
		items:    make(map[string]string),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *fileStorage) GetItem(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.items[key]
	return value, ok, nil
}

func (s *fileStorage) SetItem(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, existed := s.items[key]
	s.items[key] = value
	if err := s.persist(); err != nil {
		if existed {
			s.items[key] = prev
		} else {
			delete(s.items, key)
		}
		return err
	}
	return nil
}

func (s *fileStorage) RemoveItem(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, existed := s.items[key]
	if !existed {
		return nil
	}
	delete(s.items, key)
	if err := s.persist(); err != nil {
		s.items[key] = prev
		return err
	}
	return nil
}

func (s *fileStorage) load() error {
	if s.inMemory {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read local storage file: %w", err)
	}

	var st filePersistedState
	if err = json.Unmarshal(data, &st); err != nil {
		aside := s.path + corruptSuffix
		s.logger.Warn().Err(err).Str("func", "fileStorage.load").Str("path", s.path).
			Str("moved_to", aside).Msg("local storage file is corrupt, starting empty")
		if err = os.Rename(s.path, aside); err != nil {
			s.logger.Err(err).Str("func", "fileStorage.load").Msg("failed to move corrupt local storage file aside")
		}
		return nil
	}
	if st.Items != nil {
		s.items = st.Items
	}

	return nil
}

func (s *fileStorage) persist() error {
	if s.inMemory {
		return nil
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create local storage dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(filePersistedState{Items: s.items}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode local storage: %w", err)
	}

	if err = writeFileAtomic(s.path, payload, 0o600); err != nil {
		return fmt.Errorf("write local storage file: %w", err)
	}

	return nil
}

// writeFileAtomic writes data to a temp file in the target directory and
// renames it over filename, so readers never see a partial file.
func writeFileAtomic(filename string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(filename), tempFilePrefix+"*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err = os.Chmod(tmp.Name(), perm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err = os.Rename(tmp.Name(), filename); err != nil {
		return fmt.Errorf("rename temp file to %s: %w", filename, err)
	}

	return nil
}
