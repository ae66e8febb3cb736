package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
)

// FileStore persists AppState as a JSON settings file.
type FileStore struct {
	mu      sync.RWMutex
	baseDir string
}

// NewFileStore creates a store rooted at baseDir.
// If baseDir is empty, the XDG config directory is used
// ($XDG_CONFIG_HOME/versewall, falling back to ~/.config/versewall),
// the same location the CLI reads its config file from.
func NewFileStore(baseDir string) (*FileStore, error) {
	if baseDir == "" {
		if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
			baseDir = filepath.Join(configHome, "versewall")
		} else {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, fmt.Errorf("get home dir: %w", err)
			}
			baseDir = filepath.Join(home, ".config", "versewall")
		}
	}
	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}
	return &FileStore{baseDir: baseDir}, nil
}

// Path returns the settings file location.
func (s *FileStore) Path() string {
	return filepath.Join(s.baseDir, "settings.json")
}

// Dir returns the base directory for state files.
func (s *FileStore) Dir() string {
	return s.baseDir
}

// Load reads the persisted state. A missing file yields the defaults;
// invalid fields in an existing file are repaired rather than rejected.
func (s *FileStore) Load() (AppState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return NewAppState(), nil
		}
		return AppState{}, fmt.Errorf("read state file: %w", err)
	}

	var st AppState
	if err := json.Unmarshal(data, &st); err != nil {
		return AppState{}, fmt.Errorf("parse state file: %w", err)
	}
	st.normalize()
	return st, nil
}

// Save writes the state atomically via a temp file rename.
func (s *FileStore) Save(st AppState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	tmp := filepath.Join(s.baseDir, "settings."+uuid.NewString()+".tmp")
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	if err := os.Rename(tmp, s.Path()); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace state file: %w", err)
	}
	return nil
}
