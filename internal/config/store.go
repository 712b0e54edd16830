package config

import (
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
)

const configFileName = "config.json"

// Store persists the configuration document as a JSON file in the app data
// directory. Configuration is a convenience cache, not a source of truth:
// Load silently recovers from anything, Save is best-effort.
type Store struct {
	path string
}

// NewStore creates a store backed by config.json under appDataDir
func NewStore(appDataDir string) *Store {
	return &Store{path: filepath.Join(appDataDir, configFileName)}
}

// Path returns the file path used by this store
func (s *Store) Path() string { return s.path }

// Load reads the document from disk. A missing, unreadable or corrupt file
// falls back to defaults without surfacing an error.
func (s *Store) Load() Document {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			slog.Warn("config: unreadable config file, using defaults", "path", s.path, "err", err)
		}
		return DefaultDocument()
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		slog.Warn("config: corrupt JSON config, using defaults", "path", s.path, "err", err)
		return DefaultDocument()
	}
	return doc
}

// Save writes the document to disk via a temp file and rename. Failures are
// logged, never propagated; the return value lets callers surface a soft
// warning if they care.
func (s *Store) Save(doc Document) bool {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		slog.Error("config: failed to serialize config", "err", err)
		return false
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		slog.Error("config: failed to create config directory", "path", s.path, "err", err)
		return false
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		slog.Error("config: failed to write config", "path", tmpPath, "err", err)
		return false
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		slog.Error("config: failed to replace config", "path", s.path, "err", err)
		return false
	}
	return true
}
