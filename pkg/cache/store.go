// Package cache persists the application catalog between invocations so the
// descriptor directories are only rescanned when something in them changed.
// Staleness is judged purely on file system timestamps: the cache file must
// be at least as new as the newest source directory.
package cache

import (
	"encoding/gob"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lvim-tech/qapps/pkg/desktop"
)

// Store reads and writes the catalog blob at a fixed path, gated by the
// modification times of the source directories.
type Store struct {
	Path string
	Dirs []string
}

// New creates a store for the given cache file and source directories.
func New(path string, dirs []string) *Store {
	return &Store{Path: path, Dirs: dirs}
}

// Valid reports whether the cache file exists and is at least as new as
// every existing source directory. Missing directories are ignored; if none
// of the directories exist the cache is invalid.
func (s *Store) Valid() bool {
	fi, err := os.Stat(s.Path)
	if err != nil {
		return false
	}

	var newest time.Time
	found := false
	for _, dir := range s.Dirs {
		di, err := os.Stat(dir)
		if err != nil {
			continue
		}
		found = true
		if di.ModTime().After(newest) {
			newest = di.ModTime()
		}
	}
	if !found {
		return false
	}

	return !fi.ModTime().Before(newest)
}

// Load returns the cached catalog if the cache is valid and decodes cleanly.
// Any failure is reported as a miss so the caller rebuilds.
func (s *Store) Load() (desktop.Catalog, bool) {
	if !s.Valid() {
		return nil, false
	}

	f, err := os.Open(s.Path)
	if err != nil {
		return nil, false
	}
	defer f.Close()

	var cat desktop.Catalog
	if err := gob.NewDecoder(f).Decode(&cat); err != nil {
		log.Debug("cache unreadable, rebuilding", "path", s.Path, "err", err)
		return nil, false
	}
	return cat, true
}

// Save writes the catalog, replacing any previous cache contents.
func (s *Store) Save(cat desktop.Catalog) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0755); err != nil {
		return err
	}

	f, err := os.Create(s.Path)
	if err != nil {
		return err
	}
	if err := gob.NewEncoder(f).Encode(cat); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
