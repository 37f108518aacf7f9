// Package preferences persists the display language and the list of
// recently printed directories.
package preferences

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bethropolis/dir-printer/internal/utils"
)

const (
	// FileName is the preferences file inside the preferences directory.
	FileName = "configuration.json"
	// MaxRecent bounds the recent-directory list.
	MaxRecent = 5

	defaultLanguage  = "en"
	backupTimeLayout = "20060102_150405"
)

// Store is a loaded preferences file. Mutations are written through
// immediately.
type Store struct {
	mu     sync.Mutex
	dir    string
	path   string
	doc    Document
	now    func() time.Time
	logger utils.Logger
}

// DefaultDir returns $HOME/.dir-printer.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("preferences: determine home directory: %w", err)
	}
	return filepath.Join(home, ".dir-printer"), nil
}

// Open loads the preferences in dir. A missing file yields defaults; a file
// that cannot be parsed is copied aside as a timestamped backup and replaced
// by defaults on the next save.
func Open(dir string, opts ...Option) (*Store, error) {
	s := &Store{
		dir:    dir,
		path:   filepath.Join(dir, FileName),
		now:    time.Now,
		logger: utils.NoopLogger{},
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("preferences: create directory %s: %w", dir, err)
	}

	data, err := os.ReadFile(s.path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		s.doc = s.defaults()
		return s, nil
	case err != nil:
		return nil, fmt.Errorf("preferences: read %s: %w", s.path, err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		backup, backupErr := s.backup(data)
		if backupErr != nil {
			s.logger.Warn("preferences: %s is corrupt and could not be backed up: %v", s.path, backupErr)
		} else {
			s.logger.Warn("preferences: %s is corrupt (%v); saved a copy to %s", s.path, err, backup)
		}
		s.doc = s.defaults()
		return s, nil
	}

	s.doc = s.repair(doc)
	return s, nil
}

// Path returns the preferences file path.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) defaults() Document {
	now := Timestamp{s.now()}
	return Document{
		Language:    defaultLanguage,
		RecentFiles: []RecentEntry{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// repair drops recent entries whose directory is gone and fills in missing
// fields.
func (s *Store) repair(doc Document) Document {
	if doc.Language == "" {
		doc.Language = defaultLanguage
	}
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = Timestamp{s.now()}
	}
	if doc.UpdatedAt.IsZero() {
		doc.UpdatedAt = doc.CreatedAt
	}

	kept := make([]RecentEntry, 0, len(doc.RecentFiles))
	for _, entry := range doc.RecentFiles {
		if entry.DirectoryPath == "" {
			continue
		}
		if _, err := os.Stat(entry.DirectoryPath); err != nil {
			s.logger.Debug("preferences: dropping recent directory %s: %v", entry.DirectoryPath, err)
			continue
		}
		kept = append(kept, entry)
	}
	doc.RecentFiles = kept
	return doc
}

func (s *Store) backup(data []byte) (string, error) {
	backupPath := fmt.Sprintf("%s.%s.backup", s.path, s.now().Format(backupTimeLayout))
	if err := os.WriteFile(backupPath, data, 0o644); err != nil {
		return "", fmt.Errorf("preferences: write backup %s: %w", backupPath, err)
	}
	return backupPath, nil
}

// save must be called with s.mu held.
func (s *Store) save() error {
	s.doc.UpdatedAt = Timestamp{s.now()}
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("preferences: encode: %w", err)
	}
	if err := lockAndWrite(s.path, data); err != nil {
		return err
	}
	s.logger.Debug("preferences: saved %s", s.path)
	return nil
}

// Language returns the stored language code.
func (s *Store) Language() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Language
}

// SetLanguage stores the language code and saves.
func (s *Store) SetLanguage(code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Language = code
	return s.save()
}

// RecentFiles returns the recent directories, most recent first.
func (s *Store) RecentFiles() []RecentEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]RecentEntry, len(s.doc.RecentFiles))
	copy(out, s.doc.RecentFiles)
	return out
}

// Last returns the most recent directory.
func (s *Store) Last() (RecentEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.doc.RecentFiles) == 0 {
		return RecentEntry{}, false
	}
	return s.doc.RecentFiles[0], true
}

// AddRecent moves dir to the front of the recent list, replacing an older
// entry for the same directory, and trims the list to MaxRecent.
func (s *Store) AddRecent(dir string, cfg RecentConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	recent := make([]RecentEntry, 0, len(s.doc.RecentFiles)+1)
	recent = append(recent, RecentEntry{
		DirectoryPath: dir,
		Config:        cfg,
		CreatedAt:     Timestamp{s.now()},
	})
	for _, entry := range s.doc.RecentFiles {
		if entry.DirectoryPath != dir {
			recent = append(recent, entry)
		}
	}
	if len(recent) > MaxRecent {
		recent = recent[:MaxRecent]
	}
	s.doc.RecentFiles = recent
	return s.save()
}

// ClearRecent empties the recent list and saves.
func (s *Store) ClearRecent() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.RecentFiles = []RecentEntry{}
	return s.save()
}
