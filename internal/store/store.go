// Package store provides on-disk persistence for mini.
// Staged files, commit snapshots, branch refs and HEAD live as plain files
// under the .mini directory; ref movements are journaled in an embedded
// SQLite reflog.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kilupskalvis/mini/internal/config"
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a commit, file or branch is missing on disk.
var ErrNotFound = errors.New("not found")

// Store represents the repository's on-disk state rooted at a .mini directory.
type Store struct {
	root string
	db   *sql.DB
}

// New opens the store rooted at miniPath. The reflog database is opened
// lazily on first use.
func New(miniPath string) *Store {
	return &Store{root: miniPath}
}

// Root returns the .mini directory this store is bound to.
func (s *Store) Root() string {
	return s.root
}

// Close releases the reflog database handle.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Initialize creates the repository layout: the staging, commits and
// branches directories, an empty HEAD file and the reflog schema.
// It does not check for an existing layout.
func (s *Store) Initialize() error {
	dirs := []string{
		s.root,
		s.stagingDir(),
		s.commitsDir(),
		s.branchesDir(),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", d, err)
		}
	}

	if err := os.WriteFile(s.headPath(), nil, 0644); err != nil {
		return fmt.Errorf("create HEAD: %w", err)
	}

	return s.initReflog()
}

func (s *Store) stagingDir() string {
	return filepath.Join(s.root, config.StagingDir)
}

func (s *Store) commitsDir() string {
	return filepath.Join(s.root, config.CommitsDir)
}

func (s *Store) commitDir(id string) string {
	return filepath.Join(s.commitsDir(), id)
}

func (s *Store) branchesDir() string {
	return filepath.Join(s.root, config.BranchesDir)
}

func (s *Store) headPath() string {
	return filepath.Join(s.root, config.HeadFile)
}

// openDB opens the reflog database on first use and ensures its schema.
func (s *Store) openDB() (*sql.DB, error) {
	if s.db != nil {
		return s.db, nil
	}

	path := filepath.Join(s.root, config.ReflogFile)
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(1000)")
	if err != nil {
		return nil, fmt.Errorf("open reflog: %w", err)
	}

	if _, err := db.Exec(reflogSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create reflog schema: %w", err)
	}

	s.db = db
	return db, nil
}

// parseTimestamp parses a timestamp string stored by the reflog or the
// commit metadata record.
func parseTimestamp(s string) time.Time {
	formats := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02 15:04:05.999999999-07:00",
		"2006-01-02 15:04:05",
	}
	for _, f := range formats {
		if t, err := time.Parse(f, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
