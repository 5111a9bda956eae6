package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/kilupskalvis/mini/internal/models"
)

// CreateCommit writes a new commit directory: a copy of every staged entry,
// the metadata record and, for non-root commits, the parent record.
// commit.Files is filled with the captured names. Fails if a commit with
// the same ID already exists.
func (s *Store) CreateCommit(commit *models.Commit) error {
	if !IsValidCommitID(commit.ID) {
		return fmt.Errorf("invalid commit id %q", commit.ID)
	}

	dir := s.commitDir(commit.ID)
	if err := os.Mkdir(dir, 0755); err != nil {
		return fmt.Errorf("create commit %s: %w", commit.ID, err)
	}

	staged, err := s.GetAllStagedEntries()
	if err != nil {
		return err
	}

	files := make([]string, 0, len(staged))
	for _, e := range staged {
		if _, err := copyFile(filepath.Join(s.stagingDir(), e.Name), filepath.Join(dir, e.Name)); err != nil {
			return fmt.Errorf("snapshot %s: %w", e.Name, err)
		}
		files = append(files, e.Name)
	}

	meta := &commitMetadata{Author: commit.Author, Message: commit.Message, Timestamp: commit.Timestamp}
	if err := os.WriteFile(filepath.Join(dir, MetadataFile), meta.encode(), 0644); err != nil {
		return fmt.Errorf("write metadata: %w", err)
	}

	if commit.ParentID != "" {
		if err := os.WriteFile(filepath.Join(dir, ParentFile), []byte(commit.ParentID), 0644); err != nil {
			return fmt.Errorf("write parent: %w", err)
		}
	}

	commit.Files = files
	return nil
}

// CommitExists reports whether a commit directory exists for id.
func (s *Store) CommitExists(id string) (bool, error) {
	if !IsValidCommitID(id) {
		return false, nil
	}
	info, err := os.Stat(s.commitDir(id))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}

// GetCommit reads a commit by full ID. Returns ErrNotFound if the commit
// directory or its metadata record is missing.
func (s *Store) GetCommit(id string) (*models.Commit, error) {
	if !IsValidCommitID(id) {
		return nil, fmt.Errorf("commit %q: %w", id, ErrNotFound)
	}

	dir := s.commitDir(id)
	dirEntries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("commit %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read commit %s: %w", id, err)
	}

	data, err := os.ReadFile(filepath.Join(dir, MetadataFile))
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("commit %s metadata: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read metadata %s: %w", id, err)
	}

	meta, err := decodeMetadata(data)
	if err != nil {
		return nil, fmt.Errorf("parse metadata %s: %w", id, err)
	}

	commit := &models.Commit{
		ID:        id,
		Author:    meta.Author,
		Message:   meta.Message,
		Timestamp: meta.Timestamp,
		Files:     []string{},
	}

	parent, err := os.ReadFile(filepath.Join(dir, ParentFile))
	switch {
	case err == nil:
		commit.ParentID = strings.TrimSpace(string(parent))
	case !errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("read parent %s: %w", id, err)
	}

	for _, de := range dirEntries {
		if !de.Type().IsRegular() || IsReservedName(de.Name()) {
			continue
		}
		commit.Files = append(commit.Files, de.Name())
	}
	sort.Strings(commit.Files)

	return commit, nil
}

// FindCommitIDsByPrefix returns the IDs of all commits starting with prefix.
func (s *Store) FindCommitIDsByPrefix(prefix string) ([]string, error) {
	dirEntries, err := os.ReadDir(s.commitsDir())
	if err != nil {
		return nil, fmt.Errorf("read commits: %w", err)
	}

	var ids []string
	for _, de := range dirEntries {
		if de.IsDir() && strings.HasPrefix(de.Name(), prefix) {
			ids = append(ids, de.Name())
		}
	}
	return ids, nil
}

// ReadCommitFile returns the content of one entry captured by a commit.
func (s *Store) ReadCommitFile(id, name string) ([]byte, error) {
	if !IsValidCommitID(id) || IsReservedName(name) || name != filepath.Base(name) {
		return nil, fmt.Errorf("%s in commit %s: %w", name, id, ErrNotFound)
	}

	data, err := os.ReadFile(filepath.Join(s.commitDir(id), name))
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%s in commit %s: %w", name, id, ErrNotFound)
	}
	return data, err
}

// IsValidCommitID reports whether id is a non-empty lowercase hex string.
func IsValidCommitID(id string) bool {
	if id == "" {
		return false
	}
	for _, c := range id {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
