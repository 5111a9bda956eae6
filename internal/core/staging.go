package core

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kilupskalvis/mini/internal/models"
	"github.com/kilupskalvis/mini/internal/store"
)

// Stage copies the file at path into the staging area keyed by its base
// name, replacing any entry with the same name. Files matched by the
// ignore predicate, and files inside the .mini directory, are skipped and
// return (nil, nil).
func (r *Repository) Stage(path string) (*models.StagingEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, &PathError{Path: path, Kind: ErrFileNotFound}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, &PathError{Path: path, Kind: ErrNotAFile}
	}

	if r.insideRepository(path) || r.ignore.Match(path) {
		r.logger.Debug("skipping ignored file", "path", path)
		return nil, nil
	}

	name := filepath.Base(path)
	if store.IsReservedName(name) {
		return nil, &PathError{Path: path, Kind: ErrReservedName}
	}

	entry, err := r.store.StageFile(path, name)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("staged file", "path", path, "name", name, "size", entry.Size)
	return entry, nil
}

// insideRepository reports whether path lies under the .mini directory.
// Symlinks are resolved when possible so an aliased work tree still matches.
func (r *Repository) insideRepository(path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	miniPath := r.cfg.MiniPath()
	if within(miniPath, abs) {
		return true
	}

	realMini, err := filepath.EvalSymlinks(miniPath)
	if err != nil {
		return false
	}
	realPath, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return false
	}
	return within(realMini, realPath)
}

func within(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// Unstage removes the staged entry with the given name.
func (r *Repository) Unstage(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if name != filepath.Base(name) {
		return &PathError{Path: name, Kind: ErrFileNotFound}
	}

	err := r.store.RemoveStagedEntry(name)
	if errors.Is(err, store.ErrNotFound) {
		return &PathError{Path: name, Kind: ErrFileNotFound}
	}
	return err
}

// Staged returns the staged entries sorted by name.
func (r *Repository) Staged() ([]*models.StagingEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.store.GetAllStagedEntries()
}

// clearStaging empties the staging area. Only the commit path calls it;
// callers hold r.mu.
func (r *Repository) clearStaging() error {
	return r.store.ClearStagedEntries()
}

// stagedNames returns the staged entry names. Callers hold r.mu.
func (r *Repository) stagedNames() ([]string, error) {
	entries, err := r.store.GetAllStagedEntries()
	if err != nil {
		return nil, err
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names, nil
}
