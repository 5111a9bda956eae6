package store

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/kilupskalvis/mini/internal/models"
)

// StageFile copies the file at src into the staging area under name,
// replacing any entry already staged under that name.
func (s *Store) StageFile(src, name string) (*models.StagingEntry, error) {
	dst := filepath.Join(s.stagingDir(), name)
	n, err := copyFile(src, dst)
	if err != nil {
		return nil, fmt.Errorf("stage %s: %w", name, err)
	}
	return &models.StagingEntry{Name: name, Size: n}, nil
}

// GetAllStagedEntries returns all staged entries sorted by name.
func (s *Store) GetAllStagedEntries() ([]*models.StagingEntry, error) {
	dirEntries, err := os.ReadDir(s.stagingDir())
	if err != nil {
		return nil, fmt.Errorf("read staging: %w", err)
	}

	var entries []*models.StagingEntry
	for _, de := range dirEntries {
		if !de.Type().IsRegular() {
			continue
		}
		info, err := de.Info()
		if err != nil {
			return nil, fmt.Errorf("stat staged %s: %w", de.Name(), err)
		}
		entries = append(entries, &models.StagingEntry{Name: de.Name(), Size: info.Size()})
	}

	// os.ReadDir already sorts, keep it explicit for callers
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})

	return entries, nil
}

// GetStagedCount returns the number of staged entries.
func (s *Store) GetStagedCount() (int, error) {
	entries, err := s.GetAllStagedEntries()
	if err != nil {
		return 0, err
	}
	return len(entries), nil
}

// GetStagedDigests returns the name and content hash of every staged entry.
func (s *Store) GetStagedDigests() ([]models.EntryDigest, error) {
	entries, err := s.GetAllStagedEntries()
	if err != nil {
		return nil, err
	}

	digests := make([]models.EntryDigest, 0, len(entries))
	for _, e := range entries {
		h, err := hashFile(filepath.Join(s.stagingDir(), e.Name))
		if err != nil {
			return nil, fmt.Errorf("hash staged %s: %w", e.Name, err)
		}
		digests = append(digests, models.EntryDigest{Name: e.Name, ContentHash: h})
	}
	return digests, nil
}

// RemoveStagedEntry removes a single staged entry.
func (s *Store) RemoveStagedEntry(name string) error {
	err := os.Remove(filepath.Join(s.stagingDir(), name))
	if os.IsNotExist(err) {
		return fmt.Errorf("staged entry %s: %w", name, ErrNotFound)
	}
	return err
}

// ClearStagedEntries removes all staged entries.
func (s *Store) ClearStagedEntries() error {
	entries, err := s.GetAllStagedEntries()
	if err != nil {
		return err
	}
	for _, e := range entries {
		if err := os.Remove(filepath.Join(s.stagingDir(), e.Name)); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("clear staged %s: %w", e.Name, err)
		}
	}
	return nil
}

// copyFile copies src to dst and returns the number of bytes written.
// When src and dst are the same file nothing is written and the file size
// is returned, since truncating dst would erase src.
func copyFile(src, dst string) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	srcInfo, err := in.Stat()
	if err != nil {
		return 0, err
	}
	if dstInfo, err := os.Stat(dst); err == nil && os.SameFile(srcInfo, dstInfo) {
		return srcInfo.Size(), nil
	}

	out, err := os.Create(dst)
	if err != nil {
		return 0, err
	}

	n, err := io.Copy(out, in)
	if err != nil {
		out.Close()
		return n, err
	}
	return n, out.Close()
}

func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
