package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/kilupskalvis/mini/internal/models"
)

// WriteBranch stores a branch ref. An empty commitID records a branch with
// no commits. Existing refs are overwritten.
func (s *Store) WriteBranch(name, commitID string) error {
	path, err := s.branchPath(name)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(commitID), 0644); err != nil {
		return fmt.Errorf("write branch %s: %w", name, err)
	}
	return nil
}

// GetBranch retrieves a branch by name. Returns (nil, nil) if not found.
func (s *Store) GetBranch(name string) (*models.Branch, error) {
	path, err := s.branchPath(name)
	if err != nil {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read branch %s: %w", name, err)
	}

	return &models.Branch{Name: name, CommitID: strings.TrimSpace(string(data))}, nil
}

// ListBranches returns all branches sorted by name.
func (s *Store) ListBranches() ([]*models.Branch, error) {
	dirEntries, err := os.ReadDir(s.branchesDir())
	if err != nil {
		return nil, fmt.Errorf("read branches: %w", err)
	}

	var branches []*models.Branch
	for _, de := range dirEntries {
		if !de.Type().IsRegular() {
			continue
		}
		branch, err := s.GetBranch(de.Name())
		if err != nil {
			return nil, err
		}
		if branch != nil {
			branches = append(branches, branch)
		}
	}

	sort.Slice(branches, func(i, j int) bool {
		return branches[i].Name < branches[j].Name
	})

	return branches, nil
}

// BranchExists checks if a branch with the given name exists.
func (s *Store) BranchExists(name string) (bool, error) {
	branch, err := s.GetBranch(name)
	if err != nil {
		return false, err
	}
	return branch != nil, nil
}

// GetCurrentBranch returns the branch name stored in HEAD.
// Returns ("", nil) if HEAD is empty.
func (s *Store) GetCurrentBranch() (string, error) {
	data, err := os.ReadFile(s.headPath())
	if err != nil {
		return "", fmt.Errorf("read HEAD: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// SetCurrentBranch points HEAD at the named branch.
func (s *Store) SetCurrentBranch(name string) error {
	if err := os.WriteFile(s.headPath(), []byte(name), 0644); err != nil {
		return fmt.Errorf("write HEAD: %w", err)
	}
	return nil
}

// branchPath maps a branch name to its ref file, refusing names that would
// escape the branches directory.
func (s *Store) branchPath(name string) (string, error) {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("invalid branch name %q", name)
	}
	return filepath.Join(s.branchesDir(), name), nil
}
