package core

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/kilupskalvis/mini/internal/models"
)

// CreateBranch creates a branch with no commits. An existing branch with
// the same name is reset, including the current one.
func (r *Repository) CreateBranch(name string) error {
	if err := validateBranchName(name); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, err := r.store.GetBranch(name)
	if err != nil {
		return err
	}

	if err := r.store.WriteBranch(name, ""); err != nil {
		return err
	}

	update := &models.RefUpdate{Ref: name, Action: models.RefActionBranch, Message: "create branch"}
	if existing != nil {
		update.OldValue = existing.CommitID
		update.Message = "reset branch"
	}
	r.recordRefUpdate(update)

	r.logger.Debug("created branch", "name", name, "reset", existing != nil)
	return nil
}

// ListBranches returns all branches sorted by name with the current branch name
func (r *Repository) ListBranches() ([]*models.Branch, string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	branches, err := r.store.ListBranches()
	if err != nil {
		return nil, "", err
	}

	currentBranch, err := r.store.GetCurrentBranch()
	if err != nil {
		return nil, "", err
	}

	return branches, currentBranch, nil
}

// SwitchBranch points HEAD at an existing branch. The staging area and
// working files are left untouched.
func (r *Repository) SwitchBranch(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	exists, err := r.store.BranchExists(name)
	if err != nil {
		return err
	}
	if !exists {
		return &BranchError{Name: name, Kind: ErrUnknownBranch}
	}

	previous, err := r.store.GetCurrentBranch()
	if err != nil {
		return err
	}

	if err := r.store.SetCurrentBranch(name); err != nil {
		return err
	}

	r.recordRefUpdate(&models.RefUpdate{
		Ref:      "HEAD",
		OldValue: previous,
		NewValue: name,
		Action:   models.RefActionSwitch,
		Message:  fmt.Sprintf("switch from %s to %s", previous, name),
	})

	r.logger.Debug("switched branch", "from", previous, "to", name)
	return nil
}

// Status reports the current branch, its head commit and the staged names.
func (r *Repository) Status() (*models.Status, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	branch, err := r.currentBranch()
	if err != nil {
		return nil, err
	}

	staged, err := r.stagedNames()
	if err != nil {
		return nil, err
	}

	return &models.Status{
		BranchName: branch.Name,
		CommitID:   branch.CommitID,
		Staged:     staged,
	}, nil
}

// Reflog returns ref updates newest first. A limit of 0 returns all rows.
func (r *Repository) Reflog(limit int) ([]*models.RefUpdate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.store.GetReflog(limit)
}

// Show returns the commit a ref resolves to.
func (r *Repository) Show(ref string) (*models.Commit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, err := r.resolveRef(ref)
	if err != nil {
		return nil, err
	}
	return r.loadCommit(id)
}

// ReadFile returns the content of an entry captured by the commit ref
// resolves to.
func (r *Repository) ReadFile(ref, name string) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, err := r.resolveRef(ref)
	if err != nil {
		return nil, err
	}
	if _, err := r.loadCommit(id); err != nil {
		return nil, err
	}

	data, err := r.store.ReadCommitFile(id, name)
	if err != nil {
		return nil, &PathError{Path: name, Kind: ErrFileNotFound}
	}
	return data, nil
}

// ResolveRef resolves a ref to a commit ID.
// Supports: HEAD, HEAD~N, branch names, full and short commit IDs.
func (r *Repository) ResolveRef(ref string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.resolveRef(ref)
}

func (r *Repository) resolveRef(ref string) (string, error) {
	if ref == "" {
		return "", &CommitError{ID: ref, Kind: ErrUnknownRef}
	}

	// Check for HEAD or HEAD~N pattern first
	if ref == "HEAD" || strings.HasPrefix(ref, "HEAD~") {
		return r.resolveHEADRef(ref)
	}

	// Try as branch first
	if validateBranchName(ref) == nil {
		branch, err := r.store.GetBranch(ref)
		if err != nil {
			return "", err
		}
		if branch != nil {
			if branch.IsUnborn() {
				return "", &CommitError{ID: ref, Kind: ErrUnknownRef, Err: fmt.Errorf("branch has no commits")}
			}
			return branch.CommitID, nil
		}
	}

	// Try as full or short commit ID
	ids, err := r.store.FindCommitIDsByPrefix(ref)
	if err != nil {
		return "", err
	}
	for _, id := range ids {
		if id == ref {
			return id, nil
		}
	}
	switch len(ids) {
	case 0:
		return "", &CommitError{ID: ref, Kind: ErrUnknownRef}
	case 1:
		return ids[0], nil
	default:
		return "", &CommitError{ID: ref, Kind: ErrAmbiguousRef, Err: fmt.Errorf("%d commits match", len(ids))}
	}
}

// resolveHEADRef resolves HEAD or HEAD~N to a commit ID
func (r *Repository) resolveHEADRef(ref string) (string, error) {
	branch, err := r.currentBranch()
	if err != nil {
		return "", err
	}
	if branch.IsUnborn() {
		return "", &CommitError{ID: ref, Kind: ErrUnknownRef, Err: fmt.Errorf("no commits yet")}
	}

	if ref == "HEAD" {
		return branch.CommitID, nil
	}

	// Parse HEAD~N
	n, err := strconv.Atoi(strings.TrimPrefix(ref, "HEAD~"))
	if err != nil || n < 0 {
		return "", &CommitError{ID: ref, Kind: ErrUnknownRef, Err: errors.New("expected HEAD~N where N is a non-negative number")}
	}

	// Walk back N commits following the parent chain
	commitID := branch.CommitID
	for i := 0; i < n; i++ {
		commit, err := r.loadCommit(commitID)
		if err != nil {
			return "", err
		}
		if commit.IsRoot() {
			return "", &CommitError{ID: ref, Kind: ErrUnknownRef, Err: fmt.Errorf("reached root commit after %d step(s)", i)}
		}
		commitID = commit.ParentID
	}

	return commitID, nil
}

// validateBranchName rejects names that cannot be stored as a ref file
func validateBranchName(name string) error {
	switch {
	case name == "", name == ".", name == "..", name == "HEAD":
	case strings.ContainsAny(name, "/\\ \t\r\n"):
	case strings.HasPrefix(name, "-"):
	default:
		return nil
	}
	return &BranchError{Name: name, Kind: ErrInvalidBranchName}
}
