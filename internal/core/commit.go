package core

import (
	"errors"
	"fmt"
	"time"

	"github.com/kilupskalvis/mini/internal/models"
	"github.com/kilupskalvis/mini/internal/store"
)

// Commit snapshots the staging area into a new commit on the current
// branch. The previous branch head becomes the commit's parent. The
// snapshot is fully written before the branch ref moves, and the staging
// area is cleared afterwards. An empty staging area produces a commit with
// no files.
func (r *Repository) Commit(message, author string) (*models.Commit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	branch, err := r.currentBranch()
	if err != nil {
		return nil, err
	}

	parentID := branch.CommitID
	if parentID != "" {
		exists, err := r.store.CommitExists(parentID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, &CommitError{ID: parentID, Kind: ErrCorruptCommit, Err: fmt.Errorf("head of branch '%s' is missing", branch.Name)}
		}
	}

	digests, err := r.store.GetStagedDigests()
	if err != nil {
		return nil, err
	}

	now := r.now()
	commitID, now, err := r.generateCommitID(message, author, now, parentID, digests)
	if err != nil {
		return nil, err
	}

	commit := &models.Commit{
		ID:        commitID,
		ParentID:  parentID,
		Author:    author,
		Message:   message,
		Timestamp: now,
	}

	if err := r.store.CreateCommit(commit); err != nil {
		return nil, err
	}

	if err := r.store.WriteBranch(branch.Name, commitID); err != nil {
		return nil, fmt.Errorf("update branch %s: %w", branch.Name, err)
	}

	r.recordRefUpdate(&models.RefUpdate{
		Ref:      branch.Name,
		OldValue: parentID,
		NewValue: commitID,
		Action:   models.RefActionCommit,
		Message:  message,
	})

	if err := r.clearStaging(); err != nil {
		return nil, err
	}

	r.logger.Debug("created commit", "id", commitID, "branch", branch.Name, "parent", parentID, "files", len(commit.Files))
	return commit, nil
}

// generateCommitID derives the commit ID from its content and metadata.
// If the ID is already taken the timestamp is advanced by a nanosecond,
// so an ID is never reused.
func (r *Repository) generateCommitID(message, author string, ts time.Time, parentID string, digests []models.EntryDigest) (string, time.Time, error) {
	for {
		id := models.GenerateCommitID(message, author, ts, parentID, digests)
		exists, err := r.store.CommitExists(id)
		if err != nil {
			return "", ts, err
		}
		if !exists {
			return id, ts, nil
		}
		r.logger.Debug("commit id taken, advancing timestamp", "id", id)
		ts = ts.Add(time.Nanosecond)
	}
}

// loadCommit reads a commit, mapping a missing one to ErrCorruptCommit.
func (r *Repository) loadCommit(id string) (*models.Commit, error) {
	commit, err := r.store.GetCommit(id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, &CommitError{ID: id, Kind: ErrCorruptCommit, Err: err}
	}
	if err != nil {
		return nil, err
	}
	return commit, nil
}
