package core

import (
	"fmt"
	"iter"

	"github.com/kilupskalvis/mini/internal/models"
)

// Log walks the history of the current branch from its head commit to the
// root, following parent links. The sequence is lazy: each commit is read
// when the consumer asks for it. A missing commit or a parent cycle yields
// an ErrCorruptCommit error and ends the sequence. Each call restarts
// from HEAD.
func (r *Repository) Log() iter.Seq2[*models.Commit, error] {
	return func(yield func(*models.Commit, error) bool) {
		r.mu.Lock()
		branch, err := r.currentBranch()
		r.mu.Unlock()
		if err != nil {
			yield(nil, err)
			return
		}

		seen := make(map[string]bool)
		for id := branch.CommitID; id != ""; {
			if seen[id] {
				yield(nil, &CommitError{ID: id, Kind: ErrCorruptCommit, Err: fmt.Errorf("parent cycle")})
				return
			}
			seen[id] = true

			r.mu.Lock()
			commit, err := r.loadCommit(id)
			r.mu.Unlock()
			if err != nil {
				yield(nil, err)
				return
			}

			if !yield(commit, nil) {
				return
			}
			id = commit.ParentID
		}
	}
}

// History collects up to limit commits from Log, newest first.
// A limit of 0 returns the whole history.
func (r *Repository) History(limit int) ([]*models.Commit, error) {
	var commits []*models.Commit
	for commit, err := range r.Log() {
		if err != nil {
			return commits, err
		}
		commits = append(commits, commit)
		if limit > 0 && len(commits) >= limit {
			break
		}
	}
	return commits, nil
}
