package core

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kilupskalvis/mini/internal/config"
	"github.com/kilupskalvis/mini/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommit_SnapshotsStagingArea(t *testing.T) {
	repo, work := newTestRepo(t)

	_, err := repo.Stage(writeFile(t, work, "a.txt", "old"))
	require.NoError(t, err)
	_, err = repo.Stage(writeFile(t, work, "b.txt", "bee"))
	require.NoError(t, err)
	_, err = repo.Stage(writeFile(t, work, "sub/a.txt", "new"))
	require.NoError(t, err)

	commit, err := repo.Commit("first", "alice")
	require.NoError(t, err)

	// Last write per base name wins
	assert.Equal(t, []string{"a.txt", "b.txt"}, commit.Files)
	data, err := repo.ReadFile(commit.ID, "a.txt")
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))

	// Staging area is empty afterwards
	entries, err := repo.Staged()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCommit_AdvancesCurrentBranch(t *testing.T) {
	repo, work := newTestRepo(t)

	_, err := repo.Stage(writeFile(t, work, "a.txt", "hello"))
	require.NoError(t, err)
	commit, err := repo.Commit("first", "alice")
	require.NoError(t, err)

	ref, err := os.ReadFile(filepath.Join(repo.Path(), config.BranchesDir, "main"))
	require.NoError(t, err)
	assert.Equal(t, commit.ID, string(ref))

	status, err := repo.Status()
	require.NoError(t, err)
	assert.Equal(t, commit.ID, status.CommitID)
}

func TestCommit_RecordsParent(t *testing.T) {
	repo, _ := newTestRepo(t)

	first, err := repo.Commit("first", "alice")
	require.NoError(t, err)
	assert.Empty(t, first.ParentID)

	second, err := repo.Commit("second", "alice")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ParentID)

	parent, err := os.ReadFile(filepath.Join(repo.Path(), config.CommitsDir, second.ID, "parent"))
	require.NoError(t, err)
	assert.Equal(t, first.ID, string(parent))

	_, err = os.Stat(filepath.Join(repo.Path(), config.CommitsDir, first.ID, "parent"))
	assert.True(t, os.IsNotExist(err))
}

func TestCommit_TwiceWithoutStaging(t *testing.T) {
	repo, work := newTestRepo(t)

	_, err := repo.Stage(writeFile(t, work, "a.txt", "hello"))
	require.NoError(t, err)

	first, err := repo.Commit("same", "alice")
	require.NoError(t, err)
	second, err := repo.Commit("same", "alice")
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, []string{"a.txt"}, first.Files)
	assert.Empty(t, second.Files)
}

func TestCommit_MetadataRoundTrip(t *testing.T) {
	ts := time.Date(2025, 6, 1, 12, 0, 0, 123456789, time.UTC)
	repo, _ := newTestRepo(t, WithClock(fixedClock(ts)))

	message := "fix: handle\nmulti-line messages"
	commit, err := repo.Commit(message, "Alice Example <alice@example.com>")
	require.NoError(t, err)

	loaded, err := repo.Show(commit.ID)
	require.NoError(t, err)
	assert.Equal(t, message, loaded.Message)
	assert.Equal(t, "Alice Example <alice@example.com>", loaded.Author)
	assert.True(t, ts.Equal(loaded.Timestamp))

	raw, err := os.ReadFile(filepath.Join(repo.Path(), config.CommitsDir, commit.ID, "metadata"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Author: Alice Example <alice@example.com>\n")
	assert.Contains(t, string(raw), "Timestamp: 2025-06-01T12:00:00.123456789Z\n")
}

func TestCommit_IDNeverReused(t *testing.T) {
	ts := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	repo, _ := newTestRepo(t, WithClock(fixedClock(ts)))

	// Two unborn branches, same clock, same empty snapshot: identical inputs
	first, err := repo.Commit("init", "alice")
	require.NoError(t, err)

	require.NoError(t, repo.CreateBranch("other"))
	require.NoError(t, repo.SwitchBranch("other"))

	second, err := repo.Commit("init", "alice")
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.True(t, ts.Add(time.Nanosecond).Equal(second.Timestamp))
}

func TestCommit_NoCurrentBranch(t *testing.T) {
	repo, _ := newTestRepo(t)

	require.NoError(t, os.Remove(filepath.Join(repo.Path(), config.BranchesDir, "main")))

	_, err := repo.Commit("orphan", "alice")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoCurrentBranch)
	assert.Contains(t, err.Error(), "main")
}

func TestCommit_DanglingBranchHead(t *testing.T) {
	repo, _ := newTestRepo(t)

	require.NoError(t, os.WriteFile(filepath.Join(repo.Path(), config.BranchesDir, "main"), []byte("deadbeef"), 0644))

	_, err := repo.Commit("broken", "alice")
	assert.ErrorIs(t, err, ErrCorruptCommit)
}

func TestCommit_RecordsReflog(t *testing.T) {
	repo, _ := newTestRepo(t)

	commit, err := repo.Commit("first", "alice")
	require.NoError(t, err)

	updates, err := repo.Reflog(1)
	require.NoError(t, err)
	require.Len(t, updates, 1)
	assert.Equal(t, models.RefActionCommit, updates[0].Action)
	assert.Equal(t, "main", updates[0].Ref)
	assert.Empty(t, updates[0].OldValue)
	assert.Equal(t, commit.ID, updates[0].NewValue)
	assert.Equal(t, "first", updates[0].Message)
}
