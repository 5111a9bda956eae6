package core

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/kilupskalvis/mini/internal/config"
	"github.com/kilupskalvis/mini/internal/ignore"
	"github.com/kilupskalvis/mini/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_CreatesLayout(t *testing.T) {
	repo, work := newTestRepo(t)

	miniPath := filepath.Join(work, config.MiniDir)
	assert.Equal(t, miniPath, repo.Path())

	for _, dir := range []string{config.StagingDir, config.CommitsDir, config.BranchesDir} {
		info, err := os.Stat(filepath.Join(miniPath, dir))
		require.NoError(t, err)
		assert.True(t, info.IsDir(), dir)
	}

	head, err := os.ReadFile(filepath.Join(miniPath, config.HeadFile))
	require.NoError(t, err)
	assert.Equal(t, "main", string(head))

	ref, err := os.ReadFile(filepath.Join(miniPath, config.BranchesDir, "main"))
	require.NoError(t, err)
	assert.Empty(t, ref)
}

func TestInit_HeadResolvesToEmptyBranch(t *testing.T) {
	repo, _ := newTestRepo(t)

	status, err := repo.Status()
	require.NoError(t, err)
	assert.Equal(t, "main", status.BranchName)
	assert.Empty(t, status.CommitID)
	assert.Empty(t, status.Staged)

	commits, err := repo.History(0)
	require.NoError(t, err)
	assert.Empty(t, commits)
}

func TestInit_AlreadyInitialized(t *testing.T) {
	_, work := newTestRepo(t)

	_, err := Init(work)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAlreadyInitialized))

	var pathErr *PathError
	require.ErrorAs(t, err, &pathErr)
	assert.Equal(t, filepath.Join(work, config.MiniDir), pathErr.Path)
}

func TestInit_DefaultBranchAndAuthor(t *testing.T) {
	repo, work := newTestRepo(t, WithDefaultBranch("trunk"), WithAuthor("alice"))

	status, err := repo.Status()
	require.NoError(t, err)
	assert.Equal(t, "trunk", status.BranchName)

	cfg, err := config.Load(filepath.Join(work, config.MiniDir))
	require.NoError(t, err)
	assert.Equal(t, "trunk", cfg.DefaultBranch)
	assert.Equal(t, "alice", cfg.Author)
}

func TestInit_InvalidDefaultBranch(t *testing.T) {
	_, err := Init(t.TempDir(), WithDefaultBranch("a/b"))
	assert.ErrorIs(t, err, ErrInvalidBranchName)
}

func TestInit_RecordsReflog(t *testing.T) {
	repo, _ := newTestRepo(t)

	updates, err := repo.Reflog(0)
	require.NoError(t, err)
	require.Len(t, updates, 1)
	assert.Equal(t, models.RefActionInit, updates[0].Action)
	assert.Equal(t, "main", updates[0].Ref)
}

func TestOpen_FromSubdirectory(t *testing.T) {
	repo, work := newTestRepo(t)
	sub := filepath.Join(work, "src", "pkg")
	require.NoError(t, os.MkdirAll(sub, 0755))

	opened, err := Open(sub)
	require.NoError(t, err)
	defer opened.Close()

	assert.Equal(t, repo.Path(), opened.Path())

	status, err := opened.Status()
	require.NoError(t, err)
	assert.Equal(t, "main", status.BranchName)
}

func TestOpen_NotARepository(t *testing.T) {
	_, err := Open(t.TempDir())
	assert.ErrorIs(t, err, ErrNotARepository)
}

func TestOpen_LoadsIgnoreFile(t *testing.T) {
	_, work := newTestRepo(t)
	writeFile(t, work, config.IgnoreFile, "*.log\n")

	repo, err := Open(work)
	require.NoError(t, err)
	defer repo.Close()

	entry, err := repo.Stage(writeFile(t, work, "debug.log", "noise"))
	require.NoError(t, err)
	assert.Nil(t, entry)

	entry, err = repo.Stage(writeFile(t, work, "main.go", "package main"))
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, "main.go", entry.Name)
}

func TestOpen_InvalidIgnoreFile(t *testing.T) {
	_, work := newTestRepo(t)
	writeFile(t, work, config.IgnoreFile, "[\n")

	_, err := Open(work)
	assert.Error(t, err)
}

func TestWithIgnore_OverridesFile(t *testing.T) {
	repo, work := newTestRepo(t, WithIgnore(ignore.MatcherFunc(func(path string) bool {
		return filepath.Base(path) == "skip.txt"
	})))

	entry, err := repo.Stage(writeFile(t, work, "skip.txt", "x"))
	require.NoError(t, err)
	assert.Nil(t, entry)
}
