package core

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Integration tests that verify full workflows

func TestWorkflow_InitCommitBranchStatus(t *testing.T) {
	repo, work := newTestRepo(t)

	_, err := repo.Stage(writeFile(t, work, "a.txt", "hello"))
	require.NoError(t, err)

	_, err = repo.Commit("first", "alice")
	require.NoError(t, err)

	commits, err := repo.History(0)
	require.NoError(t, err)
	require.Len(t, commits, 1)
	assert.Equal(t, "first", commits[0].Message)
	assert.Equal(t, "alice", commits[0].Author)

	require.NoError(t, repo.CreateBranch("feature"))
	require.NoError(t, repo.SwitchBranch("feature"))

	status, err := repo.Status()
	require.NoError(t, err)
	assert.Equal(t, "feature", status.BranchName)
	assert.Empty(t, status.Staged)
}

func TestWorkflow_ReopenPreservesState(t *testing.T) {
	repo, work := newTestRepo(t)

	_, err := repo.Stage(writeFile(t, work, "a.txt", "hello"))
	require.NoError(t, err)
	commit, err := repo.Commit("first", "alice")
	require.NoError(t, err)
	require.NoError(t, repo.Close())

	reopened, err := Open(work)
	require.NoError(t, err)
	defer reopened.Close()

	commits, err := reopened.History(0)
	require.NoError(t, err)
	require.Len(t, commits, 1)
	assert.Equal(t, commit.ID, commits[0].ID)

	updates, err := reopened.Reflog(0)
	require.NoError(t, err)
	assert.Len(t, updates, 2)
}

func TestWorkflow_ConcurrentCommitsSerialize(t *testing.T) {
	repo, _ := newTestRepo(t)

	const n = 8
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Commit("concurrent", "alice")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	// Every commit is chained: the history is linear and complete
	commits, err := repo.History(0)
	require.NoError(t, err)
	assert.Len(t, commits, n)

	ids := map[string]bool{}
	for _, c := range commits {
		ids[c.ID] = true
	}
	assert.Len(t, ids, n)
}
