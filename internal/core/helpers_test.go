package core

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// newTestRepo initializes a repository in a temp work tree.
func newTestRepo(t *testing.T, opts ...Option) (*Repository, string) {
	t.Helper()
	work := t.TempDir()
	repo, err := Init(work, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo, work
}

// writeFile creates a file under dir and returns its path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// fixedClock returns a clock that always reports ts.
func fixedClock(ts time.Time) func() time.Time {
	return func() time.Time { return ts }
}
