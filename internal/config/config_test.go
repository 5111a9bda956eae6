package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindMiniRoot_WalksUp(t *testing.T) {
	work := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(work, MiniDir), 0755))
	nested := filepath.Join(work, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))

	root, err := FindMiniRoot(nested)
	require.NoError(t, err)

	want, err := filepath.Abs(filepath.Join(work, MiniDir))
	require.NoError(t, err)
	assert.Equal(t, want, root)
}

func TestFindMiniRoot_NotFound(t *testing.T) {
	_, err := FindMiniRoot(t.TempDir())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not a mini repository")
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, DefaultBranch, cfg.DefaultBranch)
	assert.Empty(t, cfg.Author)
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	cfg := New(dir, "trunk")
	cfg.Author = "alice"
	cfg.LogLevel = "debug"
	require.NoError(t, cfg.Save())

	loaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "trunk", loaded.DefaultBranch)
	assert.Equal(t, "alice", loaded.Author)
	assert.Equal(t, "debug", loaded.LogLevel)
	assert.Equal(t, dir, loaded.MiniPath())
}

func TestLoad_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFile), []byte("default_branch = ["), 0644))

	_, err := Load(dir)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestPaths(t *testing.T) {
	cfg := New(filepath.Join("/work", MiniDir), "")
	assert.Equal(t, DefaultBranch, cfg.DefaultBranch)
	assert.Equal(t, "/work", cfg.WorkTree())
	assert.Equal(t, filepath.Join("/work", IgnoreFile), cfg.IgnorePath())
}
