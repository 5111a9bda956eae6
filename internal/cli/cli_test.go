package cli

import (
	"log/slog"
	"testing"

	"github.com/kilupskalvis/mini/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLogLevel("debug"))
	assert.Equal(t, slog.LevelInfo, parseLogLevel("INFO"))
	assert.Equal(t, slog.LevelError, parseLogLevel("error"))
	assert.Equal(t, slog.LevelWarn, parseLogLevel("warn"))
	assert.Equal(t, slog.LevelWarn, parseLogLevel("bogus"))
}

func TestResolveAuthor(t *testing.T) {
	assert.Equal(t, "flag", resolveAuthor("flag", "config"))
	assert.Equal(t, "config", resolveAuthor("", "config"))
	assert.Empty(t, resolveAuthor("", ""))
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "01234567", shortID("0123456789abcdef"))
	assert.Equal(t, "abc", shortID("abc"))
}

func TestFormatRefValue(t *testing.T) {
	assert.Equal(t, "(empty)", formatRefValue(models.RefActionInit, ""))
	assert.Equal(t, "feature", formatRefValue(models.RefActionSwitch, "feature"))
	assert.Equal(t, "01234567", formatRefValue(models.RefActionCommit, "0123456789abcdef"))
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}
	for _, want := range []string{"init", "add", "reset", "commit", "log", "branch", "status", "show", "reflog"} {
		assert.True(t, names[want], want)
	}
}
