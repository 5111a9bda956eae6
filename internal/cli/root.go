// Package cli implements the command-line interface for mini.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/kilupskalvis/mini/internal/config"
	"github.com/kilupskalvis/mini/internal/core"
	"github.com/spf13/cobra"
)

// cmdContext holds common resources for CLI commands
type cmdContext struct {
	Repo *core.Repository
}

// Close releases resources held by cmdContext
func (c *cmdContext) Close() {
	if c.Repo != nil {
		c.Repo.Close()
	}
}

// initContext opens the repository containing the current directory
func initContext() (*cmdContext, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	// A log level in the repository config applies unless --log-level was given
	if !rootCmd.PersistentFlags().Changed("log-level") {
		if miniPath, err := config.FindMiniRoot(cwd); err == nil {
			if cfg, err := config.Load(miniPath); err == nil && cfg.LogLevel != "" {
				logger = newLogger(cfg.LogLevel)
			}
		}
	}

	repo, err := core.Open(cwd, core.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	return &cmdContext{Repo: repo}, nil
}

var rootCmd = &cobra.Command{
	Use:   "mini",
	Short: "A minimal local version control system",
	Long: `mini records snapshots of files as commits, organizes them into
branches, and lets you inspect the history. Everything lives in a .mini
directory next to your files.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = newLogger(logLevel)
	},
}

var (
	logLevel string
	logger   = newLogger("warn")
)

// Execute runs the root command and prints any error to stderr
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(commitCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(branchCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(reflogCmd)
}

// newLogger builds a text logger on stderr for the named level
func newLogger(level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: parseLogLevel(level)}))
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// shortID returns first 8 characters of an ID
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
