// Package config manages mini configuration and the .mini directory structure.
// It handles repository discovery, the on-disk layout names, and loading and
// saving the TOML configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const (
	MiniDir       = ".mini"
	IgnoreFile    = ".miniignore"
	ConfigFile    = "config"
	HeadFile      = "HEAD"
	StagingDir    = "staging"
	CommitsDir    = "commits"
	BranchesDir   = "branches"
	ReflogFile    = "reflog.db"
	DefaultBranch = "main"
)

// Config represents the mini configuration
type Config struct {
	DefaultBranch string `toml:"default_branch"`
	Author        string `toml:"author,omitempty"`   // Used when commit is run without --author
	LogLevel      string `toml:"log_level,omitempty"` // debug, info, warn, error
	path          string // path to .mini directory
}

// FindMiniRoot finds the .mini directory by walking up from dir
func FindMiniRoot(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for {
		miniPath := filepath.Join(dir, MiniDir)
		if info, err := os.Stat(miniPath); err == nil && info.IsDir() {
			return miniPath, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not a mini repository (or any parent up to root)")
		}
		dir = parent
	}
}

// Load loads the configuration from the given .mini directory.
// A missing config file yields the defaults.
func Load(miniPath string) (*Config, error) {
	cfg := &Config{DefaultBranch: DefaultBranch, path: miniPath}

	data, err := os.ReadFile(filepath.Join(miniPath, ConfigFile))
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.DefaultBranch == "" {
		cfg.DefaultBranch = DefaultBranch
	}

	return cfg, nil
}

// New returns a config bound to miniPath without touching the disk
func New(miniPath, defaultBranch string) *Config {
	if defaultBranch == "" {
		defaultBranch = DefaultBranch
	}
	return &Config{DefaultBranch: defaultBranch, path: miniPath}
}

// Save saves the configuration to disk
func (c *Config) Save() error {
	configPath := filepath.Join(c.path, ConfigFile)
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(configPath, data, 0644)
}

// MiniPath returns the path to the .mini directory
func (c *Config) MiniPath() string {
	return c.path
}

// WorkTree returns the directory that contains the .mini directory
func (c *Config) WorkTree() string {
	return filepath.Dir(c.path)
}

// IgnorePath returns the path to the ignore pattern file in the work tree
func (c *Config) IgnorePath() string {
	return filepath.Join(c.WorkTree(), IgnoreFile)
}
