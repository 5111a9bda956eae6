// Package core implements the mini repository state machine: initialization,
// the staging area, the commit writer, history traversal and the reference
// manager. All operations go through an explicit Repository handle.
package core

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/kilupskalvis/mini/internal/config"
	"github.com/kilupskalvis/mini/internal/ignore"
	"github.com/kilupskalvis/mini/internal/models"
	"github.com/kilupskalvis/mini/internal/store"
)

// Repository is a handle to one initialized repository. It is safe for use
// by multiple goroutines; operations are serialized.
type Repository struct {
	mu     sync.Mutex
	cfg    *config.Config
	store  *store.Store
	ignore ignore.Matcher
	logger *slog.Logger
	now    func() time.Time
}

type options struct {
	logger        *slog.Logger
	ignore        ignore.Matcher
	now           func() time.Time
	defaultBranch string
	author        string
}

// Option configures Init and Open.
type Option func(*options)

// WithLogger sets the logger used for debug and warning events.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithIgnore replaces the ignore predicate loaded from .miniignore.
func WithIgnore(m ignore.Matcher) Option {
	return func(o *options) { o.ignore = m }
}

// WithClock overrides time.Now for commit timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithDefaultBranch sets the initial branch created by Init.
func WithDefaultBranch(name string) Option {
	return func(o *options) { o.defaultBranch = name }
}

// WithAuthor sets the default author saved in the config by Init.
func WithAuthor(name string) Option {
	return func(o *options) { o.author = name }
}

func buildOptions(opts []Option) *options {
	o := &options{now: time.Now}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o
}

// Init creates a new repository in workDir. It fails with
// ErrAlreadyInitialized if workDir already contains a .mini directory.
// A failure part way through leaves the partially created layout in place.
func Init(workDir string, opts ...Option) (*Repository, error) {
	o := buildOptions(opts)

	workDir, err := filepath.Abs(workDir)
	if err != nil {
		return nil, err
	}
	miniPath := filepath.Join(workDir, config.MiniDir)

	if _, err := os.Lstat(miniPath); err == nil {
		return nil, &PathError{Path: miniPath, Kind: ErrAlreadyInitialized}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to stat %s: %w", miniPath, err)
	}

	cfg := config.New(miniPath, o.defaultBranch)
	if err := validateBranchName(cfg.DefaultBranch); err != nil {
		return nil, err
	}
	cfg.Author = o.author

	st := store.New(miniPath)
	if err := st.Initialize(); err != nil {
		st.Close()
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}

	// HEAD names the default branch before its ref exists; the next write
	// closes that window.
	if err := st.SetCurrentBranch(cfg.DefaultBranch); err != nil {
		st.Close()
		return nil, err
	}
	if err := st.WriteBranch(cfg.DefaultBranch, ""); err != nil {
		st.Close()
		return nil, err
	}
	if err := cfg.Save(); err != nil {
		st.Close()
		return nil, err
	}

	r, err := newRepository(cfg, st, o)
	if err != nil {
		st.Close()
		return nil, err
	}

	r.recordRefUpdate(&models.RefUpdate{
		Ref:      cfg.DefaultBranch,
		Action:   models.RefActionInit,
		NewValue: "",
		Message:  "initialize repository",
	})
	r.logger.Debug("initialized repository", "path", miniPath, "branch", cfg.DefaultBranch)

	return r, nil
}

// Open returns a handle to the repository containing dir, walking up
// parent directories to find the .mini directory.
func Open(dir string, opts ...Option) (*Repository, error) {
	o := buildOptions(opts)

	miniPath, err := config.FindMiniRoot(dir)
	if err != nil {
		return nil, &PathError{Path: dir, Kind: ErrNotARepository}
	}

	cfg, err := config.Load(miniPath)
	if err != nil {
		return nil, err
	}

	return newRepository(cfg, store.New(miniPath), o)
}

func newRepository(cfg *config.Config, st *store.Store, o *options) (*Repository, error) {
	m := o.ignore
	if m == nil {
		p, err := ignore.Load(cfg.IgnorePath())
		if err != nil {
			return nil, err
		}
		m = p
	}

	return &Repository{
		cfg:    cfg,
		store:  st,
		ignore: m,
		logger: o.logger,
		now:    o.now,
	}, nil
}

// Close releases resources held by the repository.
func (r *Repository) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.store.Close()
}

// Config returns the repository configuration.
func (r *Repository) Config() *config.Config {
	return r.cfg
}

// Path returns the .mini directory of the repository.
func (r *Repository) Path() string {
	return r.cfg.MiniPath()
}

// recordRefUpdate appends to the reflog. The reflog is a journal only, so
// a failure is logged and does not undo the ref move.
func (r *Repository) recordRefUpdate(u *models.RefUpdate) {
	if err := r.store.RecordRefUpdate(u); err != nil {
		r.logger.Warn("failed to record ref update", "ref", u.Ref, "action", u.Action, "error", err)
	}
}

// currentBranch resolves HEAD to an existing branch. Callers hold r.mu.
func (r *Repository) currentBranch() (*models.Branch, error) {
	name, err := r.store.GetCurrentBranch()
	if err != nil {
		return nil, err
	}

	branch, err := r.store.GetBranch(name)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, &BranchError{Name: name, Kind: ErrNoCurrentBranch}
	}
	return branch, nil
}
