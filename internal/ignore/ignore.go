// Package ignore decides which files are excluded from staging.
// Patterns come from the .miniignore file at the work tree root, one glob
// per line, and are matched against base names only.
package ignore

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/kilupskalvis/mini/internal/config"
)

// Matcher reports whether a file should be skipped by staging.
type Matcher interface {
	Match(path string) bool
}

// MatcherFunc adapts a function to Matcher.
type MatcherFunc func(path string) bool

// Match calls f(path).
func (f MatcherFunc) Match(path string) bool { return f(path) }

// Patterns matches base names against a list of globs.
type Patterns struct {
	static   map[string]bool
	patterns []string
}

// New returns a matcher with the default ignored names and the given globs.
// Invalid globs are rejected.
func New(patterns ...string) (*Patterns, error) {
	p := &Patterns{static: map[string]bool{
		config.MiniDir:    true,
		config.IgnoreFile: true,
	}}
	for _, pat := range patterns {
		if err := p.add(pat); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Load reads patterns from path. A missing file yields the defaults only.
func Load(path string) (*Patterns, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return New()
	}
	if err != nil {
		return nil, fmt.Errorf("open ignore file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads one pattern per line. Blank lines and lines starting with
// '#' are skipped.
func Parse(r io.Reader) (*Patterns, error) {
	p, err := New()
	if err != nil {
		return nil, err
	}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := p.add(line); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read ignore file: %w", err)
	}
	return p, nil
}

func (p *Patterns) add(pat string) error {
	if _, err := filepath.Match(pat, ""); err != nil {
		return fmt.Errorf("invalid ignore pattern %q: %w", pat, err)
	}
	p.patterns = append(p.patterns, pat)
	return nil
}

// Match returns true if the base name of path is ignored.
func (p *Patterns) Match(path string) bool {
	name := filepath.Base(filepath.Clean(path))

	if p.static[name] {
		return true
	}

	for _, pat := range p.patterns {
		if ok, _ := filepath.Match(pat, name); ok {
			return true
		}
	}
	return false
}

// Patterns returns the user-supplied globs in file order.
func (p *Patterns) Patterns() []string {
	return append([]string(nil), p.patterns...)
}
