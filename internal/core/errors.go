package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for repository failures. Use errors.Is to check for them;
// the typed errors below carry the offending path, branch or commit.
var (
	// ErrAlreadyInitialized indicates that init found an existing layout
	ErrAlreadyInitialized = errors.New("repository already initialized")

	// ErrNotARepository indicates that no .mini directory was found
	ErrNotARepository = errors.New("not a mini repository")

	// ErrFileNotFound indicates that a path to stage or unstage does not exist
	ErrFileNotFound = errors.New("file not found")

	// ErrNotAFile indicates that a path to stage is a directory or device
	ErrNotAFile = errors.New("not a regular file")

	// ErrReservedName indicates that a file name collides with a commit record
	ErrReservedName = errors.New("reserved file name")

	// ErrUnknownBranch indicates that a branch does not exist
	ErrUnknownBranch = errors.New("unknown branch")

	// ErrInvalidBranchName indicates that a branch name cannot be stored as a ref
	ErrInvalidBranchName = errors.New("invalid branch name")

	// ErrNoCurrentBranch indicates that HEAD does not name an existing branch
	ErrNoCurrentBranch = errors.New("no current branch")

	// ErrCorruptCommit indicates that a ref or parent link points at a missing commit
	ErrCorruptCommit = errors.New("corrupt commit")

	// ErrUnknownRef indicates that a ref resolves to no commit
	ErrUnknownRef = errors.New("unknown revision")

	// ErrAmbiguousRef indicates that a short commit ID matches several commits
	ErrAmbiguousRef = errors.New("ambiguous revision")
)

// PathError represents a failure tied to a file system path
type PathError struct {
	Path string
	Kind error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Path)
}

// Is returns true if the target error is the error's kind
func (e *PathError) Is(target error) bool {
	return target == e.Kind
}

// BranchError represents a failure tied to a branch name
type BranchError struct {
	Name string
	Kind error
}

func (e *BranchError) Error() string {
	if e.Kind == ErrNoCurrentBranch {
		return fmt.Sprintf("HEAD names branch '%s', which does not exist", e.Name)
	}
	return fmt.Sprintf("%s '%s'", e.Kind, e.Name)
}

// Is returns true if the target error is the error's kind
func (e *BranchError) Is(target error) bool {
	return target == e.Kind
}

// CommitError represents a failure tied to a commit ID or revision
type CommitError struct {
	ID   string
	Kind error
	Err  error // underlying cause, may be nil
}

func (e *CommitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %v", e.Kind, e.ID, e.Err)
	}
	return fmt.Sprintf("%s %s", e.Kind, e.ID)
}

// Is returns true if the target error is the error's kind
func (e *CommitError) Is(target error) bool {
	return target == e.Kind
}

func (e *CommitError) Unwrap() error {
	return e.Err
}
