// Package errors provides sentinel errors and the error kinds reported by gix commands.
// Use errors.Is() and errors.As() to check for specific error types.
//
// Remediation text is attached as hints (see WithHint); the entry point prints
// every hint below the error message.
package errors

import (
	"fmt"
	"strings"

	crdb "github.com/cockroachdb/errors"
)

// Sentinel errors for common conditions
var (
	// ErrGitUnavailable indicates that the git binary could not be started
	ErrGitUnavailable = crdb.New("git not found in PATH")

	// ErrNotARepository indicates that the working directory is not inside a git work tree
	ErrNotARepository = crdb.New("not inside a git repository")

	// ErrNotOnBranch indicates that HEAD is not on a branch
	ErrNotOnBranch = crdb.New("not on a branch")

	// ErrDirtyWorkTree indicates uncommitted changes in the working directory
	ErrDirtyWorkTree = crdb.New("your working directory is not clean")

	// ErrRootCommit indicates an attempt to reset onto the parent of a root commit
	ErrRootCommit = crdb.New("cannot merge from the first (root) commit, it has no parent")

	// ErrNoUpstream indicates that the current branch has no configured upstream
	ErrNoUpstream = crdb.New("no upstream configured")

	// ErrNoRemote indicates that the current branch has no configured remote
	ErrNoRemote = crdb.New("no remote configured")

	// ErrUnknownRevision indicates that a reference could not be resolved to a commit
	ErrUnknownRevision = crdb.New("unknown revision")

	// ErrRefMismatch indicates that the end reference of a merge is not HEAD
	ErrRefMismatch = crdb.New("end reference does not point at HEAD")

	// ErrRebaseConflict indicates that a rebase stopped on conflicts or failed
	ErrRebaseConflict = crdb.New("rebase encountered conflicts or failed")

	// ErrCancelled indicates that the user aborted a prompt
	ErrCancelled = crdb.New("cancelled")
)

// QueryFailedError reports that a read-only operation against the repository
// could not complete. The enclosing workflow aborts.
type QueryFailedError struct {
	Op  string
	Err error
}

func (e *QueryFailedError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("failed to %s", e.Op)
	}
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *QueryFailedError) Unwrap() error {
	return e.Err
}

// NewQueryFailedError creates a new QueryFailedError
func NewQueryFailedError(op string, err error) *QueryFailedError {
	return &QueryFailedError{Op: op, Err: err}
}

// OperationFailedError reports that a mutating git command did not succeed.
// ExitCode is -1 when the process could not be started at all.
type OperationFailedError struct {
	Args     []string
	ExitCode int
	Err      error
}

func (e *OperationFailedError) Error() string {
	cmdline := "git " + strings.Join(e.Args, " ")
	if e.ExitCode < 0 {
		return fmt.Sprintf("%s could not be started: %v", cmdline, e.Err)
	}
	return fmt.Sprintf("%s exited with status %d", cmdline, e.ExitCode)
}

func (e *OperationFailedError) Unwrap() error {
	return e.Err
}

// NewOperationFailedError creates a new OperationFailedError
func NewOperationFailedError(args []string, exitCode int, err error) *OperationFailedError {
	return &OperationFailedError{
		Args:     append([]string(nil), args...),
		ExitCode: exitCode,
		Err:      err,
	}
}

// WithHint decorates err with a user-facing remediation hint.
func WithHint(err error, hint string) error {
	return crdb.WithHint(err, hint)
}

// WithHintf is WithHint with a format string.
func WithHintf(err error, format string, args ...interface{}) error {
	return crdb.WithHintf(err, format, args...)
}

// Hints returns every hint attached to err or any error it wraps.
func Hints(err error) []string {
	return crdb.GetAllHints(err)
}

// Wrapf wraps err with a formatted message, preserving errors.Is/As.
func Wrapf(err error, format string, args ...interface{}) error {
	return crdb.Wrapf(err, format, args...)
}
