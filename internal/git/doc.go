// Package git provides low-level Git operations.
//
// It wraps git command execution and provides a Go-friendly interface for:
//   - Running git either with captured output or attached to the terminal
//   - Repo state queries (status, current branch, upstream, remotes, root commits)
//   - History rewriting primitives (soft reset, commit, interactive rebase)
//   - Remote operations (push, fetch)
//
// This package should be the only place where direct git commands are executed.
package git
