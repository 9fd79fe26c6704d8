// Package testhelpers provides testing utilities for gix: temporary git
// repositories (scenes), a shared gix binary and assertions over repo state.
package testhelpers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Must panics if err is not nil, otherwise returns val.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// ExpectCommits asserts the newest commit subjects on HEAD, newest first.
// Only the first len(expected) commits are compared.
func ExpectCommits(t *testing.T, repo *GitRepo, expected []string) {
	t.Helper()

	subjects, err := repo.CommitSubjects()
	require.NoError(t, err, "Failed to list commits")
	require.GreaterOrEqual(t, len(subjects), len(expected), "Not enough commits")
	require.Equal(t, expected, subjects[:len(expected)], "Commits do not match")
}

// ExpectCommitCount asserts the number of commits reachable from HEAD.
func ExpectCommitCount(t *testing.T, repo *GitRepo, expected int) {
	t.Helper()

	count, err := repo.CommitCount()
	require.NoError(t, err)
	require.Equal(t, expected, count, "Commit count does not match")
}

// ExpectHead asserts that HEAD still points at sha.
func ExpectHead(t *testing.T, repo *GitRepo, sha string) {
	t.Helper()

	head, err := repo.GetRevision("HEAD")
	require.NoError(t, err)
	require.Equal(t, sha, head, "HEAD moved")
}
