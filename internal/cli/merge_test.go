package cli_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gix.dev/gix/testhelpers"
)

func TestMergeCommand(t *testing.T) {
	t.Run("folds a range into one commit", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.LinearSceneSetup)
		from := testhelpers.Must(scene.Repo.GetRevision("HEAD~1"))

		result := testhelpers.RunGix(t, scene.Dir, nil, "merge", "--from", from, "--msg", "combined", "--no-push")

		require.Equal(t, 0, result.ExitCode, result.Output())
		require.Contains(t, result.Stdout, "git reset --soft "+from+"^ && git commit --edit -m combined --no-verify")
		require.Contains(t, result.Stdout, "Reset successful")
		require.Contains(t, result.Stdout, "Commit successful")
		require.Contains(t, result.Stderr, "Please push manually using git push")
		testhelpers.ExpectCommits(t, scene.Repo, []string{"combined", "1"})
		testhelpers.ExpectCommitCount(t, scene.Repo, 2)
	})

	t.Run("skips commit hooks", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.LinearSceneSetup)
		require.NoError(t, scene.Repo.CreatePrecommitHook("#!/bin/sh\nexit 1\n"))

		result := testhelpers.RunGix(t, scene.Dir, nil, "merge", "-f", "HEAD~1", "-m", "hooked", "--no-push")

		require.Equal(t, 0, result.ExitCode, result.Output())
		testhelpers.ExpectCommits(t, scene.Repo, []string{"hooked", "1"})
	})

	t.Run("rejects the root commit", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.LinearSceneSetup)
		root := testhelpers.Must(scene.Repo.GetRevision("HEAD~2"))
		head := testhelpers.Must(scene.Repo.GetRevision("HEAD"))

		result := testhelpers.RunGix(t, scene.Dir, nil, "merge", "--from", root, "--msg", "all", "--no-push")

		require.Equal(t, 1, result.ExitCode)
		require.Contains(t, result.Stderr, "root")
		require.Contains(t, result.Stderr, "git rebase --root")
		testhelpers.ExpectHead(t, scene.Repo, head)
	})

	t.Run("rejects an end commit that is not HEAD", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.LinearSceneSetup)
		head := testhelpers.Must(scene.Repo.GetRevision("HEAD"))

		result := testhelpers.RunGix(t, scene.Dir, nil, "merge", "--from", "HEAD~1", "--to", "HEAD~1", "--msg", "x", "--no-push")

		require.Equal(t, 1, result.ExitCode)
		require.Contains(t, result.Stderr, "HEAD~1 is not HEAD")
		testhelpers.ExpectHead(t, scene.Repo, head)
	})

	t.Run("refuses a dirty working tree", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.LinearSceneSetup)
		require.NoError(t, scene.Repo.CreateChange("dirty", "wip", true))
		head := testhelpers.Must(scene.Repo.GetRevision("HEAD"))

		result := testhelpers.RunGix(t, scene.Dir, nil, "merge", "--from", "HEAD~1", "--msg", "x", "--no-push")

		require.Equal(t, 1, result.ExitCode)
		require.Contains(t, result.Stderr, "not clean")
		require.Contains(t, result.Stderr, "Please commit, stash, or reset changes before merging.")
		testhelpers.ExpectHead(t, scene.Repo, head)
	})

	t.Run("needs --from when prompts are disabled", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.LinearSceneSetup)

		result := testhelpers.RunGix(t, scene.Dir, nil, "merge", "--msg", "x", "--no-push")

		require.Equal(t, 1, result.ExitCode)
		require.Contains(t, result.Stderr, "interactive prompts are disabled")
	})

	t.Run("sets the upstream on first push", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.LinearSceneSetup)
		_, err := scene.Repo.CreateBareRemote("origin")
		require.NoError(t, err)

		result := testhelpers.RunGix(t, scene.Dir, nil, "merge", "--from", "HEAD~1", "--msg", "combined", "--push")

		require.Equal(t, 0, result.ExitCode, result.Output())
		require.Contains(t, result.Stdout, "Push & upstream set successfully")
		head := testhelpers.Must(scene.Repo.GetRevision("HEAD"))
		require.Equal(t, head, testhelpers.Must(scene.Repo.RemoteRevision("origin", "main")))
	})

	t.Run("force pushes a branch with an upstream", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.RemoteSceneSetup)

		result := testhelpers.RunGix(t, scene.Dir, nil, "merge", "--from", "HEAD~1", "--msg", "combined", "--push")

		require.Equal(t, 0, result.ExitCode, result.Output())
		require.Contains(t, result.Stdout, "Force push successful")
		head := testhelpers.Must(scene.Repo.GetRevision("HEAD"))
		require.Equal(t, head, testhelpers.Must(scene.Repo.RemoteRevision("origin", "main")))
	})

	t.Run("push flags are mutually exclusive", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.LinearSceneSetup)

		result := testhelpers.RunGix(t, scene.Dir, nil, "merge", "--from", "HEAD~1", "--msg", "x", "--push", "--no-push")

		require.Equal(t, 1, result.ExitCode)
		require.Contains(t, result.Stderr, "push")
	})
}
