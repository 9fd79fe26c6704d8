package git_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	gixerrors "gix.dev/gix/internal/errors"
	"gix.dev/gix/internal/git"
	"gix.dev/gix/testhelpers"
)

func TestPushSetUpstream(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
	_, err := scene.Repo.CreateBareRemote("origin")
	require.NoError(t, err)

	client := git.NewClient(newRunner(t, scene.Dir, git.WithStreams(nil, discard{}, discard{})))
	ctx := context.Background()
	require.False(t, client.HasUpstream(ctx, "main"))

	require.NoError(t, client.PushSetUpstream(ctx, "origin", "main"))
	require.True(t, client.HasUpstream(ctx, "main"))
	require.Equal(t,
		testhelpers.Must(scene.Repo.GetRevision("HEAD")),
		testhelpers.Must(scene.Repo.RemoteRevision("origin", "main")))
}

func TestPushForceWithLeaseAfterRewrite(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.RemoteSceneSetup)
	client := git.NewClient(newRunner(t, scene.Dir, git.WithStreams(nil, discard{}, discard{})))
	ctx := context.Background()

	require.NoError(t, client.SoftReset(ctx, "HEAD~2"))
	require.NoError(t, client.CommitWithEditor(ctx, "folded"))
	require.NoError(t, client.PushForceWithLease(ctx))

	require.NoError(t, client.Fetch(ctx))
	require.Equal(t,
		testhelpers.Must(scene.Repo.GetRevision("HEAD")),
		testhelpers.Must(scene.Repo.RemoteRevision("origin", "main")))
	testhelpers.ExpectCommits(t, scene.Repo, []string{"folded", "1"})
}

func TestFetchFailureKeepsExitStatus(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
	require.NoError(t, scene.Repo.RunGitCommand("remote", "add", "origin", filepath.Join(t.TempDir(), "missing.git")))
	client := git.NewClient(newRunner(t, scene.Dir, git.WithStreams(nil, discard{}, discard{})))

	err := client.Fetch(context.Background())
	require.ErrorContains(t, err, "failed to fetch")
	var opErr *gixerrors.OperationFailedError
	require.ErrorAs(t, err, &opErr)
	require.NotZero(t, opErr.ExitCode)
}
