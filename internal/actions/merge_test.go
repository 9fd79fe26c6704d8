package actions_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gix.dev/gix/internal/actions"
	gixerrors "gix.dev/gix/internal/errors"
	"gix.dev/gix/internal/git/gittest"
)

func TestMergeAction(t *testing.T) {
	t.Run("folds the range and leaves pushing to the user", func(t *testing.T) {
		env := newTestEnv(t)

		err := actions.MergeAction(env.ctx, actions.MergeOptions{From: "abc123", Message: "squashed", Push: actions.PushNever})
		require.NoError(t, err)

		assert.Equal(t, []string{
			"reset --soft abc123^",
			"commit --edit -m squashed --no-verify",
		}, env.fake.Interactive())
		assert.Contains(t, env.stdout.String(), "git reset --soft abc123^ && git commit --edit -m squashed --no-verify")
		assert.Contains(t, env.stdout.String(), "✅ Reset successful")
		assert.Contains(t, env.stdout.String(), "✅ Commit successful")
		assert.Contains(t, env.stderr.String(), "Please push manually using git push")
	})

	t.Run("echoes the message as a shell word", func(t *testing.T) {
		env := newTestEnv(t)

		err := actions.MergeAction(env.ctx, actions.MergeOptions{From: "abc123", To: "HEAD", Message: "Café it's done\nbody", Push: actions.PushNever})
		require.NoError(t, err)

		assert.Contains(t, env.stdout.String(), "git commit --edit -m 'Café it'\\''s done\nbody' --no-verify")
		assert.NotContains(t, env.stdout.String(), `\u00e9`)
		assert.Equal(t, "commit --edit -m Café it's done\nbody --no-verify", env.fake.Interactive()[1])
	})

	t.Run("rejects the root commit before any mutation", func(t *testing.T) {
		env := newTestEnv(t)
		env.fake.OnOutput("rev-list --max-parents=0 HEAD", "abc123\n")

		err := actions.MergeAction(env.ctx, actions.MergeOptions{From: " abc123 ", Message: "m", Push: actions.PushNever})
		require.ErrorIs(t, err, gixerrors.ErrRootCommit)
		assert.Equal(t, []string{"Consider using `git rebase --root` instead."}, gixerrors.Hints(err))
		assert.Empty(t, env.fake.Interactive())
		assert.False(t, env.fake.Invoked("status"), "root check runs first")
	})

	t.Run("rejects a ref that resolves to the root commit", func(t *testing.T) {
		env := newTestEnv(t)
		env.fake.OnOutput("rev-list --max-parents=0 HEAD", "abc123def\n")
		env.fake.OnOutput("rev-parse --verify --quiet HEAD~2^{commit}", "abc123def\n")

		err := actions.MergeAction(env.ctx, actions.MergeOptions{From: "HEAD~2", Message: "m", Push: actions.PushNever})
		require.ErrorIs(t, err, gixerrors.ErrRootCommit)
		assert.Empty(t, env.fake.Interactive())
	})

	t.Run("rejects a dirty working tree", func(t *testing.T) {
		env := newTestEnv(t)
		env.fake.OnOutput("status --porcelain", " M test.txt\n")

		err := actions.MergeAction(env.ctx, actions.MergeOptions{From: "abc123", Message: "m", Push: actions.PushNever})
		require.ErrorIs(t, err, gixerrors.ErrDirtyWorkTree)
		assert.Equal(t, []string{"Please commit, stash, or reset changes before merging."}, gixerrors.Hints(err))
		assert.Empty(t, env.fake.Interactive())
	})

	t.Run("whitespace-only status counts as clean", func(t *testing.T) {
		env := newTestEnv(t)
		env.fake.OnOutput("status --porcelain", "  \n\n")

		err := actions.MergeAction(env.ctx, actions.MergeOptions{From: "abc123", Message: "m", Push: actions.PushNever})
		require.NoError(t, err)
		assert.True(t, env.fake.Invoked("reset"))
	})

	t.Run("status query failure aborts", func(t *testing.T) {
		env := newTestEnv(t)
		env.fake.OnExit("status --porcelain", 128)

		err := actions.MergeAction(env.ctx, actions.MergeOptions{From: "abc123", Message: "m", Push: actions.PushNever})
		var qf *gixerrors.QueryFailedError
		require.ErrorAs(t, err, &qf)
		assert.Empty(t, env.fake.Interactive())
	})

	t.Run("rejects an end ref other than HEAD", func(t *testing.T) {
		env := newTestEnv(t)
		env.fake.OnOutput("rev-parse --verify --quiet feature^{commit}", "1111111\n")
		env.fake.OnOutput("rev-parse --verify --quiet HEAD^{commit}", "2222222\n")

		err := actions.MergeAction(env.ctx, actions.MergeOptions{From: "abc123", To: "feature", Message: "m", Push: actions.PushNever})
		require.ErrorIs(t, err, gixerrors.ErrRefMismatch)
		assert.Contains(t, err.Error(), "feature is not HEAD")
		assert.Empty(t, env.fake.Interactive())
	})

	t.Run("accepts an end ref equal to HEAD", func(t *testing.T) {
		env := newTestEnv(t)
		env.fake.OnOutput("rev-parse --verify --quiet 2222222^{commit}", "2222222\n")
		env.fake.OnOutput("rev-parse --verify --quiet HEAD^{commit}", "2222222\n")

		err := actions.MergeAction(env.ctx, actions.MergeOptions{From: "abc123", To: "2222222", Message: "m", Push: actions.PushNever})
		require.NoError(t, err)
		assert.True(t, env.fake.Invoked("commit"))
	})

	t.Run("prompts for missing inputs", func(t *testing.T) {
		env := newTestEnv(t)
		env.prompter.
			WithText("", "abc123", "", "   ", "squashed").
			WithSelect(1)

		err := actions.MergeAction(env.ctx, actions.MergeOptions{})
		require.NoError(t, err)

		assert.Equal(t, []string{
			"Enter the start commit hash:",
			"Enter the end commit hash (leave blank for HEAD):",
			"Enter the new commit message:",
			"Do you want to force push automatically?",
		}, env.prompter.Asked())
		assert.Equal(t, []string{"Start commit hash is required.", "Commit message cannot be empty."}, env.prompter.ValidationErrors())
		assert.Equal(t, []string{
			"reset --soft abc123^",
			"commit --edit -m squashed --no-verify",
		}, env.fake.Interactive())
	})

	t.Run("end ref defaults to HEAD without a terminal", func(t *testing.T) {
		env := newTestEnv(t)

		err := actions.MergeAction(env.ctx, actions.MergeOptions{From: "abc123", Message: "m"})
		require.NoError(t, err)
		assert.False(t, env.fake.Invoked("push"), "unanswerable push prompt means no push")
		assert.Contains(t, env.stderr.String(), "Please push manually using git push")
	})

	t.Run("pushes with upstream creation", func(t *testing.T) {
		env := newTestEnv(t).onBranch("feature")
		env.ctx.Config.DefaultRemote = "fork"
		env.prompter.WithSelect(0)

		err := actions.MergeAction(env.ctx, actions.MergeOptions{From: "abc123", Message: "m"})
		require.NoError(t, err)

		assert.Equal(t, "push --set-upstream fork feature", env.fake.Interactive()[2])
		assert.Contains(t, env.stdout.String(), "No upstream detected. Executing: git push --set-upstream fork feature")
		assert.Contains(t, env.stdout.String(), "✅ Push & upstream set successfully")
	})

	t.Run("force pushes when an upstream exists", func(t *testing.T) {
		env := newTestEnv(t).onBranch("feature")
		env.fake.OnOutput("rev-parse --abbrev-ref feature@{u}", "origin/feature\n")

		err := actions.MergeAction(env.ctx, actions.MergeOptions{From: "abc123", To: "HEAD", Message: "m", Push: actions.PushAlways})
		require.NoError(t, err)

		assert.Equal(t, "push --force-with-lease", env.fake.Interactive()[2])
		assert.Contains(t, env.stdout.String(), "✅ Force push successful")
		assert.Empty(t, env.prompter.Asked())
	})

	t.Run("stops after a failed commit", func(t *testing.T) {
		env := newTestEnv(t)
		env.fake.OnExit("commit --edit -m m --no-verify", 1)

		err := actions.MergeAction(env.ctx, actions.MergeOptions{From: "abc123", Message: "m", Push: actions.PushAlways})
		var opErr *gixerrors.OperationFailedError
		require.ErrorAs(t, err, &opErr)
		assert.Equal(t, 1, opErr.ExitCode)
		assert.True(t, env.fake.Invoked("reset"), "reset is not rolled back")
		assert.Contains(t, env.stderr.String(), "❌ The reset was applied but the commit did not complete.")
		assert.Contains(t, env.stderr.String(), "👉 Your changes are still staged")
		assert.False(t, env.fake.Invoked("push"))
	})

	t.Run("git unavailable", func(t *testing.T) {
		env := newTestEnv(t)
		env.fake.Unavailable()

		err := actions.MergeAction(env.ctx, actions.MergeOptions{From: "abc123", Message: "m"})
		require.True(t, gittest.IsSpawnFailure(err))
		assert.Empty(t, env.fake.Interactive())
	})
}
