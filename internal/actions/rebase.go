package actions

import (
	"fmt"

	gixerrors "gix.dev/gix/internal/errors"
	"gix.dev/gix/internal/runtime"
)

// RebaseOptions are options for the rebase command
type RebaseOptions struct {
	// Upstream to rebase onto; defaults to the current branch's upstream.
	Upstream string
}

// RebaseAction fetches and rebases the current branch onto its upstream.
// Conflicts are left in place for the user to resolve.
func RebaseAction(ctx *runtime.Context, opts RebaseOptions) error {
	if err := ensureCleanWorkTree(ctx, "rebasing"); err != nil {
		return err
	}

	upstream := opts.Upstream
	if upstream == "" {
		branch, err := ctx.Git.CurrentBranch(ctx)
		if err != nil {
			return err
		}
		resolved, ok, err := ctx.Git.Upstream(ctx, branch)
		if err != nil {
			return err
		}
		if !ok {
			return gixerrors.WithHint(
				fmt.Errorf("%w for branch '%s'", gixerrors.ErrNoUpstream, branch),
				"Please specify one with --upstream or set it via `git branch --set-upstream-to <remote>/<branch>`",
			)
		}
		upstream = resolved
	}

	ctx.Splog.Info("🔧 Target upstream: %s", upstream)

	ctx.Splog.Info("🔄 Fetching latest changes...")
	if err := ctx.Git.Fetch(ctx); err != nil {
		return err
	}

	ctx.Splog.Info("🚀 Rebasing onto %s...", upstream)
	if err := ctx.Git.Rebase(ctx, upstream); err != nil {
		ctx.Splog.Newline()
		ctx.Splog.Warn("Please resolve conflicts manually.")
		ctx.Splog.Hint("After resolving:\n   1. git add <files>\n   2. git rebase --continue")
		ctx.Splog.Hint("To abort:\n   git rebase --abort")
		return fmt.Errorf("%w: %w", gixerrors.ErrRebaseConflict, err)
	}

	ctx.Splog.Success("Rebase successful!")
	return nil
}
