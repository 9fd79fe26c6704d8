package actions

import (
	"fmt"

	"gix.dev/gix/internal/runtime"
)

// ResetOptions are options for the reset command
type ResetOptions struct {
	// Yes skips the confirmation prompt.
	Yes bool
}

// ResetAction soft-resets the current branch to its remote counterpart,
// discarding local commits while keeping their changes staged.
func ResetAction(ctx *runtime.Context, opts ResetOptions) error {
	branch, err := ctx.Git.CurrentBranch(ctx)
	if err != nil {
		return err
	}

	remote, err := ctx.Git.BranchRemote(ctx, branch)
	if err != nil {
		return err
	}
	remoteRef := fmt.Sprintf("%s/%s", remote, branch)

	if !opts.Yes {
		proceed, err := ctx.Prompter.Confirm(
			fmt.Sprintf("⚠️  This will remove all local commits not pushed to %s. Proceed?", remoteRef),
			false,
		)
		if err != nil {
			return err
		}
		if !proceed {
			ctx.Splog.Info("❌ Cancelled.")
			return nil
		}
	}

	ctx.Splog.Newline()
	announce(ctx, "reset", "--soft", remoteRef)
	if err := ctx.Git.SoftReset(ctx, remoteRef); err != nil {
		return err
	}
	ctx.Splog.Success("Local commits have been discarded (soft reset)")
	return nil
}
