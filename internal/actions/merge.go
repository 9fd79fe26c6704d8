package actions

import (
	"errors"
	"fmt"
	"strings"

	gixerrors "gix.dev/gix/internal/errors"
	"gix.dev/gix/internal/runtime"
	"gix.dev/gix/internal/tui"
)

// PushMode says whether MergeAction pushes the rewritten branch.
type PushMode int

const (
	// PushAsk prompts the user.
	PushAsk PushMode = iota
	// PushAlways pushes without asking.
	PushAlways
	// PushNever leaves pushing to the user.
	PushNever
)

// Prompt texts shown by MergeAction.
const (
	promptFrom    = "Enter the start commit hash:"
	promptTo      = "Enter the end commit hash (leave blank for HEAD):"
	promptMessage = "Enter the new commit message:"
	promptPush    = "Do you want to force push automatically?"
)

var pushChoices = []string{"✅ Yes (default)", "❌ No, I will push manually"}

// MergeOptions are options for the merge command
type MergeOptions struct {
	// From is the oldest commit folded into the new commit.
	From string
	// To is the newest commit; it must be HEAD.
	To string
	// Message seeds the commit message editor.
	Message string
	Push    PushMode
}

// MergeAction folds every commit from From through HEAD into a single new
// commit, then optionally pushes the rewritten branch.
func MergeAction(ctx *runtime.Context, opts MergeOptions) error {
	if err := collectMergeInputs(ctx, &opts); err != nil {
		return err
	}

	if err := checkMergePreconditions(ctx, opts); err != nil {
		return err
	}

	resetTarget := opts.From + "^"
	ctx.Splog.Newline()
	ctx.Splog.Info("🔧 Executing:\ngit reset --soft %s && git commit --edit -m %s --no-verify",
		resetTarget, quote(opts.Message))
	ctx.Splog.Newline()

	if err := ctx.Git.SoftReset(ctx, resetTarget); err != nil {
		return err
	}
	ctx.Splog.Success("Reset successful")

	if err := ctx.Git.CommitWithEditor(ctx, opts.Message); err != nil {
		ctx.Splog.Error("The reset was applied but the commit did not complete.")
		ctx.Splog.Hint("Your changes are still staged: run `git commit` to finish, or `git reset --soft ORIG_HEAD` to undo.")
		return err
	}
	ctx.Splog.Success("Commit successful")

	push, err := shouldPush(ctx, opts.Push)
	if err != nil {
		return err
	}
	if !push {
		ctx.Splog.Warn("Please push manually using git push")
		return nil
	}
	return pushRewrittenBranch(ctx)
}

// collectMergeInputs prompts for every input not given as a flag.
func collectMergeInputs(ctx *runtime.Context, opts *MergeOptions) error {
	var err error

	opts.From = strings.TrimSpace(opts.From)
	opts.To = strings.TrimSpace(opts.To)

	if opts.From == "" {
		opts.From, err = ctx.Prompter.Text(promptFrom, "", tui.NonEmpty("Start commit hash is required."))
		if err != nil {
			return err
		}
	}

	if opts.To == "" {
		opts.To, err = ctx.Prompter.Text(promptTo, "HEAD")
		switch {
		case errors.Is(err, tui.ErrInteractiveDisabled):
			opts.To = "HEAD"
		case err != nil:
			return err
		}
	}

	if opts.Message == "" {
		opts.Message, err = ctx.Prompter.Text(promptMessage, "", tui.NonEmpty("Commit message cannot be empty."))
		if err != nil {
			return err
		}
	}

	if err := tui.Validate(opts.From, tui.NonEmpty("Start commit hash is required.")); err != nil {
		return err
	}
	return tui.Validate(opts.Message, tui.NonEmpty("Commit message cannot be empty."))
}

// checkMergePreconditions runs every check that must pass before the reset.
func checkMergePreconditions(ctx *runtime.Context, opts MergeOptions) error {
	isRoot, err := ctx.Git.IsRootCommit(ctx, opts.From)
	if err != nil {
		return err
	}
	if isRoot {
		return gixerrors.WithHint(gixerrors.ErrRootCommit, "Consider using `git rebase --root` instead.")
	}

	if err := ensureCleanWorkTree(ctx, "merging"); err != nil {
		return err
	}

	if opts.To == "" || opts.To == "HEAD" {
		return nil
	}
	to, err := ctx.Git.ResolveCommit(ctx, opts.To)
	if err != nil {
		return err
	}
	head, err := ctx.Git.ResolveCommit(ctx, "HEAD")
	if err != nil {
		return err
	}
	if to != head {
		return gixerrors.WithHint(
			fmt.Errorf("%w: %s is not HEAD", gixerrors.ErrRefMismatch, opts.To),
			"merge always folds up to HEAD; check out the end commit first or omit --to.",
		)
	}
	return nil
}

func shouldPush(ctx *runtime.Context, mode PushMode) (bool, error) {
	switch mode {
	case PushAlways:
		return true, nil
	case PushNever:
		return false, nil
	}

	choice, err := ctx.Prompter.Select(promptPush, pushChoices, 0)
	if errors.Is(err, tui.ErrInteractiveDisabled) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return choice == 0, nil
}

// pushRewrittenBranch publishes the branch, creating the upstream on first push.
func pushRewrittenBranch(ctx *runtime.Context) error {
	branch, err := ctx.Git.CurrentBranch(ctx)
	if err != nil {
		return err
	}

	if !ctx.Git.HasUpstream(ctx, branch) {
		remote := ctx.Config.DefaultRemote
		ctx.Splog.Newline()
		ctx.Splog.Info("🚀 No upstream detected. Executing: git push --set-upstream %s %s", remote, branch)
		ctx.Splog.Newline()
		if err := ctx.Git.PushSetUpstream(ctx, remote, branch); err != nil {
			return err
		}
		ctx.Splog.Success("Push & upstream set successfully")
		return nil
	}

	ctx.Splog.Newline()
	ctx.Splog.Info("🚀 Executing git push --force-with-lease")
	ctx.Splog.Newline()
	if err := ctx.Git.PushForceWithLease(ctx); err != nil {
		return err
	}
	ctx.Splog.Success("Force push successful")
	return nil
}
