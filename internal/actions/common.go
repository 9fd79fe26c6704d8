package actions

import (
	"strings"

	"github.com/kballard/go-shellquote"

	gixerrors "gix.dev/gix/internal/errors"
	"gix.dev/gix/internal/runtime"
)

// ensureCleanWorkTree fails with ErrDirtyWorkTree when `git status --porcelain`
// reports anything. verb completes "before ..." in the hint.
func ensureCleanWorkTree(ctx *runtime.Context, verb string) error {
	clean, err := ctx.Git.IsWorkingTreeClean(ctx)
	if err != nil {
		return err
	}
	if !clean {
		return gixerrors.WithHintf(gixerrors.ErrDirtyWorkTree,
			"Please commit, stash, or reset changes before %s.", verb)
	}
	return nil
}

// announce prints the command line about to run.
func announce(ctx *runtime.Context, args ...string) {
	ctx.Splog.Info("🧨 Running: git %s", strings.Join(args, " "))
}

// quote renders s as a single shell word, leaving plain text and non-ASCII
// characters untouched.
func quote(s string) string {
	return shellquote.Join(s)
}
