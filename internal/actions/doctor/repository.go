package doctor

import (
	"strings"

	gixerrors "gix.dev/gix/internal/errors"
	"gix.dev/gix/internal/runtime"
)

// checkInsideRepository is gating: the remaining checks need a work tree.
func checkInsideRepository(ctx *runtime.Context, opts Options) error {
	if !ctx.Git.IsInsideWorkTree(ctx) {
		return gixerrors.WithHint(gixerrors.ErrNotARepository,
			"Run gix from inside a git work tree, or pass --cwd <repo>.")
	}
	ctx.Splog.Success("Inside a Git repository")

	if root, err := opts.RepoRoot(ctx.WorkDir); err == nil {
		ctx.Splog.Info("📂 Repository root: %s", root)
	} else {
		ctx.Splog.Debug("could not locate repository root: %v", err)
	}
	return nil
}

func checkWorkingTree(ctx *runtime.Context, r *report) {
	clean, err := ctx.Git.IsWorkingTreeClean(ctx)
	switch {
	case err != nil:
		r.warn(ctx, "Failed to check working directory status")
	case clean:
		ctx.Splog.Success("Working directory is clean")
	default:
		r.warn(ctx, "Working directory has uncommitted changes")
	}
}

func checkRemotes(ctx *runtime.Context, r *report) {
	remotes, err := ctx.Git.Remotes(ctx)
	switch {
	case err != nil:
		r.warn(ctx, "Failed to check remotes")
	case len(remotes) == 0:
		r.warn(ctx, "No Git remotes configured")
	default:
		ctx.Splog.Success("Remote(s) configured: %s", strings.Join(remotes, ", "))
	}
}

func checkCurrentBranch(ctx *runtime.Context, r *report) {
	branch, err := ctx.Git.CurrentBranch(ctx)
	if err != nil {
		r.warn(ctx, "Failed to get current branch")
		return
	}
	ctx.Splog.Info("📍 Current branch: %s", branch)
}
