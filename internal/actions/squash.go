package actions

import (
	"fmt"

	"gix.dev/gix/internal/runtime"
)

// DefaultSquashCount is used when no count is given.
const DefaultSquashCount = 2

// SquashOptions are options for the squash command
type SquashOptions struct {
	// Count is the number of commits from HEAD to rewrite.
	Count int
	// All rewrites the whole history and takes precedence over Count.
	All bool
}

// SquashAction opens an interactive rebase over the last Count commits, or
// over the entire history when All is set.
func SquashAction(ctx *runtime.Context, opts SquashOptions) error {
	if !opts.All && opts.Count < 1 {
		return fmt.Errorf("number of commits to squash must be at least 1, got %d", opts.Count)
	}

	if err := ensureCleanWorkTree(ctx, "squashing"); err != nil {
		return err
	}

	if opts.All {
		announce(ctx, "rebase", "-i", "--root")
		return ctx.Git.RebaseInteractiveRoot(ctx)
	}

	base := fmt.Sprintf("HEAD~%d", opts.Count)
	announce(ctx, "rebase", "-i", base)
	return ctx.Git.RebaseInteractiveFrom(ctx, base)
}
