package git

import (
	"context"
	"fmt"
)

// Rebase replays the current branch onto upstream. Conflicts are left for the
// user to resolve; the returned error wraps the OperationFailedError.
func (c *Client) Rebase(ctx context.Context, upstream string) error {
	if err := c.interactive(ctx, "rebase", upstream); err != nil {
		return fmt.Errorf("failed to rebase onto %s: %w", upstream, err)
	}
	return nil
}

// RebaseInteractiveFrom opens an interactive rebase of every commit after base.
func (c *Client) RebaseInteractiveFrom(ctx context.Context, base string) error {
	if err := c.interactive(ctx, "rebase", "-i", base); err != nil {
		return fmt.Errorf("failed to rebase from %s: %w", base, err)
	}
	return nil
}

// RebaseInteractiveRoot opens an interactive rebase of the whole history.
func (c *Client) RebaseInteractiveRoot(ctx context.Context) error {
	if err := c.interactive(ctx, "rebase", "-i", "--root"); err != nil {
		return fmt.Errorf("failed to rebase from root: %w", err)
	}
	return nil
}
