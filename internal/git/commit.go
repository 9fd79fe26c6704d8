package git

import (
	"context"
	"fmt"
)

// CommitWithEditor commits the index with message as the initial text and
// opens the user's editor to refine it. Commit hooks are skipped.
func (c *Client) CommitWithEditor(ctx context.Context, message string) error {
	if err := c.interactive(ctx, CommitArgs(message)...); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// CommitArgs returns the arguments CommitWithEditor passes to git.
func CommitArgs(message string) []string {
	return []string{"commit", "--edit", "-m", message, "--no-verify"}
}
