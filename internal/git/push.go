package git

import (
	"context"
	"fmt"
)

// PushSetUpstream pushes branch to remote and records it as the upstream.
func (c *Client) PushSetUpstream(ctx context.Context, remote, branch string) error {
	if err := c.interactive(ctx, "push", "--set-upstream", remote, branch); err != nil {
		return fmt.Errorf("failed to push %s to %s: %w", branch, remote, err)
	}
	return nil
}

// PushForceWithLease force-pushes the current branch to its upstream, refusing
// if the remote moved since the last fetch.
func (c *Client) PushForceWithLease(ctx context.Context) error {
	if err := c.interactive(ctx, "push", "--force-with-lease"); err != nil {
		return fmt.Errorf("failed to force push: %w", err)
	}
	return nil
}
