package git

import (
	"context"
	"fmt"
)

// SoftReset moves the current branch to target, keeping the index and working tree.
func (c *Client) SoftReset(ctx context.Context, target string) error {
	if err := c.interactive(ctx, "reset", "--soft", target); err != nil {
		return fmt.Errorf("failed to reset to %s: %w", target, err)
	}
	return nil
}
