package git

import "context"

// IsWorkingTreeClean reports whether `git status --porcelain` prints nothing.
func (c *Client) IsWorkingTreeClean(ctx context.Context) (bool, error) {
	res, err := c.query(ctx, "check working tree status", "status", "--porcelain")
	if err != nil {
		return false, err
	}
	return res.Output() == "", nil
}

// IsInsideWorkTree reports whether git considers the working directory part of
// a work tree. Every failure, including a missing git, yields false.
func (c *Client) IsInsideWorkTree(ctx context.Context) bool {
	res, err := c.exec.Exec(ctx, ModeCapture, "rev-parse", "--is-inside-work-tree")
	if err != nil || !res.Success() {
		return false
	}
	return res.Output() == "true"
}
