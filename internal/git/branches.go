package git

import (
	"context"
	"fmt"

	gixerrors "gix.dev/gix/internal/errors"
)

// CurrentBranch returns the short name of the branch HEAD points at.
// A detached HEAD fails with ErrNotOnBranch.
func (c *Client) CurrentBranch(ctx context.Context) (string, error) {
	res, err := c.capture(ctx, "get current branch", "symbolic-ref", "--short", "HEAD")
	if err != nil {
		return "", err
	}
	branch := res.Output()
	if !res.Success() || branch == "" {
		return "", gixerrors.NewQueryFailedError("get current branch", gixerrors.ErrNotOnBranch)
	}
	return branch, nil
}

// Upstream returns the short name of branch's upstream, e.g. "origin/main".
// The boolean is false when no upstream is configured.
func (c *Client) Upstream(ctx context.Context, branch string) (string, bool, error) {
	res, err := c.capture(ctx, "resolve upstream", "rev-parse", "--abbrev-ref", branch+"@{u}")
	if err != nil {
		return "", false, err
	}
	upstream := res.Output()
	if !res.Success() || upstream == "" {
		return "", false, nil
	}
	return upstream, true, nil
}

// HasUpstream reports whether branch has an upstream. Errors count as no upstream.
func (c *Client) HasUpstream(ctx context.Context, branch string) bool {
	_, ok, err := c.Upstream(ctx, branch)
	return err == nil && ok
}

// BranchRemote returns the remote configured for branch (branch.<name>.remote).
func (c *Client) BranchRemote(ctx context.Context, branch string) (string, error) {
	op := fmt.Sprintf("get remote for branch %s", branch)
	res, err := c.capture(ctx, op, "config", fmt.Sprintf("branch.%s.remote", branch))
	if err != nil {
		return "", err
	}
	remote := res.Output()
	if !res.Success() || remote == "" {
		return "", gixerrors.NewQueryFailedError(op, gixerrors.ErrNoRemote)
	}
	return remote, nil
}

// Refs returns the short names of local branches and remote-tracking branches.
func (c *Client) Refs(ctx context.Context) ([]string, error) {
	res, err := c.query(ctx, "list refs", "for-each-ref", "--format=%(refname:short)", "refs/heads", "refs/remotes")
	if err != nil {
		return nil, err
	}
	return res.Lines(), nil
}
