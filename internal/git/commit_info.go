package git

import (
	"context"
	"fmt"

	gixerrors "gix.dev/gix/internal/errors"
)

// RootCommits returns the hashes of every parentless commit reachable from HEAD.
func (c *Client) RootCommits(ctx context.Context) ([]string, error) {
	res, err := c.query(ctx, "list root commits", "rev-list", "--max-parents=0", "HEAD")
	if err != nil {
		return nil, err
	}
	return res.Lines(), nil
}

// ResolveCommit returns the full hash of the commit ref names.
func (c *Client) ResolveCommit(ctx context.Context, ref string) (string, error) {
	op := fmt.Sprintf("resolve %s", ref)
	res, err := c.capture(ctx, op, "rev-parse", "--verify", "--quiet", ref+"^{commit}")
	if err != nil {
		return "", err
	}
	hash := res.Output()
	if !res.Success() || hash == "" {
		return "", gixerrors.NewQueryFailedError(op, gixerrors.ErrUnknownRevision)
	}
	return hash, nil
}

// IsRootCommit reports whether ref is one of the repository's root commits.
// ref matches either verbatim or by its resolved hash.
func (c *Client) IsRootCommit(ctx context.Context, ref string) (bool, error) {
	roots, err := c.RootCommits(ctx)
	if err != nil {
		return false, err
	}
	candidates := []string{ref}
	if hash, err := c.ResolveCommit(ctx, ref); err == nil {
		candidates = append(candidates, hash)
	}
	for _, root := range roots {
		for _, candidate := range candidates {
			if candidate != "" && candidate == root {
				return true, nil
			}
		}
	}
	return false, nil
}
