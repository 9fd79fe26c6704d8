package git

import (
	"context"

	gixerrors "gix.dev/gix/internal/errors"
)

// Remotes returns the names of the configured remotes.
func (c *Client) Remotes(ctx context.Context) ([]string, error) {
	res, err := c.query(ctx, "list remotes", "remote")
	if err != nil {
		return nil, err
	}
	return res.Lines(), nil
}

// Fetch updates remote-tracking refs from the default remote.
func (c *Client) Fetch(ctx context.Context) error {
	if err := c.interactive(ctx, "fetch"); err != nil {
		return gixerrors.Wrapf(err, "failed to fetch")
	}
	return nil
}
