package git

import (
	"context"
	"fmt"
	"strings"

	gixerrors "gix.dev/gix/internal/errors"
)

// Client exposes the repository queries and mutations gix needs on top of an
// Executor. It holds no repository state of its own.
type Client struct {
	exec Executor
}

// NewClient creates a Client that runs git through exec.
func NewClient(exec Executor) *Client {
	return &Client{exec: exec}
}

// capture runs a read-only command. A spawn failure is reported as QueryFailed
// for op; a non-zero exit is left for the caller to interpret.
func (c *Client) capture(ctx context.Context, op string, args ...string) (*Result, error) {
	res, err := c.exec.Exec(ctx, ModeCapture, args...)
	if err != nil {
		return nil, gixerrors.NewQueryFailedError(op, err)
	}
	return res, nil
}

// query runs a read-only command and treats a non-zero exit as QueryFailed.
func (c *Client) query(ctx context.Context, op string, args ...string) (*Result, error) {
	res, err := c.capture(ctx, op, args...)
	if err != nil {
		return nil, err
	}
	if !res.Success() {
		return nil, gixerrors.NewQueryFailedError(op, exitError(res))
	}
	return res, nil
}

// interactive runs a mutating command attached to the terminal.
func (c *Client) interactive(ctx context.Context, args ...string) error {
	_, err := c.exec.Exec(ctx, ModeInteractive, args...)
	return err
}

// Version returns the output of `git --version`.
func (c *Client) Version(ctx context.Context) (string, error) {
	res, err := c.query(ctx, "get git version", "--version")
	if err != nil {
		return "", err
	}
	return res.Output(), nil
}

func exitError(res *Result) error {
	msg := strings.TrimSpace(res.Stderr)
	if msg == "" {
		return fmt.Errorf("git %s exited with status %d", strings.Join(res.Args, " "), res.ExitCode)
	}
	return fmt.Errorf("git %s exited with status %d: %s", strings.Join(res.Args, " "), res.ExitCode, msg)
}
