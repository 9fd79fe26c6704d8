package runtime

import (
	"context"
	"fmt"
	"io"
	"os"

	"gix.dev/gix/internal/config"
	"gix.dev/gix/internal/git"
	"gix.dev/gix/internal/tui"
)

// Context provides access to everything a command needs. It embeds the
// cancellation context so it can be passed straight to git calls.
type Context struct {
	context.Context

	Config   *config.Config
	Splog    *tui.Splog
	Git      *git.Client
	Prompter tui.Prompter
	// WorkDir is the directory git runs in; empty means the process directory.
	WorkDir string
}

// NewContext assembles a Context from ready-made parts.
func NewContext(ctx context.Context, cfg *config.Config, splog *tui.Splog, client *git.Client, prompter tui.Prompter) *Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg == nil {
		cfg = config.Default()
	}
	if splog == nil {
		splog = tui.NewDiscardSplog()
	}
	return &Context{
		Context:  ctx,
		Config:   cfg,
		Splog:    splog,
		Git:      client,
		Prompter: prompter,
	}
}

// Options controls how Build wires the real collaborators.
type Options struct {
	Config  *config.Config
	WorkDir string
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
}

// Build creates a Context backed by the real git binary and terminal prompts.
// The caller must Close it to flush the log file.
func Build(ctx context.Context, opts Options) (*Context, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	stdin, stdout, stderr := opts.Stdin, opts.Stdout, opts.Stderr
	if stdin == nil {
		stdin = os.Stdin
	}
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	splog, err := tui.NewSplog(tui.SplogOptions{
		Stdout:  stdout,
		Stderr:  stderr,
		Debug:   cfg.Debug,
		LogFile: cfg.LogFile,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set up logging: %w", err)
	}

	if opts.WorkDir != "" {
		info, err := os.Stat(opts.WorkDir)
		if err != nil {
			_ = splog.Close()
			return nil, fmt.Errorf("invalid working directory: %w", err)
		}
		if !info.IsDir() {
			_ = splog.Close()
			return nil, fmt.Errorf("invalid working directory: %s is not a directory", opts.WorkDir)
		}
	}

	runner := git.NewCommandRunner(cfg.GitBinary,
		git.WithWorkingDir(opts.WorkDir),
		git.WithStreams(stdin, stdout, stderr),
		git.WithLogger(splog.Logger()),
	)

	c := NewContext(ctx, cfg, splog, git.NewClient(runner), tui.NewTerminalPrompter(cfg.NonInteractive, tui.WithPromptStreams(stdin, stdout, stderr)))
	c.WorkDir = opts.WorkDir
	return c, nil
}

// Close releases resources held by the context.
func (c *Context) Close() error {
	return c.Splog.Close()
}
