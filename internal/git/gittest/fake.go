// Package gittest provides an in-memory git.Executor for handler tests.
package gittest

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	gixerrors "gix.dev/gix/internal/errors"
	"gix.dev/gix/internal/git"
)

// Response is the scripted outcome of one command line.
// A non-nil Err simulates a spawn failure.
type Response struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Err      error
}

// Call records one invocation seen by a FakeExecutor.
type Call struct {
	Mode git.Mode
	Args []string
}

// String renders the call as a git command line.
func (c Call) String() string {
	return "git " + strings.Join(c.Args, " ")
}

// FakeExecutor answers commands from a table keyed by the space-joined args.
// Unknown commands succeed with empty output.
type FakeExecutor struct {
	mu        sync.Mutex
	responses map[string]Response
	calls     []Call
}

// NewFakeExecutor returns an empty FakeExecutor.
func NewFakeExecutor() *FakeExecutor {
	return &FakeExecutor{responses: map[string]Response{}}
}

// On scripts the response for a command line, e.g. On("status --porcelain", ...).
func (f *FakeExecutor) On(cmdline string, resp Response) *FakeExecutor {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[cmdline] = resp
	return f
}

// OnOutput scripts a successful command with the given stdout.
func (f *FakeExecutor) OnOutput(cmdline, stdout string) *FakeExecutor {
	return f.On(cmdline, Response{Stdout: stdout})
}

// OnExit scripts a command that exits with code.
func (f *FakeExecutor) OnExit(cmdline string, code int) *FakeExecutor {
	return f.On(cmdline, Response{ExitCode: code})
}

// Unavailable makes every command fail to spawn, as if git were not installed.
func (f *FakeExecutor) Unavailable() *FakeExecutor {
	return f.On("*", Response{Err: gixerrors.ErrGitUnavailable})
}

// Exec implements git.Executor.
func (f *FakeExecutor) Exec(ctx context.Context, mode git.Mode, args ...string) (*git.Result, error) {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}

	f.mu.Lock()
	f.calls = append(f.calls, Call{Mode: mode, Args: append([]string(nil), args...)})
	key := strings.Join(args, " ")
	resp, ok := f.responses[key]
	if !ok {
		resp = f.responses["*"]
	}
	f.mu.Unlock()

	if resp.Err != nil {
		if mode == git.ModeInteractive {
			return nil, gixerrors.NewOperationFailedError(args, -1, resp.Err)
		}
		return nil, gixerrors.NewQueryFailedError("execute git command", resp.Err)
	}

	result := &git.Result{
		Args:     append([]string(nil), args...),
		ExitCode: resp.ExitCode,
	}
	if mode == git.ModeCapture {
		result.Stdout = resp.Stdout
		result.Stderr = resp.Stderr
	}
	if mode == git.ModeInteractive && resp.ExitCode != 0 {
		return result, gixerrors.NewOperationFailedError(args, resp.ExitCode, fmt.Errorf("exit status %d", resp.ExitCode))
	}
	return result, nil
}

// Calls returns every recorded invocation in order.
func (f *FakeExecutor) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Call(nil), f.calls...)
}

// Commands returns the recorded invocations as space-joined arg strings.
func (f *FakeExecutor) Commands() []string {
	calls := f.Calls()
	out := make([]string, 0, len(calls))
	for _, c := range calls {
		out = append(out, strings.Join(c.Args, " "))
	}
	return out
}

// Interactive returns only the commands that ran attached to the terminal.
func (f *FakeExecutor) Interactive() []string {
	var out []string
	for _, c := range f.Calls() {
		if c.Mode == git.ModeInteractive {
			out = append(out, strings.Join(c.Args, " "))
		}
	}
	return out
}

// Invoked reports whether a command starting with prefix ran.
func (f *FakeExecutor) Invoked(prefix string) bool {
	for _, cmd := range f.Commands() {
		if cmd == prefix || strings.HasPrefix(cmd, prefix+" ") {
			return true
		}
	}
	return false
}

// IsSpawnFailure reports whether err came from a scripted spawn failure.
func IsSpawnFailure(err error) bool {
	return errors.Is(err, gixerrors.ErrGitUnavailable)
}

var _ git.Executor = (*FakeExecutor)(nil)
