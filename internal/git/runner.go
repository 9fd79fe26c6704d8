package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	gixerrors "gix.dev/gix/internal/errors"
)

// Mode selects how a git process is attached to the caller.
type Mode int

const (
	// ModeCapture collects stdout and stderr into the Result.
	ModeCapture Mode = iota
	// ModeInteractive shares the caller's standard streams with git so the user
	// sees its native output and can drive editors or merge tools.
	ModeInteractive
)

func (m Mode) String() string {
	if m == ModeInteractive {
		return "interactive"
	}
	return "capture"
}

// Result is the outcome of a single git invocation.
// Stdout and Stderr are only populated in ModeCapture.
type Result struct {
	Args     []string
	Stdout   string
	Stderr   string
	ExitCode int
}

// Success reports whether git exited with status zero.
func (r *Result) Success() bool {
	return r.ExitCode == 0
}

// Output returns stdout with surrounding whitespace removed.
func (r *Result) Output() string {
	return strings.TrimSpace(r.Stdout)
}

// Lines returns the non-empty lines of stdout.
func (r *Result) Lines() []string {
	output := r.Output()
	if output == "" {
		return []string{}
	}
	var lines []string
	for _, line := range strings.Split(output, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// Executor runs git. It is the single process-execution capability used by
// the rest of gix.
//
// In ModeCapture a non-zero exit status is reported through Result.ExitCode and
// the error is non-nil only when git could not be started. In ModeInteractive a
// non-zero exit status is returned as an *errors.OperationFailedError.
type Executor interface {
	Exec(ctx context.Context, mode Mode, args ...string) (*Result, error)
}

// CommandRunner is the Executor backed by os/exec.
type CommandRunner struct {
	binary     string
	workingDir string
	stdin      io.Reader
	stdout     io.Writer
	stderr     io.Writer
	logger     *slog.Logger
}

// Option configures a CommandRunner.
type Option func(*CommandRunner)

// WithWorkingDir runs git in dir instead of the process working directory.
func WithWorkingDir(dir string) Option {
	return func(r *CommandRunner) {
		r.workingDir = dir
	}
}

// WithStreams sets the streams inherited by interactive invocations.
func WithStreams(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(r *CommandRunner) {
		r.stdin = stdin
		r.stdout = stdout
		r.stderr = stderr
	}
}

// WithLogger logs every invocation at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(r *CommandRunner) {
		r.logger = logger
	}
}

// NewCommandRunner creates a CommandRunner for the given git binary.
func NewCommandRunner(binary string, opts ...Option) *CommandRunner {
	if binary == "" {
		binary = "git"
	}
	r := &CommandRunner{
		binary: binary,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Exec runs git once and waits for it to exit. There is no retry and no timeout;
// cancelling ctx kills the child process.
func (r *CommandRunner) Exec(ctx context.Context, mode Mode, args ...string) (*Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	r.debug("$ git %s (%s)", strings.Join(args, " "), mode)

	cmd := exec.CommandContext(ctx, r.binary, args...)
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}

	var stdout, stderr bytes.Buffer
	if mode == ModeInteractive {
		cmd.Stdin = r.stdin
		cmd.Stdout = r.stdout
		cmd.Stderr = r.stderr
	} else {
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
	}

	err := cmd.Run()
	result := &Result{
		Args:   append([]string(nil), args...),
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		result.ExitCode = 0
	case ctx.Err() != nil:
		return nil, ctx.Err()
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitCode()
		r.debug("git %s exited with status %d", firstArg(args), result.ExitCode)
		if mode == ModeInteractive {
			return result, gixerrors.NewOperationFailedError(args, result.ExitCode, err)
		}
	default:
		spawnErr := classifySpawnError(err)
		if mode == ModeInteractive {
			return nil, gixerrors.NewOperationFailedError(args, -1, spawnErr)
		}
		return nil, gixerrors.NewQueryFailedError("execute git command", spawnErr)
	}

	return result, nil
}

// classifySpawnError marks "binary not found" failures with ErrGitUnavailable.
func classifySpawnError(err error) error {
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %v", gixerrors.ErrGitUnavailable, err)
	}
	return err
}

func (r *CommandRunner) debug(format string, args ...interface{}) {
	if r.logger == nil {
		return
	}
	r.logger.Debug(fmt.Sprintf(format, args...))
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

var _ Executor = (*CommandRunner)(nil)
