package testhelpers

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
)

var (
	sharedBinaryPath string
	binaryOnce       sync.Once
	binaryErr        error
)

// SetSharedBinaryPath sets the shared binary path for tests.
func SetSharedBinaryPath(path string) {
	sharedBinaryPath = path
}

// GetSharedBinaryPath returns the gix binary path, building it lazily on first
// access if TestMain did not set it.
func GetSharedBinaryPath() string {
	binaryOnce.Do(func() {
		if sharedBinaryPath == "" {
			path, _, err := buildBinary()
			if err != nil {
				binaryErr = err
				return
			}
			sharedBinaryPath = path
		}
	})
	return sharedBinaryPath
}

// GetBinaryError returns any error that occurred during binary building.
func GetBinaryError() error {
	return binaryErr
}

// TestMain builds the gix binary once, runs the package's tests and removes
// the binary afterwards.
func TestMain(m *testing.M, cleanup func()) {
	binaryPath, binaryCleanup, err := buildBinary()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build gix binary: %v\n", err)
		os.Exit(1)
	}
	SetSharedBinaryPath(binaryPath)

	code := m.Run()

	binaryCleanup()
	if cleanup != nil {
		cleanup()
	}
	os.Exit(code)
}

// buildBinary compiles ./cmd/gix into a temporary directory.
func buildBinary() (string, func(), error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	moduleRoot := findModuleRoot(wd)
	if moduleRoot == "" {
		return "", nil, fmt.Errorf("could not find module root (go.mod) starting from %s", wd)
	}

	tmpDir, err := os.MkdirTemp("", "gix-test-binary-*")
	if err != nil {
		return "", nil, fmt.Errorf("failed to create temp directory: %w", err)
	}

	binaryPath := filepath.Join(tmpDir, "gix")

	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/gix")
	cmd.Dir = moduleRoot
	if output, err := cmd.CombinedOutput(); err != nil {
		_ = os.RemoveAll(tmpDir)
		return "", nil, fmt.Errorf("failed to build: %s: %w", string(output), err)
	}

	cleanup := func() {
		_ = os.RemoveAll(tmpDir)
	}
	return binaryPath, cleanup, nil
}

// findModuleRoot walks up from startDir to the directory containing go.mod.
func findModuleRoot(startDir string) string {
	dir := startDir
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// CLIResult holds the outcome of one gix invocation.
type CLIResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Output returns stdout followed by stderr.
func (r CLIResult) Output() string {
	return r.Stdout + r.Stderr
}

// RunGix runs the gix binary in dir with a hermetic environment: no prompts,
// no-op editors, no global git config and a private XDG config home.
// extraEnv entries are appended last and win.
func RunGix(t *testing.T, dir string, extraEnv []string, args ...string) CLIResult {
	t.Helper()

	binaryPath := GetSharedBinaryPath()
	if binaryPath == "" {
		t.Fatalf("gix binary unavailable: %v", GetBinaryError())
	}

	cmd := exec.Command(binaryPath, args...)
	cmd.Dir = dir
	cmd.Env = append(gitEnv(),
		"GIX_NON_INTERACTIVE=true",
		"GIT_EDITOR=true",
		"GIT_SEQUENCE_EDITOR=true",
		"GIT_TERMINAL_PROMPT=0",
		"XDG_CONFIG_HOME="+t.TempDir(),
		"NO_COLOR=1",
	)
	cmd.Env = append(cmd.Env, extraEnv...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	result := CLIResult{}
	if err := cmd.Run(); err != nil {
		exitErr, ok := err.(*exec.ExitError)
		if !ok {
			t.Fatalf("failed to run gix: %v", err)
		}
		result.ExitCode = exitErr.ExitCode()
	}
	result.Stdout = stdout.String()
	result.Stderr = stderr.String()
	return result
}
