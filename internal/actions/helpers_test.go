package actions_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"gix.dev/gix/internal/config"
	"gix.dev/gix/internal/git"
	"gix.dev/gix/internal/git/gittest"
	"gix.dev/gix/internal/runtime"
	"gix.dev/gix/internal/tui"
)

func init() {
	// Plain output keeps message assertions free of escape codes.
	lipgloss.SetColorProfile(termenv.Ascii)
}

type testEnv struct {
	ctx      *runtime.Context
	fake     *gittest.FakeExecutor
	prompter *tui.ScriptedPrompter
	stdout   *bytes.Buffer
	stderr   *bytes.Buffer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		fake:     gittest.NewFakeExecutor(),
		prompter: tui.NewScriptedPrompter(),
		stdout:   &bytes.Buffer{},
		stderr:   &bytes.Buffer{},
	}
	splog, err := tui.NewSplog(tui.SplogOptions{Stdout: env.stdout, Stderr: env.stderr})
	require.NoError(t, err)

	env.ctx = runtime.NewContext(context.Background(), config.Default(), splog, git.NewClient(env.fake), env.prompter)
	return env
}

func (e *testEnv) onBranch(branch string) *testEnv {
	e.fake.OnOutput("symbolic-ref --short HEAD", branch+"\n")
	return e
}
