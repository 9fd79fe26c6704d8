package doctor

import (
	"context"
	"fmt"
	"os/exec"
	"regexp"
	goruntime "runtime"
	"strings"

	"github.com/hashicorp/go-version"

	gixerrors "gix.dev/gix/internal/errors"
	"gix.dev/gix/internal/runtime"
)

// MinGitVersion is the oldest git gix is tested against (git switch/restore era).
const MinGitVersion = "2.23.0"

var versionPattern = regexp.MustCompile(`\d+(\.\d+)+`)

func toolchainVersion(ctx context.Context, toolchain string) (string, error) {
	out, err := exec.CommandContext(ctx, toolchain, "version").Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// checkToolchain reports the build toolchain. It never fails.
func checkToolchain(ctx *runtime.Context, opts Options, r *report) {
	v, err := opts.ToolchainVersion(ctx, opts.Toolchain)
	if err != nil || v == "" {
		r.warn(ctx, "Go toolchain not found (but gix is running)")
	} else {
		ctx.Splog.Success("Go toolchain: %s", v)
	}
	ctx.Splog.Info("   gix built with %s", goruntime.Version())
}

// checkGit is gating: without a working git nothing else can run.
func checkGit(ctx *runtime.Context, r *report) error {
	out, err := ctx.Git.Version(ctx)
	if err != nil {
		return gixerrors.WithHint(err,
			"Install git, or point gix at it with git_binary in config.yaml or GIX_GIT_BINARY.")
	}
	ctx.Splog.Success("Git installed: %s", out)

	ok, err := gitVersionSupported(out)
	switch {
	case err != nil:
		ctx.Splog.Debug("could not parse git version %q: %v", out, err)
	case !ok:
		r.warn(ctx, fmt.Sprintf("Git is older than %s; some commands may not work", MinGitVersion))
	}
	return nil
}

// gitVersionSupported parses `git --version` output such as
// "git version 2.39.3 (Apple Git-145)" or "git version 2.45.1.windows.1".
func gitVersionSupported(output string) (bool, error) {
	raw := versionPattern.FindString(output)
	if raw == "" {
		return false, fmt.Errorf("no version number in %q", output)
	}
	current, err := version.NewVersion(raw)
	if err != nil {
		return false, err
	}
	return current.GreaterThanOrEqual(version.Must(version.NewVersion(MinGitVersion))), nil
}
