// Package doctor checks that the environment and repository are ready for gix.
package doctor

import (
	"context"

	"gix.dev/gix/internal/git"
	"gix.dev/gix/internal/runtime"
)

// Options contains options for the doctor command
type Options struct {
	// Toolchain is the build toolchain probed for information only. Default "go".
	Toolchain string
	// ToolchainVersion overrides how the toolchain version is read.
	ToolchainVersion func(ctx context.Context, toolchain string) (string, error)
	// RepoRoot overrides how the repository root is located.
	RepoRoot func(dir string) (string, error)
}

func (o *Options) setDefaults() {
	if o.Toolchain == "" {
		o.Toolchain = "go"
	}
	if o.ToolchainVersion == nil {
		o.ToolchainVersion = toolchainVersion
	}
	if o.RepoRoot == nil {
		o.RepoRoot = git.RepoRoot
	}
}

// report collects non-fatal findings.
type report struct {
	warnings []string
}

func (r *report) warn(ctx *runtime.Context, msg string) {
	r.warnings = append(r.warnings, msg)
	ctx.Splog.Warn(msg)
}

// Action runs the health checks. Only the git and repository checks can fail
// the command; everything else is reported as a warning.
func Action(ctx *runtime.Context, opts Options) error {
	opts.setDefaults()
	splog := ctx.Splog
	r := &report{}

	splog.Info("🩺 Running gix health check...")
	splog.Newline()

	checkToolchain(ctx, opts, r)

	if err := checkGit(ctx, r); err != nil {
		return err
	}
	if err := checkInsideRepository(ctx, opts); err != nil {
		return err
	}

	checkWorkingTree(ctx, r)
	checkRemotes(ctx, r)
	checkCurrentBranch(ctx, r)

	splog.Newline()
	splog.Info("🧩 Done.")
	if len(r.warnings) == 0 {
		splog.Success("All checks passed.")
	} else {
		splog.Info("Found %d warning(s).", len(r.warnings))
	}
	return nil
}
