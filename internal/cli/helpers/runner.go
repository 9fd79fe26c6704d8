package helpers

import (
	"github.com/spf13/cobra"

	"gix.dev/gix/internal/config"
	"gix.dev/gix/internal/runtime"
)

// Run loads configuration, applies the global flags and provides a runtime
// context to a command's execution function.
func Run(cmd *cobra.Command, fn func(ctx *runtime.Context) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if debug, err := cmd.Flags().GetBool("debug"); err == nil && debug {
		cfg.Debug = true
	}
	workDir, _ := cmd.Flags().GetString("cwd")

	ctx, err := runtime.Build(cmd.Context(), runtime.Options{
		Config:  cfg,
		WorkDir: workDir,
		Stdin:   cmd.InOrStdin(),
		Stdout:  cmd.OutOrStdout(),
		Stderr:  cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	defer func() { _ = ctx.Close() }()

	return fn(ctx)
}
