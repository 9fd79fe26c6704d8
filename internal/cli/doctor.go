package cli

import (
	"github.com/spf13/cobra"

	"gix.dev/gix/internal/actions/doctor"
	"gix.dev/gix/internal/cli/helpers"
	"gix.dev/gix/internal/runtime"
)

// newDoctorCmd creates the doctor command
func newDoctorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check that your environment is ready for gix",
		Long: `Run diagnostic checks on your environment and repository.

The doctor command checks:
  - Environment: Go toolchain (informational) and the git binary
  - Repository: inside a work tree, clean working directory, remotes, current branch

It exits non-zero only when git is unavailable or you are not inside a repository.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return doctor.Action(ctx, doctor.Options{})
			})
		},
	}

	return cmd
}
