package cli

import (
	"github.com/spf13/cobra"

	"gix.dev/gix/internal/actions"
	"gix.dev/gix/internal/cli/helpers"
	"gix.dev/gix/internal/runtime"
)

// newResetCmd creates the reset command
func newResetCmd() *cobra.Command {
	var opts actions.ResetOptions

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Soft-reset the current branch to its remote",
		Long: `Discard local commits that were not pushed, keeping their changes staged.

The branch is soft-reset to <remote>/<branch>, where <remote> is the branch's
configured remote. You are asked to confirm first unless --yes is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.ResetAction(ctx, opts)
			})
		},
	}

	cmd.Flags().BoolVarP(&opts.Yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
