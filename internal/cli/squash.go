package cli

import (
	"github.com/spf13/cobra"

	"gix.dev/gix/internal/actions"
	"gix.dev/gix/internal/cli/helpers"
	"gix.dev/gix/internal/runtime"
)

// newSquashCmd creates the squash command
func newSquashCmd() *cobra.Command {
	var opts actions.SquashOptions

	cmd := &cobra.Command{
		Use:   "squash",
		Short: "Squash the last N commits with an interactive rebase",
		Long: `Open an interactive rebase over the last N commits (default 2, or
squash_count from your config), or over the whole history with --all.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				if !cmd.Flags().Changed("number") {
					opts.Count = ctx.Config.SquashCount
				}
				return actions.SquashAction(ctx, opts)
			})
		},
	}

	cmd.Flags().IntVarP(&opts.Count, "number", "n", actions.DefaultSquashCount, "Number of commits to squash")
	cmd.Flags().BoolVar(&opts.All, "all", false, "Squash all commits from the beginning")

	return cmd
}
