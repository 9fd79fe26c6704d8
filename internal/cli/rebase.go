package cli

import (
	"github.com/spf13/cobra"

	"gix.dev/gix/internal/actions"
	"gix.dev/gix/internal/cli/helpers"
	"gix.dev/gix/internal/runtime"
)

// newRebaseCmd creates the rebase command
func newRebaseCmd() *cobra.Command {
	var opts actions.RebaseOptions

	cmd := &cobra.Command{
		Use:   "rebase",
		Short: "Fetch and rebase the current branch onto its upstream",
		Long: `Fetch from the remote and rebase the current branch onto its upstream.

If the branch has no upstream configured, pass one with --upstream
(e.g. origin/main). Conflicts are left for you to resolve.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.RebaseAction(ctx, opts)
			})
		},
	}

	cmd.Flags().StringVarP(&opts.Upstream, "upstream", "u", "", "Upstream branch to rebase onto (e.g. origin/main)")
	_ = cmd.RegisterFlagCompletionFunc("upstream", helpers.CompleteRefs)

	return cmd
}
