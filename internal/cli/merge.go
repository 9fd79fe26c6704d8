package cli

import (
	"github.com/spf13/cobra"

	"gix.dev/gix/internal/actions"
	"gix.dev/gix/internal/cli/helpers"
	"gix.dev/gix/internal/runtime"
)

// newMergeCmd creates the merge command
func newMergeCmd() *cobra.Command {
	var (
		opts   actions.MergeOptions
		push   bool
		noPush bool
	)

	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Merge a range of commits into a single commit",
		Long: `Merge every commit from --from through HEAD into a single new commit.

The branch is soft-reset to the parent of --from and recommitted with the
given message, opening your editor to refine it. Commit hooks are skipped.
Afterwards gix offers to push the rewritten branch (force-with-lease, or
--set-upstream when the branch has never been pushed).

Missing values are prompted for.`,
		Example: `  gix merge --from a1b2c3d --msg "Add login form"
  gix merge -f HEAD~3 -m "Squash review fixes" --push`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			switch {
			case push:
				opts.Push = actions.PushAlways
			case noPush:
				opts.Push = actions.PushNever
			default:
				opts.Push = actions.PushAsk
			}
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.MergeAction(ctx, opts)
			})
		},
	}

	cmd.Flags().StringVarP(&opts.From, "from", "f", "", "Start commit hash (required)")
	cmd.Flags().StringVarP(&opts.To, "to", "t", "", "End commit hash (default is HEAD)")
	cmd.Flags().StringVarP(&opts.Message, "msg", "m", "", "New commit message")
	cmd.Flags().BoolVar(&push, "push", false, "Push the rewritten branch without asking")
	cmd.Flags().BoolVar(&noPush, "no-push", false, "Do not push the rewritten branch")
	cmd.MarkFlagsMutuallyExclusive("push", "no-push")
	_ = cmd.RegisterFlagCompletionFunc("from", helpers.CompleteRefs)
	_ = cmd.RegisterFlagCompletionFunc("to", helpers.CompleteRefs)

	return cmd
}
